// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Block is a block-level Markdown element, one of
// [Heading], [Paragraph], [CodeBlock], [List], [Quote],
// [ThematicBreak], [ImageBlock], [Callout], and [Table].
// A [Document] is also a Block.
type Block interface {
	Block()
	Pos() Position

	printHTML(*printer)
	printMarkdown(*printer)
	printText(*printer)
}

// A Position records the source lines of a [Block]:
// StartLine and EndLine are the first and last line
// consumed by the block, numbered from 1.
type Position struct {
	StartLine int
	EndLine   int
}

func (p Position) Pos() Position {
	return p
}

// A parser is the state of a single call to [Parse].
// It scans lines with a single forward cursor.
type parser struct {
	lines []string
	i     int // next unconsumed line
}

// pos returns the position of a block that started at
// line index start and ends just before the cursor.
func (p *parser) pos(start int) Position {
	return Position{start + 1, p.i}
}

// trimmed returns the current line with surrounding space removed.
func (p *parser) trimmed() string {
	return trimSpace(p.lines[p.i])
}

// more reports whether the cursor is at a non-blank line.
func (p *parser) more() bool {
	return p.i < len(p.lines) && !isBlank(p.lines[p.i])
}

// A blockRule recognizes and parses one kind of [Block].
// start reports whether the trimmed line t opens the block;
// parse consumes the block's lines starting at the cursor,
// which is known to satisfy start. parse returns nil to
// drop a block it cannot build.
type blockRule struct {
	start func(t string) bool
	parse func(p *parser) Block
}

// blockRules lists the block kinds in dispatch order.
// The first rule whose start matches the current line wins.
// Lines matching no rule start a [Paragraph].
var blockRules = []blockRule{
	{isHeading, parseHeading},
	{isThematicBreak, parseThematicBreak},
	{isInfoCallout, parseCallout},
	{isWarningCallout, parseCallout},
	{isFence, parseCodeBlock},
	{isQuote, parseQuote},
	{isBullet, parseList},
	{isNumbered, parseList},
	{isTableStart, parseTable},
	{isImageLine, parseImageBlock},
}

// startsBlock reports whether the trimmed line t
// opens a block other than a paragraph.
func startsBlock(t string) bool {
	for _, r := range blockRules {
		if r.start(t) {
			return true
		}
	}
	return false
}

// Parse parses text into a [Document].
// Parse never fails: text that matches no block syntax
// becomes paragraphs, and unmatched inline syntax is kept literally.
func Parse(text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	p := &parser{lines: strings.Split(text, "\n")}
	doc := new(Document)
	if text != "" {
		doc.Position = Position{1, len(p.lines)}
	}
	for p.i < len(p.lines) {
		t := p.trimmed()
		if t == "" {
			// Blank lines only separate blocks.
			p.i++
			continue
		}
		start := p.i
		var b Block
		for _, r := range blockRules {
			if r.start(t) {
				b = r.parse(p)
				break
			}
		}
		if p.i == start {
			b = parseParagraph(p)
		}
		if b != nil {
			doc.Blocks = append(doc.Blocks, b)
		}
	}
	return doc
}
