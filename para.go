// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Paragraph is a [Block] representing a paragraph of text:
// consecutive lines that start no other block.
// The lines are joined with single spaces.
type Paragraph struct {
	Position
	Text string
}

func (*Paragraph) Block() {}

func (b *Paragraph) printHTML(p *printer) {
	p.html("<p>")
	p.inline(b.Text)
	p.html("</p>\n")
}

func (b *Paragraph) printMarkdown(p *printer) {
	p.md(b.Text)
}

func (b *Paragraph) printText(p *printer) {
	p.inline(b.Text)
	p.text("\n")
}

// parseParagraph consumes the line at the cursor and every
// following line that is neither blank nor the start of another block.
// It always consumes at least one line.
func parseParagraph(p *parser) Block {
	start := p.i
	lines := []string{p.trimmed()}
	p.i++
	for p.more() {
		t := p.trimmed()
		if startsBlock(t) {
			break
		}
		lines = append(lines, t)
		p.i++
	}
	return &Paragraph{p.pos(start), strings.Join(lines, " ")}
}
