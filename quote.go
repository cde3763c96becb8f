// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Quote is a [Block] representing a block quote,
// written as consecutive lines starting with "> " or a lone ">".
type Quote struct {
	Position
	Lines []string // lines with the marker removed
}

func (*Quote) Block() {}

func (b *Quote) printHTML(p *printer) {
	p.html("<blockquote>\n")
	for _, line := range b.Lines {
		if line == "" {
			continue
		}
		p.html("<p>")
		p.inline(line)
		p.html("</p>\n")
	}
	p.html("</blockquote>\n")
}

func (b *Quote) printMarkdown(p *printer) {
	for i, line := range b.Lines {
		if i > 0 {
			p.nl()
		}
		switch {
		case line == "":
			p.md(">")
		case isCallout("> " + line):
			// An extra space keeps the line from reading as a callout.
			p.md(">  ", line)
		default:
			p.md("> ", line)
		}
	}
}

func (b *Quote) printText(p *printer) {
	for _, line := range b.Lines {
		p.inline(line)
		p.text("\n")
	}
}

func isQuote(t string) bool {
	return t == ">" || strings.HasPrefix(t, "> ")
}

// parseQuote consumes quote lines up to the first line that is
// blank, is not quoted, or is a callout.
func parseQuote(p *parser) Block {
	start := p.i
	var lines []string
	for p.more() {
		t := p.trimmed()
		if !isQuote(t) || isCallout(t) {
			break
		}
		lines = append(lines, trimSpace(t[1:]))
		p.i++
	}
	return &Quote{p.pos(start), lines}
}

// A CalloutKind is the variant of a [Callout].
type CalloutKind int

const (
	CalloutInfo    CalloutKind = iota // > i text
	CalloutWarning                    // > ! text
)

func (k CalloutKind) String() string {
	if k == CalloutWarning {
		return "warning"
	}
	return "info"
}

func (k CalloutKind) marker() string {
	if k == CalloutWarning {
		return "> ! "
	}
	return "> i "
}

// A Callout is a [Block] representing a single-line admonition,
// written "> i text" for information or "> ! text" for a warning.
type Callout struct {
	Position
	Kind CalloutKind
	Text string
}

func (*Callout) Block() {}

func (b *Callout) printHTML(p *printer) {
	role, icon := "note", "ℹ"
	if b.Kind == CalloutWarning {
		role, icon = "alert", "⚠"
	}
	p.html(`<div class="callout callout-`, b.Kind.String(), `" role="`, role, `">`)
	p.html(`<span class="callout-icon" aria-hidden="true">`, icon, `</span>`)
	p.html(`<div class="callout-text">`)
	p.inline(b.Text)
	p.html("</div></div>\n")
}

func (b *Callout) printMarkdown(p *printer) {
	p.md(b.Kind.marker(), b.Text)
}

func (b *Callout) printText(p *printer) {
	p.inline(b.Text)
	p.text("\n")
}

func isInfoCallout(t string) bool {
	return strings.HasPrefix(t, CalloutInfo.marker())
}

func isWarningCallout(t string) bool {
	return strings.HasPrefix(t, CalloutWarning.marker())
}

func isCallout(t string) bool {
	return isInfoCallout(t) || isWarningCallout(t)
}

// parseCallout consumes a single callout line.
func parseCallout(p *parser) Block {
	t := p.trimmed()
	kind := CalloutInfo
	if isWarningCallout(t) {
		kind = CalloutWarning
	}
	start := p.i
	p.i++
	return &Callout{p.pos(start), kind, trimSpace(t[len(kind.marker()):])}
}
