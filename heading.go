// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strings"
)

// A Heading is a [Block] representing a heading, written "## Heading",
// usually displayed with the <h1> through <h6> tags.
type Heading struct {
	Position

	// Level is the heading level: 1 through 6.
	// Other values are clamped to the valid range.
	Level int

	// Text is the text of the heading.
	Text string
}

func (*Heading) Block() {}

// level returns the effective level, clamping Level to the range [1, 6].
func (h *Heading) level() int {
	return max(1, min(6, h.Level))
}

// ID returns the anchor identifier for the heading,
// derived from its text with the markup removed.
func (h *Heading) ID() string {
	var p printer
	p.writeMode = writeText
	p.inline(h.Text)
	return slug(p.buf.String())
}

func (b *Heading) printHTML(p *printer) {
	fmt.Fprintf(&p.buf, "<h%d", b.level())
	if id := b.ID(); id != "" {
		p.html(` id="`)
		p.text(id)
		p.html(`"`)
	}
	p.html(">")
	p.inline(b.Text)
	fmt.Fprintf(&p.buf, "</h%d>\n", b.level())
}

func (b *Heading) printMarkdown(p *printer) {
	p.md(strings.Repeat("#", b.level()), " ", b.Text)
}

func (b *Heading) printText(p *printer) {
	p.inline(b.Text)
	p.text("\n")
}

// headingLevel returns the level of the heading on trimmed line t,
// or 0 if t is not a heading: 1 to 6 #'s followed by a space.
func headingLevel(t string) int {
	n := 0
	for n < len(t) && t[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n >= len(t) || t[n] != ' ' {
		return 0
	}
	return n
}

func isHeading(t string) bool {
	return headingLevel(t) > 0
}

// parseHeading consumes a single heading line.
func parseHeading(p *parser) Block {
	t := p.trimmed()
	n := headingLevel(t)
	start := p.i
	p.i++
	return &Heading{p.pos(start), n, trimSpace(t[n:])}
}
