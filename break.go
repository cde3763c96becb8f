// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A ThematicBreak is a [Block] representing a horizontal rule,
// written "---" alone on a line and displayed with the <hr> tag.
type ThematicBreak struct {
	Position
}

func (*ThematicBreak) Block() {}

func (b *ThematicBreak) printHTML(p *printer) {
	p.html("<hr />\n")
}

func (b *ThematicBreak) printMarkdown(p *printer) {
	p.md("---")
}

func (b *ThematicBreak) printText(p *printer) {
	p.text("---\n")
}

func isThematicBreak(t string) bool {
	return t == "---"
}

func parseThematicBreak(p *parser) Block {
	start := p.i
	p.i++
	return &ThematicBreak{p.pos(start)}
}
