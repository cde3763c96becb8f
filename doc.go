// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A Document is a parsed page: its blocks in source order.
// A Document is never modified after [Parse] returns it.
type Document struct {
	Position
	Blocks []Block
}

func (*Document) Block() {}

func (b *Document) printHTML(p *printer) {
	for _, c := range b.Blocks {
		c.printHTML(p)
	}
}

func (b *Document) printMarkdown(p *printer) {
	for i, c := range b.Blocks {
		if i > 0 {
			p.nl()
			p.nl()
		}
		c.printMarkdown(p)
	}
	if len(b.Blocks) > 0 {
		p.nl()
	}
}

func (b *Document) printText(p *printer) {
	for i, c := range b.Blocks {
		if i > 0 {
			p.text("\n")
		}
		c.printText(p)
	}
}

// Placeholder is the text shown in place of an empty page.
const Placeholder = "Select a page to view its content."

// Render parses and renders content as an HTML fragment
// wrapped in a <div class="markdown"> element.
// If content is empty, Render returns the [Placeholder]
// paragraph without parsing anything.
//
// Render is a pure function of r and content and is safe
// to call from multiple goroutines.
func (r *Renderer) Render(content string) string {
	p := printer{writeMode: writeHTML, r: r}
	p.html(`<div class="markdown`)
	if r != nil && r.Dark {
		p.html(` dark`)
	}
	p.html(`">`, "\n")
	if content == "" {
		p.html(`<p class="placeholder">`)
		p.text(Placeholder)
		p.html("</p>\n")
	} else {
		Parse(content).printHTML(&p)
	}
	p.html("</div>\n")
	return p.buf.String()
}

// Render renders content using the zero [Renderer].
func Render(content string) string {
	var r Renderer
	return r.Render(content)
}
