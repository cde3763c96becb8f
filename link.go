// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A Link is an [Inline] representing a link (<a> tag), written [text](url).
//
// Links written in the text hold their text as a single [Plain];
// a labeled link in a list item holds the formatted text after the label.
type Link struct {
	Inner    Inlines
	URL      string
	External bool // URL starts with "http"; opens in a new tab
}

func (*Link) Inline() {}

func (x *Link) printHTML(p *printer) {
	p.html(`<a href="`, htmlLinkEscaper.Replace(safeURL(x.URL)), `"`)
	if x.External {
		p.html(` class="external" target="_blank" rel="noopener noreferrer"`)
	}
	p.html(">")
	x.Inner.printHTML(p)
	if x.External {
		p.html(`<span class="external-icon" aria-hidden="true">↗</span>`)
	}
	p.html("</a>")
}

func (x *Link) printText(p *printer) {
	x.Inner.printText(p)
}

// An Image is an [Inline] representing an image (<img> tag),
// written ![alt](url).
type Image struct {
	Alt string
	URL string
}

func (*Image) Inline() {}

func (x *Image) printHTML(p *printer) {
	p.html(`<img src="`, htmlLinkEscaper.Replace(safeURL(x.URL)), `" alt="`)
	p.text(x.Alt)
	p.html(`" />`)
}

func (x *Image) printText(p *printer) {
	p.text(x.Alt)
}
