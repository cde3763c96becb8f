// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "regexp"

// An ImageBlock is a [Block] representing an image on a line by itself,
// written ![alt](src). An image followed by other text on the same line
// is an [Image] inside a [Paragraph] instead.
type ImageBlock struct {
	Position
	Alt string
	Src string
}

func (*ImageBlock) Block() {}

func (b *ImageBlock) printHTML(p *printer) {
	p.html(`<figure class="image">`)
	(&Image{Alt: b.Alt, URL: b.Src}).printHTML(p)
	if b.Alt != "" {
		p.html("<figcaption>")
		p.text(b.Alt)
		p.html("</figcaption>")
	}
	p.html("</figure>\n")
}

func (b *ImageBlock) printMarkdown(p *printer) {
	p.md("![", b.Alt, "](", b.Src, ")")
}

func (b *ImageBlock) printText(p *printer) {
	p.text(b.Alt, "\n")
}

var imageLinePattern = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]*)\)$`)

func isImageLine(t string) bool {
	return imageLinePattern.MatchString(t)
}

func parseImageBlock(p *parser) Block {
	m := imageLinePattern.FindStringSubmatch(p.trimmed())
	start := p.i
	p.i++
	return &ImageBlock{p.pos(start), m[1], m[2]}
}
