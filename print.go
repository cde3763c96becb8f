// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bytes"
	"io"
)

const (
	writeMarkdown = iota
	writeHTML
	writeText
)

type printer struct {
	writeMode int
	buf       bytes.Buffer
	r         *Renderer
}

// A Highlighter renders source code with syntax highlighting.
// It is called for every code block that names a language,
// after the block structure has been rendered.
// If Highlight returns an error, the code is printed verbatim instead,
// so the Highlighter must not write to w before it knows it will succeed.
type Highlighter interface {
	Highlight(w io.Writer, code, language string, dark bool) error
}

// A Renderer holds the rendering configuration passed in from
// the surrounding application. The zero Renderer is ready to use.
// A Renderer is not modified by rendering and may be shared
// by concurrent callers.
type Renderer struct {
	// Dark is the resolved theme: true for a dark page background.
	Dark bool

	// Labels lists the list item keywords that introduce a labeled link.
	// If Labels is nil, DefaultLabels is used.
	Labels []string

	// Highlighter, if non-nil, renders code blocks that have a language.
	Highlighter Highlighter
}

func (r *Renderer) labels() []string {
	if r == nil || r.Labels == nil {
		return DefaultLabels
	}
	return r.Labels
}

// ToHTML renders b as HTML using the configuration in r.
func (r *Renderer) ToHTML(b Block) string {
	p := printer{writeMode: writeHTML, r: r}
	b.printHTML(&p)
	return p.buf.String()
}

// ToHTML renders b as HTML using the zero Renderer.
func ToHTML(b Block) string {
	var r Renderer
	return r.ToHTML(b)
}

// ToMarkdown prints b back in the wiki Markdown dialect.
// Parsing the result produces the same blocks as b.
func ToMarkdown(b Block) string {
	var p printer
	p.writeMode = writeMarkdown
	b.printMarkdown(&p)
	return p.buf.String()
}

// ToText prints the text of b with all markup removed,
// classifying list items with the labels in r.
func (r *Renderer) ToText(b Block) string {
	p := printer{writeMode: writeText, r: r}
	b.printText(&p)
	return p.buf.String()
}

// ToText prints the text of b using the zero Renderer.
func ToText(b Block) string {
	var r Renderer
	return r.ToText(b)
}

func (p *printer) nl() {
	p.buf.WriteByte('\n')
}

func (p *printer) html(list ...string) {
	if p.writeMode != writeHTML {
		panic("raw HTML in non-HTML output")
	}
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

func (p *printer) text(list ...string) {
	if p.writeMode == writeHTML {
		for _, s := range list {
			htmlEscaper.WriteString(&p.buf, s)
		}
		return
	}
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

func (p *printer) md(list ...string) {
	if p.writeMode != writeMarkdown {
		panic("markdown in non-markdown output")
	}
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// inline formats s and prints the result in the current mode.
func (p *printer) inline(s string) {
	Format(s).print(p)
}
