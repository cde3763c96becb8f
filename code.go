// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bytes"
	"strings"
)

// A CodeBlock is a [Block] representing a fenced code block,
// written between lines starting with ```.
// Its text is kept verbatim and never formatted.
type CodeBlock struct {
	Position
	Language string   // text after the opening fence, if any
	Text     []string // lines between the fences
}

func (*CodeBlock) Block() {}

// Code returns the block's text as a single string,
// each line ending in a newline.
func (b *CodeBlock) Code() string {
	var sb strings.Builder
	for _, s := range b.Text {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *CodeBlock) printHTML(p *printer) {
	p.html(`<div class="code-block">`, "\n")
	if b.Language != "" {
		p.html(`<div class="code-label">`)
		p.text(b.Language)
		p.html("</div>\n")
	}
	if b.Language != "" && p.r != nil && p.r.Highlighter != nil {
		var buf bytes.Buffer
		if err := p.r.Highlighter.Highlight(&buf, b.Code(), b.Language, p.r.Dark); err == nil {
			p.html(`<pre class="chroma"><code class="language-`)
			p.text(b.Language)
			p.html(`">`)
			p.buf.Write(buf.Bytes())
			p.html("</code></pre>\n</div>\n")
			return
		}
	}
	p.html("<pre><code")
	if b.Language != "" {
		p.html(` class="language-`)
		p.text(b.Language)
		p.html(`"`)
	}
	p.html(">")
	for _, s := range b.Text {
		p.text(s, "\n")
	}
	p.html("</code></pre>\n</div>\n")
}

func (b *CodeBlock) printMarkdown(p *printer) {
	p.md("```", b.Language)
	for _, s := range b.Text {
		p.nl()
		p.md(s)
	}
	p.nl()
	p.md("```")
}

func (b *CodeBlock) printText(p *printer) {
	for _, s := range b.Text {
		p.text(s, "\n")
	}
}

func isFence(t string) bool {
	return strings.HasPrefix(t, "```")
}

// parseCodeBlock consumes the opening fence, the code lines,
// and the closing fence. A fence that is never closed runs
// to the end of the text.
func parseCodeBlock(p *parser) Block {
	start := p.i
	lang := trimSpace(p.trimmed()[3:])
	p.i++
	var text []string
	for p.i < len(p.lines) {
		line := p.lines[p.i]
		p.i++
		if isFence(trimSpace(line)) {
			break
		}
		text = append(text, line)
	}
	return &CodeBlock{p.pos(start), lang, text}
}
