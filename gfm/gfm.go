// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfm renders GitHub Flavored Markdown pages with goldmark,
// for wiki pages written in GitHub's dialect instead of the wiki's own.
//
// Besides GFM tables, strikethrough, task lists and autolinks,
// block quotes starting with [!NOTE], [!TIP], [!WARNING] or [!CAUTION]
// become titled alerts, and [!DETAILS] Title becomes a <details> element.
package gfm

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/awiki/markdown/highlight"
)

// Options configure a [Renderer].
type Options struct {
	// Style is the chroma style for fenced code.
	// If empty, code is not highlighted.
	Style string

	// Classes selects class-based highlighting, for use
	// with a stylesheet such as highlight.Highlighter.CSS writes.
	Classes bool
}

// A Renderer converts GitHub Flavored Markdown to HTML.
// It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer configured by opts.
func New(opts Options) *Renderer {
	exts := []goldmark.Extender{extension.GFM, Alerts}
	if opts.Style != "" {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(opts.Style),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(opts.Classes),
			),
		))
	}
	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &Renderer{md: md}
}

// ForTheme returns a Renderer that highlights code in the
// light or dark default style.
func ForTheme(dark bool) *Renderer {
	style := highlight.DefaultLight
	if dark {
		style = highlight.DefaultDark
	}
	return New(Options{Style: style})
}

// Render converts Markdown to HTML.
func (r *Renderer) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("gfm: %w", err)
	}
	return buf.Bytes(), nil
}
