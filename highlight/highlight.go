// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlight renders fenced code with chroma.
// A [*Highlighter] can be installed as the Highlighter of a markdown.Renderer.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrNoLexer is returned by Highlight for a language chroma does not know.
var ErrNoLexer = errors.New("no lexer for language")

// Default style names.
const (
	DefaultLight = "github"
	DefaultDark  = "github-dark"
)

// A Highlighter highlights code using one chroma style for light pages
// and another for dark ones. It is safe for concurrent use.
type Highlighter struct {
	light *chroma.Style
	dark  *chroma.Style

	// With classes, the HTML carries chroma class names and the
	// colors come from the stylesheet written by CSS.
	classes   bool
	formatter *chromahtml.Formatter

	mu     sync.RWMutex
	lexers map[string]chroma.Lexer
}

// New returns a Highlighter using the named styles.
// Empty or unknown names fall back to chroma's default style.
// If classes is set, Highlight emits class names instead of inline colors.
func New(light, dark string, classes bool) *Highlighter {
	if light == "" {
		light = DefaultLight
	}
	if dark == "" {
		dark = DefaultDark
	}
	return &Highlighter{
		light:   styles.Get(light),
		dark:    styles.Get(dark),
		classes: classes,
		formatter: chromahtml.New(
			chromahtml.WithClasses(classes),
			chromahtml.PreventSurroundingPre(true),
		),
		lexers: make(map[string]chroma.Lexer),
	}
}

// lexer returns the lexer for lang, or nil.
// lang may be a language name, an alias, or a file extension.
func (h *Highlighter) lexer(lang string) chroma.Lexer {
	lang = strings.ToLower(lang)
	h.mu.RLock()
	lexer := h.lexers[lang]
	h.mu.RUnlock()
	if lexer != nil {
		return lexer
	}

	lexer = lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Match("file." + lang)
	}
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)
	h.mu.Lock()
	h.lexers[lang] = lexer
	h.mu.Unlock()
	return lexer
}

// Style returns the chroma style for light or dark pages.
func (h *Highlighter) Style(dark bool) *chroma.Style {
	if dark {
		return h.dark
	}
	return h.light
}

// Highlight writes code as highlighted HTML spans, without the
// surrounding <pre> element, using the dark style if dark is set.
func (h *Highlighter) Highlight(w io.Writer, code, language string, dark bool) error {
	it, err := h.tokenise(code, language)
	if err != nil {
		return err
	}
	return h.formatter.Format(w, h.Style(dark), it)
}

// Tokens splits code into chroma tokens for callers that
// do their own coloring, such as a terminal renderer.
func (h *Highlighter) Tokens(code, language string) ([]chroma.Token, error) {
	it, err := h.tokenise(code, language)
	if err != nil {
		return nil, err
	}
	return it.Tokens(), nil
}

func (h *Highlighter) tokenise(code, language string) (chroma.Iterator, error) {
	lexer := h.lexer(language)
	if lexer == nil {
		return nil, fmt.Errorf("highlight %q: %w", language, ErrNoLexer)
	}
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("highlight %q: %w", language, err)
	}
	return it, nil
}

// CSS writes the stylesheet for class-based output in the light or dark style.
func (h *Highlighter) CSS(w io.Writer, dark bool) error {
	return h.formatter.WriteCSS(w, h.Style(dark))
}

// Classes reports whether Highlight emits class names.
func (h *Highlighter) Classes() bool {
	return h.classes
}
