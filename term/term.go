// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term renders parsed wiki pages for a terminal.
package term

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/awiki/markdown"
	"github.com/awiki/markdown/highlight"
)

// A Renderer prints documents as styled terminal text.
type Renderer struct {
	// Width is the column at which text wraps; 0 disables wrapping.
	Width int

	// Dark selects the dark code style.
	Dark bool

	// Labels lists the labeled-link keywords; nil means markdown.DefaultLabels.
	Labels []string

	// Highlighter, if non-nil, colors code blocks.
	Highlighter *highlight.Highlighter

	lr *lipgloss.Renderer
	st styles
}

type styles struct {
	heading   lipgloss.Style
	link      lipgloss.Style
	code      lipgloss.Style
	faint     lipgloss.Style
	quote     lipgloss.Style
	info      lipgloss.Style
	warning   lipgloss.Style
	rule      lipgloss.Style
	tableHead lipgloss.Style
}

// New returns a Renderer that styles text for the output of lr.
func New(lr *lipgloss.Renderer, width int) *Renderer {
	t := &Renderer{Width: width, lr: lr}
	t.st = styles{
		heading:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		link:      lr.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		code:      lr.NewStyle().Foreground(lipgloss.Color("220")).Background(lipgloss.Color("237")),
		faint:     lr.NewStyle().Faint(true),
		quote:     lr.NewStyle().Foreground(lipgloss.Color("245")),
		info:      lr.NewStyle().Foreground(lipgloss.Color("39")),
		warning:   lr.NewStyle().Foreground(lipgloss.Color("214")),
		rule:      lr.NewStyle().Foreground(lipgloss.Color("240")),
		tableHead: lr.NewStyle().Bold(true),
	}
	return t
}

// Render returns doc as terminal text, blocks separated by blank lines.
func (t *Renderer) Render(doc *markdown.Document) string {
	var out []string
	for _, b := range doc.Blocks {
		out = append(out, strings.Join(t.block(b), "\n"))
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n\n") + "\n"
}

func (t *Renderer) labels() []string {
	if t.Labels == nil {
		return markdown.DefaultLabels
	}
	return t.Labels
}

// block returns the lines for b.
func (t *Renderer) block(b markdown.Block) []string {
	switch b := b.(type) {
	case *markdown.Heading:
		prefix := run{strings.Repeat("#", b.Level) + " ", t.st.heading}
		return t.wrap(t.runs(markdown.Format(b.Text), t.st.heading, []run{prefix}), t.Width)

	case *markdown.Paragraph:
		return t.wrap(t.runs(markdown.Format(b.Text), t.plain(), nil), t.Width)

	case *markdown.ThematicBreak:
		w := t.Width
		if w <= 0 {
			w = 40
		}
		return []string{t.st.rule.Render(strings.Repeat("─", w))}

	case *markdown.Quote:
		var lines []string
		bar := t.st.quote.Render("│") + " "
		for _, line := range b.Lines {
			for _, l := range t.wrap(t.runs(markdown.Format(line), t.st.quote, nil), t.Width-2) {
				lines = append(lines, bar+l)
			}
			if line == "" {
				lines = append(lines, t.st.quote.Render("│"))
			}
		}
		return lines

	case *markdown.Callout:
		icon, st := "ℹ", t.st.info
		if b.Kind == markdown.CalloutWarning {
			icon, st = "⚠", t.st.warning
		}
		return t.indent(st.Render(icon)+" ", "  ", t.runs(markdown.Format(b.Text), t.plain(), nil))

	case *markdown.List:
		var lines []string
		for i, text := range b.Items {
			marker := "• "
			if b.Ordered() {
				marker = strconv.Itoa(b.Start+i) + ". "
			}
			it := markdown.ParseItem(text, t.labels())
			pad := strings.Repeat(" ", runewidth.StringWidth(marker))
			lines = append(lines, t.indent(marker, pad, t.runs(it.Inlines(), t.plain(), nil))...)
		}
		return lines

	case *markdown.CodeBlock:
		var lines []string
		if b.Language != "" {
			lines = append(lines, t.st.faint.Render(b.Language))
		}
		for _, l := range t.code(b) {
			lines = append(lines, "  "+l)
		}
		return lines

	case *markdown.ImageBlock:
		return []string{t.st.faint.Render("[image: " + b.Alt + "] " + b.Src)}

	case *markdown.Table:
		return t.table(b)
	}
	return nil
}

// indent wraps runs to the width left after first,
// starting the first line with first and the rest with rest.
func (t *Renderer) indent(first, rest string, runs []run) []string {
	w := t.Width
	if w > 0 {
		w = max(1, w-lipgloss.Width(first))
	}
	lines := t.wrap(runs, w)
	for i := range lines {
		if i == 0 {
			lines[i] = first + lines[i]
		} else {
			lines[i] = rest + lines[i]
		}
	}
	if len(lines) == 0 {
		lines = []string{strings.TrimRight(first, " ")}
	}
	return lines
}

// code returns the lines of b, colored by token when a Highlighter
// knows the language.
func (t *Renderer) code(b *markdown.CodeBlock) []string {
	if t.Highlighter == nil || b.Language == "" {
		return b.Text
	}
	toks, err := t.Highlighter.Tokens(b.Code(), b.Language)
	if err != nil {
		return b.Text
	}
	style := t.Highlighter.Style(t.Dark)
	var lines []string
	var line strings.Builder
	for _, tok := range toks {
		st := t.tokenStyle(style, tok.Type)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				lines = append(lines, line.String())
				line.Reset()
			}
			if part != "" {
				line.WriteString(st.Render(part))
			}
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// tokenStyle converts a chroma style entry to a lipgloss style.
func (t *Renderer) tokenStyle(style *chroma.Style, tt chroma.TokenType) lipgloss.Style {
	entry := style.Get(tt)
	st := t.plain()
	if entry.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

func (t *Renderer) plain() lipgloss.Style {
	return t.lr.NewStyle()
}
