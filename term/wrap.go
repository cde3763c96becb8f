// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/awiki/markdown"
)

// A run is text printed in a single style.
type run struct {
	text  string
	style lipgloss.Style
}

// runs appends the runs for x, styled on top of st, to out.
func (t *Renderer) runs(x markdown.Inlines, st lipgloss.Style, out []run) []run {
	for _, inl := range x {
		switch inl := inl.(type) {
		case *markdown.Plain:
			out = append(out, run{inl.Text, st})
		case *markdown.Strong:
			out = t.runs(inl.Inner, st.Bold(true), out)
		case *markdown.Emph:
			out = t.runs(inl.Inner, st.Italic(true), out)
		case *markdown.Del:
			out = append(out, run{inl.Text, st.Strikethrough(true)})
		case *markdown.Code:
			out = append(out, run{inl.Text, t.st.code})
		case *markdown.Image:
			out = append(out, run{"[image: " + inl.Alt + "]", t.st.faint})
		case *markdown.Link:
			n := len(out)
			out = t.runs(inl.Inner, t.st.link, out)
			if inl.URL != "#" && inl.URL != plainText(out[n:]) {
				out = append(out, run{" (" + inl.URL + ")", t.st.faint})
			}
			if inl.External {
				out = append(out, run{"↗", t.st.faint})
			}
		case *markdown.Task:
			box := "☐ "
			if inl.Checked {
				box = "☑ "
			}
			out = append(out, run{box, st})
			out = t.runs(inl.Inner, st, out)
		}
	}
	return out
}

func plainText(runs []run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.text)
	}
	return b.String()
}

// wrap breaks runs into lines at most width columns wide,
// breaking only at spaces. A word wider than width gets a line
// to itself. If width <= 0, wrap returns a single line.
// Runs of spaces collapse to one.
func (t *Renderer) wrap(runs []run, width int) []string {
	var words [][]run
	var cur []run
	for _, r := range runs {
		for i, part := range strings.Split(r.text, " ") {
			if i > 0 && len(cur) > 0 {
				words = append(words, cur)
				cur = nil
			}
			if part != "" {
				cur = append(cur, run{part, r.style})
			}
		}
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}

	var lines []string
	var line strings.Builder
	w := 0
	for _, word := range words {
		ww := 0
		for _, r := range word {
			ww += runewidth.StringWidth(r.text)
		}
		if w > 0 && width > 0 && w+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			w = 0
		}
		if w > 0 {
			line.WriteByte(' ')
			w++
		}
		for _, r := range word {
			line.WriteString(r.style.Render(r.text))
		}
		w += ww
	}
	if w > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
