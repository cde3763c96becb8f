// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/awiki/markdown"
)

// table lays out b in aligned columns. Cells are printed as plain
// text so that column widths can be measured. If the table is wider
// than t.Width, wide columns are truncated with an ellipsis.
func (t *Renderer) table(b *markdown.Table) []string {
	rows := append([][]string{b.Header}, b.Rows...)
	ncol := 0
	for _, row := range rows {
		ncol = max(ncol, len(row))
	}
	text := make([][]string, len(rows))
	widths := make([]int, ncol)
	for i, row := range rows {
		text[i] = make([]string, ncol)
		for j, cell := range row {
			s := plainText(t.runs(markdown.Format(cell), t.plain(), nil))
			text[i][j] = s
			widths[j] = max(widths[j], runewidth.StringWidth(s))
		}
	}

	const sep = " │ "
	if t.Width > 0 {
		limit := max(3, (t.Width-len([]rune(sep))*(ncol-1))/max(ncol, 1))
		total := len([]rune(sep)) * (ncol - 1)
		for _, w := range widths {
			total += w
		}
		if total > t.Width {
			for j := range widths {
				widths[j] = min(widths[j], limit)
			}
		}
	}

	var lines []string
	for i, row := range text {
		var line strings.Builder
		for j, s := range row {
			s = runewidth.Truncate(s, widths[j], "…")
			if i == 0 {
				line.WriteString(t.st.tableHead.Render(s))
			} else {
				line.WriteString(s)
			}
			if j+1 < ncol {
				line.WriteString(strings.Repeat(" ", widths[j]-runewidth.StringWidth(s)))
				line.WriteString(sep)
			}
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
		if i == 0 {
			var rule []string
			for _, w := range widths {
				rule = append(rule, strings.Repeat("─", w))
			}
			lines = append(lines, t.st.rule.Render(strings.Join(rule, "─┼─")))
		}
	}
	return lines
}
