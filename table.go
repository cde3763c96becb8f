// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Table is a [Block] representing a table, written as
// semicolon-separated rows between [TABLE] and [/TABLE] lines:
//
//	[TABLE]
//	Name; Role
//	Alice; Admin
//	[/TABLE]
//
// The first row is the header.
type Table struct {
	Position
	Header []string
	Rows   [][]string
}

func (*Table) Block() {}

const (
	tableStart = "[TABLE]"
	tableEnd   = "[/TABLE]"
)

// width returns the number of columns: the widest row's cell count.
func (t *Table) width() int {
	n := len(t.Header)
	for _, row := range t.Rows {
		n = max(n, len(row))
	}
	return n
}

func (t *Table) printHTML(p *printer) {
	w := t.width()
	p.html(`<div class="table-wrap">`, "\n")
	p.html("<table>\n")
	p.html("<thead>\n")
	p.html("<tr>\n")
	for i := range w {
		p.html("<th>")
		if i < len(t.Header) {
			p.inline(t.Header[i])
		}
		p.html("</th>\n")
	}
	p.html("</tr>\n")
	p.html("</thead>\n")
	if len(t.Rows) > 0 {
		p.html("<tbody>\n")
		for _, row := range t.Rows {
			p.html("<tr>\n")
			for i := range w {
				p.html("<td>")
				if i < len(row) {
					p.inline(row[i])
				}
				p.html("</td>\n")
			}
			p.html("</tr>\n")
		}
		p.html("</tbody>\n")
	}
	p.html("</table>\n")
	p.html("</div>\n")
}

func (t *Table) printMarkdown(p *printer) {
	p.md(tableStart)
	p.nl()
	p.md(strings.Join(t.Header, "; "))
	for _, row := range t.Rows {
		p.nl()
		p.md(strings.Join(row, "; "))
	}
	p.nl()
	p.md(tableEnd)
}

func (t *Table) printText(p *printer) {
	for _, row := range append([][]string{t.Header}, t.Rows...) {
		for i, cell := range row {
			if i > 0 {
				p.text("\t")
			}
			p.inline(cell)
		}
		p.text("\n")
	}
}

func isTableStart(t string) bool {
	return t == tableStart
}

// parseTable consumes the lines from [TABLE] through [/TABLE],
// or to the end of the text if the table is never closed.
// Blank lines inside the table are skipped.
// A table with no rows is dropped: parseTable returns nil.
func parseTable(p *parser) Block {
	start := p.i
	p.i++
	var rows [][]string
	for p.i < len(p.lines) {
		t := p.trimmed()
		p.i++
		if t == tableEnd {
			break
		}
		if t == "" {
			continue
		}
		rows = append(rows, splitRow(t))
	}
	if len(rows) == 0 {
		return nil
	}
	return &Table{p.pos(start), rows[0], rows[1:]}
}

// splitRow splits a table row on semicolons and trims each cell.
func splitRow(row string) []string {
	cells := strings.Split(row, ";")
	for i, c := range cells {
		cells[i] = trimSpace(c)
	}
	return cells
}
