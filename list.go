// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// A List is a [Block] representing a list, either
// unordered (written with "* " or "- " markers) or
// ordered (written with "1. ", "2. ", and so on).
type List struct {
	Position
	Bullet rune     // '*' or '-' for an unordered list, '.' for an ordered one
	Start  int      // number of the first item in an ordered list
	Items  []string // item text with the marker removed
}

func (*List) Block() {}

// Ordered reports whether the list is numbered.
func (b *List) Ordered() bool {
	return b.Bullet == '.'
}

func (b *List) printHTML(p *printer) {
	if b.Ordered() {
		p.html("<ol")
		if b.Start != 1 {
			fmt.Fprintf(&p.buf, ` start="%d"`, b.Start)
		}
		p.html(">\n")
	} else {
		p.html("<ul>\n")
	}
	labels := p.r.labels()
	for _, text := range b.Items {
		it := ParseItem(text, labels)
		if it.Task {
			p.html(`<li class="task">`)
		} else {
			p.html("<li>")
		}
		it.Inlines().printHTML(p)
		p.html("</li>\n")
	}
	if b.Ordered() {
		p.html("</ol>\n")
	} else {
		p.html("</ul>\n")
	}
}

func (b *List) printMarkdown(p *printer) {
	for i, text := range b.Items {
		if i > 0 {
			p.nl()
		}
		if b.Ordered() {
			p.md(strconv.Itoa(b.Start+i), ". ", text)
		} else {
			p.md(string(b.Bullet), " ", text)
		}
	}
}

func (b *List) printText(p *printer) {
	for _, text := range b.Items {
		ParseItem(text, p.r.labels()).Inlines().printText(p)
		p.text("\n")
	}
}

var numberedPattern = regexp.MustCompile(`^(\d+)\.\s`)

func isBullet(t string) bool {
	return strings.HasPrefix(t, "* ") || strings.HasPrefix(t, "- ")
}

func isNumbered(t string) bool {
	return numberedPattern.MatchString(t)
}

// parseList consumes consecutive items of the kind that starts
// at the cursor. An unordered list may mix "* " and "- " markers,
// but an ordered list ends at the first unordered item
// and an unordered list at the first ordered one.
func parseList(p *parser) Block {
	start := p.i
	list := &List{Start: 1}
	if t := p.trimmed(); isBullet(t) {
		list.Bullet = rune(t[0])
		for p.more() && isBullet(p.trimmed()) {
			list.Items = append(list.Items, trimSpace(p.trimmed()[2:]))
			p.i++
		}
	} else {
		list.Bullet = '.'
		if n, err := strconv.Atoi(numberedPattern.FindStringSubmatch(t)[1]); err == nil {
			list.Start = n
		}
		for p.more() {
			t := p.trimmed()
			m := numberedPattern.FindStringIndex(t)
			if m == nil {
				break
			}
			list.Items = append(list.Items, trimSpace(t[m[1]:]))
			p.i++
		}
	}
	list.Position = p.pos(start)
	return list
}
