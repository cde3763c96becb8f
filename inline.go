// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"regexp"
	"strings"
)

// An Inline is an inline Markdown element, one of
// [Plain], [Strong], [Emph], [Del], [Code],
// [Image], [Link], and [Task].
type Inline interface {
	Inline()

	printHTML(*printer)
	printText(*printer)
}

// An Inlines is an [Inline] that represents a concatenation of Inlines.
type Inlines []Inline

func (Inlines) Inline() {}

func (x Inlines) printText(p *printer) {
	for _, inl := range x {
		inl.printText(p)
	}
}

func (x Inlines) printHTML(p *printer) {
	for _, inl := range x {
		inl.printHTML(p)
	}
}

func (x Inlines) print(p *printer) {
	if p.writeMode == writeHTML {
		x.printHTML(p)
	} else {
		x.printText(p)
	}
}

// A Plain is an [Inline] that represents plain text.
type Plain struct {
	Text string
}

func (*Plain) Inline() {}

func (x *Plain) printText(p *printer) { p.text(x.Text) }
func (x *Plain) printHTML(p *printer) { p.text(x.Text) }

// A Strong is an [Inline] that represents bold text, written **text**.
type Strong struct {
	Inner Inlines
}

func (*Strong) Inline() {}

func (x *Strong) printText(p *printer) { x.Inner.printText(p) }

func (x *Strong) printHTML(p *printer) {
	p.html("<strong>")
	x.Inner.printHTML(p)
	p.html("</strong>")
}

// An Emph is an [Inline] that represents italic text, written *text*.
type Emph struct {
	Inner Inlines
}

func (*Emph) Inline() {}

func (x *Emph) printText(p *printer) { x.Inner.printText(p) }

func (x *Emph) printHTML(p *printer) {
	p.html("<em>")
	x.Inner.printHTML(p)
	p.html("</em>")
}

// A Del is an [Inline] that represents strikethrough text, written ~~text~~.
// Its text is never formatted further.
type Del struct {
	Text string
}

func (*Del) Inline() {}

func (x *Del) printText(p *printer) { p.text(x.Text) }

func (x *Del) printHTML(p *printer) {
	p.html("<del>")
	p.text(x.Text)
	p.html("</del>")
}

// A Code is an [Inline] that represents a code span, written `text`.
// Its text is never formatted further.
type Code struct {
	Text string
}

func (*Code) Inline() {}

func (x *Code) printText(p *printer) { p.text(x.Text) }

func (x *Code) printHTML(p *printer) {
	p.html("<code>")
	p.text(x.Text)
	p.html("</code>")
}

// A Task is an [Inline] representing the checkbox that starts
// a task list item, followed by the rest of the item.
type Task struct {
	Checked bool
	Inner   Inlines
}

func (*Task) Inline() {}

func (x *Task) printText(p *printer) {
	if x.Checked {
		p.text("[x] ")
	} else {
		p.text("[ ] ")
	}
	x.Inner.printText(p)
}

func (x *Task) printHTML(p *printer) {
	if x.Checked {
		p.html(`<input type="checkbox" checked="" disabled="" /> `)
	} else {
		p.html(`<input type="checkbox" disabled="" /> `)
	}
	x.Inner.printHTML(p)
}

// maxNesting is the deepest emphasis nesting Format expands.
// Emphasis nested more deeply is left as plain text.
const maxNesting = 32

// inlinePattern matches, in priority order, bold, italic, strikethrough,
// inline code, image, and link syntax. The lazy .*? makes the first
// closing delimiter end the span.
var inlinePattern = regexp.MustCompile(
	`\*\*.*?\*\*` +
		`|\*.*?\*` +
		`|~~.*?~~` +
		"|`.*?`" +
		`|!\[(.*?)\]\((.*?)\)` +
		`|\[(.*?)\]\((.*?)\)`)

// Format converts a single run of text into a sequence of styled spans.
// Text not matching any inline syntax becomes [Plain] spans.
// Format never fails: unmatched delimiters are kept as literal text.
func Format(text string) Inlines {
	return format(text, 0)
}

func format(s string, depth int) Inlines {
	var list Inlines
	var text strings.Builder // pending plain text
	flush := func() {
		if text.Len() > 0 {
			list = append(list, &Plain{text.String()})
			text.Reset()
		}
	}
	plain := func(t string) {
		text.WriteString(t)
	}
	add := func(x Inline) {
		if pl, ok := x.(*Plain); ok {
			plain(pl.Text)
			return
		}
		flush()
		list = append(list, x)
	}

	for off := 0; off < len(s); {
		m := inlinePattern.FindStringSubmatchIndex(s[off:])
		if m == nil {
			plain(s[off:])
			break
		}
		start, end := off+m[0], off+m[1]
		plain(s[off:start])
		tok := s[start:end]

		switch {
		case strings.HasPrefix(tok, "**") && len(tok) >= 4:
			// A bold span whose text opens an italic span that the
			// lazy match closed too early, as in **bold *and italic***,
			// takes the following star to close the italic span too.
			if end < len(s) && s[end] == '*' && strings.Count(tok[2:len(tok)-2], "*")%2 == 1 {
				end++
				tok = s[start:end]
			}
			add(emphasis(tok[2:len(tok)-2], depth, true, tok))
		case tok[0] == '*':
			add(emphasis(tok[1:len(tok)-1], depth, false, tok))
		case strings.HasPrefix(tok, "~~"):
			if len(tok) == 4 {
				plain(tok)
				break
			}
			add(&Del{tok[2 : len(tok)-2]})
		case tok[0] == '`':
			if len(tok) == 2 {
				plain(tok)
				break
			}
			add(&Code{tok[1 : len(tok)-1]})
		case tok[0] == '!':
			if m[2] < 0 || m[4] < 0 {
				plain(tok)
				break
			}
			add(&Image{Alt: s[off+m[2] : off+m[3]], URL: s[off+m[4] : off+m[5]]})
		case tok[0] == '[':
			if m[6] < 0 || m[8] < 0 {
				plain(tok)
				break
			}
			url := s[off+m[8] : off+m[9]]
			add(&Link{
				Inner:    Inlines{&Plain{s[off+m[6] : off+m[7]]}},
				URL:      url,
				External: isExternal(url),
			})
		default:
			plain(tok)
		}
		off = end
	}
	flush()
	return list
}

// emphasis returns the span for the emphasized text inner,
// whose full source including delimiters is tok.
// Empty emphasis and emphasis nested beyond maxNesting stay literal.
func emphasis(inner string, depth int, strong bool, tok string) Inline {
	if inner == "" {
		return &Plain{tok}
	}
	var x Inlines
	if depth+1 >= maxNesting {
		x = Inlines{&Plain{inner}}
	} else {
		x = format(inner, depth+1)
	}
	if strong {
		return &Strong{x}
	}
	return &Emph{x}
}
