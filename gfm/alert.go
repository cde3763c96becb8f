// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfm

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KindAlert is the node kind of an [Alert].
var KindAlert = ast.NewNodeKind("Alert")

// An Alert is a block quote whose first paragraph starts with a marker
// such as [!NOTE] or [!DETAILS] Title.
type Alert struct {
	ast.BaseBlock

	// AlertKind is the upper-case marker name: NOTE, TIP, WARNING, CAUTION or DETAILS.
	AlertKind string

	// Title is the heading shown for the alert.
	Title string
}

func (n *Alert) Kind() ast.NodeKind { return KindAlert }

func (n *Alert) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"AlertKind": n.AlertKind,
		"Title":     n.Title,
	}, nil)
}

var alertPattern = regexp.MustCompile(`^\s*\[!(NOTE|TIP|WARNING|CAUTION|DETAILS)\]\s*`)

type alertTransformer struct{}

// Transform replaces each marked block quote with an [Alert].
// A NOTE, TIP, WARNING or CAUTION alert is titled by its kind and keeps
// the whole quote minus the marker. A DETAILS alert is titled by the rest
// of the first paragraph and keeps the blocks after it.
func (alertTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	var quotes []*ast.Blockquote
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if q, ok := n.(*ast.Blockquote); ok && entering {
			quotes = append(quotes, q)
		}
		return ast.WalkContinue, nil
	})

	for _, q := range quotes {
		para, ok := q.FirstChild().(*ast.Paragraph)
		if !ok || para.Lines().Len() == 0 {
			continue
		}
		line := para.Lines().At(0)
		m := alertPattern.FindSubmatchIndex(line.Value(source))
		if m == nil {
			continue
		}
		kind := string(line.Value(source)[m[2]:m[3]])
		alert := &Alert{AlertKind: kind, Title: defaultTitle(kind)}
		if kind == "DETAILS" {
			if title := detailsTitle(para, source, m[1]); title != "" {
				alert.Title = title
			}
			q.RemoveChild(q, para)
		} else {
			stripMarker(para, line.Start+m[1])
			if para.ChildCount() == 0 {
				q.RemoveChild(q, para)
			}
		}

		parent := q.Parent()
		parent.ReplaceChild(parent, q, alert)
		for c := q.FirstChild(); c != nil; {
			next := c.NextSibling()
			alert.AppendChild(alert, c)
			c = next
		}
	}
}

// stripMarker removes the text of para that lies before the source offset end.
func stripMarker(para *ast.Paragraph, end int) {
	for c := para.FirstChild(); c != nil; {
		next := c.NextSibling()
		t, ok := c.(*ast.Text)
		if !ok || t.Segment.Start >= end {
			return
		}
		if t.Segment.Stop > end {
			t.Segment = t.Segment.WithStart(end)
			return
		}
		para.RemoveChild(para, c)
		c = next
	}
}

// detailsTitle returns the source text of para after the first skip bytes,
// with its lines joined by spaces.
func detailsTitle(para *ast.Paragraph, source []byte, skip int) string {
	var words []string
	lines := para.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		v := seg.Value(source)
		if i == 0 {
			v = v[skip:]
		}
		if s := strings.TrimSpace(string(v)); s != "" {
			words = append(words, s)
		}
	}
	return strings.Join(words, " ")
}

// defaultTitle returns the kind name in title case: "Note" or "Details".
func defaultTitle(kind string) string {
	return cases.Title(language.English).String(strings.ToLower(kind))
}

type alertRenderer struct{}

func (alertRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAlert, renderAlert)
}

func renderAlert(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Alert)
	class := strings.ToLower(n.AlertKind)
	if n.AlertKind == "DETAILS" {
		if entering {
			_, _ = w.WriteString(`<details class="alert alert-details">` + "\n<summary>")
			_, _ = w.Write(util.EscapeHTML([]byte(n.Title)))
			_, _ = w.WriteString("</summary>\n")
		} else {
			_, _ = w.WriteString("</details>\n")
		}
		return ast.WalkContinue, nil
	}

	if entering {
		role := "note"
		if n.AlertKind == "WARNING" || n.AlertKind == "CAUTION" {
			role = "alert"
		}
		_, _ = w.WriteString(`<div class="alert alert-` + class + `" role="` + role + `">` + "\n")
		_, _ = w.WriteString(`<p class="alert-title">`)
		_, _ = w.Write(util.EscapeHTML([]byte(n.Title)))
		_, _ = w.WriteString("</p>\n")
	} else {
		_, _ = w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}

type alertExtension struct{}

// Alerts is a goldmark extension that turns marked block quotes into alerts.
var Alerts goldmark.Extender = alertExtension{}

func (alertExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(util.Prioritized(alertTransformer{}, 100)))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(util.Prioritized(alertRenderer{}, 100)))
}
