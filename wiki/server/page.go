// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/awiki/markdown/wiki"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en"{{if .Dark}} class="dark"{{end}}>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Page.Title}} - {{.Site}}</title>
<link rel="stylesheet" href="/highlight.css?theme={{.Theme}}">
</head>
<body>
<header><a class="site" href="/">{{.Site}}</a></header>
<nav class="sidebar">{{template "items" .Tree}}</nav>
<main>
<h1 class="page-title">{{with .Page.Icon}}<span class="icon">{{.}}</span> {{end}}{{.Page.Title}}</h1>
{{.Body}}
<nav class="pager">
{{- with .Page.Prev}}
<a class="prev" href="/pages/{{.ID}}">&larr; {{.Title}}</a>
{{- end}}
{{- with .Page.Next}}
<a class="next" href="/pages/{{.ID}}">{{.Title}} &rarr;</a>
{{- end}}
</nav>
</main>
</body>
</html>
{{define "items"}}<ul>
{{- range .}}
<li>{{if .HasContent}}<a href="/pages/{{.ID}}">{{.Title}}</a>{{else}}<span>{{.Title}}</span>{{end}}
{{- if .Children}}{{template "items" .Children}}{{end}}</li>
{{- end}}
</ul>{{end}}`))

type pageData struct {
	Site  string
	Theme string
	Dark  bool
	Tree  wiki.Tree
	Page  *wiki.Page
	Body  template.HTML
}

func (s *Server) handleHTMLPage(w http.ResponseWriter, r *http.Request) {
	dark := s.dark(r)
	page, err := s.site.Page(r.Context(), r.PathValue("id"), dark)
	if err != nil {
		writeError(w, err)
		return
	}
	data := pageData{
		Site:  s.site.Name,
		Theme: "light",
		Dark:  dark,
		Tree:  s.site.Tree,
		Page:  page,
		// The renderer escapes all page text.
		Body: template.HTML(page.HTML),
	}
	if dark {
		data.Theme = "dark"
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		writeError(w, err)
		return
	}
	if s.theme == wiki.ThemeSystem {
		w.Header().Set("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
		w.Header().Set("Vary", "Sec-CH-Prefers-Color-Scheme")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
