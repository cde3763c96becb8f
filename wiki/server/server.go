// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server serves a wiki site over HTTP.
//
// Readers get whole HTML pages under /pages/ and JSON under /api/.
// The /api/edit/ routes change a working copy of the tree kept in
// memory; nothing is written to disk.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tliron/commonlog"

	"github.com/awiki/markdown/wiki"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

func logger() commonlog.Logger { return commonlog.GetLogger("wiki.server") }

// A Server serves one wiki site.
type Server struct {
	site   *wiki.Site
	theme  wiki.Theme
	editor *wiki.Editor
}

// New returns a Server for site, showing pages in theme
// unless a request asks otherwise.
func New(site *wiki.Site, theme wiki.Theme) (*Server, error) {
	if site == nil {
		return nil, errors.New("server: site required")
	}
	if site.Loader == nil {
		return nil, errors.New("server: site has no loader")
	}
	return &Server{
		site:   site,
		theme:  theme,
		editor: wiki.NewEditor(site.Tree, site.Loader),
	}, nil
}

// Routes returns the handler for all of the server's routes.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHTMLPage)
	mux.HandleFunc("GET /pages/{id}", s.handleHTMLPage)
	mux.HandleFunc("GET /highlight.css", s.handleCSS)

	mux.HandleFunc("GET /api/tree", s.handleTree)
	mux.HandleFunc("GET /api/pages/{id}", s.handlePage)
	mux.HandleFunc("POST /api/render", s.handleRender)

	mux.HandleFunc("GET /api/edit/tree", s.handleEditTree)
	mux.HandleFunc("GET /api/edit/pages/{id}", s.handleEditPage)
	mux.HandleFunc("PUT /api/edit/pages/{id}", s.handleEditContent)
	mux.HandleFunc("POST /api/edit/items", s.handleAddItem)
	mux.HandleFunc("PATCH /api/edit/items/{id}", s.handleRenameItem)
	mux.HandleFunc("DELETE /api/edit/items/{id}", s.handleRemoveItem)
	return logMiddleware(mux)
}

// dark resolves the theme of r: the theme query parameter,
// then the configured theme, with the client hint for "system".
func (s *Server) dark(r *http.Request) bool {
	hint := strings.Trim(r.Header.Get("Sec-CH-Prefers-Color-Scheme"), `"`)
	return wiki.ResolveTheme(s.theme, r.URL.Query().Get("theme"), hint)
}

// --- Handlers ---

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.site.Tree)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, s.site)
}

func (s *Server) handleEditPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, s.draft())
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, site *wiki.Site) {
	page, err := site.Page(r.Context(), r.PathValue("id"), s.dark(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// draft returns the site as currently edited.
func (s *Server) draft() *wiki.Site {
	return s.site.WithTree(s.editor.Tree(), s.editor)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, s.site.Render(string(body), s.dark(r)))
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	h := s.site.Highlighter
	if h == nil {
		http.NotFound(w, r)
		return
	}
	var buf bytes.Buffer
	if err := h.CSS(&buf, s.dark(r)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleEditTree(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.editor.Tree())
}

type addReq struct {
	Parent string    `json:"parent"`
	Type   wiki.Kind `json:"type"`
	Title  string    `json:"title"`
	Icon   string    `json:"icon"`
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if !decode(w, r, &req) {
		return
	}
	it, err := s.editor.Add(req.Parent, req.Type, req.Title, req.Icon)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

type renameReq struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

func (s *Server) handleRenameItem(w http.ResponseWriter, r *http.Request) {
	var req renameReq
	if !decode(w, r, &req) {
		return
	}
	if err := s.editor.Rename(r.PathValue("id"), req.Title, req.Icon); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := s.editor.Remove(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEditContent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	if err := s.editor.SetContent(r.PathValue("id"), string(body)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Helpers ---

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError replies with the status matching err.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, wiki.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, wiki.ErrExists):
		status = http.StatusConflict
	case errors.Is(err, wiki.ErrNotSection), errors.Is(err, wiki.ErrBadTitle),
		errors.Is(err, wiki.ErrBadKind), errors.Is(err, wiki.ErrNoContent):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		logger().Errorf("%s", err)
	}
	http.Error(w, err.Error(), status)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logger().Infof("%s %s %d %s", r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}
