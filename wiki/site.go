// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wiki

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/tliron/commonlog"

	"github.com/awiki/markdown"
	"github.com/awiki/markdown/highlight"
)

// logger is looked up on use so that a backend configured
// by main after package initialization takes effect.
func logger() commonlog.Logger { return commonlog.GetLogger("wiki") }

const (
	// WelcomePage is shown when the tree has no pages.
	WelcomePage = "# Welcome!\n\nSelect a page from the sidebar to get started."

	// ErrorPage is shown in place of a page that could not be loaded.
	ErrorPage = "# Error\n\nCould not load the page content."
)

// A Link refers to another page of the site.
type Link struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

func linkTo(it *Item) *Link {
	if it == nil {
		return nil
	}
	return &Link{ID: it.ID, Title: it.Title, Icon: it.IconName}
}

// A Page is a rendered wiki page.
type Page struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
	HTML  string `json:"html"`
	Prev  *Link  `json:"prev"`
	Next  *Link  `json:"next"`

	// Markdown is the source HTML was rendered from.
	Markdown string `json:"-"`
}

// A Site renders the pages of a tree.
type Site struct {
	Name   string
	Tree   Tree
	Loader Loader

	// Renderer is the base configuration for rendering pages.
	// Its Dark field is set per call.
	Renderer markdown.Renderer

	// Highlighter, if non-nil, is the code highlighter that
	// Renderer uses, kept for its stylesheet.
	Highlighter *highlight.Highlighter
}

// NewSite returns the site described by cfg, reading the
// manifest and pages from fsys.
func NewSite(cfg Config, fsys fs.FS) (*Site, error) {
	tree, err := ReadManifest(fsys)
	if err != nil {
		return nil, err
	}
	h := highlight.New(cfg.HighlightStyle, cfg.HighlightDarkStyle, true)
	s := &Site{
		Name:        cfg.SiteName,
		Tree:        tree,
		Loader:      FSLoader{FS: fsys},
		Highlighter: h,
	}
	s.Renderer.Labels = cfg.Labels
	s.Renderer.Highlighter = h
	logger().Infof("loaded %s: %d items, %d pages", cfg.SiteName, len(tree), len(tree.Flatten()))
	return s, nil
}

// WithTree returns a copy of s showing t, loaded by l.
func (s *Site) WithTree(t Tree, l Loader) *Site {
	c := *s
	c.Tree = t
	c.Loader = l
	return &c
}

// Render renders content with the site's configuration.
func (s *Site) Render(content string, dark bool) string {
	r := s.Renderer
	r.Dark = dark
	return r.Render(content)
}

// Page loads and renders the page with the given id.
// An empty id selects the first page, or the [WelcomePage]
// if the tree has none. A section without a path renders as
// the placeholder. A page that fails to load renders as the
// [ErrorPage]; the failure is logged, not returned.
//
// Page returns an error wrapping [ErrNotFound] for an unknown id,
// and the context's error if ctx is done.
func (s *Site) Page(ctx context.Context, id string, dark bool) (*Page, error) {
	if id == "" {
		flat := s.Tree.Flatten()
		if len(flat) == 0 {
			return &Page{
				Title:    "Welcome",
				HTML:     s.Render(WelcomePage, dark),
				Markdown: WelcomePage,
			}, nil
		}
		id = flat[0].ID
	}

	it := s.Tree.Find(id)
	if it == nil {
		return nil, fmt.Errorf("wiki: page %q: %w", id, ErrNotFound)
	}

	var content string
	if it.HasContent() {
		var err error
		content, err = s.Loader.Load(ctx, it.Path)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			logger().Errorf("page %s: %s", id, err)
			content = ErrorPage
		}
	}

	prev, next := s.Tree.Neighbors(id)
	return &Page{
		ID:       it.ID,
		Title:    it.Title,
		Icon:     it.IconName,
		HTML:     s.Render(content, dark),
		Prev:     linkTo(prev),
		Next:     linkTo(next),
		Markdown: content,
	}, nil
}
