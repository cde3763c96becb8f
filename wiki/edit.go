// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wiki

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	spaceRun  = regexp.MustCompile(`\s+`)
	notIDChar = regexp.MustCompile(`[^a-z0-9-]`)
)

// SafeID returns the item id derived from title:
// lower case, with each run of white space replaced by a dash
// and everything other than a-z, 0-9 and dashes removed.
func SafeID(title string) string {
	id := cases.Lower(language.Und).String(title)
	id = spaceRun.ReplaceAllString(id, "-")
	return notIDChar.ReplaceAllString(id, "")
}

// StarterContent returns the Markdown of a newly added page.
func StarterContent(title string) string {
	return "# " + title + "\n\nStart writing here."
}

// An Editor holds a working copy of a tree along with the
// Markdown of the pages changed since editing began.
// Nothing is written back: the base tree and files are unchanged.
//
// An Editor is a [Loader] that prefers edited content over base.
// It is safe for concurrent use.
type Editor struct {
	base Loader

	mu      sync.Mutex
	tree    Tree
	content map[string]string // by path
}

// NewEditor returns an Editor starting from a copy of t,
// reading unedited pages from base.
func NewEditor(t Tree, base Loader) *Editor {
	return &Editor{
		base:    base,
		tree:    t.Clone(),
		content: make(map[string]string),
	}
}

// Tree returns a copy of the working tree.
func (e *Editor) Tree() Tree {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tree.Clone()
}

// Add adds a page or section titled title at the end of the section
// parentID, or at the top level if parentID is empty, and returns a copy.
// A page's path is made of its ancestors' ids, and its content starts
// as [StarterContent].
func (e *Editor) Add(parentID string, kind Kind, title, icon string) (*Item, error) {
	if kind != KindPage && kind != KindSection {
		return nil, fmt.Errorf("wiki: add %q: %w", kind, ErrBadKind)
	}
	id := SafeID(title)
	if id == "" {
		return nil, fmt.Errorf("wiki: add %q: %w", title, ErrBadTitle)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.tree.Find(id) != nil {
		return nil, fmt.Errorf("wiki: add %q: %w", id, ErrExists)
	}

	it := &Item{Type: kind, ID: id, Title: title, IconName: icon}
	if parentID == "" {
		if kind == KindPage {
			it.Path = id + ".md"
		}
		e.tree = append(e.tree, it)
	} else {
		parent, prefix := find(e.tree, parentID, "")
		if parent == nil {
			return nil, fmt.Errorf("wiki: add to %q: %w", parentID, ErrNotFound)
		}
		if !parent.IsSection() {
			return nil, fmt.Errorf("wiki: add to %q: %w", parentID, ErrNotSection)
		}
		if kind == KindPage {
			it.Path = prefix + parent.ID + "/" + id + ".md"
		}
		parent.Children = append(parent.Children, it)
	}
	if kind == KindPage {
		e.content[it.Path] = StarterContent(title)
	}
	return it.clone(), nil
}

// Remove removes the item with the given id, with its children
// and any content edited for them.
func (e *Editor) Remove(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	it := e.tree.Find(id)
	if it == nil {
		return fmt.Errorf("wiki: remove %q: %w", id, ErrNotFound)
	}
	for _, c := range Tree([]*Item{it}).Flatten() {
		delete(e.content, c.Path)
	}
	e.tree = remove(e.tree, it)
	return nil
}

func remove(items []*Item, target *Item) []*Item {
	for i, it := range items {
		if it == target {
			return append(items[:i:i], items[i+1:]...)
		}
		if it.IsSection() {
			it.Children = remove(it.Children, target)
		}
	}
	return items
}

// Rename sets the title and icon of the item with the given id.
// The id and path are unchanged.
func (e *Editor) Rename(id, title, icon string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("wiki: rename %q: %w", id, ErrBadTitle)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	it := e.tree.Find(id)
	if it == nil {
		return fmt.Errorf("wiki: rename %q: %w", id, ErrNotFound)
	}
	it.Title = title
	it.IconName = icon
	return nil
}

// SetContent replaces the Markdown of the item with the given id.
func (e *Editor) SetContent(id, content string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	it := e.tree.Find(id)
	if it == nil {
		return fmt.Errorf("wiki: edit %q: %w", id, ErrNotFound)
	}
	if !it.HasContent() {
		return fmt.Errorf("wiki: edit %q: %w", id, ErrNoContent)
	}
	e.content[it.Path] = content
	return nil
}

// Edited returns the sorted paths whose content has been edited.
func (e *Editor) Edited() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	paths := make([]string, 0, len(e.content))
	for p := range e.content {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Load returns the edited content of path if there is any,
// and otherwise the content from the base loader.
func (e *Editor) Load(ctx context.Context, path string) (string, error) {
	e.mu.Lock()
	s, ok := e.content[path]
	e.mu.Unlock()
	if ok {
		return s, nil
	}
	return e.base.Load(ctx, path)
}
