// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wiki assembles a wiki site from a manifest of pages
// and the Markdown files they name.
//
// The manifest is a JSON array of items. A page names a Markdown
// file by path; a section groups other items and may have an index
// page of its own:
//
//	[
//	  {"type": "page", "id": "intro", "title": "Intro", "path": "intro.md"},
//	  {"type": "section", "id": "guide", "title": "Guide", "children": [
//	    {"type": "page", "id": "setup", "title": "Setup", "path": "guide/setup.md"}
//	  ]}
//	]
package wiki

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind is the kind of a tree [Item].
type Kind string

const (
	KindPage    Kind = "page"
	KindSection Kind = "section"
)

var (
	ErrNotFound   = errors.New("wiki: no such item")
	ErrNotSection = errors.New("wiki: item is not a section")
	ErrExists     = errors.New("wiki: item already exists")
	ErrBadTitle   = errors.New("wiki: title has no usable id characters")
	ErrBadKind    = errors.New("wiki: unknown item kind")
)

// An Item is a page or section of the wiki tree.
type Item struct {
	Type     Kind    `json:"type"`
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Path     string  `json:"path,omitempty"`
	IconName string  `json:"iconName,omitempty"`
	Children []*Item `json:"children,omitempty"`
}

// IsSection reports whether it is a section.
func (it *Item) IsSection() bool { return it.Type == KindSection }

// HasContent reports whether it names a Markdown file.
func (it *Item) HasContent() bool { return it.Path != "" }

func (it *Item) clone() *Item {
	c := *it
	c.Children = cloneItems(it.Children)
	return &c
}

func cloneItems(items []*Item) []*Item {
	if items == nil {
		return nil
	}
	out := make([]*Item, len(items))
	for i, it := range items {
		out[i] = it.clone()
	}
	return out
}

// A Tree is the top level of the wiki, in sidebar order.
type Tree []*Item

// ParseManifest parses the JSON manifest data.
// Every item must have an id and a known type, and every page a path.
func ParseManifest(data []byte) (Tree, error) {
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("wiki: manifest: %w", err)
	}
	if err := check(t); err != nil {
		return nil, fmt.Errorf("wiki: manifest: %w", err)
	}
	return t, nil
}

func check(items []*Item) error {
	for _, it := range items {
		switch {
		case it == nil:
			return errors.New("null item")
		case it.ID == "":
			return fmt.Errorf("item %q has no id", it.Title)
		case it.Type == KindPage:
			if it.Path == "" {
				return fmt.Errorf("page %q has no path", it.ID)
			}
			if len(it.Children) > 0 {
				return fmt.Errorf("page %q has children", it.ID)
			}
		case it.Type == KindSection:
			if err := check(it.Children); err != nil {
				return err
			}
		default:
			return fmt.Errorf("item %q has unknown type %q", it.ID, it.Type)
		}
	}
	return nil
}

// Find returns the item with the given id, or nil.
func (t Tree) Find(id string) *Item {
	it, _ := find(t, id, "")
	return it
}

// find returns the item with the given id and the
// path prefix made of its ancestors' ids.
func find(items []*Item, id, prefix string) (*Item, string) {
	for _, it := range items {
		if it.ID == id {
			return it, prefix
		}
		if it.IsSection() {
			if found, p := find(it.Children, id, prefix+it.ID+"/"); found != nil {
				return found, p
			}
		}
	}
	return nil, ""
}

// Flatten returns the items that have content, depth first,
// in the order the sidebar shows them.
// A section precedes its children.
func (t Tree) Flatten() []*Item {
	var flat []*Item
	var walk func([]*Item)
	walk = func(items []*Item) {
		for _, it := range items {
			if it.HasContent() {
				flat = append(flat, it)
			}
			if it.IsSection() {
				walk(it.Children)
			}
		}
	}
	walk(t)
	return flat
}

// Neighbors returns the entries of [Tree.Flatten] before and
// after the item with the given id. Either may be nil.
func (t Tree) Neighbors(id string) (prev, next *Item) {
	flat := t.Flatten()
	for i, it := range flat {
		if it.ID != id {
			continue
		}
		if i > 0 {
			prev = flat[i-1]
		}
		if i+1 < len(flat) {
			next = flat[i+1]
		}
		break
	}
	return prev, next
}

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	return cloneItems(t)
}
