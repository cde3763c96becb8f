// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wiki

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testManifest = `[
  {"type": "page", "id": "intro", "title": "Intro", "path": "intro.md", "iconName": "scroll"},
  {"type": "section", "id": "guide", "title": "Guide", "path": "guide/index.md", "children": [
    {"type": "page", "id": "setup", "title": "Setup", "path": "guide/setup.md"},
    {"type": "section", "id": "deep", "title": "Deep", "children": [
      {"type": "page", "id": "dive", "title": "Dive", "path": "guide/deep/dive.md"}
    ]}
  ]},
  {"type": "page", "id": "missing", "title": "Missing", "path": "missing.md"}
]`

func testTree(t *testing.T) Tree {
	t.Helper()
	tree, err := ParseManifest([]byte(testManifest))
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func ids(items []*Item) []string {
	var s []string
	for _, it := range items {
		s = append(s, it.ID)
	}
	return s
}

func TestParseManifest(t *testing.T) {
	tree := testTree(t)
	if len(tree) != 3 {
		t.Fatalf("len(tree) = %d, want 3", len(tree))
	}
	want := &Item{Type: KindPage, ID: "intro", Title: "Intro", Path: "intro.md", IconName: "scroll"}
	if diff := cmp.Diff(want, tree[0]); diff != "" {
		t.Errorf("tree[0] mismatch (-want +got):\n%s", diff)
	}
}

var badManifests = []struct {
	in  string
	err string
}{
	{`{`, "unexpected end"},
	{`[{"type": "page", "title": "x", "path": "x.md"}]`, "no id"},
	{`[{"type": "page", "id": "x"}]`, "no path"},
	{`[{"type": "folder", "id": "x"}]`, "unknown type"},
	{`[{"type": "section", "id": "s", "children": [{"type": "page", "id": "p"}]}]`, `page "p" has no path`},
	{`[null]`, "null item"},
}

func TestParseManifestErrors(t *testing.T) {
	for _, tt := range badManifests {
		_, err := ParseManifest([]byte(tt.in))
		if err == nil || !strings.Contains(err.Error(), tt.err) {
			t.Errorf("ParseManifest(%s) = %v, want error containing %q", tt.in, err, tt.err)
		}
	}
}

func TestFind(t *testing.T) {
	tree := testTree(t)
	for _, id := range []string{"intro", "guide", "setup", "deep", "dive"} {
		if it := tree.Find(id); it == nil || it.ID != id {
			t.Errorf("Find(%q) = %v", id, it)
		}
	}
	if it := tree.Find("nope"); it != nil {
		t.Errorf("Find(nope) = %v, want nil", it)
	}
}

func TestFlatten(t *testing.T) {
	got := ids(testTree(t).Flatten())
	want := []string{"intro", "guide", "setup", "dive", "missing"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

var neighborTests = []struct {
	id, prev, next string
}{
	{"intro", "", "guide"},
	{"guide", "intro", "setup"},
	{"dive", "setup", "missing"},
	{"missing", "dive", ""},
	{"deep", "", ""},
	{"nope", "", ""},
}

func TestNeighbors(t *testing.T) {
	tree := testTree(t)
	id := func(it *Item) string {
		if it == nil {
			return ""
		}
		return it.ID
	}
	for _, tt := range neighborTests {
		prev, next := tree.Neighbors(tt.id)
		if id(prev) != tt.prev || id(next) != tt.next {
			t.Errorf("Neighbors(%q) = %q, %q, want %q, %q", tt.id, id(prev), id(next), tt.prev, tt.next)
		}
	}
}

func TestClone(t *testing.T) {
	tree := testTree(t)
	c := tree.Clone()
	if diff := cmp.Diff(tree, c); diff != "" {
		t.Fatalf("Clone mismatch (-want +got):\n%s", diff)
	}
	c.Find("dive").Title = "Changed"
	c[1].Children = nil
	if tree.Find("dive").Title != "Dive" || len(tree[1].Children) != 2 {
		t.Errorf("changing the clone changed the tree")
	}
}
