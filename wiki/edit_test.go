// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wiki

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

var safeIDTests = []struct {
	in, out string
}{
	{"Hello World", "hello-world"},
	{"Getting   Started!", "getting-started"},
	{" padded ", "-padded-"},
	{"C++ & Go", "c--go"},
	{"v2.0 notes", "v20-notes"},
	{"Привет", ""},
}

func TestSafeID(t *testing.T) {
	for _, tt := range safeIDTests {
		if out := SafeID(tt.in); out != tt.out {
			t.Errorf("SafeID(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

func testEditor(t *testing.T) (*Editor, Tree) {
	tree := testTree(t)
	fsys := fstest.MapFS{
		"wiki/intro.md": {Data: []byte("# Intro\n")},
	}
	return NewEditor(tree, FSLoader{FS: fsys}), tree
}

func TestEditorAdd(t *testing.T) {
	e, base := testEditor(t)
	ctx := context.Background()

	it, err := e.Add("deep", KindPage, "New Page", "star")
	if err != nil {
		t.Fatal(err)
	}
	want := &Item{Type: KindPage, ID: "new-page", Title: "New Page", Path: "guide/deep/new-page.md", IconName: "star"}
	if diff := cmp.Diff(want, it); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
	content, err := e.Load(ctx, "guide/deep/new-page.md")
	if err != nil || content != "# New Page\n\nStart writing here." {
		t.Errorf("Load(new page) = %q, %v", content, err)
	}

	it, err = e.Add("", KindSection, "Misc", "")
	if err != nil {
		t.Fatal(err)
	}
	if it.Path != "" || it.Type != KindSection {
		t.Errorf("Add(section) = %+v", it)
	}
	if it, err = e.Add("misc", KindPage, "Notes", ""); err != nil || it.Path != "misc/notes.md" {
		t.Errorf("Add(misc, Notes) = %+v, %v", it, err)
	}
	if it, err = e.Add("", KindPage, "Top", ""); err != nil || it.Path != "top.md" {
		t.Errorf("Add(\"\", Top) = %+v, %v", it, err)
	}

	got := ids(e.Tree().Flatten())
	wantIDs := []string{"intro", "guide", "setup", "dive", "new-page", "missing", "notes", "top"}
	if diff := cmp.Diff(wantIDs, got); diff != "" {
		t.Errorf("Flatten after Add mismatch (-want +got):\n%s", diff)
	}
	if base.Find("new-page") != nil {
		t.Errorf("Add changed the base tree")
	}
	if diff := cmp.Diff([]string{"guide/deep/new-page.md", "misc/notes.md", "top.md"}, e.Edited()); diff != "" {
		t.Errorf("Edited mismatch (-want +got):\n%s", diff)
	}
}

var addErrors = []struct {
	parent string
	kind   Kind
	title  string
	err    error
}{
	{"intro", KindPage, "Child", ErrNotSection},
	{"nope", KindPage, "Child", ErrNotFound},
	{"", KindPage, "Intro", ErrExists},
	{"guide", KindSection, "!!!", ErrBadTitle},
}

func TestEditorAddErrors(t *testing.T) {
	e, _ := testEditor(t)
	for _, tt := range addErrors {
		if _, err := e.Add(tt.parent, tt.kind, tt.title, ""); !errors.Is(err, tt.err) {
			t.Errorf("Add(%q, %s, %q) = %v, want %v", tt.parent, tt.kind, tt.title, err, tt.err)
		}
	}
	if _, err := e.Add("", "folder", "X", ""); !errors.Is(err, ErrBadKind) {
		t.Errorf("Add(folder) = %v, want ErrBadKind", err)
	}
}

func TestEditorRemove(t *testing.T) {
	e, _ := testEditor(t)
	if _, err := e.Add("deep", KindPage, "Extra", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Add("", KindPage, "Kept", ""); err != nil {
		t.Fatal(err)
	}
	if err := e.Remove("guide"); err != nil {
		t.Fatal(err)
	}
	got := ids(e.Tree().Flatten())
	if diff := cmp.Diff([]string{"intro", "missing", "kept"}, got); diff != "" {
		t.Errorf("Flatten after Remove mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"kept.md"}, e.Edited()); diff != "" {
		t.Errorf("Edited after Remove mismatch (-want +got):\n%s", diff)
	}
	if err := e.Remove("guide"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove = %v, want ErrNotFound", err)
	}
	if err := e.Remove("dive"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(child of removed) = %v, want ErrNotFound", err)
	}
}

func TestEditorRename(t *testing.T) {
	e, _ := testEditor(t)
	if err := e.Rename("setup", "Installation", "wrench"); err != nil {
		t.Fatal(err)
	}
	it := e.Tree().Find("setup")
	if it.Title != "Installation" || it.IconName != "wrench" || it.Path != "guide/setup.md" {
		t.Errorf("after Rename, item = %+v", it)
	}
	if err := e.Rename("setup", "  ", ""); !errors.Is(err, ErrBadTitle) {
		t.Errorf("Rename(blank) = %v, want ErrBadTitle", err)
	}
	if err := e.Rename("nope", "X", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Rename(nope) = %v, want ErrNotFound", err)
	}
}

func TestEditorContent(t *testing.T) {
	e, _ := testEditor(t)
	ctx := context.Background()
	if s, err := e.Load(ctx, "intro.md"); err != nil || s != "# Intro\n" {
		t.Errorf("Load(intro.md) = %q, %v, want base content", s, err)
	}
	if err := e.SetContent("intro", "# Changed\n"); err != nil {
		t.Fatal(err)
	}
	if s, err := e.Load(ctx, "intro.md"); err != nil || s != "# Changed\n" {
		t.Errorf("Load(intro.md) = %q, %v, want edited content", s, err)
	}
	if err := e.SetContent("deep", "x"); !errors.Is(err, ErrNoContent) {
		t.Errorf("SetContent(section) = %v, want ErrNoContent", err)
	}
	if err := e.SetContent("nope", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetContent(nope) = %v, want ErrNotFound", err)
	}
}
