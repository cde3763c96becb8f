// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/tools/txtar"
)

func FuzzParse(f *testing.F) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for _, md := range a.Files {
			if strings.HasSuffix(md.Name, ".md") {
				f.Add(decode(string(md.Data)))
			}
		}
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		doc := Parse(s)
		nlines := strings.Count(strings.ReplaceAll(s, "\r\n", "\n"), "\n") + 1
		last := 0
		for i, b := range doc.Blocks {
			pos := b.Pos()
			if pos.StartLine <= last || pos.EndLine < pos.StartLine || pos.EndLine > nlines {
				t.Fatalf("in: %q\nparse:\n%s\nblock %d has bad position %v", s, dump(doc), i, pos)
			}
			last = pos.EndLine
		}
		if a, b := Render(s), Render(s); a != b {
			t.Fatalf("in: %q\nRender not deterministic", s)
		}
	})
}
