// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/awiki/markdown"
)

func TestDump(t *testing.T) {
	doc := markdown.Parse("# Title\n\ntext\nmore\n\n3. a\n4. b\n\n> ! hot\n\n---")
	want := `1-1 heading 1 "Title"
3-4 paragraph "text more"
6-7 list ordered from 3 2 items
9-9 callout warning "hot"
11-11 rule
`
	if diff := cmp.Diff(want, dump(doc)); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}
