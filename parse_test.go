// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/tools/txtar"
)

var parseTests = []struct {
	name string
	in   string
	want []Block
}{
	{
		"table",
		"[TABLE]\nName; Role\nAlice; Admin\nBob; Editor\n[/TABLE]",
		[]Block{
			&Table{
				Position: Position{1, 5},
				Header:   []string{"Name", "Role"},
				Rows:     [][]string{{"Alice", "Admin"}, {"Bob", "Editor"}},
			},
		},
	},
	{
		"unclosed table",
		"[TABLE]\nA;B\n\nC ; D ",
		[]Block{
			&Table{Position: Position{1, 4}, Header: []string{"A", "B"}, Rows: [][]string{{"C", "D"}}},
		},
	},
	{
		"checkbox list",
		"* [x] Done\n* [ ] Todo",
		[]Block{
			&List{Position: Position{1, 2}, Bullet: '*', Start: 1, Items: []string{"[x] Done", "[ ] Todo"}},
		},
	},
	{
		"ordered list",
		"10. ten\n11.\televen\n* star",
		[]Block{
			&List{Position: Position{1, 2}, Bullet: '.', Start: 10, Items: []string{"ten", "eleven"}},
			&List{Position: Position{3, 3}, Bullet: '*', Start: 1, Items: []string{"star"}},
		},
	},
	{
		"info callout",
		"> i Remember to save",
		[]Block{
			&Callout{Position: Position{1, 1}, Kind: CalloutInfo, Text: "Remember to save"},
		},
	},
	{
		"warning callout",
		"  > ! Careful  ",
		[]Block{
			&Callout{Position: Position{1, 1}, Kind: CalloutWarning, Text: "Careful"},
		},
	},
	{
		"fence",
		"```js\n**not bold**\n\n```\ntext",
		[]Block{
			&CodeBlock{Position: Position{1, 4}, Language: "js", Text: []string{"**not bold**", ""}},
			&Paragraph{Position: Position{5, 5}, Text: "text"},
		},
	},
	{
		"heading levels",
		"# one\n###### six\n####### seven",
		[]Block{
			&Heading{Position: Position{1, 1}, Level: 1, Text: "one"},
			&Heading{Position: Position{2, 2}, Level: 6, Text: "six"},
			&Paragraph{Position: Position{3, 3}, Text: "####### seven"},
		},
	},
	{
		"paragraph stops at block",
		"a\nb\n---\n\nc\n![x](y)",
		[]Block{
			&Paragraph{Position: Position{1, 2}, Text: "a b"},
			&ThematicBreak{Position: Position{3, 3}},
			&Paragraph{Position: Position{5, 5}, Text: "c"},
			&ImageBlock{Position: Position{6, 6}, Alt: "x", Src: "y"},
		},
	},
	{
		"quote",
		"> one\n>\n>two\n",
		[]Block{
			&Quote{Position: Position{1, 2}, Lines: []string{"one", ""}},
			&Paragraph{Position: Position{3, 3}, Text: ">two"},
		},
	},
	{
		"crlf",
		"# title\r\n\r\nbody\r\n",
		[]Block{
			&Heading{Position: Position{1, 1}, Level: 1, Text: "title"},
			&Paragraph{Position: Position{3, 3}, Text: "body"},
		},
	},
}

func TestParse(t *testing.T) {
	for _, tt := range parseTests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.in)
			if diff := cmp.Diff(tt.want, doc.Blocks); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	doc := Parse("")
	if len(doc.Blocks) != 0 || doc.Position != (Position{}) {
		t.Errorf("Parse(\"\") = %+v, want empty document", doc)
	}
	if h := ToHTML(doc); h != "" {
		t.Errorf("ToHTML(Parse(\"\")) = %q, want \"\"", h)
	}
}

func TestCheckboxItems(t *testing.T) {
	doc := Parse("* [x] Done\n* [ ] Todo")
	list := doc.Blocks[0].(*List)
	var got []bool
	for _, text := range list.Items {
		it := ParseItem(text, nil)
		if !it.Task {
			t.Errorf("ParseItem(%q).Task = false, want true", text)
		}
		got = append(got, it.Checked)
	}
	if diff := cmp.Diff([]bool{true, false}, got); diff != "" {
		t.Errorf("checked states (-want +got):\n%s", diff)
	}
}

func TestCodeVerbatim(t *testing.T) {
	h := ToHTML(Parse("```\n**not bold** <i> `x`\n```"))
	if !strings.Contains(h, "**not bold** &lt;i&gt; `x`\n") || strings.Contains(h, "<strong>") {
		t.Errorf("fence content was formatted:\n%s", h)
	}
}

func TestRender(t *testing.T) {
	const placeholder = `<div class="markdown">` + "\n" +
		`<p class="placeholder">Select a page to view its content.</p>` + "\n" +
		"</div>\n"
	if h := Render(""); h != placeholder {
		t.Errorf("Render(\"\") = %q, want %q", h, placeholder)
	}

	r := &Renderer{Dark: true}
	want := `<div class="markdown dark">` + "\n" + "<p>hi</p>\n</div>\n"
	if h := r.Render("hi"); h != want {
		t.Errorf("dark Render(\"hi\") = %q, want %q", h, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, in := range markdownInputs(t) {
		if a, b := Render(in), Render(in); a != b {
			t.Errorf("Render(%q) differs between calls:\n%s\n%s", in, a, b)
		}
	}
}

// TestLineCoverage checks that every non-blank line belongs
// to exactly one block and that blocks appear in source order.
func TestLineCoverage(t *testing.T) {
	for _, in := range markdownInputs(t) {
		if strings.Contains(in, "[TABLE]\n\n[/TABLE]") {
			// An empty table consumes its lines without producing a block.
			continue
		}
		lines := strings.Split(strings.ReplaceAll(in, "\r\n", "\n"), "\n")
		owner := make([]int, len(lines)+1)
		last := 0
		doc := Parse(in)
		for i, b := range doc.Blocks {
			pos := b.Pos()
			if pos.StartLine <= last || pos.EndLine < pos.StartLine {
				t.Errorf("Parse(%q): block %d at %v overlaps previous block ending at %d", in, i, pos, last)
			}
			last = pos.EndLine
			for l := pos.StartLine; l <= pos.EndLine && l <= len(lines); l++ {
				owner[l] = i + 1
			}
		}
		for l, line := range lines {
			if strings.TrimSpace(line) != "" && owner[l+1] == 0 {
				t.Errorf("Parse(%q): line %d %q not in any block", in, l+1, line)
			}
		}
	}
}

// TestMarkdownRoundTrip checks that printing a document and
// parsing it again produces the same blocks.
func TestMarkdownRoundTrip(t *testing.T) {
	ignorePos := cmpopts.IgnoreTypes(Position{})
	for _, in := range markdownInputs(t) {
		doc := Parse(in)
		md := ToMarkdown(doc)
		doc2 := Parse(md)
		if diff := cmp.Diff(doc.Blocks, doc2.Blocks, ignorePos); diff != "" {
			t.Errorf("Parse(ToMarkdown(Parse(%q))) mismatch (-want +got):\nmarkdown:\n%s\n%s", in, md, diff)
		}
		if md2 := ToMarkdown(doc2); md2 != md {
			t.Errorf("ToMarkdown not stable for %q:\n%s\n---\n%s", in, md, md2)
		}
	}
}

func TestToText(t *testing.T) {
	doc := Parse("## A *b*\n\n* [x] Discord: https://d.gg\n\n> i see [docs](/d)")
	want := "A b\n\n[x] Discord: https://d.gg\n\nsee docs\n"
	if got := ToText(doc); got != want {
		t.Errorf("ToText = %q, want %q", got, want)
	}
}

func TestRendererToText(t *testing.T) {
	doc := Parse("* Site:   https://example.com")
	if got, want := ToText(doc), "Site:   https://example.com\n"; got != want {
		t.Errorf("ToText = %q, want %q", got, want)
	}
	r := Renderer{Labels: []string{"Site:"}}
	if got, want := r.ToText(doc), "Site: https://example.com\n"; got != want {
		t.Errorf("Renderer{Labels: Site:}.ToText = %q, want %q", got, want)
	}
}

func TestHeadingID(t *testing.T) {
	tests := []struct {
		text, id string
	}{
		{"Hello World", "hello-world"},
		{"Sub *title*", "sub-title"},
		{"  Привет,  мир!  ", "привет-мир"},
		{"a_b--c", "a-b-c"},
		{"***", ""},
	}
	for _, tt := range tests {
		h := &Heading{Level: 2, Text: tt.text}
		if id := h.ID(); id != tt.id {
			t.Errorf("Heading{Text: %q}.ID() = %q, want %q", tt.text, id, tt.id)
		}
	}
}

// markdownInputs returns the Markdown inputs from the testdata files.
func markdownInputs(t *testing.T) []string {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	var list []string
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatal(err)
		}
		for _, f := range a.Files {
			if strings.HasSuffix(f.Name, ".md") {
				list = append(list, decode(string(f.Data)))
			}
		}
	}
	return list
}
