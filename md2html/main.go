// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts wiki Markdown to HTML.
//
// Usage:
//
//	md2html [-dark] [-gfm] [-highlight] [-labels list] [-tabs] [file...]
//
// Md2html reads the named files, or else standard input, as Markdown documents
// and then prints the corresponding HTML to standard output.
// Each document is printed as a <div class="markdown"> fragment.
//
// The -dark flag renders for a dark page background.
// The -gfm flag reads GitHub Flavored Markdown instead of the wiki dialect.
// The -highlight flag colors fenced code that names its language.
// The -labels flag sets the comma-separated list item labels that
// introduce links, replacing the default list.
// The -tabs flag expands tabs to 4-space tab stops before converting.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/awiki/markdown"
	"github.com/awiki/markdown/gfm"
	"github.com/awiki/markdown/highlight"
)

var (
	darkFlag      = flag.Bool("dark", false, "render for a dark background")
	gfmFlag       = flag.Bool("gfm", false, "read GitHub Flavored Markdown")
	highlightFlag = flag.Bool("highlight", false, "highlight fenced code")
	labelsFlag    = flag.String("labels", "", "comma-separated list item `labels` that introduce links")
	tabsFlag      = flag.Bool("tabs", false, "expand tabs to 4-space tab stops")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: md2html [flags] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("md2html: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	c := newConverter(*darkFlag, *gfmFlag, *highlightFlag, *labelsFlag)
	args := flag.Args()
	if len(args) == 0 {
		do(c, os.Stdin)
	} else {
		for _, arg := range args {
			f, err := os.Open(arg)
			if err != nil {
				log.Fatal(err)
			}
			do(c, f)
			f.Close()
		}
	}
}

func do(c *converter, f *os.File) {
	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatal(err)
	}
	if *tabsFlag {
		data = replaceTabs(data)
	}
	out, err := c.toHTML(data)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.WriteString(out)
}

// A converter turns one document into HTML.
type converter struct {
	r   markdown.Renderer
	gfm *gfm.Renderer
}

func newConverter(dark, useGFM, hl bool, labels string) *converter {
	c := &converter{}
	c.r.Dark = dark
	if labels != "" {
		c.r.Labels = strings.Split(labels, ",")
		for i, l := range c.r.Labels {
			c.r.Labels[i] = strings.TrimSpace(l)
		}
	}
	if hl {
		c.r.Highlighter = highlight.New("", "", false)
	}
	if useGFM {
		if hl {
			c.gfm = gfm.ForTheme(dark)
		} else {
			c.gfm = gfm.New(gfm.Options{})
		}
	}
	return c
}

// toHTML converts Markdown to HTML.
func (c *converter) toHTML(md []byte) (string, error) {
	if c.gfm == nil {
		return c.r.Render(string(md)), nil
	}
	out, err := c.gfm.Render(md)
	if err != nil {
		return "", err
	}
	class := "markdown"
	if c.r.Dark {
		class += " dark"
	}
	return `<div class="` + class + `">` + "\n" + string(out) + "</div>\n", nil
}

// replaceTabs replaces all tabs in text with spaces up to a 4-space tab stop.
//
// This function does not handle multi-codepoint Unicode sequences correctly.
func replaceTabs(text []byte) []byte {
	var buf bytes.Buffer
	col := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]

		switch r {
		case '\n':
			buf.WriteByte('\n')
			col = 0

		case '\t':
			buf.WriteByte(' ')
			col++
			for col%4 != 0 {
				buf.WriteByte(' ')
				col++
			}

		default:
			buf.WriteRune(r)
			col++
		}
	}
	return buf.Bytes()
}
