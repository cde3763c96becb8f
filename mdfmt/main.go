// Copyright 2021 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mdfmt reformats wiki Markdown data.
//
// Usage:
//
//	mdfmt [-d] [-l] [-w] [file...]
//
// Mdfmt reads the named files, or else standard input, as Markdown documents
// and then reprints the same Markdown documents to standard output,
// with list items renumbered, table cells trimmed and paragraph lines joined.
//
// The -d flag prints the parsed block structure instead of Markdown.
// The -l flag lists the files whose formatting differs from mdfmt's.
// The -w flag specifies to rewrite the files in place.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/awiki/markdown"
)

var (
	dflag = flag.Bool("d", false, "print the parsed block structure")
	lflag = flag.Bool("l", false, "list files whose formatting differs")
	wflag = flag.Bool("w", false, "write reformatted Markdown to files ")
	exit  = 0
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mdfmt [-d] [-l] [-w] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("mdfmt: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		convert(data, "")
	} else {
		for _, file := range flag.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			convert(data, file)
		}
	}
	os.Exit(exit)
}

func convert(data []byte, file string) {
	doc := markdown.Parse(string(data))
	if *dflag {
		os.Stdout.WriteString(dump(doc))
		return
	}
	out := []byte(markdown.ToMarkdown(doc))
	switch {
	case *lflag:
		if string(out) != string(data) {
			name := file
			if name == "" {
				name = "<standard input>"
			}
			fmt.Println(name)
		}
	case *wflag && file != "":
		if err := os.WriteFile(file, out, 0666); err != nil {
			log.Print(err)
			exit = 1
			return
		}
	default:
		os.Stdout.Write(out)
	}
}

// dump returns one line per block: its kind, its line range
// and a short summary of its content.
func dump(doc *markdown.Document) string {
	var b strings.Builder
	for _, blk := range doc.Blocks {
		pos := blk.Pos()
		fmt.Fprintf(&b, "%d-%d ", pos.StartLine, pos.EndLine)
		switch blk := blk.(type) {
		case *markdown.Heading:
			fmt.Fprintf(&b, "heading %d %q", blk.Level, blk.Text)
		case *markdown.Paragraph:
			fmt.Fprintf(&b, "paragraph %q", blk.Text)
		case *markdown.CodeBlock:
			fmt.Fprintf(&b, "code %q %d lines", blk.Language, len(blk.Text))
		case *markdown.List:
			kind := "bullet"
			if blk.Ordered() {
				kind = fmt.Sprintf("ordered from %d", blk.Start)
			}
			fmt.Fprintf(&b, "list %s %d items", kind, len(blk.Items))
		case *markdown.Quote:
			fmt.Fprintf(&b, "quote %d lines", len(blk.Lines))
		case *markdown.Callout:
			fmt.Fprintf(&b, "callout %s %q", blk.Kind, blk.Text)
		case *markdown.Table:
			fmt.Fprintf(&b, "table %d columns %d rows", len(blk.Header), len(blk.Rows))
		case *markdown.ImageBlock:
			fmt.Fprintf(&b, "image %q %q", blk.Alt, blk.Src)
		case *markdown.ThematicBreak:
			b.WriteString("rule")
		default:
			fmt.Fprintf(&b, "%T", blk)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
