// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mdcat prints wiki Markdown as styled terminal text.
//
// Usage:
//
//	mdcat [-nohighlight] [-width n] [file...]
//
// Mdcat reads the named files, or else standard input, as Markdown documents
// and prints them to standard output with headings, emphasis, links and
// callouts styled for the terminal. Tables are laid out in aligned columns.
// Colors are used only when standard output is a terminal, and the code
// style follows the terminal's background.
//
// The -width flag sets the column at which paragraphs wrap; 0 disables wrapping.
// The -nohighlight flag prints code blocks without syntax coloring.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/awiki/markdown"
	"github.com/awiki/markdown/highlight"
	"github.com/awiki/markdown/term"
)

var (
	widthFlag = flag.Int("width", 80, "wrap text at `n` columns; 0 disables wrapping")
	noHLFlag  = flag.Bool("nohighlight", false, "do not color code blocks")
	exit      = 0
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mdcat [-nohighlight] [-width n] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("mdcat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	lr := lipgloss.NewRenderer(os.Stdout)
	t := term.New(lr, *widthFlag)
	t.Dark = lr.HasDarkBackground()
	if !*noHLFlag {
		t.Highlighter = highlight.New("", "", false)
	}

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		io.WriteString(os.Stdout, t.Render(markdown.Parse(string(data))))
	} else {
		for i, file := range flag.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			if i > 0 {
				io.WriteString(os.Stdout, "\n")
			}
			io.WriteString(os.Stdout, t.Render(markdown.Parse(string(data))))
		}
	}
	os.Exit(exit)
}
