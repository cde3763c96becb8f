// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// DefaultLabels are the list item keywords that introduce a labeled link
// when a [Renderer] does not configure its own.
var DefaultLabels = []string{
	"Вконтакте:",
	"Discord:",
	"Телеграмм:",
	"Онлайн-карта:",
	"Донат:",
}

// An Item is the classified content of one list item.
type Item struct {
	// Task is set when the item starts with "[ ] " or "[x] ".
	Task    bool
	Checked bool

	// Text is the item text after any task marker.
	Text string

	// Label is the labeled-link keyword found in Text, if any.
	// Prefix is Text up to and including Label,
	// Target is the trimmed text that follows it,
	// and URL is where the link points.
	Label  string
	Prefix string
	Target string
	URL    string
}

// ParseItem classifies the raw text of a list item.
// labels is the list of labeled-link keywords to look for, in order;
// the first keyword found in the text wins.
func ParseItem(text string, labels []string) Item {
	it := Item{Text: text}
	for _, m := range []string{"[x] ", "[X] ", "[ ] "} {
		if strings.HasPrefix(text, m) {
			it.Task = true
			it.Checked = m[1] != ' '
			it.Text = text[len(m):]
			break
		}
	}

	for _, key := range labels {
		if key == "" {
			continue
		}
		i := strings.Index(it.Text, key)
		if i < 0 {
			continue
		}
		it.Label = key
		it.Prefix = it.Text[:i+len(key)]
		it.Target = trimSpace(it.Text[i+len(key):])
		it.URL = "#"
		if t := it.Target; strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://") {
			it.URL = t
		}
		break
	}
	return it
}

// Inlines returns the spans for the item.
// A labeled link becomes the formatted prefix followed by a
// [Link] around the formatted target. A task item is wrapped in a [Task].
func (it Item) Inlines() Inlines {
	var x Inlines
	if it.Label != "" {
		x = append(x, Format(it.Prefix)...)
		if it.Target != "" {
			x = append(x, &Plain{" "}, &Link{
				Inner:    Format(it.Target),
				URL:      it.URL,
				External: isExternal(it.URL),
			})
		}
	} else {
		x = Format(it.Text)
	}
	if it.Task {
		return Inlines{&Task{Checked: it.Checked, Inner: x}}
	}
	return x
}
