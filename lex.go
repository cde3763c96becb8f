// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isBlank reports whether s contains only spaces and tabs
// (and a possible trailing carriage return).
func isBlank(s string) bool {
	return trimSpace(s) == ""
}

// trimSpace trims leading and trailing spaces, tabs, and carriage returns.
// Lines keep any \r from \r\n line endings, so the trim removes it too.
func trimSpace(s string) string {
	return strings.Trim(s, " \t\r")
}

// htmlEscaper escapes text for use in HTML element content and attribute values.
var htmlEscaper = strings.NewReplacer(
	`"`, "&quot;",
	`'`, "&#39;",
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// htmlLinkEscaper escapes a URL for use in an href or src attribute.
var htmlLinkEscaper = strings.NewReplacer(
	`"`, "%22",
	"&", "&amp;",
	"<", "%3C",
	">", "%3E",
	" ", "%20",
	"\\", "%5C",
)

// safeURL returns url, or "#" if url uses a scheme that
// would run script or embed content when followed.
func safeURL(url string) string {
	s := strings.ToLower(trimSpace(url))
	for _, scheme := range []string{"javascript:", "vbscript:", "data:"} {
		if strings.HasPrefix(s, scheme) {
			return "#"
		}
	}
	return url
}

// isExternal reports whether url leaves the wiki.
// Anything starting with "http" counts, including "https".
func isExternal(url string) bool {
	return strings.HasPrefix(url, "http")
}

// slug returns an anchor identifier for heading text s:
// the case-folded letters and digits of s, with runs of
// spaces, hyphens, and underscores collapsed to a single hyphen.
func slug(s string) string {
	s = cases.Fold().String(s)
	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '\t':
			dash = true
		}
	}
	return b.String()
}
