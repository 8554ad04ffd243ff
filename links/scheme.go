// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: links/scheme.go
// Summary: Scheme table and the maximal-munch URL scanner.

package links

import "strings"

// Scheme describes one recognized URI scheme. Hierarchical schemes (the
// default) require "://" after the keyword; opaque schemes such as mailto
// and tel require only ":".
type Scheme struct {
	Name   string
	Opaque bool
}

// DefaultSchemes is the built-in scheme table. Order matters: at any given
// position schemes are tried in table order, so longer literals come first
// and "https" is never shadowed by "http". Matching is case-sensitive.
var DefaultSchemes = []Scheme{
	{Name: "mailto", Opaque: true},
	{Name: "magnet", Opaque: true},
	{Name: "https"},
	{Name: "http"},
	{Name: "ftp"},
	{Name: "ssh"},
	{Name: "git"},
	{Name: "tel", Opaque: true},
}

// urlPunct is the punctuation allowed inside an address: RFC 3986 reserved
// and unreserved marks plus the percent of escape sequences.
const urlPunct = ".-_~:/?#[]@!$&'()*+,;=%"

func isURLRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(urlPunct, r)
}

// match is one raw scanner hit: rune offsets into the row text, end exclusive.
type match struct {
	start, end int
	scheme     Scheme
}

// findMatches scans the row text for every occurrence of a recognized scheme,
// left to right. Matches never overlap: scanning resumes past each hit.
func findMatches(text []rune, schemes []Scheme) []match {
	var out []match
	for i := 0; i < len(text); {
		m, ok := matchAt(text, i, schemes)
		if !ok {
			i++
			continue
		}
		out = append(out, m)
		i = m.end
	}
	return out
}

func matchAt(text []rune, pos int, schemes []Scheme) (match, bool) {
	for _, s := range schemes {
		if end, ok := matchScheme(text, pos, s); ok {
			return match{start: pos, end: end, scheme: s}, true
		}
	}
	return match{}, false
}

// matchScheme matches one scheme at pos: the keyword, its separator, then a
// maximal munch over the URL rune class. The payload must be non-empty.
func matchScheme(text []rune, pos int, s Scheme) (int, bool) {
	i := pos
	for _, r := range s.Name {
		if i >= len(text) || text[i] != r {
			return 0, false
		}
		i++
	}
	sep := "://"
	if s.Opaque {
		sep = ":"
	}
	for _, r := range sep {
		if i >= len(text) || text[i] != r {
			return 0, false
		}
		i++
	}
	payload := i
	for i < len(text) && isURLRune(text[i]) {
		i++
	}
	if i == payload {
		return 0, false
	}
	return i, true
}
