// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/ansistrip/strip.go
// Summary: Escape-sequence removal for scanning raw terminal output.

// Package ansistrip flattens raw terminal output to plain text. It is a
// filter, not a parser: sequences are skipped, never interpreted, which is
// all the link scanner needs before laying a line out on a grid.
package ansistrip

import "strings"

// Strip removes ANSI escape sequences and carriage returns from s.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		switch s[i] {
		case 0x1b:
			i = skipEscape(s, i)
		case '\r':
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// skipEscape returns the index just past the escape sequence starting at i.
func skipEscape(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[': // CSI: parameter/intermediate bytes, then a final byte in @..~
		i++
		for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
			i++
		}
		if i < len(s) {
			i++
		}
	case ']': // OSC: terminated by BEL or ST
		i++
		for i < len(s) {
			if s[i] == 0x07 {
				i++
				return i
			}
			if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
				i += 2
				return i
			}
			i++
		}
	case '(', ')': // charset designation carries one more byte
		i += 2
	default:
		i++
	}
	return i
}
