// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: links/trim_test.go
// Summary: Tests for trailing-punctuation trimming.

package links

import "testing"

func trimString(s string) string {
	text := []rune(s)
	m := trimTrailing(text, match{start: 0, end: len(text)})
	return string(text[m.start:m.end])
}

func TestTrimTrailing(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com.", "https://example.com"},
		{"https://example.com,", "https://example.com"},
		{"https://example.com;", "https://example.com"},
		{"https://example.com!", "https://example.com"},
		{"https://example.com)", "https://example.com"},
		{"https://example.com).", "https://example.com"},  // stacked
		{"https://example.com...", "https://example.com"}, // stacked
		{"https://example.com", "https://example.com"},    // nothing to trim
		{"https://en.org/Go_(language)", "https://en.org/Go_(language"},
		{"https://example.com/a?b=c", "https://example.com/a?b=c"},
	}
	for _, c := range cases {
		if got := trimString(c.in); got != c.want {
			t.Errorf("trim(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

// TestTrimTrailing_NeverEmpty tests that trimming always leaves at least one
// rune, even for pathological all-punctuation matches.
func TestTrimTrailing_NeverEmpty(t *testing.T) {
	if got := trimString("..."); got != "." {
		t.Errorf("expected single rune left, got %q", got)
	}
}

func TestTrimTrailing_LeadingUntouched(t *testing.T) {
	if got := trimString(").a."); got != ").a" {
		t.Errorf("expected only the trailing edge trimmed, got %q", got)
	}
}
