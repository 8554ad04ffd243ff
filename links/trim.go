// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: links/trim.go
// Summary: Trailing-punctuation trimming of raw scheme matches.

package links

import "strings"

// trailingPunct are runes that are legal inside an address but, at the very
// end of a match, almost always belong to the surrounding sentence.
const trailingPunct = ".,;!)"

// trimTrailing narrows a raw match by greedily dropping trailing sentence
// punctuation. This is a fixed policy, not bracket matching: a ")" at the end
// is stripped whether or not the match contains a "(". The match is never
// trimmed below one rune.
func trimTrailing(text []rune, m match) match {
	for m.end-m.start > 1 && strings.ContainsRune(trailingPunct, text[m.end-1]) {
		m.end--
	}
	return m
}
