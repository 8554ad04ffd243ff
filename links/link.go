// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: links/link.go
// Summary: Link, coordinate range and activation types returned by providers.

package links

import "github.com/gdamore/tcell/v2"

// Position addresses one cell on the screen.
type Position struct {
	X int
	Y int
}

// Range is an inclusive start/end cell pair locating a link on a single row.
// Start.Y always equals End.Y and Start.X <= End.X.
type Range struct {
	Start Position
	End   Position
}

// Contains reports whether the cell at (x, y) lies inside the range.
func (r Range) Contains(x, y int) bool {
	return y == r.Start.Y && x >= r.Start.X && x <= r.End.X
}

// ActivateFunc is called by the host when a link is triggered, carrying the
// originating mouse event (nil for non-mouse activation) and the link text.
type ActivateFunc func(ev *tcell.EventMouse, text string)

// Link is one detected link on a row. Immutable once returned; the provider
// keeps no reference to it.
type Link struct {
	Text     string
	Range    Range
	Activate ActivateFunc
}

// Opener is the collaborator that actually opens an address. What "open"
// means belongs to the host: a browser, a dialer, an OSC 8 passthrough.
type Opener interface {
	OpenURL(url string) error
}
