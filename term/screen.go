// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/screen.go
// Summary: Read-only row access capabilities consumed by link providers.

package term

// Row is a read-only view of one display line. Implementations expose the
// fixed cell count and per-column cell access; callers must not retain a Row
// beyond the query that produced it.
type Row interface {
	// Len returns the number of cells on the row.
	Len() int
	// CellAt returns the cell at column x. Out-of-range columns yield the
	// zero Cell.
	CellAt(x int) Cell
}

// RowSource is the capability a link provider needs from the host terminal:
// row lookup by vertical index. The second return is false when the row does
// not exist, e.g. the index is outside the buffer.
type RowSource interface {
	Row(y int) (Row, bool)
}
