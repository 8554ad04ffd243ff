// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/grid.go
// Summary: In-memory cell grid implementing the RowSource capability.

package term

import "github.com/mattn/go-runewidth"

// Grid is a fixed-size in-memory cell buffer. It backs the cmd tools and
// serves as the host stand-in for engine tests; a real terminal exposes the
// same surface through RowSource.
type Grid struct {
	width, height int
	cells         [][]Cell
}

// NewGrid creates a grid of blank cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([][]Cell, height),
	}
	for y := range g.cells {
		g.cells[y] = blankLine(width)
	}
	return g
}

func blankLine(width int) []Cell {
	line := make([]Cell, width)
	for x := range line {
		line[x] = Cell{Rune: ' ', FG: DefaultFG, BG: DefaultBG}
	}
	return line
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Resize grows or shrinks the grid, preserving the overlapping content.
func (g *Grid) Resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}

	newCells := make([][]Cell, height)
	for y := range newCells {
		newCells[y] = blankLine(width)
	}

	rowsToCopy := min(g.height, height)
	colsToCopy := min(g.width, width)
	for y := 0; y < rowsToCopy; y++ {
		copy(newCells[y][:colsToCopy], g.cells[y][:colsToCopy])
	}

	g.cells = newCells
	g.width = width
	g.height = height
}

// SetCell writes a single cell. Out-of-range coordinates are ignored.
func (g *Grid) SetCell(x, y int, c Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = c
}

// WriteString lays out s on row y starting at column 0 and blanks the rest
// of the row. Wide runes take their display width in cells: the leading cell
// carries the rune with Wide set, the following cell is a continuation with
// Rune 0. Zero-width runes are dropped. Runes that do not fit are truncated.
func (g *Grid) WriteString(y int, s string) {
	if y < 0 || y >= g.height {
		return
	}
	x := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > g.width {
			break
		}
		g.cells[y][x] = Cell{Rune: r, FG: DefaultFG, BG: DefaultBG, Wide: w == 2}
		if w == 2 {
			g.cells[y][x+1] = Cell{FG: DefaultFG, BG: DefaultBG}
		}
		x += w
	}
	for ; x < g.width; x++ {
		g.cells[y][x] = Cell{Rune: ' ', FG: DefaultFG, BG: DefaultBG}
	}
}

// Row returns the read-only view of row y, implementing RowSource.
func (g *Grid) Row(y int) (Row, bool) {
	if y < 0 || y >= g.height {
		return nil, false
	}
	return gridRow{g: g, y: y}, true
}

type gridRow struct {
	g *Grid
	y int
}

func (r gridRow) Len() int { return r.g.width }

func (r gridRow) CellAt(x int) Cell {
	if x < 0 || x >= r.g.width {
		return Cell{}
	}
	return r.g.cells[r.y][x]
}
