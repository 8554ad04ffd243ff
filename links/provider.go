// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: links/provider.go
// Summary: Web link provider: row materialization, scanning, trimming and
// coordinate mapping over a host RowSource.

package links

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/HageMaster3108/ghostty-web/term"
)

// Provider finds web-style links on single rows of a host terminal. It holds
// no per-query state, so one Provider may serve any number of rows and is
// safe to query repeatedly; each query reads the row once and builds every
// working value fresh.
type Provider struct {
	src     term.RowSource
	opener  Opener
	schemes []Scheme
}

// Option configures a Provider.
type Option func(*Provider)

// WithSchemes replaces the built-in scheme table. The slice is used in
// order; put longer literals first so they are not shadowed by prefixes.
func WithSchemes(schemes []Scheme) Option {
	return func(p *Provider) { p.schemes = schemes }
}

// NewProvider creates a provider reading rows from src. Activation of
// returned links delegates to opener; a nil opener makes activation a no-op.
func NewProvider(src term.RowSource, opener Opener, opts ...Option) *Provider {
	p := &Provider{
		src:     src,
		opener:  opener,
		schemes: DefaultSchemes,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProvideLinks runs the detection pipeline for row y and invokes cb exactly
// once: with the links in ascending start-column order, or with nil when the
// row is absent or holds no link. cb never receives an empty non-nil slice,
// so a nil check cleanly distinguishes "nothing found" from a result.
//
// The pipeline itself is synchronous; the callback exists so the host can
// aggregate this provider with slower ones behind one interface.
func (p *Provider) ProvideLinks(y int, cb func([]Link)) {
	cb(p.linksForRow(y))
}

func (p *Provider) linksForRow(y int) []Link {
	row, ok := p.src.Row(y)
	if !ok {
		return nil
	}
	text, starts, ends := materialize(row)

	var out []Link
	for _, m := range findMatches(text, p.schemes) {
		m = trimTrailing(text, m)
		out = append(out, p.assemble(text, starts, ends, m, y))
	}
	return out
}

// materialize reconstructs the row text plus, per character, the first and
// last column it occupies. Continuation cells of wide runes contribute no
// character, so for rows holding wide content the offset-to-column index is
// not the identity map; downstream stages must always go through it.
func materialize(row term.Row) (text []rune, starts, ends []int) {
	n := row.Len()
	text = make([]rune, 0, n)
	starts = make([]int, 0, n)
	ends = make([]int, 0, n)
	for x := 0; x < n; x++ {
		c := row.CellAt(x)
		if c.Rune == 0 {
			continue
		}
		last := x
		if c.Wide {
			last = x + 1
		}
		text = append(text, c.Rune)
		starts = append(starts, x)
		ends = append(ends, last)
	}
	return text, starts, ends
}

// assemble maps a trimmed match back into cell space and binds its
// activation callback. Offsets are guaranteed in range: they index the same
// text the column tables were built from.
func (p *Provider) assemble(text []rune, starts, ends []int, m match, y int) Link {
	matched := string(text[m.start:m.end])
	opener := p.opener
	return Link{
		Text: matched,
		Range: Range{
			Start: Position{X: starts[m.start], Y: y},
			End:   Position{X: ends[m.end-1], Y: y},
		},
		Activate: func(_ *tcell.EventMouse, text string) {
			if opener == nil {
				return
			}
			if err := opener.OpenURL(text); err != nil {
				log.Printf("links: open %q: %v", text, err)
			}
		},
	}
}
