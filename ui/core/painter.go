// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/core/painter.go
// Summary: Clip-aware drawing primitives over a cell buffer.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Painter writes into a cell buffer, clipped to a region. Widgets never touch
// the buffer directly; every draw goes through a painter so containers can
// hand out clipped sub-painters.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

// NewPainter wraps a buffer with a clip region.
func NewPainter(buf [][]Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

// WithClip returns a painter restricted to the intersection of the current
// clip and the given region.
func (p *Painter) WithClip(r Rect) *Painter {
	return &Painter{buf: p.buf, clip: p.clip.Intersect(r)}
}

// SetCell writes one rune if the position is inside the clip and the buffer.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	if y < 0 || y >= len(p.buf) {
		return
	}
	row := p.buf[y]
	if x < 0 || x >= len(row) {
		return
	}
	row[x] = Cell{Ch: ch, Style: style}
}

// Fill floods a rectangle with a rune.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	area := p.clip.Intersect(r)
	for y := area.Y; y < area.Y+area.H; y++ {
		if y < 0 || y >= len(p.buf) {
			continue
		}
		row := p.buf[y]
		for x := area.X; x < area.X+area.W; x++ {
			if x < 0 || x >= len(row) {
				continue
			}
			row[x] = Cell{Ch: ch, Style: style}
		}
	}
}

// DrawText writes a string left-to-right starting at (x, y), advancing by
// display width so wide runes occupy two cells. Returns the x after the text.
func (p *Painter) DrawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		p.SetCell(x, y, ch, style)
		if w == 2 {
			// Blank the shadowed cell so stale content never shows through.
			p.SetCell(x+1, y, ' ', style)
		}
		x += w
	}
	return x
}

// DrawTextClipped writes text truncated to maxWidth cells, appending an
// ellipsis when it does not fit.
func (p *Painter) DrawTextClipped(x, y int, text string, maxWidth int, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	if runewidth.StringWidth(text) > maxWidth {
		text = runewidth.Truncate(text, maxWidth, "…")
	}
	p.DrawText(x, y, text, style)
}

// Clip returns the painter's clip region.
func (p *Painter) Clip() Rect {
	return p.clip
}
