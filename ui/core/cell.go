// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/core/cell.go
// Summary: Frame buffer cell and buffer allocation.

package core

import "github.com/gdamore/tcell/v2"

// Cell is one character cell of the composed frame buffer.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// NewBuffer allocates a w x h cell buffer filled with spaces in the given style.
func NewBuffer(w, h int, style tcell.Style) [][]Cell {
	buf := make([][]Cell, h)
	for y := 0; y < h; y++ {
		row := make([]Cell, w)
		for x := 0; x < w; x++ {
			row[x] = Cell{Ch: ' ', Style: style}
		}
		buf[y] = row
	}
	return buf
}
