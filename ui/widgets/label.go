// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/widgets/label.go
// Summary: Static multi-line text widget.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"vitrine/ui/core"
)

// Label is a static block of text lines.
type Label struct {
	core.BaseWidget
	Lines []string
	Style tcell.Style
}

// NewLabel creates a label sized to its content.
func NewLabel(x, y int, style tcell.Style, lines ...string) *Label {
	l := &Label{Lines: lines, Style: style}
	l.SetPosition(x, y)
	w := 0
	for _, line := range lines {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	l.Resize(w, len(lines))
	return l
}

// SetLines replaces the label content, keeping the widget size.
func (l *Label) SetLines(lines ...string) {
	l.Lines = lines
}

func (l *Label) Draw(p *core.Painter) {
	for i, line := range l.Lines {
		if i >= l.Rect.H {
			break
		}
		p.DrawTextClipped(l.Rect.X, l.Rect.Y+i, line, l.Rect.W, l.Style)
	}
}
