// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/widgets/textarea.go
// Summary: Multiline text editor with caret and viewport.

package widgets

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"vitrine/ui/core"
)

// TextArea is a minimal multiline text editor with a viewport.
type TextArea struct {
	core.BaseWidget
	Lines      []string
	CaretX     int
	CaretY     int
	OffX       int
	OffY       int
	Style      tcell.Style
	CaretStyle tcell.Style

	inv func(core.Rect)
}

// NewTextArea creates an empty editor.
func NewTextArea(x, y, w, h int, style tcell.Style) *TextArea {
	ta := &TextArea{
		Lines:      []string{""},
		Style:      style,
		CaretStyle: style.Reverse(true),
	}
	ta.SetPosition(x, y)
	ta.Resize(w, h)
	ta.SetFocusable(true)
	return ta
}

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (t *TextArea) SetInvalidator(fn func(core.Rect)) { t.inv = fn }

func (t *TextArea) invalidate() {
	if t.inv != nil {
		t.inv(t.Rect)
	}
}

// Value returns the buffer joined with newlines.
func (t *TextArea) Value() string { return strings.Join(t.Lines, "\n") }

// SetValue replaces the buffer and moves the caret to the end.
func (t *TextArea) SetValue(s string) {
	t.Lines = strings.Split(s, "\n")
	t.CaretY = len(t.Lines) - 1
	t.CaretX = len([]rune(t.Lines[t.CaretY]))
	t.ensureVisible()
	t.invalidate()
}

func (t *TextArea) clampCaret() {
	if t.CaretY < 0 {
		t.CaretY = 0
	}
	if t.CaretY >= len(t.Lines) {
		t.CaretY = len(t.Lines) - 1
	}
	maxX := len([]rune(t.Lines[t.CaretY]))
	if t.CaretX < 0 {
		t.CaretX = 0
	}
	if t.CaretX > maxX {
		t.CaretX = maxX
	}
}

func (t *TextArea) ensureVisible() {
	if t.CaretX < t.OffX {
		t.OffX = t.CaretX
	}
	if t.CaretX >= t.OffX+t.Rect.W {
		t.OffX = t.CaretX - t.Rect.W + 1
	}
	if t.OffX < 0 {
		t.OffX = 0
	}
	if t.CaretY < t.OffY {
		t.OffY = t.CaretY
	}
	if t.CaretY >= t.OffY+t.Rect.H {
		t.OffY = t.CaretY - t.Rect.H + 1
	}
	if t.OffY < 0 {
		t.OffY = 0
	}
}

func (t *TextArea) Draw(p *core.Painter) {
	p.Fill(t.Rect, ' ', t.Style)
	for row := 0; row < t.Rect.H; row++ {
		ly := t.OffY + row
		if ly >= len(t.Lines) {
			break
		}
		visible := []rune(t.Lines[ly])
		col := 0
		for cx := t.OffX; cx < len(visible) && col < t.Rect.W; cx++ {
			p.SetCell(t.Rect.X+col, t.Rect.Y+row, visible[cx], t.Style)
			col++
		}
	}

	if t.IsFocused() {
		cx := t.CaretX - t.OffX
		cy := t.CaretY - t.OffY
		if cx >= 0 && cy >= 0 && cx < t.Rect.W && cy < t.Rect.H {
			ch := ' '
			line := []rune(t.Lines[t.CaretY])
			if t.CaretX < len(line) {
				ch = line[t.CaretX]
			}
			p.SetCell(t.Rect.X+cx, t.Rect.Y+cy, ch, t.CaretStyle)
		}
	}
}

func (t *TextArea) HandleKey(ev *tcell.EventKey) bool {
	if !t.IsFocused() {
		return false
	}
	switch ev.Key() {
	case tcell.KeyRune:
		line := []rune(t.Lines[t.CaretY])
		line = append(line[:t.CaretX], append([]rune{ev.Rune()}, line[t.CaretX:]...)...)
		t.Lines[t.CaretY] = string(line)
		t.CaretX++
	case tcell.KeyEnter:
		line := []rune(t.Lines[t.CaretY])
		before, after := string(line[:t.CaretX]), string(line[t.CaretX:])
		t.Lines[t.CaretY] = before
		rest := append([]string{after}, t.Lines[t.CaretY+1:]...)
		t.Lines = append(t.Lines[:t.CaretY+1], rest...)
		t.CaretY++
		t.CaretX = 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.CaretX > 0 {
			line := []rune(t.Lines[t.CaretY])
			t.Lines[t.CaretY] = string(append(line[:t.CaretX-1], line[t.CaretX:]...))
			t.CaretX--
		} else if t.CaretY > 0 {
			prev := []rune(t.Lines[t.CaretY-1])
			t.CaretX = len(prev)
			t.Lines[t.CaretY-1] = string(prev) + t.Lines[t.CaretY]
			t.Lines = append(t.Lines[:t.CaretY], t.Lines[t.CaretY+1:]...)
			t.CaretY--
		}
	case tcell.KeyLeft:
		if t.CaretX > 0 {
			t.CaretX--
		} else if t.CaretY > 0 {
			t.CaretY--
			t.CaretX = len([]rune(t.Lines[t.CaretY]))
		}
	case tcell.KeyRight:
		if t.CaretX < len([]rune(t.Lines[t.CaretY])) {
			t.CaretX++
		} else if t.CaretY < len(t.Lines)-1 {
			t.CaretY++
			t.CaretX = 0
		}
	case tcell.KeyUp:
		t.CaretY--
	case tcell.KeyDown:
		t.CaretY++
	case tcell.KeyHome:
		t.CaretX = 0
	case tcell.KeyEnd:
		t.CaretX = len([]rune(t.Lines[t.CaretY]))
	default:
		return false
	}
	t.clampCaret()
	t.ensureVisible()
	t.invalidate()
	return true
}
