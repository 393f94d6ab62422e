// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/widgets/textinput.go
// Summary: Single-line text field with placeholder and horizontal viewport.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"vitrine/ui/core"
)

// TextInput is a single-line text field with a placeholder and horizontal
// viewport.
type TextInput struct {
	core.BaseWidget
	Placeholder string
	Style       tcell.Style
	CaretStyle  tcell.Style
	MutedStyle  tcell.Style

	runes []rune
	caret int
	offX  int
	inv   func(core.Rect)
}

// NewTextInput creates an empty input field.
func NewTextInput(x, y, w int, placeholder string, style tcell.Style) *TextInput {
	t := &TextInput{
		Placeholder: placeholder,
		Style:       style,
		CaretStyle:  style.Reverse(true),
		MutedStyle:  style.Dim(true),
	}
	t.SetPosition(x, y)
	t.Resize(w, 1)
	t.SetFocusable(true)
	return t
}

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (t *TextInput) SetInvalidator(fn func(core.Rect)) { t.inv = fn }

func (t *TextInput) invalidate() {
	if t.inv != nil {
		t.inv(t.Rect)
	}
}

// Value returns the current text.
func (t *TextInput) Value() string { return string(t.runes) }

// SetValue replaces the text and moves the caret to the end.
func (t *TextInput) SetValue(s string) {
	t.runes = []rune(s)
	t.caret = len(t.runes)
	t.ensureVisible()
	t.invalidate()
}

func (t *TextInput) ensureVisible() {
	if t.caret < t.offX {
		t.offX = t.caret
	}
	if t.caret >= t.offX+t.Rect.W {
		t.offX = t.caret - t.Rect.W + 1
	}
	if t.offX < 0 {
		t.offX = 0
	}
}

func (t *TextInput) Draw(p *core.Painter) {
	p.Fill(core.Rect{X: t.Rect.X, Y: t.Rect.Y, W: t.Rect.W, H: 1}, ' ', t.Style)

	if len(t.runes) == 0 && !t.IsFocused() {
		p.DrawTextClipped(t.Rect.X, t.Rect.Y, t.Placeholder, t.Rect.W, t.MutedStyle)
		return
	}

	col := 0
	for i := t.offX; i < len(t.runes) && col < t.Rect.W; i++ {
		p.SetCell(t.Rect.X+col, t.Rect.Y, t.runes[i], t.Style)
		col++
	}

	if t.IsFocused() {
		cx := t.caret - t.offX
		if cx >= 0 && cx < t.Rect.W {
			ch := ' '
			if t.caret < len(t.runes) {
				ch = t.runes[t.caret]
			}
			p.SetCell(t.Rect.X+cx, t.Rect.Y, ch, t.CaretStyle)
		}
	}
}

func (t *TextInput) HandleKey(ev *tcell.EventKey) bool {
	if !t.IsFocused() {
		return false
	}
	switch ev.Key() {
	case tcell.KeyRune:
		t.runes = append(t.runes[:t.caret], append([]rune{ev.Rune()}, t.runes[t.caret:]...)...)
		t.caret++
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.caret > 0 {
			t.runes = append(t.runes[:t.caret-1], t.runes[t.caret:]...)
			t.caret--
		}
	case tcell.KeyDelete:
		if t.caret < len(t.runes) {
			t.runes = append(t.runes[:t.caret], t.runes[t.caret+1:]...)
		}
	case tcell.KeyLeft:
		if t.caret > 0 {
			t.caret--
		}
	case tcell.KeyRight:
		if t.caret < len(t.runes) {
			t.caret++
		}
	case tcell.KeyHome:
		t.caret = 0
	case tcell.KeyEnd:
		t.caret = len(t.runes)
	default:
		return false
	}
	t.ensureVisible()
	t.invalidate()
	return true
}
