// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/widgets/button.go
// Summary: Focusable button with keyboard and mouse activation.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"vitrine/ui/core"
)

// Button is a focusable control activated with Enter, Space or a click.
// Format: [ Label ]; when focused the brackets render in the focus style.
type Button struct {
	core.BaseWidget
	Label      string
	Style      tcell.Style
	OnActivate func()

	disabled bool
}

// NewButton creates a button sized to its label.
func NewButton(x, y int, label string, style tcell.Style) *Button {
	b := &Button{Label: label, Style: style}
	b.SetPosition(x, y)
	b.Resize(runewidth.StringWidth(label)+4, 1)
	b.SetFocusable(true)
	return b
}

// SetDisabled toggles whether the button reacts to activation. A disabled
// button stays visible (the contact form disables submit while in flight).
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	b.SetFocusable(!disabled)
}

// Disabled reports whether the button is disabled.
func (b *Button) Disabled() bool { return b.disabled }

func (b *Button) Draw(p *core.Painter) {
	style := b.EffectiveStyle(b.Style)
	if b.disabled {
		style = b.Style.Dim(true)
	}
	text := "[ " + b.Label + " ]"
	p.DrawTextClipped(b.Rect.X, b.Rect.Y, text, b.Rect.W, style)
}

func (b *Button) activate() bool {
	if b.disabled || b.OnActivate == nil {
		return false
	}
	b.OnActivate()
	return true
}

func (b *Button) HandleKey(ev *tcell.EventKey) bool {
	if !b.IsFocused() {
		return false
	}
	switch {
	case ev.Key() == tcell.KeyEnter:
		return b.activate()
	case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		return b.activate()
	}
	return false
}

func (b *Button) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !b.HitTest(x, y) {
		return false
	}
	if ev.Buttons()&tcell.Button1 != 0 {
		return b.activate()
	}
	return false
}
