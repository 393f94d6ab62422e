// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/core/widget.go
// Summary: Widget interface, BaseWidget and the optional capability interfaces.

package core

import "github.com/gdamore/tcell/v2"

// Widget is the minimal contract for drawable UI elements.
type Widget interface {
	SetPosition(x, y int)
	Position() (int, int)
	Resize(w, h int)
	Size() (int, int)
	Draw(p *Painter)
	Focusable() bool
	Focus()
	Blur()
	HandleKey(ev *tcell.EventKey) bool
	HitTest(x, y int) bool
}

// BaseWidget provides common fields/behaviour for widgets.
type BaseWidget struct {
	Rect         Rect
	focused      bool
	focusable    bool
	focusedStyle tcell.Style
	hasFocusedSt bool
}

func (b *BaseWidget) SetPosition(x, y int) { b.Rect.X, b.Rect.Y = x, y }
func (b *BaseWidget) Position() (int, int) { return b.Rect.X, b.Rect.Y }
func (b *BaseWidget) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.Rect.W, b.Rect.H = w, h
}
func (b *BaseWidget) Size() (int, int)    { return b.Rect.W, b.Rect.H }
func (b *BaseWidget) Focusable() bool     { return b.focusable }
func (b *BaseWidget) SetFocusable(f bool) { b.focusable = f }
func (b *BaseWidget) Focus() {
	if b.focusable {
		b.focused = true
	}
}
func (b *BaseWidget) Blur()                             { b.focused = false }
func (b *BaseWidget) IsFocused() bool                   { return b.focused }
func (b *BaseWidget) HitTest(x, y int) bool             { return b.Rect.Contains(x, y) }
func (b *BaseWidget) HandleKey(ev *tcell.EventKey) bool { return false }

// SetFocusedStyle sets the style applied while the widget is focused.
func (b *BaseWidget) SetFocusedStyle(style tcell.Style, enabled bool) {
	b.focusedStyle = style
	b.hasFocusedSt = enabled
}

// EffectiveStyle returns the focused style when focused, else the given base.
func (b *BaseWidget) EffectiveStyle(base tcell.Style) tcell.Style {
	if b.focused && b.hasFocusedSt {
		return b.focusedStyle
	}
	return base
}

// MouseAware widgets can consume mouse events directly.
type MouseAware interface {
	HandleMouse(ev *tcell.EventMouse) bool
}

// InvalidationAware widgets accept an invalidation callback to mark dirty regions.
type InvalidationAware interface {
	SetInvalidator(func(Rect))
}

// ChildContainer allows recursive operations over widget trees without
// depending on concrete widget packages.
type ChildContainer interface {
	VisitChildren(func(Widget))
}

// HitTester allows a container to return the deepest widget under a point.
type HitTester interface {
	WidgetAt(x, y int) Widget
}

// FocusCycler containers move focus between their children.
type FocusCycler interface {
	CycleFocus(forward bool) bool
}

// FocusState exposes focus introspection for traversal.
type FocusState interface {
	IsFocused() bool
}

// Modal widgets swallow all input until dismissed; a click outside dismisses.
type Modal interface {
	IsModal() bool
	DismissModal()
}

// ZIndexer widgets override their stacking order (default 0).
type ZIndexer interface {
	ZIndex() int
}
