// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: app/backtotop.go
// Summary: Floating back-to-top control shown once the page is scrolled.

package app

import (
	"github.com/gdamore/tcell/v2"

	"vitrine/ui/core"
)

const backToTopLabel = " ↑ Top "

// backToTop floats over the bottom-right corner. It is hidden until the scroll
// offset passes its threshold; while hidden it draws nothing and ignores input.
type backToTop struct {
	core.BaseWidget
	style   tcell.Style
	visible bool
	onJump  func()
}

func newBackToTop(style tcell.Style, onJump func()) *backToTop {
	b := &backToTop{style: style, onJump: onJump}
	b.Resize(len([]rune(backToTopLabel)), 1)
	return b
}

// ZIndex keeps the control above the scrolled content.
func (b *backToTop) ZIndex() int { return 9 }

func (b *backToTop) setVisible(v bool) { b.visible = v }

// place anchors the control to the bottom-right of a surface.
func (b *backToTop) place(surfaceW, surfaceH int) {
	b.SetPosition(surfaceW-b.Rect.W-2, surfaceH-2)
}

func (b *backToTop) Draw(p *core.Painter) {
	if !b.visible {
		return
	}
	p.DrawText(b.Rect.X, b.Rect.Y, backToTopLabel, b.style)
}

func (b *backToTop) HitTest(x, y int) bool {
	return b.visible && b.BaseWidget.HitTest(x, y)
}

func (b *backToTop) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !b.HitTest(x, y) {
		return false
	}
	if ev.Buttons()&tcell.Button1 != 0 && b.onJump != nil {
		b.onJump()
		return true
	}
	return false
}
