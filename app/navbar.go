// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: app/navbar.go
// Summary: Sticky nav bar with section links, active highlight, collapsible
// menu and a blended solid style once the page is scrolled.

package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"vitrine/page"
	"vitrine/theme"
	"vitrine/ui/core"
)

// navBar pins to the top of the screen and survives scrolling. Blend moves
// 0..1 as the bar cross-fades from transparent to solid.
type navBar struct {
	core.BaseWidget
	brand    string
	sections []page.Section
	active   string
	blend    float64
	menuOpen bool
	onJump   func(sectionID string)

	linkSpans []linkSpan // recomputed on draw, consumed by mouse handling
}

type linkSpan struct {
	id   string
	x, w int
	y    int
}

func newNavBar(brand string, sections []page.Section, onJump func(string)) *navBar {
	nb := &navBar{brand: brand, sections: sections, onJump: onJump}
	nb.SetPosition(0, 0)
	return nb
}

// ZIndex keeps the bar above the scrolled content.
func (nb *navBar) ZIndex() int { return 10 }

func (nb *navBar) setActive(id string) { nb.active = id }

func (nb *navBar) setBlend(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	nb.blend = v
}

func (nb *navBar) toggleMenu() { nb.menuOpen = !nb.menuOpen }

// height is 1 for the bar itself plus one row per link while the menu is open.
func (nb *navBar) height() int {
	if nb.menuOpen {
		return 1 + len(nb.sections)
	}
	return 1
}

func (nb *navBar) Draw(p *core.Painter) {
	t := theme.Get()
	barBG := t.GetColor("nav", "bar_bg", tcell.ColorBlack)
	solidBG := t.GetColor("nav", "bar_solid_bg", tcell.ColorDarkBlue)
	bg := theme.Blend(barBG, solidBG, nb.blend)

	linkStyle := tcell.StyleDefault.Background(bg).
		Foreground(t.GetColor("nav", "link_fg", tcell.ColorGray))
	activeStyle := tcell.StyleDefault.Background(bg).
		Foreground(t.GetColor("nav", "active_fg", tcell.ColorBlue)).Bold(true)
	brandStyle := tcell.StyleDefault.Background(bg).
		Foreground(t.GetColor("nav", "brand_fg", tcell.ColorYellow)).Bold(true)

	nb.Resize(nb.Rect.W, nb.height())
	p.Fill(core.Rect{X: nb.Rect.X, Y: nb.Rect.Y, W: nb.Rect.W, H: nb.height()}, ' ', linkStyle)

	x := nb.Rect.X + 1
	x = p.DrawText(x, nb.Rect.Y, nb.brand, brandStyle) + 2

	nb.linkSpans = nb.linkSpans[:0]
	if nb.menuOpen {
		p.DrawText(nb.Rect.X+nb.Rect.W-4, nb.Rect.Y, "[x]", activeStyle)
		for i, sec := range nb.sections {
			style := linkStyle
			label := "  " + sec.Title
			if sec.ID == nb.active {
				style = activeStyle
				label = "» " + sec.Title
			}
			y := nb.Rect.Y + 1 + i
			p.DrawTextClipped(nb.Rect.X+1, y, label, nb.Rect.W-2, style)
			nb.linkSpans = append(nb.linkSpans, linkSpan{
				id: sec.ID, x: nb.Rect.X + 1, w: runewidth.StringWidth(label), y: y,
			})
		}
		return
	}

	// Collapse to a menu toggle when links do not fit.
	if nb.linksWidth() > nb.Rect.W-x-2 {
		p.DrawText(nb.Rect.X+nb.Rect.W-4, nb.Rect.Y, "[≡]", activeStyle)
		return
	}

	for _, sec := range nb.sections {
		style := linkStyle
		if sec.ID == nb.active {
			style = activeStyle
		}
		end := p.DrawText(x, nb.Rect.Y, sec.Title, style)
		nb.linkSpans = append(nb.linkSpans, linkSpan{id: sec.ID, x: x, w: end - x, y: nb.Rect.Y})
		x = end + 3
	}
}

func (nb *navBar) linksWidth() int {
	total := 0
	for _, sec := range nb.sections {
		total += runewidth.StringWidth(sec.Title) + 3
	}
	return total
}

func (nb *navBar) HandleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := ev.Position()

	// Menu toggle lives in the top-right corner.
	if y == nb.Rect.Y && x >= nb.Rect.X+nb.Rect.W-4 {
		nb.toggleMenu()
		return true
	}

	for _, span := range nb.linkSpans {
		if y == span.y && x >= span.x && x < span.x+span.w {
			nb.menuOpen = false
			if nb.onJump != nil {
				nb.onJump(span.id)
			}
			return true
		}
	}
	return false
}
