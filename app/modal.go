// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: app/modal.go
// Summary: Product detail modal: catalog record rendering, brand rows, Esc or
// outside-click dismissal.

package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"vitrine/catalog"
	"vitrine/theme"
	"vitrine/ui/core"
)

// productModal shows one catalog record centered on screen over a dimmed
// backdrop. It is modal: all input routes here until it is dismissed. The
// widget rect covers the whole surface; box is the dialog itself, and clicks
// on the backdrop count as outside for dismissal.
type productModal struct {
	core.BaseWidget
	product catalog.Product
	styles  *styleSet
	onClose func()
	box     core.Rect
}

func newProductModal(p catalog.Product, styles *styleSet, onClose func()) *productModal {
	m := &productModal{product: p, styles: styles, onClose: onClose}
	m.SetFocusable(true)
	return m
}

// ZIndex puts the modal above every other widget.
func (m *productModal) ZIndex() int { return 100 }

func (m *productModal) IsModal() bool { return true }

func (m *productModal) DismissModal() {
	if m.onClose != nil {
		m.onClose()
	}
}

// center sizes the dialog for a surface and centers it. The backdrop spans
// the full surface so every dirty region repaints dimmed.
func (m *productModal) center(surfaceW, surfaceH int) {
	w := surfaceW - 10
	if w > 56 {
		w = 56
	}
	if w < 24 {
		w = surfaceW
	}
	h := len(m.lines()) + 4
	if h > surfaceH-2 {
		h = surfaceH - 2
	}
	m.box = core.Rect{X: (surfaceW - w) / 2, Y: (surfaceH - h) / 2, W: w, H: h}
	m.SetPosition(0, 0)
	m.Resize(surfaceW, surfaceH)
}

// HitTest counts only the dialog itself; backdrop clicks dismiss.
func (m *productModal) HitTest(x, y int) bool {
	return m.box.Contains(x, y)
}

func (m *productModal) lines() []string {
	p := m.product
	out := []string{p.Description, ""}
	out = append(out, "Features")
	for _, f := range p.Features {
		out = append(out, "  • "+f)
	}
	out = append(out, "", "Applications")
	out = append(out, "  "+strings.Join(p.Applications, " · "))
	out = append(out, "", "Brands")
	out = append(out, "  "+strings.Join(p.Brands, "  "))
	out = append(out, "", "Esc to close · b for brand enquiries")
	return out
}

func (m *productModal) Draw(p *core.Painter) {
	t := theme.Get()
	accent := t.GetColor(m.product.Theme, "accent", tcell.ColorDefault)
	titleStyle := m.styles.title
	if accent != tcell.ColorDefault {
		titleStyle = titleStyle.Foreground(accent)
	}

	surfaceBG := t.GetColor("ui", "surface_bg", tcell.ColorBlack)
	dimBG := theme.Blend(surfaceBG, tcell.ColorBlack, 0.6)
	p.Fill(m.Rect, ' ', tcell.StyleDefault.Background(dimBG).Foreground(dimBG))

	p.Fill(m.box, ' ', m.styles.surface)
	border(p, m.box, m.styles.muted)

	x, y := m.box.X+2, m.box.Y+1
	innerW := m.box.W - 4
	p.DrawTextClipped(x, y, string(m.product.Icon)+" "+m.product.Title, innerW, titleStyle)
	y += 2

	for _, line := range m.lines() {
		if y >= m.box.Y+m.box.H-1 {
			break
		}
		style := m.styles.text
		if line == "Features" || line == "Applications" || line == "Brands" {
			style = m.styles.accent
		}
		p.DrawTextClipped(x, y, line, innerW, style)
		y++
	}
}

func (m *productModal) HandleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape:
		m.DismissModal()
		return true
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'b':
		catalog.Invoke("brand.placeholder", m.product.ID)
		return true
	}
	// Swallow everything else; the page below must not react.
	return true
}

func border(p *core.Painter, r core.Rect, style tcell.Style) {
	for x := r.X; x < r.X+r.W; x++ {
		p.SetCell(x, r.Y, '─', style)
		p.SetCell(x, r.Y+r.H-1, '─', style)
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		p.SetCell(r.X, y, '│', style)
		p.SetCell(r.X+r.W-1, y, '│', style)
	}
	p.SetCell(r.X, r.Y, '┌', style)
	p.SetCell(r.X+r.W-1, r.Y, '┐', style)
	p.SetCell(r.X, r.Y+r.H-1, '└', style)
	p.SetCell(r.X+r.W-1, r.Y+r.H-1, '┘', style)
}
