// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: app/content.go
// Summary: The scrollable page column: section text, stat counters, product
// grid and the contact form.

package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"vitrine/catalog"
	"vitrine/form"
	"vitrine/page"
	"vitrine/ui/core"
	"vitrine/ui/widgets"
)

const formLabelWidth = 10

// pageContent renders every section of the page into one tall column. The
// scroll pane shifts its Y position; children are repositioned on each draw so
// hit testing and focus always see current coordinates.
type pageContent struct {
	core.BaseWidget
	pg     *page.Page
	styles *styleSet

	statValues []int

	productButtons []*widgets.Button
	productHint    *widgets.Label
	nameInput      *widgets.TextInput
	emailInput     *widgets.TextInput
	phoneInput     *widgets.TextInput
	subjectInput   *widgets.TextInput
	bodyInput      *widgets.TextArea
	submitButton   *widgets.Button

	focusables []core.Widget
	inv        func(core.Rect)
}

func newPageContent(pg *page.Page, styles *styleSet, onProduct func(id string), onSubmit func()) *pageContent {
	c := &pageContent{pg: pg, styles: styles}
	c.statValues = make([]int, countStats(pg))

	for _, id := range catalog.Categories() {
		p, _ := catalog.Lookup(id)
		id := id
		btn := widgets.NewButton(0, 0, string(p.Icon)+" "+p.Title, styles.text)
		btn.OnActivate = func() { onProduct(id) }
		btn.SetFocusedStyle(styles.focus, true)
		c.productButtons = append(c.productButtons, btn)
	}
	c.productHint = widgets.NewLabel(0, 0, styles.muted,
		"Enter opens a category, Esc closes it.")

	c.nameInput = widgets.NewTextInput(0, 0, 30, "Your name", styles.field)
	c.emailInput = widgets.NewTextInput(0, 0, 30, "you@example.com", styles.field)
	c.phoneInput = widgets.NewTextInput(0, 0, 30, "Optional", styles.field)
	c.subjectInput = widgets.NewTextInput(0, 0, 30, "What is this about?", styles.field)
	c.bodyInput = widgets.NewTextArea(0, 0, 30, 4, styles.field)
	c.submitButton = widgets.NewButton(0, 0, "Send message", styles.accent)
	c.submitButton.OnActivate = onSubmit
	c.submitButton.SetFocusedStyle(styles.focus, true)

	for _, b := range c.productButtons {
		c.focusables = append(c.focusables, b)
	}
	c.focusables = append(c.focusables,
		c.nameInput, c.emailInput, c.phoneInput, c.subjectInput,
		c.bodyInput, c.submitButton)
	return c
}

func countStats(pg *page.Page) int {
	n := 0
	for _, sec := range pg.Sections {
		n += len(sec.Stats)
	}
	return n
}

// message assembles the form fields into a contact message.
func (c *pageContent) message() form.Message {
	return form.Message{
		Name:    c.nameInput.Value(),
		Email:   c.emailInput.Value(),
		Phone:   c.phoneInput.Value(),
		Subject: c.subjectInput.Value(),
		Body:    c.bodyInput.Value(),
	}
}

func (c *pageContent) clearForm() {
	c.nameInput.SetValue("")
	c.emailInput.SetValue("")
	c.phoneInput.SetValue("")
	c.subjectInput.SetValue("")
	c.bodyInput.SetValue("")
}

// setStatValues updates the animated counter readouts.
func (c *pageContent) setStatValues(vals []int) {
	copy(c.statValues, vals)
}

// relayout recomputes the column height for a new width.
func (c *pageContent) relayout(width int) {
	c.Resize(width, c.pg.ContentHeight(width))
}

func (c *pageContent) SetInvalidator(fn func(core.Rect)) {
	c.inv = fn
}

func (c *pageContent) VisitChildren(f func(core.Widget)) {
	for _, w := range c.focusables {
		f(w)
	}
}

// CycleFocus moves focus between the content's interactive children.
func (c *pageContent) CycleFocus(forward bool) bool {
	cur := -1
	for i, w := range c.focusables {
		if fs, ok := w.(core.FocusState); ok && fs.IsFocused() {
			cur = i
			break
		}
	}
	next := cur
	n := len(c.focusables)
	for range c.focusables {
		if forward {
			next++
		} else {
			next--
		}
		if next < 0 || next >= n {
			return false // boundary; let the pane or manager decide
		}
		if c.focusables[next].Focusable() {
			if cur >= 0 {
				c.focusables[cur].Blur()
			}
			c.focusables[next].Focus()
			return true
		}
	}
	return false
}

func (c *pageContent) HandleKey(ev *tcell.EventKey) bool {
	for _, w := range c.focusables {
		if fs, ok := w.(core.FocusState); ok && fs.IsFocused() {
			return w.HandleKey(ev)
		}
	}
	return false
}

func (c *pageContent) Draw(p *core.Painter) {
	width := c.Rect.W
	x, y := c.Rect.X, c.Rect.Y
	statIdx := 0

	for _, sec := range c.pg.Sections {
		row := 0
		for _, line := range c.pg.HeaderLines(sec, width) {
			style := c.styles.text
			if row == 0 {
				style = c.styles.title
			}
			p.DrawTextClipped(x, y+row, line, width, style)
			row++
		}

		switch sec.Kind {
		case page.KindStats:
			for _, stat := range sec.Stats {
				val := 0
				if statIdx < len(c.statValues) {
					val = c.statValues[statIdx]
				}
				line := fmt.Sprintf("  %-24s %d%s", stat.Label, val, stat.Suffix)
				p.DrawTextClipped(x, y+row, line, width, c.styles.accent)
				row++
				statIdx++
			}
		case page.KindProducts:
			for _, btn := range c.productButtons {
				btn.SetPosition(x+2, y+row)
				btn.Draw(p)
				row++
			}
			row++
			c.productHint.SetPosition(x+2, y+row)
			c.productHint.Draw(p)
		case page.KindContact:
			row = c.drawForm(p, x, y, row, width)
		}

		y += c.pg.SectionHeight(sec, width)
	}
}

// drawForm positions and draws the contact fields. Returns the next row.
func (c *pageContent) drawForm(p *core.Painter, x, y, row, width int) int {
	fieldW := width - formLabelWidth - 4
	if fieldW < 8 {
		fieldW = 8
	}
	fieldX := x + formLabelWidth + 2

	drawField := func(label string, w core.Widget, h int) {
		p.DrawTextClipped(x+2, y+row, label, formLabelWidth, c.styles.muted)
		w.SetPosition(fieldX, y+row)
		w.Resize(fieldW, h)
		w.Draw(p)
		row += h
	}

	drawField("Name", c.nameInput, 1)
	drawField("Email", c.emailInput, 1)
	drawField("Phone", c.phoneInput, 1)
	drawField("Subject", c.subjectInput, 1)
	row++
	drawField("Message", c.bodyInput, 4)
	row++
	c.submitButton.SetPosition(fieldX, y+row)
	c.submitButton.Draw(p)
	row++
	return row
}
