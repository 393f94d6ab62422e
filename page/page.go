// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: page/page.go
// Summary: Page layout: section heights, region snapshots, jump targets.

package page

import "strings"

// Page lays out an ordered list of sections into a single scrollable column.
// Layout is recomputed from the current width on every call; nothing here is
// cached across ticks.
type Page struct {
	Sections []Section

	// Rows occupied by the section kinds the page itself does not render.
	ProductRows int
	ContactRows int
}

// NewPage builds the default site.
func NewPage() *Page {
	return &Page{
		Sections:    DefaultSections(),
		ProductRows: 6,
		ContactRows: 14,
	}
}

// HeaderLines renders the text part of a section: title, underline and wrapped
// body paragraphs. Kind-specific rows (stats, product grid, contact form) are
// drawn by the application below these lines.
func (p *Page) HeaderLines(sec Section, width int) []string {
	lines := []string{sec.Title, strings.Repeat("─", min(len([]rune(sec.Title)), width))}
	for _, para := range sec.Body {
		lines = append(lines, "")
		lines = append(lines, wrap(para, width)...)
	}
	return lines
}

// SectionHeight returns the rows a section occupies at the given width.
func (p *Page) SectionHeight(sec Section, width int) int {
	h := len(p.HeaderLines(sec, width)) + 1 // trailing blank
	switch sec.Kind {
	case KindStats:
		h += len(sec.Stats) + 1
	case KindProducts:
		h += p.ProductRows + 1
	case KindContact:
		h += p.ContactRows + 1
	}
	return h
}

// Layout returns one region per section in content coordinates (top of the
// scrollable column is 0).
func (p *Page) Layout(width int) []Region {
	regions := make([]Region, 0, len(p.Sections))
	top := 0
	for _, sec := range p.Sections {
		h := p.SectionHeight(sec, width)
		regions = append(regions, Region{ID: sec.ID, Top: top, Height: h})
		top += h
	}
	return regions
}

// Regions returns the layout adjusted for a fixed nav bar of navHeight rows,
// ready for ActiveRegion.
func (p *Page) Regions(width, navHeight int) []Region {
	regions := p.Layout(width)
	for i := range regions {
		regions[i].Top -= navHeight
	}
	return regions
}

// SectionTop returns the content-space top of a section, for scroll jumps.
func (p *Page) SectionTop(id string, width int) (int, bool) {
	for _, r := range p.Layout(width) {
		if r.ID == id {
			return r.Top, true
		}
	}
	return 0, false
}

// ContentHeight is the total height of the scrollable column.
func (p *Page) ContentHeight(width int) int {
	total := 0
	for _, sec := range p.Sections {
		total += p.SectionHeight(sec, width)
	}
	return total
}

// SectionByID returns the section definition.
func (p *Page) SectionByID(id string) (Section, bool) {
	for _, sec := range p.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}
