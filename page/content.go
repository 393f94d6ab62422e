// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: page/content.go
// Summary: Site sections, stat counters and the default page content.

package page

import "strings"

// Stat is a numeric highlight that counts up from zero when its section first
// becomes active.
type Stat struct {
	Label  string
	Target int
	Suffix string
}

// SectionKind selects the extra rows a section renders below its body.
type SectionKind int

const (
	KindText SectionKind = iota
	KindStats
	KindProducts
	KindContact
)

// Section is one navigable block of the page.
type Section struct {
	ID    string
	Title string
	Body  []string // paragraphs, wrapped at render time
	Kind  SectionKind
	Stats []Stat
}

// DefaultSections returns the site content in display order.
func DefaultSections() []Section {
	return []Section{
		{
			ID:    "home",
			Title: "Ferreteria Delgado",
			Body: []string{
				"Industrial supplies for workshops, fabricators and trades since 1998.",
				"Stocked locally. Delivered same day. Backed by people who know the work.",
			},
			Kind: KindText,
		},
		{
			ID:    "about",
			Title: "Why work with us",
			Body: []string{
				"Family-run distribution with technical staff on the counter, not a call queue.",
			},
			Kind: KindStats,
			Stats: []Stat{
				{Label: "Years in business", Target: 27},
				{Label: "Active trade accounts", Target: 1200, Suffix: "+"},
				{Label: "Catalogue lines", Target: 4500, Suffix: "+"},
				{Label: "Brands carried", Target: 30, Suffix: "+"},
			},
		},
		{
			ID:    "products",
			Title: "Product lines",
			Body: []string{
				"Pick a category for details, applications and the brands we carry.",
			},
			Kind: KindProducts,
		},
		{
			ID:    "contact",
			Title: "Get in touch",
			Body: []string{
				"Send us a message and we will come back within one working day.",
			},
			Kind: KindContact,
		},
	}
}

// wrap greedily word-wraps a paragraph to the given width. Width is in cells;
// site copy is plain ASCII/Latin text so rune count is a fine proxy.
func wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) <= width {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	return append(lines, line)
}
