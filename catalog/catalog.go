// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/catalog.go
// Summary: Static product catalog keyed by category ID.

package catalog

import "log"

// Product is one catalog entry. The catalog is fixed site content; records are
// never created or mutated at runtime.
type Product struct {
	ID           string
	Title        string
	Icon         rune
	Theme        string // palette section name, resolved by the theme manager
	Description  string
	Features     []string
	Applications []string
	Brands       []string
}

var categoryOrder = []string{"abrasives", "adhesives", "safety", "tools"}

var products = map[string]Product{
	"abrasives": {
		ID:          "abrasives",
		Title:       "Industrial Abrasives",
		Icon:        '◆',
		Theme:       "amber",
		Description: "Cutting, grinding and finishing consumables for metal and stone work.",
		Features: []string{
			"Flap discs from 40 to 120 grit",
			"Resin-bonded cutting wheels",
			"Non-woven surface conditioning pads",
		},
		Applications: []string{"Weld dressing", "Surface prep", "Stock removal"},
		Brands:       []string{"Norton", "Klingspor", "3M"},
	},
	"adhesives": {
		ID:          "adhesives",
		Title:       "Adhesives & Sealants",
		Icon:        '●',
		Theme:       "teal",
		Description: "Structural bonding, threadlocking and sealing for assembly lines.",
		Features: []string{
			"Anaerobic threadlockers",
			"Two-part epoxy systems",
			"MS-polymer construction sealants",
		},
		Applications: []string{"Machine assembly", "Panel bonding", "Gasketing"},
		Brands:       []string{"Loctite", "Sika", "Permatex"},
	},
	"safety": {
		ID:          "safety",
		Title:       "Safety Equipment",
		Icon:        '▲',
		Theme:       "green",
		Description: "Certified personal protective equipment for workshop and site.",
		Features: []string{
			"Cut-resistant gloves, EN 388 rated",
			"Sealed safety eyewear",
			"Disposable and half-mask respirators",
		},
		Applications: []string{"Grinding", "Chemical handling", "Site work"},
		Brands:       []string{"Honeywell", "Uvex", "Moldex"},
	},
	"tools": {
		ID:          "tools",
		Title:       "Power & Hand Tools",
		Icon:        '■',
		Theme:       "blue",
		Description: "Professional-grade tools backed by local service and spares.",
		Features: []string{
			"Cordless drill and impact platforms",
			"Angle grinders 115-230mm",
			"Calibrated torque wrenches",
		},
		Applications: []string{"Fabrication", "Maintenance", "Installation"},
		Brands:       []string{"Bosch", "Makita", "Bahco"},
	},
}

// Categories returns the category IDs in display order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Lookup returns the product for a category ID. Unknown IDs log a warning and
// return ok=false so callers can no-op.
func Lookup(id string) (Product, bool) {
	p, ok := products[id]
	if !ok {
		log.Printf("Catalog: no product for category %q", id)
	}
	return p, ok
}
