// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: page/region.go
// Summary: Active-region resolution over the scroll offset.

package page

// Region is a vertical slice of the page owned by one section. Top is already
// adjusted for the fixed nav bar.
type Region struct {
	ID     string
	Top    int
	Height int
}

// ActiveRegion returns the ID of the region whose half-open range
// [Top, Top+Height) contains offset, or "" when none does. When regions
// overlap the last match wins.
func ActiveRegion(offset int, regions []Region) string {
	active := ""
	for _, r := range regions {
		if offset >= r.Top && offset < r.Top+r.Height {
			active = r.ID
		}
	}
	return active
}
