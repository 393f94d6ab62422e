// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/scroll/state.go
// Summary: Value-type scroll state: offset, content height, viewport height.
// All mutations return a new State with the offset clamped to valid range.

package scroll

// State describes a vertical scroll position over fixed-height content.
type State struct {
	Offset         int
	ContentHeight  int
	ViewportHeight int
}

// NewState creates a state at offset zero.
func NewState(contentHeight, viewportHeight int) State {
	return State{ContentHeight: contentHeight, ViewportHeight: viewportHeight}
}

func (s State) maxOffset() int {
	m := s.ContentHeight - s.ViewportHeight
	if m < 0 {
		return 0
	}
	return m
}

func (s State) clamped() State {
	if s.Offset < 0 {
		s.Offset = 0
	}
	if m := s.maxOffset(); s.Offset > m {
		s.Offset = m
	}
	return s
}

// WithContentHeight returns the state with new content height, offset clamped.
func (s State) WithContentHeight(h int) State {
	s.ContentHeight = h
	return s.clamped()
}

// WithViewportHeight returns the state with new viewport height, offset clamped.
func (s State) WithViewportHeight(h int) State {
	s.ViewportHeight = h
	return s.clamped()
}

// WithOffset returns the state scrolled to the given offset, clamped.
func (s State) WithOffset(offset int) State {
	s.Offset = offset
	return s.clamped()
}

// ScrollBy scrolls by delta rows (positive = down), clamped.
func (s State) ScrollBy(delta int) State {
	s.Offset += delta
	return s.clamped()
}

// ScrollTo scrolls the minimal distance needed to make row visible.
func (s State) ScrollTo(row int) State {
	if row < s.Offset {
		s.Offset = row
	} else if row >= s.Offset+s.ViewportHeight {
		s.Offset = row - s.ViewportHeight + 1
	}
	return s.clamped()
}

// ScrollToCentered centers row in the viewport where possible.
func (s State) ScrollToCentered(row int) State {
	s.Offset = row - s.ViewportHeight/2
	return s.clamped()
}

// ScrollToTop scrolls to offset zero.
func (s State) ScrollToTop() State {
	s.Offset = 0
	return s
}

// ScrollToBottom scrolls to the maximum offset.
func (s State) ScrollToBottom() State {
	s.Offset = s.maxOffset()
	return s
}

// IsRowVisible reports whether a content row is inside the viewport.
func (s State) IsRowVisible(row int) bool {
	return row >= s.Offset && row < s.Offset+s.ViewportHeight
}

// CanScroll reports whether the content exceeds the viewport.
func (s State) CanScroll() bool {
	return s.ContentHeight > s.ViewportHeight
}

// CanScrollUp reports whether there is content above the viewport.
func (s State) CanScrollUp() bool {
	return s.Offset > 0
}

// CanScrollDown reports whether there is content below the viewport.
func (s State) CanScrollDown() bool {
	return s.Offset < s.maxOffset()
}
