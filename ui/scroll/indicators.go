// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/scroll/indicators.go
// Summary: Scroll indicator rendering for scrollable widgets.
// Provides the overflow glyphs (▲/▼) shown when content extends past the viewport.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"vitrine/ui/core"
)

// IndicatorPosition specifies where scroll indicators are rendered.
type IndicatorPosition int

const (
	// IndicatorRight places indicators at the right edge of the viewport (default).
	IndicatorRight IndicatorPosition = iota
	// IndicatorLeft places indicators at the left edge of the viewport.
	IndicatorLeft
)

// Default indicator glyphs.
const (
	DefaultUpGlyph   = '▲'
	DefaultDownGlyph = '▼'
)

// IndicatorConfig configures the appearance of scroll indicators.
type IndicatorConfig struct {
	Position  IndicatorPosition
	Style     tcell.Style
	UpGlyph   rune
	DownGlyph rune
}

// DefaultIndicatorConfig returns a default configuration with standard glyphs.
func DefaultIndicatorConfig(style tcell.Style) IndicatorConfig {
	return IndicatorConfig{
		Position:  IndicatorRight,
		Style:     style,
		UpGlyph:   DefaultUpGlyph,
		DownGlyph: DefaultDownGlyph,
	}
}

// DrawIndicators renders overflow indicators for a viewport: an up glyph when
// state.CanScrollUp() and a down glyph when state.CanScrollDown().
func DrawIndicators(painter *core.Painter, rect core.Rect, state State, config IndicatorConfig) {
	if rect.Empty() {
		return
	}

	var x int
	switch config.Position {
	case IndicatorLeft:
		x = rect.X
	default:
		x = rect.X + rect.W - 1
	}

	if state.CanScrollUp() {
		glyph := config.UpGlyph
		if glyph == 0 {
			glyph = DefaultUpGlyph
		}
		painter.SetCell(x, rect.Y, glyph, config.Style)
	}
	if state.CanScrollDown() {
		glyph := config.DownGlyph
		if glyph == 0 {
			glyph = DefaultDownGlyph
		}
		painter.SetCell(x, rect.Y+rect.H-1, glyph, config.Style)
	}
}
