// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Named color palette with hex parsing and perceptual blending.
// Usage: Widgets resolve colors through Get()/GetColor; the nav bar and modal
// overlay blend between palette entries as animations progress.

package theme

import (
	"log"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Manager resolves palette colors by section and key.
type Manager struct {
	mu     sync.RWMutex
	colors map[string]map[string]tcell.Color
}

var (
	once    sync.Once
	current *Manager
)

// Get returns the process-wide theme manager.
func Get() *Manager {
	once.Do(func() {
		current = NewManager(defaultPalette())
	})
	return current
}

// NewManager builds a manager from hex color strings grouped by section.
func NewManager(palette map[string]map[string]string) *Manager {
	m := &Manager{colors: make(map[string]map[string]tcell.Color)}
	for section, entries := range palette {
		m.colors[section] = make(map[string]tcell.Color, len(entries))
		for key, hex := range entries {
			color, ok := ParseHex(hex)
			if !ok {
				log.Printf("Theme: Invalid color %q for %s.%s, skipping", hex, section, key)
				continue
			}
			m.colors[section][key] = color
		}
	}
	return m
}

// Merge overlays palette entries (e.g. from the config file) onto the manager.
func (m *Manager) Merge(palette map[string]map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for section, entries := range palette {
		if m.colors[section] == nil {
			m.colors[section] = make(map[string]tcell.Color, len(entries))
		}
		for key, hex := range entries {
			color, ok := ParseHex(hex)
			if !ok {
				log.Printf("Theme: Invalid color %q for %s.%s, skipping", hex, section, key)
				continue
			}
			m.colors[section][key] = color
		}
	}
}

// GetColor resolves a palette entry, returning fallback when absent.
func (m *Manager) GetColor(section, key string, fallback tcell.Color) tcell.Color {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if entries, ok := m.colors[section]; ok {
		if color, ok := entries[key]; ok {
			return color
		}
	}
	return fallback
}

// ParseHex parses "#rrggbb" (leading # optional) into a tcell color.
func ParseHex(s string) (tcell.Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return tcell.ColorDefault, false
	}
	var rgb int32
	for _, ch := range s {
		var v int32
		switch {
		case ch >= '0' && ch <= '9':
			v = ch - '0'
		case ch >= 'a' && ch <= 'f':
			v = ch - 'a' + 10
		case ch >= 'A' && ch <= 'F':
			v = ch - 'A' + 10
		default:
			return tcell.ColorDefault, false
		}
		rgb = rgb<<4 | v
	}
	return tcell.NewHexColor(rgb), true
}

// Blend interpolates between two colors in RGB space. t=0 yields a, t=1
// yields b. Used for the nav bar solid transition and modal dimming.
func Blend(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	ca := colorful.Color{R: float64(ar) / 255, G: float64(ag) / 255, B: float64(ab) / 255}
	cb := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	mixed := ca.BlendRgb(cb, t).Clamped()
	return tcell.NewRGBColor(int32(mixed.R*255+0.5), int32(mixed.G*255+0.5), int32(mixed.B*255+0.5))
}

func defaultPalette() map[string]map[string]string {
	return map[string]map[string]string{
		"ui": {
			"surface_bg":  "#101418",
			"surface_fg":  "#d8dee9",
			"text_bg":     "#181c22",
			"text_fg":     "#e5e9f0",
			"caret_fg":    "#aab2bf",
			"muted_fg":    "#6b7280",
			"focus_fg":    "#ffffff",
			"focus_bg":    "#25303c",
			"error_fg":    "#e06c75",
			"success_fg":  "#98c379",
			"accent_fg":   "#61afef",
			"accent_bg":   "#1d3a5f",
			"overlay_bg":  "#000000",
		},
		"nav": {
			"bar_bg":       "#101418",
			"bar_solid_bg": "#1d2633",
			"link_fg":      "#aab2bf",
			"active_fg":    "#61afef",
			"brand_fg":     "#e5c07b",
		},
		// Product category accents.
		"amber": {"accent": "#e5c07b"},
		"teal":  {"accent": "#56b6c2"},
		"green": {"accent": "#98c379"},
		"blue":  {"accent": "#61afef"},
	}
}
