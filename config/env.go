// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/env.go
// Summary: Environment variable overrides applied on top of the config file.

package config

import (
	"github.com/caarlos0/env/v11"
)

// Overrides are environment knobs applied after the file is loaded.
type Overrides struct {
	ConfigPath    string `env:"VITRINE_CONFIG"`
	ReducedMotion bool   `env:"VITRINE_REDUCED_MOTION"`
	FrameMS       int    `env:"VITRINE_FRAME_MS"`
	ThrottleMS    int    `env:"VITRINE_THROTTLE_MS"`
}

// ParseOverrides reads VITRINE_* environment variables.
func ParseOverrides() (Overrides, error) {
	var o Overrides
	err := env.Parse(&o)
	return o, err
}

// Apply writes the non-zero overrides into the store.
func (o Overrides) Apply(s *Store) {
	if o.ReducedMotion {
		s.Set("motion", "reduced", true)
	}
	if o.FrameMS > 0 {
		s.Set("motion", "frame_ms", o.FrameMS)
	}
	if o.ThrottleMS > 0 {
		s.Set("motion", "throttle_ms", o.ThrottleMS)
	}
}
