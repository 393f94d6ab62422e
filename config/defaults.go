// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Built-in defaults merged underneath any loaded config file.

package config

func defaults() map[string]Section {
	return map[string]Section{
		"motion": {
			// Scroll handler throttle window.
			"throttle_ms": 100,
			// Frame coalescing interval (~60fps).
			"frame_ms": 16,
			// Smooth scroll run length.
			"scroll_duration_ms": 800,
			"scroll_easing":      "ease-out-cubic",
			// Stat counter run length. Kept at the historical value even
			// though it finishes within a single frame.
			"stat_duration_ms": 20,
			// Nav bar style cross-fade.
			"nav_blend_ms": 200,
			// Disable animations entirely (jump to targets).
			"reduced": false,
		},
		"page": {
			// Offset past which the nav bar switches to its solid style.
			"nav_solid_threshold": 4,
			// Offset past which the back-to-top control appears.
			"back_to_top_threshold": 12,
			// Height reserved for the sticky nav bar.
			"nav_height": 1,
		},
		"form": {
			// Simulated network delay for contact submissions.
			"submit_delay_ms": 1500,
			// Probability that a simulated submission succeeds.
			"submit_success_rate": 0.95,
			// How long notifications stay on screen.
			"notice_duration_ms": 4000,
		},
	}
}
