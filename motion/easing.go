// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: motion/easing.go
// Summary: Named easing functions shared by every animation in the page.
// Usage: Pass one of these to Timeline options or look one up by config name.

package motion

// EasingFunc maps linear time progress [0,1] to eased progress [0,1].
type EasingFunc func(t float64) float64

var (
	// EaseLinear - no easing, constant speed.
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseSmoothstep - smooth S-curve, accelerates at start, decelerates at end.
	EaseSmoothstep EasingFunc = func(t float64) float64 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseInQuad - quadratic ease-in (slow start, accelerating).
	EaseInQuad EasingFunc = func(t float64) float64 {
		return t * t
	}

	// EaseOutQuad - quadratic ease-out (fast start, decelerating).
	EaseOutQuad EasingFunc = func(t float64) float64 {
		return t * (2.0 - t)
	}

	// EaseInCubic - cubic ease-in.
	EaseInCubic EasingFunc = func(t float64) float64 {
		return t * t * t
	}

	// EaseOutCubic - cubic ease-out, 1-(1-t)^3. The page's scroll and counter
	// animations use this: fast start, slowing toward the target.
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}

	// EaseInOutCubic - cubic ease-in-out.
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		t1 := 2.0*t - 2.0
		return 1.0 + t1*t1*t1*0.5
	}
)

// EasingByName resolves an easing from its config name. Unknown names fall
// back to EaseOutCubic so a typo in a theme file degrades instead of breaking.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "smoothstep":
		return EaseSmoothstep
	case "ease-in-quad":
		return EaseInQuad
	case "ease-out-quad":
		return EaseOutQuad
	case "ease-in-cubic":
		return EaseInCubic
	case "ease-out-cubic":
		return EaseOutCubic
	case "ease-in-out-cubic":
		return EaseInOutCubic
	default:
		return EaseOutCubic
	}
}
