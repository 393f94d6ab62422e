// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: motion/timeline.go
// Summary: Thread-safe animation timeline with per-key runs and configurable easing.
// Usage: One Timeline drives every animated value on the page (scroll offset,
// stat counters, overlay intensities). Keys identify targets; retargeting a key
// restarts its run from the current interpolated value.

package motion

import (
	"sync"
	"time"
)

// AnimateOptions configures a single animation run.
type AnimateOptions struct {
	Duration time.Duration // zero means jump to the target immediately
	Easing   EasingFunc    // nil means the timeline default
}

// DefaultAnimateOptions returns options with the default easing.
func DefaultAnimateOptions(duration time.Duration) AnimateOptions {
	return AnimateOptions{Duration: duration}
}

// keyState tracks the animation run for a single key.
type keyState struct {
	current   float64
	start     float64
	target    float64
	startTime time.Time
	duration  time.Duration
	easing    EasingFunc
}

// Timeline provides per-key animation runs with automatic state management.
// Each key has at most one run in flight: starting a new run for a key cancels
// the old one and continues from wherever the value currently is, so rapid
// retriggering never produces conflicting updates on the same target.
type Timeline struct {
	mu             sync.RWMutex
	states         map[any]*keyState
	defaultEasing  EasingFunc
	defaultInitial float64
}

// NewTimeline creates a timeline manager. defaultInitial is the value reported
// for keys that were never animated (typically 0).
func NewTimeline(defaultInitial float64) *Timeline {
	return &Timeline{
		states:         make(map[any]*keyState),
		defaultEasing:  EaseOutCubic,
		defaultInitial: defaultInitial,
	}
}

// Set forces the current value for a key without animating, cancelling any run
// in flight. Used to seed the scroll key with the live offset before a jump.
func (tl *Timeline) Set(key any, value float64) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.states[key] = &keyState{current: value, start: value, target: value}
}

// AnimateTo starts or retargets an animation for the given key and returns the
// value at this moment.
func (tl *Timeline) AnimateTo(key any, target float64, duration time.Duration, now time.Time) float64 {
	return tl.AnimateToWithOptions(key, target, DefaultAnimateOptions(duration), now)
}

// AnimateToWithOptions starts an animation with an explicit easing function.
func (tl *Timeline) AnimateToWithOptions(key any, target float64, opts AnimateOptions, now time.Time) float64 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	state := tl.states[key]
	if state == nil {
		state = &keyState{
			current:  tl.defaultInitial,
			start:    tl.defaultInitial,
			target:   target,
			duration: opts.Duration,
			easing:   opts.Easing,
		}
		tl.states[key] = state
		if opts.Duration <= 0 {
			state.current = target
			return target
		}
		state.startTime = now
		return state.current
	}

	// Retarget: continue from the current interpolated value so an in-flight
	// run is replaced, never doubled.
	current := computeValue(state, now, tl.defaultEasing)
	state.current = current
	state.start = current
	state.target = target
	state.startTime = now
	state.duration = opts.Duration
	if opts.Easing != nil {
		state.easing = opts.Easing
	}

	if opts.Duration <= 0 || current == target {
		state.current = target
		return target
	}
	return current
}

// Get returns the animated value for a key at the given time. Uninitialised
// keys report the default initial value.
func (tl *Timeline) Get(key any, now time.Time) float64 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	state := tl.states[key]
	if state == nil {
		return tl.defaultInitial
	}
	value := computeValue(state, now, tl.defaultEasing)
	state.current = value
	return value
}

// GetCached returns the last computed value without advancing the run. Use
// after Update has run in the same frame.
func (tl *Timeline) GetCached(key any) float64 {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	state := tl.states[key]
	if state == nil {
		return tl.defaultInitial
	}
	return state.current
}

// IsAnimating reports whether the key has a run still in flight at now.
func (tl *Timeline) IsAnimating(key any, now time.Time) bool {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	state := tl.states[key]
	if state == nil || state.duration <= 0 {
		return false
	}
	return now.Sub(state.startTime) < state.duration && state.current != state.target
}

// HasActiveAnimations reports whether any key is still animating at now.
func (tl *Timeline) HasActiveAnimations(now time.Time) bool {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	for _, state := range tl.states {
		if state.duration > 0 && now.Sub(state.startTime) < state.duration && state.current != state.target {
			return true
		}
	}
	return false
}

// Update advances every run to the given time. Called once per frame.
func (tl *Timeline) Update(now time.Time) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	for _, state := range tl.states {
		state.current = computeValue(state, now, tl.defaultEasing)
	}
}

// Reset cancels and removes the run for a key.
func (tl *Timeline) Reset(key any) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	delete(tl.states, key)
}

// Clear removes every run.
func (tl *Timeline) Clear() {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.states = make(map[any]*keyState)
}

// computeValue interpolates a run at the given time. Callers hold the lock.
func computeValue(state *keyState, now time.Time, fallback EasingFunc) float64 {
	if state.duration <= 0 {
		return state.target
	}
	if now.Before(state.startTime) {
		return state.start
	}

	elapsed := now.Sub(state.startTime)
	if elapsed >= state.duration {
		return state.target
	}

	progress := float64(elapsed) / float64(state.duration)
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	easing := state.easing
	if easing == nil {
		easing = fallback
	}
	return state.start + (state.target-state.start)*easing(progress)
}
