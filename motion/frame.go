// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: motion/frame.go
// Summary: Single-flight frame scheduler that coalesces work to once per frame.
// Usage: The scroll coordinator requests a frame on every (throttled) scroll
// notification; all requests inside one frame interval collapse into a single
// callback, bounding derived-state recomputation to the display refresh rate.

package motion

import (
	"sync"
	"time"
)

// FrameScheduler runs a callback at most once per frame interval. It has two
// states, idle and frame-pending; requests made while a frame is pending are
// absorbed by the already scheduled callback.
type FrameScheduler struct {
	mu       sync.Mutex
	interval time.Duration
	run      func()
	timer    *time.Timer
	pending  bool
	stopped  bool
}

// NewFrameScheduler creates a scheduler firing run at most once per interval.
// A zero or negative interval falls back to ~60fps.
func NewFrameScheduler(interval time.Duration, run func()) *FrameScheduler {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &FrameScheduler{interval: interval, run: run}
}

// Request schedules the frame callback unless one is already pending. Returns
// true when this call armed the timer, false when it was absorbed.
func (s *FrameScheduler) Request() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.pending {
		return false
	}
	s.pending = true
	s.timer = time.AfterFunc(s.interval, s.fire)
	return true
}

func (s *FrameScheduler) fire() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.timer = nil
	s.mu.Unlock()
	s.run()
}

// Pending reports whether a frame callback is scheduled but not yet fired.
func (s *FrameScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Stop cancels any scheduled frame and ignores further requests.
func (s *FrameScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.pending = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
