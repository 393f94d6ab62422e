// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: motion/throttle.go
// Summary: Rate limiter with a trailing-edge guarantee for high-frequency events.
// Usage: Wraps the scroll and resize handlers so derived-state recomputation is
// bounded to once per interval without ever losing the final event of a burst.

package motion

import (
	"sync"
	"time"
)

// Throttler executes a callback at most once per interval. The first call in a
// quiet period runs immediately; calls arriving inside the interval coalesce
// into exactly one trailing execution scheduled for the remaining budget. The
// trailing run fires even if no further calls arrive.
type Throttler struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	last     time.Time
	trailing *time.Timer
	gen      uint64 // bumped when a scheduled trailing run is superseded
	stopped  bool
}

// NewThrottler wraps fn with the given minimum interval between executions.
func NewThrottler(interval time.Duration, fn func()) *Throttler {
	return &Throttler{interval: interval, fn: fn}
}

// Call requests an execution. Runs fn synchronously when the interval budget
// allows, otherwise (re)schedules the single trailing execution.
func (t *Throttler) Call() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}

	now := time.Now()
	elapsed := now.Sub(t.last)
	if t.last.IsZero() || elapsed >= t.interval {
		// Stop can miss a trailing callback that already fired and is
		// waiting on the mutex; the generation bump makes it a no-op.
		if t.trailing != nil {
			t.trailing.Stop()
			t.trailing = nil
		}
		t.gen++
		t.last = now
		t.mu.Unlock()
		t.fn()
		return
	}

	remaining := t.interval - elapsed
	if t.trailing != nil {
		t.trailing.Stop()
	}
	t.gen++
	gen := t.gen
	t.trailing = time.AfterFunc(remaining, func() { t.fireTrailing(gen) })
	t.mu.Unlock()
}

func (t *Throttler) fireTrailing(gen uint64) {
	t.mu.Lock()
	if t.stopped || gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.trailing = nil
	t.last = time.Now()
	t.mu.Unlock()
	t.fn()
}

// Pending reports whether a trailing execution is currently scheduled.
func (t *Throttler) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.trailing != nil
}

// Stop cancels any scheduled trailing execution and ignores further calls.
func (t *Throttler) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.gen++
	if t.trailing != nil {
		t.trailing.Stop()
		t.trailing = nil
	}
}
