// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package motion

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestThrottlerBurstRunsExactlyTwice(t *testing.T) {
	var runs atomic.Int32
	th := NewThrottler(250*time.Millisecond, func() { runs.Add(1) })
	defer th.Stop()

	// Burst of calls well inside one interval: one leading run, one trailing.
	for i := 0; i < 25; i++ {
		th.Call()
		time.Sleep(time.Millisecond)
	}

	if got := runs.Load(); got != 1 {
		t.Fatalf("runs during burst = %d, want 1 (leading only)", got)
	}

	time.Sleep(400 * time.Millisecond)
	if got := runs.Load(); got != 2 {
		t.Fatalf("runs after interval expiry = %d, want 2", got)
	}
}

func TestThrottlerTrailingFiresAfterSilence(t *testing.T) {
	var runs atomic.Int32
	th := NewThrottler(50*time.Millisecond, func() { runs.Add(1) })
	defer th.Stop()

	th.Call() // leading
	th.Call() // schedules trailing
	if !th.Pending() {
		t.Fatal("expected a trailing execution to be pending")
	}

	// No further calls arrive; the trailing run must still fire once.
	time.Sleep(100 * time.Millisecond)
	if got := runs.Load(); got != 2 {
		t.Fatalf("runs = %d, want 2", got)
	}
	if th.Pending() {
		t.Fatal("trailing execution still pending after firing")
	}
}

func TestThrottlerSpacedCallsRunImmediately(t *testing.T) {
	var runs atomic.Int32
	th := NewThrottler(20*time.Millisecond, func() { runs.Add(1) })
	defer th.Stop()

	for i := 0; i < 3; i++ {
		th.Call()
		time.Sleep(40 * time.Millisecond)
	}

	if got := runs.Load(); got != 3 {
		t.Fatalf("runs = %d, want 3 (each call outside the interval)", got)
	}
}

// A trailing callback can fire just as a new leading call cancels it; once
// cancelled it must not run, or the consumer sees two back-to-back executions.
func TestThrottlerSupersededTrailingNoOps(t *testing.T) {
	var runs atomic.Int32
	th := NewThrottler(30*time.Millisecond, func() { runs.Add(1) })
	defer th.Stop()

	th.Call() // leading
	th.Call() // schedules the trailing run

	// Detach the timer and keep its generation, standing in for a callback
	// that already fired and is blocked behind the next leading call.
	th.mu.Lock()
	stale := th.gen
	th.trailing.Stop()
	th.trailing = nil
	th.mu.Unlock()

	time.Sleep(40 * time.Millisecond)
	th.Call() // leading again, supersedes the detached trailing run
	th.fireTrailing(stale)

	if got := runs.Load(); got != 2 {
		t.Fatalf("runs = %d, want 2 (superseded trailing must no-op)", got)
	}
}

func TestThrottlerStopCancelsTrailing(t *testing.T) {
	var runs atomic.Int32
	th := NewThrottler(50*time.Millisecond, func() { runs.Add(1) })

	th.Call()
	th.Call()
	th.Stop()

	time.Sleep(100 * time.Millisecond)
	if got := runs.Load(); got != 1 {
		t.Fatalf("runs after Stop = %d, want 1", got)
	}
	th.Call()
	if got := runs.Load(); got != 1 {
		t.Fatalf("stopped throttler still ran, runs = %d", got)
	}
}
