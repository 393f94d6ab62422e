// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package motion

import (
	"testing"
	"time"
)

func TestTimelineReachesTargetExactly(t *testing.T) {
	tl := NewTimeline(0)
	start := time.Now()

	tl.AnimateTo("k", 250, 800*time.Millisecond, start)

	if got := tl.Get("k", start); got != 0 {
		t.Fatalf("value at start = %v, want 0", got)
	}
	if got := tl.Get("k", start.Add(800*time.Millisecond)); got != 250 {
		t.Fatalf("value at duration = %v, want exactly 250", got)
	}
	if got := tl.Get("k", start.Add(5*time.Second)); got != 250 {
		t.Fatalf("value past duration = %v, want 250", got)
	}
}

func TestTimelineMonotonicBetweenEndpoints(t *testing.T) {
	tl := NewTimeline(0)
	start := time.Now()
	tl.AnimateToWithOptions("k", 100, AnimateOptions{
		Duration: time.Second,
		Easing:   EaseOutCubic,
	}, start)

	prev := tl.Get("k", start)
	for ms := 10; ms <= 1000; ms += 10 {
		cur := tl.Get("k", start.Add(time.Duration(ms)*time.Millisecond))
		if cur < prev {
			t.Fatalf("value decreased at %dms: %v < %v", ms, cur, prev)
		}
		if cur < 0 || cur > 100 {
			t.Fatalf("value out of [0,100] at %dms: %v", ms, cur)
		}
		prev = cur
	}
}

func TestTimelineZeroDurationJumps(t *testing.T) {
	tl := NewTimeline(0)
	now := time.Now()
	if got := tl.AnimateTo("k", 42, 0, now); got != 42 {
		t.Fatalf("zero-duration AnimateTo returned %v, want 42", got)
	}
	if got := tl.Get("k", now); got != 42 {
		t.Fatalf("value after zero-duration run = %v, want 42", got)
	}
}

func TestTimelineRetargetContinuesFromCurrent(t *testing.T) {
	tl := NewTimeline(0)
	start := time.Now()
	tl.AnimateToWithOptions("k", 100, AnimateOptions{
		Duration: time.Second,
		Easing:   EaseLinear,
	}, start)

	// Halfway through, retarget back toward 0. The new run must start from
	// the midpoint, not snap to either endpoint.
	mid := start.Add(500 * time.Millisecond)
	at := tl.AnimateToWithOptions("k", 0, AnimateOptions{
		Duration: time.Second,
		Easing:   EaseLinear,
	}, mid)
	if at < 49 || at > 51 {
		t.Fatalf("retarget start value = %v, want ~50", at)
	}
	if got := tl.Get("k", mid.Add(time.Second)); got != 0 {
		t.Fatalf("value after retargeted run = %v, want 0", got)
	}
}

func TestTimelineSetSeedsValue(t *testing.T) {
	tl := NewTimeline(0)
	tl.Set("scroll", 340)
	start := time.Now()
	tl.AnimateToWithOptions("scroll", 0, AnimateOptions{
		Duration: 800 * time.Millisecond,
		Easing:   EaseOutCubic,
	}, start)

	early := tl.Get("scroll", start.Add(10*time.Millisecond))
	if early > 340 || early < 300 {
		t.Fatalf("early value = %v, want just below 340", early)
	}
	if got := tl.Get("scroll", start.Add(time.Second)); got != 0 {
		t.Fatalf("final value = %v, want 0", got)
	}
}

func TestTimelineResetCancelsRun(t *testing.T) {
	tl := NewTimeline(0)
	start := time.Now()
	tl.AnimateTo("k", 100, time.Second, start)
	tl.Reset("k")

	if tl.IsAnimating("k", start.Add(100*time.Millisecond)) {
		t.Fatal("key still animating after Reset")
	}
	if got := tl.Get("k", start.Add(100*time.Millisecond)); got != 0 {
		t.Fatalf("value after Reset = %v, want default initial 0", got)
	}
}

func TestTimelineHasActiveAnimations(t *testing.T) {
	tl := NewTimeline(0)
	start := time.Now()
	if tl.HasActiveAnimations(start) {
		t.Fatal("fresh timeline reports active animations")
	}
	tl.AnimateTo("k", 100, time.Second, start)
	if !tl.HasActiveAnimations(start.Add(100 * time.Millisecond)) {
		t.Fatal("mid-run timeline reports no active animations")
	}
	tl.Update(start.Add(2 * time.Second))
	if tl.HasActiveAnimations(start.Add(2 * time.Second)) {
		t.Fatal("finished timeline still reports active animations")
	}
}

func TestTimelineUpdateAdvancesCachedValues(t *testing.T) {
	tl := NewTimeline(0)
	start := time.Now()
	tl.AnimateToWithOptions("k", 100, AnimateOptions{
		Duration: time.Second,
		Easing:   EaseLinear,
	}, start)

	tl.Update(start.Add(500 * time.Millisecond))
	cached := tl.GetCached("k")
	if cached < 49 || cached > 51 {
		t.Fatalf("cached value after Update = %v, want ~50", cached)
	}
}
