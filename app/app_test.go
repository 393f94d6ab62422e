// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"sync"
	"testing"
	"time"

	"vitrine/catalog"
	"vitrine/config"
	"vitrine/ui/core"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := New(config.Default())
	t.Cleanup(a.Close)
	a.Resize(80, 24)
	return a
}

func (a *App) setOffset(offset int) {
	a.mu.Lock()
	a.lastOffset = offset
	a.mu.Unlock()
}

func TestSyncScrollEffectsResolvesActiveSection(t *testing.T) {
	a := newTestApp(t)

	a.setOffset(0)
	a.syncScrollEffects()
	if got := a.ActiveSection(); got != "home" {
		t.Fatalf("active at top = %q, want home", got)
	}

	top, ok := a.pg.SectionTop("contact", 80)
	if !ok {
		t.Fatal("contact section missing")
	}
	a.setOffset(top) // past the nav-adjusted boundary
	a.syncScrollEffects()
	if got := a.ActiveSection(); got != "contact" {
		t.Fatalf("active at contact top = %q, want contact", got)
	}
}

func TestNavBlendFollowsSolidThreshold(t *testing.T) {
	a := newTestApp(t)
	now := time.Now()

	a.setOffset(a.solidAt + 1)
	a.syncScrollEffects()
	a.Tick(now.Add(time.Second)) // well past the blend duration
	if got := a.timeline.GetCached(navBlendKey{}); got != 1 {
		t.Fatalf("blend after scrolling = %v, want 1", got)
	}

	a.setOffset(0)
	a.syncScrollEffects()
	a.Tick(now.Add(2 * time.Second))
	if got := a.timeline.GetCached(navBlendKey{}); got != 0 {
		t.Fatalf("blend back at top = %v, want 0", got)
	}
}

func TestBackToTopVisibilityThreshold(t *testing.T) {
	a := newTestApp(t)

	a.setOffset(a.topAt)
	a.syncScrollEffects()
	a.Tick(time.Now())
	if a.topBtn.visible {
		t.Fatal("control visible at the threshold, want hidden (strict >)")
	}

	a.setOffset(a.topAt + 1)
	a.syncScrollEffects()
	a.Tick(time.Now())
	if !a.topBtn.visible {
		t.Fatal("control hidden past the threshold")
	}
}

func TestStatCountersStartOnceOnActivation(t *testing.T) {
	a := newTestApp(t)

	top, ok := a.pg.SectionTop("about", 80)
	if !ok {
		t.Fatal("about section missing")
	}
	a.setOffset(top)
	a.syncScrollEffects()
	a.mu.Lock()
	started := a.statsStarted
	a.mu.Unlock()
	if !started {
		t.Fatal("stats did not start when their section became active")
	}

	a.Tick(time.Now().Add(time.Second))
	want := a.pg.Sections[1].Stats[0].Target
	if got := a.content.statValues[0]; got != want {
		t.Fatalf("first counter = %d, want %d", got, want)
	}

	// Scrolling away and back must not restart the counters.
	a.setOffset(0)
	a.syncScrollEffects()
	a.setOffset(top)
	a.syncScrollEffects()
	if got := a.content.statValues[0]; got != want {
		t.Fatalf("counter after revisit = %d, want %d", got, want)
	}
}

func TestJumpToSectionReducedMotionIsImmediate(t *testing.T) {
	cfg := config.Default()
	cfg.Set("motion", "reduced", true)
	a := New(cfg)
	t.Cleanup(a.Close)
	a.Resize(80, 24)

	a.JumpToSection("contact")
	top, _ := a.pg.SectionTop("contact", 80)
	want := top - a.navHeight
	if got := a.pane.ScrollOffset(); got != want {
		t.Fatalf("offset after reduced-motion jump = %d, want %d", got, want)
	}
}

func TestJumpToSectionAnimatesToTarget(t *testing.T) {
	a := newTestApp(t)

	a.JumpToSection("products")
	a.mu.Lock()
	animating := a.scrollAnimating
	a.mu.Unlock()
	if !animating {
		t.Fatal("jump did not start a scroll animation")
	}

	mid := a.pane.ScrollOffset()
	a.Tick(time.Now().Add(a.scrollDur / 4))
	quarter := a.pane.ScrollOffset()
	if quarter <= mid {
		t.Fatalf("offset did not advance: %d -> %d", mid, quarter)
	}

	a.Tick(time.Now().Add(a.scrollDur + time.Second))
	top, _ := a.pg.SectionTop("products", 80)
	want := top - a.navHeight
	if got := a.pane.ScrollOffset(); got != want {
		t.Fatalf("final offset = %d, want %d", got, want)
	}
	a.mu.Lock()
	still := a.scrollAnimating
	a.mu.Unlock()
	if still {
		t.Error("scrollAnimating not cleared after the run finished")
	}
}

func TestManualScrollCancelsAnimatedJump(t *testing.T) {
	a := newTestApp(t)

	a.JumpToSection("contact")
	a.onScroll(3) // user wheel input mid-animation

	a.mu.Lock()
	animating := a.scrollAnimating
	a.mu.Unlock()
	if animating {
		t.Fatal("user scroll should cancel the animated jump")
	}
}

func TestUnknownSectionJumpNoOps(t *testing.T) {
	a := newTestApp(t)
	before := a.pane.ScrollOffset()
	a.JumpToSection("basement")
	if got := a.pane.ScrollOffset(); got != before {
		t.Fatalf("offset changed on unknown section: %d -> %d", before, got)
	}
}

func TestProductModalLifecycle(t *testing.T) {
	a := newTestApp(t)

	a.ShowProduct("safety")
	a.mu.Lock()
	m := a.modal
	a.mu.Unlock()
	if m == nil {
		t.Fatal("modal not opened")
	}
	if a.UI.Focused() != m {
		t.Error("modal did not take focus")
	}

	a.CloseProduct()
	a.mu.Lock()
	m = a.modal
	a.mu.Unlock()
	if m != nil {
		t.Fatal("modal not closed")
	}
}

func TestProductActionsRoutedThroughRegistry(t *testing.T) {
	a := newTestApp(t)

	if !catalog.Invoke("product.show", "tools") {
		t.Fatal("product.show not registered")
	}
	a.mu.Lock()
	open := a.modal != nil
	a.mu.Unlock()
	if !open {
		t.Fatal("product.show did not open the modal")
	}

	if !catalog.Invoke("product.close", "") {
		t.Fatal("product.close not registered")
	}
	a.mu.Lock()
	open = a.modal != nil
	a.mu.Unlock()
	if open {
		t.Fatal("product.close did not close the modal")
	}
}

func TestProductModalBackdropCoversSurface(t *testing.T) {
	a := newTestApp(t)
	a.ShowProduct("tools")
	a.mu.Lock()
	m := a.modal
	a.mu.Unlock()
	if m == nil {
		t.Fatal("modal not opened")
	}

	if w, h := m.Size(); w != 80 || h != 24 {
		t.Fatalf("backdrop = %dx%d, want the full 80x24 surface", w, h)
	}
	if m.box.W >= 80 || m.box.H >= 24 {
		t.Fatalf("dialog box not smaller than the surface: %+v", m.box)
	}
	// Backdrop clicks are outside the dialog, so they dismiss.
	if m.HitTest(0, 0) {
		t.Error("backdrop corner counts as inside the dialog")
	}
	if !m.HitTest(m.box.X+1, m.box.Y+1) {
		t.Error("dialog interior does not hit-test")
	}
}

func TestShowUnknownProductNoOps(t *testing.T) {
	a := newTestApp(t)
	a.ShowProduct("submarines")
	a.mu.Lock()
	open := a.modal != nil
	a.mu.Unlock()
	if open {
		t.Fatal("unknown category opened a modal")
	}
}

func TestScrollPipelineEndToEnd(t *testing.T) {
	a := newTestApp(t)

	top, _ := a.pg.SectionTop("products", 80)
	a.pane.SetOffset(top)
	a.onScroll(top)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if a.ActiveSection() == "products" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("pipeline never resolved products; active = %q", a.ActiveSection())
}

func TestStatusLineShowAndExpire(t *testing.T) {
	s := newStatusLine(newStyleSet(), 30*time.Millisecond)
	s.show("saved", true)
	s.mu.Lock()
	text := s.text
	s.mu.Unlock()
	if text != "saved" {
		t.Fatalf("status text = %q", text)
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		text = s.text
		s.mu.Unlock()
		if text == "" {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("status line never expired")
}

// Clear timers invalidate from their own goroutine while the UI goroutine
// relayouts on terminal resize; the shared geometry must stay race-free.
func TestStatusLineRelayoutConcurrentWithNotices(t *testing.T) {
	s := newStatusLine(newStyleSet(), time.Millisecond)
	s.SetInvalidator(func(core.Rect) {})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.show("stock list updated", true)
		}
	}()
	for i := 0; i < 200; i++ {
		s.place(80+i%5, 24)
	}
	wg.Wait()
	time.Sleep(10 * time.Millisecond) // let the last clear timer fire
}
