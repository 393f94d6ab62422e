// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"sync"
	"testing"
)

// Invalidations arrive from timer goroutines while the UI goroutine resizes;
// both touch the surface size, so this must be clean under the race detector.
func TestInvalidateConcurrentWithResize(t *testing.T) {
	u := NewUIManager(defaultStyle())

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(2)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				u.InvalidateAll()
				u.Invalidate(Rect{X: 1, Y: 1, W: 3, H: 3})
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			u.Resize(80+i%5, 24+i%3)
		}
		close(stop)
	}()
	wg.Wait()

	u.Resize(80, 24)
	u.InvalidateAll()
	if buf := u.Render(); len(buf) != 24 || len(buf[0]) != 80 {
		t.Fatalf("buffer after concurrent resizing = %dx%d, want 80x24",
			len(buf[0]), len(buf))
	}
}

func TestRefreshNotifierNeverBlocks(t *testing.T) {
	u := NewUIManager(defaultStyle())
	u.Resize(10, 4)

	ch := make(chan bool, 1)
	u.SetRefreshNotifier(ch)

	// The channel fills after one invalidation; further ones must not block.
	for i := 0; i < 10; i++ {
		u.InvalidateAll()
	}
	select {
	case <-ch:
	default:
		t.Fatal("no refresh was signalled")
	}
}
