// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: app/status.go
// Summary: Bottom status line for form notifications, auto-cleared on a timer.

package app

import (
	"sync"
	"time"

	"vitrine/ui/core"
)

// statusLine shows one notification at a time on the bottom row. A new notice
// replaces the previous one and restarts the clear timer.
type statusLine struct {
	core.BaseWidget
	styles *styleSet

	mu      sync.Mutex
	text    string
	success bool
	ttl     time.Duration
	clear   *time.Timer
	inv     func(core.Rect)
	area    core.Rect // copy of Rect readable from the clear timer
}

func newStatusLine(styles *styleSet, ttl time.Duration) *statusLine {
	return &statusLine{styles: styles, ttl: ttl}
}

// ZIndex keeps notifications above the content but below modals.
func (s *statusLine) ZIndex() int { return 20 }

func (s *statusLine) SetInvalidator(fn func(core.Rect)) { s.inv = fn }

func (s *statusLine) place(surfaceW, surfaceH int) {
	s.SetPosition(0, surfaceH-1)
	s.Resize(surfaceW, 1)
	s.mu.Lock()
	s.area = s.Rect
	s.mu.Unlock()
}

// show replaces the current notice and arms the clear timer.
func (s *statusLine) show(text string, success bool) {
	s.mu.Lock()
	s.text = text
	s.success = success
	if s.clear != nil {
		s.clear.Stop()
	}
	s.clear = time.AfterFunc(s.ttl, s.expire)
	s.mu.Unlock()
	s.invalidate()
}

func (s *statusLine) expire() {
	s.mu.Lock()
	s.text = ""
	s.clear = nil
	s.mu.Unlock()
	s.invalidate()
}

func (s *statusLine) invalidate() {
	s.mu.Lock()
	area := s.area
	s.mu.Unlock()
	if s.inv != nil {
		s.inv(area)
	}
}

func (s *statusLine) Draw(p *core.Painter) {
	s.mu.Lock()
	text, success := s.text, s.success
	s.mu.Unlock()
	if text == "" {
		return
	}
	style := s.styles.errorLine
	if success {
		style = s.styles.successLine
	}
	p.Fill(s.Rect, ' ', style)
	p.DrawTextClipped(s.Rect.X+1, s.Rect.Y, text, s.Rect.W-2, style)
}
