// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: form/processor.go
// Summary: Submission workflow: validate, deliver, notify exactly once.

package form

import (
	"context"
	"log"
	"strings"
	"sync"
)

// Processor runs the submit workflow. Notify receives exactly one message per
// Submit call; OnBusyChange tracks whether a submission is in flight so the UI
// can disable the submit control.
type Processor struct {
	sub          Submitter
	Notify       func(text string, success bool)
	OnBusyChange func(busy bool)

	mu   sync.Mutex
	busy bool
}

// NewProcessor wires a processor to a delivery backend.
func NewProcessor(sub Submitter) *Processor {
	return &Processor{sub: sub}
}

// Busy reports whether a submission is in flight.
func (p *Processor) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

func (p *Processor) setBusy(busy bool) {
	p.mu.Lock()
	p.busy = busy
	p.mu.Unlock()
	if p.OnBusyChange != nil {
		p.OnBusyChange(busy)
	}
}

func (p *Processor) notify(text string, success bool) {
	if p.Notify != nil {
		p.Notify(text, success)
	}
}

// Submit validates and delivers the message, blocking until done. Whatever the
// outcome, the busy flag is cleared and exactly one notification is emitted.
// Returns true when the message was delivered.
func (p *Processor) Submit(ctx context.Context, msg Message) bool {
	if problems := msg.Validate(); len(problems) > 0 {
		p.notify(strings.Join(problems, " "), false)
		return false
	}

	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		log.Printf("Form: submission already in flight, ignoring")
		return false
	}
	p.busy = true
	p.mu.Unlock()
	if p.OnBusyChange != nil {
		p.OnBusyChange(true)
	}
	defer p.setBusy(false)

	receipt, err := p.sub.Submit(ctx, msg)
	if err != nil {
		log.Printf("Form: submission failed: %v", err)
		p.notify("Something went wrong sending your message. Please try again later.", false)
		return false
	}

	p.notify("Thank you! Your message has been sent. Reference: "+receipt.Ref, true)
	return true
}
