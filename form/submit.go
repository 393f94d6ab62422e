// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: form/submit.go
// Summary: Submission backend interface and the simulated implementation.

package form

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Receipt is returned by a successful submission.
type Receipt struct {
	Ref string
}

// Submitter delivers a validated message to a backend.
type Submitter interface {
	Submit(ctx context.Context, msg Message) (Receipt, error)
}

// SimulatedSubmitter stands in for a real endpoint: it waits Delay, then
// succeeds with probability SuccessRate. Rand and Sleep are injectable so tests
// can force either outcome without waiting.
type SimulatedSubmitter struct {
	Delay       time.Duration
	SuccessRate float64
	Rand        func() float64
	Sleep       func(ctx context.Context, d time.Duration) error
}

// NewSimulatedSubmitter returns the stock configuration: 1.5s delay, 95%
// success.
func NewSimulatedSubmitter() *SimulatedSubmitter {
	return &SimulatedSubmitter{
		Delay:       1500 * time.Millisecond,
		SuccessRate: 0.95,
	}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, msg Message) (Receipt, error) {
	sleep := s.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	if err := sleep(ctx, s.Delay); err != nil {
		return Receipt{}, err
	}

	roll := s.Rand
	if roll == nil {
		roll = rand.Float64
	}
	if roll() >= s.SuccessRate {
		return Receipt{}, fmt.Errorf("simulated delivery failure")
	}
	return Receipt{Ref: uuid.NewString()}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
