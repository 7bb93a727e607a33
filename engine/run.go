// SPDX-License-Identifier: MIT
// Package engine: paced auto-run.

package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Auto-run speed bounds, in milliseconds.
const (
	MinSpeedMS  = 100
	MaxSpeedMS  = 2000
	SpeedStepMS = 100
)

// RunToCompletion steps the engine until it is complete, maxSteps examining
// steps have been taken (maxSteps ≤ 0 means no limit) or ctx is cancelled.
//
// Each step is preceded by a wait of interval (interval ≤ 0 disables
// pacing). Cancellation is cooperative: it is observed between steps, and
// a step once started always finishes. It returns the number of steps
// taken and ctx's error if cancellation ended the run.
func (e *Engine) RunToCompletion(ctx context.Context, interval time.Duration, maxSteps int) (int, error) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return 0, ErrBusy
	}
	e.running = true
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	limiter := rate.NewLimiter(limit, 1)
	limiter.Allow() // drain the initial burst so the first step also waits

	log := e.log.WithFields(logrus.Fields{"interval": interval, "max_steps": maxSteps})
	log.Debug("auto-run started")

	steps := 0
	for {
		e.mu.Lock()
		done := e.completeLocked()
		e.mu.Unlock()
		if done || (maxSteps > 0 && steps >= maxSteps) {
			log.WithField("steps", steps).Debug("auto-run finished")
			return steps, nil
		}

		if err := pace(ctx, limiter); err != nil {
			log.WithError(err).WithField("steps", steps).Debug("auto-run cancelled")
			return steps, err
		}

		e.mu.Lock()
		res := e.stepLocked()
		e.mu.Unlock()
		if res.Examined {
			steps++
		}
	}
}

// pace blocks until the limiter grants the next step or ctx is done.
// The reservation is returned to the limiter on cancellation. Unlike
// rate.Limiter.Wait, it never fails before ctx is actually done.
func pace(ctx context.Context, limiter *rate.Limiter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r := limiter.Reserve()
	delay := r.Delay()
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}

// ClampSpeed bounds ms to [MinSpeedMS, MaxSpeedMS] and rounds it to the
// nearest SpeedStepMS.
func ClampSpeed(ms int) int {
	if ms < MinSpeedMS {
		ms = MinSpeedMS
	}
	if ms > MaxSpeedMS {
		ms = MaxSpeedMS
	}

	return (ms + SpeedStepMS/2) / SpeedStepMS * SpeedStepMS
}
