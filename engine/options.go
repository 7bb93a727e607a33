// SPDX-License-Identifier: MIT
// Package engine: functional options.

package engine

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/sirupsen/logrus"
)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger sets the logger used for resets, rejected loads and steps.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}

	return func(e *Engine) {
		e.log = l
	}
}

// WithAlgorithm sets the initial algorithm (default MethodKruskal).
// Panics on an unknown algorithm.
func WithAlgorithm(a prim_kruskal.Algorithm) Option {
	alg, err := prim_kruskal.ParseAlgorithm(string(a))
	if err != nil {
		panic(fmt.Sprintf("engine: WithAlgorithm: %v", err))
	}

	return func(e *Engine) {
		e.alg = alg
	}
}

// WithStartVertex sets the initial Prim start vertex (default 0).
func WithStartVertex(v int) Option {
	return func(e *Engine) {
		e.start = v
	}
}

// WithOnStep registers a callback run after every examining step, manual or
// automatic. It is called with the engine lock held and must not call back
// into the Engine.
func WithOnStep(fn func(res prim_kruskal.StepResult)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.onStep = fn
		}
	}
}

// discardLogger is the default: library code stays silent unless asked.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
