// SPDX-License-Identifier: MIT
// Package engine: the Engine type, loading and stepping.

package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/matrix"
	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/sirupsen/logrus"
)

// ErrBusy is returned by Step and RunToCompletion while an auto-run is active.
var ErrBusy = errors.New("engine: auto-run in progress")

// Engine owns a Graph and the active Stepper.
type Engine struct {
	mu      sync.Mutex
	graph   *core.Graph
	alg     prim_kruskal.Algorithm
	start   int
	stepper prim_kruskal.Stepper
	lastErr error
	running bool

	log    logrus.FieldLogger
	onStep func(prim_kruskal.StepResult)
}

// New returns an Engine with no graph. Until a graph is loaded it reports complete.
func New(opts ...Option) *Engine {
	e := &Engine{
		alg:    prim_kruskal.MethodKruskal,
		log:    discardLogger(),
		onStep: func(prim_kruskal.StepResult) {},
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Load parses text and, on success, replaces the Graph and restarts the
// current algorithm. On failure nothing but LastError changes.
func (e *Engine) Load(text string) error {
	g, err := matrix.Parse(text)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.lastErr = err
		e.log.WithError(err).Warn("matrix rejected, keeping previous graph")
		return err
	}
	if err := e.resetLocked(g, e.alg, e.start); err != nil {
		e.lastErr = err
		e.log.WithError(err).Warn("reset after load failed")
		return err
	}
	e.lastErr = nil

	return nil
}

// Reset installs g and starts alg from scratch. start is clamped to the node range.
func (e *Engine) Reset(g *core.Graph, alg prim_kruskal.Algorithm, start int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.resetLocked(g, alg, start)
}

// Restart rebuilds the Stepper with the current graph, algorithm and start vertex.
func (e *Engine) Restart() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.resetLocked(e.graph, e.alg, e.start)
}

// SetAlgorithm switches algorithm and restarts.
func (e *Engine) SetAlgorithm(alg prim_kruskal.Algorithm) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.resetLocked(e.graph, alg, e.start)
}

// SetStartVertex changes the Prim start vertex (clamped) and restarts.
func (e *Engine) SetStartVertex(v int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.resetLocked(e.graph, e.alg, v)
}

func (e *Engine) resetLocked(g *core.Graph, alg prim_kruskal.Algorithm, start int) error {
	if e.running {
		return ErrBusy
	}
	var (
		s   prim_kruskal.Stepper
		err error
	)
	start = matrix.ClampVertex(start, g.Order())
	if g != nil {
		if s, err = prim_kruskal.New(g, alg, start); err != nil {
			return fmt.Errorf("engine: reset: %w", err)
		}
	} else if _, err = prim_kruskal.ParseAlgorithm(string(alg)); err != nil {
		return fmt.Errorf("engine: reset: %w", err)
	}
	e.graph, e.alg, e.start, e.stepper = g, alg, start, s
	e.log.WithFields(logrus.Fields{
		"algorithm": alg,
		"start":     start,
		"nodes":     g.Order(),
	}).Debug("engine reset")

	return nil
}

// Step examines at most one edge. The returned result's Done field reports
// whether the engine is complete after the call.
func (e *Engine) Step() (prim_kruskal.StepResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return prim_kruskal.StepResult{}, ErrBusy
	}

	return e.stepLocked(), nil
}

func (e *Engine) stepLocked() prim_kruskal.StepResult {
	if e.stepper == nil {
		return prim_kruskal.StepResult{Done: true}
	}
	res := e.stepper.Step()
	if res.Examined {
		e.log.WithFields(logrus.Fields{
			"algorithm": e.alg,
			"edge":      res.Edge.String(),
			"accepted":  res.Accepted,
			"done":      res.Done,
		}).Debug("step")
		e.onStep(res)
	}

	return res
}

// IsComplete reports whether further steps would be no-ops.
func (e *Engine) IsComplete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.completeLocked()
}

func (e *Engine) completeLocked() bool {
	return e.stepper == nil || e.stepper.Done()
}

// CurrentStepIndex returns the visualizer progress counter (-1 before progress).
func (e *Engine) CurrentStepIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stepper == nil {
		return -1
	}

	return e.stepper.StepIndex()
}

// MSTEdges returns a copy of the accepted edges in insertion order.
func (e *Engine) MSTEdges() []core.Edge {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stepper == nil {
		return nil
	}

	return e.stepper.MST()
}

// TotalWeight returns the sum of accepted edge weights.
func (e *Engine) TotalWeight() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stepper == nil {
		return 0
	}

	return e.stepper.TotalWeight()
}

// Graph returns a deep copy of the current graph, or nil.
func (e *Engine) Graph() *core.Graph {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.graph.Clone()
}

// Algorithm returns the active algorithm.
func (e *Engine) Algorithm() prim_kruskal.Algorithm {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.alg
}

// StartVertex returns the (clamped) Prim start vertex.
func (e *Engine) StartVertex() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.start
}

// LastError returns the error of the most recent failed Load, cleared by a successful one.
func (e *Engine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lastErr
}

// Running reports whether RunToCompletion is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.running
}
