// SPDX-License-Identifier: MIT
// Package prim_kruskal defines the Stepper capability, algorithm selection,
// options and sentinel errors.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mststep/core"
)

// ErrInvalidGraph indicates that a nil graph was supplied.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that no spanning tree covers every vertex.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownAlgorithm indicates an algorithm name other than "kruskal" or "prim".
var ErrUnknownAlgorithm = errors.New("prim_kruskal: unknown algorithm")

// Algorithm names an MST strategy.
type Algorithm string

const (
	// MethodKruskal selects Kruskal's algorithm (sorted edges + union-find).
	MethodKruskal Algorithm = "kruskal"

	// MethodPrim selects Prim's algorithm (grow from a start vertex).
	MethodPrim Algorithm = "prim"
)

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case MethodKruskal:
		return MethodKruskal, nil
	case MethodPrim:
		return MethodPrim, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
	}
}

// StepResult describes one Step call.
type StepResult struct {
	// Edge is the edge examined by this step; meaningful only when Examined.
	Edge core.Edge

	// Examined is false when the step was a no-op on a finished stepper.
	Examined bool

	// Accepted reports whether Edge joined the tree.
	Accepted bool

	// Done reports whether the stepper is finished after this call.
	Done bool
}

// Stepper advances an MST computation one edge at a time.
//
// Implementations own their state; every slice returned by an observer is
// a fresh copy.
type Stepper interface {
	// Step examines at most one edge.
	Step() StepResult

	// Done reports whether further steps would be no-ops.
	Done() bool

	// CurrentEdge returns the most recently examined edge, if any.
	CurrentEdge() (core.Edge, bool)

	// MST returns the accepted edges in insertion order.
	MST() []core.Edge

	// TotalWeight returns the sum of accepted edge weights.
	TotalWeight() int64

	// StepIndex is the visualizer's progress counter: the Kruskal cursor,
	// or for Prim the number of accepted edges minus one. -1 before any progress.
	StepIndex() int

	// Steps counts Step calls that examined an edge.
	Steps() int

	// Algorithm identifies the strategy.
	Algorithm() Algorithm
}

// New builds the Stepper for alg. For Prim, start is clamped to [0, |V|-1].
func New(g *core.Graph, alg Algorithm, start int) (Stepper, error) {
	switch alg {
	case MethodKruskal:
		return NewKruskal(g), nil
	case MethodPrim:
		return NewPrim(g, start), nil
	default:
		return nil, fmt.Errorf("%q: %w", string(alg), ErrUnknownAlgorithm)
	}
}

// tree is the accepted-edge accumulator shared by both steppers.
type tree struct {
	edges  []core.Edge
	weight int64
}

func (t *tree) add(e core.Edge) {
	t.edges = append(t.edges, e)
	t.weight += e.Weight
}

// MST returns a copy of the accepted edges.
func (t *tree) MST() []core.Edge { return append([]core.Edge(nil), t.edges...) }

// TotalWeight returns the accumulated weight.
func (t *tree) TotalWeight() int64 { return t.weight }
