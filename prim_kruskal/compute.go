// SPDX-License-Identifier: MIT
// Package prim_kruskal: whole-run MST API built on the steppers.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// MSTOptions configures Compute.
//
// Fields:
//
//	Method Algorithm — MethodKruskal or MethodPrim.
//	Root   int       — start vertex for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method Algorithm
	Root   int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m Algorithm) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets Prim's start vertex.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns Kruskal with root 0, adjusted by opts.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute runs the algorithm selected by opts.Method to completion.
func Compute(g *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, opts.Root)
	default:
		return nil, 0, fmt.Errorf("Compute: %q: %w", string(opts.Method), ErrUnknownAlgorithm)
	}
}

// Kruskal computes the MST of g by stepping a KruskalStepper until Done.
//
// Error Conditions:
//   - ErrInvalidGraph : g == nil.
//   - ErrDisconnected : |V| == 0, or the tree has fewer than |V|-1 edges.
//
// Complexity: O(E log E + α(V)·E).
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}

	return finish(g, NewKruskal(g))
}

// Prim computes the MST of g from root by stepping a PrimStepper until Done.
// Unlike NewPrim, an out-of-range root is an error here.
//
// Error Conditions:
//   - ErrInvalidGraph         : g == nil.
//   - ErrDisconnected         : |V| == 0, or the tree has fewer than |V|-1 edges.
//   - core.ErrVertexOutOfRange: root ∉ [0, |V|-1].
//
// Complexity: O(E · F log F) with the re-sorted frontier; F ≤ E.
func Prim(g *core.Graph, root int) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	if g.Order() == 0 {
		return nil, 0, ErrDisconnected
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("Prim: root %d: %w", root, core.ErrVertexOutOfRange)
	}

	return finish(g, NewPrim(g, root))
}

// finish drives s to completion and checks the spanning condition.
func finish(g *core.Graph, s Stepper) ([]core.Edge, int64, error) {
	n := g.Order()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	for !s.Done() {
		s.Step()
	}
	mst := s.MST()
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	if mst == nil {
		mst = []core.Edge{}
	}

	return mst, s.TotalWeight(), nil
}
