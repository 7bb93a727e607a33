// SPDX-License-Identifier: MIT
// Package prim_kruskal: stepwise Kruskal.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/dsu"
)

// KruskalStepper walks a weight-sorted edge list with a cursor and a private
// disjoint-set forest.
//
// States: Ready (cursor == -1) → Stepping → Done (cursor == len(sorted)-1).
type KruskalStepper struct {
	tree
	sorted []core.Edge
	cursor int
	steps  int
	forest *dsu.DisjointSet
}

// NewKruskal prepares a Kruskal run over g. A nil graph yields a stepper
// that is Done immediately.
//
// Steps:
//  1. Copy g.Edges and stable-sort by ascending weight.
//  2. Initialize a dsu of |V| singletons and set cursor = -1.
//
// Complexity: O(E log E).
func NewKruskal(g *core.Graph) *KruskalStepper {
	// Copy so sorting never reorders the caller's edge list.
	var edges []core.Edge
	if g != nil {
		edges = append(edges, g.Edges...)
	}

	// Stable: equal weights keep row-major (i<j) order.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// One singleton set per vertex; g.Order() is 0 for a nil graph.

	return &KruskalStepper{
		sorted: edges,
		cursor: -1,
		forest: dsu.New(g.Order()),
	}
}

// Algorithm returns MethodKruskal.
func (k *KruskalStepper) Algorithm() Algorithm { return MethodKruskal }

// Done reports whether the cursor has reached the last sorted edge.
func (k *KruskalStepper) Done() bool { return k.cursor >= len(k.sorted)-1 }

// Step advances the cursor and examines the next edge.
//
// Steps:
//  1. If Done, return without touching any state.
//  2. cursor++; e = sorted[cursor].
//  3. If e.From and e.To are not yet connected: append e, union them.
//     Otherwise e would close a cycle and is rejected; the step still counts.
//
// Complexity: amortized near-O(1) beyond the initial sort.
func (k *KruskalStepper) Step() StepResult {
	// 1) Past the last edge nothing changes, not even the cursor.
	if k.Done() {
		return StepResult{Done: true}
	}

	// 2) Move to the next lightest edge.
	k.cursor++
	k.steps++
	e := k.sorted[k.cursor]

	// 3) Accept only edges joining two different components; Union makes
	//    e.From's root the parent of e.To's root.
	res := StepResult{Edge: e, Examined: true}
	if !k.forest.Connected(e.From, e.To) {
		k.add(e)
		k.forest.Union(e.From, e.To)
		res.Accepted = true
	}
	res.Done = k.Done()

	return res
}

// CurrentEdge returns the edge under the cursor.
func (k *KruskalStepper) CurrentEdge() (core.Edge, bool) {
	if k.cursor < 0 {
		return core.Edge{}, false
	}

	return k.sorted[k.cursor], true
}

// Cursor returns the index of the last examined sorted edge (-1 when Ready).
func (k *KruskalStepper) Cursor() int { return k.cursor }

// StepIndex equals the cursor.
func (k *KruskalStepper) StepIndex() int { return k.cursor }

// Steps counts examined edges.
func (k *KruskalStepper) Steps() int { return k.steps }

// SortedEdges returns a copy of the weight-sorted edge list.
func (k *KruskalStepper) SortedEdges() []core.Edge {
	return append([]core.Edge(nil), k.sorted...)
}

// Components returns the number of disjoint sets in the forest. It reaches 1
// once the accepted edges span a connected graph.
func (k *KruskalStepper) Components() int { return k.forest.Sets() }

// Parents returns a copy of the disjoint-set parent array.
func (k *KruskalStepper) Parents() []int { return k.forest.Parents() }
