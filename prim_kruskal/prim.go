// SPDX-License-Identifier: MIT
// Package prim_kruskal: stepwise Prim with a lazily pruned, stable-sorted frontier.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/matrix"
)

// PrimStepper grows a tree from a start vertex.
//
// The frontier holds candidate edges {from: visited, to: candidate} sorted
// ascending by weight. Several entries may target the same vertex; stale
// ones are discarded only when popped.
type PrimStepper struct {
	tree
	g        *core.Graph
	start    int
	visited  []bool
	frontier []core.Edge
	current  *core.Edge
	steps    int
}

// NewPrim prepares a Prim run over g from start, clamped to [0, |V|-1].
//
// Steps:
//  1. visited[start] = true.
//  2. Frontier = {start, k, m[start][k]} for k ≠ start with m[start][k] > 0,
//     in ascending k, then stable-sorted by weight.
//
// Complexity: O(V log V).
func NewPrim(g *core.Graph, start int) *PrimStepper {
	n := g.Order()
	p := &PrimStepper{
		g:       g,
		start:   matrix.ClampVertex(start, n),
		visited: make([]bool, n),
	}
	// An empty graph has no start vertex; the run is Done immediately.
	if n == 0 {
		return p
	}

	// Seed the tree with start and its incident edges.
	p.visited[p.start] = true
	p.expand(p.start)

	return p
}

// expand pushes every edge from v to an unvisited vertex and re-sorts.
func (p *PrimStepper) expand(v int) {
	// Neighbors yields edges oriented From=v in ascending To order, which
	// fixes the tie order the stable sort below preserves.
	nbrs, err := p.g.Neighbors(v)
	if err != nil {
		return // v comes from visited, so it is always in range
	}
	for _, e := range nbrs {
		// Edges into the tree can never be accepted; skip them now.
		if !p.visited[e.To] {
			p.frontier = append(p.frontier, e)
		}
	}

	// Older entries stay ahead of newer ones of equal weight.
	sort.SliceStable(p.frontier, func(i, j int) bool {
		return p.frontier[i].Weight < p.frontier[j].Weight
	})
}

// Algorithm returns MethodPrim.
func (p *PrimStepper) Algorithm() Algorithm { return MethodPrim }

// Done reports whether the frontier is empty or the tree spans every vertex.
func (p *PrimStepper) Done() bool {
	// An empty frontier with fewer than n-1 edges means g is disconnected.
	return len(p.frontier) == 0 || len(p.edges) >= len(p.visited)-1
}

// Step pops the lightest frontier edge.
//
// Steps:
//  1. If Done: clear the current edge and return; nothing else changes.
//  2. Pop head e; current = e (kept even if e is rejected).
//  3. If e.To is visited: drop e. The frontier shrank by one; nothing else changes.
//  4. Otherwise mark e.To, append e and expand the frontier from e.To.
//
// Complexity: O(F log F) for the re-sort, F = frontier size.
func (p *PrimStepper) Step() StepResult {
	// 1) Finished runs are no-ops, but the highlight goes away.
	if p.Done() {
		p.current = nil
		return StepResult{Done: true}
	}

	// 2) Pop the lightest candidate; it is current whether or not it is taken.
	e := p.frontier[0]
	p.frontier = p.frontier[1:]
	p.current = &e
	p.steps++

	// 3) A stale entry (target reached through a lighter edge meanwhile) is
	//    dropped here rather than when the target was visited.
	res := StepResult{Edge: e, Examined: true}
	if !p.visited[e.To] {
		// 4) Grow the tree by e.To and offer its outgoing edges.
		p.visited[e.To] = true
		p.add(e)
		p.expand(e.To)
		res.Accepted = true
	}
	res.Done = p.Done()

	return res
}

// CurrentEdge returns the last popped edge; cleared once a step finds the run finished.
func (p *PrimStepper) CurrentEdge() (core.Edge, bool) {
	if p.current == nil {
		return core.Edge{}, false
	}

	return *p.current, true
}

// StepIndex is the number of accepted edges minus one.
func (p *PrimStepper) StepIndex() int { return len(p.edges) - 1 }

// Steps counts popped edges.
func (p *PrimStepper) Steps() int { return p.steps }

// Start returns the (clamped) start vertex.
func (p *PrimStepper) Start() int { return p.start }

// Visited returns a copy of the visited flags.
func (p *PrimStepper) Visited() []bool { return append([]bool(nil), p.visited...) }

// Frontier returns a copy of the frontier in pop order.
func (p *PrimStepper) Frontier() []core.Edge {
	return append([]core.Edge(nil), p.frontier...)
}
