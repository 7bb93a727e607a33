// SPDX-License-Identifier: MIT
// Package engine: immutable views for renderers.

package engine

import (
	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/prim_kruskal"
)

// Snapshot is a deep copy of everything a renderer needs after a step.
// Algorithm-specific fields are empty for the other algorithm.
type Snapshot struct {
	Algorithm   prim_kruskal.Algorithm `json:"algorithm"`
	StartVertex int                    `json:"startVertex"`
	Graph       *core.Graph            `json:"graph,omitempty"`
	MSTEdges    []core.Edge            `json:"mstEdges"`
	TotalWeight int64                  `json:"totalWeight"`
	Complete    bool                   `json:"complete"`
	StepIndex   int                    `json:"stepIndex"`
	Steps       int                    `json:"steps"`
	CurrentEdge *core.Edge             `json:"currentEdge,omitempty"`
	Error       string                 `json:"error,omitempty"`

	// Kruskal.
	Cursor      int         `json:"cursor"`
	SortedEdges []core.Edge `json:"sortedEdges,omitempty"`
	Parents     []int       `json:"parents,omitempty"`
	Components  int         `json:"components,omitempty"`

	// Prim.
	Visited  []bool      `json:"visited,omitempty"`
	Frontier []core.Edge `json:"frontier,omitempty"`
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		Algorithm:   e.alg,
		StartVertex: e.start,
		Graph:       e.graph.Clone(),
		Complete:    e.completeLocked(),
		StepIndex:   -1,
		Cursor:      -1,
	}
	if e.lastErr != nil {
		snap.Error = e.lastErr.Error()
	}
	if e.stepper == nil {
		return snap
	}

	snap.MSTEdges = e.stepper.MST()
	snap.TotalWeight = e.stepper.TotalWeight()
	snap.StepIndex = e.stepper.StepIndex()
	snap.Steps = e.stepper.Steps()
	if cur, ok := e.stepper.CurrentEdge(); ok {
		snap.CurrentEdge = &cur
	}

	switch s := e.stepper.(type) {
	case *prim_kruskal.KruskalStepper:
		snap.Cursor = s.Cursor()
		snap.SortedEdges = s.SortedEdges()
		snap.Parents = s.Parents()
		snap.Components = s.Components()
	case *prim_kruskal.PrimStepper:
		snap.Visited = s.Visited()
		snap.Frontier = s.Frontier()
	}

	return snap
}

// InMST reports whether the snapshot's tree contains the pair (u, v).
func (s Snapshot) InMST(u, v int) bool {
	want := core.Edge{From: u, To: v}
	for _, e := range s.MSTEdges {
		if e.SameEndpoints(want) {
			return true
		}
	}

	return false
}
