// SPDX-License-Identifier: MIT

package export

import (
	"github.com/katalvlaran/mststep/engine"
	"github.com/katalvlaran/mststep/prim_kruskal"
)

// Edge states.
const (
	StateEdge    = "edge"
	StateMST     = "mst"
	StateCurrent = "current"
)

// Node states.
const (
	NodePlain   = "plain"
	NodeStart   = "start"
	NodeVisited = "visited"
)

// Palette, as Graphviz color names.
const (
	colorEdge    = "gray"
	colorMST     = "red"
	colorCurrent = "blue"
	colorStart   = "gold"
	colorVisited = "palegreen"
	colorPlain   = "white"
)

// edgeState classifies the pair (u, v). Tree membership wins over "current";
// the current edge is only highlighted for Prim.
func edgeState(s engine.Snapshot, u, v int) string {
	if s.InMST(u, v) {
		return StateMST
	}
	if s.Algorithm == prim_kruskal.MethodPrim && s.CurrentEdge != nil {
		if (s.CurrentEdge.From == u && s.CurrentEdge.To == v) || (s.CurrentEdge.From == v && s.CurrentEdge.To == u) {
			return StateCurrent
		}
	}

	return StateEdge
}

// nodeState classifies node id.
func nodeState(s engine.Snapshot, id int) string {
	if s.Algorithm != prim_kruskal.MethodPrim {
		return NodePlain
	}
	if id == s.StartVertex {
		return NodeStart
	}
	if id < len(s.Visited) && s.Visited[id] {
		return NodeVisited
	}

	return NodePlain
}
