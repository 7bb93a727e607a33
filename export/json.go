// SPDX-License-Identifier: MIT

package export

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/engine"
	"github.com/katalvlaran/mststep/prim_kruskal"
)

// Document is the JSON rendering of a snapshot.
type Document struct {
	Algorithm   prim_kruskal.Algorithm `json:"algorithm"`
	Nodes       []Node                 `json:"nodes"`
	Links       []Link                 `json:"links"`
	MSTEdges    []core.Edge            `json:"mstEdges"`
	TotalWeight int64                  `json:"totalWeight"`
	Complete    bool                   `json:"complete"`
	StepIndex   int                    `json:"stepIndex"`
	CurrentEdge *core.Edge             `json:"currentEdge,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// Node is a positioned vertex with its highlight state.
type Node struct {
	ID    int     `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	State string  `json:"state"`
}

// Link is an undirected edge with its highlight state.
type Link struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Weight int64  `json:"weight"`
	State  string `json:"state"`
}

// NewDocument builds the JSON document model for s.
func NewDocument(s engine.Snapshot) Document {
	doc := Document{
		Algorithm:   s.Algorithm,
		Nodes:       []Node{},
		Links:       []Link{},
		MSTEdges:    s.MSTEdges,
		TotalWeight: s.TotalWeight,
		Complete:    s.Complete,
		StepIndex:   s.StepIndex,
		CurrentEdge: s.CurrentEdge,
		Error:       s.Error,
	}
	if doc.MSTEdges == nil {
		doc.MSTEdges = []core.Edge{}
	}
	if s.Graph == nil {
		return doc
	}
	for _, n := range s.Graph.Nodes {
		doc.Nodes = append(doc.Nodes, Node{ID: n.ID, X: n.X, Y: n.Y, State: nodeState(s, n.ID)})
	}
	for _, e := range s.Graph.Edges {
		doc.Links = append(doc.Links, Link{Source: e.From, Target: e.To, Weight: e.Weight, State: edgeState(s, e.From, e.To)})
	}

	return doc
}

// JSON renders s as indented JSON.
func JSON(s engine.Snapshot) ([]byte, error) {
	b, err := json.MarshalIndent(NewDocument(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: JSON: %w", err)
	}

	return b, nil
}
