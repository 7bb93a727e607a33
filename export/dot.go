// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/katalvlaran/mststep/engine"
)

const dotGraphName = "mst"

// DOT renders s as an undirected Graphviz graph. A snapshot without a graph
// yields an empty graph.
func DOT(s engine.Snapshot) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return "", fmt.Errorf("export: DOT: %w", err)
	}
	if err := g.SetDir(false); err != nil {
		return "", fmt.Errorf("export: DOT: %w", err)
	}
	if s.Graph == nil {
		return g.String(), nil
	}

	for _, n := range s.Graph.Nodes {
		attrs := map[string]string{
			"shape":     "circle",
			"style":     "filled",
			"pos":       strconv.Quote(fmt.Sprintf("%.2f,%.2f!", n.X, n.Y)),
			"fillcolor": nodeColor(nodeState(s, n.ID)),
		}
		if err := g.AddNode(dotGraphName, strconv.Itoa(n.ID), attrs); err != nil {
			return "", fmt.Errorf("export: DOT: node %d: %w", n.ID, err)
		}
	}

	for _, e := range s.Graph.Edges {
		state := edgeState(s, e.From, e.To)
		attrs := map[string]string{
			"label": strconv.FormatInt(e.Weight, 10),
			"color": edgeColor(state),
		}
		switch state {
		case StateMST:
			attrs["penwidth"] = "3"
		case StateCurrent:
			attrs["penwidth"] = "2"
			attrs["style"] = "dashed"
		}
		if err := g.AddEdge(strconv.Itoa(e.From), strconv.Itoa(e.To), false, attrs); err != nil {
			return "", fmt.Errorf("export: DOT: edge %d-%d: %w", e.From, e.To, err)
		}
	}

	return g.String(), nil
}

func edgeColor(state string) string {
	switch state {
	case StateMST:
		return colorMST
	case StateCurrent:
		return colorCurrent
	default:
		return colorEdge
	}
}

func nodeColor(state string) string {
	switch state {
	case NodeStart:
		return colorStart
	case NodeVisited:
		return colorVisited
	default:
		return colorPlain
	}
}
