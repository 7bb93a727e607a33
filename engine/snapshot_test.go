package engine_test

import (
	"testing"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/engine"
	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnapshot_Kruskal exposes cursor, sorted edges and the dsu forest.
func TestSnapshot_Kruskal(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Load(triangleText))
	_, _ = e.Step()

	s := e.Snapshot()
	assert.Equal(t, prim_kruskal.MethodKruskal, s.Algorithm)
	assert.Equal(t, 0, s.Cursor)
	assert.Len(t, s.SortedEdges, 3)
	assert.Equal(t, []int{0, 0, 2}, s.Parents)
	assert.Equal(t, 2, s.Components)
	require.NotNil(t, s.CurrentEdge)
	assert.Equal(t, core.Edge{From: 0, To: 1, Weight: 1}, *s.CurrentEdge)
	assert.Nil(t, s.Visited)
	assert.Nil(t, s.Frontier)
	assert.True(t, s.InMST(1, 0))
	assert.False(t, s.InMST(1, 2))
}

// TestSnapshot_Prim exposes visited and frontier.
func TestSnapshot_Prim(t *testing.T) {
	e := engine.New(engine.WithAlgorithm(prim_kruskal.MethodPrim))
	require.NoError(t, e.Load(triangleText))
	_, _ = e.Step()

	s := e.Snapshot()
	assert.Equal(t, -1, s.Cursor)
	assert.Equal(t, []bool{true, true, false}, s.Visited)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 2}, {From: 0, To: 2, Weight: 4}}, s.Frontier)
	assert.Equal(t, 0, s.StepIndex)
	assert.False(t, s.Complete)
}

// TestSnapshot_Immutable checks that mutating a snapshot does not affect the engine.
func TestSnapshot_Immutable(t *testing.T) {
	e := engine.New(engine.WithAlgorithm(prim_kruskal.MethodPrim))
	require.NoError(t, e.Load(triangleText))
	_, _ = e.Step()

	s := e.Snapshot()
	s.Visited[2] = true
	s.Frontier[0].Weight = 99
	s.MSTEdges[0].To = 2
	s.Graph.Matrix[0][1] = 99
	s.CurrentEdge.Weight = 99

	fresh := e.Snapshot()
	assert.Equal(t, []bool{true, true, false}, fresh.Visited)
	assert.Equal(t, int64(2), fresh.Frontier[0].Weight)
	assert.Equal(t, 1, fresh.MSTEdges[0].To)
	assert.Equal(t, int64(1), fresh.Graph.Matrix[0][1])
	assert.Equal(t, int64(1), fresh.CurrentEdge.Weight)
}

// TestSnapshot_Empty has sentinel indices and no graph.
func TestSnapshot_Empty(t *testing.T) {
	s := engine.New().Snapshot()
	assert.Nil(t, s.Graph)
	assert.True(t, s.Complete)
	assert.Equal(t, -1, s.StepIndex)
	assert.Equal(t, -1, s.Cursor)
}
