package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/core"
)

// buildDiamond returns A→B, A→C, B→D, C→D.
func buildDiamond(t *testing.T) *core.DAG {
	t.Helper()
	g, err := core.FromEdges(
		[2]string{"A", "B"}, [2]string{"A", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"},
	)
	require.NoError(t, err)

	return g
}

func TestAddNode_EmptyName(t *testing.T) {
	g := core.New()
	assert.ErrorIs(t, g.AddNode(""), core.ErrEmptyVariable)
}

func TestAddNode_DuplicateIsNoOp(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddNode("X"))
	require.NoError(t, g.AddNode("X"))
	assert.Equal(t, []string{"X"}, g.Nodes())
}

func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("X", "Y"))
	assert.True(t, g.HasNode("X"))
	assert.True(t, g.HasNode("Y"))
	assert.True(t, g.HasEdge("X", "Y"))
	assert.False(t, g.HasEdge("Y", "X"))
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.New()
	assert.ErrorIs(t, g.AddEdge("X", "X"), core.ErrSelfLoop)
	assert.False(t, g.HasNode("X"), "failed insertion must not leave nodes behind")
}

func TestAddEdge_DuplicateIsNoOp(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.AddEdge("X", "Y"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_DirectCycle(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("X", "Y"))
	assert.ErrorIs(t, g.AddEdge("Y", "X"), core.ErrCycle)
	// Graph unchanged after the rejected insertion.
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_TransitiveCycle(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.AddEdge("Y", "Z"))
	assert.ErrorIs(t, g.AddEdge("Z", "X"), core.ErrCycle)
}

func TestRemoveEdge(t *testing.T) {
	g := buildDiamond(t)
	require.NoError(t, g.RemoveEdge("B", "D"))
	assert.False(t, g.HasEdge("B", "D"))
	assert.True(t, g.HasNode("B"), "removing an edge must not remove nodes")
	assert.True(t, g.HasNode("D"))
}

func TestRemoveEdge_UnknownVariable(t *testing.T) {
	g := buildDiamond(t)
	assert.ErrorIs(t, g.RemoveEdge("A", "Q"), core.ErrUnknownVariable)
}

func TestRemoveEdge_MissingEdge(t *testing.T) {
	g := buildDiamond(t)
	assert.ErrorIs(t, g.RemoveEdge("B", "C"), core.ErrEdgeNotFound)
}

func TestRemoveEdge_ReopensCycleSlot(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.RemoveEdge("X", "Y"))
	// With X→Y gone, Y→X no longer closes a cycle.
	assert.NoError(t, g.AddEdge("Y", "X"))
}

func TestFromEdges_PropagatesCycle(t *testing.T) {
	_, err := core.FromEdges([2]string{"X", "Y"}, [2]string{"Y", "X"})
	assert.ErrorIs(t, err, core.ErrCycle)
}

func TestNodesAndEdges_InsertionOrder(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddNode("Z"))

	assert.Equal(t, []string{"B", "C", "A", "Z"}, g.Nodes())
	assert.Equal(t, []core.Edge{{From: "B", To: "C"}, {From: "A", To: "B"}}, g.Edges())
}

func TestClone_Independence(t *testing.T) {
	g := buildDiamond(t)
	c := g.Clone()
	require.True(t, g.Equal(c))

	require.NoError(t, c.AddEdge("D", "E"))
	assert.False(t, g.HasNode("E"), "mutating the clone must not touch the original")
	assert.False(t, g.Equal(c))
}

func TestEqual_IgnoresInsertionOrder(t *testing.T) {
	a, err := core.FromEdges([2]string{"X", "Y"}, [2]string{"X", "Z"})
	require.NoError(t, err)
	b, err := core.FromEdges([2]string{"X", "Z"}, [2]string{"X", "Y"})
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestEqual_Nil(t *testing.T) {
	g := core.New()
	assert.False(t, g.Equal(nil))
}
