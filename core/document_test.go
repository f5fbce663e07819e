package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/core"
)

func TestToDocument_InsertionOrder(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddNode("Lonely"))

	doc := g.ToDocument()
	assert.Equal(t, []string{"B", "C", "A", "Lonely"}, doc.Nodes)
	assert.Equal(t, [][2]string{{"B", "C"}, {"A", "B"}}, doc.Edges)
}

func TestFromDocument_OrderInsensitive(t *testing.T) {
	g := buildDiamond(t)
	doc := g.ToDocument()

	// Scramble the read side; the reconstructed graph must be isomorphic.
	shuffled := core.Document{
		Nodes: []string{doc.Nodes[3], doc.Nodes[0], doc.Nodes[2], doc.Nodes[1]},
		Edges: [][2]string{doc.Edges[2], doc.Edges[0], doc.Edges[3], doc.Edges[1]},
	}
	back, err := core.FromDocument(shuffled)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestFromDocument_RejectsCycle(t *testing.T) {
	_, err := core.FromDocument(core.Document{
		Edges: [][2]string{{"X", "Y"}, {"Y", "X"}},
	})
	assert.ErrorIs(t, err, core.ErrCycle)
}

func TestJSONRoundTrip(t *testing.T) {
	g := buildDiamond(t)
	require.NoError(t, g.AddNode("Isolated"))

	data, err := core.EncodeJSON(g)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"nodes":["A","B","C","D","Isolated"],"edges":[["A","B"],["A","C"],["B","D"],["C","D"]]}`,
		string(data))

	back, err := core.DecodeJSON(data)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestYAMLRoundTrip(t *testing.T) {
	g := buildDiamond(t)
	data, err := core.EncodeYAML(g)
	require.NoError(t, err)

	back, err := core.DecodeYAML(data)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestDecodeJSON_Malformed(t *testing.T) {
	_, err := core.DecodeJSON([]byte(`{"nodes": 7}`))
	assert.Error(t, err)
}
