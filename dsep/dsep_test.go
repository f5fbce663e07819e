package dsep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/dsep"
)

// buildChain returns X→Y→Z.
func buildChain(t *testing.T) *core.DAG {
	t.Helper()
	g, err := core.FromEdges([2]string{"X", "Y"}, [2]string{"Y", "Z"})
	require.NoError(t, err)

	return g
}

// buildConfounder returns Age→Treatment, Age→Outcome, Treatment→Outcome.
func buildConfounder(t *testing.T) *core.DAG {
	t.Helper()
	g, err := core.FromEdges(
		[2]string{"Age", "Treatment"},
		[2]string{"Age", "Outcome"},
		[2]string{"Treatment", "Outcome"},
	)
	require.NoError(t, err)

	return g
}

// buildCollider returns Talent→Success←Luck.
func buildCollider(t *testing.T) *core.DAG {
	t.Helper()
	g, err := core.FromEdges(
		[2]string{"Talent", "Success"},
		[2]string{"Luck", "Success"},
	)
	require.NoError(t, err)

	return g
}

func TestIsDSeparated_Chain(t *testing.T) {
	g := buildChain(t)

	sep, err := dsep.IsDSeparated(g, []string{"X"}, []string{"Z"}, []string{"Y"})
	require.NoError(t, err)
	assert.True(t, sep, "conditioning on the middle of a chain blocks it")

	sep, err = dsep.IsDSeparated(g, []string{"X"}, []string{"Z"}, nil)
	require.NoError(t, err)
	assert.False(t, sep, "an unconditioned chain transmits association")
}

func TestIsDSeparated_Fork(t *testing.T) {
	g, err := core.FromEdges([2]string{"B", "A"}, [2]string{"B", "C"})
	require.NoError(t, err)

	sep, err := dsep.IsDSeparated(g, []string{"A"}, []string{"C"}, []string{"B"})
	require.NoError(t, err)
	assert.True(t, sep, "conditioning on a common cause blocks the fork")

	sep, err = dsep.IsDSeparated(g, []string{"A"}, []string{"C"}, nil)
	require.NoError(t, err)
	assert.False(t, sep)
}

func TestIsDSeparated_Collider(t *testing.T) {
	g := buildCollider(t)

	sep, err := dsep.IsDSeparated(g, []string{"Talent"}, []string{"Luck"}, nil)
	require.NoError(t, err)
	assert.True(t, sep, "a collider blocks when unconditioned")

	sep, err = dsep.IsDSeparated(g, []string{"Talent"}, []string{"Luck"}, []string{"Success"})
	require.NoError(t, err)
	assert.False(t, sep, "conditioning on a collider opens the path")
}

func TestIsDSeparated_ColliderDescendant(t *testing.T) {
	// Talent→Success←Luck, Success→Fame: conditioning on the collider's
	// descendant opens the path just like the collider itself.
	g := buildCollider(t)
	require.NoError(t, g.AddEdge("Success", "Fame"))

	sep, err := dsep.IsDSeparated(g, []string{"Talent"}, []string{"Luck"}, []string{"Fame"})
	require.NoError(t, err)
	assert.False(t, sep)
}

func TestIsDSeparated_Symmetry(t *testing.T) {
	g := buildConfounder(t)
	for _, z := range [][]string{nil, {"Age"}} {
		a, err := dsep.IsDSeparated(g, []string{"Treatment"}, []string{"Outcome"}, z)
		require.NoError(t, err)
		b, err := dsep.IsDSeparated(g, []string{"Outcome"}, []string{"Treatment"}, z)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestIsDSeparated_MultiNodeSets(t *testing.T) {
	// X1→M, X2→M, M→Y1, M→Y2: {X1,X2} ⊥ {Y1,Y2} | {M}.
	g, err := core.FromEdges(
		[2]string{"X1", "M"}, [2]string{"X2", "M"},
		[2]string{"M", "Y1"}, [2]string{"M", "Y2"},
	)
	require.NoError(t, err)

	sep, err := dsep.IsDSeparated(g, []string{"X1", "X2"}, []string{"Y1", "Y2"}, []string{"M"})
	require.NoError(t, err)
	assert.True(t, sep)

	sep, err = dsep.IsDSeparated(g, []string{"X1", "X2"}, []string{"Y1", "Y2"}, nil)
	require.NoError(t, err)
	assert.False(t, sep)
}

func TestIsDSeparated_Validation(t *testing.T) {
	g := buildChain(t)

	_, err := dsep.IsDSeparated(g, []string{"X"}, []string{"Q"}, nil)
	assert.ErrorIs(t, err, core.ErrUnknownVariable)

	_, err = dsep.IsDSeparated(g, []string{"X"}, []string{"X"}, nil)
	assert.ErrorIs(t, err, dsep.ErrInvalidQuery)

	_, err = dsep.IsDSeparated(g, []string{"X"}, []string{"Z"}, []string{"X"})
	assert.ErrorIs(t, err, dsep.ErrInvalidQuery)

	_, err = dsep.IsDSeparated(g, nil, []string{"Z"}, nil)
	assert.ErrorIs(t, err, dsep.ErrInvalidQuery)
}

// dSeparatedByTrails re-decides a query pathwise: X ⊥ Y | Z iff every trail
// between every x ∈ X and y ∈ Y is blocked by Z.
func dSeparatedByTrails(t *testing.T, g *core.DAG, x, y, z []string) bool {
	t.Helper()
	for _, xv := range x {
		for _, yv := range y {
			trails, err := g.Trails(xv, yv)
			require.NoError(t, err)
			for _, trail := range trails {
				blocked, err := dsep.IsTrailBlocked(g, trail, z)
				require.NoError(t, err)
				if !blocked {
					return false
				}
			}
		}
	}

	return true
}

// The moral-graph oracle and exhaustive trail blocking must agree on every
// scenario in the suite.
func TestIsDSeparated_AgreesWithTrailBlocking(t *testing.T) {
	diamond, err := core.FromEdges(
		[2]string{"A", "B"}, [2]string{"A", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"},
	)
	require.NoError(t, err)

	mixed, err := core.FromEdges(
		[2]string{"U", "X"}, [2]string{"U", "W"},
		[2]string{"X", "M"}, [2]string{"M", "Y"}, [2]string{"W", "Y"},
	)
	require.NoError(t, err)

	cases := []struct {
		name    string
		g       *core.DAG
		x, y, z []string
	}{
		{"chain_blocked", buildChain(t), []string{"X"}, []string{"Z"}, []string{"Y"}},
		{"chain_open", buildChain(t), []string{"X"}, []string{"Z"}, nil},
		{"collider_closed", buildCollider(t), []string{"Talent"}, []string{"Luck"}, nil},
		{"collider_opened", buildCollider(t), []string{"Talent"}, []string{"Luck"}, []string{"Success"}},
		{"confounder_raw", buildConfounder(t), []string{"Treatment"}, []string{"Outcome"}, nil},
		{"confounder_adjusted", buildConfounder(t), []string{"Treatment"}, []string{"Outcome"}, []string{"Age"}},
		{"diamond_roots", diamond, []string{"B"}, []string{"C"}, []string{"A"}},
		{"diamond_collider", diamond, []string{"B"}, []string{"C"}, []string{"A", "D"}},
		{"mixed_mediator", mixed, []string{"X"}, []string{"Y"}, []string{"M", "U"}},
		{"mixed_confounded", mixed, []string{"X"}, []string{"Y"}, []string{"M"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			moral, err := dsep.IsDSeparated(tc.g, tc.x, tc.y, tc.z)
			require.NoError(t, err)
			assert.Equal(t, dSeparatedByTrails(t, tc.g, tc.x, tc.y, tc.z), moral)
		})
	}
}

func TestIsTrailBlocked_Validation(t *testing.T) {
	g := buildChain(t)

	_, err := dsep.IsTrailBlocked(g, []string{"X"}, nil)
	assert.ErrorIs(t, err, dsep.ErrInvalidTrail)

	_, err = dsep.IsTrailBlocked(g, []string{"X", "Z"}, nil)
	assert.ErrorIs(t, err, dsep.ErrInvalidTrail, "X and Z are not adjacent")

	_, err = dsep.IsTrailBlocked(g, []string{"X", "Q"}, nil)
	assert.ErrorIs(t, err, core.ErrUnknownVariable)

	_, err = dsep.IsTrailBlocked(g, []string{"X", "Y"}, []string{"Q"})
	assert.ErrorIs(t, err, core.ErrUnknownVariable)
}

func TestValidateDisjoint(t *testing.T) {
	g := buildConfounder(t)
	assert.NoError(t, dsep.ValidateDisjoint(g,
		[]string{"Treatment"}, []string{"Outcome"}, []string{"Age"}))
	assert.ErrorIs(t, dsep.ValidateDisjoint(g,
		[]string{"Treatment"}, []string{"Treatment"}), dsep.ErrInvalidQuery)
	assert.ErrorIs(t, dsep.ValidateDisjoint(g, []string{"Q"}), core.ErrUnknownVariable)
}

func BenchmarkIsDSeparated_Confounder(b *testing.B) {
	g, err := core.FromEdges(
		[2]string{"Age", "Treatment"},
		[2]string{"Age", "Outcome"},
		[2]string{"Treatment", "Outcome"},
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dsep.IsDSeparated(g, []string{"Treatment"}, []string{"Outcome"}, []string{"Age"}); err != nil {
			b.Fatal(err)
		}
	}
}
