// Package dsep defines the sentinel errors and validation helpers shared by
// the separation queries.
package dsep

import (
	"errors"

	"github.com/katalvlaran/causal/core"
)

var (
	// ErrInvalidQuery indicates that the query sets are not pairwise
	// disjoint, or that X or Y is empty. D-separation is undefined for
	// such inputs.
	ErrInvalidQuery = errors.New("dsep: query sets must be non-empty and pairwise disjoint")

	// ErrInvalidTrail indicates a trail whose consecutive nodes are not
	// adjacent in the graph, or a trail with fewer than two nodes.
	ErrInvalidTrail = errors.New("dsep: not a trail of the graph")
)

// validateSets checks that every variable in the given sets exists in g and
// that the sets are pairwise disjoint. Used by both d-separation and the
// do-calculus engine, which shares this package's query semantics.
func validateSets(g *core.DAG, sets ...[]string) error {
	seen := make(map[string]int)
	for i, set := range sets {
		for _, v := range set {
			if !g.HasNode(v) {
				return core.ErrUnknownVariable
			}
			if j, ok := seen[v]; ok && j != i {
				return ErrInvalidQuery
			}
			seen[v] = i
		}
	}

	return nil
}

// ValidateDisjoint reports whether every variable in the given sets exists
// in g and no variable appears in two different sets. Exported for callers
// composing their own queries on top of the oracle (the do-calculus engine
// validates all four of its sets this way before mutilating anything).
func ValidateDisjoint(g *core.DAG, sets ...[]string) error {
	return validateSets(g, sets...)
}

// toSet flattens a slice into a membership set.
func toSet(vs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}

	return set
}
