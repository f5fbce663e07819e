// Package core defines the DAG type, its Edge and Document companions,
// and the sentinel errors shared across the module.
package core

import "errors"

// Sentinel errors for DAG construction and queries.
var (
	// ErrEmptyVariable indicates a variable name was the empty string.
	ErrEmptyVariable = errors.New("core: variable name is empty")

	// ErrUnknownVariable indicates an operation referenced a variable
	// absent from the graph.
	ErrUnknownVariable = errors.New("core: unknown variable")

	// ErrSelfLoop indicates an edge from a variable to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrCycle indicates an edge insertion that would create a directed cycle.
	ErrCycle = errors.New("core: edge would create a cycle")

	// ErrEdgeNotFound indicates RemoveEdge was asked for an edge that is
	// not present.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a directed causal edge From → To (parent → child).
type Edge struct {
	// From is the parent variable.
	From string

	// To is the child variable.
	To string
}

// DAG is a strict directed acyclic graph over named variables.
//
// children and parents are kept in lockstep so that both child and parent
// lookups are map reads. nodeOrder and edgeOrder record insertion order for
// deterministic serialization; the maps remain the source of truth for
// membership.
//
// A DAG is mutated only while its owner is building it. Query methods never
// modify the receiver, so a constructed DAG may be shared across goroutines
// without coordination.
type DAG struct {
	nodes     map[string]struct{}            // variable membership
	children  map[string]map[string]struct{} // parent → set of children
	parents   map[string]map[string]struct{} // child → set of parents
	nodeOrder []string                       // insertion order of variables
	edgeOrder []Edge                         // insertion order of edges
}

// New creates an empty DAG.
// Complexity: O(1)
func New() *DAG {
	return &DAG{
		nodes:    make(map[string]struct{}),
		children: make(map[string]map[string]struct{}),
		parents:  make(map[string]map[string]struct{}),
	}
}

// FromEdges builds a DAG from (parent, child) pairs, creating variables on
// first mention. It fails with ErrSelfLoop or ErrCycle exactly as AddEdge
// does, leaving no partially useful graph behind on failure.
func FromEdges(edges ...[2]string) (*DAG, error) {
	g := New()
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
