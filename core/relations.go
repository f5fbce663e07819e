package core

import "sort"

// Parents returns the direct parents of v, sorted lexicographically.
//
// Errors:
//   - ErrUnknownVariable if v is absent from the graph.
//
// Complexity: O(d log d), d = in-degree of v.
func (g *DAG) Parents(v string) ([]string, error) {
	if !g.HasNode(v) {
		return nil, ErrUnknownVariable
	}

	return sortedKeys(g.parents[v]), nil
}

// Children returns the direct children of v, sorted lexicographically.
//
// Errors:
//   - ErrUnknownVariable if v is absent from the graph.
//
// Complexity: O(d log d), d = out-degree of v.
func (g *DAG) Children(v string) ([]string, error) {
	if !g.HasNode(v) {
		return nil, ErrUnknownVariable
	}

	return sortedKeys(g.children[v]), nil
}

// Ancestors returns every variable with a directed path to v, sorted
// lexicographically. v itself is never included: acyclicity keeps the
// relation irreflexive.
//
// Errors:
//   - ErrUnknownVariable if v is absent from the graph.
//
// Complexity: O(V + E).
func (g *DAG) Ancestors(v string) ([]string, error) {
	if !g.HasNode(v) {
		return nil, ErrUnknownVariable
	}

	return sortedKeys(g.closure(v, g.parents)), nil
}

// Descendants returns every variable reachable from v along directed edges,
// sorted lexicographically. v itself is never included.
//
// Errors:
//   - ErrUnknownVariable if v is absent from the graph.
//
// Complexity: O(V + E).
func (g *DAG) Descendants(v string) ([]string, error) {
	if !g.HasNode(v) {
		return nil, ErrUnknownVariable
	}

	return sortedKeys(g.closure(v, g.children)), nil
}

// closure computes the transitive closure of v under the given adjacency
// direction (parents for ancestors, children for descendants), excluding v.
func (g *DAG) closure(v string, adj map[string]map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	stack := []string{v}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range adj[cur] {
			if _, ok := out[next]; ok {
				continue
			}
			out[next] = struct{}{}
			stack = append(stack, next)
		}
	}

	return out
}

// sortedKeys flattens a set into a lexicographically sorted slice.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
