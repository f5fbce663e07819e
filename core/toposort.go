package core

import "sort"

// TopologicalOrder returns a linear order of all variables in which every
// parent precedes its children. The order is deterministic: among
// simultaneously ready variables, the lexicographically smallest is emitted
// first (Kahn's algorithm with a sorted ready set).
//
// The DAG invariant guarantees a complete order exists, so there is no
// error path.
//
// Complexity: O(V log V + E).
func (g *DAG) TopologicalOrder() []string {
	// 1. In-degree census.
	indeg := make(map[string]int, len(g.nodes))
	for v := range g.nodes {
		indeg[v] = len(g.parents[v])
	}

	// 2. Seed the ready set with parentless variables.
	var ready []string
	for v, d := range indeg {
		if d == 0 {
			ready = append(ready, v)
		}
	}
	sort.Strings(ready)

	// 3. Emit smallest-ready first, releasing children as parents drain.
	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		v := ready[0]
		ready = ready[1:]
		order = append(order, v)

		released := make([]string, 0, len(g.children[v]))
		for c := range g.children[v] {
			indeg[c]--
			if indeg[c] == 0 {
				released = append(released, c)
			}
		}
		if len(released) > 0 {
			ready = append(ready, released...)
			sort.Strings(ready)
		}
	}

	return order
}
