package dsep

import "github.com/katalvlaran/causal/core"

// IsDSeparated reports whether X and Y are d-separated by Z in g, i.e.
// whether every trail between X and Y is blocked once Z is conditioned on.
// Z may be empty; X and Y must not be.
//
// Algorithm (Lauritzen's moralization criterion):
//  1. Restrict g to the ancestral closure of X ∪ Y ∪ Z.
//  2. Moralize: connect every pair of parents sharing a child, then drop
//     edge direction.
//  3. X and Y are d-separated by Z iff removing Z disconnects X from Y in
//     the resulting undirected graph.
//
// The result is symmetric in X and Y.
//
// Errors:
//   - core.ErrUnknownVariable if any variable is absent from g.
//   - ErrInvalidQuery if X or Y is empty, or any two of X/Y/Z overlap.
//
// Complexity: O(V + E).
func IsDSeparated(g *core.DAG, x, y, z []string) (bool, error) {
	// 1. Validate query shape.
	if len(x) == 0 || len(y) == 0 {
		return false, ErrInvalidQuery
	}
	if err := validateSets(g, x, y, z); err != nil {
		return false, err
	}

	// 2. Ancestral closure of X ∪ Y ∪ Z.
	closure := ancestralClosure(g, x, y, z)

	// 3. Undirected moral graph over the closure.
	moral := moralize(g, closure)

	// 4. Reachability from X avoiding Z; any Y hit means connected.
	zSet := toSet(z)
	ySet := toSet(y)
	visited := make(map[string]struct{}, len(closure))
	var queue []string
	for _, v := range x {
		visited[v] = struct{}{}
		queue = append(queue, v)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, hit := ySet[cur]; hit {
			return false, nil
		}
		// Conditioning removes Z nodes from the moral graph: a walk may
		// reach a Z node's frontier but never continue through it.
		if _, blocked := zSet[cur]; blocked {
			continue
		}
		for next := range moral[cur] {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return true, nil
}

// ancestralClosure returns X ∪ Y ∪ Z together with all their ancestors.
// Walks the parent maps directly rather than calling Ancestors per node, so
// shared ancestry is visited once.
func ancestralClosure(g *core.DAG, sets ...[]string) map[string]struct{} {
	closure := make(map[string]struct{})
	var stack []string
	for _, set := range sets {
		for _, v := range set {
			if _, ok := closure[v]; ok {
				continue
			}
			closure[v] = struct{}{}
			stack = append(stack, v)
		}
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parents, err := g.Parents(cur)
		if err != nil {
			continue // unreachable: closure members are validated graph nodes
		}
		for _, p := range parents {
			if _, ok := closure[p]; ok {
				continue
			}
			closure[p] = struct{}{}
			stack = append(stack, p)
		}
	}

	return closure
}

// moralize builds the undirected moral graph of g restricted to the given
// node set: every edge loses its direction, and any two parents of a common
// child become adjacent ("married").
func moralize(g *core.DAG, nodes map[string]struct{}) map[string]map[string]struct{} {
	moral := make(map[string]map[string]struct{}, len(nodes))
	link := func(a, b string) {
		if moral[a] == nil {
			moral[a] = make(map[string]struct{})
		}
		if moral[b] == nil {
			moral[b] = make(map[string]struct{})
		}
		moral[a][b] = struct{}{}
		moral[b][a] = struct{}{}
	}

	for _, e := range g.Edges() {
		_, fromIn := nodes[e.From]
		_, toIn := nodes[e.To]
		if fromIn && toIn {
			link(e.From, e.To)
		}
	}

	// Marry co-parents. The closure is ancestrally closed, so every parent
	// of a closure member is itself a member.
	for v := range nodes {
		parents, err := g.Parents(v)
		if err != nil {
			continue // unreachable, as above
		}
		for i := 0; i < len(parents); i++ {
			for j := i + 1; j < len(parents); j++ {
				link(parents[i], parents[j])
			}
		}
	}

	return moral
}
