package core

// PathVisitor receives one simple path at a time. The slice is reused
// between calls; copy it if you need to retain it. Returning false stops
// the enumeration early.
type PathVisitor func(path []string) bool

// WalkPaths enumerates every simple directed path from u to v, invoking fn
// once per path. Paths are produced lazily in depth-first order with
// lexicographically sorted branching, so the sequence is deterministic.
// Acyclicity guarantees termination.
//
// Errors:
//   - ErrUnknownVariable if u or v is absent from the graph.
//
// Complexity: output-sensitive; the number of simple paths can be
// exponential in V.
func (g *DAG) WalkPaths(u, v string, fn PathVisitor) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return ErrUnknownVariable
	}

	w := &pathWalker{graph: g, target: v, visit: fn}
	w.path = append(w.path, u)
	w.walk(u)

	return nil
}

// AllPaths returns every simple directed path from u to v as full node
// sequences, in the deterministic order of WalkPaths.
//
// Errors:
//   - ErrUnknownVariable if u or v is absent from the graph.
func (g *DAG) AllPaths(u, v string) ([][]string, error) {
	var out [][]string
	err := g.WalkPaths(u, v, func(path []string) bool {
		cp := make([]string, len(path))
		copy(cp, path)
		out = append(out, cp)

		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// pathWalker carries DFS state for WalkPaths.
type pathWalker struct {
	graph  *DAG
	target string
	visit  PathVisitor
	path   []string
	halt   bool
}

func (w *pathWalker) walk(cur string) {
	if w.halt {
		return
	}
	if cur == w.target {
		if !w.visit(w.path) {
			w.halt = true
		}

		return
	}
	// Sorted branching keeps enumeration order reproducible. In a directed
	// simple path no node repeats, because every hop descends the DAG.
	for _, next := range sortedKeys(w.graph.children[cur]) {
		w.path = append(w.path, next)
		w.walk(next)
		w.path = w.path[:len(w.path)-1]
		if w.halt {
			return
		}
	}
}

// Trails returns every simple undirected trail between u and v: paths that
// ignore edge direction and never revisit a node. Each trail is the full
// node sequence from u to v. Deterministic order (sorted branching).
//
// Trails are the raw material of backdoor analysis: a trail that enters u
// against edge direction is a potential confounding route even though no
// directed path follows it.
//
// Errors:
//   - ErrUnknownVariable if u or v is absent from the graph.
//
// Complexity: output-sensitive.
func (g *DAG) Trails(u, v string) ([][]string, error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return nil, ErrUnknownVariable
	}

	var out [][]string
	seen := map[string]struct{}{u: {}}
	path := []string{u}

	var walk func(cur string)
	walk = func(cur string) {
		if cur == v {
			cp := make([]string, len(path))
			copy(cp, path)
			out = append(out, cp)

			return
		}
		for _, next := range g.undirectedNeighbors(cur) {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			path = append(path, next)
			walk(next)
			path = path[:len(path)-1]
			delete(seen, next)
		}
	}
	walk(u)

	return out, nil
}

// undirectedNeighbors returns the union of parents and children of v,
// sorted lexicographically.
func (g *DAG) undirectedNeighbors(v string) []string {
	set := make(map[string]struct{}, len(g.parents[v])+len(g.children[v]))
	for p := range g.parents[v] {
		set[p] = struct{}{}
	}
	for c := range g.children[v] {
		set[c] = struct{}{}
	}

	return sortedKeys(set)
}
