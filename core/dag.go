package core

// AddNode inserts variable v into the graph. Adding a variable that is
// already present is a no-op.
//
// Errors:
//   - ErrEmptyVariable if v == "".
//
// Complexity: O(1)
func (g *DAG) AddNode(v string) error {
	if v == "" {
		return ErrEmptyVariable
	}
	if _, ok := g.nodes[v]; ok {
		return nil
	}
	g.nodes[v] = struct{}{}
	g.nodeOrder = append(g.nodeOrder, v)

	return nil
}

// AddEdge inserts the directed edge u → v, creating either endpoint if it
// is not yet present. Inserting an edge that already exists is a no-op.
//
// The cycle check is incremental: u → v closes a cycle exactly when u is
// reachable from v through existing edges, so a single descendant walk from
// v decides admissibility before the graph is touched.
//
// Errors:
//   - ErrEmptyVariable if either endpoint is "".
//   - ErrSelfLoop if u == v.
//   - ErrCycle if the edge would create a directed cycle.
//
// Complexity: O(V + E) worst case (the reachability walk).
func (g *DAG) AddEdge(u, v string) error {
	// 1. Validate endpoints.
	if u == "" || v == "" {
		return ErrEmptyVariable
	}
	if u == v {
		return ErrSelfLoop
	}

	// 2. Duplicate edge: no-op by contract.
	if g.HasEdge(u, v) {
		return nil
	}

	// 3. Cycle check before any mutation: does v already reach u?
	if g.reaches(v, u) {
		return ErrCycle
	}

	// 4. Materialize endpoints, then link.
	if err := g.AddNode(u); err != nil {
		return err
	}
	if err := g.AddNode(v); err != nil {
		return err
	}
	if g.children[u] == nil {
		g.children[u] = make(map[string]struct{})
	}
	if g.parents[v] == nil {
		g.parents[v] = make(map[string]struct{})
	}
	g.children[u][v] = struct{}{}
	g.parents[v][u] = struct{}{}
	g.edgeOrder = append(g.edgeOrder, Edge{From: u, To: v})

	return nil
}

// RemoveEdge deletes the directed edge u → v.
//
// Errors:
//   - ErrUnknownVariable if either endpoint is absent from the graph.
//   - ErrEdgeNotFound if the edge is not present.
//
// Complexity: O(E) (edge-order bookkeeping).
func (g *DAG) RemoveEdge(u, v string) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return ErrUnknownVariable
	}
	if !g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}

	delete(g.children[u], v)
	delete(g.parents[v], u)

	// Keep edgeOrder consistent with the edge set.
	for i, e := range g.edgeOrder {
		if e.From == u && e.To == v {
			g.edgeOrder = append(g.edgeOrder[:i], g.edgeOrder[i+1:]...)
			break
		}
	}

	return nil
}

// HasNode reports whether variable v is present in the graph.
// Complexity: O(1)
func (g *DAG) HasNode(v string) bool {
	_, ok := g.nodes[v]

	return ok
}

// HasEdge reports whether the directed edge u → v is present.
// Complexity: O(1)
func (g *DAG) HasEdge(u, v string) bool {
	_, ok := g.children[u][v]

	return ok
}

// Nodes returns all variables in insertion order. The slice is freshly
// allocated and safe for the caller to retain.
// Complexity: O(V)
func (g *DAG) Nodes() []string {
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// Edges returns all edges in insertion order. The slice is freshly
// allocated and safe for the caller to retain.
// Complexity: O(E)
func (g *DAG) Edges() []Edge {
	out := make([]Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// NodeCount returns the number of variables.
func (g *DAG) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *DAG) EdgeCount() int { return len(g.edgeOrder) }

// Clone returns an independent deep copy of the graph. Mutating the clone
// never affects the receiver, and vice versa.
// Complexity: O(V + E)
func (g *DAG) Clone() *DAG {
	c := New()
	c.nodeOrder = make([]string, len(g.nodeOrder))
	copy(c.nodeOrder, g.nodeOrder)
	for v := range g.nodes {
		c.nodes[v] = struct{}{}
	}
	c.edgeOrder = make([]Edge, len(g.edgeOrder))
	copy(c.edgeOrder, g.edgeOrder)
	for u, set := range g.children {
		dst := make(map[string]struct{}, len(set))
		for v := range set {
			dst[v] = struct{}{}
		}
		c.children[u] = dst
	}
	for v, set := range g.parents {
		dst := make(map[string]struct{}, len(set))
		for u := range set {
			dst[u] = struct{}{}
		}
		c.parents[v] = dst
	}

	return c
}

// Equal reports whether g and other have the same variable set and the same
// edge set. Insertion order is not part of structural equality.
// Complexity: O(V + E)
func (g *DAG) Equal(other *DAG) bool {
	if other == nil {
		return false
	}
	if len(g.nodes) != len(other.nodes) || len(g.edgeOrder) != len(other.edgeOrder) {
		return false
	}
	for v := range g.nodes {
		if !other.HasNode(v) {
			return false
		}
	}
	for _, e := range g.edgeOrder {
		if !other.HasEdge(e.From, e.To) {
			return false
		}
	}

	return true
}

// reaches reports whether dst is reachable from src along directed edges.
// Iterative DFS over the children map; src itself does not count as reached
// unless a nonempty walk returns to it (impossible while the DAG invariant
// holds).
func (g *DAG) reaches(src, dst string) bool {
	if src == dst {
		return true
	}
	seen := map[string]struct{}{src: {}}
	stack := []string{src}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for child := range g.children[cur] {
			if child == dst {
				return true
			}
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			stack = append(stack, child)
		}
	}

	return false
}
