// Package core provides the causal DAG: a strict directed acyclic graph over
// named variables, with the structural queries every other package in this
// module is built on.
//
// What
//
//   - DAG: adjacency + reverse-adjacency maps keyed by variable, so parent
//     and child lookups are both O(1) per neighbor.
//   - Mutators: AddNode, AddEdge (rejects self-loops and anything that would
//     close a directed cycle), RemoveEdge.
//   - Relations: Parents, Children, Ancestors, Descendants — always
//     recomputed from adjacency, never cached, so they cannot go stale.
//   - Enumeration: AllPaths / WalkPaths (simple directed paths) and Trails
//     (simple direction-blind paths, the raw material of backdoor analysis).
//   - TopologicalOrder: deterministic evaluation order for structural models.
//   - Document: the {"nodes": [...], "edges": [[parent, child], ...]}
//     serialization contract, encodable as JSON or YAML.
//
// Why
//
//   - Every causal operation downstream — d-separation, do(X) surgery,
//     rule checking, counterfactual evaluation — is a structural question
//     about one DAG. Keeping the DAG strict (no cycles, no self-loops,
//     no duplicate edges) means those operations never need to re-validate.
//
// Determinism
//
//	Relation queries return lexicographically sorted slices. Nodes() and
//	Edges() return insertion order, and ToDocument writes insertion order,
//	so serialized output is reproducible. FromDocument is order-insensitive.
//
// Acyclicity
//
//	AddEdge(u, v) checks whether v already reaches u through existing edges
//	(an ancestor-set walk from u), and fails with ErrCycle before touching
//	the graph. There is no full-graph re-validation anywhere.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - AddEdge:              O(V + E) worst case for the cycle check
//   - Parents/Children:     O(d log d) for the sort, d = degree
//   - Ancestors/Descendants:O(V + E)
//   - AllPaths/Trails:      output-sensitive (paths can be exponential)
//   - TopologicalOrder:     O(V log V + E)
//
// Errors
//
//   - ErrEmptyVariable   empty variable name.
//   - ErrUnknownVariable referenced variable is absent from the graph.
//   - ErrSelfLoop        edge from a variable to itself.
//   - ErrCycle           edge insertion would create a directed cycle.
//   - ErrEdgeNotFound    RemoveEdge on an edge that is not present.
package core
