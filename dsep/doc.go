// Package dsep decides conditional independence on a causal DAG:
// d-separation queries, the classical trail-blocking criterion, and
// backdoor-path enumeration.
//
// What
//
//   - IsDSeparated(g, X, Y, Z): are X and Y d-separated given Z? Computed on
//     the moralized ancestral subgraph of X ∪ Y ∪ Z — take the ancestral
//     closure, marry co-parents, drop edge direction, then test whether Z
//     cuts every undirected route from X to Y.
//   - IsTrailBlocked(g, trail, Z): the textbook per-trail criterion — a
//     chain or fork node in Z blocks; a collider blocks unless it or one of
//     its descendants is in Z. The moral-graph answer and "every trail
//     blocked" agree on all inputs; tests hold the two implementations to
//     that equivalence.
//   - FindBackdoorPaths(g, treatment, outcome): every trail that reaches the
//     outcome after entering the treatment against edge direction — the
//     routes that confound a naive treatment→outcome association.
//
// Why
//
//   - d-separation is the oracle behind every do-calculus rule check and the
//     test for whether an adjustment set closes all confounding routes.
//
// Determinism
//
//	Backdoor paths inherit the sorted-branching enumeration order of
//	core.Trails. IsDSeparated returns a bare bool; no ordering is involved.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - IsDSeparated:      O(V + E) — closure, moralization, and one BFS
//   - IsTrailBlocked:    O(L · (V + E)) for a trail of length L (collider
//     descendant checks)
//   - FindBackdoorPaths: output-sensitive (trail enumeration)
//
// Errors
//
//   - core.ErrUnknownVariable if any referenced variable is absent.
//   - ErrInvalidQuery if X/Y/Z overlap pairwise or X or Y is empty —
//     d-separation is undefined for non-disjoint sets.
//   - ErrInvalidTrail if a supplied trail does not follow graph adjacency.
package dsep
