// Package docalc certifies candidate rewrites of interventional expressions
// under Pearl's three rules of do-calculus.
//
// What
//
// Each check answers one question about P(Y | do(X), ·, W) on a causal DAG,
// by building the specific mutilated graph the rule is stated over and
// asking the separation oracle whether Y ⊥ Z | X ∪ W holds there:
//
//   - Rule1 (insert/delete observation): may observed Z be dropped from the
//     conditioning set? Graph: G_X̄ (edges into X removed).
//   - Rule2 (action/observation exchange): may do(Z) be replaced by
//     observing Z? Graph: G_X̄Z̲ (edges into X and edges out of Z removed).
//   - Rule3 (insert/delete action): may do(Z) be dropped entirely?
//     Graph: G_X̄Z̄(W) — edges into X removed, then edges into the subset
//     of Z that are non-ancestors of W removed, with that subset computed
//     in G_X̄, not in the original graph.
//
// The engine performs no search over rewrites: it certifies exactly the one
// candidate the caller supplies, true or false.
//
// Why
//
//   - The three rules are the sound and complete rewrite system that turns
//     interventional expressions into observational ones where possible;
//     deciding applicability is the graph-theoretic half of that work.
//
// Edge cases
//
//	An empty Z makes every rule vacuous — there is nothing to drop or
//	exchange — so all three checks return true. An empty W is valid and
//	common. An empty X means no do(X) context (the mutilation is a no-op).
//
// Complexity: O(V + E) per check, plus the separation query.
//
// Errors
//
//   - core.ErrUnknownVariable if any referenced variable is absent.
//   - dsep.ErrInvalidQuery if Y/Z/W/X are not pairwise disjoint or Y is
//     empty.
package docalc
