// Package intervene performs do-operator graph surgery: given a causal DAG
// and a set of intervened variables, it produces an independent mutilated
// copy with the interventions' structural dependencies severed.
//
// What
//
//   - Do(g, vars...): copy of g with every edge INTO an intervened variable
//     removed — do(X) fixes X from outside the system, so nothing inside
//     the system may cause it anymore.
//   - CutOutgoing(g, vars...): copy of g with every edge OUT OF the given
//     variables removed — the Z-underline mutilation (G_Z̲) the second
//     do-calculus rule is stated over.
//
// Why
//
//   - Interventional and counterfactual questions are questions about the
//     mutilated graph, not the observational one. Both the do-calculus
//     engine and the structural-model engine build their worlds here.
//
// Ownership
//
//	Results are deep, independent copies: the base graph is never touched
//	and stays valid, so overlapping interventions can be derived from the
//	same base concurrently.
//
// Complexity: O(V + E) per call.
//
// Errors
//
//   - core.ErrUnknownVariable if an intervened variable is absent from the
//     base graph — intervening on a non-existent variable is a caller
//     error, never silently ignored.
package intervene
