// Package causal is an in-memory toolkit for structural causal reasoning:
// build a causal DAG, query conditional independence, mutilate the graph
// with do-interventions, certify do-calculus rewrites, and compute
// counterfactuals from structural equations.
//
// 🚀 What is causal?
//
//	A small, deterministic library that brings together:
//		• Core primitives: a strict DAG over named variables, with
//		  parents/children/ancestors/descendants, path and trail enumeration
//		• Separation oracle: d-separation via moralization, plus the classical
//		  trail-blocking criterion and backdoor-path enumeration
//		• Interventions: do(X) graph surgery producing independent mutilated copies
//		• Do-calculus: applicability checks for Pearl's three rewriting rules
//		• Counterfactuals: abduction–action–prediction over structural equations
//
// ✨ Why choose causal?
//
//   - Strict semantics – cycles, self-loops, and malformed queries fail loudly
//     with sentinel errors; no silent approximation anywhere
//   - Deterministic – sorted relation queries, insertion-ordered serialization,
//     reproducible counterfactuals
//   - Pure Go – no cgo; inputs are never mutated, so concurrent reads of a
//     shared graph or model need no coordination
//
// Everything is organized under five subpackages:
//
//	core/      — DAG type, relations, paths & trails, topological order, JSON/YAML documents
//	dsep/      — d-separation oracle, trail blocking, backdoor paths
//	intervene/ — do(X) and edge-cutting graph surgery
//	docalc/    — rule 1/2/3 applicability checks
//	scm/       — structural equations, models, counterfactual prediction
//
// Quick ASCII example (confounded treatment):
//
//	 Age
//	 / \
//	v   v
//	Trt→Out
//
// dsep.FindBackdoorPaths(g, "Trt", "Out") reports [Trt Age Out]: the
// confounding trail a naive Trt→Out association fails to account for.
package causal
