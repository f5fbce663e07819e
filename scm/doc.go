// Package scm evaluates structural causal models: one structural equation
// per endogenous variable, a causal DAG tying them together, and the
// abduction–action–prediction procedure that answers counterfactuals.
//
// What
//
//   - Equation: value = Fn(parent values, noise), with an optional Solve
//     inverting Fn in its noise term. Additive, Linear, and Constant
//     build common equation shapes with solvers derived automatically.
//   - Model: a DAG plus equations, validated so that declared parents
//     always equal graph parents and every parented variable has exactly
//     one equation. Graph nodes without an equation are exogenous roots.
//   - Predict(evidence, intervention): the counterfactual "given what was
//     observed, had the intervention held, what would every variable be?"
//     1. Abduction — solve each equation's noise term so the unintervened
//     model reproduces the evidence exactly.
//     2. Action — sever the intervened variables' equations and parents
//     (intervene.Do) and pin them to the supplied values.
//     3. Prediction — re-evaluate everything in topological order of the
//     mutilated graph under the abducted noise.
//   - Evaluate: plain forward simulation from root and noise values.
//
// Why
//
//   - Interventional queries need only the graph; counterfactuals need the
//     functional mechanisms too. This package is where "had X been x"
//     gets an exact numeric answer instead of an independence verdict.
//
// Determinism
//
//	For fixed evidence, intervention, and equations the result is exactly
//	reproducible: abduction pins every noise term, evaluation order is the
//	deterministic core.TopologicalOrder, and no hidden randomness exists.
//
// Errors
//
//   - core.ErrUnknownVariable     a referenced variable is not a graph node.
//   - ErrDuplicateEquation        two equations target the same variable.
//   - ErrParentMismatch           declared parents differ from graph parents.
//   - ErrNoiseCollision           a noise name clashes with a graph node or
//     another equation's noise term.
//   - ErrNilFunction              an equation has no forward function.
//   - ErrMissingEquation          a parented variable has no equation.
//   - ErrNonIdentifiableNoise     evidence covers a variable whose equation
//     cannot be inverted (no solver).
//   - ErrUnderdetermined          the evidence does not pin down a value or
//     noise term the query needs.
package scm
