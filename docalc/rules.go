// Package docalc implements the applicability checks for Pearl's rules.
package docalc

import (
	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/dsep"
	"github.com/katalvlaran/causal/intervene"
)

// Rule1 reports whether observation Z may be dropped:
//
//	P(y | do(x), z, w) = P(y | do(x), w)   if  (Y ⊥ Z | X, W) in G_X̄
//
// Errors:
//   - core.ErrUnknownVariable, dsep.ErrInvalidQuery per package doc.
func Rule1(g *core.DAG, y, z, w, x []string) (bool, error) {
	if ok, done, err := validateRule(g, y, z, w, x); done {
		return ok, err
	}

	// G_X̄: sever the do(X) dependencies.
	gx, err := intervene.Do(g, x...)
	if err != nil {
		return false, err
	}

	return dsep.IsDSeparated(gx, y, z, union(x, w))
}

// Rule2 reports whether do(Z) may be exchanged for observing Z:
//
//	P(y | do(x), do(z), w) = P(y | do(x), z, w)   if  (Y ⊥ Z | X, W) in G_X̄Z̲
//
// Errors:
//   - core.ErrUnknownVariable, dsep.ErrInvalidQuery per package doc.
func Rule2(g *core.DAG, y, z, w, x []string) (bool, error) {
	if ok, done, err := validateRule(g, y, z, w, x); done {
		return ok, err
	}

	// G_X̄Z̲: sever do(X) dependencies, then Z's outgoing edges.
	gx, err := intervene.Do(g, x...)
	if err != nil {
		return false, err
	}
	gxz, err := intervene.CutOutgoing(gx, z...)
	if err != nil {
		return false, err
	}

	return dsep.IsDSeparated(gxz, y, z, union(x, w))
}

// Rule3 reports whether do(Z) may be dropped entirely:
//
//	P(y | do(x), do(z), w) = P(y | do(x), w)   if  (Y ⊥ Z | X, W) in G_X̄Z̄(W)
//
// where Z(W) is the subset of Z that are not ancestors of any W-variable,
// judged in G_X̄ — the already do(X)-mutilated graph. Judging ancestry in
// the original graph instead would classify too many Z-variables as
// removable and yield an over-permissive check.
//
// Errors:
//   - core.ErrUnknownVariable, dsep.ErrInvalidQuery per package doc.
func Rule3(g *core.DAG, y, z, w, x []string) (bool, error) {
	if ok, done, err := validateRule(g, y, z, w, x); done {
		return ok, err
	}

	// 1. G_X̄ first: Z(W) is defined relative to this graph.
	gx, err := intervene.Do(g, x...)
	if err != nil {
		return false, err
	}

	// 2. Collect ancestors of W in G_X̄.
	ancW := make(map[string]struct{})
	for _, wv := range w {
		anc, aErr := gx.Ancestors(wv)
		if aErr != nil {
			return false, aErr
		}
		for _, a := range anc {
			ancW[a] = struct{}{}
		}
	}

	// 3. Z(W): the Z-variables that do not feed W in G_X̄.
	var zNonAnc []string
	for _, zv := range z {
		if _, ok := ancW[zv]; !ok {
			zNonAnc = append(zNonAnc, zv)
		}
	}

	// 4. G_X̄Z̄(W): additionally sever edges into Z(W).
	gxz, err := intervene.Do(gx, zNonAnc...)
	if err != nil {
		return false, err
	}

	return dsep.IsDSeparated(gxz, y, z, union(x, w))
}

// validateRule runs the shared query validation. done=true short-circuits
// the caller: either a validation error, or the vacuous empty-Z case where
// every rule holds trivially.
func validateRule(g *core.DAG, y, z, w, x []string) (ok, done bool, err error) {
	if len(y) == 0 {
		return false, true, dsep.ErrInvalidQuery
	}
	if err = dsep.ValidateDisjoint(g, y, z, w, x); err != nil {
		return false, true, err
	}
	if len(z) == 0 {
		// Nothing to drop or exchange: the precondition is vacuously met.
		return true, true, nil
	}

	return false, false, nil
}

// union concatenates two variable sets (already known disjoint).
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	return out
}
