// Package scm defines the Equation type, its constructors, and the
// sentinel errors of the structural-model engine.
package scm

import (
	"errors"
	"sort"
)

// Sentinel errors for model construction and counterfactual queries.
var (
	// ErrDuplicateEquation indicates a second equation for the same target.
	ErrDuplicateEquation = errors.New("scm: variable already has an equation")

	// ErrParentMismatch indicates an equation whose declared parent set
	// differs from the graph's parent set for its target.
	ErrParentMismatch = errors.New("scm: equation parents do not match graph parents")

	// ErrNoiseCollision indicates a noise term named after a graph node or
	// already claimed by another equation.
	ErrNoiseCollision = errors.New("scm: noise term name collides")

	// ErrNilFunction indicates an equation without a forward function.
	ErrNilFunction = errors.New("scm: equation has no function")

	// ErrMissingEquation indicates a variable with parents but no equation.
	ErrMissingEquation = errors.New("scm: endogenous variable has no equation")

	// ErrNonIdentifiableNoise indicates abduction hit an equation that has
	// evidence on its target but no solver to invert.
	ErrNonIdentifiableNoise = errors.New("scm: noise term not identifiable from evidence")

	// ErrUnderdetermined indicates the evidence does not pin down every
	// value or noise term the query needs.
	ErrUnderdetermined = errors.New("scm: evidence leaves the system underdetermined")
)

// Func is a structural mechanism: the value of a variable as a function of
// its parents' values and one exogenous noise term.
type Func func(parents map[string]float64, noise float64) float64

// Solver inverts a Func in its noise term: given the parents' values and
// the observed value of the target, it recovers the noise that produced it.
type Solver func(parents map[string]float64, observed float64) (float64, error)

// Equation is the structural equation of exactly one endogenous variable.
//
// Noise names the equation's exogenous term; it must not collide with any
// graph node. An empty Noise means the mechanism is deterministic in its
// parents (e.g. a pinned constant) and abduction has nothing to solve.
// Solve may be nil; abduction then fails with ErrNonIdentifiableNoise if
// evidence forces this equation to be inverted.
type Equation struct {
	Target  string
	Parents []string
	Noise   string
	Fn      Func
	Solve   Solver
}

// Additive builds value = f(parents) + noise, the most common SCM shape.
// Its solver is derived automatically: noise = observed − f(parents).
func Additive(target, noise string, parents []string, f func(parents map[string]float64) float64) Equation {
	return Equation{
		Target:  target,
		Parents: parents,
		Noise:   noise,
		Fn: func(p map[string]float64, n float64) float64 {
			return f(p) + n
		},
		Solve: func(p map[string]float64, observed float64) (float64, error) {
			return observed - f(p), nil
		},
	}
}

// Linear builds value = intercept + Σ coeffs[p]·p + noise. The parent set
// is the coefficient keys; the solver is derived as for Additive.
func Linear(target, noise string, intercept float64, coeffs map[string]float64) Equation {
	parents := make([]string, 0, len(coeffs))
	for p := range coeffs {
		parents = append(parents, p)
	}
	sort.Strings(parents)

	// Summation follows the sorted parent order, not map order, so repeated
	// evaluations are bit-for-bit identical.
	return Additive(target, noise, parents, func(p map[string]float64) float64 {
		sum := intercept
		for _, name := range parents {
			sum += coeffs[name] * p[name]
		}

		return sum
	})
}

// Constant builds a parentless, noiseless equation pinning target to value.
// This is also how the action step represents an intervened variable.
func Constant(target string, value float64) Equation {
	return Equation{
		Target: target,
		Fn: func(map[string]float64, float64) float64 {
			return value
		},
	}
}
