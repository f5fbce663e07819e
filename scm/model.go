package scm

import (
	"fmt"

	"github.com/katalvlaran/causal/core"
)

// Model is a structural causal model: a causal DAG plus one Equation per
// endogenous variable and fixed values for exogenous terms.
//
// Graph nodes without an equation are exogenous roots; they must be
// parentless (Validate enforces this via ErrMissingEquation) and take their
// values from evidence, SetExogenous, or per-call overrides.
//
// A Model is mutated only while its owner is building it (AddEquation,
// SetExogenous); queries never modify it, so a built Model may serve
// concurrent Predict calls without coordination.
type Model struct {
	graph *core.DAG
	eqs   map[string]Equation
	exo   map[string]float64 // fixed values for exogenous terms
	noise map[string]string  // noise name → owning target (collision index)
}

// New creates a Model over g. The graph is captured by reference and never
// mutated; interventions operate on independent copies.
func New(g *core.DAG) *Model {
	return &Model{
		graph: g,
		eqs:   make(map[string]Equation),
		exo:   make(map[string]float64),
		noise: make(map[string]string),
	}
}

// Graph returns the model's causal DAG.
func (m *Model) Graph() *core.DAG { return m.graph }

// AddEquation attaches eq to its target variable.
//
// Errors:
//   - core.ErrUnknownVariable if the target is not a graph node.
//   - ErrNilFunction if eq.Fn is nil.
//   - ErrDuplicateEquation if the target already has an equation.
//   - ErrParentMismatch if the declared parents differ from the graph's
//     parent set for the target — a mismatch is never silently accepted.
//   - ErrNoiseCollision if eq.Noise names a graph node or a noise term
//     already claimed by another equation.
func (m *Model) AddEquation(eq Equation) error {
	// 1. Structural validation.
	if !m.graph.HasNode(eq.Target) {
		return fmt.Errorf("scm: equation target %q: %w", eq.Target, core.ErrUnknownVariable)
	}
	if eq.Fn == nil {
		return fmt.Errorf("scm: equation for %q: %w", eq.Target, ErrNilFunction)
	}
	if _, dup := m.eqs[eq.Target]; dup {
		return fmt.Errorf("scm: equation for %q: %w", eq.Target, ErrDuplicateEquation)
	}

	// 2. Declared parents must equal graph parents exactly.
	graphParents, err := m.graph.Parents(eq.Target)
	if err != nil {
		return err
	}
	if !sameSet(eq.Parents, graphParents) {
		return fmt.Errorf("scm: equation for %q declares parents %v, graph has %v: %w",
			eq.Target, eq.Parents, graphParents, ErrParentMismatch)
	}

	// 3. Noise namespace: off-graph and unique across equations.
	if eq.Noise != "" {
		if m.graph.HasNode(eq.Noise) {
			return fmt.Errorf("scm: noise term %q is a graph node: %w", eq.Noise, ErrNoiseCollision)
		}
		if owner, taken := m.noise[eq.Noise]; taken {
			return fmt.Errorf("scm: noise term %q already used by %q: %w", eq.Noise, owner, ErrNoiseCollision)
		}
		m.noise[eq.Noise] = eq.Target
	}
	m.eqs[eq.Target] = eq

	return nil
}

// SetExogenous records a fixed value for an exogenous term: either a
// parentless root variable or an equation's noise term. Predict and
// Evaluate fall back to these values when evidence does not determine the
// term; evidence always wins.
func (m *Model) SetExogenous(name string, value float64) {
	m.exo[name] = value
}

// Validate checks the model invariant: every variable with parents has
// exactly one structural equation. Variables without equations are
// exogenous roots and must be parentless.
//
// Errors:
//   - ErrMissingEquation naming the offending variable.
func (m *Model) Validate() error {
	for _, v := range m.graph.Nodes() {
		if _, has := m.eqs[v]; has {
			continue
		}
		parents, err := m.graph.Parents(v)
		if err != nil {
			return err
		}
		if len(parents) > 0 {
			return fmt.Errorf("scm: %q has parents %v: %w", v, parents, ErrMissingEquation)
		}
	}

	return nil
}

// sameSet reports whether two variable slices contain the same names,
// order-insensitively.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	if len(set) != len(a) {
		return false
	}
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
	}

	return true
}
