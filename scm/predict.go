package scm

import (
	"fmt"

	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/intervene"
)

// PredictOption configures a single Predict or Evaluate call.
type PredictOption func(*predictOptions)

// predictOptions holds per-call settings.
type predictOptions struct {
	exo map[string]float64 // per-call exogenous overrides
}

// WithExogenous overrides the value of one exogenous term (root variable or
// noise name) for this call only, without touching the model. Evidence
// still wins over overrides during abduction.
func WithExogenous(name string, value float64) PredictOption {
	return func(o *predictOptions) {
		if o.exo == nil {
			o.exo = make(map[string]float64)
		}
		o.exo[name] = value
	}
}

// Predict answers the counterfactual query "given evidence, had the
// intervention held, what would every variable have been?" via
// abduction, action, and prediction. It returns the full counterfactual
// assignment, one value per graph variable.
//
// Evidence maps observed variables to their factual values; it may be
// partial, as long as it (with any fixed exogenous values) determines every
// value and noise term the query needs — otherwise ErrUnderdetermined.
// Intervention maps the do()-variables to their forced values and may be
// empty, in which case the result reproduces the factual world.
//
// The model is never mutated; concurrent Predict calls on a shared Model
// are safe.
//
// Errors:
//   - core.ErrUnknownVariable if an evidence or intervention key is not a
//     graph node, or the model fails Validate.
//   - ErrNonIdentifiableNoise if evidence forces a solver-less equation to
//     be inverted.
//   - ErrUnderdetermined if a needed value or noise term is not pinned.
func (m *Model) Predict(evidence, intervention map[string]float64, opts ...PredictOption) (map[string]float64, error) {
	// 1. Per-call options.
	var po predictOptions
	for _, opt := range opts {
		opt(&po)
	}

	// 2. Model invariant and query key validation.
	if err := m.Validate(); err != nil {
		return nil, err
	}
	for v := range evidence {
		if !m.graph.HasNode(v) {
			return nil, fmt.Errorf("scm: evidence variable %q: %w", v, core.ErrUnknownVariable)
		}
	}
	for v := range intervention {
		if !m.graph.HasNode(v) {
			return nil, fmt.Errorf("scm: intervention variable %q: %w", v, core.ErrUnknownVariable)
		}
	}

	// 3. Abduction: recover noise terms and factual values from evidence.
	factual, noise, err := m.abduce(evidence, intervention, &po)
	if err != nil {
		return nil, err
	}

	// 4. Action: mutilate the graph over the intervention keys.
	targets := make([]string, 0, len(intervention))
	for v := range intervention {
		targets = append(targets, v)
	}
	mutilated, err := intervene.Do(m.graph, targets...)
	if err != nil {
		return nil, err
	}

	// 5. Prediction: re-evaluate the mutilated model under abducted noise.
	out := make(map[string]float64, m.graph.NodeCount())
	for _, v := range mutilated.TopologicalOrder() {
		// Intervened variables are pinned constants.
		if forced, ok := intervention[v]; ok {
			out[v] = forced
			continue
		}

		eq, has := m.eqs[v]
		if !has {
			// Exogenous root: carries its factual value into the
			// counterfactual world.
			val, known := factual[v]
			if !known {
				return nil, fmt.Errorf("scm: exogenous root %q has no value: %w", v, ErrUnderdetermined)
			}
			out[v] = val

			continue
		}

		// Non-intervened variables keep their original parents, all of
		// which precede v in the mutilated topological order.
		parents := pick(out, eq.Parents)
		n, nErr := m.noiseValue(eq, noise, &po)
		if nErr != nil {
			return nil, nErr
		}
		out[v] = eq.Fn(parents, n)
	}

	return out, nil
}

// PredictVariable runs Predict and projects out a single variable — the
// "what would Y have been" convenience form.
func (m *Model) PredictVariable(evidence, intervention map[string]float64, query string, opts ...PredictOption) (float64, error) {
	if !m.graph.HasNode(query) {
		return 0, fmt.Errorf("scm: query variable %q: %w", query, core.ErrUnknownVariable)
	}
	out, err := m.Predict(evidence, intervention, opts...)
	if err != nil {
		return 0, err
	}

	return out[query], nil
}

// Evaluate performs plain forward simulation: root variables take values
// from roots (falling back to fixed exogenous values), noise terms take
// their fixed (or per-call) values, and every equation is evaluated in
// topological order. No abduction, no intervention.
//
// Errors:
//   - core.ErrUnknownVariable for unknown root keys or an invalid model.
//   - ErrUnderdetermined if a root or noise value is missing.
func (m *Model) Evaluate(roots map[string]float64, opts ...PredictOption) (map[string]float64, error) {
	var po predictOptions
	for _, opt := range opts {
		opt(&po)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	for v := range roots {
		if !m.graph.HasNode(v) {
			return nil, fmt.Errorf("scm: root variable %q: %w", v, core.ErrUnknownVariable)
		}
	}

	out := make(map[string]float64, m.graph.NodeCount())
	for _, v := range m.graph.TopologicalOrder() {
		eq, has := m.eqs[v]
		if !has {
			val, ok := roots[v]
			if !ok {
				val, ok = m.exoValue(v, &po)
			}
			if !ok {
				return nil, fmt.Errorf("scm: root %q has no value: %w", v, ErrUnderdetermined)
			}
			out[v] = val

			continue
		}

		n, err := m.noiseValue(eq, nil, &po)
		if err != nil {
			return nil, err
		}
		out[v] = eq.Fn(pick(out, eq.Parents), n)
	}

	return out, nil
}

// abduce sweeps the unintervened graph in topological order, solving each
// evidenced equation for its noise term and forward-computing unevidenced
// variables where the known terms allow, so downstream solves always see
// consistent parent values. Noise terms of intervened variables are never
// solved: the action step replaces their equations, so demanding a solver
// for them would reject queries that do not need one.
func (m *Model) abduce(evidence, intervention map[string]float64, po *predictOptions) (factual, noise map[string]float64, err error) {
	factual = make(map[string]float64, m.graph.NodeCount())
	noise = make(map[string]float64)

	for _, v := range m.graph.TopologicalOrder() {
		eq, has := m.eqs[v]
		if !has {
			// Exogenous root: evidence first, fixed value second.
			if val, ok := evidence[v]; ok {
				factual[v] = val
			} else if val, ok := m.exoValue(v, po); ok {
				factual[v] = val
			}
			// A root left unknown only matters if something needs it later.

			continue
		}

		parents, known := pickAll(factual, eq.Parents)

		if observed, ok := evidence[v]; ok {
			if _, cut := intervention[v]; cut {
				// The action step overwrites v; its factual value still
				// feeds downstream abduction, its noise never does.
				factual[v] = observed

				continue
			}
			// Evidence pins the target: invert the mechanism.
			if !known {
				return nil, nil, fmt.Errorf("scm: cannot abduce %q, parent values unknown: %w", v, ErrUnderdetermined)
			}
			if eq.Noise != "" {
				if eq.Solve == nil {
					return nil, nil, fmt.Errorf("scm: equation for %q has no solver: %w", v, ErrNonIdentifiableNoise)
				}
				n, sErr := eq.Solve(parents, observed)
				if sErr != nil {
					return nil, nil, fmt.Errorf("scm: solving noise of %q: %w: %v", v, ErrNonIdentifiableNoise, sErr)
				}
				noise[eq.Noise] = n
			}
			factual[v] = observed

			continue
		}

		// No evidence: forward-compute when the noise term is pinned, so
		// descendants with evidence can still be inverted.
		if !known {
			continue
		}
		if eq.Noise == "" {
			factual[v] = eq.Fn(parents, 0)

			continue
		}
		if n, ok := m.exoValue(eq.Noise, po); ok {
			noise[eq.Noise] = n
			factual[v] = eq.Fn(parents, n)
		}
	}

	return factual, noise, nil
}

// noiseValue resolves the noise term of eq for the prediction step:
// abducted value first, then per-call override, then model fixed value.
func (m *Model) noiseValue(eq Equation, abducted map[string]float64, po *predictOptions) (float64, error) {
	if eq.Noise == "" {
		return 0, nil
	}
	if abducted != nil {
		if n, ok := abducted[eq.Noise]; ok {
			return n, nil
		}
	}
	if n, ok := m.exoValue(eq.Noise, po); ok {
		return n, nil
	}

	return 0, fmt.Errorf("scm: noise term %q of %q has no value: %w", eq.Noise, eq.Target, ErrUnderdetermined)
}

// exoValue looks up an exogenous term: per-call override first, then the
// model's fixed values.
func (m *Model) exoValue(name string, po *predictOptions) (float64, bool) {
	if po != nil && po.exo != nil {
		if v, ok := po.exo[name]; ok {
			return v, true
		}
	}
	v, ok := m.exo[name]

	return v, ok
}

// pick projects the named keys out of values. Missing keys default to the
// zero value; callers guarantee presence via topological order.
func pick(values map[string]float64, names []string) map[string]float64 {
	out := make(map[string]float64, len(names))
	for _, n := range names {
		out[n] = values[n]
	}

	return out
}

// pickAll is pick plus a completeness flag.
func pickAll(values map[string]float64, names []string) (map[string]float64, bool) {
	out := make(map[string]float64, len(names))
	for _, n := range names {
		v, ok := values[n]
		if !ok {
			return nil, false
		}
		out[n] = v
	}

	return out, true
}
