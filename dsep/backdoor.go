package dsep

import "github.com/katalvlaran/causal/core"

// FindBackdoorPaths returns every backdoor path from treatment to outcome:
// trails whose first hop enters the treatment against edge direction.
// These are the routes along which association flows into the treatment
// from behind, confounding a naive treatment→outcome comparison.
//
// Each path is reported as its full node sequence, treatment first, in the
// deterministic enumeration order of core.Trails.
//
// Errors:
//   - core.ErrUnknownVariable if treatment or outcome is absent from g.
//   - ErrInvalidQuery if treatment == outcome.
//
// Complexity: output-sensitive (trail enumeration).
func FindBackdoorPaths(g *core.DAG, treatment, outcome string) ([][]string, error) {
	if !g.HasNode(treatment) || !g.HasNode(outcome) {
		return nil, core.ErrUnknownVariable
	}
	if treatment == outcome {
		return nil, ErrInvalidQuery
	}

	trails, err := g.Trails(treatment, outcome)
	if err != nil {
		return nil, err
	}

	var out [][]string
	for _, trail := range trails {
		// A backdoor path starts with an edge INTO the treatment:
		// trail[1] → treatment must be a graph edge.
		if g.HasEdge(trail[1], treatment) {
			out = append(out, trail)
		}
	}

	return out, nil
}
