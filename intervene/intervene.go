package intervene

import "github.com/katalvlaran/causal/core"

// Do returns an independent copy of g in which every edge into an
// intervened variable has been removed: for each v in vars the result has
// parents(v) = ∅, and every other variable keeps its parents unchanged.
// The node set is preserved. An empty vars still returns a fresh copy,
// never the base graph itself.
//
// Errors:
//   - core.ErrUnknownVariable if any intervened variable is absent from g.
//
// Complexity: O(V + E).
func Do(g *core.DAG, vars ...string) (*core.DAG, error) {
	// 1. Validate before copying: a caller error must not cost a clone.
	for _, v := range vars {
		if !g.HasNode(v) {
			return nil, core.ErrUnknownVariable
		}
	}

	// 2. Copy, then sever incoming edges per intervened variable.
	out := g.Clone()
	for _, v := range vars {
		parents, err := out.Parents(v)
		if err != nil {
			return nil, err
		}
		for _, p := range parents {
			if err = out.RemoveEdge(p, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// CutOutgoing returns an independent copy of g in which every edge out of
// the given variables has been removed (the G_Z̲ mutilation): for each v in
// vars the result has children(v) = ∅. The node set is preserved.
//
// Errors:
//   - core.ErrUnknownVariable if any variable is absent from g.
//
// Complexity: O(V + E).
func CutOutgoing(g *core.DAG, vars ...string) (*core.DAG, error) {
	for _, v := range vars {
		if !g.HasNode(v) {
			return nil, core.ErrUnknownVariable
		}
	}

	out := g.Clone()
	for _, v := range vars {
		children, err := out.Children(v)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			if err = out.RemoveEdge(v, c); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
