package dsep

import "github.com/katalvlaran/causal/core"

// IsTrailBlocked reports whether the given trail is blocked by Z under the
// classical d-separation criterion. A trail is blocked when some interior
// node blocks it:
//
//   - a chain (a→b→c or a←b←c) or fork (a←b→c) node blocks iff it is in Z;
//   - a collider (a→b←c) blocks iff neither it nor any of its descendants
//     is in Z — conditioning on (a descendant of) a collider opens it.
//
// A trail with no interior node (length ≤ 2) is never blocked.
//
// This is the validation counterpart of IsDSeparated: X ⊥ Y | Z holds
// exactly when every trail between X and Y is blocked by Z.
//
// Errors:
//   - core.ErrUnknownVariable if a trail or Z variable is absent from g.
//   - ErrInvalidTrail if consecutive trail nodes are not adjacent in g, a
//     node repeats, or the trail has fewer than two nodes.
//
// Complexity: O(L · (V + E)) for a trail of length L.
func IsTrailBlocked(g *core.DAG, trail []string, z []string) (bool, error) {
	// 1. Validate trail shape and membership.
	if len(trail) < 2 {
		return false, ErrInvalidTrail
	}
	seen := make(map[string]struct{}, len(trail))
	for _, v := range trail {
		if !g.HasNode(v) {
			return false, core.ErrUnknownVariable
		}
		if _, dup := seen[v]; dup {
			return false, ErrInvalidTrail
		}
		seen[v] = struct{}{}
	}
	for _, v := range z {
		if !g.HasNode(v) {
			return false, core.ErrUnknownVariable
		}
	}
	for i := 0; i+1 < len(trail); i++ {
		if !g.HasEdge(trail[i], trail[i+1]) && !g.HasEdge(trail[i+1], trail[i]) {
			return false, ErrInvalidTrail
		}
	}

	// 2. Classify each interior node and test its blocking condition.
	zSet := toSet(z)
	for i := 1; i+1 < len(trail); i++ {
		prev, cur, next := trail[i-1], trail[i], trail[i+1]
		collider := g.HasEdge(prev, cur) && g.HasEdge(next, cur)

		if !collider {
			// Chain or fork: in Z means blocked.
			if _, inZ := zSet[cur]; inZ {
				return true, nil
			}

			continue
		}

		// Collider: blocked unless cur or a descendant of cur is in Z.
		if _, inZ := zSet[cur]; inZ {
			continue
		}
		desc, err := g.Descendants(cur)
		if err != nil {
			return false, err
		}
		opened := false
		for _, d := range desc {
			if _, inZ := zSet[d]; inZ {
				opened = true
				break
			}
		}
		if !opened {
			return true, nil
		}
	}

	return false, nil
}
