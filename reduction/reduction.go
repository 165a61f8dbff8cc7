// Package reduction prunes vertices that a lower bound on the chromatic
// number proves are always safe to recolor after the rest of the graph is
// settled, shrinking the working instance before local search starts.
//
// Given a safe lower bound tau on chi(G) (typically usedColorCount or
// maxClique — this package accepts whichever the caller supplies), any
// active vertex with fewer than tau neighbors can be colored last with a
// color none of its neighbors used, once a tau-coloring exists for the
// remainder. Removing such vertices can only expose more low-degree
// vertices, so the package iterates to a fixpoint, removing a whole batch
// per pass rather than recomputing tau after every single removal
// (mirrors prim_kruskal's bulk-then-settle update style over a
// recompute-per-edge one).
package reduction

import "github.com/katalvlaran/kcoloring/graph"

// Apply removes every active vertex with degree < tau, repeating until no
// such vertex remains, and returns the ids removed in the order their batch
// was computed (ascending within each batch). It is a no-op (and returns no
// error) if tau <= 0. Apply returns ErrNilGraph if g is nil.
//
// Complexity: each pass is O(N + E) to scan degrees and remove a batch; the
// number of passes is bounded by the longest dependency chain of
// successively-exposed low-degree vertices, in practice small.
func Apply(g *graph.Graph, tau int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if tau <= 0 {
		return nil, nil
	}

	var removed []int
	for {
		batch := belowThreshold(g, tau)
		if len(batch) == 0 {
			return removed, nil
		}
		g.RemoveVertices(batch)
		removed = append(removed, batch...)
	}
}

func belowThreshold(g *graph.Graph, tau int) []int {
	var batch []int
	g.ActiveBits().Each(func(v int) bool {
		if d, err := g.Degree(v); err == nil && d < tau {
			batch = append(batch, v)
		}
		return true
	})
	return batch
}
