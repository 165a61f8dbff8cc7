// File: compact.go
// Role: the derived, read-only adjacency view consumed by solution/tabu
// during a search attempt. Kept separate from the authoritative bitset
// adjacency (the adj field declared in types.go) per the design note: the bitset form
// is for set algebra (RLF, max-clique); this sorted-slice form is for O(deg)
// per-move state updates, and is rebuilt whenever the active set changes
// between phases (tracked via Generation).
package graph

// CompactAdjacency is a read-only, per-vertex sorted neighbor array snapshot
// of an active subgraph, built once per ILS session (or whenever the
// Generation it was built at goes stale).
type CompactAdjacency struct {
	// N is the vertex universe size this snapshot was built against.
	N int
	// Neighbors[v] holds v's active neighbors in ascending order; only
	// meaningful for v that were active when the snapshot was built.
	Neighbors [][]int
	// Generation is the Graph.Generation() value this snapshot reflects.
	Generation uint64
}

// CompactAdjacency builds a fresh snapshot of the graph's active adjacency.
//
// Complexity: O(N + E).
func (g *Graph) CompactAdjacency() *CompactAdjacency {
	neighbors := make([][]int, g.n)
	g.active.Each(func(v int) bool {
		neighbors[v] = g.adj[v].Members(make([]int, 0, g.degree[v]))
		return true
	})

	return &CompactAdjacency{
		N:          g.n,
		Neighbors:  neighbors,
		Generation: g.generation,
	}
}

// Stale reports whether g has mutated structurally since ca was built.
func (ca *CompactAdjacency) Stale(g *Graph) bool {
	return ca.Generation != g.generation
}
