// File: api.go
// Role: read-only adjacency/color queries and simple accessors over Graph,
// plus the color writers SetColor and ResetColors. Structural mutators
// (AddEdge, RemoveVertex, RemoveEdge, RemoveVertices) live in methods.go;
// the DIMACS loader lives in dimacs.go.
package graph

import "github.com/katalvlaran/kcoloring/bitset"

// AdjacencyBits returns the authoritative bitset for v's neighbors, for the
// set-algebra consumers documented in the package comment (clique's
// branch-and-bound, rlf's class expansion). The returned Set is owned by
// Graph; callers must treat it as read-only and Clone it before mutating.
// Returns ErrInvalidVertex if v is out of range or inactive.
func (g *Graph) AdjacencyBits(v int) (*bitset.Set, error) {
	if !g.IsActive(v) {
		return nil, ErrInvalidVertex
	}
	return g.adj[v], nil
}

// ActiveBits returns the authoritative active-vertex bitset. Read-only; see
// AdjacencyBits.
func (g *Graph) ActiveBits() *bitset.Set {
	return g.active
}

// IsActive reports whether v participates in the graph. An out-of-range v
// reports false rather than erroring, since this query only needs a valid
// index, not an active one.
func (g *Graph) IsActive(v int) bool {
	if !g.validVertex(v) {
		return false
	}
	return g.active.Test(v)
}

// Neighbors returns the active neighbor ids of v in ascending order.
// Returns ErrInvalidVertex if v is out of range or inactive.
//
// Complexity: O(deg(v) + N/64) to scan the bitset.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.IsActive(v) {
		return nil, ErrInvalidVertex
	}
	return g.adj[v].Members(nil), nil
}

// Degree returns deg(v), the cardinality of adj[v].
// Returns ErrInvalidVertex if v is out of range or inactive.
func (g *Graph) Degree(v int) (int, error) {
	if !g.IsActive(v) {
		return 0, ErrInvalidVertex
	}
	return g.degree[v], nil
}

// IsNeighbor reports whether u and v are adjacent.
// Returns ErrInvalidVertex if either endpoint is out of range or inactive.
func (g *Graph) IsNeighbor(u, v int) (bool, error) {
	if !g.IsActive(u) || !g.IsActive(v) {
		return false, ErrInvalidVertex
	}
	return g.adj[u].Test(v), nil
}

// Color returns the current color of v, or UNCOLORED.
// Returns ErrInvalidVertex if v is out of range or inactive.
func (g *Graph) Color(v int) (int, error) {
	if !g.IsActive(v) {
		return UNCOLORED, ErrInvalidVertex
	}
	return g.color[v], nil
}

// SetColor writes color[v] directly. It does NOT update ColorCount; the
// calling algorithm is responsible for that when it finishes a bulk
// assignment. Returns ErrInvalidVertex if v is out of range or inactive.
func (g *Graph) SetColor(v, c int) error {
	if !g.IsActive(v) {
		return ErrInvalidVertex
	}
	g.color[v] = c
	return nil
}

// Saturation returns the number of distinct colors present among v's
// colored active neighbors.
// Returns ErrInvalidVertex if v is out of range or inactive.
//
// Complexity: O(deg(v)).
func (g *Graph) Saturation(v int) (int, error) {
	if !g.IsActive(v) {
		return 0, ErrInvalidVertex
	}
	seen := make(map[int]struct{})
	g.adj[v].Each(func(u int) bool {
		if c := g.color[u]; c != UNCOLORED {
			seen[c] = struct{}{}
		}
		return true
	})
	return len(seen), nil
}

// ResetColors sets every active vertex's color to UNCOLORED and zeroes
// ColorCount.
func (g *Graph) ResetColors() {
	g.active.Each(func(v int) bool {
		g.color[v] = UNCOLORED
		return true
	})
	g.colorCount = 0
}

// UsedColorCount recomputes the number of distinct colors on active
// vertices from scratch. It does not touch the cached ColorCount.
//
// Complexity: O(N).
func (g *Graph) UsedColorCount() int {
	seen := make(map[int]struct{})
	g.active.Each(func(v int) bool {
		if c := g.color[v]; c != UNCOLORED {
			seen[c] = struct{}{}
		}
		return true
	})
	return len(seen)
}

// ValidColoring reports whether no edge connects two equally-colored
// active endpoints. UNCOLORED vertices never conflict.
//
// Complexity: O(N + E).
func (g *Graph) ValidColoring() bool {
	valid := true
	g.active.Each(func(v int) bool {
		cv := g.color[v]
		if cv == UNCOLORED {
			return true
		}
		g.adj[v].Each(func(u int) bool {
			if u > v && g.color[u] == cv {
				valid = false
				return false
			}
			return true
		})
		return valid
	})
	return valid
}

// Snapshot returns read-only copies of the adjacency list, color
// assignment, and degree for every active vertex, for consumption by a
// visualizer or other read-only external collaborator. Inactive vertices
// are omitted from all three maps — callers should consult IsActive first
// if they care about removed vertices.
//
// Complexity: O(N + E).
func (g *Graph) Snapshot() (adjacency map[int][]int, colors map[int]int, degrees map[int]int) {
	adjacency = make(map[int][]int, g.nodeCount)
	colors = make(map[int]int, g.nodeCount)
	degrees = make(map[int]int, g.nodeCount)
	g.active.Each(func(v int) bool {
		adjacency[v] = g.adj[v].Members(nil)
		colors[v] = g.color[v]
		degrees[v] = g.degree[v]
		return true
	})
	return adjacency, colors, degrees
}
