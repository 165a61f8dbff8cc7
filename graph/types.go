// Package graph owns the vertex/edge representation that every other
// component in this module borrows from: a fixed vertex universe 0..N-1, a
// bitset adjacency per vertex, an active-set bitmap, and a per-vertex color.
//
// Graph is the one concrete type for the whole pipeline (no runtime
// polymorphism across graph backends): it exposes read-only adjacency
// queries, single-vertex mutation, and the DIMACS .col loader. It does not
// implement RLF,
// max-clique, reduction, or local search itself — those consult Graph
// through its public API and live in their own packages.
//
// Concurrency: Graph carries no mutex. The whole search pipeline is
// single-threaded and synchronous by contract; adding locking here would be
// unexercised ambient machinery.
//
// Invariants maintained by every mutator:
//   - adj[u] contains v iff adj[v] contains u (symmetry).
//   - degree[v] == |adj[v]| for every active v.
//   - edgeCount == (1/2) * sum of degree[v] over active v.
//   - every edge has both endpoints active.
//   - color[v] is either UNCOLORED or in [0, N).
package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kcoloring/bitset"
)

// UNCOLORED is the sentinel color value for a vertex that has not yet been
// assigned a color.
const UNCOLORED = -1

// Sentinel errors returned by Graph operations.
var (
	// ErrInvalidVertex indicates an API call named a vertex that is out of
	// range, or inactive when activity was required.
	ErrInvalidVertex = errors.New("graph: invalid or inactive vertex")

	// ErrNoEdge indicates RemoveEdge targeted an edge that is not present.
	ErrNoEdge = errors.New("graph: edge not present")

	// ErrVertexInactive indicates RemoveVertex targeted an already-inactive vertex.
	ErrVertexInactive = errors.New("graph: vertex already inactive")
)

// ParseError reports a malformed DIMACS .col input. Line is 1-based and
// refers to the offending line in the source text; Line is 0 when the error
// is not tied to one line (e.g. a missing "p" header).
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("graph: parse error at line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("graph: parse error: %s", e.Msg)
}

// Graph is an undirected simple graph over a fixed vertex universe 0..N-1.
// N is immutable after construction; vertices are logically removed via
// RemoveVertex rather than shrinking the universe.
type Graph struct {
	n int // total vertex universe (immutable)

	adj    []*bitset.Set // adj[v] = neighbor bitset, len n
	active *bitset.Set   // currently-participating vertices
	degree []int         // degree[v], valid for active v
	color  []int         // color[v] or UNCOLORED

	nodeCount  int // |active|
	edgeCount  int // active edges
	colorCount int // cached; NOT maintained by SetColor (see SetColorCount)

	generation uint64 // bumped by any structural mutation (AddEdge/RemoveVertex/RemoveEdge)
}

// New returns an empty Graph over the vertex universe [0, n): every vertex
// is active and uncolored, and no edges are present.
//
// Complexity: O(n) for the per-vertex bitset allocations.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		n:      n,
		adj:    make([]*bitset.Set, n),
		active: bitset.New(n),
		degree: make([]int, n),
		color:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = bitset.New(n)
		g.active.Add(v)
		g.color[v] = UNCOLORED
	}
	g.nodeCount = n

	return g
}

// N returns the total vertex universe size (immutable after construction).
func (g *Graph) N() int { return g.n }

// NodeCount returns the number of currently-active vertices.
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of edges among active vertices.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// ColorCount returns the cached distinct-color count. It is maintained only
// by bulk colorers (rlf.Construct, ils.Run's final commit) via SetColorCount,
// never by SetColor: single-vertex writes don't know whether they raised or
// lowered the distinct-color count without a full rescan, so that
// bookkeeping is left to whichever caller already knows the answer.
func (g *Graph) ColorCount() int { return g.colorCount }

// SetColorCount overwrites the cached color count. Bulk-coloring algorithms
// call this after they finish assigning colors; single-vertex SetColor never
// does, by design.
func (g *Graph) SetColorCount(k int) { g.colorCount = k }

// Generation returns a counter bumped by every structural mutation
// (AddEdge, RemoveVertex, RemoveEdge). Callers holding a derived read-only view (the
// compact adjacency consumed by solution/tabu) compare generations to know
// whether to rebuild it.
func (g *Graph) Generation() uint64 { return g.generation }

func (g *Graph) validVertex(v int) bool {
	return v >= 0 && v < g.n
}
