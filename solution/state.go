// Package solution maintains the incrementally-updated bookkeeping that
// tabu search reads on every move evaluation: per-vertex per-color neighbor
// counts and a packed set of currently-conflicting vertices, kept consistent
// by a single O(deg) update primitive instead of ever being recomputed from
// scratch mid-search.
package solution

import "github.com/katalvlaran/kcoloring/graph"

// State is a k-coloring of a fixed active vertex set, tracked for conflict
// counting rather than properness. colors may legally violate properness
// (that is the whole point: local search hill-climbs it towards zero
// conflicts) but every color value must lie in [0, k).
type State struct {
	adj [][]int // borrowed from a graph.CompactAdjacency; adj[v] nil for inactive v
	k   int

	colors    []int   // colors[v], meaningful only for active v
	adjCounts [][]int // adjCounts[v][c] = count of v's neighbors colored c

	conflicting []int // packed ids of vertices with a same-colored neighbor
	posInConf   []int // posInConf[v] = index into conflicting, or -1

	totalConflicts int

	activeVertices []int // every v with adj[v] != nil, ascending
}

// New builds a State from a compact adjacency snapshot and an initial
// coloring. colors must be sized ca.N and hold a value in [0,k) for every
// active vertex (ca.Neighbors[v] != nil); the caller owns colors and may
// safely mutate it after New returns, since New copies it. If k <= 0, New
// returns a state with no counts and no conflicts.
//
// Complexity: O(N + E).
func New(ca *graph.CompactAdjacency, colors []int, k int) *State {
	n := ca.N
	s := &State{
		adj:         ca.Neighbors,
		k:           k,
		colors:      append([]int(nil), colors...),
		adjCounts:   make([][]int, n),
		posInConf:   make([]int, n),
		conflicting: make([]int, 0, n),
	}
	if k <= 0 {
		// No color can be assigned, so there is nothing to count; the
		// state reports K() <= 0, which tabu.Run rejects with ErrInvalidK.
		for v := range s.posInConf {
			s.posInConf[v] = -1
		}
		return s
	}
	for v := 0; v < n; v++ {
		s.posInConf[v] = -1
		if s.adj[v] == nil {
			continue
		}
		s.adjCounts[v] = make([]int, k)
		s.activeVertices = append(s.activeVertices, v)
	}
	for v := 0; v < n; v++ {
		if s.adj[v] == nil {
			continue
		}
		for _, u := range s.adj[v] {
			s.adjCounts[v][s.colors[u]]++
		}
	}

	sum := 0
	for v := 0; v < n; v++ {
		if s.adj[v] == nil {
			continue
		}
		if cnt := s.adjCounts[v][s.colors[v]]; cnt > 0 {
			s.addConflicting(v)
			sum += cnt
		}
	}
	s.totalConflicts = sum / 2

	return s
}

// K returns the fixed color count this state was built for.
func (s *State) K() int { return s.k }

// N returns the vertex universe size the underlying compact adjacency was
// built against (including any inactive ids); used to size tabu's flat
// tabuUntil array consistently with vertex ids that are never remapped.
func (s *State) N() int { return len(s.adj) }

// ActiveVertices returns every participating vertex id in ascending order.
// Callers must not mutate the returned slice.
func (s *State) ActiveVertices() []int { return s.activeVertices }

// Color returns v's current color.
func (s *State) Color(v int) int { return s.colors[v] }

// Colors returns the full color assignment. Callers must not mutate the
// returned slice; copy it before retaining across further UpdateColor calls.
func (s *State) Colors() []int { return s.colors }

// AdjCount returns the number of v's neighbors currently colored c.
func (s *State) AdjCount(v, c int) int { return s.adjCounts[v][c] }

// TotalConflicts returns the current half-sum of adjCounts[v][colors[v]]
// over all vertices: the number of monochromatic edges.
func (s *State) TotalConflicts() int { return s.totalConflicts }

// IsConflicting reports whether v has at least one same-colored neighbor.
func (s *State) IsConflicting(v int) bool { return s.posInConf[v] >= 0 }

// Conflicting returns the packed list of currently-conflicting vertex ids,
// in no particular order (swap-with-last removal does not preserve order).
// Callers must not retain or mutate the returned slice across UpdateColor
// calls.
func (s *State) Conflicting() []int { return s.conflicting }

// ConflictCount returns |conflicting|, used by the tenure formula and the
// perturbation kick-strength schedule.
func (s *State) ConflictCount() int { return len(s.conflicting) }

func (s *State) addConflicting(v int) {
	if s.posInConf[v] >= 0 {
		return
	}
	s.posInConf[v] = len(s.conflicting)
	s.conflicting = append(s.conflicting, v)
}

func (s *State) removeConflicting(v int) {
	pos := s.posInConf[v]
	if pos < 0 {
		return
	}
	last := len(s.conflicting) - 1
	movedVertex := s.conflicting[last]
	s.conflicting[pos] = movedVertex
	s.posInConf[movedVertex] = pos
	s.conflicting = s.conflicting[:last]
	s.posInConf[v] = -1
}
