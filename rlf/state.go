package rlf

import (
	"github.com/katalvlaran/kcoloring/bitset"
	"github.com/katalvlaran/kcoloring/graph"
)

// roundState holds one round's U/W/Cv partition and per-vertex degU/degW
// counters. A trial operates on a clone of the round's starting state so
// trials never interfere with each other.
type roundState struct {
	u, w, cv   *bitset.Set
	degU, degW []int
}

func newRoundState(n int) *roundState {
	return &roundState{
		u:    bitset.New(n),
		w:    bitset.New(n),
		cv:   bitset.New(n),
		degU: make([]int, n),
		degW: make([]int, n),
	}
}

func (s *roundState) clone() *roundState {
	out := &roundState{
		u:    s.u.Clone(),
		w:    s.w.Clone(),
		cv:   s.cv.Clone(),
		degU: make([]int, len(s.degU)),
		degW: make([]int, len(s.degW)),
	}
	copy(out.degU, s.degU)
	copy(out.degW, s.degW)
	return out
}

// moveToCv moves v from U to Cv: every remaining U-neighbor of v loses one
// U-neighbor.
func (s *roundState) moveToCv(g *graph.Graph, v int) {
	adjV, _ := g.AdjacencyBits(v)
	s.u.Remove(v)
	s.cv.Add(v)
	adjV.Each(func(y int) bool {
		if s.u.Test(y) {
			s.degU[y]--
		}
		return true
	})
}

// moveToW moves x from U to W. x's own degW is computed fresh from the
// current W (capturing every W member that arrived before it); every
// remaining U-neighbor loses a U-neighbor, and every existing W-neighbor
// gains one (so a W member's degW keeps accumulating as later arrivals join,
// ending up as the true final degree within W once the round is done).
func (s *roundState) moveToW(g *graph.Graph, x int) {
	adjX, _ := g.AdjacencyBits(x)
	s.degW[x] = s.w.AndPopCount(adjX)
	s.u.Remove(x)
	s.w.Add(x)
	adjX.Each(func(y int) bool {
		if s.u.Test(y) {
			// y stays in U: it loses x as a U-neighbor and gains it as a
			// W-neighbor, both in the same move.
			s.degU[y]--
			s.degW[y]++
		} else if s.w.Test(y) && y != x {
			s.degW[y]++
		}
		return true
	})
}

// grow extends Cv starting from seed until U is exhausted, per the
// move-then-select loop: seed joins Cv, its U-neighbors are forced into W,
// then the vertex maximizing degW (ties: minimum degU, then lowest id) is
// repeatedly pulled into Cv the same way.
func (s *roundState) grow(g *graph.Graph, seed int) {
	s.absorb(g, seed)
	for !s.u.IsEmpty() {
		next := s.selectNext()
		s.absorb(g, next)
	}
}

// absorb moves v into Cv and forces its remaining U-neighbors into W.
func (s *roundState) absorb(g *graph.Graph, v int) {
	adjV, _ := g.AdjacencyBits(v)
	var forced []int
	adjV.Each(func(y int) bool {
		if s.u.Test(y) {
			forced = append(forced, y)
		}
		return true
	})
	s.moveToCv(g, v)
	for _, y := range forced {
		s.moveToW(g, y)
	}
}

// selectNext picks the U member maximizing degW, ties broken by minimum
// degU, remaining ties by lowest id (guaranteed by ascending iteration order
// plus strict-improvement-only updates).
func (s *roundState) selectNext() int {
	best := -1
	bestDegW, bestDegU := -1, -1
	s.u.Each(func(v int) bool {
		dw, du := s.degW[v], s.degU[v]
		if dw > bestDegW || (dw == bestDegW && du < bestDegU) {
			bestDegW, bestDegU, best = dw, du, v
		}
		return true
	})
	return best
}

// residualScore sums degW over W, the accumulated edge count within what
// will become next round's U if this trial is committed.
func (s *roundState) residualScore() int {
	score := 0
	s.w.Each(func(v int) bool {
		score += s.degW[v]
		return true
	})
	return score
}
