package clique

import (
	"time"

	"github.com/katalvlaran/kcoloring/bitset"
	"github.com/katalvlaran/kcoloring/graph"
)

// deadlinePollMask mirrors tsp/bb.go's sparse deadline check: testing the
// clock on every node would dominate runtime on small/dense graphs, so we
// only look every 1024 steps.
const deadlinePollMask = 1023

// MaxClique returns the size of a maximum clique within g's active
// subgraph, or 0 if no vertex is active.
//
// Complexity: worst case exponential in the candidate set size; in
// practice bounded by the graph's actual clique structure thanks to
// pivoting and the size+|candidates| <= best prune.
func MaxClique(g *graph.Graph, opts ...Option) int {
	o := resolve(opts)
	active := g.ActiveBits()
	if active.IsEmpty() {
		return 0
	}

	s := &search{g: g, useDeadline: !o.Deadline.IsZero(), deadline: o.Deadline}
	s.run(active.Clone(), 0)

	return s.best
}

type search struct {
	g           *graph.Graph
	best        int
	steps       int
	useDeadline bool
	deadline    time.Time
	timedOut    bool
}

func (s *search) deadlineHit() bool {
	if !s.useDeadline {
		return false
	}
	if s.steps&deadlinePollMask != 0 {
		return s.timedOut
	}
	if time.Now().After(s.deadline) {
		s.timedOut = true
	}
	return s.timedOut
}

// run explores cliques extendable from candidates, given that a clique of
// size `size` has already been committed.
func (s *search) run(candidates *bitset.Set, size int) {
	s.steps++
	if s.deadlineHit() {
		return
	}

	if candidates.IsEmpty() {
		if size > s.best {
			s.best = size
		}
		return
	}

	// Admissible bound: even taking every remaining candidate can't beat
	// the incumbent, so stop exploring this branch.
	if size+candidates.PopCount() <= s.best {
		return
	}

	pivot := s.choosePivot(candidates)
	pivotAdj, _ := s.g.AdjacencyBits(pivot)
	toExplore := candidates.AndNot(pivotAdj)

	for _, v := range toExplore.Members(nil) {
		if s.deadlineHit() {
			return
		}
		vAdj, _ := s.g.AdjacencyBits(v)
		next := candidates.And(vAdj)
		s.run(next, size+1)
		candidates.Remove(v)
	}
}

// choosePivot selects p in candidates maximizing |adj(p) ∩ candidates|,
// ties broken by lowest vertex id. bitset.Set.Each visits members in
// ascending order, so only updating on a strict improvement already yields
// the lowest-id winner among ties.
func (s *search) choosePivot(candidates *bitset.Set) int {
	best := -1
	bestCount := -1
	candidates.Each(func(v int) bool {
		adjV, _ := s.g.AdjacencyBits(v)
		c := candidates.AndPopCount(adjV)
		if c > bestCount {
			bestCount = c
			best = v
		}
		return true
	})

	return best
}
