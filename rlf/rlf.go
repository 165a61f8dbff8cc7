package rlf

import (
	"sort"

	"github.com/katalvlaran/kcoloring/graph"
)

// Construct overwrites g's coloring with a fresh Recursive-Largest-First
// solution and records the resulting class count via SetColorCount. An empty
// active set yields zero colors.
//
// Complexity: each round tries up to M candidate seeds, each grown in
// O(E) time, with O(classes) rounds; overall bounded by O(classes * M * E).
func Construct(g *graph.Graph, opts ...Option) {
	o := resolve(opts)
	g.ResetColors()

	active := g.ActiveBits()
	if active.IsEmpty() {
		g.SetColorCount(0)
		return
	}

	m := lookaheadWidth(o.P, g.NodeCount())
	n := g.N()

	round := newRoundState(n)
	round.u.CopyFrom(active)
	active.Each(func(v int) bool {
		deg, _ := g.Degree(v)
		round.degU[v] = deg
		return true
	})

	classIndex := 0
	for !round.u.IsEmpty() {
		winner := bestTrial(g, round, m)

		winner.cv.Each(func(v int) bool {
			_ = g.SetColor(v, classIndex)
			return true
		})
		classIndex++

		next := newRoundState(n)
		next.u.CopyFrom(winner.w)
		winner.w.Each(func(v int) bool {
			next.degU[v] = winner.degW[v]
			return true
		})
		round = next
	}

	g.SetColorCount(classIndex)
}

func lookaheadWidth(p float64, n int) int {
	m := int(p * float64(n))
	if m < 1 {
		m = 1
	}
	return m
}

// bestTrial runs up to m candidate seeds (the round's highest-degU uncolored
// vertices) through independent grow() trials and returns the one leaving
// the sparsest residual graph, ties broken by candidate rank.
func bestTrial(g *graph.Graph, round *roundState, m int) *roundState {
	candidates := selectCandidates(round, m)

	var winner *roundState
	bestScore := 0
	for i, seed := range candidates {
		trial := round.clone()
		trial.grow(g, seed)
		score := trial.residualScore()
		if i == 0 || score < bestScore {
			winner = trial
			bestScore = score
		}
	}
	return winner
}

// selectCandidates returns up to m members of round.u ranked by descending
// degU, ties broken by lowest id (stable sort preserves the ascending
// iteration order Members already produced).
func selectCandidates(round *roundState, m int) []int {
	members := round.u.Members(nil)
	sort.SliceStable(members, func(i, j int) bool {
		return round.degU[members[i]] > round.degU[members[j]]
	})
	if m < len(members) {
		members = members[:m]
	}
	return members
}
