package tabu

import (
	"github.com/katalvlaran/kcoloring/solution"
	"github.com/katalvlaran/kcoloring/xrand"
)

// move describes a single candidate reassignment and its effect on
// totalConflicts.
type move struct {
	u, c, delta int
}

// selectMove scans every conflicting vertex and every alternate color,
// returning the best permitted move (minimum delta, ties broken uniformly
// at random via reservoir sampling). It reports false if no move is
// permitted at all. A move eliminating every one of u's conflicts is
// accepted immediately without scanning the rest.
func selectMove(s *solution.State, tabuUntil []int, iter int, bestConflicts int, rng *xrand.RNG) (move, bool) {
	k := s.K()
	total := s.TotalConflicts()

	var best move
	found := false
	bestDelta := 0
	tieCount := 0

	for _, u := range s.Conflicting() {
		oldColor := s.Color(u)
		oldCount := s.AdjCount(u, oldColor)
		base := u * k
		for c := 0; c < k; c++ {
			if c == oldColor {
				continue
			}
			delta := s.AdjCount(u, c) - oldCount
			if tabuUntil[base+c] > iter && total+delta >= bestConflicts {
				continue // tabu and aspiration does not override it
			}
			if delta == -oldCount {
				return move{u: u, c: c, delta: delta}, true
			}
			switch {
			case !found || delta < bestDelta:
				found = true
				bestDelta = delta
				best = move{u: u, c: c, delta: delta}
				tieCount = 1
			case delta == bestDelta:
				tieCount++
				if rng.Intn(tieCount) == 0 {
					best = move{u: u, c: c, delta: delta}
				}
			}
		}
	}

	return best, found
}
