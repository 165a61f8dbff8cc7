package tabu

import (
	"github.com/katalvlaran/kcoloring/solution"
	"github.com/katalvlaran/kcoloring/xrand"
)

// kickStrength scales with how badly stuck the search is: more conflicting
// vertices warrant a bigger shake.
func kickStrength(conflictCount int) int {
	switch {
	case conflictCount < 20:
		return 1
	case conflictCount < 50:
		return 3
	default:
		return 6
	}
}

// perturb reassigns a handful of distinct conflicting vertices to random
// colors, then always draws one random active vertex and one random color,
// reassigning that vertex when the drawn color differs from its current
// one. Tabu memory is left untouched; a kick is meant to escape a
// local optimum, not erase the search's recent history.
func perturb(s *solution.State, rng *xrand.RNG) {
	k := s.K()
	if k <= 1 {
		return
	}

	strength := kickStrength(s.ConflictCount())
	pool := append([]int(nil), s.Conflicting()...)
	rng.ShuffleInts(pool)
	if strength > len(pool) {
		strength = len(pool)
	}
	for i := 0; i < strength; i++ {
		v := pool[i]
		s.UpdateColor(v, differentColor(rng, k, s.Color(v)))
	}

	active := s.ActiveVertices()
	v := active[rng.Intn(len(active))]
	drawn := rng.Intn(k)
	if s.Color(v) != drawn {
		s.UpdateColor(v, drawn)
	}
}

// differentColor draws uniformly from [0,k) \ {current}.
func differentColor(rng *xrand.RNG, k, current int) int {
	c := rng.Intn(k - 1)
	if c >= current {
		c++
	}
	return c
}
