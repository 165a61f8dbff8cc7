package tabu

import (
	"time"

	"github.com/katalvlaran/kcoloring/solution"
	"github.com/katalvlaran/kcoloring/xrand"
)

// Run hill-climbs s towards zero conflicts in place, returning once it
// succeeds, the deadline passes, or the perturbation budget is exhausted.
// s is mutated regardless of outcome; Result.Colors reflects whatever state
// the search stopped at.
//
// Run returns ErrNilState if s is nil, ErrNilRNG if rng is nil, and
// ErrInvalidK if s.K() <= 0 — all three are programmer errors, never raised
// by a well-formed caller.
func Run(s *solution.State, deadline time.Time, p Params, rng *xrand.RNG) (Result, error) {
	if s == nil {
		return Result{}, ErrNilState
	}
	if rng == nil {
		return Result{}, ErrNilRNG
	}
	if s.K() <= 0 {
		return Result{}, ErrInvalidK
	}

	n, k := s.N(), s.K()
	tabuUntil := make([]int, n*k)

	iter := 0
	iterLastImprovement := 0
	bestConflicts := s.TotalConflicts()
	perturbCount := 0

	fail := func() (Result, error) {
		return Result{Success: false, Colors: append([]int(nil), s.Colors()...), Iterations: iter}, nil
	}
	succeed := func() (Result, error) {
		return Result{Success: true, Colors: append([]int(nil), s.Colors()...), Iterations: iter}, nil
	}

	for {
		if deadlineExceeded(iter, deadline) {
			return fail()
		}
		if s.TotalConflicts() == 0 {
			return succeed()
		}

		if iter-iterLastImprovement > p.MaxNonImprovingIters {
			if perturbCount >= p.MaxPerturbs {
				return fail()
			}
			perturb(s, rng)
			iterLastImprovement = iter
			perturbCount++
			iter++
			continue
		}

		mv, ok := selectMove(s, tabuUntil, iter, bestConflicts, rng)
		if !ok {
			if perturbCount >= p.MaxPerturbs {
				return fail()
			}
			perturb(s, rng)
			iterLastImprovement = iter
			perturbCount++
			iter++
			continue
		}

		tenure := tenureFor(p, s.ConflictCount(), n, k)
		oldColor := s.Color(mv.u)
		tabuUntil[mv.u*k+oldColor] = iter + tenure
		s.UpdateColor(mv.u, mv.c)

		if s.TotalConflicts() < bestConflicts {
			bestConflicts = s.TotalConflicts()
			iterLastImprovement = iter
			perturbCount = 0
		}

		iter++
	}
}

// tenureFor implements tenure = min(BASE + floor(MULTI*conflictCount), floor(n*k/2)).
func tenureFor(p Params, conflictCount, n, k int) int {
	tenure := p.TenureBase + int(p.TenureMulti*float64(conflictCount))
	if ceiling := (n * k) / 2; tenure > ceiling {
		tenure = ceiling
	}
	if tenure < 0 {
		tenure = 0
	}
	return tenure
}
