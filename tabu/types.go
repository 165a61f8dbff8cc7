// Package tabu drives a reactive tabu search over a solution.State at a
// fixed color count, hill-climbing totalConflicts to zero subject to a
// recency-based tabu list and an aspiration criterion, with perturbation
// kicks once the search stagnates.
package tabu

import "time"

// Params configures one tabu search attempt. ils computes these from graph
// density via its regime table when the caller does not supply its own.
type Params struct {
	// TenureBase is the fixed component of the tabu tenure formula.
	TenureBase int
	// TenureMulti scales the reactive (conflict-count-dependent) component.
	TenureMulti float64
	// MaxNonImprovingIters bounds how long the search tolerates no new
	// best-conflict record before triggering a perturbation kick.
	MaxNonImprovingIters int
	// MaxPerturbs bounds how many kicks an attempt tolerates before giving
	// up and reporting failure.
	MaxPerturbs int
}

// Result reports the outcome of a single tabu search attempt.
type Result struct {
	// Success is true iff the state reached zero conflicts before the
	// deadline or the perturbation budget ran out.
	Success bool
	// Colors is the state's coloring at the moment the attempt stopped,
	// successful or not.
	Colors []int
	// Iterations is the number of main-loop iterations performed.
	Iterations int
}

const deadlinePollInterval = 1024

func deadlineExceeded(iter int, deadline time.Time) bool {
	if deadline.IsZero() {
		return false
	}
	if iter%deadlinePollInterval != 0 {
		return false
	}
	return time.Now().After(deadline)
}
