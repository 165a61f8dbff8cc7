// Package rlf builds an initial proper coloring with the Recursive-Largest-
// First heuristic, enriched with an M-trial look-ahead: rather than
// committing to the single uncolored vertex of highest degree as the seed of
// each new color class, it grows a short list of candidate classes in
// parallel copies of the working state and commits whichever leaves the
// sparsest residual graph behind.
//
// The algorithm partitions the uncolored vertices of a round into three
// sets while a class is being grown:
//
//   - U: still eligible to join the class being built.
//   - W: excluded from this class (adjacent to something already in it);
//     becomes next round's U once this class is committed.
//   - Cv: committed members of the class under construction.
//
// Per vertex it tracks degU (neighbors currently in U) and degW (neighbors
// currently in W), used first to rank candidates and then, within a trial,
// to choose which U vertex extends the class next.
package rlf

// Options configures the look-ahead breadth.
type Options struct {
	// P scales the look-ahead width: M = max(1, floor(P*N)), where N is the
	// number of active vertices when Construct is called. P = 1 examines
	// every uncolored vertex as a candidate seed each round (most thorough,
	// most expensive); smaller P narrows the search to the highest-degree
	// candidates only.
	P float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions sets P to 1, the full look-ahead.
func DefaultOptions() Options {
	return Options{P: 1.0}
}

// WithP overrides the look-ahead fraction. Values outside (0, 1] are
// clamped: <= 0 becomes the single-candidate minimum, > 1 is capped at 1.
func WithP(p float64) Option {
	return func(o *Options) { o.P = p }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.P > 1 {
		o.P = 1
	}
	if o.P <= 0 {
		o.P = 0
	}
	return o
}
