// Package ils drives the outer Iterated Local Search that repeatedly tries
// to shave one color off the current best coloring: squash the top color
// class away, hand the squashed coloring to tabu search at the lower k, and
// either accept the improvement or give up and keep the last proper
// coloring found.
package ils

import (
	"time"

	"github.com/katalvlaran/kcoloring/tabu"
	"github.com/katalvlaran/kcoloring/xrand"
)

// Options configures one Run call.
type Options struct {
	// Deadline bounds the whole driver, not just one tabu attempt. Zero
	// means unbounded (run until bestK == 1 or an attempt fails).
	Deadline time.Time
	// Params overrides the auto-configured tabu parameter set. Nil selects
	// a regime from the graph's size and density per Run's own table.
	Params *tabu.Params
	// RNG supplies every randomized decision (squash order, squash start
	// offset, tabu tie-breaks, perturbation). Defaults to a time-seeded
	// generator when unset.
	RNG *xrand.RNG
}

// Option mutates Options.
type Option func(*Options)

// WithDeadline bounds the driver's total wall-clock budget.
func WithDeadline(d time.Time) Option {
	return func(o *Options) { o.Deadline = d }
}

// WithParams pins the tabu parameter set instead of auto-configuring one.
func WithParams(p tabu.Params) Option {
	return func(o *Options) { o.Params = &p }
}

// WithRNG supplies a specific generator, for reproducible runs.
func WithRNG(rng *xrand.RNG) Option {
	return func(o *Options) { o.RNG = rng }
}

func resolve(opts []Option) Options {
	o := Options{RNG: xrand.NewTimeSeeded()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Result reports the coloring ils.Run committed to the Graph Store.
type Result struct {
	// BestK is the number of colors in the final committed coloring.
	BestK int
	// Attempts is how many target-k tabu invocations were made.
	Attempts int
}
