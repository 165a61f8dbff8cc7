package ils

import (
	"math"

	"github.com/katalvlaran/kcoloring/tabu"
)

// autoConfigure selects a tabu parameter set from the graph's node count and
// edge density, per the regime table: tiny instances get a generous,
// cheap-to-restart search; sparse ones get a tenure scaled to log(n) and a
// long patience; hard (mid-density) and dense instances get progressively
// larger tenure bases to counteract their larger neighborhoods.
func autoConfigure(n, edgeCount int) tabu.Params {
	if n < 50 {
		return tabu.Params{TenureBase: 5, TenureMulti: 0.5, MaxNonImprovingIters: 100, MaxPerturbs: 10}
	}

	rho := 0.0
	if n > 1 {
		rho = 2 * float64(edgeCount) / (float64(n) * float64(n-1))
	}

	switch {
	case rho < 0.12:
		base := int(math.Floor(10 + 2.5*math.Log(float64(n))))
		maxNonImprov := 20 * n
		if maxNonImprov > 20000 {
			maxNonImprov = 20000
		}
		return tabu.Params{TenureBase: base, TenureMulti: 0.6, MaxNonImprovingIters: maxNonImprov, MaxPerturbs: 200}
	case rho < 0.75:
		maxNonImprov := 50 * n
		if maxNonImprov < 10000 {
			maxNonImprov = 10000
		}
		return tabu.Params{TenureBase: 8, TenureMulti: 0.9, MaxNonImprovingIters: maxNonImprov, MaxPerturbs: 250}
	default:
		maxNonImprov := 20 * n
		if maxNonImprov < 5000 {
			maxNonImprov = 5000
		}
		return tabu.Params{TenureBase: 20, TenureMulti: 0.6, MaxNonImprovingIters: maxNonImprov, MaxPerturbs: 150}
	}
}
