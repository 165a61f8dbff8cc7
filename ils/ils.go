package ils

import (
	"fmt"
	"time"

	"github.com/katalvlaran/kcoloring/graph"
	"github.com/katalvlaran/kcoloring/solution"
	"github.com/katalvlaran/kcoloring/tabu"
)

// Run drives the coloring on g down towards fewer colors and commits
// whatever the best reached coloring turns out to be back to g before
// returning. If g carries no coloring yet (ColorCount() == 0), Run seeds it
// with the identity coloring (every active vertex its own unique color)
// before attempting any squash.
//
// Run returns ErrNilGraph if g is nil. Any error surfaced by the underlying
// tabu search (a programmer error in this package's own wiring, never
// triggered by a well-formed caller) is wrapped and returned rather than
// panicking.
func Run(g *graph.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	o := resolve(opts)
	params := o.Params
	if params == nil {
		p := autoConfigure(g.NodeCount(), g.EdgeCount())
		params = &p
	}

	ca := g.CompactAdjacency()
	bestColors, bestK := seedColoring(g, ca)

	attempts := 0
	for withinBudget(o.Deadline) && bestK > 1 {
		targetK := bestK - 1
		squashed := smartSquash(ca, bestColors, targetK, o.RNG)

		st := solution.New(ca, squashed, targetK)
		attempts++
		res, err := tabu.Run(st, o.Deadline, *params, o.RNG)
		if err != nil {
			return Result{}, fmt.Errorf("ils: tabu search: %w", err)
		}
		if !res.Success {
			break
		}

		bestK = targetK
		bestColors = res.Colors
	}

	commit(g, ca, bestColors, bestK)

	return Result{BestK: bestK, Attempts: attempts}, nil
}

func withinBudget(deadline time.Time) bool {
	return deadline.IsZero() || time.Now().Before(deadline)
}

// seedColoring reads g's existing coloring, or assigns every active vertex
// its own unique color if none exists yet.
func seedColoring(g *graph.Graph, ca *graph.CompactAdjacency) ([]int, int) {
	if g.ColorCount() > 0 {
		colors := make([]int, ca.N)
		for v, neighbors := range ca.Neighbors {
			if neighbors == nil {
				continue
			}
			c, _ := g.Color(v)
			colors[v] = c
		}
		return colors, g.ColorCount()
	}

	colors := make([]int, ca.N)
	next := 0
	for v, neighbors := range ca.Neighbors {
		if neighbors == nil {
			continue
		}
		colors[v] = next
		next++
	}
	return colors, next
}

func commit(g *graph.Graph, ca *graph.CompactAdjacency, colors []int, k int) {
	for v, neighbors := range ca.Neighbors {
		if neighbors == nil {
			continue
		}
		_ = g.SetColor(v, colors[v])
	}
	g.SetColorCount(k)
}
