package ils

import (
	"github.com/katalvlaran/kcoloring/graph"
	"github.com/katalvlaran/kcoloring/xrand"
)

// smartSquash copies colors, then reassigns every vertex whose color is
// >= targetK (the color class being eliminated this round) to whichever
// color in [0,targetK) currently has the fewest of that vertex's neighbors,
// scanning candidate colors from a random offset and stopping the moment a
// zero-conflict color turns up. Overflow vertices are visited in a random
// order so no single one is systematically favored.
func smartSquash(ca *graph.CompactAdjacency, colors []int, targetK int, rng *xrand.RNG) []int {
	squashed := append([]int(nil), colors...)

	var overflow []int
	for v, neighbors := range ca.Neighbors {
		if neighbors != nil && squashed[v] >= targetK {
			overflow = append(overflow, v)
		}
	}
	rng.ShuffleInts(overflow)

	for _, v := range overflow {
		squashed[v] = bestSquashColor(ca, squashed, v, targetK, rng.Intn(targetK))
	}

	return squashed
}

func bestSquashColor(ca *graph.CompactAdjacency, colors []int, v, targetK, offset int) int {
	best := offset % targetK
	bestConflicts := -1
	for i := 0; i < targetK; i++ {
		c := (offset + i) % targetK
		conflicts := countNeighborsColored(ca, colors, v, c)
		if bestConflicts < 0 || conflicts < bestConflicts {
			best, bestConflicts = c, conflicts
			if conflicts == 0 {
				break
			}
		}
	}
	return best
}

func countNeighborsColored(ca *graph.CompactAdjacency, colors []int, v, c int) int {
	count := 0
	for _, u := range ca.Neighbors[v] {
		if colors[u] == c {
			count++
		}
	}
	return count
}
