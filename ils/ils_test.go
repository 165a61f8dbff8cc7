package ils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/kcoloring/graph"
	"github.com/katalvlaran/kcoloring/ils"
	"github.com/katalvlaran/kcoloring/xrand"
)

func TestRun_NilGraphReturnsError(t *testing.T) {
	_, err := ils.Run(nil, ils.WithRNG(xrand.New(1)))
	if !errors.Is(err, ils.ErrNilGraph) {
		t.Fatalf("err = %v, want ErrNilGraph", err)
	}
}

func TestRun_EmptyGraph(t *testing.T) {
	g := graph.New(0)
	res, err := ils.Run(g, ils.WithRNG(xrand.New(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BestK != 0 {
		t.Fatalf("BestK = %d, want 0", res.BestK)
	}
}

func TestRun_SeedsIdentityWhenUncolored(t *testing.T) {
	g := graph.New(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	res, err := ils.Run(g, ils.WithRNG(xrand.New(7)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.ValidColoring() {
		t.Fatalf("committed coloring is not proper")
	}
	if res.BestK != g.ColorCount() {
		t.Fatalf("Result.BestK = %d, g.ColorCount() = %d, want equal", res.BestK, g.ColorCount())
	}
	if res.BestK != 2 {
		t.Fatalf("BestK = %d, want 2 (path is bipartite)", res.BestK)
	}
}

func TestRun_DrivesK4PlusPendantToFourColors(t *testing.T) {
	g := graph.New(5)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_ = g.AddEdge(i, j)
		}
	}
	_ = g.AddEdge(3, 4)

	res, err := ils.Run(g, ils.WithRNG(xrand.New(99)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.ValidColoring() {
		t.Fatalf("committed coloring is not proper")
	}
	if res.BestK != 4 {
		t.Fatalf("BestK = %d, want 4 (K4 subgraph forces at least 4)", res.BestK)
	}
}

func TestRun_MonotoneNonIncreasingColorCount(t *testing.T) {
	// Hexagon with long diagonals: the 6-cycle 0-1-2-3-4-5-0 plus the three
	// diagonals joining opposite vertices (0-3, 1-4, 2-5) — 9 edges total.
	g := graph.New(6)
	for i := 0; i < 6; i++ {
		_ = g.AddEdge(i, (i+1)%6)
	}
	_ = g.AddEdge(0, 3)
	_ = g.AddEdge(1, 4)
	_ = g.AddEdge(2, 5)
	startK := 6 // identity seed

	res, err := ils.Run(g, ils.WithRNG(xrand.New(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BestK > startK {
		t.Fatalf("BestK = %d exceeded the identity seed %d", res.BestK, startK)
	}
	if res.BestK > 3 {
		t.Fatalf("BestK = %d, want <= 3", res.BestK)
	}
	if !g.ValidColoring() {
		t.Fatalf("committed coloring is not proper")
	}
}

func TestRun_CubeQ3DrivesToTwoColors(t *testing.T) {
	// Q3: vertices 0..7 as 3-bit labels, edges between labels differing in
	// exactly one bit. Bipartite by parity of popcount, so chi(Q3) = 2.
	g := graph.New(8)
	for u := 0; u < 8; u++ {
		for bit := 0; bit < 3; bit++ {
			v := u ^ (1 << bit)
			if v > u {
				_ = g.AddEdge(u, v)
			}
		}
	}
	if g.EdgeCount() != 12 {
		t.Fatalf("EdgeCount() = %d, want 12", g.EdgeCount())
	}

	res, err := ils.Run(g, ils.WithRNG(xrand.New(11)), ils.WithDeadline(time.Now().Add(2*time.Second)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.ValidColoring() {
		t.Fatalf("committed coloring is not proper")
	}
	if res.BestK > 2 {
		t.Fatalf("BestK = %d, want <= 2", res.BestK)
	}
}

func TestRun_TwoDisjointTrianglesUseThreeColors(t *testing.T) {
	// {0,1,2} and {3,4,5} each form a triangle; no edges between the two.
	g := graph.New(6)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(3, 4)
	_ = g.AddEdge(4, 5)
	_ = g.AddEdge(3, 5)

	res, err := ils.Run(g, ils.WithRNG(xrand.New(13)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.ValidColoring() {
		t.Fatalf("committed coloring is not proper")
	}
	if res.BestK != 3 {
		t.Fatalf("BestK = %d, want 3 (each triangle forces 3 colors)", res.BestK)
	}
}

func TestRun_PastDeadlineStillCommitsASeedColoring(t *testing.T) {
	g := graph.New(4)
	for i := 0; i < 4; i++ {
		_ = g.AddEdge(i, (i+1)%4)
	}
	res, err := ils.Run(g, ils.WithRNG(xrand.New(3)), ils.WithDeadline(time.Now().Add(-time.Hour)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Attempts != 0 {
		t.Fatalf("Attempts = %d, want 0 (deadline already past)", res.Attempts)
	}
	if !g.ValidColoring() {
		t.Fatalf("committed coloring is not proper")
	}
}
