package rlf_test

import (
	"testing"

	"github.com/katalvlaran/kcoloring/graph"
	"github.com/katalvlaran/kcoloring/rlf"
)

func assertValid(t *testing.T, g *graph.Graph) {
	t.Helper()
	if !g.ValidColoring() {
		t.Fatalf("coloring is not proper")
	}
}

func TestConstruct_EmptyGraph(t *testing.T) {
	g := graph.New(0)
	rlf.Construct(g)
	if g.ColorCount() != 0 {
		t.Fatalf("ColorCount() = %d, want 0", g.ColorCount())
	}
}

func TestConstruct_NoEdgesUsesOneColor(t *testing.T) {
	g := graph.New(5)
	rlf.Construct(g)
	assertValid(t, g)
	if g.ColorCount() != 1 {
		t.Fatalf("ColorCount() = %d, want 1", g.ColorCount())
	}
}

func TestConstruct_Path3UsesTwoColors(t *testing.T) {
	// P3: 0-1-2, bipartite, chromatic number 2.
	g := graph.New(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	rlf.Construct(g)
	assertValid(t, g)
	if g.ColorCount() != 2 {
		t.Fatalf("ColorCount() = %d, want 2", g.ColorCount())
	}
}

func TestConstruct_TriangleUsesThreeColors(t *testing.T) {
	g := graph.New(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 2)
	rlf.Construct(g)
	assertValid(t, g)
	if g.ColorCount() != 3 {
		t.Fatalf("ColorCount() = %d, want 3", g.ColorCount())
	}
}

func TestConstruct_FourCycleUsesTwoColors(t *testing.T) {
	g := graph.New(4)
	for i := 0; i < 4; i++ {
		_ = g.AddEdge(i, (i+1)%4)
	}
	rlf.Construct(g)
	assertValid(t, g)
	if g.ColorCount() != 2 {
		t.Fatalf("ColorCount() = %d, want 2", g.ColorCount())
	}
}

func TestConstruct_FiveCycleUsesThreeColors(t *testing.T) {
	// C5 is an odd cycle: chromatic number 3.
	g := graph.New(5)
	for i := 0; i < 5; i++ {
		_ = g.AddEdge(i, (i+1)%5)
	}
	rlf.Construct(g)
	assertValid(t, g)
	if g.ColorCount() != 3 {
		t.Fatalf("ColorCount() = %d, want 3", g.ColorCount())
	}
}

func TestConstruct_K4UsesFourColors(t *testing.T) {
	g := graph.New(4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_ = g.AddEdge(i, j)
		}
	}
	rlf.Construct(g)
	assertValid(t, g)
	if g.ColorCount() != 4 {
		t.Fatalf("ColorCount() = %d, want 4", g.ColorCount())
	}
}

func TestConstruct_RespectsActiveSet(t *testing.T) {
	g := graph.New(4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_ = g.AddEdge(i, j)
		}
	}
	_ = g.RemoveVertex(0)
	rlf.Construct(g)
	assertValid(t, g)
	if g.ColorCount() != 3 {
		t.Fatalf("ColorCount() = %d, want 3", g.ColorCount())
	}
	if g.IsActive(0) {
		t.Fatalf("vertex 0 should remain inactive")
	}
}

func TestConstruct_OverwritesPriorColoring(t *testing.T) {
	g := graph.New(3)
	_ = g.AddEdge(0, 1)
	_ = g.SetColor(0, 7)
	_ = g.SetColor(1, 7)
	g.SetColorCount(1)

	rlf.Construct(g)
	assertValid(t, g)
	if c, _ := g.Color(0); c == 7 {
		t.Fatalf("stale color 7 survived Construct")
	}
}

func TestConstruct_NarrowLookaheadStillProper(t *testing.T) {
	// A small P=~0.2 look-ahead (single candidate per round on this size)
	// must still produce a proper, if not necessarily optimal, coloring.
	g := graph.New(6)
	for i := 0; i < 6; i++ {
		_ = g.AddEdge(i, (i+1)%6)
	}
	_ = g.AddEdge(0, 3)
	rlf.Construct(g, rlf.WithP(0.2))
	assertValid(t, g)
	if g.ColorCount() < 2 {
		t.Fatalf("ColorCount() = %d, want >= 2", g.ColorCount())
	}
}

func TestConstruct_EveryActiveVertexColored(t *testing.T) {
	g := graph.New(8)
	for i := 0; i < 7; i++ {
		_ = g.AddEdge(i, i+1)
	}
	rlf.Construct(g)
	for v := 0; v < 8; v++ {
		c, err := g.Color(v)
		if err != nil {
			t.Fatalf("Color(%d) error: %v", v, err)
		}
		if c == graph.UNCOLORED {
			t.Fatalf("vertex %d left uncolored", v)
		}
	}
}
