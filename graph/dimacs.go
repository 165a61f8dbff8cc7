// File: dimacs.go
// Role: the DIMACS .col loader. This is the one file-format reader the
// core owns; everything else that might read/write files (benchmark
// drivers, CSV reports, batch runners) lives outside this module.
package graph

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load parses a DIMACS .col edge list from r and returns a fully populated
// Graph.
//
// Grammar:
//   - lines starting with 'c' are comments, ignored.
//   - exactly one 'p' line: "p edge <N> <E>"; only N is authoritative.
//   - edge lines: "e <u> <v>", 1-based, stored 0-based; duplicates are
//     silently deduplicated; self-loops are dropped.
//   - any other malformed line, or a vertex id outside [1,N], is a
//     *ParseError naming the offending line.
//
// Complexity: O(N + E) time and space.
func Load(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var g *Graph
	lineNo := 0
	sawHeader := false

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		fields := strings.Fields(trimmed)
		switch fields[0] {
		case "c":
			continue

		case "p":
			if sawHeader {
				return nil, &ParseError{Line: lineNo, Msg: "duplicate 'p' header"}
			}
			if len(fields) < 3 || fields[1] != "edge" {
				return nil, &ParseError{Line: lineNo, Msg: "malformed 'p' header, want \"p edge <N> <E>\""}
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, &ParseError{Line: lineNo, Msg: "invalid vertex count in 'p' header"}
			}
			g = New(n)
			sawHeader = true

		case "e":
			if !sawHeader {
				return nil, &ParseError{Line: lineNo, Msg: "edge line before 'p' header"}
			}
			if len(fields) < 3 {
				return nil, &ParseError{Line: lineNo, Msg: "malformed edge line, want \"e <u> <v>\""}
			}
			u, errU := strconv.Atoi(fields[1])
			v, errV := strconv.Atoi(fields[2])
			if errU != nil || errV != nil {
				return nil, &ParseError{Line: lineNo, Msg: "non-integer endpoint in edge line"}
			}
			if u < 1 || u > g.n || v < 1 || v > g.n {
				return nil, &ParseError{Line: lineNo, Msg: "edge endpoint out of range [1,N]"}
			}
			// 1-based -> 0-based; self-loops and duplicates are silently
			// dropped by AddEdge.
			_ = g.AddEdge(u-1, v-1)

		default:
			return nil, &ParseError{Line: lineNo, Msg: "unrecognized line type " + strconv.Quote(fields[0])}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: lineNo, Msg: "read error: " + err.Error()}
	}
	if !sawHeader {
		return nil, &ParseError{Msg: "missing 'p edge <N> <E>' header"}
	}

	return g, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Edges returns every active edge as an ascending (u,v) pair with u<v,
// 0-based, sorted by (u,v). Used for round-trip verification and by any
// external collaborator that wants the raw edge set without the DIMACS text
// framing.
//
// Complexity: O(N + E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edgeCount)
	g.active.Each(func(u int) bool {
		g.adj[u].Each(func(v int) bool {
			if v > u {
				out = append(out, [2]int{u, v})
			}
			return true
		})
		return true
	})
	return out
}
