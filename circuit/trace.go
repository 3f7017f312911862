// Package circuit walks a validated grid diagram into its closed
// combinatorial circuit and resolves the geometric crossings into it.
package circuit

import (
	"fmt"

	"github.com/katalvlaran/gridknot/griddiagram"
)

// Trace extracts the resolved circuit of a validated diagram: the closed
// alternating walk over the grid's marks, with one extra vertex spliced in
// for every point where a row edge passes under a column edge.
//
// The walk starts at column 0, stepping from its OverMark to its UnderMark,
// then alternates row edges (UnderMark→OverMark) and column edges
// (OverMark→UnderMark) until an index repeats, at which point the starting
// index closes the loop. Because the marks form a perfect matching on rows
// and columns, the walk is unique; a single-component diagram yields a base
// circuit of exactly 2n+1 entries. Trace panics when the walk closes short
// of that: the marks then form several disjoint loops (a split link), a
// shape the per-line diagram invariant cannot exclude. Knots are single
// components, so this is treated as a caller contract violation, not a
// recoverable error.
//
// Complexity: O(n²) for the walk, O(n²) for crossing resolution.
func Trace(d *griddiagram.Diagram) *Circuit {
	n := d.Resolution()
	first := d.Column(0)
	start := find(first, griddiagram.OverMark)
	end := find(first, griddiagram.UnderMark)
	tie := Abs(start, 0, n)

	nodes := []int{tie, Abs(end, 0, n)}
	seen := map[int]bool{tie: true, Abs(end, 0, n): true}

	// Rows are connected o→x, columns x→o. The walk just consumed the first
	// column edge, so it resumes horizontally.
	horizontal := true
	cursor := end
	for {
		var next, abs int
		if horizontal {
			next = find(d.Row(cursor), griddiagram.OverMark)
			abs = Abs(cursor, next, n)
		} else {
			next = find(d.Column(cursor), griddiagram.UnderMark)
			abs = Abs(next, cursor, n)
		}

		if seen[abs] {
			nodes = append(nodes, tie)
			break
		}
		nodes = append(nodes, abs)
		seen[abs] = true

		cursor = next
		horizontal = !horizontal
	}

	if len(nodes) != 2*n+1 {
		panic(fmt.Sprintf("circuit: base walk has %d entries for resolution %d, want %d", len(nodes), n, 2*n+1))
	}

	resolved, lifted := resolveCrossings(nodes, n)

	return &Circuit{n: n, nodes: resolved, lifted: lifted}
}

// find returns the position of the first marker m in line. The diagram
// invariant guarantees exactly one occurrence.
func find(line []griddiagram.Marker, m griddiagram.Marker) int {
	for p, v := range line {
		if v == m {
			return p
		}
	}
	panic(fmt.Sprintf("circuit: marker %q missing from line", m.Rune()))
}
