package circuit

import (
	"slices"
	"sort"
)

// resolveCrossings splices one vertex into the base circuit for every point
// where a row edge passes under a column edge, per the grid convention that
// rows always go under. It returns the mutated walk plus the set of lifted
// (over-strand) indices.
//
// Dropping the first entry of the closed walk leaves the row-edge pairs;
// dropping the last leaves the column-edge pairs. Each column edge is
// normalized to run from the smaller to the larger absolute index, which for
// a fixed column means bottom-to-top in row order; a row edge crosses it
// when the column's j lies strictly between the row edge's column bounds and
// the row's i lies strictly between the column edge's row bounds.
//
// Crossings along one column edge are sorted by row ascending and reversed
// back when normalization flipped the edge, preserving the physical
// traversal order. Each batch is spliced immediately after whichever edge
// endpoint a forward scan meets first; insertion only ever lands after an
// edge's own endpoints, so earlier splices never disturb the scan for later
// edges.
func resolveCrossings(base []int, n int) ([]int, map[int]bool) {
	cols := base[:len(base)-1]
	rows := base[1:]

	resolved := make([]int, len(base), len(base)+n)
	copy(resolved, base)
	lifted := make(map[int]bool)

	type hit struct {
		row int // row index of the crossing, for ordering
		idx int // absolute grid index to splice in
	}

	for c := 0; c+1 < len(cols); c += 2 {
		colS, colE := cols[c], cols[c+1]
		swapped := false
		if colS > colE {
			colS, colE = colE, colS
			swapped = true
		}
		colSRow, colJ := Coords(colS, n)
		colERow, _ := Coords(colE, n)

		var hits []hit
		for r := 0; r+1 < len(rows); r += 2 {
			rowS, rowE := rows[r], rows[r+1]
			if rowS > rowE {
				rowS, rowE = rowE, rowS
			}
			rowI, rowSCol := Coords(rowS, n)
			_, rowECol := Coords(rowE, n)

			// Strict transversality: collinear overlaps and shared endpoints
			// are not crossings.
			if colJ > rowSCol && colJ < rowECol && colSRow < rowI && colERow > rowI {
				idx := Abs(rowI, colJ, n)
				hits = append(hits, hit{row: rowI, idx: idx})
				lifted[idx] = true
			}
		}
		if len(hits) == 0 {
			continue
		}

		sort.Slice(hits, func(a, b int) bool { return hits[a].row < hits[b].row })
		if swapped {
			slices.Reverse(hits)
		}

		for pos, node := range resolved {
			if node == colS || node == colE {
				spliced := make([]int, len(hits))
				for h, ht := range hits {
					spliced[h] = ht.idx
				}
				resolved = slices.Insert(resolved, pos+1, spliced...)
				break
			}
		}
	}

	return resolved, lifted
}
