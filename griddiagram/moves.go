package griddiagram

// This file implements the three supported Cromwell moves. Each move either
// succeeds atomically or returns a sentinel error without touching the grid.
//
// Reference: https://www.math.ucdavis.edu/~slwitte/research/BlackwellTapiaPoster.pdf

// Translate cyclically rotates all rows (Up/Down) or all columns (Left/Right)
// by one position and returns the diagram for chaining. Translation permutes
// whole lines, so it cannot violate the one-mark-per-line invariant and never
// fails. Complexity: O(n) for row shifts, O(n²) for column shifts.
func (d *Diagram) Translate(dir Direction) *Diagram {
	switch dir {
	case Up:
		first := d.data[0]
		copy(d.data, d.data[1:])
		d.data[d.n-1] = first
	case Down:
		last := d.data[d.n-1]
		copy(d.data[1:], d.data[:d.n-1])
		d.data[0] = last
	case Left:
		for _, row := range d.data {
			first := row[0]
			copy(row, row[1:])
			row[d.n-1] = first
		}
	case Right:
		for _, row := range d.data {
			last := row[d.n-1]
			copy(row[1:], row[:d.n-1])
			row[0] = last
		}
	}

	return d
}

// Commute exchanges the line at start with the adjacent line at start+1
// along axis. Returns ErrNoAdjacentLine when start is outside [0, n-1),
// and ErrInterleavedLines when the two lines' mark intervals interleave
// (the exchange would change the knot type, so it is rejected).
// Complexity: O(n).
func (d *Diagram) Commute(axis Axis, start int) error {
	if start < 0 || start >= d.n-1 {
		return ErrNoAdjacentLine
	}

	var a, b []Marker
	if axis == Rows {
		a, b = d.Row(start), d.Row(start+1)
	} else {
		a, b = d.Column(start), d.Column(start+1)
	}
	if interleaved(markSpan(a), markSpan(b)) {
		return ErrInterleavedLines
	}

	if axis == Rows {
		d.data[start], d.data[start+1] = d.data[start+1], d.data[start]
	} else {
		for i := range d.data {
			d.data[i][start], d.data[i][start+1] = d.data[i][start+1], d.data[i][start]
		}
	}

	return nil
}

// span is the closed interval covered by a line's two marks.
type span struct {
	lo, hi int
}

// markSpan returns the interval [min, max] of the two mark positions in line.
// Lines reaching this point already passed diagram validation, so exactly
// two cells are marked.
func markSpan(line []Marker) span {
	lo, hi := -1, -1
	for p, m := range line {
		if m == Empty {
			continue
		}
		if lo < 0 {
			lo = p
		}
		hi = p
	}

	return span{lo: lo, hi: hi}
}

// interleaved reports whether the two mark intervals interleave: they are
// compatible only when one fully contains, fully precedes, or fully follows
// the other. Shared endpoints count as nested/adjacent, not interleaved.
func interleaved(a, b span) bool {
	switch {
	case a.hi <= b.lo || b.hi <= a.lo: // disjoint (or touching)
		return false
	case a.lo <= b.lo && b.hi <= a.hi: // b inside a
		return false
	case b.lo <= a.lo && a.hi <= b.hi: // a inside b
		return false
	default:
		return true
	}
}

// Stabilize replaces the OverMark at (i, j) with a 2×2 block, inserting one
// new column adjacent to column j (right for NW/SW, left for NE/SE) and one
// new row adjacent to row i (below for NW/NE, above for SW/SE). The grid
// grows from n×n to (n+1)×(n+1); all original marks outside the block keep
// their relative positions, shifted by the inserted row/column.
//
// Within the block the corner named by card stays empty, the diagonally
// opposite corner receives the UnderMark, and the remaining two corners
// receive OverMarks; this is the unique filling that preserves the
// one-mark-per-line invariant.
//
// Returns ErrNotAnOverMark when cell (i, j) does not hold an OverMark.
// Indices must lie in [0, n); out-of-range access panics (caller responsibility).
// Complexity: O(n²).
func (d *Diagram) Stabilize(card Cardinality, i, j int) error {
	if d.data[i][j] != OverMark {
		return ErrNotAnOverMark
	}

	newRow := i + 1 // below for NW/NE
	if card == SW || card == SE {
		newRow = i // above
	}
	newCol := j + 1 // right for NW/SW
	if card == NE || card == SE {
		newCol = j // left
	}

	grown := d.n + 1
	data := make([][]Marker, 0, grown)
	for r := 0; r < d.n; r++ {
		if r == newRow {
			data = append(data, make([]Marker, grown))
		}
		row := make([]Marker, 0, grown)
		row = append(row, d.data[r][:newCol]...)
		row = append(row, Empty)
		row = append(row, d.data[r][newCol:]...)
		data = append(data, row)
	}
	if newRow == d.n {
		data = append(data, make([]Marker, grown))
	}

	// The block always spans rows {i, i+1} × cols {j, j+1} of the grown grid,
	// regardless of which side the new row and column were inserted on.
	data[i][j], data[i][j+1] = Empty, Empty
	data[i+1][j], data[i+1][j+1] = Empty, Empty
	switch card {
	case NW:
		data[i][j+1], data[i+1][j], data[i+1][j+1] = OverMark, OverMark, UnderMark
	case NE:
		data[i][j], data[i+1][j+1], data[i+1][j] = OverMark, OverMark, UnderMark
	case SW:
		data[i][j], data[i+1][j+1], data[i][j+1] = OverMark, OverMark, UnderMark
	case SE:
		data[i][j+1], data[i+1][j], data[i][j] = OverMark, OverMark, UnderMark
	}

	d.n = grown
	d.data = data

	return nil
}
