// Package griddiagram models mathematical knots as square grid diagrams:
// n×n grids in which every row and every column holds exactly one OverMark
// ('x') and one UnderMark ('o'). Columns connect x→o, rows connect o→x, and
// rows pass under columns at every crossing, so a valid diagram encodes a
// knot shadow together with its over/under information.
package griddiagram

import (
	"strings"
)

// Diagram is a validated n×n grid of cell markers. It is constructed once
// from an external matrix and then mutated in place by Cromwell moves; no
// snapshots of previous states are retained.
type Diagram struct {
	n    int
	data [][]Marker
}

// FromMatrix constructs a Diagram from a square matrix of markers.
// The input is deep-copied to ensure exclusive ownership.
// Returns ErrEmptyDiagram when cells has no rows or no columns,
// ErrNotSquare when any row length differs from the row count, and
// ErrInvalidMarking when some row or column does not hold exactly one
// OverMark and one UnderMark.
// Complexity: O(n²) time and memory.
func FromMatrix(cells [][]Marker) (*Diagram, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyDiagram
	}
	n := len(cells)
	for _, row := range cells {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}
	data := make([][]Marker, n)
	for i := range cells {
		data[i] = make([]Marker, n)
		copy(data[i], cells[i])
	}
	d := &Diagram{n: n, data: data}
	if !d.valid() {
		return nil, ErrInvalidMarking
	}

	return d, nil
}

// valid reports whether every row and column holds exactly one OverMark and
// one UnderMark. Complexity: O(n²).
func (d *Diagram) valid() bool {
	for k := 0; k < d.n; k++ {
		if !oneOfEach(d.Row(k)) || !oneOfEach(d.Column(k)) {
			return false
		}
	}

	return true
}

// oneOfEach reports whether line holds exactly one OverMark and one UnderMark.
func oneOfEach(line []Marker) bool {
	var over, under int
	for _, m := range line {
		switch m {
		case OverMark:
			over++
		case UnderMark:
			under++
		}
	}

	return over == 1 && under == 1
}

// Resolution returns n, the width and height of the grid. It changes only
// via Stabilization (n → n+1).
func (d *Diagram) Resolution() int {
	return d.n
}

// At returns the marker at row i, column j.
// Indices must lie in [0, n); out-of-range access panics (caller responsibility).
func (d *Diagram) At(i, j int) Marker {
	return d.data[i][j]
}

// Row returns a copy of the n markers along row i.
// i must lie in [0, n); out-of-range access panics (caller responsibility).
func (d *Diagram) Row(i int) []Marker {
	row := make([]Marker, d.n)
	copy(row, d.data[i])

	return row
}

// Column returns a copy of the n markers along column j.
// j must lie in [0, n); out-of-range access panics (caller responsibility).
func (d *Diagram) Column(j int) []Marker {
	col := make([]Marker, d.n)
	for i := range d.data {
		col[i] = d.data[i][j]
	}

	return col
}

// Matrix returns a deep copy of the underlying n×n marker grid.
func (d *Diagram) Matrix() [][]Marker {
	cells := make([][]Marker, d.n)
	for i := range d.data {
		cells[i] = make([]Marker, d.n)
		copy(cells[i], d.data[i])
	}

	return cells
}

// String renders the grid as n lines of ' ', 'x' and 'o' runes.
func (d *Diagram) String() string {
	var sb strings.Builder
	for i, row := range d.data {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, m := range row {
			sb.WriteRune(m.Rune())
		}
	}

	return sb.String()
}

// Apply dispatches a Cromwell move request and returns the diagram for
// chaining. On failure the diagram is left unchanged: every move performs
// all of its validity checks before mutating any cell.
func (d *Diagram) Apply(m Move) (*Diagram, error) {
	if err := m.apply(d); err != nil {
		return nil, err
	}

	return d, nil
}
