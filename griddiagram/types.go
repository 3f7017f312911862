// Package griddiagram defines core types and sentinel errors
// for the griddiagram subpackage of github.com/katalvlaran/gridknot.
package griddiagram

import (
	"errors"
)

// Sentinel errors for griddiagram operations.
var (
	// ErrEmptyDiagram indicates input has no rows or no columns.
	ErrEmptyDiagram = errors.New("griddiagram: input must have at least one row and one column")
	// ErrNotSquare indicates row and column counts differ.
	ErrNotSquare = errors.New("griddiagram: grid must be square")
	// ErrInvalidMarking indicates some row or column does not contain
	// exactly one OverMark and one UnderMark.
	ErrInvalidMarking = errors.New("griddiagram: every row and column must hold exactly one OverMark and one UnderMark")
	// ErrNoAdjacentLine indicates a Commutation was requested at the last line index.
	ErrNoAdjacentLine = errors.New("griddiagram: no adjacent line to exchange with")
	// ErrInterleavedLines indicates a Commutation of interleaved lines,
	// which would change the knot type, was rejected.
	ErrInterleavedLines = errors.New("griddiagram: lines are interleaved")
	// ErrNotAnOverMark indicates a Stabilization was requested at a cell
	// that does not hold an OverMark.
	ErrNotAnOverMark = errors.New("griddiagram: stabilization requires an OverMark cell")
	// ErrBadCell indicates an input cell holds something other than ' ', 'x' or 'o'.
	ErrBadCell = errors.New("griddiagram: cell must be ' ', 'x' or 'o'")
)

// Marker is the content of a single grid cell.
type Marker uint8

const (
	// Empty marks a blank cell.
	Empty Marker = iota
	// OverMark marks an 'x' cell: the start of a column edge and the end of a row edge.
	OverMark
	// UnderMark marks an 'o' cell: the end of a column edge and the start of a row edge.
	UnderMark
)

// Rune returns the canonical single-character form of m: ' ', 'x' or 'o'.
func (m Marker) Rune() rune {
	switch m {
	case OverMark:
		return 'x'
	case UnderMark:
		return 'o'
	default:
		return ' '
	}
}

// ParseMarker converts a single cell character into a Marker.
// Both upper- and lowercase forms are accepted.
// Returns ErrBadCell for any other rune.
func ParseMarker(r rune) (Marker, error) {
	switch r {
	case ' ':
		return Empty, nil
	case 'x', 'X':
		return OverMark, nil
	case 'o', 'O':
		return UnderMark, nil
	default:
		return Empty, ErrBadCell
	}
}

// Direction selects the cyclic shift applied by a Translation move.
type Direction int

const (
	// Up rotates all rows up by one; the top row wraps to the bottom.
	Up Direction = iota
	// Down rotates all rows down by one; the bottom row wraps to the top.
	Down
	// Left rotates all columns left by one; the first column wraps to the end.
	Left
	// Right rotates all columns right by one; the last column wraps to the front.
	Right
)

// Axis selects whether a Commutation exchanges two rows or two columns.
type Axis int

const (
	// Rows exchanges the row at Start with the row below it.
	Rows Axis = iota
	// Columns exchanges the column at Start with the column to its right.
	Columns
)

// Cardinality names the corner of the 2×2 insertion block that stays empty
// during a Stabilization move. It also fixes where the new row and column
// are inserted: the new column goes right of the target for NW/SW and left
// for NE/SE; the new row goes below the target for NW/NE and above for SW/SE.
type Cardinality int

const (
	// NW stabilization: new column to the right, new row below.
	NW Cardinality = iota
	// NE stabilization: new column to the left, new row below.
	NE
	// SW stabilization: new column to the right, new row above.
	SW
	// SE stabilization: new column to the left, new row above.
	SE
)

// Move is a Cromwell move request. The three implemented variants are
// Translation, Commutation and Stabilization; apply them through
// (*Diagram).Apply or through the equivalent named methods.
//
// Destabilization is deliberately absent: there is no validated policy for
// selecting which 2×2 block qualifies for removal.
type Move interface {
	apply(d *Diagram) error
}

// Translation cyclically rotates all rows or all columns by one position.
// It always succeeds: it only permutes whole lines, so the one-mark-per-line
// invariant is preserved trivially.
type Translation struct {
	Dir Direction
}

func (t Translation) apply(d *Diagram) error {
	d.Translate(t.Dir)
	return nil
}

// Commutation exchanges the line at Start with the adjacent line at Start+1
// along Axis. Fails with ErrNoAdjacentLine when Start is the last index and
// with ErrInterleavedLines when the two lines' mark intervals interleave.
type Commutation struct {
	Axis  Axis
	Start int
}

func (c Commutation) apply(d *Diagram) error {
	return d.Commute(c.Axis, c.Start)
}

// Stabilization replaces the OverMark at (I, J) with a 2×2 block, inserting
// one new row and one new column and growing the resolution by one.
// Fails with ErrNotAnOverMark when cell (I, J) is not an OverMark.
type Stabilization struct {
	Card Cardinality
	I, J int
}

func (s Stabilization) apply(d *Diagram) error {
	return d.Stabilize(s.Card, s.I, s.J)
}
