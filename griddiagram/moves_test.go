package griddiagram_test

import (
	"testing"

	"github.com/katalvlaran/gridknot/griddiagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// revalidate asserts that the mutated diagram still satisfies the
// one-mark-per-line invariant by pushing it back through FromMatrix.
func revalidate(t *testing.T, d *griddiagram.Diagram) {
	t.Helper()
	_, err := griddiagram.FromMatrix(d.Matrix())
	require.NoError(t, err, "move broke the one-mark-per-line invariant:\n%s", d)
}

//----------------------------------------------------------------------------//
// Translation
//----------------------------------------------------------------------------//

// TestTranslate_Bijection verifies that opposite translations cancel exactly.
func TestTranslate_Bijection(t *testing.T) {
	pairs := []struct {
		name     string
		one, two griddiagram.Direction
	}{
		{"UpDown", griddiagram.Up, griddiagram.Down},
		{"DownUp", griddiagram.Down, griddiagram.Up},
		{"LeftRight", griddiagram.Left, griddiagram.Right},
		{"RightLeft", griddiagram.Right, griddiagram.Left},
	}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			d := trefoil(t)
			want := d.String()
			d.Translate(tc.one).Translate(tc.two)
			if got := d.String(); got != want {
				t.Errorf("round-trip changed the grid:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

// TestTranslate_Shifts checks one step of each direction on the trefoil.
func TestTranslate_Shifts(t *testing.T) {
	d := trefoil(t)
	d.Translate(griddiagram.Up)
	assert.Equal(t, " x o \n  x o\no  x \n o  x\nx o  ", d.String())
	revalidate(t, d)

	d = trefoil(t)
	d.Translate(griddiagram.Left)
	assert.Equal(t, " o  x\nx o  \n x o \n  x o\no  x ", d.String())
	revalidate(t, d)
}

//----------------------------------------------------------------------------//
// Commutation
//----------------------------------------------------------------------------//

// TestCommute_NoAdjacentLine rejects exchanges at the last line index.
func TestCommute_NoAdjacentLine(t *testing.T) {
	d := unknot(t)
	assert.ErrorIs(t, d.Commute(griddiagram.Rows, 1), griddiagram.ErrNoAdjacentLine)
	assert.ErrorIs(t, d.Commute(griddiagram.Columns, 1), griddiagram.ErrNoAdjacentLine)
	assert.ErrorIs(t, d.Commute(griddiagram.Rows, -1), griddiagram.ErrNoAdjacentLine)
}

// TestCommute_Interleaved rejects the move and leaves the grid untouched.
// Trefoil columns 0 and 1 span rows [0,3] and [1,4]: interleaved.
func TestCommute_Interleaved(t *testing.T) {
	d := trefoil(t)
	before := d.String()

	err := d.Commute(griddiagram.Columns, 0)
	assert.ErrorIs(t, err, griddiagram.ErrInterleavedLines)
	assert.Equal(t, before, d.String(), "failed move must not mutate the grid")
}

// TestCommute_Disjoint swaps two rows whose mark intervals are disjoint.
func TestCommute_Disjoint(t *testing.T) {
	d := mustDiagram(t,
		"xo  ",
		"  xo",
		"ox  ",
		"  ox",
	)
	require.NoError(t, d.Commute(griddiagram.Rows, 0))
	assert.Equal(t, "  xo\nxo  \nox  \n  ox", d.String())
	revalidate(t, d)
}

// TestCommute_Nested swaps two columns whose mark intervals coincide
// (equal intervals count as nested, not interleaved).
func TestCommute_Nested(t *testing.T) {
	d := mustDiagram(t,
		"xo  ",
		"  xo",
		"ox  ",
		"  ox",
	)
	require.NoError(t, d.Commute(griddiagram.Columns, 0))
	assert.Equal(t, "ox  \n  xo\nxo  \n  ox", d.String())
	revalidate(t, d)
}

//----------------------------------------------------------------------------//
// Stabilization
//----------------------------------------------------------------------------//

// TestStabilize_NotAnOverMark rejects stabilization at blank and 'o' cells.
func TestStabilize_NotAnOverMark(t *testing.T) {
	d := unknot(t)
	before := d.String()

	assert.ErrorIs(t, d.Stabilize(griddiagram.NW, 0, 1), griddiagram.ErrNotAnOverMark)
	assert.Equal(t, before, d.String())
	assert.Equal(t, 2, d.Resolution())
}

// TestStabilize_Cardinalities applies each variant at the unknot's (0,0)
// OverMark and checks the exact resulting grid.
func TestStabilize_Cardinalities(t *testing.T) {
	cases := []struct {
		name string
		card griddiagram.Cardinality
		want string
	}{
		{"NW", griddiagram.NW, " xo\nxo \no x"},
		{"NE", griddiagram.NE, "x o\nox \n ox"},
		{"SW", griddiagram.SW, "xo \n xo\no x"},
		{"SE", griddiagram.SE, "ox \nx o\n ox"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := unknot(t)
			require.NoError(t, d.Stabilize(tc.card, 0, 0))
			assert.Equal(t, 3, d.Resolution(), "stabilization must grow n by exactly one")
			assert.Equal(t, tc.want, d.String())
			revalidate(t, d)
		})
	}
}

// TestStabilize_PreservesOutsideMarks grows the trefoil at its center
// OverMark and checks that marks outside the 2×2 block only shift.
func TestStabilize_PreservesOutsideMarks(t *testing.T) {
	d := trefoil(t)
	require.NoError(t, d.Stabilize(griddiagram.NW, 2, 2))
	require.Equal(t, 6, d.Resolution())
	revalidate(t, d)

	// Marks above/left of the insertion keep their coordinates.
	assert.Equal(t, griddiagram.OverMark, d.At(0, 0))
	assert.Equal(t, griddiagram.UnderMark, d.At(0, 2))
	// Marks below/right shift by the inserted row and column.
	assert.Equal(t, griddiagram.OverMark, d.At(5, 5))
	assert.Equal(t, griddiagram.UnderMark, d.At(5, 1))
	assert.Equal(t, griddiagram.UnderMark, d.At(4, 0))
	// The 2×2 block replaces the original center OverMark.
	assert.Equal(t, griddiagram.Empty, d.At(2, 2))
	assert.Equal(t, griddiagram.OverMark, d.At(2, 3))
	assert.Equal(t, griddiagram.OverMark, d.At(3, 2))
	assert.Equal(t, griddiagram.UnderMark, d.At(3, 3))
}

//----------------------------------------------------------------------------//
// Move dispatch
//----------------------------------------------------------------------------//

// TestApply routes tagged move values to the named methods and supports chaining.
func TestApply(t *testing.T) {
	d := trefoil(t)
	want := trefoil(t).Translate(griddiagram.Up).String()

	got, err := d.Apply(griddiagram.Translation{Dir: griddiagram.Up})
	require.NoError(t, err)
	assert.Same(t, d, got, "Apply must return the mutated diagram for chaining")
	assert.Equal(t, want, d.String())

	_, err = d.Apply(griddiagram.Commutation{Axis: griddiagram.Rows, Start: d.Resolution() - 1})
	assert.ErrorIs(t, err, griddiagram.ErrNoAdjacentLine)

	// After the Up translation, (0, 0) is blank.
	_, err = d.Apply(griddiagram.Stabilization{Card: griddiagram.SE, I: 0, J: 0})
	assert.ErrorIs(t, err, griddiagram.ErrNotAnOverMark)
}
