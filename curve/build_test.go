package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/gridknot/circuit"
	"github.com/katalvlaran/gridknot/curve"
	"github.com/katalvlaran/gridknot/griddiagram"
)

// traceRows builds a diagram from rune rows and traces it.
func traceRows(t *testing.T, rows ...string) *circuit.Circuit {
	t.Helper()
	cells := make([][]griddiagram.Marker, len(rows))
	for i, row := range rows {
		cells[i] = make([]griddiagram.Marker, 0, len(row))
		for _, r := range row {
			m, err := griddiagram.ParseMarker(r)
			require.NoError(t, err)
			cells[i] = append(cells[i], m)
		}
	}
	d, err := griddiagram.FromMatrix(cells)
	require.NoError(t, err)

	return circuit.Trace(d)
}

// TestFromCircuit_Unknot maps the 2×2 unknot without refinement: a unit
// square centered half a cell off the origin, all in the z=0 plane.
func TestFromCircuit_Unknot(t *testing.T) {
	c := traceRows(t, "xo", "ox")
	p := curve.FromCircuit(c, curve.BuildOptions{LiftHeight: 0.1})

	require.Equal(t, 4, p.Len(), "closing duplicate must be dropped")
	assert.Equal(t, r3.Vec{X: -1, Y: 1}, p.At(0))
	assert.Equal(t, r3.Vec{X: -1, Y: 0}, p.At(1))
	assert.Equal(t, r3.Vec{X: 0, Y: 0}, p.At(2))
	assert.Equal(t, r3.Vec{X: 0, Y: 1}, p.At(3))
}

// TestFromCircuit_TrefoilLifts keeps crossing vertices at the lift height
// and everything else in the plane.
func TestFromCircuit_TrefoilLifts(t *testing.T) {
	c := traceRows(t,
		"x o  ",
		" x o ",
		"  x o",
		"o  x ",
		" o  x",
	)
	p := curve.FromCircuit(c, curve.BuildOptions{LiftHeight: 0.25})

	require.Equal(t, 13, p.Len(), "11 base + 3 crossings - closing duplicate")
	var raised int
	for i := 0; i < p.Len(); i++ {
		switch z := p.At(i).Z; z {
		case 0.25:
			raised++
		case 0:
		default:
			t.Fatalf("vertex %d has unexpected z=%v", i, z)
		}
	}
	assert.Equal(t, 3, raised, "one raised vertex per crossing")
}

// TestFromCircuit_Refined verifies the closing edge is refined like any
// other before the duplicate endpoint is dropped.
func TestFromCircuit_Refined(t *testing.T) {
	c := traceRows(t, "xo", "ox")
	p := curve.FromCircuit(c, curve.BuildOptions{MinSegment: 0.25})

	// Four unit edges at minSegment 0.25: every edge refines into 4
	// sub-segments, giving 16 distinct vertices around the loop.
	assert.Equal(t, 16, p.Len())
	for i := 0; i+1 < p.Len(); i++ {
		assert.LessOrEqual(t, p.SegmentAt(i).Length(), 0.25+1e-12)
	}
	// The wrap-around edge, too.
	closing := curve.Segment{A: p.At(p.Len() - 1), B: p.At(0)}
	assert.LessOrEqual(t, closing.Length(), 0.25+1e-12)

	assert.Equal(t, r3.Vec{X: -1, Y: 1}, p.At(0), "original endpoints survive refinement")
}

// TestDefaultBuildOptions pins the documented defaults.
func TestDefaultBuildOptions(t *testing.T) {
	opts := curve.DefaultBuildOptions()
	assert.Equal(t, 0.1, opts.LiftHeight)
	assert.Equal(t, 0.25, opts.MinSegment)
}
