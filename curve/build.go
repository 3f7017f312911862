package curve

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/gridknot/circuit"
)

// BuildOptions tunes the mapping from a resolved circuit to a polyline.
type BuildOptions struct {
	// LiftHeight is the z offset applied to over-strand (lifted) vertices.
	// It should be coordinated with the host renderer's tube radius.
	LiftHeight float64
	// MinSegment is the refinement threshold handed to Polyline.Refine;
	// a non-positive value skips refinement entirely.
	MinSegment float64
}

// DefaultBuildOptions returns a BuildOptions with default settings:
// LiftHeight=0.1, MinSegment=0.25 (a quarter of a grid cell).
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		LiftHeight: 0.1,
		MinSegment: 0.25,
	}
}

// FromCircuit maps a resolved circuit into a closed 3D polyline. Grid cells
// are unit-sized with the grid centered at the origin: a node at (row i,
// column j) of an n×n diagram lands at x = j − n/2, y = n − i − n/2, with
// z = LiftHeight for lifted (over-strand) nodes and 0 otherwise.
//
// The circuit's closing repeat of its starting index is kept through
// refinement, so the closing edge subdivides like every other, and is then
// dropped: the returned polyline holds distinct vertices only and closes
// via wrapped neighbors.
// Complexity: O(V) over the refined vertex count.
func FromCircuit(c *circuit.Circuit, opts BuildOptions) *Polyline {
	n := c.Resolution()
	size := float64(n)

	p := NewPolyline()
	for _, idx := range c.Nodes() {
		i, j := circuit.Coords(idx, n)
		v := r3.Vec{
			X: float64(j) - size/2,
			Y: size - float64(i) - size/2,
		}
		if c.Lifted(idx) {
			v.Z = opts.LiftHeight
		}
		p.Push(v)
	}

	if opts.MinSegment > 0 {
		p = p.Refine(opts.MinSegment)
	}
	p.Pop() // drop the closing duplicate; the loop closes by wrapping

	return p
}
