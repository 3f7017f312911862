package curve

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Polyline is an ordered sequence of 3D points approximating a knot's
// embedded curve. It is stored as a simple open sequence but treated as a
// closed loop wherever topology matters: NeighborsWrapped connects the
// first and last vertices.
type Polyline struct {
	verts []r3.Vec
}

// NewPolyline returns an empty polyline.
func NewPolyline() *Polyline {
	return &Polyline{}
}

// Push appends vertex v to the end of the polyline.
func (p *Polyline) Push(v r3.Vec) {
	p.verts = append(p.verts, v)
}

// Pop removes the last vertex, if any.
func (p *Polyline) Pop() {
	if len(p.verts) > 0 {
		p.verts = p.verts[:len(p.verts)-1]
	}
}

// Len returns the number of vertices.
func (p *Polyline) Len() int {
	return len(p.verts)
}

// At returns the vertex at index i.
// i must lie in [0, Len()); out-of-range access panics (caller responsibility).
func (p *Polyline) At(i int) r3.Vec {
	return p.verts[i]
}

// Vertices returns a copy of the vertex sequence.
func (p *Polyline) Vertices() []r3.Vec {
	out := make([]r3.Vec, len(p.verts))
	copy(out, p.verts)

	return out
}

// SetVertices replaces the vertex sequence with a copy of vs.
func (p *Polyline) SetVertices(vs []r3.Vec) {
	p.verts = make([]r3.Vec, len(vs))
	copy(p.verts, vs)
}

// NeighborsWrapped returns the indices of the left and right topological
// neighbors of vertex i, treating the polyline as a closed loop: the left
// neighbor of vertex 0 is the last vertex and the right neighbor of the
// last vertex is vertex 0. Tube-extrusion renderers need exactly this pair
// per vertex to build a consistent cross-sectional frame.
func (p *Polyline) NeighborsWrapped(i int) (left, right int) {
	last := len(p.verts) - 1
	left = i - 1
	if i == 0 {
		left = last
	}
	right = i + 1
	if i == last {
		right = 0
	}

	return left, right
}

// SegmentAt returns the segment between vertex i and vertex i+1.
func (p *Polyline) SegmentAt(i int) Segment {
	return Segment{A: p.verts[i], B: p.verts[i+1]}
}

// Length returns the total arc length of the open vertex sequence.
func (p *Polyline) Length() float64 {
	var total float64
	for i := 0; i+1 < len(p.verts); i++ {
		total += p.SegmentAt(i).Length()
	}

	return total
}

// AverageSegmentLength returns the mean segment length, or 0 for fewer than
// two vertices.
func (p *Polyline) AverageSegmentLength() float64 {
	if len(p.verts) < 2 {
		return 0
	}

	return p.Length() / float64(len(p.verts)-1)
}

// PointAt returns the point at fraction t of the polyline's arc length,
// where 0 is the first vertex and 1 the last. t is expected to lie in [0, 1].
func (p *Polyline) PointAt(t float64) r3.Vec {
	if len(p.verts) == 0 {
		return r3.Vec{}
	}

	desired := p.Length() * t
	var traversed float64
	for i := 0; i+1 < len(p.verts); i++ {
		seg := p.SegmentAt(i)
		length := seg.Length()
		traversed += length
		if traversed >= desired {
			along := traversed - desired

			return seg.PointAt((length - along) / length)
		}
	}

	// Accumulation error can leave traversed just short of desired at t=1;
	// the walk then ends at the last vertex.
	return p.verts[len(p.verts)-1]
}

// Refine subdivides every segment longer than minSegment: a segment of
// length L gains floor(L/minSegment)-1 equally spaced interior points, with
// the original endpoints always retained. The result is a new polyline in
// which no segment exceeds roughly minSegment, giving the relaxation engine
// enough degrees of freedom to bend smoothly.
//
// A non-positive minSegment returns an unrefined copy.
//
// Reference: https://github.com/openframeworks/openFrameworks/blob/master/libs/openFrameworks/graphics/ofPolyline.inl#L504
func (p *Polyline) Refine(minSegment float64) *Polyline {
	refined := NewPolyline()
	if len(p.verts) == 0 {
		return refined
	}

	refined.Push(p.verts[0])
	if minSegment <= 0 {
		for _, v := range p.verts[1:] {
			refined.Push(v)
		}

		return refined
	}

	for i := 0; i+1 < len(p.verts); i++ {
		seg := p.SegmentAt(i)
		subdivisions := int(seg.Length() / minSegment)
		for division := 1; division < subdivisions; division++ {
			refined.Push(seg.PointAt(float64(division) / float64(subdivisions)))
		}
		refined.Push(seg.B)
	}

	return refined
}
