// Package curve provides the 3D polyline geometry of an embedded knot.
package curve

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// eps guards divisions in closest-approach computations against
// near-parallel degeneracy.
const eps = 1e-8

// Segment is a straight line segment between two points.
type Segment struct {
	A, B r3.Vec
}

// Length returns the scalar length of the segment.
func (s Segment) Length() float64 {
	return r3.Norm(r3.Sub(s.B, s.A))
}

// Midpoint returns the point halfway between the segment's endpoints.
func (s Segment) Midpoint() r3.Vec {
	return r3.Scale(0.5, r3.Add(s.A, s.B))
}

// PointAt returns the point at parameter t along the segment, where 0
// corresponds to A and 1 to B. t is expected to lie in [0, 1].
func (s Segment) PointAt(t float64) r3.Vec {
	return r3.Add(s.A, r3.Scale(t, r3.Sub(s.B, s.A)))
}

// Distance returns the vector between the two closest points of s and
// other; its norm is the shortest distance between the segments.
//
// Reference: http://geomalgorithms.com/a07-_distance.html#dist3D_Segment_to_Segment
func (s Segment) Distance(other Segment) r3.Vec {
	u := r3.Sub(s.B, s.A)
	v := r3.Sub(other.B, other.A)
	w := r3.Sub(s.A, other.A)
	a := r3.Dot(u, u) // always >= 0
	b := r3.Dot(u, v)
	c := r3.Dot(v, v) // always >= 0
	d := r3.Dot(u, w)
	e := r3.Dot(v, w)
	denom := a*c - b*b // always >= 0

	// sc = sN/sD and tc = tN/tD are the line parameters of the closest points.
	var sN, tN float64
	sD, tD := denom, denom

	if denom < eps {
		// Nearly parallel: pin to A on s and solve for other.
		sN, sD = 0, 1
		tN, tD = e, c
	} else {
		sN = b*e - c*d
		tN = a*e - b*d
		if sN < 0 {
			sN = 0
			tN, tD = e, c
		} else if sN > sD {
			sN = sD
			tN, tD = e+b, c
		}
	}

	if tN < 0 {
		tN = 0
		switch {
		case -d < 0:
			sN = 0
		case -d > a:
			sN = sD
		default:
			sN, sD = -d, a
		}
	} else if tN > tD {
		tN = tD
		switch {
		case -d+b < 0:
			sN = 0
		case -d+b > a:
			sN = sD
		default:
			sN, sD = -d+b, a
		}
	}

	var sc, tc float64
	if absf(sN) >= eps {
		sc = sN / sD
	}
	if absf(tN) >= eps {
		tc = tN / tD
	}

	return r3.Add(w, r3.Sub(r3.Scale(sc, u), r3.Scale(tc, v)))
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
