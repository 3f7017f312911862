// Package knot relaxes an embedded knot curve toward a lower-energy shape
// with a generalized particle system.
package knot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/gridknot/curve"
)

// Knot owns a polyline plus per-vertex position, velocity and acceleration
// state, seeded from the polyline at construction. The vertex count is
// fixed for the knot's lifetime; Relax advances all state arrays together
// and Reset restores the original (anchor) shape exactly.
type Knot struct {
	path *curve.Polyline
	opts Options

	// Flat per-vertex arrays, always of equal length. Keeping them
	// contiguous keeps the O(V²) force loop cache-friendly.
	pos     []r3.Vec
	vel     []r3.Vec
	acc     []r3.Vec
	anchors []r3.Vec
}

// New constructs a relaxation engine over path. The polyline is adopted as
// the knot's owned curve: Relax writes updated positions back into it every
// step. Returns ErrTooFewVertices for curves that cannot form a closed loop
// and ErrBadOption (wrapped with the field) for meaningless constants.
func New(path *curve.Polyline, opts Options) (*Knot, error) {
	if path == nil || path.Len() < 3 {
		return nil, ErrTooFewVertices
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	verts := path.Vertices()
	k := &Knot{
		path:    path,
		opts:    opts,
		pos:     verts,
		vel:     make([]r3.Vec, len(verts)),
		acc:     make([]r3.Vec, len(verts)),
		anchors: make([]r3.Vec, len(verts)),
	}
	copy(k.anchors, verts)

	return k, nil
}

// wrapOption attaches the offending field and value to ErrBadOption.
func wrapOption(field string, value float64) error {
	return fmt.Errorf("%w: %s=%v", ErrBadOption, field, value)
}

// Len returns the fixed vertex count.
func (k *Knot) Len() int {
	return len(k.pos)
}

// Path returns the owned polyline; its vertex positions track the current
// relaxation state. Hosts read it once per frame for rendering.
func (k *Knot) Path() *curve.Polyline {
	return k.path
}

// Positions returns a copy of the current vertex positions.
func (k *Knot) Positions() []r3.Vec {
	out := make([]r3.Vec, len(k.pos))
	copy(out, k.pos)

	return out
}

// Relax advances the particle system by one step. For every vertex, forces
// from all other vertices are accumulated against the current (frozen)
// positions: topological neighbors attract along the unit vector toward
// them, everything else repels. The net force feeds acceleration, velocity
// integrates with damping, per-step displacement is clamped to MaxStep, and
// the updated positions are written back into the owned polyline.
//
// Relax has no notion of frames or wall time; it is a pure state transition
// and is safe to call any number of times in sequence.
// Complexity: O(V²).
func (k *Knot) Relax() {
	n := len(k.pos)
	o := k.opts

	for i := 0; i < n; i++ {
		left, right := k.path.NeighborsWrapped(i)
		var force r3.Vec
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			toward := r3.Sub(k.pos[j], k.pos[i])
			dist := r3.Norm(toward)
			if dist < o.Epsilon {
				continue
			}
			unit := r3.Scale(1/dist, toward)
			if j == left || j == right {
				force = r3.Add(force, r3.Scale(o.Attraction*math.Pow(dist, 1+o.AttractionExp), unit))
			} else {
				force = r3.Sub(force, r3.Scale(o.Repulsion*math.Pow(dist, -(2+o.RepulsionExp)), unit))
			}
		}
		k.acc[i] = r3.Add(k.acc[i], r3.Scale(1/o.Mass, force))
	}

	for i := 0; i < n; i++ {
		v := r3.Scale(o.Damping, r3.Add(k.vel[i], k.acc[i]))
		k.acc[i] = r3.Vec{}
		if speed := r3.Norm(v); speed > o.MaxStep {
			v = r3.Scale(o.MaxStep/speed, v)
		}
		k.vel[i] = v
		k.pos[i] = r3.Add(k.pos[i], v)
	}

	k.path.SetVertices(k.pos)
}

// Reset restores every position to its anchor, zeroes velocity and
// acceleration, and writes the anchors back into the polyline. It is exact
// restoration, not undo: no intermediate states are kept.
func (k *Knot) Reset() {
	copy(k.pos, k.anchors)
	for i := range k.vel {
		k.vel[i] = r3.Vec{}
		k.acc[i] = r3.Vec{}
	}
	k.path.SetVertices(k.anchors)
}

// MinClearance returns the smallest distance between any two non-adjacent
// segments of the current closed curve, including the wrap-around segment.
// The engine does not act on this value — self-intersection prevention is
// deliberately not part of the force law — but hosts can watch it to detect
// strand pass-throughs that would change the knot type.
// Complexity: O(V²).
func (k *Knot) MinClearance() float64 {
	n := len(k.pos)
	segment := func(i int) curve.Segment {
		return curve.Segment{A: k.pos[i], B: k.pos[(i+1)%n]}
	}

	min := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent across the wrap
			}
			if d := r3.Norm(segment(i).Distance(segment(j))); d < min {
				min = d
			}
		}
	}

	return min
}
