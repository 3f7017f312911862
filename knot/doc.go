// Package knot is the physical model: it relaxes an embedded knot curve
// toward a lower-energy configuration with a generalized particle system.
//
// What:
//
//   - Knot seeds per-vertex position/velocity/acceleration state from a
//     curve.Polyline and keeps the original positions as anchors.
//   - Relax applies one step of the force law: neighbor attraction
//     H·r^(1+β), all-pairs repulsion K·r^−(2+α), damped integration and a
//     per-step displacement clamp, then writes positions back into the
//     owned polyline.
//   - Reset restores the anchor shape exactly and zeroes all motion state.
//   - MinClearance measures the closest approach of non-adjacent segments,
//     a diagnostic for hosts watching for strand pass-throughs.
//
// Why:
//
//   - The polyline coming out of curve.FromCircuit is a rectilinear grid
//     walk; relaxation bends it into a smooth, well-spread embedding that
//     renders as a recognizable knot.
//
// Complexity:
//
//   - Relax: O(V²) all-pairs per step — acceptable for the vertex counts
//     grid refinement produces, and a known scaling limit beyond them.
//   - Reset: O(V). MinClearance: O(V²).
//
// Options:
//
//   - Options carries the force constants (Attraction/AttractionExp,
//     Repulsion/RepulsionExp), Mass, Damping, MaxStep and Epsilon;
//     DefaultOptions gives the documented defaults.
//
// Errors:
//
//   - ErrTooFewVertices: the curve cannot form a closed loop.
//   - ErrBadOption: an option field holds a meaningless value.
//
// Self-intersection prevention (segment-proximity rejection) is explicitly
// not part of the force law; MinClearance exposes the measurement instead.
package knot
