// Package curve turns resolved circuits into dense 3D polylines and
// provides the segment/polyline geometry the rest of the pipeline leans on.
//
// What:
//
//   - Segment: length, midpoint, parametric points, and closest-approach
//     vectors between two segments.
//   - Polyline: an ordered vertex sequence with arc-length utilities
//     (Length, PointAt, AverageSegmentLength), wrapped neighbor lookup for
//     closed-loop consumers, and arc-length refinement.
//   - FromCircuit: maps a circuit's absolute indices onto a unit-cell grid
//     centered at the origin, lifting over-strand vertices along z, then
//     refines the result.
//
// Why:
//
//   - The relaxation engine needs a polyline dense enough to bend smoothly;
//     refinement caps segment length so the particle system has the degrees
//     of freedom to do so.
//   - Hosts extruding a render tube need, per vertex, its two topological
//     neighbors — NeighborsWrapped supplies exactly that contract.
//
// Complexity:
//
//   - Segment operations: O(1). Polyline Length/PointAt/Refine: O(V).
//   - FromCircuit: O(V) over the refined vertex count.
//
// Options:
//
//   - BuildOptions.LiftHeight: z offset for over-strand vertices (default 0.1).
//   - BuildOptions.MinSegment: refinement threshold (default 0.25; ≤0 skips
//     refinement).
package curve
