// Package circuit extracts the closed combinatorial circuit of a grid
// diagram and resolves its crossings.
//
// What:
//
//   - Abs/Coords map between (row, column) pairs and absolute grid indices
//     in [0, n²), the bookkeeping currency of the walk.
//   - Trace walks a validated griddiagram.Diagram into its unique closed
//     alternating circuit (column edges x→o, row edges o→x) of exactly 2n+1
//     entries, then splices one vertex into the walk for every crossing and
//     records it in the lifted set.
//
// Why:
//
//   - The resolved circuit plus the lifted set is everything the curve
//     builder needs to produce an embedded 3D polyline: positions come from
//     the grid coordinates, the out-of-plane lift from the lifted set.
//
// Complexity:
//
//   - Trace: O(n²) — the walk scans one line per step, and crossing
//     resolution compares every column edge against every row edge.
//
// Failure modes:
//
//   - Trace takes no error path; malformed grids cannot pass griddiagram
//     validation. It panics on one class of valid-per-line input the
//     invariant cannot exclude: diagrams whose marks split into several
//     disjoint loops (multi-component links), whose walk closes short of
//     2n+1 entries. Knots are single components, so callers supplying link
//     diagrams get a loud failure instead of a wrong knot.
package circuit
