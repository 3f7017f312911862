// Package griddiagram models knots as square grid diagrams and applies
// Cromwell moves to them.
//
// What:
//
//   - Diagram wraps a validated n×n matrix of cell markers (' ', 'x', 'o')
//     in which every row and column holds exactly one OverMark and one
//     UnderMark.
//   - Cromwell moves mutate the diagram in place without changing the
//     underlying knot type: Translation (cyclic line rotation),
//     Commutation (adjacent line exchange), Stabilization (n → n+1).
//   - FromCSV/FromCSVFile load diagrams from external tabular files.
//
// Why:
//
//   - Grid diagrams are a fully combinatorial knot encoding: every knot has
//     one, and two diagrams encode the same knot exactly when they are
//     connected by Cromwell moves.
//   - The validated diagram is the sole input to circuit tracing and curve
//     building further down the pipeline.
//
// Complexity:
//
//   - FromMatrix / FromCSV: O(n²) time and memory.
//   - Translate:            O(n) for rows, O(n²) for columns.
//   - Commute:              O(n).
//   - Stabilize:            O(n²) (rebuilds the grown grid).
//
// Errors:
//
//   - ErrEmptyDiagram: input has no rows or no columns.
//   - ErrNotSquare: row and column counts differ.
//   - ErrInvalidMarking: some row or column lacks exactly one 'x' and one 'o'.
//   - ErrNoAdjacentLine: Commutation requested at the last line index.
//   - ErrInterleavedLines: Commutation would change the knot type; rejected.
//   - ErrNotAnOverMark: Stabilization requested at a non-'x' cell.
//   - ErrBadCell: CSV field is not ' ', 'x' or 'o'.
//
// Destabilization is not implemented: there is no validated rule for
// selecting which 2×2 block qualifies for removal.
package griddiagram
