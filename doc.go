// Package gridknot turns grid diagrams of knots into relaxed 3D curves.
//
// 🚀 What is gridknot?
//
//	A pipeline from combinatorial knot presentations to geometry:
//		• Grid diagrams: n×n markings with the Cromwell moves
//		  (translation, commutation, stabilization)
//		• Circuit tracing: the closed walk through the markings,
//		  with crossings resolved into over/under strands
//		• Curve building: an embedded 3D polyline with lifted
//		  over-strands and uniform refinement
//		• Relaxation: a particle system that shortens the curve
//		  while repulsion keeps strands apart
//
// ✨ Why choose gridknot?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – the same diagram always yields the same curve
//   - Extensible – every stage is a plain value you can inspect or replace
//
// Under the hood, everything is organized under four subpackages:
//
//	griddiagram/ — the Diagram type, CSV loading & the Cromwell moves
//	circuit/     — Trace: diagram → closed walk with resolved crossings
//	curve/       — Polyline & Segment geometry, FromCircuit, refinement
//	knot/        — the relaxation engine: Relax, Reset, MinClearance
//
// A typical session:
//
//	d, _ := griddiagram.FromCSVFile("trefoil.csv")
//	c := circuit.Trace(d)
//	k, _ := knot.New(curve.FromCircuit(c, curve.DefaultBuildOptions()), knot.DefaultOptions())
//	for i := 0; i < 1000; i++ {
//		k.Relax()
//	}
//
// See cmd/knotsim for a live terminal front end.
package gridknot
