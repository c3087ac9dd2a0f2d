// Package layout computes normalized node positions for graphs whose
// documents leave some nodes unplaced.
//
// # Engines
//
// Every engine implements [Engine] and returns positions in [0,1]×[0,1],
// ready for graph.Graph.ApplyPositions:
//
//   - none:  places nothing; unplaced nodes stay at the origin
//   - grid:  a deterministic row-major grid in node order
//   - eades: force-directed springs (gonum's EadesR2), seeded
//   - neato, fdp, circo: Graphviz layouts via go-graphviz
//
// Use [New] to construct an engine by name:
//
//	eng, err := layout.New("eades", layout.Options{Seed: 42})
//	pos, err := eng.Positions(ctx, ids, edges)
//
// Engines that produce coordinates in their own units pass them through
// [Normalize], which fits them into the unit square with a margin.
package layout
