// Package render rasterizes graph shapes onto a dot surface.
//
// # Overview
//
// This package turns pixel-space boxes and segments into individual dots and
// text runs. It knows nothing about graphs, normalized coordinates or
// layouts; callers (see pkg/graph) scale positions into pixel space first.
//
//   - [DrawBox]: the four borders of a node box plus its inset label
//   - [DrawEdge]: a straight line between two box centers, clipped at the
//     box borders, with the edge label at the midpoint
//   - [LabelText]: the label string shared by nodes and edges
//
// # Surfaces
//
// Drawing targets any [Surface]. The braille canvas in pkg/canvas is the
// production implementation; tests use recorders to inspect exact calls.
//
// # Box Geometry
//
// Half extents use integer division of the box size. A 4×4 box centered at
// (10, 10) spans x ∈ [8, 12] and y ∈ [8, 12]. The edge clipper uses the same
// half extents so lines end where the box borders are drawn.
//
// # Edge Clipping
//
// [Visible] decides whether a point of an edge is plotted. It is an
// axis-aligned approximation, not an exact rectangle test: a point is
// plotted when it is outside both boxes' half width in x, or outside both
// boxes' half height in y. Near box corners this lets a few dots through
// that an exact clip would drop.
package render
