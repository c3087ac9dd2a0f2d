// Package graph is the layout coordinator: it holds nodes and edges in
// normalized space and draws them onto a dot surface.
//
// # Model
//
// A [Graph] owns a label-keyed set of [Node] values and an ordered list of
// [Edge] values. Node positions are normalized to [0,1]×[0,1] and scaled
// to pixels only at draw time using the graph's extent (MaxX, MaxY). Edges
// refer to nodes by label; both endpoints must exist when the edge is added.
//
// Construction validates eagerly. [Graph.AddNode] fails with
// INVALID_POSITION or INVALID_SHAPE and [Graph.AddEdge] fails with
// UNKNOWN_NODE (see pkg/errors); a failed call leaves the graph unchanged.
// Drawing never fails.
//
// # Drawing
//
// [Graph.Draw] and [Graph.DrawOn] rasterize every node box in insertion
// order, then every edge in insertion order, then render one frame:
//
//	g, _ := graph.New()
//	_ = g.AddNode("a", graph.WithPosition(0.1, 0.1))
//	_ = g.AddNode("b", graph.WithPosition(0.9, 0.8))
//	_ = g.AddEdge("a", "b", graph.WithLabel("a-b"))
//	fmt.Println(g.Draw())
//
// Draw uses the canvas the graph owns, so calling it twice accumulates on
// the same canvas. DrawOn draws onto a caller-supplied surface; with a fresh
// surface each time the frames are byte-identical.
//
// A Graph is not safe for concurrent use.
package graph
