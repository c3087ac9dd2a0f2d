package graph

import (
	"github.com/matzehuels/termgraph/pkg/canvas"
	"github.com/matzehuels/termgraph/pkg/errors"
	"github.com/matzehuels/termgraph/pkg/geom"
	"github.com/matzehuels/termgraph/pkg/render"
)

// Default canvas extent and node size in pixels.
const (
	DefaultMaxX        = 300
	DefaultMaxY        = 135
	DefaultShapeWidth  = 10
	DefaultShapeHeight = 10
)

// Graph holds nodes and edges in normalized space and draws them.
//
// The zero value is not usable; use [New].
type Graph struct {
	nodes  map[string]*Node
	order  []string // draw order
	edges  []Edge
	maxX   int
	maxY   int
	shape  Shape
	canvas render.Surface
}

// Option configures a [Graph].
type Option func(*Graph)

// WithExtent sets the pixel extent normalized positions are scaled to.
func WithExtent(maxX, maxY int) Option {
	return func(g *Graph) { g.maxX, g.maxY = maxX, maxY }
}

// WithDefaultShape sets the box size of nodes added without [WithShape].
func WithDefaultShape(w, h int) Option {
	return func(g *Graph) { g.shape = Shape{W: w, H: h} }
}

// WithSurface replaces the canvas the graph owns.
func WithSurface(s render.Surface) Option {
	return func(g *Graph) { g.canvas = s }
}

// New creates an empty graph with a 300x135 extent, 10x10 default shape and
// a fresh braille canvas, then applies opts.
func New(opts ...Option) (*Graph, error) {
	g := &Graph{
		nodes: make(map[string]*Node),
		maxX:  DefaultMaxX,
		maxY:  DefaultMaxY,
		shape: Shape{W: DefaultShapeWidth, H: DefaultShapeHeight},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxX <= 0 || g.maxY <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "canvas extent %dx%d must be positive", g.maxX, g.maxY)
	}
	if g.shape.W <= 0 || g.shape.H <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidShape, "default shape %dx%d must have positive width and height", g.shape.W, g.shape.H)
	}
	if g.canvas == nil {
		g.canvas = canvas.New()
	}
	return g, nil
}

// Extent returns the pixel extent.
func (g *Graph) Extent() (maxX, maxY int) { return g.maxX, g.maxY }

// DefaultShape returns the box size used for nodes without an explicit shape.
func (g *Graph) DefaultShape() Shape { return g.shape }

// Surface returns the canvas [Graph.Draw] draws on.
func (g *Graph) Surface() render.Surface { return g.canvas }

// AddNode inserts the node label, or replaces it if it already exists. A
// replaced node keeps its original draw position in the order.
//
// New nodes start at (0,0) with the default shape, the label shown and the
// attributes hidden. Returns INVALID_POSITION or INVALID_SHAPE after opts
// are applied; on error the graph is unchanged.
func (g *Graph) AddNode(label string, opts ...NodeOption) error {
	n := Node{
		Label:     label,
		Shape:     g.shape,
		ShowLabel: true,
	}
	for _, opt := range opts {
		opt(&n)
	}
	if err := errors.ValidatePosition(label, n.Position.X, n.Position.Y); err != nil {
		return err
	}
	if err := errors.ValidateShape(label, n.Shape.W, n.Shape.H); err != nil {
		return err
	}

	if existing, ok := g.nodes[label]; ok {
		*existing = n
		return nil
	}
	g.nodes[label] = &n
	g.order = append(g.order, label)
	return nil
}

// AddEdge appends an edge between two existing nodes. The label is shown and
// the attributes hidden unless opts say otherwise.
//
// Returns UNKNOWN_NODE naming the first missing endpoint; on error the edge
// list is unchanged. Self-loops and parallel edges are accepted.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	for _, label := range []string{from, to} {
		if _, ok := g.nodes[label]; !ok {
			return errors.New(errors.ErrCodeUnknownNode, "edge %s->%s: node %q not found", from, to, label)
		}
	}
	e := Edge{From: from, To: to, ShowLabel: true}
	for _, opt := range opts {
		opt(&e)
	}
	g.edges = append(g.edges, e)
	return nil
}

// Node returns the node with the given label.
func (g *Graph) Node(label string) (Node, bool) {
	n, ok := g.nodes[label]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns all nodes in draw order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, label := range g.order {
		out = append(out, *g.nodes[label])
	}
	return out
}

// Labels returns all node labels in draw order.
func (g *Graph) Labels() []string {
	return append([]string(nil), g.order...)
}

// Edges returns all edges in draw order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ApplyPositions moves nodes to the given normalized positions, typically
// the output of a layout engine. Every entry is checked before any node
// moves: an unknown label fails with UNKNOWN_NODE and an out-of-range
// value with INVALID_POSITION. Nodes missing from pos keep their position.
func (g *Graph) ApplyPositions(pos map[string]geom.Point) error {
	for label, p := range pos {
		if _, ok := g.nodes[label]; !ok {
			return errors.New(errors.ErrCodeUnknownNode, "position for node %q not in graph", label)
		}
		if err := errors.ValidatePosition(label, p.X, p.Y); err != nil {
			return err
		}
	}
	for label, p := range pos {
		g.nodes[label].Position = p
	}
	return nil
}

// PixelCenter returns n's center in canvas pixels.
func (g *Graph) PixelCenter(n Node) geom.Point {
	return geom.Pt(n.Position.X*float64(g.maxX), n.Position.Y*float64(g.maxY))
}

func (g *Graph) box(n *Node) render.Box {
	return render.Box{Center: g.PixelCenter(*n), W: n.Shape.W, H: n.Shape.H}
}

// Draw draws the graph on its own canvas and returns the frame. Earlier
// drawings on that canvas are kept.
func (g *Graph) Draw() string {
	return g.DrawOn(g.canvas)
}

// DrawOn draws every node box, then every edge, onto s and returns s's
// frame.
func (g *Graph) DrawOn(s render.Surface) string {
	for _, label := range g.order {
		n := g.nodes[label]
		render.DrawBox(s, g.box(n), n.Text())
	}
	for _, e := range g.edges {
		render.DrawEdge(s, g.box(g.nodes[e.From]), g.box(g.nodes[e.To]), e.Text())
	}
	return s.Frame()
}
