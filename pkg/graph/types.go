package graph

import (
	"github.com/matzehuels/termgraph/pkg/geom"
	"github.com/matzehuels/termgraph/pkg/render"
)

// Shape is a node's box size in pixels.
type Shape struct {
	W, H int
}

// Attr is one displayable key/value pair.
type Attr = render.Attr

// Attrs is an ordered attribute list. Order is display order.
type Attrs []Attr

// Get returns the value stored under key.
func (a Attrs) Get(key string) (any, bool) {
	for _, kv := range a {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// With returns a copy of a with key set to value. An existing key keeps
// its position; a new key is appended.
func (a Attrs) With(key string, value any) Attrs {
	out := make(Attrs, len(a), len(a)+1)
	copy(out, a)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Attr{Key: key, Value: value})
}

// Node is a labeled box in normalized space.
type Node struct {
	Label     string     // Unique key within the graph
	Position  geom.Point // Normalized, in [0,1]x[0,1]
	Shape     Shape      // Box size in pixels
	Attrs     Attrs
	ShowLabel bool
	ShowAttrs bool
}

// Text returns the label drawn inside the node's box.
func (n Node) Text() string {
	return render.LabelText(n.Label, n.Attrs, n.ShowLabel, n.ShowAttrs)
}

// Edge is a straight connection between two nodes, identified by label.
type Edge struct {
	From, To  string
	Label     string
	Attrs     Attrs
	ShowLabel bool
	ShowAttrs bool
}

// Text returns the label drawn at the edge's midpoint.
func (e Edge) Text() string {
	return render.LabelText(e.Label, e.Attrs, e.ShowLabel, e.ShowAttrs)
}

// NodeOption configures a node passed to [Graph.AddNode].
type NodeOption func(*Node)

// WithPosition sets the normalized position.
func WithPosition(x, y float64) NodeOption {
	return func(n *Node) { n.Position = geom.Pt(x, y) }
}

// WithShape overrides the graph's default box size.
func WithShape(w, h int) NodeOption {
	return func(n *Node) { n.Shape = Shape{W: w, H: h} }
}

// WithAttrs sets several attributes in order.
func WithAttrs(attrs ...Attr) NodeOption {
	return func(n *Node) {
		for _, a := range attrs {
			n.Attrs = n.Attrs.With(a.Key, a.Value)
		}
	}
}

// WithAttr sets a single attribute.
func WithAttr(key string, value any) NodeOption {
	return func(n *Node) { n.Attrs = n.Attrs.With(key, value) }
}

// HideLabel omits the node's label from its text.
func HideLabel() NodeOption {
	return func(n *Node) { n.ShowLabel = false }
}

// ShowAttrs appends the node's attributes to its text.
func ShowAttrs() NodeOption {
	return func(n *Node) { n.ShowAttrs = true }
}

// EdgeOption configures an edge passed to [Graph.AddEdge].
type EdgeOption func(*Edge)

// WithLabel sets the edge label.
func WithLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// WithEdgeAttrs sets edge attributes in order.
func WithEdgeAttrs(attrs ...Attr) EdgeOption {
	return func(e *Edge) {
		for _, a := range attrs {
			e.Attrs = e.Attrs.With(a.Key, a.Value)
		}
	}
}

// HideEdgeLabel omits the edge label from its text.
func HideEdgeLabel() EdgeOption {
	return func(e *Edge) { e.ShowLabel = false }
}

// ShowEdgeAttrs appends the edge's attributes to its text.
func ShowEdgeAttrs() EdgeOption {
	return func(e *Edge) { e.ShowAttrs = true }
}
