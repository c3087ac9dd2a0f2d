package io

import (
	"fmt"

	"github.com/matzehuels/termgraph/pkg/errors"
	"github.com/matzehuels/termgraph/pkg/graph"
	"github.com/matzehuels/termgraph/pkg/render"
)

// Visibility overrides a label setting for every node or edge.
type Visibility int

const (
	// AsDocument keeps each entry's own setting.
	AsDocument Visibility = iota
	// ShowAll forces the text on.
	ShowAll
	// HideAll forces the text off.
	HideAll
)

// ParseVisibility accepts "", "doc", "show" and "hide".
func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "", "doc":
		return AsDocument, nil
	case "show":
		return ShowAll, nil
	case "hide":
		return HideAll, nil
	}
	return AsDocument, errors.New(errors.ErrCodeInvalidInput, "visibility %q must be show, hide or doc", s)
}

// String returns the name ParseVisibility accepts.
func (v Visibility) String() string {
	switch v {
	case ShowAll:
		return "show"
	case HideAll:
		return "hide"
	default:
		return "doc"
	}
}

func (v Visibility) apply(own bool) bool {
	switch v {
	case ShowAll:
		return true
	case HideAll:
		return false
	default:
		return own
	}
}

// BuildOptions adjusts how a document becomes a graph.
type BuildOptions struct {
	// Width and Height override the document's extent when positive.
	Width, Height int

	// Surface is the canvas the graph owns. Nil means a new braille canvas.
	Surface render.Surface

	Labels     Visibility // node labels
	Attrs      Visibility // node attributes
	EdgeLabels Visibility // edge labels
}

// Build creates a graph from the document. Unplaced nodes sit at the
// origin. Errors carry the codes of [graph.Graph.AddNode] and
// [graph.Graph.AddEdge], wrapped with the offending entry.
func (d *Document) Build(opts BuildOptions) (*graph.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var gopts []graph.Option
	w, h := d.Width, d.Height
	if opts.Width > 0 {
		w = opts.Width
	}
	if opts.Height > 0 {
		h = opts.Height
	}
	if w > 0 || h > 0 {
		if w == 0 {
			w = graph.DefaultMaxX
		}
		if h == 0 {
			h = graph.DefaultMaxY
		}
		gopts = append(gopts, graph.WithExtent(w, h))
	}
	if s := d.DefaultShape; s != nil {
		gopts = append(gopts, graph.WithDefaultShape(s.Width, s.Height))
	}
	if opts.Surface != nil {
		gopts = append(gopts, graph.WithSurface(opts.Surface))
	}

	g, err := graph.New(gopts...)
	if err != nil {
		return nil, err
	}

	for _, n := range d.Nodes {
		if err := g.AddNode(n.ID, nodeOptions(n, opts)...); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, edgeOptions(e, opts)...); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func nodeOptions(n Node, opts BuildOptions) []graph.NodeOption {
	var out []graph.NodeOption
	if n.Placed() {
		out = append(out, graph.WithPosition(*n.X, *n.Y))
	}
	if n.Shape != nil {
		out = append(out, graph.WithShape(n.Shape.Width, n.Shape.Height))
	}
	if n.Attrs.Len() > 0 {
		out = append(out, graph.WithAttrs(toAttrs(n.Attrs)...))
	}
	if !opts.Labels.apply(n.ShowLabel == nil || *n.ShowLabel) {
		out = append(out, graph.HideLabel())
	}
	if opts.Attrs.apply(n.ShowAttrs) {
		out = append(out, graph.ShowAttrs())
	}
	return out
}

func edgeOptions(e Edge, opts BuildOptions) []graph.EdgeOption {
	out := []graph.EdgeOption{graph.WithLabel(e.Label)}
	if e.Attrs.Len() > 0 {
		out = append(out, graph.WithEdgeAttrs(toAttrs(e.Attrs)...))
	}
	if !opts.EdgeLabels.apply(e.ShowLabel == nil || *e.ShowLabel) {
		out = append(out, graph.HideEdgeLabel())
	}
	if e.ShowAttrs {
		out = append(out, graph.ShowEdgeAttrs())
	}
	return out
}

func toAttrs(a Attrs) []graph.Attr {
	attrs := make([]graph.Attr, 0, a.Len())
	for _, k := range a.keys {
		attrs = append(attrs, graph.Attr{Key: k, Value: a.values[k]})
	}
	return attrs
}
