package io

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/matzehuels/termgraph/pkg/errors"
	"github.com/matzehuels/termgraph/pkg/geom"
)

// Document is a graph document.
type Document struct {
	Width        int    `json:"width,omitempty" toml:"width,omitzero"`
	Height       int    `json:"height,omitempty" toml:"height,omitzero"`
	DefaultShape *Shape `json:"default_shape,omitempty" toml:"default_shape,omitempty"`
	Nodes        []Node `json:"nodes" toml:"nodes"`
	Edges        []Edge `json:"edges,omitempty" toml:"edges,omitempty"`
}

// Shape is a box size in pixels.
type Shape struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

// Node is a node entry. X and Y are nil for unplaced nodes.
type Node struct {
	ID        string   `json:"id" toml:"id"`
	X         *float64 `json:"x,omitempty" toml:"x,omitempty"`
	Y         *float64 `json:"y,omitempty" toml:"y,omitempty"`
	Shape     *Shape   `json:"shape,omitempty" toml:"shape,omitempty"`
	Attrs     Attrs    `json:"attrs,omitzero" toml:"attrs,omitempty"`
	ShowLabel *bool    `json:"show_label,omitempty" toml:"show_label,omitempty"`
	ShowAttrs bool     `json:"show_attrs,omitempty" toml:"show_attrs,omitempty"`
}

// Placed reports whether both coordinates are present. [Document.Validate]
// rejects a node with only one.
func (n Node) Placed() bool { return n.X != nil && n.Y != nil }

// Edge is an edge entry.
type Edge struct {
	From      string `json:"from" toml:"from"`
	To        string `json:"to" toml:"to"`
	Label     string `json:"label,omitempty" toml:"label,omitempty"`
	Attrs     Attrs  `json:"attrs,omitzero" toml:"attrs,omitempty"`
	ShowLabel *bool  `json:"show_label,omitempty" toml:"show_label,omitempty"`
	ShowAttrs bool   `json:"show_attrs,omitempty" toml:"show_attrs,omitempty"`
}

// Validate checks the document's structure: sizes within limits, valid and
// unique node ids, no half-given positions, and edges between known nodes.
// Position ranges are checked later, when the graph is built.
func (d *Document) Validate() error {
	if err := errors.ValidateExtent(d.Width, d.Height); err != nil {
		return err
	}
	if s := d.DefaultShape; s != nil {
		if err := validateShape("default_shape", s); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(d.Nodes))
	for i, n := range d.Nodes {
		if err := errors.ValidateLabel(n.ID); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
		if (n.X == nil) != (n.Y == nil) {
			return errors.New(errors.ErrCodeInvalidPosition, "node %q: position needs both x and y", n.ID)
		}
		if n.Shape != nil {
			if err := validateShape(n.ID, n.Shape); err != nil {
				return err
			}
		}
	}
	for _, e := range d.Edges {
		for _, id := range []string{e.From, e.To} {
			if !seen[id] {
				return errors.New(errors.ErrCodeUnknownNode, "edge %s->%s: node %q not found", e.From, e.To, id)
			}
		}
	}
	return nil
}

func validateShape(label string, s *Shape) error {
	if err := errors.ValidateShape(label, s.Width, s.Height); err != nil {
		return err
	}
	return errors.ValidateShapeLimit(label, s.Width, s.Height)
}

// IDs returns node ids in document order.
func (d *Document) IDs() []string {
	ids := make([]string, len(d.Nodes))
	for i, n := range d.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// Unplaced returns the ids of nodes without a position, in document order.
func (d *Document) Unplaced() []string {
	var ids []string
	for _, n := range d.Nodes {
		if !n.Placed() {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Positions returns the positions of placed nodes.
func (d *Document) Positions() map[string]geom.Point {
	pos := make(map[string]geom.Point)
	for _, n := range d.Nodes {
		if n.Placed() {
			pos[n.ID] = geom.Pt(*n.X, *n.Y)
		}
	}
	return pos
}

// SetPositions stores positions for the listed nodes. Ids not in the
// document are ignored.
func (d *Document) SetPositions(pos map[string]geom.Point) {
	for i := range d.Nodes {
		p, ok := pos[d.Nodes[i].ID]
		if !ok {
			continue
		}
		x, y := p.X, p.Y
		d.Nodes[i].X, d.Nodes[i].Y = &x, &y
	}
}

// Clone returns a deep copy of the node and edge lists. Attribute maps are
// shared.
func (d *Document) Clone() *Document {
	out := *d
	out.Nodes = slices.Clone(d.Nodes)
	out.Edges = slices.Clone(d.Edges)
	for i, n := range out.Nodes {
		if n.X != nil {
			x := *n.X
			out.Nodes[i].X = &x
		}
		if n.Y != nil {
			y := *n.Y
			out.Nodes[i].Y = &y
		}
	}
	return &out
}

// Hash identifies the document's topology: node ids in order and edge
// endpoints. Two documents with the same hash get the same layout from a
// given engine and seed, so it is used as the layout cache key.
func (d *Document) Hash() string {
	type pair struct {
		From string `json:"f"`
		To   string `json:"t"`
	}
	topo := struct {
		Nodes []string `json:"n"`
		Edges []pair   `json:"e"`
	}{Nodes: d.IDs()}
	for _, e := range d.Edges {
		topo.Edges = append(topo.Edges, pair{e.From, e.To})
	}
	data, _ := json.Marshal(topo)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
