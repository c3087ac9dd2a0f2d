package layout

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/termgraph/pkg/errors"
	"github.com/matzehuels/termgraph/pkg/geom"
)

// Graphviz lays out the graph with one of Graphviz's undirected engines
// (neato, fdp or circo) and reads back each node's position.
type Graphviz struct {
	Layout string
	Seed   uint64
	Margin float64
	Logger *log.Logger
}

// Name implements [Engine].
func (g *Graphviz) Name() string { return g.Layout }

// Positions implements [Engine].
//
// Node labels are replaced by positional names (n0, n1, ...) in the DOT
// source so arbitrary labels need no quoting. Graphviz places y upward,
// so the result is flipped to the canvas orientation.
func (g *Graphviz) Positions(ctx context.Context, nodes []string, edges []Pair) (map[string]geom.Point, error) {
	if len(nodes) == 0 {
		return map[string]geom.Point{}, nil
	}
	dot, names, err := g.dot(nodes, edges)
	if err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "init graphviz")
	}
	defer gv.Close()

	in, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "parse DOT")
	}
	defer in.Close()

	var buf bytes.Buffer
	if err := gv.SetLayout(graphviz.Layout(g.Layout)).Render(ctx, in, graphviz.XDOT, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "%s layout", g.Layout)
	}

	out, err := graphviz.ParseBytes(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "parse %s output", g.Layout)
	}
	defer out.Close()

	raw := make(map[string]geom.Point, len(names))
	for label, name := range names {
		n, err := out.NodeByName(name)
		if err != nil || n == nil {
			return nil, errors.New(errors.ErrCodeLayoutFailed, "%s output is missing node %q", g.Layout, label)
		}
		p, err := parsePos(n.GetStr("pos"))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "node %q", label)
		}
		raw[label] = p
	}
	if g.Logger != nil {
		g.Logger.Debug("graphviz layout", "engine", g.Layout, "nodes", len(raw), "edges", len(edges))
	}
	return Normalize(raw, g.Margin, true), nil
}

// dot renders the graph as an undirected DOT source.
func (g *Graphviz) dot(nodes []string, edges []Pair) (string, map[string]string, error) {
	names := make(map[string]string, len(nodes))
	var sb strings.Builder
	sb.WriteString("graph G {\n")
	fmt.Fprintf(&sb, "  start=%d;\n", g.Seed)
	sb.WriteString("  overlap=false;\n")
	sb.WriteString("  node [shape=box];\n")
	for _, label := range nodes {
		if _, ok := names[label]; ok {
			continue
		}
		name := "n" + strconv.Itoa(len(names))
		names[label] = name
		fmt.Fprintf(&sb, "  %s;\n", name)
	}
	for _, e := range edges {
		from, fok := names[e.From]
		to, tok := names[e.To]
		if !fok || !tok {
			return "", nil, errors.New(errors.ErrCodeUnknownNode, "edge %s->%s references an unknown node", e.From, e.To)
		}
		fmt.Fprintf(&sb, "  %s -- %s;\n", from, to)
	}
	sb.WriteString("}\n")
	return sb.String(), names, nil
}

// parsePos parses a Graphviz "x,y" position; a trailing "!" marks a
// pinned node and is ignored.
func parsePos(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSuffix(strings.TrimSpace(s), "!"), ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("malformed pos %q", s)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("malformed pos %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("malformed pos %q: %w", s, err)
	}
	return geom.Pt(x, y), nil
}
