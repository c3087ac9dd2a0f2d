package layout

import (
	"context"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	gonumlayout "gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/matzehuels/termgraph/pkg/errors"
	"github.com/matzehuels/termgraph/pkg/geom"
)

// Eades tuning, matching gonum's documented defaults.
const (
	eadesRepulsion = 1
	eadesRate      = 0.05
	eadesTheta     = 0.2
)

// Eades is a force-directed layout: edges act as springs and all nodes
// repel each other. Initial placement comes from Seed, so equal inputs
// give equal outputs.
type Eades struct {
	Seed    uint64
	Updates int
	Margin  float64
	Logger  *log.Logger
}

// Name implements [Engine].
func (*Eades) Name() string { return EngineEades }

// Positions implements [Engine]. Self-loops and repeated edges are
// dropped before layout since they exert no force.
func (e *Eades) Positions(ctx context.Context, nodes []string, edges []Pair) (map[string]geom.Point, error) {
	if len(nodes) == 0 {
		return map[string]geom.Point{}, nil
	}

	g := simple.NewUndirectedGraph()
	ids := make(map[string]int64, len(nodes))
	for _, label := range nodes {
		if _, ok := ids[label]; ok {
			continue
		}
		id := int64(len(ids))
		ids[label] = id
		g.AddNode(simple.Node(id))
	}
	for _, p := range edges {
		u, uok := ids[p.From]
		v, vok := ids[p.To]
		if !uok || !vok {
			return nil, errors.New(errors.ErrCodeUnknownNode, "edge %s->%s references an unknown node", p.From, p.To)
		}
		if u == v || g.HasEdgeBetween(u, v) {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(u), simple.Node(v)))
	}

	eades := gonumlayout.EadesR2{
		Repulsion: eadesRepulsion,
		Rate:      eadesRate,
		Updates:   e.Updates,
		Theta:     eadesTheta,
		Src:       rand.NewPCG(e.Seed, e.Seed),
	}
	opt := gonumlayout.NewOptimizerR2(orderedGraph{g}, eades.Update)
	rounds := 0
	for opt.Update() {
		rounds++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if e.Logger != nil {
		e.Logger.Debug("eades layout", "nodes", len(ids), "edges", g.Edges().Len(), "rounds", rounds)
	}

	raw := make(map[string]geom.Point, len(ids))
	for label, id := range ids {
		v := opt.Coord2(id)
		raw[label] = geom.Pt(v.X, v.Y)
	}
	return Normalize(raw, e.Margin, false), nil
}

// orderedGraph iterates nodes by ID. The random initial placement is drawn
// in iteration order, so map order would break reproducibility.
type orderedGraph struct {
	graph.Graph
}

func (g orderedGraph) Nodes() graph.Nodes {
	return sortedNodes(g.Graph.Nodes())
}

func (g orderedGraph) From(id int64) graph.Nodes {
	return sortedNodes(g.Graph.From(id))
}

func sortedNodes(it graph.Nodes) graph.Nodes {
	n := graph.NodesOf(it)
	slices.SortFunc(n, func(a, b graph.Node) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		}
		return 0
	})
	return iterator.NewOrderedNodes(n)
}
