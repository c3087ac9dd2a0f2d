package layout

import (
	"context"
	"math"

	"github.com/matzehuels/termgraph/pkg/geom"
)

// Grid places nodes row by row on the smallest square-ish grid that fits
// them, each in the center of its cell. Edges are ignored.
type Grid struct {
	Margin float64
}

// Name implements [Engine].
func (Grid) Name() string { return EngineGrid }

// Positions implements [Engine].
func (g Grid) Positions(ctx context.Context, nodes []string, _ []Pair) (map[string]geom.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pos := make(map[string]geom.Point, len(nodes))
	n := len(nodes)
	if n == 0 {
		return pos, nil
	}

	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	span := 1 - 2*g.Margin
	for i, label := range nodes {
		r, c := i/cols, i%cols
		pos[label] = geom.Pt(
			g.Margin+span*(float64(c)+0.5)/float64(cols),
			g.Margin+span*(float64(r)+0.5)/float64(rows),
		)
	}
	return pos, nil
}
