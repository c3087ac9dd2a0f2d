package layout

import (
	"math"

	"github.com/matzehuels/termgraph/pkg/geom"
)

// Normalize fits raw coordinates into [margin, 1-margin] on each axis,
// preserving relative placement. An axis with no extent maps to 0.5. With
// flipY the y axis is inverted, for sources whose origin is bottom-left.
func Normalize(raw map[string]geom.Point, margin float64, flipY bool) map[string]geom.Point {
	out := make(map[string]geom.Point, len(raw))
	if len(raw) == 0 {
		return out
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range raw {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	span := 1 - 2*margin
	scale := func(v, lo, hi float64) float64 {
		if hi-lo == 0 {
			return 0.5
		}
		return clamp(margin + span*(v-lo)/(hi-lo))
	}
	for label, p := range raw {
		y := scale(p.Y, minY, maxY)
		if flipY {
			y = 1 - y
		}
		out[label] = geom.Pt(scale(p.X, minX, maxX), y)
	}
	return out
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
