package layout

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/termgraph/pkg/errors"
	"github.com/matzehuels/termgraph/pkg/geom"
)

// Engine names accepted by [New].
const (
	EngineNone  = "none"
	EngineGrid  = "grid"
	EngineEades = "eades"
	EngineNeato = "neato"
	EngineFDP   = "fdp"
	EngineCirco = "circo"
)

// Defaults for [Options].
const (
	DefaultSeed       uint64 = 42
	DefaultIterations        = 200
	DefaultMargin            = 0.05

	// MaxIterations bounds Options.Iterations for untrusted requests.
	MaxIterations = 10000
)

// Pair is an edge by node label.
type Pair struct {
	From, To string
}

// Engine computes normalized positions for nodes.
//
// nodes lists every label in draw order; edges may reference only those
// labels and may contain self-loops or duplicates. The result maps labels
// to points in [0,1]×[0,1]. Engines may omit labels they do not place.
type Engine interface {
	Name() string
	Positions(ctx context.Context, nodes []string, edges []Pair) (map[string]geom.Point, error)
}

// Options configures an engine.
type Options struct {
	// Seed makes randomized engines reproducible.
	Seed uint64
	// Iterations bounds iterative engines.
	Iterations int
	// Margin is the fraction of the unit square kept free on each side.
	Margin float64
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// SetDefaults fills zero fields.
func (o *Options) SetDefaults() {
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.Margin <= 0 || o.Margin >= 0.5 {
		o.Margin = DefaultMargin
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Names lists the engines [New] accepts.
func Names() []string {
	return []string{EngineNone, EngineGrid, EngineEades, EngineNeato, EngineFDP, EngineCirco}
}

// New returns the engine called name. The empty name means none.
func New(name string, opts Options) (Engine, error) {
	opts.SetDefaults()
	switch strings.ToLower(name) {
	case "", EngineNone:
		return None{}, nil
	case EngineGrid:
		return Grid{Margin: opts.Margin}, nil
	case EngineEades:
		return &Eades{Seed: opts.Seed, Updates: opts.Iterations, Margin: opts.Margin, Logger: opts.Logger}, nil
	case EngineNeato, EngineFDP, EngineCirco:
		return &Graphviz{Layout: strings.ToLower(name), Seed: opts.Seed, Margin: opts.Margin, Logger: opts.Logger}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidEngine, "unknown layout engine %q (want one of %s)", name, strings.Join(Names(), ", "))
}

// Valid reports whether name is a known engine.
func Valid(name string) bool {
	return name == "" || slices.Contains(Names(), strings.ToLower(name))
}

// None places nothing.
type None struct{}

// Name implements [Engine].
func (None) Name() string { return EngineNone }

// Positions implements [Engine] and always returns an empty map.
func (None) Positions(context.Context, []string, []Pair) (map[string]geom.Point, error) {
	return map[string]geom.Point{}, nil
}
