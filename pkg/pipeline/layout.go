package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/termgraph/pkg/cache"
	"github.com/matzehuels/termgraph/pkg/geom"
	tgio "github.com/matzehuels/termgraph/pkg/io"
	"github.com/matzehuels/termgraph/pkg/layout"
	"github.com/matzehuels/termgraph/pkg/observability"
)

// Layout returns a copy of doc with positions for its unplaced nodes, or
// for every node when opts.Relayout is set. The input is not modified.
//
// Engine output depends only on the document's topology and the layout
// options, so it is cached under [tgio.Document.Hash]. The boolean reports
// a cache hit.
func (r *Runner) Layout(ctx context.Context, doc *tgio.Document, opts Options) (*tgio.Document, bool, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	if err := doc.Validate(); err != nil {
		return nil, false, err
	}

	out := doc.Clone()
	targets := doc.Unplaced()
	if opts.Relayout {
		targets = doc.IDs()
	}
	if len(targets) == 0 || opts.Engine == layout.EngineNone {
		return out, false, nil
	}

	pos, hit, err := r.positions(ctx, doc, opts)
	if err != nil {
		return nil, false, err
	}

	apply := make(map[string]geom.Point, len(targets))
	for _, id := range targets {
		if p, ok := pos[id]; ok {
			apply[id] = p
		}
	}
	out.SetPositions(apply)
	opts.Logger.Debug("placed nodes", "engine", opts.Engine, "placed", len(apply), "cached", hit)
	return out, hit, nil
}

// positions runs the engine over the whole document, consulting the cache.
func (r *Runner) positions(ctx context.Context, doc *tgio.Document, opts Options) (map[string]geom.Point, bool, error) {
	key := r.Keyer.LayoutKey(doc.Hash(), opts.LayoutKeyOpts())
	chooks := observability.Cache()

	if !opts.Refresh {
		var cached map[string]geom.Point
		if err := cache.GetJSON(ctx, r.Cache, key, &cached); err == nil {
			chooks.OnCacheHit(ctx, "layout")
			return cached, true, nil
		}
		chooks.OnCacheMiss(ctx, "layout")
	}

	engine, err := layout.New(opts.Engine, layout.Options{
		Seed:       opts.Seed,
		Iterations: opts.Iterations,
		Logger:     opts.Logger,
	})
	if err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, engine.Name(), len(doc.Nodes))
	start := time.Now()
	pos, err := engine.Positions(ctx, doc.IDs(), pairs(doc))
	hooks.OnLayoutComplete(ctx, engine.Name(), time.Since(start), err)
	if err != nil {
		return nil, false, fmt.Errorf("layout %s: %w", engine.Name(), err)
	}

	if size, err := cache.SetJSON(ctx, r.Cache, key, pos, opts.TTL); err != nil {
		opts.Logger.Warn("cache layout", "err", err)
	} else {
		chooks.OnCacheSet(ctx, "layout", size)
	}
	return pos, false, nil
}

func pairs(doc *tgio.Document) []layout.Pair {
	out := make([]layout.Pair, len(doc.Edges))
	for i, e := range doc.Edges {
		out[i] = layout.Pair{From: e.From, To: e.To}
	}
	return out
}
