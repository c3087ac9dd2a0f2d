package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/termgraph/pkg/cache"
	"github.com/matzehuels/termgraph/pkg/canvas"
	tgio "github.com/matzehuels/termgraph/pkg/io"
	"github.com/matzehuels/termgraph/pkg/observability"
)

// frameEntry is the cached form of a rendered frame.
type frameEntry struct {
	Frame string `json:"frame"`
}

// Render lays out doc and draws it on a fresh braille canvas.
func (r *Runner) Render(ctx context.Context, doc *tgio.Document, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	layoutStart := time.Now()
	placed, layoutHit, err := r.Layout(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Document: placed}
	result.CacheInfo.LayoutHit = layoutHit
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.NodeCount = len(placed.Nodes)
	result.Stats.EdgeCount = len(placed.Edges)
	result.Stats.Placed = len(doc.Unplaced()) - len(placed.Unplaced())
	if opts.Relayout {
		result.Stats.Placed = len(placed.Nodes) - len(placed.Unplaced())
	}

	renderStart := time.Now()
	frame, frameHit, err := r.frame(ctx, placed, opts)
	if err != nil {
		return nil, err
	}
	result.Frame = frame
	result.CacheInfo.FrameHit = frameHit
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.FrameBytes = len(frame)

	opts.Logger.Info("rendered graph",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"engine", opts.Engine,
		"duration", result.Stats.LayoutTime+result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) frame(ctx context.Context, doc *tgio.Document, opts Options) (string, bool, error) {
	data, err := tgio.Marshal(doc, tgio.FormatJSON)
	if err != nil {
		return "", false, fmt.Errorf("serialize document for cache key: %w", err)
	}
	key := r.Keyer.FrameKey(cache.Hash(data), opts.FrameKeyOpts())
	chooks := observability.Cache()

	if !opts.Refresh {
		var cached frameEntry
		if err := cache.GetJSON(ctx, r.Cache, key, &cached); err == nil {
			chooks.OnCacheHit(ctx, "frame")
			return cached.Frame, true, nil
		}
		chooks.OnCacheMiss(ctx, "frame")
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, len(doc.Nodes), len(doc.Edges))
	start := time.Now()
	frame, err := Draw(doc, opts)
	hooks.OnRenderComplete(ctx, len(frame), time.Since(start), err)
	if err != nil {
		return "", false, err
	}

	if size, err := cache.SetJSON(ctx, r.Cache, key, frameEntry{Frame: frame}, opts.TTL); err != nil {
		opts.Logger.Warn("cache frame", "err", err)
	} else {
		chooks.OnCacheSet(ctx, "frame", size)
	}
	return frame, false, nil
}

// Draw builds doc as-is and rasterizes it onto a new canvas, without
// layout or caching. Each call starts from a blank canvas.
func Draw(doc *tgio.Document, opts Options) (string, error) {
	bopts := opts.buildOptions()
	bopts.Surface = canvas.New()
	g, err := doc.Build(bopts)
	if err != nil {
		return "", err
	}
	return g.Draw(), nil
}
