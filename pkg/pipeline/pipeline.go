// Package pipeline provides the load → layout → render pipeline shared by
// the CLI and the HTTP API.
//
// # Architecture
//
// The pipeline has three stages:
//
//  1. Load: decode a graph document from a file or request body
//  2. Layout: place the nodes that have no position, using a layout engine
//  3. Render: build the graph and rasterize it onto a fresh braille canvas
//
// Layouts and frames are cached through a [cache.Cache]; a [Runner] holds
// the cache and logger so entry points do not duplicate that logic.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	doc, err := runner.Load(ctx, "board.toml")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Render(ctx, doc, pipeline.Options{Engine: "eades"})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(result.Frame)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/termgraph/pkg/cache"
	"github.com/matzehuels/termgraph/pkg/errors"
	tgio "github.com/matzehuels/termgraph/pkg/io"
	"github.com/matzehuels/termgraph/pkg/layout"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It decodes from API requests.
type Options struct {
	// Layout options
	Engine     string `json:"engine,omitempty"`
	Seed       uint64 `json:"seed,omitempty"`
	Iterations int    `json:"iterations,omitempty"`
	Relayout   bool   `json:"relayout,omitempty"` // place every node, not just unplaced ones

	// Render options: Width and Height override the document extent.
	Width      int             `json:"width,omitempty"`
	Height     int             `json:"height,omitempty"`
	Labels     tgio.Visibility `json:"labels,omitempty"`
	Attrs      tgio.Visibility `json:"attrs,omitempty"`
	EdgeLabels tgio.Visibility `json:"edge_labels,omitempty"`

	// Cache options
	Refresh bool          `json:"refresh,omitempty"` // bypass cache reads
	TTL     time.Duration `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// SetDefaults fills zero fields. It is idempotent.
func (o *Options) SetDefaults() {
	if o.Engine == "" {
		o.Engine = layout.EngineNone
	}
	if o.Seed == 0 {
		o.Seed = layout.DefaultSeed
	}
	if o.Iterations <= 0 {
		o.Iterations = layout.DefaultIterations
	}
	if o.TTL == 0 {
		o.TTL = cache.DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options without changing them.
func (o *Options) Validate() error {
	if !layout.Valid(o.Engine) {
		_, err := layout.New(o.Engine, layout.Options{})
		return err
	}
	if err := errors.ValidateExtent(o.Width, o.Height); err != nil {
		return err
	}
	if o.Iterations < 0 || o.Iterations > layout.MaxIterations {
		return errors.New(errors.ErrCodeInvalidInput, "iterations %d outside 0..%d", o.Iterations, layout.MaxIterations)
	}
	for _, v := range []tgio.Visibility{o.Labels, o.Attrs, o.EdgeLabels} {
		if v < tgio.AsDocument || v > tgio.HideAll {
			return errors.New(errors.ErrCodeInvalidInput, "invalid visibility %d", v)
		}
	}
	if o.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl must not be negative")
	}
	return nil
}

// LayoutKeyOpts returns cache key options for a layout.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Engine:     o.Engine,
		Seed:       o.Seed,
		Iterations: o.Iterations,
	}
}

// FrameKeyOpts returns cache key options for a frame.
func (o *Options) FrameKeyOpts() cache.FrameKeyOpts {
	return cache.FrameKeyOpts{
		Width:      o.Width,
		Height:     o.Height,
		Labels:     int(o.Labels),
		Attrs:      int(o.Attrs),
		EdgeLabels: int(o.EdgeLabels),
	}
}

func (o *Options) buildOptions() tgio.BuildOptions {
	return tgio.BuildOptions{
		Width:      o.Width,
		Height:     o.Height,
		Labels:     o.Labels,
		Attrs:      o.Attrs,
		EdgeLabels: o.EdgeLabels,
	}
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a render.
type Result struct {
	// Document is the input with every node placed.
	Document *tgio.Document

	// Frame is the rendered braille text.
	Frame string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Placed     int // nodes positioned by the layout engine
	FrameBytes int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // positions came from cache
	FrameHit  bool // frame came from cache
}
