package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termgraph/pkg/buildinfo"
	"github.com/matzehuels/termgraph/pkg/cache"
	"github.com/matzehuels/termgraph/pkg/config"
	tgio "github.com/matzehuels/termgraph/pkg/io"
	"github.com/matzehuels/termgraph/pkg/observability"
	"github.com/matzehuels/termgraph/pkg/pipeline"
)

const appName = "termgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds state shared by all commands. Config is loaded before any
// command runs.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "termgraph draws graphs in the terminal with braille characters",
		Long: `termgraph renders node/edge graphs as braille text: boxes for nodes,
dotted lines for edges, labels and attributes inline. Positions come from the
graph document or from a layout engine.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolP("verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	config.RegisterFlags(pf)
	config.RegisterCacheFlags(pf)

	root.AddCommand(c.drawCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration and attaches the logger to the context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.LoadOptions{File: c.configPath, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	c.Config = cfg
	if cfg.Verbose {
		c.Logger.SetLevel(log.DebugLevel)
		observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))
		observability.SetCacheHooks(observability.NewLogHooks(c.Logger))
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner opens the configured cache and wraps it in a runner.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	store, err := cache.Open(ctx, c.Config.CacheOpen())
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, loggerFromContext(ctx)), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// pipelineOptions builds run options from the config. Canvas and shape
// sizes from flags override the document; configured values only fill in
// what the document leaves unset, which applyDocDefaults does.
func (c *CLI) pipelineOptions(cmd *cobra.Command) pipeline.Options {
	cfg := c.Config
	opts := pipeline.Options{
		Engine:     cfg.Engine,
		Seed:       cfg.Seed,
		Iterations: cfg.Iterations,
		TTL:        cfg.Cache.TTL,
		Logger:     loggerFromContext(cmd.Context()),
	}
	if changed(cmd, "width") {
		opts.Width = cfg.Width
	}
	if changed(cmd, "height") {
		opts.Height = cfg.Height
	}
	return opts
}

// applyDocDefaults fills the document's extent and default shape from the
// config where the document has none, and forces the shape when set by
// flag.
func (c *CLI) applyDocDefaults(cmd *cobra.Command, doc *tgio.Document) {
	cfg := c.Config
	if doc.Width == 0 {
		doc.Width = cfg.Width
	}
	if doc.Height == 0 {
		doc.Height = cfg.Height
	}
	if doc.DefaultShape == nil || changed(cmd, "shape-width") || changed(cmd, "shape-height") {
		doc.DefaultShape = &tgio.Shape{Width: cfg.ShapeWidth, Height: cfg.ShapeHeight}
	}
}

func changed(cmd *cobra.Command, flag string) bool {
	f := cmd.Flags().Lookup(flag)
	return f != nil && f.Changed
}

// readDocument loads path through the runner, or reads stdin in the given
// format when path is "-".
func readDocument(cmd *cobra.Command, runner *pipeline.Runner, path, format string) (*tgio.Document, error) {
	if path != "-" {
		return runner.Load(cmd.Context(), path)
	}
	f, err := tgio.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return tgio.Read(cmd.InOrStdin(), f)
}

// addVisibilityFlags registers --labels, --attrs and --edge-labels.
func addVisibilityFlags(cmd *cobra.Command) {
	cmd.Flags().String("labels", "doc", "node labels: show, hide or doc")
	cmd.Flags().String("attrs", "doc", "node attributes: show, hide or doc")
	cmd.Flags().String("edge-labels", "doc", "edge labels: show, hide or doc")
}

// visibility reads the flags added by addVisibilityFlags into opts.
func visibility(cmd *cobra.Command, opts *pipeline.Options) error {
	for _, f := range []struct {
		name string
		dst  *tgio.Visibility
	}{
		{"labels", &opts.Labels},
		{"attrs", &opts.Attrs},
		{"edge-labels", &opts.EdgeLabels},
	} {
		s, _ := cmd.Flags().GetString(f.name)
		v, err := tgio.ParseVisibility(s)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}
