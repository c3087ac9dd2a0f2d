package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// drawCommand creates the draw command.
func (c *CLI) drawCommand() *cobra.Command {
	var (
		format   string
		relayout bool
		refresh  bool
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "draw <file>",
		Short: "Render a graph document as braille text",
		Long: `Render a graph document (JSON or TOML) to stdout.

Nodes without x/y are placed by --engine; with the default engine "none" they
sit at the top-left corner. Use "-" to read the document from stdin.`,
		Example: `  termgraph draw board.toml
  termgraph draw --engine eades --labels hide graph.json
  cat graph.json | termgraph draw --format json -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			doc, err := readDocument(cmd, runner, args[0], format)
			if err != nil {
				return err
			}
			c.applyDocDefaults(cmd, doc)

			opts := c.pipelineOptions(cmd)
			opts.Relayout = relayout
			opts.Refresh = refresh
			if err := visibility(cmd, &opts); err != nil {
				return err
			}

			res, err := runner.Render(ctx, doc, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Frame)
			if !quiet {
				printStats(res.Stats.NodeCount, res.Stats.EdgeCount, res.Stats.Placed,
					res.CacheInfo.FrameHit || res.CacheInfo.LayoutHit)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "document format when reading stdin (json, toml)")
	cmd.Flags().BoolVar(&relayout, "relayout", false, "place every node with the engine, ignoring document positions")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached layouts and frames")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the frame")
	addVisibilityFlags(cmd)
	return cmd
}
