package cli

import (
	"github.com/spf13/cobra"

	tgio "github.com/matzehuels/termgraph/pkg/io"
	"github.com/matzehuels/termgraph/pkg/layout"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		format   string
		relayout bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "layout <file>",
		Short: "Place unplaced nodes and write the document",
		Long: `Compute positions for nodes without x/y and write the completed document.

The output goes to stdout in the input's format unless -o names a file, whose
extension then picks the format.`,
		Example: `  termgraph layout --engine neato graph.toml -o placed.toml
  termgraph layout --engine grid --relayout graph.json`,
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

			opts := c.pipelineOptions(cmd)
			opts.Relayout = relayout
			opts.Refresh = refresh
			if opts.Engine == layout.EngineNone {
				printWarning("engine is none; unplaced nodes stay unplaced (try --engine eades)")
			}

			spin := newSpinner(ctx, "Computing layout with "+opts.Engine)
			spin.Start()
			placed, hit, err := runner.Layout(ctx, doc, opts)
			if err != nil {
				spin.StopWithError("Layout failed")
				return err
			}
			spin.StopWithSuccess("Placed %d nodes", len(doc.Unplaced())-len(placed.Unplaced()))
			printStats(len(placed.Nodes), len(placed.Edges), 0, hit)

			if output != "" {
				if err := tgio.WriteFile(output, placed); err != nil {
					return err
				}
				printFile(output)
				return nil
			}

			outFormat := tgio.Format(format)
			if args[0] != "-" {
				if outFormat, err = tgio.FormatFromPath(args[0]); err != nil {
					return err
				}
			}
			return tgio.Write(cmd.OutOrStdout(), outFormat, placed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to this file")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "document format when reading stdin (json, toml)")
	cmd.Flags().BoolVar(&relayout, "relayout", false, "place every node, ignoring document positions")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached layouts")
	return cmd
}
