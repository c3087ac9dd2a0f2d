package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/termgraph/pkg/examples"
)

// exampleCommand creates the example command.
func (c *CLI) exampleCommand() *cobra.Command {
	var source bool

	cmd := &cobra.Command{
		Use:   "example [name]",
		Short: "List, show or draw the built-in graphs",
		Example: `  termgraph example
  termgraph example risk
  termgraph example --source simple > simple.toml
  termgraph example prototype --engine grid`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: examples.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return listExamples(cmd)
			}
			name := args[0]

			if source {
				data, err := examples.Source(name)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			doc, err := examples.Get(name)
			if err != nil {
				return err
			}
			c.applyDocDefaults(cmd, doc)

			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := c.pipelineOptions(cmd)
			if err := visibility(cmd, &opts); err != nil {
				return err
			}
			res, err := runner.Render(cmd.Context(), doc, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, res.Frame)
			return nil
		},
	}

	cmd.Flags().BoolVar(&source, "source", false, "print the example document instead of drawing it")
	addVisibilityFlags(cmd)
	return cmd
}

func listExamples(cmd *cobra.Command) error {
	var rows [][]string
	for _, name := range examples.Names() {
		doc, err := examples.Get(name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(len(doc.Nodes)),
			strconv.Itoa(len(doc.Edges)),
			strconv.Itoa(len(doc.Unplaced())),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Nodes", "Edges", "Unplaced"}, rows))
	return nil
}
