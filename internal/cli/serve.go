package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/termgraph/pkg/cache"
	"github.com/matzehuels/termgraph/pkg/observability"
	"github.com/matzehuels/termgraph/pkg/pipeline"
	"github.com/matzehuels/termgraph/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve the HTTP API:

  POST /render           render a JSON graph document
  POST /layout           return the document with every node placed
  GET  /examples/{name}  render a built-in example
  GET  /healthz          liveness check

Layout and render options come from query parameters, falling back to the
configuration.`,
		Example: `  termgraph serve --addr :9000 --cache redis --redis-addr localhost:6379
  curl -s -X POST --data @graph.json 'localhost:8080/render?format=text&engine=eades'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if c.Config.Verbose {
				observability.SetServerHooks(observability.NewLogHooks(logger))
			}

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()
			runner.Keyer = cache.NewScopedKeyer(nil, "api:")

			defaults := pipeline.Options{
				Engine:     c.Config.Engine,
				Seed:       c.Config.Seed,
				Iterations: c.Config.Iterations,
				TTL:        c.Config.Cache.TTL,
			}
			srv := server.New(runner,
				server.WithDefaults(defaults),
				server.WithLogger(logger.WithPrefix("http")))

			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			printInfo("Serving on %s (cache: %s)", addr, c.Config.Cache.Backend)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from serve.addr, :8080)")
	return cmd
}
