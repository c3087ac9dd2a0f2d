// Package pkg provides the libraries behind termgraph, a renderer that draws
// node/edge graphs as braille text.
//
// # Overview
//
// A graph is a set of labelled boxes at normalized positions joined by
// straight edges. Drawing plots every box outline and every edge segment as
// braille dots on a sparse canvas and writes labels as plain characters; the
// canvas then prints as a block of text.
//
// # Architecture
//
// The typical data flow:
//
//	graph document (JSON/TOML)
//	         ↓
//	    [io] package (read, validate)
//	         ↓
//	    [layout] package (place nodes without positions)
//	         ↓
//	    [graph] package (build, then draw on a [canvas])
//	         ↓
//	    braille frame
//
// [pipeline] runs these steps with caching and is shared by the CLI and the
// HTTP [server].
//
// # Quick Start
//
//	g, _ := graph.New(graph.WithExtent(40, 40))
//	_ = g.AddNode("a", graph.WithPosition(0.2, 0.2))
//	_ = g.AddNode("b", graph.WithPosition(0.8, 0.8))
//	_ = g.AddEdge("a", "b", graph.WithLabel("x"))
//	fmt.Println(g.Draw())
//
// # Main Packages
//
// ## Core
//
// [geom] - Points and vector helpers.
//
// [canvas] - Sparse braille canvas: 2×4 dots per character cell, text
// overlay, frame output.
//
// [render] - Box and edge rasterizers against the [render.Surface] interface,
// including the rule that keeps edges out of the boxes they connect.
//
// [graph] - The coordinator: holds nodes and edges, validates positions and
// shapes, draws everything onto a surface.
//
// ## Documents and Layout
//
// [io] - Graph documents in JSON and TOML, with label visibility overrides.
//
// [layout] - Layout engines: none, grid, eades (gonum) and the Graphviz
// engines neato, fdp and circo.
//
// [examples] - Built-in documents, including the Risk board.
//
// ## Infrastructure
//
// [pipeline] - Load → layout → render with cached layouts and frames.
//
// [cache] - Cache backends: null, file, Redis and MongoDB.
//
// [config] - Layered configuration: defaults, termgraph.toml, TERMGRAPH_*
// environment variables and command flags.
//
// [server] - HTTP API for rendering documents.
//
// [watch] - Debounced file watching for live reload.
//
// [observability] - Hooks around pipeline stages, cache lookups and requests.
//
// [errors] - Structured errors with machine-readable codes.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/geom
// [canvas]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/canvas
// [render]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/render
// [render.Surface]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/render#Surface
// [graph]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/graph
// [io]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/io
// [layout]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/layout
// [examples]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/examples
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/server
// [watch]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/watch
// [observability]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/termgraph/pkg/errors
package pkg
