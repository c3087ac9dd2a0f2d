// Package io reads and writes graph documents in JSON and TOML.
//
// # Overview
//
// A graph document is the on-disk form of a termgraph drawing: the canvas
// extent, a default node shape, the nodes with optional normalized
// positions and attributes, and the labeled edges. Documents are what the
// CLI, the HTTP API and the layout cache exchange; [Document.Build] turns
// one into a [graph.Graph] ready to draw.
//
// # Format
//
// JSON and TOML share field names:
//
//	{
//	  "width": 300,
//	  "height": 135,
//	  "default_shape": {"width": 10, "height": 10},
//	  "nodes": [
//	    {"id": "Alaska", "x": 0.05, "y": 0.1, "attrs": {"owner": "Ethan"}, "show_attrs": true},
//	    {"id": "Kamchatka"}
//	  ],
//	  "edges": [
//	    {"from": "Alaska", "to": "Kamchatka", "label": "strait"}
//	  ]
//	}
//
// # Node Fields
//
// Required:
//   - id: Unique label, shown inside the box
//
// Optional:
//   - x, y: Normalized position in [0,1]; a node missing either is unplaced
//   - shape: Box size in pixels, overriding default_shape
//   - attrs: Key/value pairs, displayed in the order they are written
//   - show_label: Set to false to hide the id (default true)
//   - show_attrs: Set to true to append the attributes to the label
//
// Unplaced nodes (see [Document.Unplaced]) are drawn at the origin unless a
// layout engine assigns them a position first.
//
// # Reading and Writing
//
// [ReadFile] and [WriteFile] pick the format from the file extension;
// [Read] and [Write] take it explicitly:
//
//	doc, err := io.ReadFile("risk.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := doc.Build(io.BuildOptions{})
//
// Errors carry pkg/errors codes: FILE_NOT_FOUND, INVALID_FORMAT for
// undecodable input and INVALID_INPUT for structural problems such as
// duplicate ids or dangling edges.
package io
