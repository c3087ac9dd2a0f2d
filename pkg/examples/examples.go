// Package examples provides built-in graph documents.
//
// The documents are embedded directly into the binary using go:embed so the
// CLI and the HTTP API can draw them without any files on disk:
//
//   - simple: three nodes joined in a triangle
//   - risk: the 42 territories of the Risk board with owner and armies
//   - prototype: five unplaced nodes, for trying layout engines
package examples

import (
	"embed"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/termgraph/pkg/errors"
	tgio "github.com/matzehuels/termgraph/pkg/io"
)

//go:embed data/*.toml
var files embed.FS

var (
	parsed    map[string]*tgio.Document
	parsedErr error
	parseOnce sync.Once
)

func load() {
	parsed = make(map[string]*tgio.Document)
	entries, err := files.ReadDir("data")
	if err != nil {
		parsedErr = err
		return
	}
	for _, e := range entries {
		data, err := files.ReadFile("data/" + e.Name())
		if err != nil {
			parsedErr = err
			return
		}
		doc, err := tgio.Unmarshal(data, tgio.FormatTOML)
		if err != nil {
			parsedErr = errors.Wrap(errors.ErrCodeInternal, err, "example %s", e.Name())
			return
		}
		parsed[strings.TrimSuffix(e.Name(), ".toml")] = doc
	}
}

// Names lists the available examples in sorted order.
func Names() []string {
	parseOnce.Do(load)
	names := make([]string, 0, len(parsed))
	for name := range parsed {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get returns a copy of the named example that the caller may modify.
func Get(name string) (*tgio.Document, error) {
	parseOnce.Do(load)
	if parsedErr != nil {
		return nil, parsedErr
	}
	doc, ok := parsed[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no example named %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return doc.Clone(), nil
}

// Source returns the example's TOML text as embedded.
func Source(name string) ([]byte, error) {
	data, err := files.ReadFile("data/" + name + ".toml")
	if err != nil {
		return nil, errors.New(errors.ErrCodeNotFound, "no example named %q", name)
	}
	return data, nil
}
