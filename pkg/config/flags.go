package config

import (
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"

	"github.com/matzehuels/termgraph/pkg/cache"
	"github.com/matzehuels/termgraph/pkg/graph"
	"github.com/matzehuels/termgraph/pkg/layout"
)

// flagKeys maps flag names to config keys. Flags not listed are not
// configuration.
var flagKeys = map[string]string{
	"width":          "width",
	"height":         "height",
	"shape-width":    "shape_width",
	"shape-height":   "shape_height",
	"engine":         "engine",
	"seed":           "seed",
	"iterations":     "iterations",
	"verbose":        "verbose",
	"cache":          "cache.backend",
	"cache-dir":      "cache.dir",
	"cache-ttl":      "cache.ttl",
	"redis-addr":     "redis.addr",
	"mongo-uri":      "mongo.uri",
	"mongo-database": "mongo.database",
	"addr":           "serve.addr",
}

func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}

// RegisterFlags adds the rendering and layout flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("width", graph.DefaultMaxX, "canvas width in pixels")
	fs.Int("height", graph.DefaultMaxY, "canvas height in pixels")
	fs.Int("shape-width", graph.DefaultShapeWidth, "default node box width")
	fs.Int("shape-height", graph.DefaultShapeHeight, "default node box height")
	fs.String("engine", layout.EngineNone, "layout engine for unplaced nodes (none, grid, eades, neato, fdp, circo)")
	fs.Uint64("seed", layout.DefaultSeed, "random seed for layout engines")
	fs.Int("iterations", layout.DefaultIterations, "iterations for force-directed layout")
}

// RegisterCacheFlags adds the cache selection flags to fs.
func RegisterCacheFlags(fs *pflag.FlagSet) {
	fs.String("cache", cache.BackendFile, "cache backend (none, file, redis, mongo)")
	fs.String("cache-dir", "", "directory for the file cache")
	fs.Duration("cache-ttl", cache.DefaultTTL, "lifetime of cache entries")
	fs.String("redis-addr", "localhost:6379", "redis address or redis:// URL")
	fs.String("mongo-uri", "", "MongoDB connection string")
	fs.String("mongo-database", "termgraph", "MongoDB database")
}
