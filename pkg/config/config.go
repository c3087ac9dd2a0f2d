// Package config loads termgraph settings.
//
// Values are merged in increasing priority:
//
//  1. Built-in defaults
//  2. The config file (termgraph.toml in the working directory by default)
//  3. Environment variables with the TERMGRAPH_ prefix
//     (TERMGRAPH_CACHE_BACKEND=redis sets cache.backend)
//  4. Command-line flags registered with [RegisterFlags]
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/matzehuels/termgraph/pkg/cache"
	"github.com/matzehuels/termgraph/pkg/errors"
	"github.com/matzehuels/termgraph/pkg/graph"
	"github.com/matzehuels/termgraph/pkg/layout"
)

// DefaultFile is the config file read when none is named.
const DefaultFile = "termgraph.toml"

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "TERMGRAPH_"

// Config holds all settings.
type Config struct {
	Width       int    `koanf:"width"`
	Height      int    `koanf:"height"`
	ShapeWidth  int    `koanf:"shape_width"`
	ShapeHeight int    `koanf:"shape_height"`
	Engine      string `koanf:"engine"`
	Seed        uint64 `koanf:"seed"`
	Iterations  int    `koanf:"iterations"`
	Verbose     bool   `koanf:"verbose"`

	Cache CacheConfig `koanf:"cache"`
	Redis RedisConfig `koanf:"redis"`
	Mongo MongoConfig `koanf:"mongo"`
	Serve ServeConfig `koanf:"serve"`
}

// CacheConfig selects the layout and frame cache.
type CacheConfig struct {
	Backend string        `koanf:"backend"`
	Dir     string        `koanf:"dir"`
	TTL     time.Duration `koanf:"ttl"`
}

// RedisConfig locates the Redis cache backend.
type RedisConfig struct {
	Addr string `koanf:"addr"`
}

// MongoConfig locates the MongoDB cache backend.
type MongoConfig struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr string `koanf:"addr"`
}

func defaults() map[string]any {
	return map[string]any{
		"width":          graph.DefaultMaxX,
		"height":         graph.DefaultMaxY,
		"shape_width":    graph.DefaultShapeWidth,
		"shape_height":   graph.DefaultShapeHeight,
		"engine":         layout.EngineNone,
		"seed":           layout.DefaultSeed,
		"iterations":     layout.DefaultIterations,
		"verbose":        false,
		"cache.backend":  cache.BackendFile,
		"cache.dir":      "",
		"cache.ttl":      cache.DefaultTTL.String(),
		"redis.addr":     "localhost:6379",
		"mongo.uri":      "",
		"mongo.database": "termgraph",
		"serve.addr":     ":8080",
	}
}

// LoadOptions says where to read configuration from.
type LoadOptions struct {
	// File is the config file. Empty means DefaultFile, which may be
	// absent; a named file must exist.
	File string
	// Flags are merged last. Nil skips them.
	Flags *pflag.FlagSet
}

// Load merges defaults, file, environment and flags, then validates.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// 2. Config file
	path, required := opts.File, true
	if path == "" {
		path, required = DefaultFile, false
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
	} else if required || !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	// 4. Flags
	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, flagKey(opts.Flags)), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration, ignoring files and the
// environment.
func Default() *Config {
	k := koanf.New(".")
	var cfg Config
	if err := k.Load(mapProvider(defaults()), nil); err == nil {
		_ = k.Unmarshal("", &cfg)
	}
	return &cfg
}

// sections are the config tables; their env variables nest one level.
var sections = []string{"cache", "redis", "mongo", "serve"}

// envKey maps TERMGRAPH_CACHE_TTL to cache.ttl and TERMGRAPH_SHAPE_WIDTH
// to shape_width.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if ok && slices.Contains(sections, section) {
		return section + "." + rest
	}
	return key
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.ShapeWidth <= 0 || c.ShapeHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "shape_width and shape_height must be positive, got %dx%d", c.ShapeWidth, c.ShapeHeight)
	}
	if !layout.Valid(c.Engine) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown engine %q (want one of %s)", c.Engine, strings.Join(layout.Names(), ", "))
	}
	if c.Iterations < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "iterations must not be negative")
	}
	switch c.Cache.Backend {
	case "", cache.BackendNone, cache.BackendFile, cache.BackendRedis, cache.BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}

// CacheOpen returns the settings for [cache.Open].
func (c *Config) CacheOpen() cache.Config {
	return cache.Config{
		Backend:       c.Cache.Backend,
		Dir:           c.Cache.Dir,
		RedisAddr:     c.Redis.Addr,
		MongoURI:      c.Mongo.URI,
		MongoDatabase: c.Mongo.Database,
	}
}

// mapProvider serves an in-memory map to koanf.
type mapProvider map[string]any

func (p mapProvider) Read() (map[string]any, error) {
	out := make(map[string]any, len(p))
	for k, v := range p {
		out[k] = v
	}
	return unflatten(out), nil
}

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, stderrors.New("not implemented")
}

// unflatten turns {"cache.ttl": v} into {"cache": {"ttl": v}}.
func unflatten(flat map[string]any) map[string]any {
	out := make(map[string]any)
	for key, v := range flat {
		section, rest, ok := strings.Cut(key, ".")
		if !ok {
			out[key] = v
			continue
		}
		sub, _ := out[section].(map[string]any)
		if sub == nil {
			sub = make(map[string]any)
			out[section] = sub
		}
		sub[rest] = v
	}
	return out
}
