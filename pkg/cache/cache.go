// Package cache stores computed layouts and frames between runs.
//
// # Backends
//
// Every backend implements [Cache], a byte-oriented key/value store with
// per-entry TTL:
//
//   - [NullCache]: stores nothing (caching disabled)
//   - [FileCache]: JSON entry files under a directory, for the CLI
//   - [RedisCache]: a Redis server, for the HTTP API
//   - [MongoCache]: a MongoDB collection with a TTL index
//
// [Open] builds one from a [Config].
//
// # Keys
//
// A [Keyer] derives keys from the document's topology hash and the options
// that affect the result, so a changed option never returns a stale entry:
//
//	k := cache.NewDefaultKeyer()
//	key := k.LayoutKey(doc.Hash(), cache.LayoutKeyOpts{Engine: "eades", Seed: 42})
//
// Wrap a keyer with [NewScopedKeyer] to give a tenant or test its own
// namespace.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTTL is how long entries live unless configured otherwise.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a key/value store for cached results.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A TTL of zero means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON reads key and decodes it into v. It returns [ErrCacheMiss] when
// the key is absent or the entry no longer decodes.
func GetJSON(ctx context.Context, c Cache, key string, v any) error {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCacheMiss
	}
	if err := json.Unmarshal(data, v); err != nil {
		_ = c.Delete(ctx, key)
		return ErrCacheMiss
	}
	return nil
}

// SetJSON encodes v and stores it under key. It returns the encoded size.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) (int, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("encode cache entry: %w", err)
	}
	return len(data), c.Set(ctx, key, data, ttl)
}

// =============================================================================
// Keys
// =============================================================================

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies computed node positions.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string
	// FrameKey identifies a rendered frame.
	FrameKey(docHash string, opts FrameKeyOpts) string
}

// LayoutKeyOpts are the inputs that change a layout.
type LayoutKeyOpts struct {
	Engine     string `json:"engine"`
	Seed       uint64 `json:"seed"`
	Iterations int    `json:"iterations"`
}

// FrameKeyOpts are the inputs that change a frame besides the document.
//
// The visibility fields hold the override mode of each text kind; zero
// means the document's own settings.
type FrameKeyOpts struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	Labels     int `json:"labels,omitempty"`
	Attrs      int `json:"attrs,omitempty"`
	EdgeLabels int `json:"edge_labels,omitempty"`
}

// DefaultKeyer hashes key inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// FrameKey implements [Keyer].
func (DefaultKeyer) FrameKey(docHash string, opts FrameKeyOpts) string {
	return hashKey("frame", docHash, opts)
}
