package cache

import (
	"context"

	"github.com/matzehuels/termgraph/pkg/errors"
)

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend       string // none, file, redis or mongo
	Dir           string // file: directory, empty for DefaultDir
	RedisAddr     string // redis: host:port or redis:// URL
	MongoURI      string // mongo: connection string
	MongoDatabase string // mongo: database name
}

// Open returns the backend described by cfg. The empty backend means none.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		c, err := NewFileCache(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "redis cache needs redis.addr")
		}
		c, err := NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendMongo:
		if cfg.MongoURI == "" || cfg.MongoDatabase == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "mongo cache needs mongo.uri and mongo.database")
		}
		c, err := NewMongoCache(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (want none, file, redis or mongo)", cfg.Backend)
}
