package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrCacheMiss is returned by [GetJSON] when an item is not in the cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrUnavailable is returned when a network backend cannot be reached.
	ErrUnavailable = errors.New("cache backend unavailable")
)

// connectAttempts and connectBackoff bound how long a network backend may
// take to come up. The wait doubles after each failed ping.
var (
	connectAttempts = 4
	connectBackoff  = 250 * time.Millisecond
)

// waitReady pings a backend until it answers. A server that is still
// starting is the usual reason for a failed first ping, so only context
// errors stop the loop early. The final failure wraps [ErrUnavailable].
func waitReady(ctx context.Context, backend string, ping func(context.Context) error) error {
	wait := connectBackoff
	var err error
	for attempt := 1; ; attempt++ {
		if err = ping(ctx); err == nil {
			return nil
		}
		if ctx.Err() != nil || attempt == connectAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s: %w", ErrUnavailable, backend, ctx.Err())
		case <-time.After(wait):
			wait *= 2
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, backend, err)
}
