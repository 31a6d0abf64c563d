package ports

import (
	"context"
	"time"
)

// Cache is a minimal key-value contract for the order read cache. A cache
// error must never fail the caller; repositories fall back to the primary
// store instead.
type Cache interface {
	// Get returns the raw bytes for key. ok=false means a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key with a TTL (0 or negative means no expiry).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
}
