// Package cache provides the TTL cache used for Wikipedia summary
// enrichment. Values are opaque byte payloads so the in-memory and Redis
// backends share one contract.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the expiry applied when Set is called with a non-positive TTL.
const DefaultTTL = 24 * time.Hour

// Store maps keys to byte payloads with per-entry expiry. An expired entry
// is indistinguishable from an absent one.
type Store interface {
	// Get returns the payload for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key with expiry now + ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
