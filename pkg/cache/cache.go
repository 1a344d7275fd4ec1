// Package cache provides the caching layer used by the gaprule pipeline:
// a small Cache interface with file, redis, mongo, and null backends, plus
// key derivation for the pipeline stages.
package cache

import (
	"context"
	"time"
)

// TTLs per pipeline stage. Layouts are pure functions of the scene and can
// live long; artifacts embed style defaults that change between releases.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented key-value store with per-entry TTLs.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
