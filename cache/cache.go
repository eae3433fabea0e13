// Package cache provides edge-tier cache implementations.
//
// The edge tier is best-effort and non-authoritative: it may expire or evict
// entries without notice, makes no read-after-write guarantee, and must
// never be treated as a source of truth for existence checks beyond "maybe
// present".
package cache

import "context"

// EdgeCache is the interface for the edge tier.
type EdgeCache interface {
	// Get retrieves a cached translation. Returns empty string and false if
	// not found, expired, or on any backend error.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a translation in the cache, resetting its TTL.
	Set(ctx context.Context, key, value string) error
}
