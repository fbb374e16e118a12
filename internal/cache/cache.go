// Package cache provides the TTL key-value stores backing the geocoding and
// image adapters. Values are opaque strings; callers JSON-encode structured
// data before storing it.
package cache

import "context"

// Store is a TTL cache. Implementations must be safe for concurrent use.
// The TTL is fixed per Store instance so each adapter owns a store matching
// its documented retention (24h for images, 7 days for geocoding).
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}
