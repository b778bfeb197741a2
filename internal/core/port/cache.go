package port

import "context"

// ReferenceCache caches read-mostly reference data (package and rate
// listings). Implementations must degrade silently: a miss or a cache
// failure just means the caller reads the store.
type ReferenceCache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, val any)
	Invalidate(ctx context.Context, keys ...string)
}
