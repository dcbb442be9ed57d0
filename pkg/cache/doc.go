// Package cache provides a generic key-value cache with TTL support,
// backed by an in-memory LRU store or Redis.
//
// Stores implement Cache[V]. Remember deduplicates concurrent misses
// with singleflight so an expensive loader runs once per key:
//
//	users := cache.NewMemory[User](cache.WithMaxEntries(10000))
//	u, err := cache.Remember(ctx, users, id, 5*time.Minute,
//		func(ctx context.Context) (User, error) {
//			return repo.FindUser(ctx, id)
//		})
//
// TTL semantics for Set: positive expires after the duration, zero uses
// the store's default TTL, negative never expires.
package cache
