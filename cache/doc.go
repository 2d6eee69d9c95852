// Package cache stores clustering results keyed by (base, mode[, group]).
//
// The cache is an explicit object owned by the caller; nothing here is
// global. Two backends implement Store:
//
//   - Memory: an in-process map guarded by a sync.RWMutex, with optional TTL.
//   - RedisStore: a go-redis client, for sharing results between processes.
//
// Results wraps a Store with JSON encoding of cluster.Result and Prometheus
// hit/miss/invalidation counters. Keys render as "base|mode" for global
// results and "base|mode::group" for per-group results, so every entry of a
// question can be dropped at once with Invalidate(base) when its answer data
// changes.
package cache
