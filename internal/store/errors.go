package store

import "errors"

// Sentinel errors returned by storage constructors and methods. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrInvalidCacheTTL is returned when a cache is constructed with a
	// non-positive time-to-live.
	ErrInvalidCacheTTL = errors.New("cache ttl must be positive")

	// ErrNilRefreshFunc is returned by GetOrRefresh when the cache is stale
	// and no refresh function was supplied.
	ErrNilRefreshFunc = errors.New("nil refresh function")
)
