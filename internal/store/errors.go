package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStore.Get] for a key that was
	// never written or has been deleted.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCacheEmpty is returned by [DocumentCache.Load] when no document
	// has been cached yet.
	ErrCacheEmpty = errors.New("no cached configuration")

	// ErrCacheCorrupt is returned by [DocumentCache.Load] when the cached
	// value is not a JSON object.
	ErrCacheCorrupt = errors.New("cached configuration is malformed")

	// ErrStorageBusy wraps transient backend failures (lock contention,
	// connection loss).
	ErrStorageBusy = errors.New("storage temporarily unavailable")

	// ErrEmptyStoreName is returned when a store profile is saved or
	// selected under an empty name.
	ErrEmptyStoreName = errors.New("store name is empty")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
