package store

import (
	"context"

	"github.com/MKhiriev/meds-gateway/models"
)

// RefreshFunc produces a new batch of records when the cached one is missing
// or expired. It is called with the cache lock held.
type RefreshFunc func(ctx context.Context) ([]models.MedicationRecord, error)

// MedicationCache is a single-slot, time-to-live cache of decoded
// medication records. There is exactly one entry; it has no key.
type MedicationCache interface {
	// GetOrRefresh returns the cached records while they are fresh. Otherwise
	// it calls refresh, stores the result with the current time and returns
	// it. The freshness check, the refresh and the store run as one critical
	// section, so concurrent misses trigger a single refresh.
	//
	// A failed refresh leaves the previous entry untouched and returns the
	// refresh error unchanged.
	//
	// The returned slice is shared by all callers and must not be modified.
	GetOrRefresh(ctx context.Context, refresh RefreshFunc) ([]models.MedicationRecord, error)

	// Snapshot returns the current entry without refreshing it. ok is false
	// while the cache is empty. It never waits for a refresh in progress.
	Snapshot() (entry models.CacheEntry, ok bool)
}
