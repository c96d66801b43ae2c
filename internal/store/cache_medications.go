package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/models"
)

type medicationCache struct {
	// mu serialises check-refresh-store; entry is only written under mu.
	mu    sync.Mutex
	entry atomic.Pointer[models.CacheEntry]

	ttl time.Duration
	now func() time.Time

	logger *logger.Logger
}

// NewMedicationCache creates an empty [MedicationCache] whose entries stay
// fresh for ttl. Expiry is checked lazily on access; no goroutines are
// started.
func NewMedicationCache(ttl time.Duration, logger *logger.Logger) (MedicationCache, error) {
	return newMedicationCache(ttl, logger)
}

func newMedicationCache(ttl time.Duration, logger *logger.Logger) (*medicationCache, error) {
	if ttl <= 0 {
		return nil, ErrInvalidCacheTTL
	}

	return &medicationCache{
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}, nil
}

func (c *medicationCache) GetOrRefresh(ctx context.Context, refresh RefreshFunc) ([]models.MedicationRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if current := c.entry.Load(); current != nil && current.IsFresh(now, c.ttl) {
		c.logger.Debug().
			Str("func", "medicationCache.GetOrRefresh").
			Dur("age", now.Sub(current.FetchedAt)).
			Msg("cache hit")
		return current.Records, nil
	}

	if refresh == nil {
		return nil, ErrNilRefreshFunc
	}

	records, err := refresh(ctx)
	if err != nil {
		return nil, err
	}

	c.entry.Store(&models.CacheEntry{Records: records, FetchedAt: c.now()})
	c.logger.Debug().
		Str("func", "medicationCache.GetOrRefresh").
		Int("records", len(records)).
		Msg("cache refreshed")

	return records, nil
}

func (c *medicationCache) Snapshot() (models.CacheEntry, bool) {
	current := c.entry.Load()
	if current == nil {
		return models.CacheEntry{}, false
	}
	return *current, true
}
