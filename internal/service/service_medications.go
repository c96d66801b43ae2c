package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/meds-gateway/internal/adapter"
	"github.com/MKhiriev/meds-gateway/internal/config"
	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/internal/parser"
	"github.com/MKhiriev/meds-gateway/internal/store"
	"github.com/MKhiriev/meds-gateway/models"
)

type medicationService struct {
	cache    store.MedicationCache
	upstream adapter.UpstreamAdapter
	rowLimit int

	logger *logger.Logger
}

// NewMedicationService composes the upstream fetcher and the CSV decoder
// behind cache. cfg.RowLimit caps the number of data rows accepted per fetch.
func NewMedicationService(cache store.MedicationCache, upstream adapter.UpstreamAdapter, cfg config.Cache, logger *logger.Logger) (MedicationService, error) {
	if cache == nil || upstream == nil {
		return nil, ErrNilDependency
	}

	return &medicationService{
		cache:    cache,
		upstream: upstream,
		rowLimit: cfg.RowLimit,
		logger:   logger,
	}, nil
}

// GetMedications returns the medication list. On a cache miss it performs one
// upstream fetch followed by a decode; either failure is returned unchanged
// (wrapped) and leaves the cached entry as it was.
func (m *medicationService) GetMedications(ctx context.Context) (models.MedicationList, error) {
	records, err := m.cache.GetOrRefresh(ctx, m.refresh)
	if err != nil {
		return models.MedicationList{}, err
	}

	return models.NewMedicationList(records), nil
}

func (m *medicationService) CacheEntry(_ context.Context) (models.CacheEntry, bool) {
	return m.cache.Snapshot()
}

// refresh fetches and decodes the upstream file. The fetch is detached from
// the caller's cancellation so that requests waiting on the same refresh are
// not failed by one disconnecting client; the upstream timeout still bounds it.
func (m *medicationService) refresh(ctx context.Context) ([]models.MedicationRecord, error) {
	log := logger.FromContext(ctx)

	text, err := m.upstream.FetchResource(context.WithoutCancel(ctx))
	if errors.Is(err, adapter.ErrUpstreamBodyTooLarge) {
		log.Err(err).Str("func", "medicationService.refresh").Msg("upstream resource exceeds size limit")
		return nil, fmt.Errorf("decode medications: %w", &parser.MalformedInputError{Reason: parser.ReasonSizeLimitExceeded})
	}
	if err != nil {
		log.Err(err).Str("func", "medicationService.refresh").Msg("fetching upstream resource failed")
		return nil, fmt.Errorf("fetch medications: %w", err)
	}

	records, err := parser.DecodeCSV(text, m.rowLimit)
	if err != nil {
		log.Err(err).Str("func", "medicationService.refresh").Msg("decoding upstream resource failed")
		return nil, fmt.Errorf("decode medications: %w", err)
	}

	log.Info().
		Str("func", "medicationService.refresh").
		Int("records", len(records)).
		Msg("medication list refreshed from upstream")

	return records, nil
}
