package store

import (
	"github.com/MKhiriev/meds-gateway/internal/config"
	"github.com/MKhiriev/meds-gateway/internal/logger"
)

// Storages groups the in-memory state owned by the application.
type Storages struct {
	MedicationCache MedicationCache
}

// NewStorages builds every storage from cfg.
func NewStorages(cfg config.Cache, logger *logger.Logger) (*Storages, error) {
	medicationCache, err := NewMedicationCache(cfg.TTL, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{MedicationCache: medicationCache}, nil
}
