package service

import (
	"context"

	"github.com/MKhiriev/meds-gateway/models"
)

// AuthService checks the HTTP Basic credentials presented by API callers.
type AuthService interface {
	// VerifyCredentials returns nil when presented matches the configured
	// username and password, and ErrAuthenticationFailed otherwise. Both
	// fields are always compared in constant time.
	VerifyCredentials(ctx context.Context, presented models.Credentials) error
}

// MedicationService serves the medication list from the upstream CSV file
// through the single-slot cache.
type MedicationService interface {
	// GetMedications returns the cached list, refreshing it from the
	// upstream when the cached copy is missing or expired.
	GetMedications(ctx context.Context) (models.MedicationList, error)

	// CacheEntry returns the currently cached batch without refreshing it.
	CacheEntry(ctx context.Context) (models.CacheEntry, bool)
}

// MathService implements the arithmetic endpoints.
type MathService interface {
	Sum(ctx context.Context, numbers []float64) float64
	Product(ctx context.Context, numbers []float64) float64
}

// GreetService builds greeting messages.
type GreetService interface {
	Greet(ctx context.Context, name string) string
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
