package service

import (
	"fmt"

	"github.com/MKhiriev/meds-gateway/internal/adapter"
	"github.com/MKhiriev/meds-gateway/internal/config"
	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/internal/store"
	"github.com/MKhiriev/meds-gateway/models"
)

// Services groups every business service used by the transport layer.
type Services struct {
	AuthService       AuthService
	MedicationService MedicationService
	MathService       MathService
	GreetService      GreetService
	AppInfoService    AppInfoService
}

// NewServices wires all services. It fails when configuration required by a
// service is missing, so that the process stops before serving traffic.
func NewServices(
	storages *store.Storages,
	upstream adapter.UpstreamAdapter,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	authService, err := NewAuthService(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	medicationService, err := NewMedicationService(storages.MedicationCache, upstream, cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("medication service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:       authService,
		MedicationService: medicationService,
		MathService:       NewMathService(),
		GreetService:      NewGreetService(),
		AppInfoService:    appInfoService,
	}, nil
}
