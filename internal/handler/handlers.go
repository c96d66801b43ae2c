package handler

import (
	"github.com/MKhiriev/meds-gateway/internal/config"
	"github.com/MKhiriev/meds-gateway/internal/handler/http"
	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
