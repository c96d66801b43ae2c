package http

import (
	"time"

	"github.com/MKhiriev/meds-gateway/internal/config"
	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/internal/service"
)

// basicAuthRealm is announced in the WWW-Authenticate challenge.
const basicAuthRealm = "meds"

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
