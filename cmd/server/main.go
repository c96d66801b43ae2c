package main

import (
	"fmt"

	"github.com/MKhiriev/meds-gateway/internal/adapter"
	"github.com/MKhiriev/meds-gateway/internal/config"
	"github.com/MKhiriev/meds-gateway/internal/handler"
	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/internal/server"
	"github.com/MKhiriev/meds-gateway/internal/service"
	"github.com/MKhiriev/meds-gateway/internal/store"
	"github.com/MKhiriev/meds-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("meds-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	upstream, err := adapter.NewHTTPUpstreamAdapter(cfg.Upstream, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upstream adapter")
	}

	storages, err := store.NewStorages(cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, upstream, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
