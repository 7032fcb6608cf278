package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/handler"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/server"
	"github.com/MKhiriev/channel-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.New(os.Stdout, "fakeapi")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg.FakeAPI).Msg("received configs")

	handlers, err := handler.NewHandlers(cfg.FakeAPI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.FakeAPI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
