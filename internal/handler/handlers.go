package handler

import (
	"strings"

	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/handler/http"
	"github.com/MKhiriev/channel-console/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(cfg config.FakeAPI, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if strings.TrimSpace(cfg.Address) == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(logger)}, nil
}
