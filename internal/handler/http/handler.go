package http

import (
	"github.com/MKhiriev/channel-console/internal/logger"
)

type Handler struct {
	directory *directory

	logger *logger.Logger
}

// NewHandler returns a handler backed by an empty in-memory directory.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		directory: newDirectory(),
		logger:    logger,
	}
}
