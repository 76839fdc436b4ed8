package http

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher is nil when body signing is disabled.
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHandler builds the REST handler. An empty hashKey disables the
// HashSHA256 body signature check.
func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services: services,
		logger:   logger,
	}
	if hashKey != "" {
		h.hasher = utils.NewHasher(hashKey)
	}

	return h
}
