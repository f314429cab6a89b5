package handler

import (
	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/handler/http"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, queue http.BatchEnqueuer, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, queue, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
