package http

import (
	"context"

	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/service"
	"github.com/MKhiriev/go-translation-webhooks/models"
)

// BatchEnqueuer hands validated batches to the background pipeline.
// Satisfied by the workers batch queue.
type BatchEnqueuer interface {
	Enqueue(ctx context.Context, batch models.TransitionBatch) error
}

type Handler struct {
	services *service.Services
	queue    BatchEnqueuer
	app      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, queue BatchEnqueuer, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		queue:    queue,
		app:      cfg,
		logger:   logger,
	}
}
