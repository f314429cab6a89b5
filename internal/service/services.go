package service

import (
	"github.com/MKhiriev/go-translation-webhooks/internal/adapter"
	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/events"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/store"
)

type Services struct {
	Aggregator  StatisticsAggregator
	Builder     NotificationBuilder
	Coordinator UpdateCoordinator
	StateCache  *DocumentStateCache
}

func NewServices(storages *store.Storages, dispatcher adapter.WebhookDispatcher, bus *events.Bus, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	aggregator := NewStatisticsAggregator(logger)
	builder := NewNotificationBuilder()

	return &Services{
		Aggregator:  aggregator,
		Builder:     builder,
		Coordinator: NewUpdateCoordinator(storages, aggregator, builder, dispatcher, bus, cfg.App, logger),
		StateCache:  NewDocumentStateCache(bus, logger),
	}
}
