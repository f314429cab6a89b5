package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-translation-webhooks/internal/adapter"
	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/events"
	"github.com/MKhiriev/go-translation-webhooks/internal/handler"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/server"
	"github.com/MKhiriev/go-translation-webhooks/internal/service"
	"github.com/MKhiriev/go-translation-webhooks/internal/store"
	"github.com/MKhiriev/go-translation-webhooks/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("translation-webhooks")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	bus := events.NewBus(log)
	dispatcher := adapter.NewWebhookDispatcher(cfg.Dispatch, log)
	services := service.NewServices(storages, dispatcher, bus, cfg, log)

	queue := workers.NewBatchQueue(services.Coordinator, cfg.Workers, log)
	workers.NewWorkers(queue).Run()

	handlers, err := handler.NewHandlers(services, queue, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log,
		func(ctx context.Context) {
			if err := queue.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("batch queue shutdown incomplete")
			}
		},
		func(context.Context) {
			delivered, failed := dispatcher.Stats()
			log.Info().
				Int64("delivered", delivered).
				Int64("failed", failed).
				Msg("webhook delivery totals")
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
