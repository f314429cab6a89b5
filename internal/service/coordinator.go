// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-translation-webhooks/internal/adapter"
	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/events"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/store"
	"github.com/MKhiriev/go-translation-webhooks/models"
)

type updateCoordinator struct {
	textFlows store.TextFlowRepository
	documents store.DocumentRepository
	persons   store.PersonRepository

	aggregator StatisticsAggregator
	builder    NotificationBuilder
	dispatcher adapter.WebhookDispatcher
	publisher  events.Publisher

	displayEmail bool

	logger *logger.Logger
}

// NewUpdateCoordinator wires the pipeline together.
func NewUpdateCoordinator(
	storages *store.Storages,
	aggregator StatisticsAggregator,
	builder NotificationBuilder,
	dispatcher adapter.WebhookDispatcher,
	publisher events.Publisher,
	cfg config.App,
	logger *logger.Logger,
) UpdateCoordinator {
	return &updateCoordinator{
		textFlows:    storages.TextFlows,
		documents:    storages.Documents,
		persons:      storages.Persons,
		aggregator:   aggregator,
		builder:      builder,
		dispatcher:   dispatcher,
		publisher:    publisher,
		displayEmail: cfg.DisplayUserEmail,
		logger:       logger,
	}
}

// OnTranslationUpdated implements [UpdateCoordinator].
//
// The statistics leg (internal events) always runs to completion before the
// webhook leg starts, so cache and metrics consumers see every committed
// transition even when the notification is skipped or fails.
func (c *updateCoordinator) OnTranslationUpdated(ctx context.Context, batch models.TransitionBatch) Outcome {
	log := &logger.Logger{Logger: c.logger.With().
		Int64("document_id", batch.DocumentID).
		Str("locale_id", batch.LocaleID).
		Int("transitions", len(batch.Transitions)).
		Logger()}
	log.Debug().Msg("batch received")

	if err := batch.Validate(); err != nil {
		log.Error().Err(err).Msg("malformed batch dropped")
		return OutcomeFailed
	}

	if batch.Empty() {
		log.Debug().Msg("empty batch skipped")
		return OutcomeSkipped
	}

	// one memo serves both legs; every unit is looked up at most once
	wordCountOf := c.memoizedWordCounts()

	delta, err := c.aggregator.Aggregate(ctx, batch.Transitions, wordCountOf)
	if err != nil {
		log.Warn().Err(err).Msg("batch aggregated with partial lookup failures")
	}
	log.Debug().Msg("batch aggregated")

	c.publishStatistics(ctx, batch, wordCountOf)

	return c.notify(ctx, log, batch, delta)
}

// publishStatistics emits one event per transition. Transitions whose word
// count could not be resolved are silently omitted; the aggregator already
// reported them.
func (c *updateCoordinator) publishStatistics(ctx context.Context, batch models.TransitionBatch, wordCountOf WordCountFunc) {
	for _, tr := range batch.Transitions {
		wordCount, err := wordCountOf(ctx, tr.TextUnitID)
		if err != nil {
			continue
		}

		c.publisher.Publish(models.DocumentStatisticUpdated{
			VersionID:     batch.ProjectVersionID,
			DocumentID:    batch.DocumentID,
			LocaleID:      batch.LocaleID,
			WordCount:     wordCount,
			PreviousState: tr.PreviousState,
			NewState:      tr.NewState,
		})
	}
}

func (c *updateCoordinator) notify(ctx context.Context, log *logger.Logger, batch models.TransitionBatch, delta models.WordCountDelta) Outcome {
	document, err := c.documents.DocumentContext(ctx, batch.DocumentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info().Msg("document vanished, notification skipped")
			return OutcomeSkipped
		}
		log.Error().Err(err).Msg("error resolving document context")
		return OutcomeFailed
	}
	log.Debug().Str("project_slug", document.ProjectSlug).Msg("context resolved")

	if len(document.Subscribers) == 0 {
		log.Debug().Msg("project has no subscribers, notification skipped")
		return OutcomeSkipped
	}

	actor, err := c.persons.PersonSummary(ctx, batch.ActorPersonID, c.displayEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info().Int64("person_id", batch.ActorPersonID).Msg("actor vanished, notification skipped")
			return OutcomeSkipped
		}
		log.Error().Err(err).Msg("error resolving actor summary")
		return OutcomeFailed
	}

	payload, err := c.builder.Build(actor, document, batch.LocaleID, delta)
	if err != nil {
		log.Error().Err(err).Msg("error building notification payload")
		return OutcomeFailed
	}

	c.dispatcher.Dispatch(ctx, document.Subscribers, payload)
	log.Info().Int("subscribers", len(document.Subscribers)).Msg("batch notified")

	return OutcomeNotified
}

// memoizedWordCounts returns a per-batch [WordCountFunc]. Both successful
// counts and lookup errors are cached. The closure is used by a single
// goroutine, so no locking.
func (c *updateCoordinator) memoizedWordCounts() WordCountFunc {
	counts := make(map[int64]int)
	errs := make(map[int64]error)

	return func(ctx context.Context, textUnitID int64) (int, error) {
		if err, ok := errs[textUnitID]; ok {
			return 0, err
		}
		if wordCount, ok := counts[textUnitID]; ok {
			return wordCount, nil
		}

		wordCount, err := c.textFlows.WordCount(ctx, textUnitID)
		if err != nil {
			errs[textUnitID] = err
			return 0, err
		}

		counts[textUnitID] = wordCount
		return wordCount, nil
	}
}
