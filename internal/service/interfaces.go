// Package service contains the translation-update pipeline: word-count
// aggregation, context resolution, notification construction, and the
// coordinator that drives one batch through all of them.
package service

import (
	"context"

	"github.com/MKhiriev/go-translation-webhooks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// WordCountFunc resolves the source word count of a text unit. The
// coordinator passes a per-batch memoizing implementation so repeated
// transitions for the same unit cost one database round trip.
type WordCountFunc func(ctx context.Context, textUnitID int64) (int, error)

// StatisticsAggregator folds a batch of state transitions into one signed
// word-count delta.
type StatisticsAggregator interface {
	// Aggregate applies every transition to a fresh delta: the previous
	// state's bucket loses the unit's word count and the new state's bucket
	// gains it. A failed word-count lookup skips that transition's
	// contribution; all such failures are joined into the returned error,
	// which is non-fatal to the batch.
	Aggregate(ctx context.Context, transitions []models.StateTransition, wordCountOf WordCountFunc) (models.WordCountDelta, error)
}

// NotificationBuilder assembles the outbound webhook payload.
type NotificationBuilder interface {
	// Build is pure: it constructs the payload from already-resolved inputs
	// and validates that every required field is present. A validation
	// failure is fatal to that batch's notification only.
	Build(actor models.UserSummary, document models.DocumentContext, localeID string, delta models.WordCountDelta) (models.NotificationPayload, error)
}

// UpdateCoordinator drives one committed translation update through the
// pipeline.
type UpdateCoordinator interface {
	// OnTranslationUpdated processes a batch end to end and returns the
	// terminal outcome. It never returns an error; failures are logged and
	// the batch is dropped, the triggering caller is unaffected.
	OnTranslationUpdated(ctx context.Context, batch models.TransitionBatch) Outcome
}

// Outcome is the terminal state of one batch's trip through the pipeline.
type Outcome string

const (
	// OutcomeNotified means the payload was handed to the dispatcher for
	// every subscriber. Individual deliveries may still have failed; that
	// is the dispatcher's concern.
	OutcomeNotified Outcome = "Notified"

	// OutcomeSkipped means the pipeline stopped deliberately: an empty
	// batch, a vanished document or actor, or a project with no
	// subscribers. Statistics events already published stay published.
	OutcomeSkipped Outcome = "Skipped"

	// OutcomeFailed means an unexpected error aborted the batch.
	OutcomeFailed Outcome = "Failed"
)
