// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-translation-webhooks/internal/adapter"
	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/mock"
	"github.com/MKhiriev/go-translation-webhooks/internal/service"
	"github.com/MKhiriev/go-translation-webhooks/internal/store"
	"github.com/MKhiriev/go-translation-webhooks/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type coordinatorMocks struct {
	textFlows  *mock.MockTextFlowRepository
	documents  *mock.MockDocumentRepository
	persons    *mock.MockPersonRepository
	dispatcher *mock.MockWebhookDispatcher
	publisher  *mock.MockPublisher
}

// newTestCoordinator builds a coordinator over mock collaborators with the
// real aggregator and builder.
func newTestCoordinator(t *testing.T, ctrl *gomock.Controller, cfg config.App) (service.UpdateCoordinator, coordinatorMocks) {
	t.Helper()

	m := coordinatorMocks{
		textFlows:  mock.NewMockTextFlowRepository(ctrl),
		documents:  mock.NewMockDocumentRepository(ctrl),
		persons:    mock.NewMockPersonRepository(ctrl),
		dispatcher: mock.NewMockWebhookDispatcher(ctrl),
		publisher:  mock.NewMockPublisher(ctrl),
	}

	storages := &store.Storages{
		TextFlows: m.textFlows,
		Documents: m.documents,
		Persons:   m.persons,
	}

	coordinator := service.NewUpdateCoordinator(
		storages,
		service.NewStatisticsAggregator(logger.Nop()),
		service.NewNotificationBuilder(),
		m.dispatcher,
		m.publisher,
		cfg,
		logger.Nop(),
	)

	return coordinator, m
}

func testBatch(transitions ...models.StateTransition) models.TransitionBatch {
	return models.TransitionBatch{
		DocumentID:       7,
		LocaleID:         "de",
		ProjectVersionID: 3,
		ActorPersonID:    42,
		Transitions:      transitions,
	}
}

func testDocumentContext(subscribers ...models.Subscriber) models.DocumentContext {
	return models.DocumentContext{
		DocumentPath: "po/manual.pot",
		VersionSlug:  "main",
		ProjectSlug:  "fedora-docs",
		Subscribers:  subscribers,
	}
}

func TestOnTranslationUpdated_Notified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(t, ctrl, config.App{})
	ctx := context.Background()

	batch := testBatch(
		models.StateTransition{TextUnitID: 1, PreviousState: models.StateNew, NewState: models.StateTranslated},
	)
	actor := models.UserSummary{Username: "aeng", Name: "Alex Eng"}

	m.textFlows.EXPECT().WordCount(ctx, int64(1)).Return(10, nil)
	m.publisher.EXPECT().Publish(models.DocumentStatisticUpdated{
		VersionID:     3,
		DocumentID:    7,
		LocaleID:      "de",
		WordCount:     10,
		PreviousState: models.StateNew,
		NewState:      models.StateTranslated,
	})
	m.documents.EXPECT().DocumentContext(ctx, int64(7)).
		Return(testDocumentContext(models.Subscriber{TargetURL: "https://example.com/hook"}), nil)
	m.persons.EXPECT().PersonSummary(ctx, int64(42), false).Return(actor, nil)
	m.dispatcher.EXPECT().Dispatch(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, subscribers []models.Subscriber, payload models.NotificationPayload) []adapter.DeliveryAttempt {
			require.Len(t, subscribers, 1)
			assert.Equal(t, "fedora-docs", payload.ProjectSlug)
			assert.Equal(t, "main", payload.VersionSlug)
			assert.Equal(t, "po/manual.pot", payload.DocumentID)
			assert.Equal(t, "de", payload.LocaleID)
			assert.Equal(t, actor, payload.Actor)
			assert.Equal(t, models.WordCountDelta{
				models.StateNew:        -10,
				models.StateTranslated: 10,
			}, payload.ContentStateWordCounts)
			return nil
		},
	)

	outcome := coordinator.OnTranslationUpdated(ctx, batch)
	assert.Equal(t, service.OutcomeNotified, outcome)
}

func TestOnTranslationUpdated_EmptyBatchSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations registered: an empty batch must touch nothing
	coordinator, _ := newTestCoordinator(t, ctrl, config.App{})

	outcome := coordinator.OnTranslationUpdated(context.Background(), testBatch())
	assert.Equal(t, service.OutcomeSkipped, outcome)
}

func TestOnTranslationUpdated_MalformedBatchFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, _ := newTestCoordinator(t, ctrl, config.App{})

	batch := testBatch(models.StateTransition{TextUnitID: 1, PreviousState: "Bogus", NewState: models.StateTranslated})

	outcome := coordinator.OnTranslationUpdated(context.Background(), batch)
	assert.Equal(t, service.OutcomeFailed, outcome)
}

func TestOnTranslationUpdated_WordCountMemoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(t, ctrl, config.App{})
	ctx := context.Background()

	// two transitions for the same unit, two legs of the pipeline, still
	// exactly one database lookup
	batch := testBatch(
		models.StateTransition{TextUnitID: 5, PreviousState: models.StateNew, NewState: models.StateNeedReview},
		models.StateTransition{TextUnitID: 5, PreviousState: models.StateNeedReview, NewState: models.StateTranslated},
	)

	m.textFlows.EXPECT().WordCount(ctx, int64(5)).Return(4, nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any()).Times(2)
	m.documents.EXPECT().DocumentContext(ctx, int64(7)).
		Return(testDocumentContext(models.Subscriber{TargetURL: "https://example.com/hook"}), nil)
	m.persons.EXPECT().PersonSummary(ctx, int64(42), false).
		Return(models.UserSummary{Username: "aeng"}, nil)
	m.dispatcher.EXPECT().Dispatch(ctx, gomock.Any(), gomock.Any()).Return(nil)

	outcome := coordinator.OnTranslationUpdated(ctx, batch)
	assert.Equal(t, service.OutcomeNotified, outcome)
}

func TestOnTranslationUpdated_DocumentVanishedSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(t, ctrl, config.App{})
	ctx := context.Background()

	batch := testBatch(
		models.StateTransition{TextUnitID: 1, PreviousState: models.StateNew, NewState: models.StateTranslated},
	)

	// statistics must still go out before the notification leg gives up
	m.textFlows.EXPECT().WordCount(ctx, int64(1)).Return(10, nil)
	m.publisher.EXPECT().Publish(gomock.Any()).Times(1)
	m.documents.EXPECT().DocumentContext(ctx, int64(7)).
		Return(models.DocumentContext{}, store.ErrNotFound)

	outcome := coordinator.OnTranslationUpdated(ctx, batch)
	assert.Equal(t, service.OutcomeSkipped, outcome)
}

func TestOnTranslationUpdated_NoSubscribersSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(t, ctrl, config.App{})
	ctx := context.Background()

	batch := testBatch(
		models.StateTransition{TextUnitID: 1, PreviousState: models.StateNew, NewState: models.StateTranslated},
	)

	m.textFlows.EXPECT().WordCount(ctx, int64(1)).Return(10, nil)
	m.publisher.EXPECT().Publish(gomock.Any()).Times(1)
	// no subscribers: the actor lookup and the dispatcher are never touched
	m.documents.EXPECT().DocumentContext(ctx, int64(7)).Return(testDocumentContext(), nil)

	outcome := coordinator.OnTranslationUpdated(ctx, batch)
	assert.Equal(t, service.OutcomeSkipped, outcome)
}

func TestOnTranslationUpdated_ActorVanishedSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(t, ctrl, config.App{})
	ctx := context.Background()

	batch := testBatch(
		models.StateTransition{TextUnitID: 1, PreviousState: models.StateNew, NewState: models.StateTranslated},
	)

	m.textFlows.EXPECT().WordCount(ctx, int64(1)).Return(10, nil)
	m.publisher.EXPECT().Publish(gomock.Any()).Times(1)
	m.documents.EXPECT().DocumentContext(ctx, int64(7)).
		Return(testDocumentContext(models.Subscriber{TargetURL: "https://example.com/hook"}), nil)
	m.persons.EXPECT().PersonSummary(ctx, int64(42), false).
		Return(models.UserSummary{}, store.ErrNotFound)

	outcome := coordinator.OnTranslationUpdated(ctx, batch)
	assert.Equal(t, service.OutcomeSkipped, outcome)
}

func TestOnTranslationUpdated_ContextResolutionErrorFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(t, ctrl, config.App{})
	ctx := context.Background()

	batch := testBatch(
		models.StateTransition{TextUnitID: 1, PreviousState: models.StateNew, NewState: models.StateTranslated},
	)

	m.textFlows.EXPECT().WordCount(ctx, int64(1)).Return(10, nil)
	m.publisher.EXPECT().Publish(gomock.Any()).Times(1)
	m.documents.EXPECT().DocumentContext(ctx, int64(7)).
		Return(models.DocumentContext{}, errors.New("connection reset"))

	outcome := coordinator.OnTranslationUpdated(ctx, batch)
	assert.Equal(t, service.OutcomeFailed, outcome)
}

func TestOnTranslationUpdated_FailedLookupSkipsStatsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(t, ctrl, config.App{})
	ctx := context.Background()

	batch := testBatch(
		models.StateTransition{TextUnitID: 1, PreviousState: models.StateNew, NewState: models.StateTranslated},
		models.StateTransition{TextUnitID: 2, PreviousState: models.StateNew, NewState: models.StateTranslated},
	)

	// unit 2 cannot be resolved: its event is omitted, unit 1 still flows
	m.textFlows.EXPECT().WordCount(ctx, int64(1)).Return(6, nil)
	m.textFlows.EXPECT().WordCount(ctx, int64(2)).Return(0, errors.New("connection reset"))
	m.publisher.EXPECT().Publish(gomock.Any()).Times(1)
	m.documents.EXPECT().DocumentContext(ctx, int64(7)).
		Return(testDocumentContext(models.Subscriber{TargetURL: "https://example.com/hook"}), nil)
	m.persons.EXPECT().PersonSummary(ctx, int64(42), false).
		Return(models.UserSummary{Username: "aeng"}, nil)
	m.dispatcher.EXPECT().Dispatch(ctx, gomock.Any(), gomock.Any()).Return(nil)

	outcome := coordinator.OnTranslationUpdated(ctx, batch)
	assert.Equal(t, service.OutcomeNotified, outcome)
}

func TestOnTranslationUpdated_DisplayEmailPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(t, ctrl, config.App{DisplayUserEmail: true})
	ctx := context.Background()

	batch := testBatch(
		models.StateTransition{TextUnitID: 1, PreviousState: models.StateNew, NewState: models.StateTranslated},
	)

	m.textFlows.EXPECT().WordCount(ctx, int64(1)).Return(10, nil)
	m.publisher.EXPECT().Publish(gomock.Any()).Times(1)
	m.documents.EXPECT().DocumentContext(ctx, int64(7)).
		Return(testDocumentContext(models.Subscriber{TargetURL: "https://example.com/hook"}), nil)
	// the policy flag travels to the person lookup unchanged
	m.persons.EXPECT().PersonSummary(ctx, int64(42), true).
		Return(models.UserSummary{Username: "aeng", Email: "aeng@example.com"}, nil)
	m.dispatcher.EXPECT().Dispatch(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []models.Subscriber, payload models.NotificationPayload) []adapter.DeliveryAttempt {
			assert.Equal(t, "aeng@example.com", payload.Actor.Email)
			return nil
		},
	)

	outcome := coordinator.OnTranslationUpdated(ctx, batch)
	assert.Equal(t, service.OutcomeNotified, outcome)
}
