// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/service"
	"github.com/MKhiriev/go-translation-webhooks/models"
)

// BatchQueue decouples batch ingestion from the update pipeline. Batches are
// buffered on a bounded channel and consumed by exactly one goroutine, which
// preserves arrival order for batches touching the same document and locale.
type BatchQueue struct {
	queue       chan queuedBatch
	coordinator service.UpdateCoordinator

	closing   chan struct{}
	drained   chan struct{}
	closeOnce sync.Once

	logger *logger.Logger
}

type queuedBatch struct {
	batch models.TransitionBatch

	// log is the request-scoped logger captured at enqueue time so the
	// background processing keeps the ingestion trace id.
	log *logger.Logger
}

// NewBatchQueue constructs the queue with the configured capacity. Run must
// be called before batches are consumed.
func NewBatchQueue(coordinator service.UpdateCoordinator, cfg config.Workers, logger *logger.Logger) *BatchQueue {
	size := cfg.QueueSize
	if size <= 0 {
		size = config.DefaultQueueSize
	}

	return &BatchQueue{
		queue:       make(chan queuedBatch, size),
		coordinator: coordinator,
		closing:     make(chan struct{}),
		drained:     make(chan struct{}),
		logger:      logger,
	}
}

// Enqueue buffers one batch for background processing. It blocks while the
// queue is full and returns [ErrQueueClosed] once shutdown has started, or
// the context error if ctx is done first.
func (q *BatchQueue) Enqueue(ctx context.Context, batch models.TransitionBatch) error {
	select {
	case <-q.closing:
		return ErrQueueClosed
	default:
	}

	item := queuedBatch{batch: batch, log: logger.FromContext(ctx)}

	select {
	case q.queue <- item:
		return nil
	case <-q.closing:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run implements [Worker]. It starts the single consumer goroutine.
func (q *BatchQueue) Run() {
	go q.consume()
}

// Shutdown stops accepting new batches, drains what is already buffered, and
// waits for the consumer to finish or ctx to expire.
func (q *BatchQueue) Shutdown(ctx context.Context) error {
	q.closeOnce.Do(func() { close(q.closing) })

	select {
	case <-q.drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *BatchQueue) consume() {
	defer close(q.drained)

	for {
		select {
		case item := <-q.queue:
			q.process(item)
		case <-q.closing:
			// drain the buffer; anything not yet buffered is dropped
			for {
				select {
				case item := <-q.queue:
					q.process(item)
				default:
					q.logger.Info().Msg("batch queue drained")
					return
				}
			}
		}
	}
}

func (q *BatchQueue) process(item queuedBatch) {
	// the ingestion request is long gone; only its logger survives
	ctx := item.log.WithContext(context.Background())

	outcome := q.coordinator.OnTranslationUpdated(ctx, item.batch)

	item.log.Debug().
		Int64("document_id", item.batch.DocumentID).
		Str("locale_id", item.batch.LocaleID).
		Str("outcome", string(outcome)).
		Msg("batch processed")
}
