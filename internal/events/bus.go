// Package events provides the in-process fan-out bus carrying
// document-statistic events from the update pipeline to internal consumers
// (caches, metrics). Delivery is fire-and-forget: publishers never learn
// whether anyone was listening.
package events

import (
	"sync"

	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/models"
)

//go:generate mockgen -source=bus.go -destination=../mock/events_mock.go -package=mock

// Publisher is the producing side of the bus.
type Publisher interface {
	// Publish delivers one statistics event to all current subscribers.
	Publish(event models.DocumentStatisticUpdated)
}

// Handler consumes statistics events. Handlers are invoked sequentially in
// subscription order and must return quickly; long work belongs in the
// handler's own goroutine.
type Handler func(event models.DocumentStatisticUpdated)

// Bus is a process-local implementation of [Publisher]. Events published for
// the same document/locale arrive at every handler in publish order, which
// keeps running statistics monotonic for in-order batches.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler

	logger *logger.Logger
}

// NewBus constructs an empty bus.
func NewBus(logger *logger.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers a handler for all subsequent events. Subscriptions
// cannot be removed; the bus lives for the whole process.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish implements [Publisher]. A panicking handler is logged and does not
// prevent delivery to the remaining handlers.
func (b *Bus) Publish(event models.DocumentStatisticUpdated) {
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()

	for _, h := range handlers {
		b.deliver(h, event)
	}
}

func (b *Bus) deliver(h Handler, event models.DocumentStatisticUpdated) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Any("panic", r).
				Int64("document_id", event.DocumentID).
				Str("locale_id", event.LocaleID).
				Msg("statistics event handler panicked")
		}
	}()

	h(event)
}
