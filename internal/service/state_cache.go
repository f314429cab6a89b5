package service

import (
	"sync"

	"github.com/MKhiriev/go-translation-webhooks/internal/events"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/models"
)

type documentLocaleKey struct {
	documentID int64
	localeID   string
}

// DocumentStateCache keeps running per-document, per-locale word-count
// statistics fed by the internal event bus. It is the process-local stand-in
// for a statistics store: the running numbers are deltas accumulated since
// process start, not absolute document totals.
type DocumentStateCache struct {
	mu    sync.RWMutex
	stats map[documentLocaleKey]models.WordCountDelta

	logger *logger.Logger
}

// NewDocumentStateCache constructs the cache and subscribes it to bus.
func NewDocumentStateCache(bus *events.Bus, logger *logger.Logger) *DocumentStateCache {
	cache := &DocumentStateCache{
		stats:  make(map[documentLocaleKey]models.WordCountDelta),
		logger: logger,
	}
	bus.Subscribe(cache.apply)

	return cache
}

func (c *DocumentStateCache) apply(event models.DocumentStatisticUpdated) {
	key := documentLocaleKey{documentID: event.DocumentID, localeID: event.LocaleID}

	c.mu.Lock()
	defer c.mu.Unlock()

	delta, ok := c.stats[key]
	if !ok {
		delta = make(models.WordCountDelta)
		c.stats[key] = delta
	}
	delta.Apply(event.PreviousState, event.NewState, event.WordCount)
}

// Snapshot returns a copy of the accumulated statistics for one document and
// locale. The second return value is false when no event has been seen for
// that pair yet.
func (c *DocumentStateCache) Snapshot(documentID int64, localeID string) (models.WordCountDelta, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	delta, ok := c.stats[documentLocaleKey{documentID: documentID, localeID: localeID}]
	if !ok {
		return nil, false
	}
	return delta.Clone(), true
}
