package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/events"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/service"
	"github.com/MKhiriev/go-translation-webhooks/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsHandler(t *testing.T) (*Handler, *events.Bus) {
	t.Helper()

	bus := events.NewBus(logger.Nop())
	services := &service.Services{
		StateCache: service.NewDocumentStateCache(bus, logger.Nop()),
	}

	h := NewHandler(services, &stubQueue{}, config.App{
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
	}, logger.Nop())

	return h, bus
}

func getStatistics(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", bearerToken(t, time.Minute))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestDocumentStatistics_Found(t *testing.T) {
	h, bus := newStatsHandler(t)

	bus.Publish(models.DocumentStatisticUpdated{
		VersionID:     3,
		DocumentID:    7,
		LocaleID:      "de",
		WordCount:     10,
		PreviousState: models.StateNew,
		NewState:      models.StateTranslated,
	})

	rec := getStatistics(t, h.Init(), "/api/stats/document/7/locale/de")

	require.Equal(t, http.StatusOK, rec.Code)

	var delta models.WordCountDelta
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &delta))
	assert.Equal(t, -10, delta[models.StateNew])
	assert.Equal(t, 10, delta[models.StateTranslated])
}

func TestDocumentStatistics_NotFound(t *testing.T) {
	h, _ := newStatsHandler(t)

	rec := getStatistics(t, h.Init(), "/api/stats/document/99/locale/fr")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentStatistics_InvalidDocumentID(t *testing.T) {
	h, _ := newStatsHandler(t)

	rec := getStatistics(t, h.Init(), "/api/stats/document/not-a-number/locale/de")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
