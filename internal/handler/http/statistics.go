package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/utils"
	"github.com/go-chi/chi/v5"
)

// documentStatistics serves the word-count statistics accumulated for one
// document and locale since process start.
func (h *Handler) documentStatistics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	documentID, err := strconv.ParseInt(chi.URLParam(r, "documentID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.documentStatistics").Msg("invalid document id")
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}
	localeID := chi.URLParam(r, "localeID")

	delta, ok := h.services.StateCache.Snapshot(documentID, localeID)
	if !ok {
		http.Error(w, "no statistics recorded", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, delta, http.StatusOK)
}
