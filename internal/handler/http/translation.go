// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/utils"
	"github.com/MKhiriev/go-translation-webhooks/models"
)

// translationUpdated accepts one transition batch from the commit-observing
// collaborator and enqueues it for background processing. Acceptance (202)
// confirms enqueueing only; the pipeline outcome is never reported back.
func (h *Handler) translationUpdated(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var batch models.TransitionBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		log.Err(err).Str("func", "*Handler.translationUpdated").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := batch.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.translationUpdated").Msg("malformed batch rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if caller, ok := utils.GetCallerFromContext(r.Context()); ok {
		log.Debug().Str("caller", caller).Int64("document_id", batch.DocumentID).Msg("batch accepted")
	}

	if err := h.queue.Enqueue(r.Context(), batch); err != nil {
		log.Err(err).Str("func", "*Handler.translationUpdated").Msg("error enqueueing batch")
		http.Error(w, "service is shutting down", http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.BatchAccepted{
		TraceID:     w.Header().Get(traceIDHeader),
		Transitions: len(batch.Transitions),
	}, http.StatusAccepted)
}
