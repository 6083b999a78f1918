// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/dkwon917/personify/internal/logging"
	"github.com/dkwon917/personify/internal/metrics"
	"github.com/dkwon917/personify/internal/models"
	"github.com/dkwon917/personify/internal/validation"
)

// RagQuery handles semantic persona retrieval requests.
//
// At least one of profile, persona_name, persona_description, or
// query_text must be present. Validation failures surface with
// field-level detail; embedding-provider and store failures surface as
// one generic upstream error.
//
// @Summary Retrieve the most similar personas for a query
// @Description Embeds the query text (built from the profile and hints, or taken verbatim from query_text) and ranks the stored persona corpus by cosine similarity
// @Tags Retrieval
// @Accept json
// @Produce json
// @Param query body models.RagQuery true "Retrieval query; at least one signal field required"
// @Success 200 {object} models.RagResponse "Top matches sorted by score descending"
// @Failure 400 {object} models.APIResponse "No query signal or invalid top_k"
// @Failure 502 {object} models.APIResponse "Embedding provider or persona store failure"
// @Router /api/v1/rag/query [post]
func (h *Handler) RagQuery(w http.ResponseWriter, r *http.Request) {
	var query models.RagQuery
	if err := decodeJSONBody(w, r, &query); err != nil {
		metrics.RetrievalTotal.WithLabelValues("validation_error").Inc()
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not a valid retrieval query", err)
		return
	}

	if query.TopK == 0 && h.config != nil {
		query.TopK = h.config.Retrieval.DefaultTopK
	}

	start := time.Now()
	matches, err := h.retriever.Retrieve(r.Context(), &query)
	metrics.RetrievalDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			metrics.RetrievalTotal.WithLabelValues("validation_error").Inc()
			respondValidationError(w, r, verr)
			return
		}
		metrics.RetrievalTotal.WithLabelValues("error").Inc()
		respondError(w, r, http.StatusBadGateway, "RAG_QUERY_FAILED", "Persona retrieval failed", err)
		return
	}

	metrics.RetrievalTotal.WithLabelValues("success").Inc()
	metrics.RetrievalMatches.Observe(float64(len(matches)))
	logging.Ctx(r.Context()).Info().
		Int("matches", len(matches)).
		Int("top_k", query.TopK).
		Msg("Persona retrieval completed")

	if matches == nil {
		matches = []models.RagMatch{}
	}
	respondData(w, http.StatusOK, models.RagResponse{Matches: matches})
}
