// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkwon917/personify/internal/logging"
	"github.com/dkwon917/personify/internal/models"
	"github.com/dkwon917/personify/internal/store"
	"github.com/dkwon917/personify/internal/validation"
)

// personaSummary is a stored persona with the embedding stripped.
type personaSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ClusterName string `json:"cluster_name"`
}

type personaListResponse struct {
	Personas []personaSummary `json:"personas"`
	Count    int              `json:"count"`
}

// PersonaUpsert handles persona corpus writes. Records are keyed by
// cluster_name: a second upsert with the same cluster name overwrites
// the first.
//
// @Summary Store or replace a persona record
// @Description Writes one persona with its embedding into the retrieval corpus, keyed by cluster_name
// @Tags Personas
// @Accept json
// @Produce json
// @Param persona body models.PersonaRecord true "Persona record with embedding"
// @Success 201 {object} personaSummary "Stored persona, embedding stripped"
// @Failure 400 {object} models.APIResponse "Invalid record or embedding dimension mismatch"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /api/v1/personas [post]
func (h *Handler) PersonaUpsert(w http.ResponseWriter, r *http.Request) {
	var record models.PersonaRecord
	if err := decodeJSONBody(w, r, &record); err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not a valid persona record", err)
		return
	}

	if err := h.store.Upsert(r.Context(), &record); err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			respondValidationError(w, r, verr)
			return
		}
		if errors.Is(err, store.ErrDimensionMismatch) {
			respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Embedding dimension does not match the configured embedder", err)
			return
		}
		respondError(w, r, http.StatusInternalServerError, "PERSONA_UPSERT_FAILED", "Failed to store persona", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("cluster_name", sanitizeLogValue(record.ClusterName)).
		Msg("Persona upserted")

	respondData(w, http.StatusCreated, personaSummary{
		Title:       record.Title,
		Description: record.Description,
		ClusterName: record.ClusterName,
	})
}

// PersonaGet returns one stored persona by cluster name, embedding
// stripped.
//
// @Summary Get one stored persona
// @Description Looks up a persona record by its cluster name
// @Tags Personas
// @Produce json
// @Param clusterName path string true "Cluster name the persona was stored under"
// @Success 200 {object} personaSummary "Stored persona, embedding stripped"
// @Failure 404 {object} models.APIResponse "No persona stored under that cluster name"
// @Router /api/v1/personas/{clusterName} [get]
func (h *Handler) PersonaGet(w http.ResponseWriter, r *http.Request) {
	clusterName := chi.URLParam(r, "clusterName")

	record, err := h.store.Get(r.Context(), clusterName)
	if err != nil {
		if errors.Is(err, store.ErrPersonaNotFound) {
			respondError(w, r, http.StatusNotFound, "PERSONA_NOT_FOUND", "No persona stored under that cluster name", nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, "PERSONA_GET_FAILED", "Failed to load persona", err)
		return
	}

	respondData(w, http.StatusOK, personaSummary{
		Title:       record.Title,
		Description: record.Description,
		ClusterName: record.ClusterName,
	})
}

// PersonaList returns the stored persona corpus with embeddings
// stripped.
//
// @Summary List the stored persona corpus
// @Description Returns every stored persona sorted by cluster name, embeddings stripped
// @Tags Personas
// @Produce json
// @Success 200 {object} personaListResponse "Stored personas"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /api/v1/personas [get]
func (h *Handler) PersonaList(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "PERSONA_LIST_FAILED", "Failed to list personas", err)
		return
	}

	personas := make([]personaSummary, 0, len(records))
	for _, record := range records {
		personas = append(personas, personaSummary{
			Title:       record.Title,
			Description: record.Description,
			ClusterName: record.ClusterName,
		})
	}

	respondData(w, http.StatusOK, personaListResponse{
		Personas: personas,
		Count:    len(personas),
	})
}
