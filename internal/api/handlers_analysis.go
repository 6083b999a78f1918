// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dkwon917/personify/internal/logging"
	"github.com/dkwon917/personify/internal/metrics"
	"github.com/dkwon917/personify/internal/models"
	"github.com/dkwon917/personify/internal/validation"
)

// Analysis handles single-profile clustering prediction requests. The
// response is the bare prediction shape, not the error envelope.
//
// @Summary Predict a customer's persona segment
// @Description Encodes one customer profile into the trained feature space and assigns it to the nearest cluster centroid
// @Tags Analysis
// @Accept json
// @Produce json
// @Param profile body models.CustomerProfile true "Customer profile"
// @Success 200 {object} models.AnalysisResult "Predicted cluster with persona name and description"
// @Failure 400 {object} models.APIResponse "Malformed body or invalid profile field"
// @Failure 503 {object} models.APIResponse "Clustering artifacts are not loaded"
// @Router /api/v1/analysis [post]
func (h *Handler) Analysis(w http.ResponseWriter, r *http.Request) {
	if h.analyzer == nil {
		respondError(w, r, http.StatusServiceUnavailable, "ANALYSIS_UNAVAILABLE", "Clustering artifacts are not loaded", nil)
		return
	}

	var profile models.CustomerProfile
	if err := decodeJSONBody(w, r, &profile); err != nil {
		metrics.AnalysisTotal.WithLabelValues("validation_error").Inc()
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not a valid profile", err)
		return
	}

	start := time.Now()
	result, err := h.analyzer.Predict(&profile)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			metrics.AnalysisTotal.WithLabelValues("validation_error").Inc()
			respondValidationError(w, r, verr)
			return
		}
		metrics.AnalysisTotal.WithLabelValues("error").Inc()
		respondError(w, r, http.StatusInternalServerError, "ANALYSIS_FAILED", "Analysis failed", err)
		return
	}

	metrics.AnalysisTotal.WithLabelValues("success").Inc()
	metrics.AnalysisClusterAssignments.WithLabelValues(strconv.Itoa(result.PredictedCluster)).Inc()
	logging.Ctx(r.Context()).Info().
		Int("cluster", result.PredictedCluster).
		Str("cluster_name", result.ClusterName).
		Msg("Profile analyzed")

	respondData(w, http.StatusOK, result)
}

// AnalysisBatch handles ordered batch prediction requests. The batch
// fails as a whole on the first invalid profile; an empty profile list
// yields an empty array, not an error.
//
// @Summary Predict persona segments for a batch of profiles
// @Description Assigns every profile in order; the first invalid profile fails the whole batch with no partial results
// @Tags Analysis
// @Accept json
// @Produce json
// @Param batch body models.BatchRequest true "Profiles to analyze"
// @Success 200 {array} models.AnalysisResult "Predictions in request order"
// @Failure 400 {object} models.APIResponse "Malformed body or invalid profile field"
// @Failure 503 {object} models.APIResponse "Clustering artifacts are not loaded"
// @Router /api/v1/analysis/batch [post]
func (h *Handler) AnalysisBatch(w http.ResponseWriter, r *http.Request) {
	if h.analyzer == nil {
		respondError(w, r, http.StatusServiceUnavailable, "ANALYSIS_UNAVAILABLE", "Clustering artifacts are not loaded", nil)
		return
	}

	var req models.BatchRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		metrics.AnalysisTotal.WithLabelValues("validation_error").Inc()
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not a valid batch request", err)
		return
	}

	metrics.AnalysisBatchSize.Observe(float64(len(req.Profiles)))

	start := time.Now()
	results, err := h.analyzer.PredictBatch(req.Profiles)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			metrics.AnalysisTotal.WithLabelValues("validation_error").Inc()
			respondValidationError(w, r, verr)
			return
		}
		metrics.AnalysisTotal.WithLabelValues("error").Inc()
		respondError(w, r, http.StatusInternalServerError, "BATCH_ANALYSIS_FAILED", "Batch analysis failed", err)
		return
	}

	metrics.AnalysisTotal.WithLabelValues("success").Inc()
	logging.Ctx(r.Context()).Info().
		Int("profiles", len(req.Profiles)).
		Msg("Batch analyzed")

	respondData(w, http.StatusOK, results)
}
