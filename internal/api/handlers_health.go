// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package api

import (
	"net/http"
	"time"

	"github.com/dkwon917/personify/internal/logging"
	"github.com/dkwon917/personify/internal/middleware"
	"github.com/dkwon917/personify/internal/models"
)

type healthStatus struct {
	Status          string `json:"status"`
	Version         string `json:"version"`
	UptimeSeconds   int64  `json:"uptime_seconds"`
	ArtifactsLoaded bool   `json:"artifacts_loaded"`
	PersonaCount    int    `json:"persona_count"`
	StoreReachable  bool   `json:"store_reachable"`
}

// Version is stamped at build time via -ldflags.
var Version = "dev"

func respondHealth(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	respondEnvelope(w, status, &models.APIResponse{
		Status: "success",
		Data:   payload,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: middleware.GetRequestID(r.Context()),
		},
	})
}

// Health reports overall service health. The service is "degraded"
// rather than unhealthy when model artifacts failed to load: retrieval
// and persona endpoints still work without the analyzer.
//
// @Summary Component health report
// @Description Reports artifact, store, and uptime status; "degraded" when the analyzer or store is unavailable
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=healthStatus} "Health report"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{
		Status:          "healthy",
		Version:         Version,
		UptimeSeconds:   int64(time.Since(h.startTime).Seconds()),
		ArtifactsLoaded: h.analyzer != nil,
	}

	count, err := h.store.Count(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check could not reach persona store")
		status.Status = "degraded"
	} else {
		status.StoreReachable = true
		status.PersonaCount = count
	}

	if h.analyzer == nil {
		status.Status = "degraded"
	}

	respondHealth(w, r, http.StatusOK, status)
}

// HealthLive is the liveness probe. It answers 200 whenever the process
// can serve HTTP at all.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Process is serving"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondHealth(w, r, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady is the readiness probe. It fails until the cluster model
// artifacts are loaded and the persona store answers, so a pod with a
// broken artifact volume is taken out of rotation instead of serving
// 503s to analysis traffic.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Ready to serve analysis traffic"
// @Failure 503 {object} models.APIResponse "Artifacts not loaded or store unreachable"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.analyzer == nil {
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Cluster model artifacts are not loaded", nil)
		return
	}
	if _, err := h.store.Count(r.Context()); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Persona store is not reachable", err)
		return
	}
	respondHealth(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
