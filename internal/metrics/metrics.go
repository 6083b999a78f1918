// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// Clustering Pipeline Metrics
	AnalysisTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total clustering analysis requests",
		},
		[]string{"result"}, // "success", "validation_error", "error"
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "Duration of one clustering prediction in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	AnalysisClusterAssignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_cluster_assignments_total",
			Help: "Predictions per cluster label",
		},
		[]string{"cluster"},
	)

	AnalysisBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_batch_size",
			Help:    "Number of profiles per batch analysis request",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	// Retrieval Pipeline Metrics
	RetrievalTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retrieval_requests_total",
			Help: "Total persona retrieval requests",
		},
		[]string{"result"}, // "success", "validation_error", "error"
	)

	RetrievalDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "retrieval_duration_seconds",
			Help:    "End-to-end persona retrieval latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RetrievalMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "retrieval_matches_returned",
			Help:    "Number of matches returned per retrieval request",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)

	// Embedding Provider Metrics
	EmbedderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "embedder_requests_total",
			Help: "Total embedding provider calls",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	EmbedderRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "embedder_request_duration_seconds",
			Help:    "Embedding provider call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	EmbedderBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "embedder_circuit_breaker_state",
			Help: "Embedding circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// Persona Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "persona_store_operation_duration_seconds",
			Help:    "Persona store operation latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "upsert", "get", "list"
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persona_store_operation_errors_total",
			Help: "Total persona store operation errors",
		},
		[]string{"operation"},
	)

	StorePersonaCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "persona_store_records",
			Help: "Current number of stored persona records",
		},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight HTTP requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreOperation records one persona store operation.
func RecordStoreOperation(operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(operation).Inc()
	}
}
