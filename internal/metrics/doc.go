// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

/*
Package metrics provides Prometheus metrics collection and export for observability.

The package instruments the three serving paths and their dependencies:
  - HTTP request latency, throughput, and in-flight count
  - Clustering analysis counts, latency, and per-cluster assignment rates
  - Persona retrieval latency and match counts
  - Embedding provider call outcomes and circuit breaker state
  - Persona store operation latency and errors

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

All metrics are registered via promauto at package init, so importing
this package is sufficient for registration.
*/
package metrics
