// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

/*
Package middleware provides HTTP middleware components for the application.

Key components:

  - RequestID: UUID-based request tracking for distributed tracing,
    honoring upstream X-Request-ID headers
  - PrometheusMetrics: HTTP request/response instrumentation

Cross-cutting HTTP concerns that chi already ships (compression, CORS,
rate limiting, panic recovery) are wired directly in the API router
from go-chi middleware rather than reimplemented here.
*/
package middleware
