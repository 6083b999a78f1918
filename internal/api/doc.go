// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

/*
Package api provides the HTTP serving layer using the Chi router.

Endpoints:

	POST /api/v1/analysis        one profile -> predicted persona segment
	POST /api/v1/analysis/batch  ordered batch of profiles
	POST /api/v1/rag/query       semantic persona retrieval
	POST /api/v1/personas        persona corpus upsert (cluster_name keyed)
	GET  /api/v1/personas        stored persona corpus, embeddings stripped
	GET  /api/v1/personas/{clusterName}  one stored persona
	GET  /api/v1/health          component health report
	GET  /api/v1/health/live     liveness probe
	GET  /api/v1/health/ready    readiness probe (503 until artifacts load)
	GET  /metrics                Prometheus metrics
	GET  /swagger/*              Swagger UI and doc.json

Successful responses on the analysis and retrieval endpoints carry the
bare contract shapes; failures of any kind share one error envelope
with a stable machine-readable code, so internal detail never leaks to
the caller.
*/
package api
