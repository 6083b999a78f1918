// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

// Package embed provides the text embedding capability behind persona
// retrieval. The production implementation speaks the OpenAI-compatible
// /embeddings wire format and wraps calls in a circuit breaker so a
// slow or failing embedding provider cannot cascade into the serving
// path.
package embed
