// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

// Package retrieval implements the semantic persona retrieval pipeline:
// deterministic query-text construction, embedding via a pluggable
// capability, and cosine-similarity ranking against the stored persona
// corpus.
//
// Determinism matters throughout: identical inputs must always produce
// identical query text, because embeddings for identical text should be
// cache-stable across requests.
package retrieval
