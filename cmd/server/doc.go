// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

// Command server runs the Personify HTTP service: nearest-centroid
// customer segmentation over trained clustering artifacts, and
// cosine-similarity persona retrieval backed by an embedding provider
// and a Badger persona store.
package main
