// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package models

// PersonaRecord is a stored persona with its precomputed embedding.
// ClusterName is the upsert conflict key: re-running the embedding job
// overwrites rather than duplicates.
type PersonaRecord struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	ClusterName string    `json:"cluster_name" validate:"required"`
	Embedding   []float64 `json:"embedding" validate:"required,min=1"`
}
