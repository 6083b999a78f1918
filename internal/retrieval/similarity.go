// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package retrieval

import (
	"math"
	"sort"

	"github.com/dkwon917/personify/internal/logging"
	"github.com/dkwon917/personify/internal/models"
)

// CosineSimilarity scores two vectors by the cosine of the angle
// between them, in [-1, 1]. Degenerate inputs (zero norm or mismatched
// lengths) score exactly -1.0 so they can never win a ranking.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return -1.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return -1.0
	}
	return dot / denom
}

// RankPersonas scores every persona with a stored embedding against the
// query embedding and returns the topK best matches, sorted by score
// descending with embeddings stripped. Records without an embedding are
// skipped, not counted toward topK. Truncation happens only after the
// full sort.
func RankPersonas(queryEmbedding []float64, personas []models.PersonaRecord, topK int) []models.RagMatch {
	scored := make([]models.RagMatch, 0, len(personas))
	for i := range personas {
		p := &personas[i]
		if len(p.Embedding) == 0 {
			continue
		}
		if len(p.Embedding) != len(queryEmbedding) {
			// Scores -1.0 and ranks last; logged so a corrupt stored
			// vector is visible instead of silently losing every query.
			logging.Warn().
				Str("cluster_name", p.ClusterName).
				Int("stored_dimension", len(p.Embedding)).
				Int("query_dimension", len(queryEmbedding)).
				Msg("Stored embedding dimension does not match query embedding")
		}
		scored = append(scored, models.RagMatch{
			Title:       p.Title,
			Description: p.Description,
			ClusterName: p.ClusterName,
			Score:       CosineSimilarity(queryEmbedding, p.Embedding),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}
	return scored
}
