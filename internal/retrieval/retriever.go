// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package retrieval

import (
	"context"
	"fmt"

	"github.com/dkwon917/personify/internal/logging"
	"github.com/dkwon917/personify/internal/models"
	"github.com/dkwon917/personify/internal/validation"
)

// DefaultTopK is the number of matches returned when the caller does
// not ask for more.
const DefaultTopK = 1

// Embedder turns query text into a fixed-dimension vector. The
// dimension is constant across calls for a given configuration.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float64, error)
}

// PersonaSource lists the stored persona corpus with embeddings.
type PersonaSource interface {
	List(ctx context.Context) ([]models.PersonaRecord, error)
}

// Retriever runs the full retrieval pipeline: build query text, embed
// it, fetch the persona corpus, rank by cosine similarity. It holds no
// mutable state and is safe for concurrent use.
type Retriever struct {
	embedder Embedder
	source   PersonaSource
}

// NewRetriever wires the embedding capability and persona corpus
// source into a retriever.
func NewRetriever(embedder Embedder, source PersonaSource) *Retriever {
	return &Retriever{embedder: embedder, source: source}
}

// Retrieve answers a persona query with the top-k ranked matches.
// Queries with no signal fail validation before any embedding call.
// An empty corpus yields an empty, non-nil match slice.
func (r *Retriever) Retrieve(ctx context.Context, query *models.RagQuery) ([]models.RagMatch, error) {
	if verr := validation.ValidateStruct(query); verr != nil {
		return nil, verr
	}
	if !query.HasSignal() {
		return nil, validation.NewRequestValidationError(
			"query", "required_without_all",
			"at least one of profile, persona_name, persona_description, query_text is required",
		)
	}

	queryText := query.QueryText
	if queryText == "" {
		var err error
		queryText, err = BuildQueryText(query.Profile, query.PersonaName, query.PersonaDescription)
		if err != nil {
			return nil, validation.NewRequestValidationError("query", "required", err.Error())
		}
	}

	topK := query.TopK
	if topK == 0 {
		topK = DefaultTopK
	}

	embedding, err := r.embedder.EmbedQuery(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	personas, err := r.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching personas: %w", err)
	}
	if len(personas) == 0 {
		logging.Ctx(ctx).Debug().Msg("Persona corpus is empty")
		return []models.RagMatch{}, nil
	}

	matches := RankPersonas(embedding, personas, topK)
	logging.Ctx(ctx).Debug().
		Int("candidates", len(personas)).
		Int("matches", len(matches)).
		Int("top_k", topK).
		Msg("Ranked persona matches")
	return matches, nil
}
