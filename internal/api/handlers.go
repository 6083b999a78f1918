// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package api

import (
	"context"
	"time"

	"github.com/dkwon917/personify/internal/config"
	"github.com/dkwon917/personify/internal/models"
	"github.com/dkwon917/personify/internal/segment"
)

// PersonaRetriever answers semantic persona queries.
type PersonaRetriever interface {
	Retrieve(ctx context.Context, query *models.RagQuery) ([]models.RagMatch, error)
}

// PersonaStore persists and lists the persona corpus.
type PersonaStore interface {
	Upsert(ctx context.Context, record *models.PersonaRecord) error
	Get(ctx context.Context, clusterName string) (*models.PersonaRecord, error)
	List(ctx context.Context) ([]models.PersonaRecord, error)
	Count(ctx context.Context) (int, error)
}

// Handler carries the immutable serving dependencies. The analyzer may
// be nil when artifact loading failed at startup; the service then
// reports not-ready instead of crash-looping, and analysis requests
// fail with a service-unavailable error.
type Handler struct {
	analyzer  *segment.Analyzer
	retriever PersonaRetriever
	store     PersonaStore
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler with its dependencies.
func NewHandler(analyzer *segment.Analyzer, retriever PersonaRetriever, store PersonaStore, cfg *config.Config) *Handler {
	return &Handler{
		analyzer:  analyzer,
		retriever: retriever,
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
}
