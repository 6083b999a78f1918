// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

// Command personas seeds the persona store: it embeds every trained
// cluster descriptor through the configured embedding provider and
// upserts the resulting records into the Badger corpus the retrieval
// endpoint searches. Run it once after deploying new artifacts, or
// whenever descriptors change; upserts are idempotent per cluster.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/dkwon917/personify/internal/config"
	"github.com/dkwon917/personify/internal/embed"
	"github.com/dkwon917/personify/internal/logging"
	"github.com/dkwon917/personify/internal/models"
	"github.com/dkwon917/personify/internal/segment"
	"github.com/dkwon917/personify/internal/store"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("Persona seeding failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	badgerOpts := badger.DefaultOptions(cfg.Store.Path).WithLogger(nil)
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return fmt.Errorf("opening persona store at %s: %w", cfg.Store.Path, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing persona store")
		}
	}()

	embedder := embed.NewClient(embed.Config{
		BaseURL:   cfg.Embedder.BaseURL,
		APIKey:    cfg.Embedder.APIKey,
		Model:     cfg.Embedder.Model,
		Dimension: cfg.Embedder.Dimension,
		Timeout:   cfg.Embedder.Timeout,
	})
	personaStore := store.NewBadgerPersonaStore(db, embedder.Dimension())

	descriptors := segment.Personas()
	texts := make([]string, len(descriptors))
	for i, d := range descriptors {
		texts[i] = documentText(d)
	}

	embeddings, err := embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding persona corpus: %w", err)
	}

	for i, d := range descriptors {
		record := models.PersonaRecord{
			Title:       d.Name,
			Description: d.Description,
			ClusterName: clusterSlug(d.Name),
			Embedding:   embeddings[i],
		}
		if err := personaStore.Upsert(ctx, &record); err != nil {
			return fmt.Errorf("storing persona %q: %w", record.ClusterName, err)
		}
		logging.Info().
			Int("label", d.Label).
			Str("cluster_name", record.ClusterName).
			Msg("Persona embedded and stored")
	}

	logging.Info().Int("personas", len(descriptors)).Msg("Persona corpus seeded")
	return nil
}

// documentText renders a descriptor the same way query building renders
// persona hints, so stored and query embeddings live in the same space.
func documentText(d segment.Descriptor) string {
	return fmt.Sprintf("persona: %s\ndescription: %s", d.Name, d.Description)
}

func clusterSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "-", "_")
	return slug
}
