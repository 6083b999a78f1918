// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	_ "github.com/dkwon917/personify/docs" // generated swagger docs

	"github.com/dkwon917/personify/internal/api"
	"github.com/dkwon917/personify/internal/config"
	"github.com/dkwon917/personify/internal/embed"
	"github.com/dkwon917/personify/internal/logging"
	"github.com/dkwon917/personify/internal/retrieval"
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

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting personify")

	// Artifact load failures are survivable: the process serves
	// retrieval and persona traffic while readiness stays red, so a
	// bad artifact volume does not crash-loop the deployment.
	analyzer, err := segment.LoadAnalyzer(segment.ArtifactPaths{
		Model:   cfg.Artifacts.ModelPath,
		Scaler:  cfg.Artifacts.ScalerPath,
		Columns: cfg.Artifacts.ColumnsPath,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load clustering artifacts - analysis endpoints disabled")
		analyzer = nil
	} else {
		logging.Info().
			Int("features", analyzer.Schema().Len()).
			Msg("Clustering artifacts loaded")
	}

	badgerOpts := badger.DefaultOptions(cfg.Store.Path).WithLogger(nil)
	db, err := badger.Open(badgerOpts)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("Failed to open persona store")
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

	// The store rejects writes whose vectors the embedder could not
	// have produced, so its dimension comes from the client, not from
	// a second config read.
	personaStore := store.NewBadgerPersonaStore(db, embedder.Dimension())

	retriever := retrieval.NewRetriever(embedder, personaStore)

	handler := api.NewHandler(analyzer, retriever, personaStore, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}
