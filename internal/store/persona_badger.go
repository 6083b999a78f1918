// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/dkwon917/personify/internal/metrics"
	"github.com/dkwon917/personify/internal/models"
	"github.com/dkwon917/personify/internal/validation"
)

const personaKeyPrefix = "persona:"

// ErrPersonaNotFound is returned when no record exists for a cluster name.
var ErrPersonaNotFound = errors.New("persona not found")

// ErrDimensionMismatch is returned when an embedding's length does not
// match the store's expected dimension.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// BadgerPersonaStore implements persona persistence on BadgerDB.
// Suitable for production use with persistence across restarts.
type BadgerPersonaStore struct {
	db        *badger.DB
	dimension int
}

// NewBadgerPersonaStore creates a persona store on an open BadgerDB
// handle. When dimension > 0 every upserted embedding must have exactly
// that length, matching the embedder's fixed output size.
func NewBadgerPersonaStore(db *badger.DB, dimension int) *BadgerPersonaStore {
	return &BadgerPersonaStore{db: db, dimension: dimension}
}

func personaKey(clusterName string) []byte {
	return []byte(personaKeyPrefix + clusterName)
}

// Upsert writes a persona record keyed by cluster name. Calling twice
// with the same cluster name overwrites; the last write wins.
func (s *BadgerPersonaStore) Upsert(ctx context.Context, record *models.PersonaRecord) error {
	start := time.Now()
	err := s.upsert(ctx, record)
	metrics.RecordStoreOperation("upsert", time.Since(start), err)
	return err
}

func (s *BadgerPersonaStore) upsert(ctx context.Context, record *models.PersonaRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if verr := validation.ValidateStruct(record); verr != nil {
		return verr
	}
	if s.dimension > 0 && len(record.Embedding) != s.dimension {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(record.Embedding), s.dimension)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal persona: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(personaKey(record.ClusterName), data)
	})
}

// Get retrieves one persona by cluster name.
func (s *BadgerPersonaStore) Get(ctx context.Context, clusterName string) (*models.PersonaRecord, error) {
	start := time.Now()
	record, err := s.get(ctx, clusterName)
	metrics.RecordStoreOperation("get", time.Since(start), err)
	return record, err
}

func (s *BadgerPersonaStore) get(ctx context.Context, clusterName string) (*models.PersonaRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record models.PersonaRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(personaKey(clusterName))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrPersonaNotFound
		}
		if err != nil {
			return fmt.Errorf("get persona: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns every stored persona, sorted by cluster name for a
// stable iteration order. An empty store yields an empty, non-nil
// slice.
func (s *BadgerPersonaStore) List(ctx context.Context) ([]models.PersonaRecord, error) {
	start := time.Now()
	records, err := s.list(ctx)
	metrics.RecordStoreOperation("list", time.Since(start), err)
	if err == nil {
		metrics.StorePersonaCount.Set(float64(len(records)))
	}
	return records, err
}

func (s *BadgerPersonaStore) list(ctx context.Context) ([]models.PersonaRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]models.PersonaRecord, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(personaKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record models.PersonaRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return fmt.Errorf("unmarshal persona: %w", err)
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ClusterName < records[j].ClusterName
	})

	return records, nil
}

// Count returns the number of stored personas.
func (s *BadgerPersonaStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(personaKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
