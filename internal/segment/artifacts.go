// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Serialized artifact shapes produced by the offline training job.
// All three files must agree on dimensionality; any disagreement is
// fatal at startup.
type modelArtifact struct {
	Centroids [][]float64 `json:"centroids"`
}

type scalerArtifact struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// ArtifactPaths locates the three serialized training artifacts.
type ArtifactPaths struct {
	Model   string
	Scaler  string
	Columns string
}

// LoadAnalyzer reads the trained artifacts, cross-validates their
// dimensions, and assembles the inference pipeline. Every failure wraps
// ErrArtifactLoad so readiness reporting can distinguish artifact
// problems from request-time errors.
func LoadAnalyzer(paths ArtifactPaths) (*Analyzer, error) {
	var columns []string
	if err := readArtifact(paths.Columns, &columns); err != nil {
		return nil, err
	}
	schema, err := NewSchema(columns)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactLoad, paths.Columns, err)
	}

	var scalerArt scalerArtifact
	if err := readArtifact(paths.Scaler, &scalerArt); err != nil {
		return nil, err
	}
	scaler, err := NewScaler(scalerArt.Mean, scalerArt.Scale, schema.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactLoad, paths.Scaler, err)
	}

	var modelArt modelArtifact
	if err := readArtifact(paths.Model, &modelArt); err != nil {
		return nil, err
	}
	assigner, err := NewAssigner(modelArt.Centroids, schema.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactLoad, paths.Model, err)
	}

	encoder, err := NewEncoder(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactLoad, paths.Columns, err)
	}

	return &Analyzer{
		schema:   schema,
		encoder:  encoder,
		scaler:   scaler,
		assigner: assigner,
	}, nil
}

func readArtifact(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactLoad, path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactLoad, path, err)
	}
	return nil
}
