// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

import (
	"github.com/dkwon917/personify/internal/models"
)

// Analyzer owns the trained artifacts and runs the full clustering
// pipeline: encode, standardize, assign, describe. It is immutable
// after LoadAnalyzer and safe for concurrent use without locking.
type Analyzer struct {
	schema   *Schema
	encoder  *Encoder
	scaler   *Scaler
	assigner *Assigner
}

// Schema exposes the training-time feature schema.
func (a *Analyzer) Schema() *Schema {
	return a.schema
}

// Predict assigns one profile to its persona segment.
func (a *Analyzer) Predict(profile *models.CustomerProfile) (models.AnalysisResult, error) {
	raw, err := a.encoder.Encode(profile)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	scaled, err := a.scaler.Transform(raw)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	label, err := a.assigner.Assign(scaled)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	desc := DescriptorFor(label)
	return models.AnalysisResult{
		PredictedCluster:   label,
		ClusterName:        desc.Name,
		ClusterDescription: desc.Description,
	}, nil
}

// PredictBatch analyzes profiles in input order. The batch is
// fail-fast: the first invalid profile aborts the whole batch rather
// than yielding partial results. An empty input yields an empty,
// non-nil result slice.
func (a *Analyzer) PredictBatch(profiles []models.CustomerProfile) ([]models.AnalysisResult, error) {
	results := make([]models.AnalysisResult, 0, len(profiles))
	for i := range profiles {
		res, err := a.Predict(&profiles[i])
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
