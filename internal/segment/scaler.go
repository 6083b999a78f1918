// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

import (
	"fmt"
)

// Scaler standardizes raw feature vectors with per-feature mean and
// scale learned at training time.
type Scaler struct {
	mean  []float64
	scale []float64
}

// NewScaler validates that both statistic vectors match the expected
// feature dimension.
func NewScaler(mean, scale []float64, dim int) (*Scaler, error) {
	if len(mean) != dim {
		return nil, fmt.Errorf("scaler mean has %d entries, schema has %d columns", len(mean), dim)
	}
	if len(scale) != dim {
		return nil, fmt.Errorf("scaler scale has %d entries, schema has %d columns", len(scale), dim)
	}
	return &Scaler{mean: mean, scale: scale}, nil
}

// Transform standardizes a raw vector: (value - mean) / scale per slot.
// A zero scale marks a feature that was constant at training time; the
// centered value passes through unscaled rather than dividing by zero.
func (s *Scaler) Transform(vec []float64) ([]float64, error) {
	if len(vec) != len(s.mean) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, len(vec), len(s.mean))
	}

	out := make([]float64, len(vec))
	for i, v := range vec {
		scale := s.scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.mean[i]) / scale
	}
	return out, nil
}
