// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

import (
	"fmt"
)

// Assigner performs Euclidean nearest-centroid assignment against the
// trained cluster centers. This reproduces k-means hard assignment
// without re-running the clustering algorithm.
type Assigner struct {
	centroids [][]float64
}

// NewAssigner validates the centroid set: exactly ClusterCount centers,
// each of schema dimension.
func NewAssigner(centroids [][]float64, dim int) (*Assigner, error) {
	if len(centroids) != ClusterCount {
		return nil, fmt.Errorf("model has %d centroids, want %d", len(centroids), ClusterCount)
	}
	for i, c := range centroids {
		if len(c) != dim {
			return nil, fmt.Errorf("centroid %d has %d entries, schema has %d columns", i, len(c), dim)
		}
	}
	return &Assigner{centroids: centroids}, nil
}

// Assign returns the label of the nearest centroid by squared Euclidean
// distance. Ties break to the lowest index, so assignment is stable and
// deterministic.
func (a *Assigner) Assign(vec []float64) (int, error) {
	if len(vec) != len(a.centroids[0]) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, len(vec), len(a.centroids[0]))
	}

	best := 0
	bestDist := squaredDistance(vec, a.centroids[0])
	for i := 1; i < len(a.centroids); i++ {
		if d := squaredDistance(vec, a.centroids[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, nil
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
