// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package models

// AnalysisResult is the clustering pipeline's output for one profile.
type AnalysisResult struct {
	PredictedCluster   int    `json:"predicted_cluster"`
	ClusterName        string `json:"cluster_name"`
	ClusterDescription string `json:"cluster_description"`
}

// BatchRequest carries multiple profiles for batch analysis. An empty
// list is valid and yields an empty result array.
type BatchRequest struct {
	Profiles []CustomerProfile `json:"profiles"`
}
