// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package models

// RagQuery is a persona retrieval request. At least one of the four
// signal fields must be present.
type RagQuery struct {
	Profile            *CustomerProfile `json:"profile,omitempty"`
	PersonaName        string           `json:"persona_name,omitempty"`
	PersonaDescription string           `json:"persona_description,omitempty"`
	QueryText          string           `json:"query_text,omitempty"`
	TopK               int              `json:"top_k,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// HasSignal reports whether the query carries any retrievable input.
func (q *RagQuery) HasSignal() bool {
	return q.Profile != nil || q.PersonaName != "" || q.PersonaDescription != "" || q.QueryText != ""
}

// RagMatch is one ranked persona with its similarity score. The stored
// embedding is stripped before responses leave the ranker.
type RagMatch struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ClusterName string  `json:"cluster_name"`
	Score       float64 `json:"score"`
}

// RagResponse is the retrieval endpoint's payload.
type RagResponse struct {
	Matches []RagMatch `json:"matches"`
}
