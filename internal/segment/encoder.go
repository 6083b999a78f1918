// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

import (
	"fmt"

	"github.com/dkwon917/personify/internal/models"
	"github.com/dkwon917/personify/internal/validation"
)

// Encoder converts a customer profile into a raw numeric feature vector
// aligned to the training-time schema: numeric fields pass through in
// their scalar slots, categorical fields set the matching indicator
// column to 1. Indicators implied by the input but absent from the
// schema are dropped, leaving that one-hot group all zero.
type Encoder struct {
	schema    *Schema
	agePos    int
	amountPos int
}

// NewEncoder builds an encoder for the given schema. The two scalar
// columns must be present; indicator columns are looked up per value.
func NewEncoder(schema *Schema) (*Encoder, error) {
	agePos, ok := schema.Position(ColAge)
	if !ok {
		return nil, fmt.Errorf("schema is missing column %q", ColAge)
	}
	amountPos, ok := schema.Position(ColPurchaseAmount)
	if !ok {
		return nil, fmt.Errorf("schema is missing column %q", ColPurchaseAmount)
	}

	return &Encoder{schema: schema, agePos: agePos, amountPos: amountPos}, nil
}

// Encode produces a feature vector of exactly schema length, in schema
// order. A profile missing a required field fails validation before any
// encoding happens.
func (e *Encoder) Encode(profile *models.CustomerProfile) ([]float64, error) {
	if verr := validation.ValidateStruct(profile); verr != nil {
		return nil, verr
	}

	vec := make([]float64, e.schema.Len())
	vec[e.agePos] = float64(*profile.Age)
	vec[e.amountPos] = *profile.PurchaseAmount

	// Unseen categorical values have no schema column and are silently
	// dropped to match trained-model semantics.
	if pos, ok := e.schema.Position(SubscriptionColumn(profile.SubscriptionValue())); ok {
		vec[pos] = 1
	}
	if pos, ok := e.schema.Position(FrequencyColumn(profile.PurchaseFrequency)); ok {
		vec[pos] = 1
	}

	return vec, nil
}
