// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

import (
	"errors"
	"testing"

	"github.com/dkwon917/personify/internal/models"
	"github.com/dkwon917/personify/internal/validation"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func boolPtr(v bool) *bool          { return &v }

func testProfile() *models.CustomerProfile {
	return &models.CustomerProfile{
		Age:                intPtr(30),
		PurchaseAmount:     floatPtr(120),
		SubscriptionStatus: boolPtr(true),
		PurchaseFrequency:  "Monthly",
	}
}

func mustEncoder(t *testing.T) *Encoder {
	t.Helper()
	schema, err := NewSchema(testColumns())
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}
	enc, err := NewEncoder(schema)
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	return enc
}

func TestEncodeAlignsToSchema(t *testing.T) {
	enc := mustEncoder(t)

	vec, err := enc.Encode(testProfile())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := []float64{30, 120, 1, 0, 0, 0, 0, 1, 0, 0}
	if len(vec) != len(want) {
		t.Fatalf("len(vec) = %d, want %d", len(vec), len(want))
	}
	for i := range want {
		if vec[i] != want[i] {
			t.Errorf("vec[%d] = %v, want %v", i, vec[i], want[i])
		}
	}
}

func TestEncodeSubscriptionNoProducesZeroIndicator(t *testing.T) {
	// Training dropped the first subscription dummy, so "No" has no
	// column and the group stays all zero.
	enc := mustEncoder(t)

	p := testProfile()
	p.SubscriptionStatus = boolPtr(false)

	vec, err := enc.Encode(p)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if vec[2] != 0 {
		t.Errorf("subscription indicator = %v, want 0", vec[2])
	}
}

func TestEncodeUnseenIndicatorDropped(t *testing.T) {
	// A schema trained without the Quarterly value must treat Quarterly
	// profiles as having no active frequency indicator.
	columns := []string{
		"Age",
		"Purchase Amount (USD)",
		"Subscription Status_Yes",
		"Frequency of Purchases_Monthly",
		"Frequency of Purchases_Weekly",
	}
	schema, err := NewSchema(columns)
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}
	enc, err := NewEncoder(schema)
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}

	p := testProfile()
	p.PurchaseFrequency = "Quarterly"

	vec, err := enc.Encode(p)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := []float64{30, 120, 1, 0, 0}
	for i := range want {
		if vec[i] != want[i] {
			t.Errorf("vec[%d] = %v, want %v", i, vec[i], want[i])
		}
	}
}

func TestEncodeExtrasIgnored(t *testing.T) {
	enc := mustEncoder(t)

	p := testProfile()
	p.Extras = []models.ExtraField{{Key: "Location", Value: "Seoul"}}

	vec, err := enc.Encode(p)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if len(vec) != 10 {
		t.Errorf("len(vec) = %d, want 10 regardless of extras", len(vec))
	}
}

func TestEncodeMissingFieldFailsValidation(t *testing.T) {
	enc := mustEncoder(t)

	tests := []struct {
		name   string
		mutate func(*models.CustomerProfile)
	}{
		{"missing age", func(p *models.CustomerProfile) { p.Age = nil }},
		{"missing amount", func(p *models.CustomerProfile) { p.PurchaseAmount = nil }},
		{"missing subscription", func(p *models.CustomerProfile) { p.SubscriptionStatus = nil }},
		{"missing frequency", func(p *models.CustomerProfile) { p.PurchaseFrequency = "" }},
		{"age out of range", func(p *models.CustomerProfile) { p.Age = intPtr(150) }},
		{"negative amount", func(p *models.CustomerProfile) { p.PurchaseAmount = floatPtr(-5) }},
		{"unknown frequency", func(p *models.CustomerProfile) { p.PurchaseFrequency = "Daily" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile()
			tt.mutate(p)

			_, err := enc.Encode(p)
			if err == nil {
				t.Fatal("Encode() = nil error, want validation error")
			}

			var verr *validation.RequestValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error type = %T, want *validation.RequestValidationError", err)
			}
		})
	}
}

func TestNewEncoderRequiresScalarColumns(t *testing.T) {
	schema, err := NewSchema([]string{"Subscription Status_Yes"})
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}
	if _, err := NewEncoder(schema); err == nil {
		t.Error("NewEncoder() = nil error, want missing column error")
	}
}
