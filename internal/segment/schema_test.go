// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

import (
	"testing"
)

// testColumns mirrors the column order the training job produces:
// scalar columns first, then one indicator per realized categorical
// value in alphabetical order.
func testColumns() []string {
	return []string{
		"Age",
		"Purchase Amount (USD)",
		"Subscription Status_Yes",
		"Frequency of Purchases_Annually",
		"Frequency of Purchases_Bi-Weekly",
		"Frequency of Purchases_Every 3 Months",
		"Frequency of Purchases_Fortnightly",
		"Frequency of Purchases_Monthly",
		"Frequency of Purchases_Quarterly",
		"Frequency of Purchases_Weekly",
	}
}

func TestNewSchema(t *testing.T) {
	schema, err := NewSchema(testColumns())
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}
	if schema.Len() != 10 {
		t.Errorf("Len() = %d, want 10", schema.Len())
	}

	pos, ok := schema.Position("Frequency of Purchases_Monthly")
	if !ok || pos != 7 {
		t.Errorf("Position(Monthly) = %d, %v, want 7, true", pos, ok)
	}

	if _, ok := schema.Position("Frequency of Purchases_Daily"); ok {
		t.Error("Position(Daily) should not exist")
	}
}

func TestNewSchemaRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
	}{
		{"empty list", nil},
		{"empty column", []string{"Age", ""}},
		{"duplicate column", []string{"Age", "Age"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSchema(tt.columns); err == nil {
				t.Error("NewSchema() = nil error, want error")
			}
		})
	}
}

func TestSchemaColumnsReturnsCopy(t *testing.T) {
	schema, err := NewSchema(testColumns())
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}

	cols := schema.Columns()
	cols[0] = "mutated"

	if schema.Columns()[0] != "Age" {
		t.Error("mutating the returned slice changed the schema")
	}
}

func TestIndicatorColumnNames(t *testing.T) {
	if got := SubscriptionColumn("Yes"); got != "Subscription Status_Yes" {
		t.Errorf("SubscriptionColumn(Yes) = %q", got)
	}
	if got := FrequencyColumn("Every 3 Months"); got != "Frequency of Purchases_Every 3 Months" {
		t.Errorf("FrequencyColumn(Every 3 Months) = %q", got)
	}
}
