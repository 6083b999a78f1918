// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

import (
	"fmt"
)

// Feature column names fixed by the training data. Indicator columns
// follow the pandas get_dummies convention: attribute name, underscore,
// categorical value. Training dropped the first subscription dummy, so
// the schema carries a single "Subscription Status_Yes" column.
const (
	ColAge            = "Age"
	ColPurchaseAmount = "Purchase Amount (USD)"

	subscriptionPrefix = "Subscription Status_"
	frequencyPrefix    = "Frequency of Purchases_"
)

// Schema is the immutable ordered list of feature columns captured at
// training time. Inference-time vectors must have exactly this length
// and column order. The column->position index is built once so one-hot
// placement is a map lookup, not a per-request frame rebuild.
type Schema struct {
	columns []string
	index   map[string]int
}

// NewSchema builds a schema from the ordered training-time column list.
func NewSchema(columns []string) (*Schema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("schema has no columns")
	}

	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if col == "" {
			return nil, fmt.Errorf("schema column %d is empty", i)
		}
		if _, ok := index[col]; ok {
			return nil, fmt.Errorf("schema column %q is duplicated", col)
		}
		index[col] = i
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Schema{columns: cols, index: index}, nil
}

// Len returns the number of feature columns.
func (s *Schema) Len() int {
	return len(s.columns)
}

// Columns returns a copy of the ordered column names.
func (s *Schema) Columns() []string {
	cols := make([]string, len(s.columns))
	copy(cols, s.columns)
	return cols
}

// Position returns the slot of a column, or false if the column was
// not realized at training time.
func (s *Schema) Position(column string) (int, bool) {
	pos, ok := s.index[column]
	return pos, ok
}

// SubscriptionColumn returns the indicator column name for a
// subscription status value.
func SubscriptionColumn(value string) string {
	return subscriptionPrefix + value
}

// FrequencyColumn returns the indicator column name for a purchase
// frequency value.
func FrequencyColumn(value string) string {
	return frequencyPrefix + value
}
