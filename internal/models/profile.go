// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package models

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// PurchaseFrequencies is the fixed set of categorical values the model
// was trained on. Values outside this set fail profile validation.
var PurchaseFrequencies = []string{
	"Weekly",
	"Monthly",
	"Annually",
	"Fortnightly",
	"Quarterly",
	"Bi-Weekly",
	"Every 3 Months",
}

// ExtraField is one unknown profile key/value pair. Extras keep their
// JSON insertion order so query-text construction stays deterministic.
type ExtraField struct {
	Key   string
	Value interface{}
}

// CustomerProfile is the canonical customer record. The four typed
// fields feed the clustering pipeline; unknown fields are preserved in
// Extras for query-text construction and ignored by clustering.
//
// Pointer fields distinguish "absent" from zero values: Age 0 is a
// valid input, a missing Age is a validation error.
type CustomerProfile struct {
	Age                *int     `json:"Age" validate:"required,gte=0,lte=120"`
	PurchaseAmount     *float64 `json:"Purchase Amount (USD)" validate:"required,gte=0"`
	SubscriptionStatus *bool    `json:"Subscription Status" validate:"required"`
	PurchaseFrequency  string   `json:"Frequency of Purchases" validate:"required,oneof=Weekly Monthly Annually Fortnightly Quarterly Bi-Weekly 'Every 3 Months'"`

	Extras []ExtraField `json:"-"`
}

// UnmarshalJSON decodes a profile while capturing unknown keys, in
// order, into Extras. Subscription status accepts a JSON bool or the
// legacy "Yes"/"No" strings from the training data.
func (p *CustomerProfile) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("profile must be a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in profile", keyTok)
		}

		switch key {
		case "Age":
			var v int
			if err := dec.Decode(&v); err != nil {
				return fmt.Errorf("Age must be an integer: %w", err)
			}
			p.Age = &v
		case "Purchase Amount (USD)":
			var v float64
			if err := dec.Decode(&v); err != nil {
				return fmt.Errorf("Purchase Amount (USD) must be a number: %w", err)
			}
			p.PurchaseAmount = &v
		case "Subscription Status":
			var raw interface{}
			if err := dec.Decode(&raw); err != nil {
				return err
			}
			v, err := parseSubscriptionStatus(raw)
			if err != nil {
				return err
			}
			p.SubscriptionStatus = &v
		case "Frequency of Purchases":
			if err := dec.Decode(&p.PurchaseFrequency); err != nil {
				return fmt.Errorf("Frequency of Purchases must be a string: %w", err)
			}
		default:
			var v interface{}
			if err := dec.Decode(&v); err != nil {
				return err
			}
			p.Extras = append(p.Extras, ExtraField{Key: key, Value: v})
		}
	}

	_, err = dec.Token()
	return err
}

func parseSubscriptionStatus(raw interface{}) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
	}
	return false, fmt.Errorf(`Subscription Status must be a bool or "Yes"/"No"`)
}

// SubscriptionValue returns the categorical value the training data
// used for subscription status.
func (p *CustomerProfile) SubscriptionValue() string {
	if p.SubscriptionStatus != nil && *p.SubscriptionStatus {
		return "Yes"
	}
	return "No"
}
