// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package retrieval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dkwon917/personify/internal/models"
)

// BuildQueryText serializes retrieval inputs into a single query
// string. Persona name and description hints lead; the profile follows
// as "- key: value" lines with the four canonical keys in fixed order
// and any extra keys in their original insertion order.
//
// Returns an error when every input is absent, so no embedding call is
// made for an empty query.
func BuildQueryText(profile *models.CustomerProfile, personaName, personaDescription string) (string, error) {
	var lines []string

	if personaName != "" {
		lines = append(lines, "persona: "+personaName)
	}
	if personaDescription != "" {
		lines = append(lines, "description: "+personaDescription)
	}

	if profile != nil {
		lines = append(lines, "profile:")
		if profile.Age != nil {
			lines = append(lines, "- Age: "+strconv.Itoa(*profile.Age))
		}
		if profile.PurchaseAmount != nil {
			lines = append(lines, "- Purchase Amount (USD): "+formatFloat(*profile.PurchaseAmount))
		}
		if profile.SubscriptionStatus != nil {
			lines = append(lines, "- Subscription Status: "+profile.SubscriptionValue())
		}
		if profile.PurchaseFrequency != "" {
			lines = append(lines, "- Frequency of Purchases: "+profile.PurchaseFrequency)
		}
		for _, extra := range profile.Extras {
			lines = append(lines, fmt.Sprintf("- %s: %s", extra.Key, formatExtra(extra.Value)))
		}
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		return "", fmt.Errorf("query text is empty")
	}
	return text, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatExtra renders an arbitrary decoded JSON value. Numbers keep
// their original JSON text via json.Number, so "120.0" stays "120.0".
func formatExtra(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
