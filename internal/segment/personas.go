// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

// ClusterCount is the fixed number of trained clusters (k in the
// offline k-means job).
const ClusterCount = 7

// UnclassifiedLabel is the sentinel label for the defensive fallback
// descriptor.
const UnclassifiedLabel = -1

// Descriptor is a human-readable persona assigned to one cluster label.
type Descriptor struct {
	Label       int    `json:"label"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// personaTable maps cluster labels to persona descriptors. Built once;
// indexed directly by label.
var personaTable = [ClusterCount]Descriptor{
	{
		Label:       0,
		Name:        "Thrifty Value Shopper",
		Description: "Spends relatively little per purchase but visits steadily and buys exactly what they need.",
	},
	{
		Label:       1,
		Name:        "Loyal VIP Customer",
		Description: "High purchase amounts combined with an active subscription make this the most engaged VIP segment.",
	},
	{
		Label:       2,
		Name:        "Trend-Sensitive Prospect",
		Description: "Younger customers with high purchase amounts who follow trends closely; strong VIP candidates if they subscribe.",
	},
	{
		Label:       3,
		Name:        "Steady Subscriber",
		Description: "Keeps a subscription running and shows a stable, reliable consumption pattern.",
	},
	{
		Label:       4,
		Name:        "Average Everyday Customer",
		Description: "The most common consumption pattern, with potential interest across a wide range of products.",
	},
	{
		Label:       5,
		Name:        "Seasonal Big Spender",
		Description: "Visits infrequently but spends large amounts when they do; an important high-value segment.",
	},
	{
		Label:       6,
		Name:        "Frequent Regular",
		Description: "Modest purchase amounts but very frequent visits, showing high loyalty to the service.",
	},
}

// unclassified is the defensive fallback for labels outside the trained
// range. Nearest-centroid assignment cannot produce such a label from a
// well-formed centroid set, so this path exists purely as a guard.
var unclassified = Descriptor{
	Label:       UnclassifiedLabel,
	Name:        "Unclassified",
	Description: "The data does not match any known customer type.",
}

// DescriptorFor returns the persona for a cluster label, or the
// unclassified descriptor when the label is out of range.
func DescriptorFor(label int) Descriptor {
	if label < 0 || label >= ClusterCount {
		return unclassified
	}
	return personaTable[label]
}

// Personas returns all trained persona descriptors in label order.
// The offline embedding job uses this as its corpus.
func Personas() []Descriptor {
	out := make([]Descriptor, ClusterCount)
	copy(out, personaTable[:])
	return out
}
