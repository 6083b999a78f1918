// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

// Package models defines the wire types shared across the API surface:
// the response envelope, the customer profile, analysis results, and the
// retrieval query/response shapes.
//
// JSON field names on the profile ("Age", "Purchase Amount (USD)", ...)
// are an external contract inherited from the training data's column
// names and must not be renamed.
package models
