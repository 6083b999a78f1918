// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

// Package store persists the persona corpus in BadgerDB. Records are
// keyed by cluster name, so re-running the offline embedding job
// overwrites existing personas instead of duplicating them.
package store
