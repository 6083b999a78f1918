// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

import "errors"

var (
	// ErrSchemaMismatch reports a vector whose length disagrees with the
	// training-time schema. This is an internal contract violation, never
	// a caller input problem.
	ErrSchemaMismatch = errors.New("feature vector length does not match schema")

	// ErrArtifactLoad reports a missing or corrupt trained artifact at
	// startup. Fatal to process readiness.
	ErrArtifactLoad = errors.New("trained artifact load failed")
)
