// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

// Package segment implements the clustering inference pipeline: feature
// encoding aligned to the training-time schema, standardization with
// training-time statistics, and nearest-centroid assignment against the
// trained k-means model.
//
// The pipeline must reproduce training-time feature semantics exactly.
// Three artifacts produced by the offline training job fix those
// semantics: the ordered feature-column schema, the per-feature
// mean/scale pairs, and the k centroid vectors. All three are loaded
// once at startup into an Analyzer, which is immutable afterwards and
// safe for unsynchronized concurrent use.
//
// Categorical handling is deliberately lossy: a categorical value that
// was never realized during training has no indicator column in the
// schema, so encoding leaves its one-hot group all zero. "Fixing" this
// would diverge from what the model was trained on.
package segment
