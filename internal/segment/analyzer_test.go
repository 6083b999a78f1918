// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package segment

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dkwon917/personify/internal/models"
)

func testdataPaths() ArtifactPaths {
	return ArtifactPaths{
		Model:   filepath.Join("testdata", "model.json"),
		Scaler:  filepath.Join("testdata", "scaler.json"),
		Columns: filepath.Join("testdata", "columns.json"),
	}
}

func mustAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := LoadAnalyzer(testdataPaths())
	if err != nil {
		t.Fatalf("LoadAnalyzer() error = %v", err)
	}
	return a
}

func TestLoadAnalyzer(t *testing.T) {
	a := mustAnalyzer(t)
	if got := a.Schema().Len(); got != 10 {
		t.Errorf("Schema().Len() = %d, want 10", got)
	}
}

func TestAnalyzerPredict(t *testing.T) {
	a := mustAnalyzer(t)

	// Raw vector [30, 120, 1, 0,0,0,0,1,0,0] standardizes to
	// [-1, 0.4, 1, 0,0,0,0,1,0,0], which is exactly centroid 2.
	res, err := a.Predict(testProfile())
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if res.PredictedCluster != 2 {
		t.Errorf("PredictedCluster = %d, want 2", res.PredictedCluster)
	}
	if res.ClusterName != "Trend-Sensitive Prospect" {
		t.Errorf("ClusterName = %q, want %q", res.ClusterName, "Trend-Sensitive Prospect")
	}
	if res.ClusterDescription == "" {
		t.Error("ClusterDescription is empty")
	}
}

func TestAnalyzerPredictInvalidProfile(t *testing.T) {
	a := mustAnalyzer(t)

	profile := testProfile()
	profile.Age = nil
	if _, err := a.Predict(profile); err == nil {
		t.Fatal("Predict() with missing age did not fail")
	}
}

func TestAnalyzerPredictBatch(t *testing.T) {
	a := mustAnalyzer(t)

	other := testProfile()
	other.Age = intPtr(50)
	other.PurchaseAmount = floatPtr(150)
	other.SubscriptionStatus = boolPtr(false)
	other.PurchaseFrequency = "Weekly"

	results, err := a.PredictBatch([]models.CustomerProfile{*testProfile(), *other})
	if err != nil {
		t.Fatalf("PredictBatch() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].PredictedCluster != 2 {
		t.Errorf("results[0].PredictedCluster = %d, want 2", results[0].PredictedCluster)
	}
	// [50, 150, No, Weekly] scales to [1,1,-1,0,0,0,0,-1,0,1],
	// nearest to centroid 0.
	if results[1].PredictedCluster != 0 {
		t.Errorf("results[1].PredictedCluster = %d, want 0", results[1].PredictedCluster)
	}
}

func TestAnalyzerPredictBatchFailFast(t *testing.T) {
	a := mustAnalyzer(t)

	bad := testProfile()
	bad.PurchaseAmount = nil

	results, err := a.PredictBatch([]models.CustomerProfile{*testProfile(), *bad})
	if err == nil {
		t.Fatal("PredictBatch() with invalid profile did not fail")
	}
	if results != nil {
		t.Errorf("PredictBatch() returned partial results %v, want nil", results)
	}
}

func TestAnalyzerPredictBatchEmpty(t *testing.T) {
	a := mustAnalyzer(t)

	results, err := a.PredictBatch(nil)
	if err != nil {
		t.Fatalf("PredictBatch(nil) error = %v", err)
	}
	if results == nil {
		t.Fatal("PredictBatch(nil) returned nil slice, want empty")
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func writeArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadAnalyzerFailures(t *testing.T) {
	dir := t.TempDir()

	goodColumns := `["Age","Purchase Amount (USD)"]`
	goodScaler := `{"mean":[0,0],"scale":[1,1]}`

	tests := []struct {
		name  string
		paths func(t *testing.T) ArtifactPaths
	}{
		{
			name: "missing model file",
			paths: func(t *testing.T) ArtifactPaths {
				return ArtifactPaths{
					Model:   filepath.Join(dir, "absent.json"),
					Scaler:  writeArtifact(t, dir, "s1.json", goodScaler),
					Columns: writeArtifact(t, dir, "c1.json", goodColumns),
				}
			},
		},
		{
			name: "corrupt columns",
			paths: func(t *testing.T) ArtifactPaths {
				return ArtifactPaths{
					Model:   writeArtifact(t, dir, "m2.json", `{"centroids":[]}`),
					Scaler:  writeArtifact(t, dir, "s2.json", goodScaler),
					Columns: writeArtifact(t, dir, "c2.json", `["Age",`),
				}
			},
		},
		{
			name: "scaler dimension mismatch",
			paths: func(t *testing.T) ArtifactPaths {
				return ArtifactPaths{
					Model:   writeArtifact(t, dir, "m3.json", `{"centroids":[]}`),
					Scaler:  writeArtifact(t, dir, "s3.json", `{"mean":[0],"scale":[1]}`),
					Columns: writeArtifact(t, dir, "c3.json", goodColumns),
				}
			},
		},
		{
			name: "wrong centroid count",
			paths: func(t *testing.T) ArtifactPaths {
				return ArtifactPaths{
					Model:   writeArtifact(t, dir, "m4.json", `{"centroids":[[0,0],[1,1]]}`),
					Scaler:  writeArtifact(t, dir, "s4.json", goodScaler),
					Columns: writeArtifact(t, dir, "c4.json", goodColumns),
				}
			},
		},
		{
			name: "centroid dimension mismatch",
			paths: func(t *testing.T) ArtifactPaths {
				centroids := `{"centroids":[[0],[1],[2],[3],[4],[5],[6]]}`
				return ArtifactPaths{
					Model:   writeArtifact(t, dir, "m5.json", centroids),
					Scaler:  writeArtifact(t, dir, "s5.json", goodScaler),
					Columns: writeArtifact(t, dir, "c5.json", goodColumns),
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAnalyzer(tt.paths(t))
			if err == nil {
				t.Fatal("LoadAnalyzer() did not fail")
			}
			if !errors.Is(err, ErrArtifactLoad) {
				t.Errorf("error %v does not wrap ErrArtifactLoad", err)
			}
		})
	}
}
