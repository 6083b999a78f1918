// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package validation

import (
	"strings"
	"testing"
)

type testProfile struct {
	Age       *int   `validate:"required,gte=0,lte=120"`
	Frequency string `validate:"required,oneof=Weekly Monthly Annually Fortnightly Quarterly Bi-Weekly 'Every 3 Months'"`
}

func intPtr(v int) *int { return &v }

func TestValidateStructPasses(t *testing.T) {
	p := testProfile{Age: intPtr(30), Frequency: "Monthly"}
	if verr := ValidateStruct(&p); verr != nil {
		t.Errorf("ValidateStruct() = %v, want nil", verr)
	}
}

func TestValidateStructMultiWordOneof(t *testing.T) {
	p := testProfile{Age: intPtr(30), Frequency: "Every 3 Months"}
	if verr := ValidateStruct(&p); verr != nil {
		t.Errorf("ValidateStruct() = %v, want nil for quoted oneof value", verr)
	}
}

func TestValidateStructFailures(t *testing.T) {
	tests := []struct {
		name      string
		profile   testProfile
		wantField string
		wantTag   string
	}{
		{
			name:      "missing age",
			profile:   testProfile{Frequency: "Weekly"},
			wantField: "Age",
			wantTag:   "required",
		},
		{
			name:      "age above range",
			profile:   testProfile{Age: intPtr(200), Frequency: "Weekly"},
			wantField: "Age",
			wantTag:   "lte",
		},
		{
			name:      "unknown frequency",
			profile:   testProfile{Age: intPtr(30), Frequency: "Daily"},
			wantField: "Frequency",
			wantTag:   "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.profile)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1", len(errs))
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
			if errs[0].Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", errs[0].Tag, tt.wantTag)
			}
		})
	}
}

func TestToAPIErrorSingle(t *testing.T) {
	p := testProfile{Age: intPtr(-1), Frequency: "Weekly"}
	verr := ValidateStruct(&p)
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "Age" {
		t.Errorf("Details[field] = %v, want Age", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultiple(t *testing.T) {
	p := testProfile{}
	verr := ValidateStruct(&p)
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if !strings.Contains(apiErr.Message, ";") {
		t.Errorf("expected combined message, got %q", apiErr.Message)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("expected fields detail for multiple errors")
	}
}
