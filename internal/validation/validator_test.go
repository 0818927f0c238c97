// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package validation

import (
	"strings"
	"testing"
)

type trendingRequest struct {
	WindowDays int    `validate:"min=1,max=365"`
	Limit      int    `validate:"min=1,max=100"`
	Platform   string `validate:"omitempty,oneof=reddit youtube bluesky"`
}

func TestValidateStruct_Valid(t *testing.T) {
	req := trendingRequest{WindowDays: 7, Limit: 20, Platform: "reddit"}
	if verr := ValidateStruct(&req); verr != nil {
		t.Errorf("ValidateStruct() = %v, want nil", verr)
	}

	// Empty platform passes via omitempty.
	req.Platform = ""
	if verr := ValidateStruct(&req); verr != nil {
		t.Errorf("ValidateStruct() without platform = %v, want nil", verr)
	}
}

func TestValidateStruct_SingleError(t *testing.T) {
	req := trendingRequest{WindowDays: 7, Limit: 500, Platform: "reddit"}

	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	errs := verr.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() count = %d, want 1", len(errs))
	}
	if errs[0].Field() != "Limit" || errs[0].Tag() != "max" {
		t.Errorf("error = %s/%s, want Limit/max", errs[0].Field(), errs[0].Tag())
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "at most 100") {
		t.Errorf("Message = %q, want max constraint text", apiErr.Message)
	}
	if apiErr.Details["field"] != "Limit" {
		t.Errorf("Details.field = %v, want Limit", apiErr.Details["field"])
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	req := trendingRequest{WindowDays: 0, Limit: 0, Platform: "myspace"}

	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(verr.Errors()) != 3 {
		t.Fatalf("Errors() count = %d, want 3", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]any)
	if !ok {
		t.Fatalf("Details.fields type = %T, want []map[string]any", apiErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("fields count = %d, want 3", len(fields))
	}
	if !strings.Contains(apiErr.Message, "Platform") {
		t.Errorf("Message = %q, want mention of Platform", apiErr.Message)
	}
}

func TestTranslateError_Oneof(t *testing.T) {
	req := trendingRequest{WindowDays: 7, Limit: 20, Platform: "friendster"}

	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	msg := verr.Errors()[0].Error()
	if !strings.Contains(msg, "must be one of") {
		t.Errorf("message = %q, want oneof translation", msg)
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() returned different instances")
	}
}
