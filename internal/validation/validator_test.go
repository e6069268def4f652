// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package validation

import (
	"strings"
	"testing"
)

type mediaRequest struct {
	Images []string `validate:"omitempty,dive,url"`
	Videos []string `validate:"omitempty,dive,url"`
}

type boundedConfig struct {
	MaxTags       int     `validate:"gte=1"`
	MinConfidence float64 `validate:"gte=-1,lte=1"`
}

func TestValidateStructPasses(t *testing.T) {
	req := mediaRequest{
		Images: []string{"https://example.com/a.jpg"},
		Videos: []string{"https://youtu.be/dQw4w9WgXcQ"},
	}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestValidateStructEmptySlicesPass(t *testing.T) {
	if err := ValidateStruct(&mediaRequest{}); err != nil {
		t.Errorf("omitempty slices should pass, got %v", err)
	}
}

func TestValidateStructRejectsBadURL(t *testing.T) {
	req := mediaRequest{Images: []string{"not a url"}}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error for malformed URL")
	}
	if !strings.Contains(err.Error(), "valid URL") {
		t.Errorf("error message %q should mention valid URL", err.Error())
	}
}

func TestValidateStructNumericBounds(t *testing.T) {
	cfg := boundedConfig{MaxTags: 0, MinConfidence: 2}
	err := ValidateStruct(&cfg)
	if err == nil {
		t.Fatal("expected validation error for out-of-range values")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(err.Errors()), err)
	}
}

func TestToAPIErrorSingle(t *testing.T) {
	req := mediaRequest{Images: []string{"bogus"}}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] == nil {
		t.Error("single-error details should name the field")
	}
}

func TestToAPIErrorMultiple(t *testing.T) {
	cfg := boundedConfig{MaxTags: -5, MinConfidence: 9}
	err := ValidateStruct(&cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("multi-error details should list both fields, got %v", apiErr.Details)
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}
