package validator_test

import (
	"strings"
	"testing"

	"rentals/shared/failure"
	"rentals/shared/validator"

	"github.com/stretchr/testify/assert"
)

type roomForm struct {
	Category  string `json:"category"   validate:"required,oneof=single double studio"`
	Price     int    `json:"price"      validate:"gt=0"`
	Amenities string `json:"amenities"  validate:"notblank"`
	From      string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	valid := roomForm{Category: "single", Price: 550, Amenities: "WiFi, Desk", From: "2025-01-10"}

	tests := []struct {
		name    string
		mutate  func(f *roomForm)
		wantMsg string
	}{
		{name: "valid form", mutate: func(_ *roomForm) {}},
		{name: "missing category", mutate: func(f *roomForm) { f.Category = "" }, wantMsg: "category is required"},
		{name: "unknown category", mutate: func(f *roomForm) { f.Category = "suite" }, wantMsg: "category must be one of single double studio"},
		{name: "non-positive price", mutate: func(f *roomForm) { f.Price = 0 }, wantMsg: "price must be greater than 0"},
		{name: "blank amenities", mutate: func(f *roomForm) { f.Amenities = "   " }, wantMsg: "amenities must not be blank"},
		{name: "malformed date", mutate: func(f *roomForm) { f.From = "10/01/2025" }, wantMsg: "start_date must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.True(t, failure.IsValidation(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("owner@example.com", "email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
	assert.Error(t, validator.ValidateVar("  ", "notblank"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"category":"double","price":700,"amenities":"WiFi","start_date":"2025-02-01"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"category":"double","price":-5,"amenities":"WiFi","start_date":"2025-02-01"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"category":}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := roomForm{}
			err := validator.Validate(strings.NewReader(tt.jsonBody), &form)

			if tt.expectError {
				assert.True(t, failure.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
