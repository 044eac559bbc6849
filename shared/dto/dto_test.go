package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"rentals/shared/constant"
	"rentals/shared/dto"
	"rentals/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "owner-1",
		ModifiedBy: "admin-1",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.Equal(t, "owner-1", metadata.CreatedBy)

	if assert.NotNil(t, metadata.ModifiedAt) && assert.NotNil(t, metadata.ModifiedBy) {
		assert.Equal(t, "admin-1", *metadata.ModifiedBy)
	}
}

func TestMetadata_FromModelUntouched(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt,
		CreatedBy:  "owner-1",
		ModifiedBy: "owner-1",
	})

	assert.Nil(t, metadata.ModifiedAt)
	assert.Nil(t, metadata.ModifiedBy)
}

func TestSortParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "no sort_dir defaults to ascending", query: "", expected: constant.DefaultValueSortDir},
		{name: "lower case desc", query: "sort_dir=desc", expected: dto.SortDirDesc},
		{name: "upper case asc", query: "sort_dir=ASC", expected: dto.SortDirAsc},
		{name: "unknown value defaults", query: "sort_dir=sideways", expected: constant.DefaultValueSortDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &http.Request{URL: &url.URL{RawQuery: tt.query}}

			params := dto.SortParams{}
			params.FromRequest(req)

			assert.Equal(t, tt.expected, params.SortDir)
		})
	}
}
