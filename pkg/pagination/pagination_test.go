// Copyright (c) 2026 YaMDB. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yamdb/yamdb/pkg/pagination"
)

/*
TestFromRequest verifies query parsing and clamping of limit/offset.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedLimit  int
		expectedOffset int
	}{
		{"defaults", "/titles", pagination.DefaultLimit, 0},
		{"explicit", "/titles?limit=50&offset=10", 50, 10},
		{"limit_too_large", "/titles?limit=5000", pagination.DefaultLimit, 0},
		{"limit_zero", "/titles?limit=0", pagination.DefaultLimit, 0},
		{"negative_offset", "/titles?offset=-5", pagination.DefaultLimit, 0},
		{"garbage_values", "/titles?limit=abc&offset=xyz", pagination.DefaultLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(r)

			assert.Equal(t, tt.expectedLimit, params.Limit)
			assert.Equal(t, tt.expectedOffset, params.Offset)
		})
	}
}

/*
TestNewMeta copies params and total into the response metadata block.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(pagination.Params{Limit: 20, Offset: 40}, 123)

	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, 40, meta.Offset)
	assert.Equal(t, 123, meta.Total)
}
