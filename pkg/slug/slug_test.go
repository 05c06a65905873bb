// Copyright (c) 2026 YaMDB. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yamdb/yamdb/pkg/slug"
)

/*
TestFrom verifies the slugification pipeline over representative names.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Fiction", "fiction"},
		{"spaces", "Science Fiction", "science-fiction"},
		{"accents", "Café Culture", "cafe-culture"},
		{"punctuation", "Rock'n'Roll!", "rock-n-roll"},
		{"multi_hyphen", "a -- b", "a-b"},
		{"trim_hyphens", "  --Drama--  ", "drama"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
