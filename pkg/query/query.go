// Copyright (c) 2026 YaMDB. All rights reserved.

// Package query parses URL query parameter values into typed slices.
package query

import "strings"

// StringSlice splits a comma-separated query value into a trimmed slice.
// Empty segments are dropped; an empty input yields nil.
//
// # Example
//
//	StringSlice("drama, sci-fi") // ["drama", "sci-fi"]
func StringSlice(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	for _, segment := range strings.Split(value, ",") {
		clean := strings.TrimSpace(segment)
		if clean != "" {
			result = append(result, clean)
		}
	}
	return result
}
