// Copyright (c) 2026 YaMDB. All rights reserved.

/*
Package category implements the title category reference data (films, books,
music and so on).

# Architecture

Categories are a flat reference list keyed by slug. Writes are restricted to
administrators; reads are public.
*/
package category

import "time"

// Category classifies a title into exactly one broad media kind.
type Category struct {
	ID        int64     `json:"-"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"-"`
}

// Field identifiers used in validation messages.
const (
	FieldName = "name"
	FieldSlug = "slug"
)

// Column width limits, mirrored by the database schema.
const (
	NameMaxLength = 256
	SlugMaxLength = 50
)
