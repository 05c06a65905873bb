// Copyright (c) 2026 YaMDB. All rights reserved.

// Package genre implements the genre reference data applied to titles.
package genre

import "time"

// Genre is a thematic label a title can carry; a title may have several.
type Genre struct {
	ID        int64     `json:"-"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"-"`
}

const (
	FieldName = "name"
	FieldSlug = "slug"
)

const (
	NameMaxLength = 256
	SlugMaxLength = 50
)
