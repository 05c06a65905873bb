// Copyright (c) 2026 YaMDB. All rights reserved.

/*
Package title implements the central catalog entity of YaMDB.

A title is a work (a film, a book, a song) that users publish reviews for.
It carries exactly one category, any number of genres, and a computed
rating: the rounded average of all review scores.

# Architecture

The rating is never stored. It is computed by the storage layer on every
read from the social.review table, so deleting a review or an account
adjusts it automatically.
*/
package title

import (
	"time"

	"github.com/yamdb/yamdb/internal/catalog/category"
	"github.com/yamdb/yamdb/internal/catalog/genre"
)

// Title represents a reviewable work in the catalog.
type Title struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
	Description string `json:"description,omitempty"`

	// Rating is the average review score, nil while the title has no reviews.
	Rating *float64 `json:"rating"`

	Category *category.Category `json:"category"`
	Genres   []genre.Genre      `json:"genre"`

	CategoryID *int64    `json:"-"`
	CreatedAt  time.Time `json:"-"`
}

// Field identifiers used in validation messages.
const (
	FieldName        = "name"
	FieldYear        = "year"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldGenre       = "genre"
)

// NameMaxLength bounds the name column.
const NameMaxLength = 256
