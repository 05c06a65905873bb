// Copyright (c) 2026 YaMDB. All rights reserved.

package title

import (
	"context"

	"github.com/yamdb/yamdb/pkg/pagination"
)

// Filter narrows a title listing. Zero values mean "no filter".
//
// GenreSlugs matches titles carrying ANY of the given genres.
type Filter struct {
	CategorySlug string
	GenreSlugs   []string
	Name         string
	Year         int
}

// Repository defines the data access contract for titles.
type Repository interface {

	/*
		List returns a page of titles with hydrated category, genres and
		computed rating, ordered by name.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params
		  - filter: Filter

		Returns:
		  - []*Title: The page of titles
		  - int: Total matching rows
		  - error: Database retrieval failures
	*/
	List(context context.Context, params pagination.Params, filter Filter) ([]*Title, int, error)

	/*
		FindByID returns a fully hydrated title.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Title: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*Title, error)

	/*
		Create persists a new title and its genre links atomically.

		Parameters:
		  - context: context.Context
		  - title: *Title (CategoryID must be resolved)
		  - genreIDs: []int64

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, title *Title, genreIDs []int64) error

	/*
		Update persists changes to a title. When replaceGenres is true the
		genre links are replaced with genreIDs in the same transaction.

		Parameters:
		  - context: context.Context
		  - title: *Title
		  - genreIDs: []int64
		  - replaceGenres: bool

		Returns:
		  - error: NotFound or persistence failures
	*/
	Update(context context.Context, title *Title, genreIDs []int64, replaceGenres bool) error

	/*
		Delete removes the title. Its reviews and their comments are
		removed by the database cascade.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: NotFound or persistence failures
	*/
	Delete(context context.Context, id int64) error
}
