// Copyright (c) 2026 YaMDB. All rights reserved.

package category

import (
	"context"

	"github.com/yamdb/yamdb/pkg/pagination"
)

// Repository defines the data access contract for categories.
type Repository interface {

	/*
		List returns a page of categories ordered by name, optionally
		filtered by a name substring.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params
		  - search: string (empty means no filter)

		Returns:
		  - []*Category: The page of categories
		  - int: Total matching rows
		  - error: Database retrieval failures
	*/
	List(context context.Context, params pagination.Params, search string) ([]*Category, int, error)

	/*
		FindBySlug returns the category with the given slug.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Category: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindBySlug(context context.Context, slug string) (*Category, error)

	/*
		Create persists a new category and assigns its ID.

		Parameters:
		  - context: context.Context
		  - category: *Category

		Returns:
		  - error: Conflict (duplicate slug) or persistence failures
	*/
	Create(context context.Context, category *Category) error

	/*
		Delete removes the category with the given slug. Titles referencing
		it keep existing with a null category (database SET NULL).

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - error: NotFound or persistence failures
	*/
	Delete(context context.Context, slug string) error
}
