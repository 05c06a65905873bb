// Copyright (c) 2026 YaMDB. All rights reserved.

package genre

import (
	"context"

	"github.com/yamdb/yamdb/pkg/pagination"
)

// Repository defines the data access contract for genres.
type Repository interface {
	List(context context.Context, params pagination.Params, search string) ([]*Genre, int, error)
	FindBySlug(context context.Context, slug string) (*Genre, error)
	Create(context context.Context, genre *Genre) error

	// Delete removes the genre and its title links (database cascade on
	// the join table). Titles themselves are untouched.
	Delete(context context.Context, slug string) error
}
