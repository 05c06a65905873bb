// Copyright (c) 2026 YaMDB. All rights reserved.

package comment

import (
	"context"

	"github.com/yamdb/yamdb/pkg/pagination"
)

// Repository defines the data access contract for comments.
//
// All lookups are scoped by the full parent chain (title and review); a
// comment addressed through the wrong chain behaves as if it does not exist.
type Repository interface {

	// ReviewExists reports whether the review belongs to the title.
	ReviewExists(context context.Context, titleID, reviewID int64) (bool, error)

	ListByReview(context context.Context, titleID, reviewID int64, params pagination.Params) ([]*Comment, int, error)
	FindByID(context context.Context, titleID, reviewID, commentID int64) (*Comment, error)
	Create(context context.Context, comment *Comment) error
	Update(context context.Context, comment *Comment) error
	Delete(context context.Context, commentID int64) error
}
