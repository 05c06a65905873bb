// Copyright (c) 2026 YaMDB. All rights reserved.

package review

import (
	"context"

	"github.com/yamdb/yamdb/pkg/pagination"
)

// Repository defines the data access contract for reviews.
//
// All lookups are scoped by the parent title ID; a review addressed through
// the wrong title behaves as if it does not exist.
type Repository interface {

	// TitleExists reports whether the parent title is present. List and
	// create operations use it to turn a bad title URL into a 404.
	TitleExists(context context.Context, titleID int64) (bool, error)

	/*
		ListByTitle returns a page of a title's reviews, newest first,
		with author usernames hydrated.

		Parameters:
		  - context: context.Context
		  - titleID: int64
		  - params: pagination.Params

		Returns:
		  - []*Review: The page of reviews
		  - int: Total reviews of the title
		  - error: Database retrieval failures
	*/
	ListByTitle(context context.Context, titleID int64, params pagination.Params) ([]*Review, int, error)

	/*
		FindByID returns the review only if it belongs to the title.

		Parameters:
		  - context: context.Context
		  - titleID: int64
		  - reviewID: int64

		Returns:
		  - *Review: Hydrated entity
		  - error: NotFound or retrieval failures
	*/
	FindByID(context context.Context, titleID, reviewID int64) (*Review, error)

	/*
		FindByAuthor returns the author's review of the title, if any.

		Parameters:
		  - context: context.Context
		  - titleID: int64
		  - authorID: int64

		Returns:
		  - *Review: Hydrated entity
		  - error: NotFound or retrieval failures
	*/
	FindByAuthor(context context.Context, titleID, authorID int64) (*Review, error)

	/*
		Create persists a new review and assigns its ID and PubDate.

		Parameters:
		  - context: context.Context
		  - review: *Review

		Returns:
		  - error: Conflict (duplicate author+title) or persistence failures
	*/
	Create(context context.Context, review *Review) error

	/*
		Update persists changes to the review's text and score.

		Parameters:
		  - context: context.Context
		  - review: *Review

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, review *Review) error

	/*
		Delete removes the review and, by cascade, its comments.

		Parameters:
		  - context: context.Context
		  - reviewID: int64

		Returns:
		  - error: NotFound or persistence failures
	*/
	Delete(context context.Context, reviewID int64) error
}
