// Copyright (c) 2026 YaMDB. All rights reserved.

package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/validate"
	"github.com/yamdb/yamdb/internal/reviews/review"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// Service orchestrates business logic for comments.
//
// Access rules mirror the review package: authors edit their own content,
// moderators and admins edit anything.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new comment [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns a page of a review's comments, or NotFound when the review
// does not exist under the title.
func (service *Service) List(context context.Context, titleID, reviewID int64, params pagination.Params) ([]*Comment, int, error) {
	if err := service.requireReview(context, titleID, reviewID); err != nil {
		return nil, 0, err
	}
	return service.repo.ListByReview(context, titleID, reviewID, params)
}

// Get returns a single comment scoped by its full parent chain.
func (service *Service) Get(context context.Context, titleID, reviewID, commentID int64) (*Comment, error) {
	return service.repo.FindByID(context, titleID, reviewID, commentID)
}

/*
Create publishes a new comment under a review.

Parameters:
  - context: context.Context
  - titleID: int64
  - reviewID: int64
  - actor: review.Actor
  - text: string

Returns:
  - *Comment: Created entity with the author's username hydrated
  - error: NotFound (review), Validation or storage failures
*/
func (service *Service) Create(context context.Context, titleID, reviewID int64, actor review.Actor, text string) (*Comment, error) {
	if err := service.requireReview(context, titleID, reviewID); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if err := validator.Required(FieldText, text).Err(); err != nil {
		return nil, err
	}

	comment := &Comment{
		ReviewID: reviewID,
		AuthorID: actor.UserID,
		Text:     text,
	}
	if err := service.repo.Create(context, comment); err != nil {
		return nil, fmt.Errorf("comment_service_create_failed: %w", err)
	}

	service.logger.Info("comment_created",
		slog.Int64("review_id", reviewID),
		slog.Int64("comment_id", comment.ID),
		slog.Int64("author_id", actor.UserID),
	)

	return service.repo.FindByID(context, titleID, reviewID, comment.ID)
}

// Update edits a comment's text. Author, moderator or admin only.
// A nil text means "leave unchanged" (PATCH semantics).
func (service *Service) Update(context context.Context, titleID, reviewID, commentID int64, actor review.Actor, text *string) (*Comment, error) {
	comment, err := service.repo.FindByID(context, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != actor.UserID && !actor.CanModerate() {
		return nil, apperr.Forbidden("You may only edit your own comment")
	}

	if text != nil {
		validator := &validate.Validator{}
		if err := validator.Required(FieldText, *text).Err(); err != nil {
			return nil, err
		}
		comment.Text = *text
	}

	if err := service.repo.Update(context, comment); err != nil {
		return nil, fmt.Errorf("comment_service_update_failed: %w", err)
	}

	service.logger.Info("comment_updated",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("actor_id", actor.UserID),
	)

	return comment, nil
}

// Delete removes a comment. Same access rule as Update.
func (service *Service) Delete(context context.Context, titleID, reviewID, commentID int64, actor review.Actor) error {
	comment, err := service.repo.FindByID(context, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != actor.UserID && !actor.CanModerate() {
		return apperr.Forbidden("You may only delete your own comment")
	}

	if err := service.repo.Delete(context, comment.ID); err != nil {
		return fmt.Errorf("comment_service_delete_failed: %w", err)
	}

	service.logger.Info("comment_deleted",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("actor_id", actor.UserID),
	)

	return nil
}

func (service *Service) requireReview(context context.Context, titleID, reviewID int64) error {
	exists, err := service.repo.ReviewExists(context, titleID, reviewID)
	if err != nil {
		return fmt.Errorf("comment_service_review_check_failed: %w", err)
	}
	if !exists {
		return apperr.NotFound("Review")
	}
	return nil
}
