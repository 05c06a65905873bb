// Copyright (c) 2026 YaMDB. All rights reserved.

package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/dberr"
	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/internal/platform/validate"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// Actor identifies the authenticated user performing a write operation.
type Actor struct {
	UserID int64
	Role   sec.UserRole
}

// CanModerate reports whether the actor may edit or delete content they
// do not own.
func (a Actor) CanModerate() bool {
	return a.Role.AtLeast(sec.RoleModerator)
}

// Service orchestrates business logic for reviews.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new review [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Read Operations

// List returns a page of a title's reviews, or NotFound for an unknown title.
func (service *Service) List(context context.Context, titleID int64, params pagination.Params) ([]*Review, int, error) {
	if err := service.requireTitle(context, titleID); err != nil {
		return nil, 0, err
	}
	return service.repo.ListByTitle(context, titleID, params)
}

// Get returns a single review scoped by its parent title.
func (service *Service) Get(context context.Context, titleID, reviewID int64) (*Review, error) {
	return service.repo.FindByID(context, titleID, reviewID)
}

// # Write Operations

// WriteInput holds the author-editable fields of a review.
type WriteInput struct {
	Text  string
	Score int
}

/*
Create publishes a new review for a title.

Description: Enforces the one-review-per-title rule twice: a pre-check for
a friendly error, and the unique database constraint for races that slip
past it.

Parameters:
  - context: context.Context
  - titleID: int64
  - actor: Actor
  - input: WriteInput

Returns:
  - *Review: Created entity with the author's username hydrated
  - error: NotFound (title), Conflict, Validation or storage failures
*/
func (service *Service) Create(context context.Context, titleID int64, actor Actor, input WriteInput) (*Review, error) {
	if err := service.requireTitle(context, titleID); err != nil {
		return nil, err
	}
	if err := validateWrite(input); err != nil {
		return nil, err
	}

	// Friendly pre-check; the unique constraint remains the authority.
	if _, err := service.repo.FindByAuthor(context, titleID, actor.UserID); err == nil {
		return nil, apperr.Conflict("You have already reviewed this title")
	} else if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("review_service_precheck_failed: %w", err)
	}

	review := &Review{
		TitleID:  titleID,
		AuthorID: actor.UserID,
		Text:     input.Text,
		Score:    input.Score,
	}
	if err := service.repo.Create(context, review); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("You have already reviewed this title")
		}
		return nil, fmt.Errorf("review_service_create_failed: %w", err)
	}

	service.logger.Info("review_created",
		slog.Int64("title_id", titleID),
		slog.Int64("review_id", review.ID),
		slog.Int64("author_id", actor.UserID),
	)

	// Re-read to hydrate the author's username.
	return service.repo.FindByID(context, titleID, review.ID)
}

// UpdateInput defines the mutable subset of review fields for PATCH
// semantics. Nil pointers mean "leave unchanged".
type UpdateInput struct {
	Text  *string
	Score *int
}

/*
Update applies a partial set of changes to a review.

Description: Only the author, a moderator, or an admin may edit. Anyone
else gets 403, never 404: the review exists, the actor just can't touch it.

Parameters:
  - context: context.Context
  - titleID: int64
  - reviewID: int64
  - actor: Actor
  - input: UpdateInput

Returns:
  - *Review: The updated entity
  - error: NotFound, Forbidden, Validation or storage failures
*/
func (service *Service) Update(context context.Context, titleID, reviewID int64, actor Actor, input UpdateInput) (*Review, error) {
	review, err := service.repo.FindByID(context, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if review.AuthorID != actor.UserID && !actor.CanModerate() {
		return nil, apperr.Forbidden("You may only edit your own review")
	}

	validator := &validate.Validator{}
	if input.Text != nil {
		validator.Required(FieldText, *input.Text)
	}
	if input.Score != nil {
		validator.Range(FieldScore, *input.Score, ScoreMin, ScoreMax)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Text != nil {
		review.Text = *input.Text
	}
	if input.Score != nil {
		review.Score = *input.Score
	}
	if err := service.repo.Update(context, review); err != nil {
		return nil, fmt.Errorf("review_service_update_failed: %w", err)
	}

	service.logger.Info("review_updated",
		slog.Int64("review_id", review.ID),
		slog.Int64("actor_id", actor.UserID),
	)

	return review, nil
}

// Delete removes a review. Same access rule as Update.
func (service *Service) Delete(context context.Context, titleID, reviewID int64, actor Actor) error {
	review, err := service.repo.FindByID(context, titleID, reviewID)
	if err != nil {
		return err
	}

	if review.AuthorID != actor.UserID && !actor.CanModerate() {
		return apperr.Forbidden("You may only delete your own review")
	}

	if err := service.repo.Delete(context, review.ID); err != nil {
		return fmt.Errorf("review_service_delete_failed: %w", err)
	}

	service.logger.Info("review_deleted",
		slog.Int64("review_id", review.ID),
		slog.Int64("actor_id", actor.UserID),
	)

	return nil
}

// # Internal Helpers

func (service *Service) requireTitle(context context.Context, titleID int64) error {
	exists, err := service.repo.TitleExists(context, titleID)
	if err != nil {
		return fmt.Errorf("review_service_title_check_failed: %w", err)
	}
	if !exists {
		return apperr.NotFound("Title")
	}
	return nil
}

func validateWrite(input WriteInput) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldText, input.Text).
		Range(FieldScore, input.Score, ScoreMin, ScoreMax)
	return validator.Err()
}
