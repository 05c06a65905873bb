// Copyright (c) 2026 YaMDB. All rights reserved.

package title

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yamdb/yamdb/internal/catalog/category"
	"github.com/yamdb/yamdb/internal/catalog/genre"
	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/validate"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// # Contracts & Types

// CategoryResolver resolves a category slug into its entity.
//
// # Why an interface?
//
// The title service needs only the lookup, not the whole category
// repository; a narrow interface keeps the packages loosely coupled.
type CategoryResolver interface {
	FindBySlug(context context.Context, slug string) (*category.Category, error)
}

// GenreResolver resolves a genre slug into its entity.
type GenreResolver interface {
	FindBySlug(context context.Context, slug string) (*genre.Genre, error)
}

// Service orchestrates business logic for the title catalog.
type Service struct {
	repo       Repository
	categories CategoryResolver
	genres     GenreResolver
	logger     *slog.Logger
}

// NewService constructs a new title [Service].
func NewService(repo Repository, categories CategoryResolver, genres GenreResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		genres:     genres,
		logger:     logger,
	}
}

// # Read Operations

// List returns a page of titles matching the filter.
func (service *Service) List(context context.Context, params pagination.Params, filter Filter) ([]*Title, int, error) {
	return service.repo.List(context, params, filter)
}

// Get returns a single hydrated title.
func (service *Service) Get(context context.Context, id int64) (*Title, error) {
	return service.repo.FindByID(context, id)
}

// # Write Operations

// CreateInput holds the fields for a new title. Category and Genres carry
// slugs; the service resolves them to IDs.
type CreateInput struct {
	Name        string
	Year        int
	Description string
	Category    string
	Genres      []string
}

/*
Create validates, resolves references, and persists a new title.

Description: Unknown category or genre slugs are validation errors, not
404s: the missing resource is part of the request body, not the URL.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Title: The created, fully hydrated entity
  - error: Validation or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Title, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, NameMaxLength).
		Custom(FieldYear, input.Year == 0, "This field is required").
		Max(FieldYear, input.Year, time.Now().Year()).
		Required(FieldCategory, input.Category).
		Custom(FieldGenre, len(input.Genres) == 0, "At least one genre is required")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	categoryID, err := service.resolveCategory(context, input.Category)
	if err != nil {
		return nil, err
	}
	genreIDs, err := service.resolveGenres(context, input.Genres)
	if err != nil {
		return nil, err
	}

	title := &Title{
		Name:        input.Name,
		Year:        input.Year,
		Description: input.Description,
		CategoryID:  &categoryID,
	}
	if err := service.repo.Create(context, title, genreIDs); err != nil {
		return nil, fmt.Errorf("title_service_create_failed: %w", err)
	}

	service.logger.Info("title_created",
		slog.Int64("title_id", title.ID),
		slog.String("name", title.Name),
	)

	// Re-read to hydrate category, genres and the (null) rating.
	return service.repo.FindByID(context, title.ID)
}

// UpdateInput defines the mutable subset of title fields for PATCH semantics.
// Nil pointers mean "leave unchanged".
type UpdateInput struct {
	Name        *string
	Year        *int
	Description *string
	Category    *string
	Genres      *[]string
}

/*
Update applies a partial set of changes to a title.

Parameters:
  - context: context.Context
  - id: int64
  - input: UpdateInput

Returns:
  - *Title: The updated, fully hydrated entity
  - error: NotFound, Validation or storage failures
*/
func (service *Service) Update(context context.Context, id int64, input UpdateInput) (*Title, error) {
	title, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		validator.
			Required(FieldName, *input.Name).
			MaxLen(FieldName, *input.Name, NameMaxLength)
	}
	if input.Year != nil {
		validator.
			Custom(FieldYear, *input.Year == 0, "This field is required").
			Max(FieldYear, *input.Year, time.Now().Year())
	}
	if input.Genres != nil {
		validator.Custom(FieldGenre, len(*input.Genres) == 0, "At least one genre is required")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Name != nil {
		title.Name = *input.Name
	}
	if input.Year != nil {
		title.Year = *input.Year
	}
	if input.Description != nil {
		title.Description = *input.Description
	}
	if input.Category != nil {
		categoryID, err := service.resolveCategory(context, *input.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &categoryID
	}

	genreIDs := []int64{}
	replaceGenres := false
	if input.Genres != nil {
		replaceGenres = true
		genreIDs, err = service.resolveGenres(context, *input.Genres)
		if err != nil {
			return nil, err
		}
	}

	if err := service.repo.Update(context, title, genreIDs, replaceGenres); err != nil {
		return nil, fmt.Errorf("title_service_update_failed: %w", err)
	}

	service.logger.Info("title_updated", slog.Int64("title_id", title.ID))

	return service.repo.FindByID(context, title.ID)
}

// Delete removes a title and, through the database cascade, its reviews
// and their comments.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("title_deleted", slog.Int64("title_id", id))

	return nil
}

// # Internal Helpers

func (service *Service) resolveCategory(context context.Context, slug string) (int64, error) {
	found, err := service.categories.FindBySlug(context, slug)
	if err != nil {
		if apperr.IsNotFound(err) {
			return 0, validate.RequiredError(FieldCategory, "Unknown category slug")
		}
		return 0, fmt.Errorf("title_service_resolve_category_failed: %w", err)
	}
	return found.ID, nil
}

func (service *Service) resolveGenres(context context.Context, slugs []string) ([]int64, error) {
	ids := make([]int64, 0, len(slugs))
	seen := make(map[int64]bool, len(slugs))

	for _, slug := range slugs {
		found, err := service.genres.FindBySlug(context, slug)
		if err != nil {
			if apperr.IsNotFound(err) {
				return nil, validate.RequiredError(FieldGenre, fmt.Sprintf("Unknown genre slug %q", slug))
			}
			return nil, fmt.Errorf("title_service_resolve_genre_failed: %w", err)
		}
		if !seen[found.ID] {
			seen[found.ID] = true
			ids = append(ids, found.ID)
		}
	}

	return ids, nil
}
