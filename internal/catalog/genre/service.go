// Copyright (c) 2026 YaMDB. All rights reserved.

package genre

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/validate"
	"github.com/yamdb/yamdb/pkg/pagination"
	"github.com/yamdb/yamdb/pkg/slug"
)

// Service orchestrates business logic for genres.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new genre [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns a page of genres, optionally filtered by name substring.
func (service *Service) List(context context.Context, params pagination.Params, search string) ([]*Genre, int, error) {
	return service.repo.List(context, params, search)
}

// CreateInput holds the fields for a new genre.
// Slug is optional; when empty it is derived from the name.
type CreateInput struct {
	Name string
	Slug string
}

// Create validates and persists a new genre.
func (service *Service) Create(context context.Context, input CreateInput) (*Genre, error) {
	if input.Slug == "" {
		input.Slug = slug.From(input.Name)
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, NameMaxLength).
		Required(FieldSlug, input.Slug).
		MaxLen(FieldSlug, input.Slug, SlugMaxLength).
		Slug(FieldSlug, input.Slug)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	genre := &Genre{Name: input.Name, Slug: input.Slug}
	if err := service.repo.Create(context, genre); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflict("Genre slug is already taken")
		}
		return nil, fmt.Errorf("genre_service_create_failed: %w", err)
	}

	service.logger.Info("genre_created", slog.String("slug", genre.Slug))

	return genre, nil
}

// Delete removes a genre by slug.
func (service *Service) Delete(context context.Context, genreSlug string) error {
	if err := service.repo.Delete(context, genreSlug); err != nil {
		return err
	}

	service.logger.Info("genre_deleted", slog.String("slug", genreSlug))

	return nil
}
