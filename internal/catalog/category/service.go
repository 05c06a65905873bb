// Copyright (c) 2026 YaMDB. All rights reserved.

package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/validate"
	"github.com/yamdb/yamdb/pkg/pagination"
	"github.com/yamdb/yamdb/pkg/slug"
)

// Service orchestrates business logic for categories.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new category [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns a page of categories, optionally filtered by name substring.
func (service *Service) List(context context.Context, params pagination.Params, search string) ([]*Category, int, error) {
	return service.repo.List(context, params, search)
}

// CreateInput holds the fields for a new category.
// Slug is optional; when empty it is derived from the name.
type CreateInput struct {
	Name string
	Slug string
}

/*
Create validates and persists a new category.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Category: Created entity
  - error: Validation, Conflict or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Category, error) {
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

	category := &Category{Name: input.Name, Slug: input.Slug}
	if err := service.repo.Create(context, category); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflict("Category slug is already taken")
		}
		return nil, fmt.Errorf("category_service_create_failed: %w", err)
	}

	service.logger.Info("category_created", slog.String("slug", category.Slug))

	return category, nil
}

// Delete removes a category by slug.
func (service *Service) Delete(context context.Context, categorySlug string) error {
	if err := service.repo.Delete(context, categorySlug); err != nil {
		return err
	}

	service.logger.Info("category_deleted", slog.String("slug", categorySlug))

	return nil
}
