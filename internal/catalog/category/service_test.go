// Copyright (c) 2026 YaMDB. All rights reserved.

package category_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamdb/yamdb/internal/catalog/category"
	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/dberr"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// fakeRepo is an in-memory category Repository keyed by slug.
type fakeRepo struct {
	categories map[string]*category.Category
	nextID     int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{categories: map[string]*category.Category{}, nextID: 1}
}

func (r *fakeRepo) List(_ context.Context, _ pagination.Params, _ string) ([]*category.Category, int, error) {
	result := []*category.Category{}
	for _, c := range r.categories {
		copied := *c
		result = append(result, &copied)
	}
	return result, len(result), nil
}

func (r *fakeRepo) FindBySlug(_ context.Context, slug string) (*category.Category, error) {
	if c, ok := r.categories[slug]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, c *category.Category) error {
	if _, ok := r.categories[c.Slug]; ok {
		return apperr.Conflict("duplicate slug")
	}
	c.ID = r.nextID
	r.nextID++
	copied := *c
	r.categories[c.Slug] = &copied
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, slug string) error {
	if _, ok := r.categories[slug]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.categories, slug)
	return nil
}

func newService(repo *fakeRepo) *category.Service {
	return category.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestCreate_DerivesSlug auto-slugs the name when no slug is given.
*/
func TestCreate_DerivesSlug(t *testing.T) {
	service := newService(newFakeRepo())

	created, err := service.Create(context.Background(), category.CreateInput{
		Name: "Science Fiction",
	})

	require.NoError(t, err)
	assert.Equal(t, "science-fiction", created.Slug)
}

/*
TestCreate_BadSlug rejects explicit slugs outside the allowed format.
*/
func TestCreate_BadSlug(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.Create(context.Background(), category.CreateInput{
		Name: "Books",
		Slug: "bad slug!",
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestCreate_DuplicateSlug maps a storage conflict onto a slug-specific 409.
*/
func TestCreate_DuplicateSlug(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.Create(context.Background(), category.CreateInput{Name: "Books", Slug: "books"})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), category.CreateInput{Name: "More Books", Slug: "books"})
	assert.True(t, apperr.IsConflict(err))
}

/*
TestDelete_Unknown propagates NotFound for a missing slug.
*/
func TestDelete_Unknown(t *testing.T) {
	service := newService(newFakeRepo())

	err := service.Delete(context.Background(), "ghost")
	assert.True(t, apperr.IsNotFound(err))
}
