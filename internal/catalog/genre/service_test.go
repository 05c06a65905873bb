// Copyright (c) 2026 YaMDB. All rights reserved.

package genre_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamdb/yamdb/internal/catalog/genre"
	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/dberr"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// fakeRepo is an in-memory genre Repository keyed by slug.
type fakeRepo struct {
	genres map[string]*genre.Genre
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{genres: map[string]*genre.Genre{}, nextID: 1}
}

func (r *fakeRepo) List(_ context.Context, _ pagination.Params, _ string) ([]*genre.Genre, int, error) {
	result := []*genre.Genre{}
	for _, g := range r.genres {
		copied := *g
		result = append(result, &copied)
	}
	return result, len(result), nil
}

func (r *fakeRepo) FindBySlug(_ context.Context, slug string) (*genre.Genre, error) {
	if g, ok := r.genres[slug]; ok {
		copied := *g
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, g *genre.Genre) error {
	if _, ok := r.genres[g.Slug]; ok {
		return apperr.Conflict("duplicate slug")
	}
	g.ID = r.nextID
	r.nextID++
	copied := *g
	r.genres[g.Slug] = &copied
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, slug string) error {
	if _, ok := r.genres[slug]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.genres, slug)
	return nil
}

func newService(repo *fakeRepo) *genre.Service {
	return genre.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestCreate_DerivesSlug auto-slugs the name when no slug is given.
*/
func TestCreate_DerivesSlug(t *testing.T) {
	service := newService(newFakeRepo())

	created, err := service.Create(context.Background(), genre.CreateInput{
		Name: "Space Opera",
	})

	require.NoError(t, err)
	assert.Equal(t, "space-opera", created.Slug)
}

/*
TestCreate_BadSlug rejects explicit slugs outside the allowed format.
*/
func TestCreate_BadSlug(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.Create(context.Background(), genre.CreateInput{
		Name: "Drama",
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

	_, err := service.Create(context.Background(), genre.CreateInput{Name: "Drama", Slug: "drama"})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), genre.CreateInput{Name: "More Drama", Slug: "drama"})
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
