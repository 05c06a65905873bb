// Copyright (c) 2026 YaMDB. All rights reserved.

package title_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamdb/yamdb/internal/catalog/category"
	"github.com/yamdb/yamdb/internal/catalog/genre"
	"github.com/yamdb/yamdb/internal/catalog/title"
	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/dberr"
	"github.com/yamdb/yamdb/pkg/pagination"
	"github.com/yamdb/yamdb/pkg/pointer"
)

// # Test Doubles

// fakeRepo stores titles and their genre links in memory.
type fakeRepo struct {
	titles map[int64]*title.Title
	genres map[int64][]int64
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{titles: map[int64]*title.Title{}, genres: map[int64][]int64{}, nextID: 1}
}

func (r *fakeRepo) List(_ context.Context, _ pagination.Params, _ title.Filter) ([]*title.Title, int, error) {
	result := []*title.Title{}
	for _, t := range r.titles {
		copied := *t
		result = append(result, &copied)
	}
	return result, len(result), nil
}

func (r *fakeRepo) FindByID(_ context.Context, id int64) (*title.Title, error) {
	if t, ok := r.titles[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, t *title.Title, genreIDs []int64) error {
	t.ID = r.nextID
	r.nextID++
	copied := *t
	r.titles[t.ID] = &copied
	r.genres[t.ID] = genreIDs
	return nil
}

func (r *fakeRepo) Update(_ context.Context, t *title.Title, genreIDs []int64, replaceGenres bool) error {
	copied := *t
	r.titles[t.ID] = &copied
	if replaceGenres {
		r.genres[t.ID] = genreIDs
	}
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.titles[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.titles, id)
	return nil
}

// fakeCategories resolves a fixed slug set.
type fakeCategories map[string]int64

func (c fakeCategories) FindBySlug(_ context.Context, slug string) (*category.Category, error) {
	if id, ok := c[slug]; ok {
		return &category.Category{ID: id, Slug: slug}, nil
	}
	return nil, dberr.ErrNotFound
}

// fakeGenres resolves a fixed slug set.
type fakeGenres map[string]int64

func (g fakeGenres) FindBySlug(_ context.Context, slug string) (*genre.Genre, error) {
	if id, ok := g[slug]; ok {
		return &genre.Genre{ID: id, Slug: slug}, nil
	}
	return nil, dberr.ErrNotFound
}

func newService(repo *fakeRepo) *title.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	categories := fakeCategories{"books": 1, "movies": 2}
	genres := fakeGenres{"drama": 1, "sci-fi": 2}
	return title.NewService(repo, categories, genres, logger)
}

// # Create

/*
TestCreate_ResolvesSlugs persists a title with its category and genres
resolved from slugs.
*/
func TestCreate_ResolvesSlugs(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), title.CreateInput{
		Name:     "Dune",
		Year:     1965,
		Category: "books",
		Genres:   []string{"sci-fi", "drama", "sci-fi"},
	})

	require.NoError(t, err)
	require.NotNil(t, created.CategoryID)
	assert.Equal(t, int64(1), *created.CategoryID)
	assert.ElementsMatch(t, []int64{1, 2}, repo.genres[created.ID], "duplicate slugs are collapsed")
}

/*
TestCreate_UnknownSlug maps a missing category or genre slug to a
field-level validation error, not a 404.
*/
func TestCreate_UnknownSlug(t *testing.T) {
	service := newService(newFakeRepo())

	tests := []struct {
		name  string
		input title.CreateInput
	}{
		{"unknown_category", title.CreateInput{Name: "X", Year: 2000, Category: "podcasts", Genres: []string{"drama"}}},
		{"unknown_genre", title.CreateInput{Name: "X", Year: 2000, Category: "books", Genres: []string{"jazzpunk"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.False(t, apperr.IsNotFound(err))
		})
	}
}

/*
TestCreate_YearBound rejects years in the future and missing years.
*/
func TestCreate_YearBound(t *testing.T) {
	service := newService(newFakeRepo())

	base := title.CreateInput{Name: "X", Category: "books", Genres: []string{"drama"}}

	thisYear := base
	thisYear.Year = time.Now().Year()
	_, err := service.Create(context.Background(), thisYear)
	assert.NoError(t, err)

	future := base
	future.Year = time.Now().Year() + 1
	_, err = service.Create(context.Background(), future)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	missing := base
	missing.Year = 0
	_, err = service.Create(context.Background(), missing)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

// # Update

/*
TestUpdate_Partial changes only the provided fields and leaves genre links
alone when Genres is absent.
*/
func TestUpdate_Partial(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), title.CreateInput{
		Name: "Dune", Year: 1965, Category: "books", Genres: []string{"sci-fi"},
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, title.UpdateInput{
		Description: pointer.To("Spice opera"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Dune", updated.Name)
	assert.Equal(t, 1965, updated.Year)
	assert.Equal(t, "Spice opera", updated.Description)
	assert.Equal(t, []int64{2}, repo.genres[created.ID], "genre links untouched")
}

/*
TestUpdate_EmptyGenreList rejects an explicit empty genre list.
*/
func TestUpdate_EmptyGenreList(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), title.CreateInput{
		Name: "Dune", Year: 1965, Category: "books", Genres: []string{"sci-fi"},
	})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), created.ID, title.UpdateInput{
		Genres: pointer.To([]string{}),
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestUpdate_UnknownTitle propagates NotFound from storage.
*/
func TestUpdate_UnknownTitle(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.Update(context.Background(), 404, title.UpdateInput{
		Name: pointer.To("New name"),
	})

	assert.True(t, apperr.IsNotFound(err))
}
