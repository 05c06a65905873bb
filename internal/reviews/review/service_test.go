// Copyright (c) 2026 YaMDB. All rights reserved.

package review_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/dberr"
	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/internal/reviews/review"
	"github.com/yamdb/yamdb/pkg/pagination"
	"github.com/yamdb/yamdb/pkg/pointer"
)

// # Test Doubles

// fakeRepo is an in-memory review Repository scoped to known title IDs.
type fakeRepo struct {
	titles  map[int64]bool
	reviews map[int64]*review.Review
	nextID  int64
}

func newFakeRepo(titleIDs ...int64) *fakeRepo {
	titles := map[int64]bool{}
	for _, id := range titleIDs {
		titles[id] = true
	}
	return &fakeRepo{titles: titles, reviews: map[int64]*review.Review{}, nextID: 1}
}

func (r *fakeRepo) TitleExists(_ context.Context, titleID int64) (bool, error) {
	return r.titles[titleID], nil
}

func (r *fakeRepo) ListByTitle(_ context.Context, titleID int64, _ pagination.Params) ([]*review.Review, int, error) {
	result := []*review.Review{}
	for _, rev := range r.reviews {
		if rev.TitleID == titleID {
			copied := *rev
			result = append(result, &copied)
		}
	}
	return result, len(result), nil
}

func (r *fakeRepo) FindByID(_ context.Context, titleID, reviewID int64) (*review.Review, error) {
	if rev, ok := r.reviews[reviewID]; ok && rev.TitleID == titleID {
		copied := *rev
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeRepo) FindByAuthor(_ context.Context, titleID, authorID int64) (*review.Review, error) {
	for _, rev := range r.reviews {
		if rev.TitleID == titleID && rev.AuthorID == authorID {
			copied := *rev
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, rev *review.Review) error {
	rev.ID = r.nextID
	r.nextID++
	copied := *rev
	r.reviews[rev.ID] = &copied
	return nil
}

func (r *fakeRepo) Update(_ context.Context, rev *review.Review) error {
	copied := *rev
	r.reviews[rev.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, reviewID int64) error {
	delete(r.reviews, reviewID)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	author    = review.Actor{UserID: 1, Role: sec.RoleUser}
	stranger  = review.Actor{UserID: 2, Role: sec.RoleUser}
	moderator = review.Actor{UserID: 3, Role: sec.RoleModerator}
)

// # Create

/*
TestCreate_Success publishes a review within the score bounds.
*/
func TestCreate_Success(t *testing.T) {
	repo := newFakeRepo(10)
	service := review.NewService(repo, testLogger())

	created, err := service.Create(context.Background(), 10, author, review.WriteInput{
		Text:  "Loved it",
		Score: 9,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.TitleID)
	assert.Equal(t, author.UserID, created.AuthorID)
	assert.Equal(t, 9, created.Score)
}

/*
TestCreate_UnknownTitle maps a bad title URL to NotFound before validation.
*/
func TestCreate_UnknownTitle(t *testing.T) {
	repo := newFakeRepo(10)
	service := review.NewService(repo, testLogger())

	_, err := service.Create(context.Background(), 999, author, review.WriteInput{
		Text:  "text",
		Score: 5,
	})

	assert.True(t, apperr.IsNotFound(err))
}

/*
TestCreate_ScoreBounds rejects scores outside 1..10.
*/
func TestCreate_ScoreBounds(t *testing.T) {
	repo := newFakeRepo(10)
	service := review.NewService(repo, testLogger())

	for _, score := range []int{0, 11, -3} {
		_, err := service.Create(context.Background(), 10, author, review.WriteInput{
			Text:  "text",
			Score: score,
		})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	}
}

/*
TestCreate_Duplicate enforces one review per author per title with a 409.
*/
func TestCreate_Duplicate(t *testing.T) {
	repo := newFakeRepo(10)
	service := review.NewService(repo, testLogger())

	_, err := service.Create(context.Background(), 10, author, review.WriteInput{Text: "first", Score: 7})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), 10, author, review.WriteInput{Text: "second", Score: 8})
	assert.True(t, apperr.IsConflict(err))

	// A different title is fine.
	repo.titles[11] = true
	_, err = service.Create(context.Background(), 11, author, review.WriteInput{Text: "other", Score: 8})
	assert.NoError(t, err)
}

// # Update / Delete Access

/*
TestUpdate_OwnershipRules verifies author and moderator may edit, a
stranger gets 403.
*/
func TestUpdate_OwnershipRules(t *testing.T) {
	repo := newFakeRepo(10)
	service := review.NewService(repo, testLogger())

	created, err := service.Create(context.Background(), 10, author, review.WriteInput{Text: "v1", Score: 5})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), 10, created.ID, stranger, review.UpdateInput{Text: pointer.To("v2")})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	updated, err := service.Update(context.Background(), 10, created.ID, moderator, review.UpdateInput{Text: pointer.To("mod edit")})
	require.NoError(t, err)
	assert.Equal(t, "mod edit", updated.Text)

	updated, err = service.Update(context.Background(), 10, created.ID, author, review.UpdateInput{Score: pointer.To(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Score)
}

/*
TestUpdate_PartialFields leaves omitted fields untouched: a score-only
patch keeps the text, a text-only patch keeps the score.
*/
func TestUpdate_PartialFields(t *testing.T) {
	repo := newFakeRepo(10)
	service := review.NewService(repo, testLogger())

	created, err := service.Create(context.Background(), 10, author, review.WriteInput{Text: "original", Score: 5})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), 10, created.ID, author, review.UpdateInput{Score: pointer.To(9)})
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Text)
	assert.Equal(t, 9, updated.Score)

	updated, err = service.Update(context.Background(), 10, created.ID, author, review.UpdateInput{Text: pointer.To("revised")})
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Text)
	assert.Equal(t, 9, updated.Score)
}

/*
TestUpdate_ScoreBounds still validates a provided score on patch.
*/
func TestUpdate_ScoreBounds(t *testing.T) {
	repo := newFakeRepo(10)
	service := review.NewService(repo, testLogger())

	created, err := service.Create(context.Background(), 10, author, review.WriteInput{Text: "v1", Score: 5})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), 10, created.ID, author, review.UpdateInput{Score: pointer.To(11)})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestDelete_WrongTitleScope hides the review when addressed through another
title.
*/
func TestDelete_WrongTitleScope(t *testing.T) {
	repo := newFakeRepo(10, 11)
	service := review.NewService(repo, testLogger())

	created, err := service.Create(context.Background(), 10, author, review.WriteInput{Text: "v1", Score: 5})
	require.NoError(t, err)

	err = service.Delete(context.Background(), 11, created.ID, author)
	assert.True(t, apperr.IsNotFound(err))

	require.NoError(t, service.Delete(context.Background(), 10, created.ID, author))
}

/*
TestDelete_ModeratorOverride allows a moderator to remove content they do
not own.
*/
func TestDelete_ModeratorOverride(t *testing.T) {
	repo := newFakeRepo(10)
	service := review.NewService(repo, testLogger())

	created, err := service.Create(context.Background(), 10, author, review.WriteInput{Text: "v1", Score: 5})
	require.NoError(t, err)

	err = service.Delete(context.Background(), 10, created.ID, stranger)
	require.Error(t, err)

	require.NoError(t, service.Delete(context.Background(), 10, created.ID, moderator))
	assert.Empty(t, repo.reviews)
}
