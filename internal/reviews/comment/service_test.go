// Copyright (c) 2026 YaMDB. All rights reserved.

package comment_test

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
	"github.com/yamdb/yamdb/internal/reviews/comment"
	"github.com/yamdb/yamdb/internal/reviews/review"
	"github.com/yamdb/yamdb/pkg/pagination"
	"github.com/yamdb/yamdb/pkg/pointer"
)

// # Test Doubles

// reviewRef places a known review under a title for scoping checks.
type reviewRef struct {
	titleID  int64
	reviewID int64
}

// fakeRepo is an in-memory comment Repository scoped to one known review.
type fakeRepo struct {
	ref      reviewRef
	comments map[int64]*comment.Comment
	nextID   int64
}

func newFakeRepo(ref reviewRef) *fakeRepo {
	return &fakeRepo{ref: ref, comments: map[int64]*comment.Comment{}, nextID: 1}
}

func (r *fakeRepo) ReviewExists(_ context.Context, titleID, reviewID int64) (bool, error) {
	return titleID == r.ref.titleID && reviewID == r.ref.reviewID, nil
}

func (r *fakeRepo) ListByReview(_ context.Context, _, reviewID int64, _ pagination.Params) ([]*comment.Comment, int, error) {
	result := []*comment.Comment{}
	for _, c := range r.comments {
		if c.ReviewID == reviewID {
			copied := *c
			result = append(result, &copied)
		}
	}
	return result, len(result), nil
}

func (r *fakeRepo) FindByID(_ context.Context, titleID, reviewID, commentID int64) (*comment.Comment, error) {
	c, ok := r.comments[commentID]
	if !ok || titleID != r.ref.titleID || reviewID != c.ReviewID {
		return nil, dberr.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeRepo) Create(_ context.Context, c *comment.Comment) error {
	c.ID = r.nextID
	r.nextID++
	copied := *c
	r.comments[c.ID] = &copied
	return nil
}

func (r *fakeRepo) Update(_ context.Context, c *comment.Comment) error {
	copied := *c
	r.comments[c.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, commentID int64) error {
	delete(r.comments, commentID)
	return nil
}

func newService(repo *fakeRepo) *comment.Service {
	return comment.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var (
	author    = review.Actor{UserID: 1, Role: sec.RoleUser}
	stranger  = review.Actor{UserID: 2, Role: sec.RoleUser}
	moderator = review.Actor{UserID: 3, Role: sec.RoleModerator}
)

/*
TestCreate_ScopedToReview publishes under the parent chain and 404s when
the review is addressed through the wrong title.
*/
func TestCreate_ScopedToReview(t *testing.T) {
	repo := newFakeRepo(reviewRef{titleID: 10, reviewID: 5})
	service := newService(repo)

	created, err := service.Create(context.Background(), 10, 5, author, "Agreed!")
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ReviewID)

	_, err = service.Create(context.Background(), 11, 5, author, "Wrong title")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestCreate_EmptyText rejects blank comments.
*/
func TestCreate_EmptyText(t *testing.T) {
	repo := newFakeRepo(reviewRef{titleID: 10, reviewID: 5})
	service := newService(repo)

	_, err := service.Create(context.Background(), 10, 5, author, "   ")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestUpdate_OwnershipRules lets the author and moderators edit, nobody else.
*/
func TestUpdate_OwnershipRules(t *testing.T) {
	repo := newFakeRepo(reviewRef{titleID: 10, reviewID: 5})
	service := newService(repo)

	created, err := service.Create(context.Background(), 10, 5, author, "v1")
	require.NoError(t, err)

	_, err = service.Update(context.Background(), 10, 5, created.ID, stranger, pointer.To("v2"))
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	updated, err := service.Update(context.Background(), 10, 5, created.ID, moderator, pointer.To("mod edit"))
	require.NoError(t, err)
	assert.Equal(t, "mod edit", updated.Text)
}

/*
TestUpdate_OmittedText leaves the text untouched when the patch body
carries no text field.
*/
func TestUpdate_OmittedText(t *testing.T) {
	repo := newFakeRepo(reviewRef{titleID: 10, reviewID: 5})
	service := newService(repo)

	created, err := service.Create(context.Background(), 10, 5, author, "original")
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), 10, 5, created.ID, author, nil)
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Text)
}

/*
TestDelete_ModeratorOverride allows moderators to remove foreign comments.
*/
func TestDelete_ModeratorOverride(t *testing.T) {
	repo := newFakeRepo(reviewRef{titleID: 10, reviewID: 5})
	service := newService(repo)

	created, err := service.Create(context.Background(), 10, 5, author, "v1")
	require.NoError(t, err)

	err = service.Delete(context.Background(), 10, 5, created.ID, stranger)
	require.Error(t, err)

	require.NoError(t, service.Delete(context.Background(), 10, 5, created.ID, moderator))
	assert.Empty(t, repo.comments)
}
