// Copyright (c) 2026 YaMDB. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/dberr"
	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/internal/users/auth"
)

// # Test Doubles

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[int64]*auth.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*auth.User{}, nextID: 1}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*auth.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *auth.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) MarkConfirmed(_ context.Context, id int64) error {
	if user, ok := r.users[id]; ok {
		user.IsConfirmed = true
		return nil
	}
	return dberr.ErrNotFound
}

// fakeCooldown lets tests deny the email send slot.
type fakeCooldown struct {
	denied bool
	calls  int
}

func (c *fakeCooldown) Acquire(_ context.Context, _ string, _ time.Duration) (bool, error) {
	c.calls++
	return !c.denied, nil
}

// fakeTokens records the role requested for the last token.
type fakeTokens struct {
	lastRole string
}

func (t *fakeTokens) GenerateAccessToken(userID int64, username, role string, _ time.Duration) (string, error) {
	t.lastRole = role
	return "signed-token", nil
}

// captureMailer records delivered codes instead of sending email.
type captureMailer struct {
	sent []string
}

func (m *captureMailer) SendConfirmationCode(_ context.Context, _, _, code string) error {
	m.sent = append(m.sent, code)
	return nil
}

type fixture struct {
	service  *auth.Service
	users    *fakeUserRepo
	cooldown *fakeCooldown
	tokens   *fakeTokens
	mailer   *captureMailer
	codes    *sec.CodeIssuer
}

func newFixture() *fixture {
	f := &fixture{
		users:    newFakeUserRepo(),
		cooldown: &fakeCooldown{},
		tokens:   &fakeTokens{},
		mailer:   &captureMailer{},
		codes:    sec.NewCodeIssuer("test-secret"),
	}
	f.service = auth.NewService(f.users, f.cooldown, f.tokens, f.codes, f.mailer)
	return f
}

// # Signup

/*
TestSignup_CreatesAccount verifies a fresh identity pair creates an
unconfirmed user with the default role and emails a code.
*/
func TestSignup_CreatesAccount(t *testing.T) {
	f := newFixture()

	user, err := f.service.Signup(context.Background(), auth.SignupInput{
		Username: "reader",
		Email:    "reader@yamdb.io",
	})

	require.NoError(t, err)
	assert.Equal(t, sec.RoleUser, user.Role)
	assert.False(t, user.IsConfirmed)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, f.codes.Code(user.ID, "reader", "reader@yamdb.io"), f.mailer.sent[0])
}

/*
TestSignup_ReservedUsername rejects the username "me" with a field-level
validation error.
*/
func TestSignup_ReservedUsername(t *testing.T) {
	f := newFixture()

	_, err := f.service.Signup(context.Background(), auth.SignupInput{
		Username: "me",
		Email:    "me@yamdb.io",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Empty(t, f.users.users, "no account may be created")
}

/*
TestSignup_IdempotentResend verifies repeating the exact identity pair
re-issues the code without creating a second account.
*/
func TestSignup_IdempotentResend(t *testing.T) {
	f := newFixture()
	input := auth.SignupInput{Username: "reader", Email: "reader@yamdb.io"}

	first, err := f.service.Signup(context.Background(), input)
	require.NoError(t, err)

	second, err := f.service.Signup(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.users.users, 1)
	assert.Len(t, f.mailer.sent, 2)
}

/*
TestSignup_PartialCollision verifies any partial overlap of username or
email is a hard conflict.
*/
func TestSignup_PartialCollision(t *testing.T) {
	f := newFixture()
	_, err := f.service.Signup(context.Background(), auth.SignupInput{
		Username: "reader", Email: "reader@yamdb.io",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input auth.SignupInput
	}{
		{"username_taken", auth.SignupInput{Username: "reader", Email: "other@yamdb.io"}},
		{"email_taken", auth.SignupInput{Username: "other", Email: "reader@yamdb.io"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Signup(context.Background(), tt.input)
			assert.True(t, apperr.IsConflict(err))
		})
	}
}

/*
TestSignup_Cooldown verifies the resend path is throttled when a code was
already sent within the window.
*/
func TestSignup_Cooldown(t *testing.T) {
	f := newFixture()
	input := auth.SignupInput{Username: "reader", Email: "reader@yamdb.io"}

	_, err := f.service.Signup(context.Background(), input)
	require.NoError(t, err)

	f.cooldown.denied = true
	_, err = f.service.Signup(context.Background(), input)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "RATE_LIMITED", ae.Code)
	assert.Len(t, f.mailer.sent, 1, "no second email may go out")
}

// # Token Issuance

/*
TestIssueToken_Success exchanges a valid code for a token and confirms the
account on first use.
*/
func TestIssueToken_Success(t *testing.T) {
	f := newFixture()
	user, err := f.service.Signup(context.Background(), auth.SignupInput{
		Username: "reader", Email: "reader@yamdb.io",
	})
	require.NoError(t, err)

	token, err := f.service.IssueToken(context.Background(), auth.TokenInput{
		Username:         "reader",
		ConfirmationCode: f.codes.Code(user.ID, "reader", "reader@yamdb.io"),
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, string(sec.RoleUser), f.tokens.lastRole)
	assert.True(t, f.users.users[user.ID].IsConfirmed)
}

/*
TestIssueToken_UnknownUser maps an unknown username to NotFound, not a
validation failure.
*/
func TestIssueToken_UnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.service.IssueToken(context.Background(), auth.TokenInput{
		Username:         "ghost",
		ConfirmationCode: "whatever",
	})

	assert.True(t, apperr.IsNotFound(err))
}

/*
TestIssueToken_WrongCode rejects a bad code and re-sends a fresh one.
*/
func TestIssueToken_WrongCode(t *testing.T) {
	f := newFixture()
	_, err := f.service.Signup(context.Background(), auth.SignupInput{
		Username: "reader", Email: "reader@yamdb.io",
	})
	require.NoError(t, err)

	_, err = f.service.IssueToken(context.Background(), auth.TokenInput{
		Username:         "reader",
		ConfirmationCode: "definitely-wrong",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Len(t, f.mailer.sent, 2, "a replacement code is sent")
}

/*
TestIssueToken_SuperuserGetsAdminRole verifies the superuser flag overrides
the stored role at issuance time.
*/
func TestIssueToken_SuperuserGetsAdminRole(t *testing.T) {
	f := newFixture()
	user := &auth.User{
		Username:    "root",
		Email:       "root@yamdb.io",
		Role:        sec.RoleUser,
		IsSuperuser: true,
		IsConfirmed: true,
	}
	require.NoError(t, f.users.Create(context.Background(), user))

	_, err := f.service.IssueToken(context.Background(), auth.TokenInput{
		Username:         "root",
		ConfirmationCode: f.codes.Code(user.ID, "root", "root@yamdb.io"),
	})

	require.NoError(t, err)
	assert.Equal(t, string(sec.RoleAdmin), f.tokens.lastRole)
}
