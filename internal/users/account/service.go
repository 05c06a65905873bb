// Copyright (c) 2026 YaMDB. All rights reserved.

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/internal/platform/validate"
	"github.com/yamdb/yamdb/internal/users/auth"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// # Service Layer

// Service orchestrates business logic for account administration and
// self-service profile management.
type Service struct {
	accountRepository Repository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(accountRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Administration

/*
List returns a page of accounts, optionally filtered by username substring.

Parameters:
  - context: context.Context
  - params: pagination.Params
  - search: string

Returns:
  - []*auth.User: The page of accounts
  - int: Total matching rows
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, params pagination.Params, search string) ([]*auth.User, int, error) {
	return service.accountRepository.List(context, params, search)
}

/*
Get retrieves a single account by username.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *auth.User: Hydrated entity
  - error: NotFound or retrieval failures
*/
func (service *Service) Get(context context.Context, username string) (*auth.User, error) {
	return service.accountRepository.FindByUsername(context, username)
}

/*
Create provisions a new account on behalf of an administrator.

Description: Admin-created accounts skip the email confirmation step; they
are confirmed immediately and can request a token right away.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *auth.User: Created entity
  - error: Validation, Conflict or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*auth.User, error) {
	if input.Role == "" {
		input.Role = sec.RoleUser
	}

	validator := &validate.Validator{}
	validator.
		Required(auth.FieldUsername, input.Username).
		MaxLen(auth.FieldUsername, input.Username, auth.UsernameMaxLength).
		Username(auth.FieldUsername, input.Username).
		Required(auth.FieldEmail, input.Email).
		MaxLen(auth.FieldEmail, input.Email, auth.EmailMaxLength).
		Email(auth.FieldEmail, input.Email).
		Custom("role", !input.Role.Valid(), "Unknown role")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user := &auth.User{
		Username:    input.Username,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Bio:         input.Bio,
		Role:        input.Role,
		IsConfirmed: true,
	}

	if err := service.accountRepository.Create(context, user); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflict("Username or email is already taken")
		}
		return nil, fmt.Errorf("account_service_create_failed: %w", err)
	}

	service.logger.Info("account_created",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

/*
Update applies a partial set of changes to an account by username.

Parameters:
  - context: context.Context
  - username: string
  - input: UpdateInput

Returns:
  - *auth.User: The updated entity
  - error: NotFound, Validation or storage failures
*/
func (service *Service) Update(context context.Context, username string, input UpdateInput) (*auth.User, error) {
	user, err := service.accountRepository.FindByUsername(context, username)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(user, input); err != nil {
		return nil, err
	}

	if err := service.accountRepository.Update(context, user); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflict("Email is already registered")
		}
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("account_updated", slog.Int64("user_id", user.ID))

	return user, nil
}

/*
Delete permanently removes an account by username.

Description: Reviews and comments authored by the account are removed by
the database cascade, and the score aggregates of affected titles adjust
automatically on the next read.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - error: NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, username string) error {
	if err := service.accountRepository.Delete(context, username); err != nil {
		return err
	}

	service.logger.Warn("account_deleted", slog.String("username", username))

	return nil
}

// # Self Service

/*
GetSelf retrieves the authenticated user's own profile.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *auth.User: The hydrated profile
  - error: Retrieval failures
*/
func (service *Service) GetSelf(context context.Context, userID int64) (*auth.User, error) {
	return service.accountRepository.FindByID(context, userID)
}

/*
UpdateSelf applies a partial update to the authenticated user's own profile.

Description: Non-admin users cannot escalate: any role change in the input
is silently dropped unless the caller is an admin.

Parameters:
  - context: context.Context
  - userID: int64
  - input: UpdateInput
  - isAdmin: bool

Returns:
  - *auth.User: The updated profile
  - error: Validation or storage failures
*/
func (service *Service) UpdateSelf(context context.Context, userID int64, input UpdateInput, isAdmin bool) (*auth.User, error) {
	if !isAdmin {
		input.Role = nil
	}

	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(user, input); err != nil {
		return nil, err
	}

	if err := service.accountRepository.Update(context, user); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflict("Email is already registered")
		}
		return nil, fmt.Errorf("account_service_update_self_failed: %w", err)
	}

	service.logger.Info("profile_updated", slog.Int64("user_id", user.ID))

	return user, nil
}

// # Internal Helpers

// applyUpdate validates and merges the delta onto the entity.
func applyUpdate(user *auth.User, input UpdateInput) error {
	validator := &validate.Validator{}

	if input.Email != nil {
		validator.
			Required(auth.FieldEmail, *input.Email).
			MaxLen(auth.FieldEmail, *input.Email, auth.EmailMaxLength).
			Email(auth.FieldEmail, *input.Email)
	}
	if input.Role != nil {
		validator.Custom("role", !input.Role.Valid(), "Unknown role")
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	return nil
}
