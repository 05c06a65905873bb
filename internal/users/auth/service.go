// Copyright (c) 2026 YaMDB. All rights reserved.

/*
Package auth implements the core identity system for YaMDB.

It handles the two-step registration flow: a signup request mails a
confirmation code, and exchanging that code for a JWT proves ownership of
the email address.

Architecture:

  - Service: Orchestrates business logic (Signup, IssueToken).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (Cooldowns).
  - Security: Leverages HMAC-derived confirmation codes and RSA-signed JWTs.

The package ensures that identity data remains consistent and secure
throughout the platform's lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/internal/platform/validate"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - username: The username of the account.
	//   - role: The effective role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID int64, username, role string, timeToLive time.Duration) (string, error)
}

// CodeProvider defines the contract for deriving and checking confirmation codes.
type CodeProvider interface {
	Code(userID int64, username, email string) string
	Check(userID int64, username, email, presented string) bool
}

// Service implements the signup and token issuance use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to code derivation or
// token issuance logic must be reviewed by the security team.
type Service struct {
	userRepository     UserRepository
	cooldownRepository CooldownRepository
	tokenProvider      TokenProvider
	codeProvider       CodeProvider
	mailer             Mailer
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	cooldownRepo CooldownRepository,
	tokenProv TokenProvider,
	codeProv CodeProvider,
	mailer Mailer,
) *Service {
	return &Service{
		userRepository:     userRepo,
		cooldownRepository: cooldownRepo,
		tokenProvider:      tokenProv,
		codeProvider:       codeProv,
		mailer:             mailer,
	}
}

// # Registration Flow

// SignupInput holds the data required to request a confirmation code.
type SignupInput struct {
	Username string
	Email    string
}

/*
Signup registers a new account (or re-requests a code for an existing one)
and emails a confirmation code.

Description: The operation is idempotent for an exact (username, email)
pair. Repeating the same pair re-issues the code so users who lost the
email can recover. Any partial collision is a hard conflict.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *User: The account the code was issued for
  - err: Validation, Conflict, RateLimited or storage errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*User, error) {

	// Validate the identity pair before touching storage.
	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, UsernameMaxLength).
		Username(FieldUsername, input.Username).
		Required(FieldEmail, input.Email).
		MaxLen(FieldEmail, input.Email, EmailMaxLength).
		Email(FieldEmail, input.Email)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Resolve collisions against the existing identity space.
	existing, err := service.userRepository.FindByUsername(context, input.Username)
	switch {
	case err == nil && existing.Email == input.Email:
		// Exact pair match: re-issue the code for the same account.
		if err := service.sendCode(context, existing); err != nil {
			return nil, err
		}
		return existing, nil

	case err == nil:
		return nil, apperr.Conflict("Username is already taken")

	case !apperr.IsNotFound(err):
		return nil, fmt.Errorf("auth_service_signup_lookup_failed: %w", err)
	}

	// Username is free; the email must be free too.
	_, err = service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("auth_service_signup_lookup_failed: %w", err)
	}

	// Construct and persist the new account with the default role.
	user := &User{
		Username:    input.Username,
		Email:       input.Email,
		Role:        sec.RoleUser,
		IsConfirmed: false,
	}
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_signup_create_failed: %w", err)
	}

	if err := service.sendCode(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Token Issuance

// TokenInput holds the credentials for a confirmation code exchange.
type TokenInput struct {
	Username         string
	ConfirmationCode string
}

/*
IssueToken exchanges a valid confirmation code for a JWT access token.

Description: On a failed code check a fresh code is re-sent (subject to the
cooldown) so users with a stale email can retry without a second signup.
The first successful exchange marks the account as confirmed.

Parameters:
  - context: context.Context
  - input: TokenInput

Returns:
  - string: Signed JWT access token
  - err: NotFound (unknown username), ValidationError (bad code) or internal failures
*/
func (service *Service) IssueToken(context context.Context, input TokenInput) (string, error) {

	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		Required(FieldConfirmationCode, input.ConfirmationCode)
	if err := validator.Err(); err != nil {
		return "", err
	}

	// Unknown username is 404, not 400: the request shape is fine,
	// the resource is missing.
	user, err := service.userRepository.FindByUsername(context, input.Username)
	if err != nil {
		if apperr.IsNotFound(err) {
			return "", apperr.NotFound("User")
		}
		return "", fmt.Errorf("auth_service_token_lookup_failed: %w", err)
	}

	// Wrong code: re-send a fresh one (best effort) and reject.
	if !service.codeProvider.Check(user.ID, user.Username, user.Email, input.ConfirmationCode) {
		_ = service.sendCode(context, user)
		return "", validate.RequiredError(FieldConfirmationCode, "Confirmation code is invalid; a new one has been sent")
	}

	// First successful exchange confirms the account.
	if !user.IsConfirmed {
		if err := service.userRepository.MarkConfirmed(context, user.ID); err != nil {
			return "", fmt.Errorf("auth_service_confirm_failed: %w", err)
		}
	}

	token, err := service.tokenProvider.GenerateAccessToken(
		user.ID, user.Username, string(user.EffectiveRole()), AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return token, nil
}

// # Internal Helpers

// sendCode derives the confirmation code and delivers it, respecting the
// per-email cooldown window.
func (service *Service) sendCode(context context.Context, user *User) error {
	allowed, err := service.cooldownRepository.Acquire(context, user.Email, SignupCooldownTTL)
	if err != nil {
		return fmt.Errorf("auth_service_cooldown_failed: %w", err)
	}
	if !allowed {
		return apperr.RateLimited(SignupCooldownSeconds)
	}

	code := service.codeProvider.Code(user.ID, user.Username, user.Email)
	if err := service.mailer.SendConfirmationCode(context, user.Email, user.Username, code); err != nil {
		return fmt.Errorf("auth_service_send_code_failed: %w", err)
	}

	return nil
}
