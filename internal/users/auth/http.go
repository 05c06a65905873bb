// Copyright (c) 2026 YaMDB. All rights reserved.

/*
Package auth provides the HTTP delivery layer for user identity management.

It implements the gateway for the registration lifecycle: confirmation code
requests and JWT issuance.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: No credentials in the request beyond the emailed confirmation code.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/yamdb/yamdb/internal/platform/request"
	"github.com/yamdb/yamdb/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points (Signup, Token).
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /signup : Registers an account and emails a confirmation code.
//   - POST /token  : Exchanges a confirmation code for a JWT.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/signup", handler.signup)
	router.Post("/token", handler.token)

	return router
}

// # Request Payloads

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

/*
signup handles a confirmation code request.

POST /api/v1/auth/signup

Description: Validates input, resolves identity collisions, persists the
account if new, and emails a confirmation code.

Request:
  - Body: signupRequest (Username, Email)

Responses:
  - 200: The echoed identity pair
  - 400: Validation failures
  - 409: Username or email already taken by another account
  - 429: Confirmation email recently sent
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var payload signupRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Signup(request.Context(), SignupInput{
		Username: payload.Username,
		Email:    payload.Email,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		FieldUsername: user.Username,
		FieldEmail:    user.Email,
	})
}

/*
token handles the confirmation code exchange.

POST /api/v1/auth/token

Description: Verifies the code against the account identity and returns a
signed JWT access token.

Request:
  - Body: tokenRequest (Username, ConfirmationCode)

Responses:
  - 200: {token}
  - 400: Missing fields or invalid code (a fresh code is re-sent)
  - 404: Unknown username
*/
func (handler *Handler) token(writer http.ResponseWriter, request *http.Request) {
	var payload tokenRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.IssueToken(request.Context(), TokenInput{
		Username:         payload.Username,
		ConfirmationCode: payload.ConfirmationCode,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldToken: token})
}
