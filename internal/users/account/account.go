// Copyright (c) 2026 YaMDB. All rights reserved.

/*
Package account implements user administration and self-service profiles.

It covers the admin-facing account CRUD (list, create, update, delete by
username) and the /users/me self-service endpoints.

# Architecture

The package reuses the [auth.User] entity as its aggregate root; there is a
single source of truth for what a user looks like across the identity domain.
*/
package account

import (
	"context"

	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/internal/users/auth"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// # Data Access

// Repository defines the data access contract for account administration.
type Repository interface {

	/*
		List returns a page of accounts ordered by username, optionally
		filtered by a username substring.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params
		  - search: string (empty means no filter)

		Returns:
		  - []*auth.User: The page of accounts
		  - int: Total matching rows (for pagination metadata)
		  - error: Database retrieval failures
	*/
	List(context context.Context, params pagination.Params, search string) ([]*auth.User, int, error)

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *auth.User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*auth.User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *auth.User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*auth.User, error)

	/*
		Create persists a new account created by an administrator.

		Parameters:
		  - context: context.Context
		  - user: *auth.User

		Returns:
		  - error: Conflict (duplicate identity) or persistence failures
	*/
	Create(context context.Context, user *auth.User) error

	/*
		Update persists changes to mutable account fields.

		Parameters:
		  - context: context.Context
		  - user: *auth.User

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		Delete removes the account permanently. Reviews and comments
		authored by the account are removed by the database cascade.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - error: NotFound or persistence failures
	*/
	Delete(context context.Context, username string) error
}

// # Input Types

// CreateInput holds the fields an administrator provides to create an account.
type CreateInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Bio       string
	Role      sec.UserRole
}

// UpdateInput defines the mutable subset of account fields for PATCH semantics.
// Nil pointers mean "leave unchanged".
type UpdateInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	Role      *sec.UserRole
}
