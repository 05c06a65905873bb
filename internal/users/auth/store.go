// Copyright (c) 2026 YaMDB. All rights reserved.

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account and assigns its ID.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		MarkConfirmed flips the account to isconfirmed = true after a
		successful code exchange.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: Persistence failures
	*/
	MarkConfirmed(context context.Context, id int64) error
}

// # Volatile Data Access

// CooldownRepository defines the contract for signup email throttling state.
type CooldownRepository interface {

	/*
		Acquire attempts to take the send slot for the given email address.

		Description: Returns false without error when a confirmation email
		was already sent within the TTL window.

		Parameters:
		  - context: context.Context
		  - email: string
		  - ttl: time.Duration

		Returns:
		  - bool: true if the caller may send an email now
		  - error: Connectivity failures
	*/
	Acquire(context context.Context, email string, ttl time.Duration) (bool, error)
}
