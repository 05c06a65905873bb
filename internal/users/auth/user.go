// Copyright (c) 2026 YaMDB. All rights reserved.

/*
Package auth implements the user identity and signup confirmation layer.

It defines the core domain entity (User) and the logic for the two-step
registration flow: email-delivered confirmation codes followed by JWT issuance.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no external
dependencies and encapsulates all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/yamdb/yamdb/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the YaMDB platform.
//
// There is no password: identity is proven by presenting the confirmation
// code delivered to the account's email address.
type User struct {
	ID        int64        `json:"id"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	FirstName string       `json:"first_name,omitempty"`
	LastName  string       `json:"last_name,omitempty"`
	Bio       string       `json:"bio,omitempty"`
	Role      sec.UserRole `json:"role"`

	// IsSuperuser grants admin privileges regardless of the Role column.
	// Omitted from JSON; clients only ever see the effective role.
	IsSuperuser bool `json:"-"`

	IsConfirmed bool      `json:"-"`
	CreatedAt   time.Time `json:"-"`
}

// EffectiveRole resolves the authorization level used for token issuance.
// A superuser is always an admin, even if the role column was downgraded.
func (u *User) EffectiveRole() sec.UserRole {
	if u.IsSuperuser {
		return sec.RoleAdmin
	}
	return u.Role
}

// # Field Identifiers

// Global field names for validation and identity mapping in the auth domain.
const (
	FieldUsername         = "username"
	FieldEmail            = "email"
	FieldConfirmationCode = "confirmation_code"
	FieldToken            = "token"
)
