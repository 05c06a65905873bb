// Copyright (c) 2026 YaMDB. All rights reserved.

package auth

import "time"

const (
	// AccessTokenTTL is the lifetime of an issued JWT access token.
	AccessTokenTTL = 24 * time.Hour

	// SignupCooldownTTL throttles how often a confirmation email may be
	// re-sent to the same address.
	SignupCooldownTTL = 1 * time.Minute

	// SignupCooldownSeconds mirrors SignupCooldownTTL for client-facing
	// retry hints.
	SignupCooldownSeconds = 60

	// UsernameMaxLength bounds the username column.
	UsernameMaxLength = 150

	// EmailMaxLength bounds the email column (RFC 5321 limit).
	EmailMaxLength = 254
)
