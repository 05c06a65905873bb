// Copyright (c) 2026 YaMDB. All rights reserved.

package sec

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"fmt"
	"strings"
)

// confirmationCodeLength is the number of base32 characters in a code.
// 20 characters encode 100 bits of the HMAC, short enough to paste from
// an email and long enough to make guessing infeasible.
const confirmationCodeLength = 20

// CodeIssuer derives signup confirmation codes from user identity state
// and a server-side secret.
//
// # Statelessness
//
// Codes are never stored. A code is an HMAC-SHA256 over the identity
// triple (id, username, email), so the server can recompute and compare
// it at any time. Changing any part of the identity (e.g. an admin
// renaming the account) silently invalidates all previously issued codes.
type CodeIssuer struct {
	secret []byte
}

// NewCodeIssuer creates a CodeIssuer keyed with the given server secret.
func NewCodeIssuer(secret string) *CodeIssuer {
	return &CodeIssuer{secret: []byte(secret)}
}

// Code computes the confirmation code for the given user identity.
func (issuer *CodeIssuer) Code(userID int64, username, email string) string {
	mac := hmac.New(sha256.New, issuer.secret)
	fmt.Fprintf(mac, "%d\x00%s\x00%s", userID, username, email)

	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(mac.Sum(nil))
	return encoded[:confirmationCodeLength]
}

// Check reports whether the presented code matches the expected code for
// the given user identity. Comparison is constant-time.
func (issuer *CodeIssuer) Check(userID int64, username, email, presented string) bool {
	expected := issuer.Code(userID, username, email)
	return hmac.Equal([]byte(expected), []byte(strings.TrimSpace(presented)))
}
