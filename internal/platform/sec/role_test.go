// Copyright (c) 2026 YaMDB. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yamdb/yamdb/internal/platform/sec"
)

/*
TestUserRole_AtLeast verifies the role hierarchy admin > moderator > user.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     sec.UserRole
		target   sec.UserRole
		expected bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_moderator", sec.RoleAdmin, sec.RoleModerator, true},
		{"moderator_meets_moderator", sec.RoleModerator, sec.RoleModerator, true},
		{"moderator_below_admin", sec.RoleModerator, sec.RoleAdmin, false},
		{"user_below_moderator", sec.RoleUser, sec.RoleModerator, false},
		{"unknown_below_user", sec.UserRole("ghost"), sec.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.AtLeast(tt.target))
		})
	}
}

/*
TestUserRole_Valid rejects anything outside the known role set.
*/
func TestUserRole_Valid(t *testing.T) {
	assert.True(t, sec.RoleUser.Valid())
	assert.True(t, sec.RoleModerator.Valid())
	assert.True(t, sec.RoleAdmin.Valid())
	assert.False(t, sec.UserRole("superuser").Valid())
	assert.False(t, sec.UserRole("").Valid())
}
