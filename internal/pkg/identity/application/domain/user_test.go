package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"vendor", "chef", "admin"} {
		r, err := ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, Role(valid), r)
	}

	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestSignupRoleRejectsAdmin(t *testing.T) {
	_, err := SignupRole("admin")
	assert.ErrorIs(t, err, ErrUnknownRole)

	r, err := SignupRole("chef")
	require.NoError(t, err)
	assert.Equal(t, RoleChef, r)
}

func TestRequiredDocumentsPerRole(t *testing.T) {
	assert.Equal(t, []string{"insurance", "food_hygiene", "public_liability"}, RoleVendor.RequiredDocuments())
	assert.Equal(t, []string{"food_hygiene", "dbs_check"}, RoleChef.RequiredDocuments())
	assert.Empty(t, RoleAdmin.RequiredDocuments())
}

func TestSessionIsAdmin(t *testing.T) {
	assert.True(t, Session{UserID: "u", Role: RoleAdmin}.IsAdmin())
	assert.False(t, Session{UserID: "u", Role: RoleVendor}.IsAdmin())
}
