package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRole(t *testing.T) {
	for _, role := range []string{"user", "admin", "hr", "accountant", "employee", "applicant"} {
		assert.True(t, ValidRole(role), role)
	}
	for _, role := range []string{"", "boss", "Admin", "EMPLOYEE"} {
		assert.False(t, ValidRole(role), role)
	}
}

// The signup role is stamped with inconsistent casing: it fails the
// role validation used by create/update and never matches the
// lowercase employee filter. This mismatch is deliberate inherited
// behavior and must stay visible.
func TestSignupRoleCasingMismatch(t *testing.T) {
	assert.False(t, ValidRole(SignupRole))
	assert.NotEqual(t, RoleEmployee, SignupRole)
	assert.NotEqual(t, RoleApplicant, SignupRole)
}

func TestAccountJSONExcludesPassword(t *testing.T) {
	a := Account{
		ID:        1,
		FirstName: "Ann",
		LastName:  "Archer",
		Email:     "ann@x.com",
		Password:  "secret1",
		Role:      RoleUser,
	}

	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "last_logout")
	assert.Equal(t, "Ann", out["firstName"])
}
