package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@x.com",
		"first.last@example.co.uk",
		"user+tag@sub.domain.org",
		"x_1@d0main.io",
	}
	for _, email := range valid {
		assert.True(t, validEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-domain@",
		"two@@x.com",
		"trailing-dot@x.com.",
		"spaces in@x.com",
	}
	for _, email := range invalid {
		assert.False(t, validEmail(email), email)
	}
}

func TestValidateRequest_NamesEveryMissingField(t *testing.T) {
	err := validateRequest(&signUpReq{})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "FirstName is required")
	assert.Contains(t, err.Message, "LastName is required")
	assert.Contains(t, err.Message, "Email is required")
	assert.Contains(t, err.Message, "Password is required")
	assert.Contains(t, err.Message, "ConfirmPassword is required")
}

func TestValidateRequest_SignupEmailFormat(t *testing.T) {
	err := validateRequest(&signUpReq{
		FirstName:       "Ann",
		LastName:        "Archer",
		Email:           "not-an-email",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "valid email address")
}

// Signup has no minimum password length, unlike create/update. The
// inconsistency is intentional; this pins it down.
func TestValidateRequest_SignupAcceptsShortPassword(t *testing.T) {
	err := validateRequest(&signUpReq{
		FirstName:       "Ann",
		LastName:        "Archer",
		Email:           "ann@x.com",
		Password:        "abc",
		ConfirmPassword: "abc",
	})
	assert.Nil(t, err)
}

func TestValidateRequest_LoginRequiresBothFields(t *testing.T) {
	err := validateRequest(&loginReq{Email: "ann@x.com"})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Password is required")

	assert.Nil(t, validateRequest(&loginReq{Email: "ann@x.com", Password: "x"}))
}
