package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type" validate:"omitempty,is-property-type"`
	Role  string `json:"role" validate:"omitempty,is-user-role"`
}

func TestValidateOK(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{Email: "a@b.co", Type: "hotel", Role: "admin"})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{Email: "nope"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
}

func TestCustomPropertyTypeRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&samplePayload{Email: "a@b.co", Type: "restaurant"}))

	err := v.Validate(&samplePayload{Email: "a@b.co", Type: "spaceship"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "type")
}

func TestCustomUserRoleRule(t *testing.T) {
	v := New()

	for _, role := range []string{"owner", "manager", "admin"} {
		assert.NoError(t, v.Validate(&samplePayload{Email: "a@b.co", Role: role}), role)
	}
	assert.Error(t, v.Validate(&samplePayload{Email: "a@b.co", Role: "superuser"}))
}
