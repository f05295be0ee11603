package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeInternalError, "db", "Database unavailable", http.StatusInternalServerError)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "Database unavailable")
}

func TestAsAppError(t *testing.T) {
	var target *AppError

	assert.True(t, As(InsufficientContentLibrary(), &target))
	assert.Equal(t, http.StatusUnprocessableEntity, target.HTTPCode)

	assert.False(t, As(errors.New("plain"), &target))
}

func TestMarshalJSONHidesInternalCause(t *testing.T) {
	appErr := Wrap(errors.New("secret dsn"), CodeInternalError, "db", "Database unavailable", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret dsn")
	assert.Contains(t, string(data), "Database unavailable")
}

func TestDomainFactoryCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		code int
	}{
		{UserNotFound(), http.StatusNotFound},
		{EmailAlreadyRegistered(), http.StatusConflict},
		{InvalidCredentials(), http.StatusUnauthorized},
		{SessionExpired(), http.StatusUnauthorized},
		{PropertyAccessDenied(), http.StatusForbidden},
		{TemplateHasNoClips(), http.StatusUnprocessableEntity},
		{InsufficientContentLibrary(), http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.HTTPCode, tc.err.Message)
	}
}
