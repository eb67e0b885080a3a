package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRejectsShortPassword(t *testing.T) {
	server := setupServer(t)

	w := doJSON(t, server, http.MethodPost, "/auth/login", map[string]any{
		"email": "a@b.com", "password": "12345",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgPasswordTooShort, decodeBody(t, w)["message"])
}

func TestLoginReturnsTokenAndDerivedName(t *testing.T) {
	server := setupServer(t)

	w := doJSON(t, server, http.MethodPost, "/auth/login", map[string]any{
		"email": "a@b.com", "password": "123456",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "a", user["name"])
	assert.Equal(t, "a@b.com", user["email"])
}

func TestSignupRequiresAllFields(t *testing.T) {
	server := setupServer(t)

	w := doJSON(t, server, http.MethodPost, "/auth/signup", map[string]any{
		"name": "Priya", "email": "priya@example.com", "password": "secret1",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgMissingSignupField, decodeBody(t, w)["message"])
}

func TestCurrentUserLifecycle(t *testing.T) {
	server := setupServer(t)

	w := doJSON(t, server, http.MethodGet, "/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, server, http.MethodPost, "/auth/signup", map[string]any{
		"name": "Priya", "email": "priya@example.com", "phone": "9876543210", "password": "secret1",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, server, http.MethodGet, "/auth/me", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, "Priya", user["name"])

	// double logout leaves the same anonymous state
	for i := 0; i < 2; i++ {
		w = doJSON(t, server, http.MethodPost, "/auth/logout", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doJSON(t, server, http.MethodGet, "/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
