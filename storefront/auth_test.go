package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginShortPasswordFails(t *testing.T) {
	auth := NewAuth(openTestStore(t))

	_, err := auth.Login("a@b.com", "12345")
	require.ErrorIs(t, err, ErrTooShort)
	assert.False(t, auth.IsAuthenticated())
}

func TestLoginDerivesNameFromEmail(t *testing.T) {
	auth := NewAuth(openTestStore(t))

	user, err := auth.Login("a@b.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "a", user.Name)
	assert.Equal(t, "a@b.com", user.Email)
	assert.True(t, auth.IsAuthenticated())
}

func TestLoginMissingEmailFails(t *testing.T) {
	auth := NewAuth(openTestStore(t))

	_, err := auth.Login("", "123456")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestLoginMalformedEmailFails(t *testing.T) {
	auth := NewAuth(openTestStore(t))

	_, err := auth.Login("not-an-email", "123456")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestSignupPersistsProvidedFields(t *testing.T) {
	auth := NewAuth(openTestStore(t))

	user, err := auth.Signup("Priya", "priya@example.com", "9876543210", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Priya", user.Name)
	assert.Equal(t, "9876543210", user.Phone)

	current, ok := auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestSignupMissingFieldFails(t *testing.T) {
	auth := NewAuth(openTestStore(t))

	_, err := auth.Signup("Priya", "priya@example.com", "", "secret1")
	assert.ErrorIs(t, err, ErrMissingField)
	assert.False(t, auth.IsAuthenticated())
}

func TestLogoutIsIdempotent(t *testing.T) {
	auth := NewAuth(openTestStore(t))

	_, err := auth.Login("a@b.com", "123456")
	require.NoError(t, err)

	auth.Logout()
	assert.False(t, auth.IsAuthenticated())

	auth.Logout()
	assert.False(t, auth.IsAuthenticated())
}

func TestCurrentUserSurvivesNewSession(t *testing.T) {
	st := openTestStore(t)

	_, err := NewAuth(st).Login("a@b.com", "123456")
	require.NoError(t, err)

	// a fresh Auth over the same store sees the persisted identity
	again := NewAuth(st)
	user, ok := again.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "a@b.com", user.Email)
}
