package storefront

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vastrakart/vastrakart-api/models"
	"github.com/vastrakart/vastrakart-api/store"
)

// Credential failure kinds. Every auth failure wraps exactly one of these so
// the HTTP layer can decide how to present it.
var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidFormat = errors.New("invalid format")
	ErrTooShort      = errors.New("too short")
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Auth holds the single current-user record. The credential check is a
// simulated placeholder policy: there is no backend, no password storage and
// no hashing. State persists until an explicit logout.
type Auth struct {
	store *store.Store
}

func NewAuth(st *store.Store) *Auth {
	return &Auth{store: st}
}

// Login validates the placeholder credential policy, derives a display name
// from the email local part and persists the user as the current identity.
func (a *Auth) Login(email, password string) (models.User, error) {
	if email == "" {
		return models.User{}, fmt.Errorf("%w: email", ErrMissingField)
	}
	if !emailPattern.MatchString(email) {
		return models.User{}, fmt.Errorf("%w: email", ErrInvalidFormat)
	}
	if len(password) < minPasswordLen {
		return models.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrTooShort, minPasswordLen)
	}

	user := models.User{Email: email, Name: displayName(email)}
	a.store.Write(store.KeyCurrentUser, user)
	return user, nil
}

// Signup validates that every field is present and the password meets the
// minimum length, then persists the provided fields as the current identity.
func (a *Auth) Signup(name, email, phone, password string) (models.User, error) {
	switch "" {
	case name:
		return models.User{}, fmt.Errorf("%w: name", ErrMissingField)
	case email:
		return models.User{}, fmt.Errorf("%w: email", ErrMissingField)
	case phone:
		return models.User{}, fmt.Errorf("%w: phone", ErrMissingField)
	}
	if !emailPattern.MatchString(email) {
		return models.User{}, fmt.Errorf("%w: email", ErrInvalidFormat)
	}
	if len(password) < minPasswordLen {
		return models.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrTooShort, minPasswordLen)
	}

	user := models.User{Email: email, Name: name, Phone: phone}
	a.store.Write(store.KeyCurrentUser, user)
	return user, nil
}

// Logout deletes the current-user record. Logging out while anonymous is a
// no-op.
func (a *Auth) Logout() {
	a.store.Delete(store.KeyCurrentUser)
}

// CurrentUser returns the persisted identity, if any.
func (a *Auth) CurrentUser() (models.User, bool) {
	var user models.User
	a.store.Read(store.KeyCurrentUser, &user)
	if user.Email == "" {
		return models.User{}, false
	}
	return user, true
}

func (a *Auth) IsAuthenticated() bool {
	_, ok := a.CurrentUser()
	return ok
}

func displayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
