package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
)

// HeaderName is the request header carrying the admin password.
// Lookup through http.Header is case-insensitive.
const HeaderName = "X-Admin-Password"

var (
	// ErrPasswordMissing is returned when the request carries no admin password.
	ErrPasswordMissing = errors.New("admin password header missing")
	// ErrNotConfigured is returned when the deployment has no admin password set.
	ErrNotConfigured = errors.New("admin password is not configured")
	// ErrInvalidPassword is returned when the supplied password does not match.
	ErrInvalidPassword = errors.New("invalid admin password")
)

// Admin checks the shared admin password guarding privileged operations.
type Admin struct {
	Password string // Configured secret
}

// New creates a new Admin checker for the given secret.
func New(password string) *Admin {
	return &Admin{Password: password}
}

// GetPasswordFromRequest extracts the admin password from the X-Admin-Password header
func (a *Admin) GetPasswordFromRequest(ctx context.Context, r *http.Request) (string, error) {
	password := r.Header.Get(HeaderName)
	if password == "" {
		return "", ErrPasswordMissing
	}
	return password, nil
}

// Validate compares the supplied password with the configured one.
// The comparison is exact and case-sensitive.
func (a *Admin) Validate(ctx context.Context, password string) error {
	if a.Password == "" {
		return ErrNotConfigured
	}
	if password == "" {
		return ErrPasswordMissing
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}
