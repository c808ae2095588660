package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for a bad username or password.
	// The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrDuplicateUsername is returned when the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidToken is returned for missing, malformed or expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrWeakPassword is returned for passwords under the minimum length.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
)
