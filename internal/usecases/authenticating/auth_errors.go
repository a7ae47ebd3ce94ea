package authenticating

import (
	"errors"
	"fmt"
)

// Sentinel errors for authentication flows
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrUserAlreadyExists  = errors.New("user already exists")

	ErrMissingRequiredData = errors.New("required data missing")
	ErrInvalidFormat       = errors.New("invalid data format")
	ErrWeakPassword        = errors.New("password too short")

	ErrStorageOperation = errors.New("storage operation failed")
)

// AuthError carries extra context about an authentication failure
type AuthError struct {
	Err     error  // Base error
	Code    string // API error code
	UserID  string // Involved user id (when applicable)
	Details string // Additional details
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError reports whether the error relates to bad credentials
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserNotFound)
}

// IsAuthorizationError reports whether the error relates to authorization
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

// NewAuthError creates a new authentication error
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError creates a new authentication error with user context
func NewUserAuthError(baseErr error, code string, userID string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
