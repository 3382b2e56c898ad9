package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserDisabled          = errors.New("user disabled")
	ErrUserNotFound          = errors.New("user not found")
	ErrInsufficientPrivilege = errors.New("insufficient privileges")
	ErrUserAlreadyExists     = errors.New("user already exists")

	ErrMissingRequiredData = errors.New("missing required data")

	ErrWeakPassword     = errors.New("password too weak")
	ErrSamePassword     = errors.New("new password must differ from the current one")
	ErrPasswordMismatch = errors.New("current password is incorrect")
)

// AuthError ties a sentinel error to the API error code it maps to, plus the
// user involved when there is one.
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(err error, code string, details string) *AuthError {
	return &AuthError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(err error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

// ErrorCode extracts the API error code from an auth error, falling back to
// the given default.
func ErrorCode(err error, fallback string) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return fallback
}
