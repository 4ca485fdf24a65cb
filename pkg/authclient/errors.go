package authclient

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthentication matches every *AuthError via errors.Is
	ErrAuthentication = errors.New("authclient.authentication_failed")

	// ErrRequestFailed indicates the request never produced an HTTP response
	ErrRequestFailed = errors.New("authclient.request_failed")

	// ErrInvalidResponse indicates a 2xx response whose body could not be decoded
	ErrInvalidResponse = errors.New("authclient.invalid_response")

	// ErrNoToken indicates no session token is held
	ErrNoToken = errors.New("authclient.no_token")
)

// Fallback messages used when the server does not supply a detail.
const (
	msgSignupFailed = "Signup failed"
	msgLoginFailed  = "Login failed"
)

// AuthError is a credential failure meant to be shown to the user as form
// feedback. Message is the server's detail when present.
type AuthError struct {
	Op         string // "signup" or "login"
	Message    string
	StatusCode int // 0 when rejected before sending
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Is(target error) bool {
	return target == ErrAuthentication
}

// String includes the operation and status for logs.
func (e *AuthError) String() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s rejected: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s failed with status %d: %s", e.Op, e.StatusCode, e.Message)
}
