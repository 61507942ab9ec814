package domain

import (
	"errors"
	"fmt"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageNotAuthenticated     = "user not logged in"

	ErrNotAuthenticated = errors.New("user not logged in")
	ErrRemoteFailure    = errors.New("remote store failure")
	ErrTokenNotFound    = errors.New("failed to token not found")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("token invalid")
	ErrTokenRevoked     = errors.New("token revoked")
)

// Remote wraps a backend driver error so callers can match ErrRemoteFailure
// while still seeing the cause.
func Remote(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrRemoteFailure, err)
}
