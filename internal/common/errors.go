// Package common defines shared constants and sentinel errors used across
// the server and client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound        = errors.New("not found")
	ErrorDuplicateHandle = errors.New("username already registered")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorMissingField       = errors.New("missing required field")
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// Token errors.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrUserNotFound = errors.New("user not found")
)
