package client

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case fiber.StatusUnauthorized:
		return ErrUnauthorized
	case fiber.StatusNotFound:
		return ErrNotFound
	case fiber.StatusConflict:
		return ErrConflict
	case fiber.StatusBadRequest:
		return ErrBadRequest
	default:
		return nil
	}
}
