package marketerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrDeliveryNotFound  = errors.New("no delivery for post")
	ErrMediaNotFound     = errors.New("media not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrUpstream          = errors.New("marketplace api request failed")
	ErrMalformedResponse = errors.New("malformed marketplace api response")
)

// business logic errors
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidTransition  = errors.New("invalid connection transition")
	ErrUnknownTab         = errors.New("unknown directory tab")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("authentication required")
)

// UpstreamError keeps the HTTP status of a failed marketplace call
type UpstreamError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: HTTP error! status: %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap lets errors.Is match ErrUpstream
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}
