package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"foodexchange-admin/internal/marketerrors"
	"foodexchange-admin/internal/registration"
	"foodexchange-admin/internal/session"
	"foodexchange-admin/utils"

	"github.com/gin-gonic/gin"
)

// SessionIDKey is the gin context key holding the caller's session id
const SessionIDKey = "session_id"

// SessionID returns the session id the session middleware stored
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err to a response and logs it; 5xx as errors,
// everything else as warnings
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	logFields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", logFields)
		return
	}
	utils.Warn(handlerName+": request rejected", logFields)
}

// IntParam parses a non-negative integer path parameter
func IntParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w - %s must be a non-negative integer, got %q", marketerrors.ErrInvalidRequest, name, raw)
	}
	return n, nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var validationErr *registration.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}
	var credErr *session.CredentialError
	if errors.As(err, &credErr) {
		return http.StatusUnauthorized, credErr.Message
	}

	switch {
	case errors.Is(err, marketerrors.ErrNotAuthenticated),
		errors.Is(err, session.ErrSessionNotFound):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrPostNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, marketerrors.ErrDeliveryNotFound):
		return http.StatusNotFound, "no delivery for post"
	case errors.Is(err, marketerrors.ErrMediaNotFound):
		return http.StatusNotFound, "media not found"
	case errors.Is(err, marketerrors.ErrPaymentNotFound):
		return http.StatusNotFound, "payment not found"
	case errors.Is(err, marketerrors.ErrInvalidTransition):
		return http.StatusConflict, "invalid connection transition"
	case errors.Is(err, marketerrors.ErrUnknownTab):
		return http.StatusBadRequest, "unknown directory tab"
	case errors.Is(err, marketerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "validation failed"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "marketplace api timed out"
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout, "request cancelled"
	case errors.Is(err, marketerrors.ErrMalformedResponse):
		return http.StatusBadGateway, "malformed marketplace api response"
	case errors.Is(err, marketerrors.ErrUpstream):
		return http.StatusBadGateway, "marketplace api request failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// FormFloat parses an optional decimal form field; blank yields nil
func FormFloat(c *gin.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w - %s must be a number, got %q", marketerrors.ErrInvalidRequest, name, raw)
	}
	return &f, nil
}
