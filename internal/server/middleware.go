package server

import (
	"errors"
	"net/http"
	"time"

	"foodexchange-admin/internal/marketerrors"
	"foodexchange-admin/internal/session"
	"foodexchange-admin/services/admin/helpers"
	"foodexchange-admin/utils"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the per-request id in both directions
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey = "request_id"
	sessionKey   = "session"
)

// RequestIDMiddleware reuses a valid inbound request id or assigns a new one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if !utils.IsID(id) {
		id = utils.GenerateID()
	}
	c.Set(requestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	})
}

// SessionMiddleware loads the caller's session from its cookie, starting a
// fresh one when the cookie is missing, unknown or expired
func SessionMiddleware(store session.Store, cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sess session.Session
		id, err := c.Cookie(cookieName)
		if err == nil {
			sess, err = store.Get(ctx, id)
		}
		if err != nil {
			if !errors.Is(err, http.ErrNoCookie) && !errors.Is(err, session.ErrSessionNotFound) {
				utils.Error("session lookup failed", map[string]any{"error": err.Error()})
				utils.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
				return
			}
			if sess, err = store.Create(ctx, ttl); err != nil {
				utils.Error("session create failed", map[string]any{"error": err.Error()})
				utils.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sess.ID, int(ttl.Seconds()), "/", "", false, true)
		}

		c.Set(helpers.SessionIDKey, sess.ID)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// AuthGate rejects requests whose session is not logged in
func AuthGate(c *gin.Context) {
	sess, _ := c.Get(sessionKey)
	if s, ok := sess.(session.Session); ok && s.Authenticated() {
		c.Next()
		return
	}

	utils.Warn("unauthenticated request rejected", map[string]any{
		"path":       c.Request.URL.Path,
		"request_id": c.GetString(requestIDKey),
	})
	utils.AbortWithError(c, http.StatusUnauthorized, marketerrors.ErrNotAuthenticated, "authentication required")
}
