package session

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// Keys the gateway persists per session. They mirror what the browser
// client kept in local storage.
const (
	KeyLoggedIn  = "isLoggedIn"
	KeyUserID    = "userId"
	KeyUserRole  = "userRole"
	KeyFirstName = "FirstName"
	KeyLastName  = "LastName"
)

// ErrSessionNotFound is returned for unknown or expired sessions
var ErrSessionNotFound = errors.New("session not found")

// Session is a persisted key-value bag tied to a browser cookie
type Session struct {
	ID        string
	Values    map[string]string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Authenticated reports whether the session carries the logged-in flag
func (s Session) Authenticated() bool {
	return s.Values[KeyLoggedIn] == "true"
}

// UserID returns the stored marketplace user id, or 0
func (s Session) UserID() int {
	id, err := strconv.Atoi(s.Values[KeyUserID])
	if err != nil {
		return 0
	}
	return id
}

// Store persists sessions
type Store interface {
	Create(ctx context.Context, ttl time.Duration) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	Set(ctx context.Context, id string, values map[string]string) error
	Clear(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context) (int64, error)
	Close() error
}
