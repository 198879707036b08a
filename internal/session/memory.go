package session

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"foodexchange-admin/utils"
)

// MemoryStore is a concurrency-safe in-memory Store
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session), now: time.Now}
}

// Create starts a new empty session
func (m *MemoryStore) Create(_ context.Context, ttl time.Duration) (Session, error) {
	now := m.now().UTC()
	sess := Session{ID: utils.GenerateID(), Values: map[string]string{}, CreatedAt: now, ExpiresAt: now.Add(ttl)}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return copySession(sess), nil
}

// Get loads a live session
func (m *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok || !m.now().Before(sess.ExpiresAt) {
		return Session{}, fmt.Errorf("get session: %w", ErrSessionNotFound)
	}
	return copySession(sess), nil
}

// Set upserts values on a session
func (m *MemoryStore) Set(_ context.Context, id string, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return fmt.Errorf("set session values: %w", ErrSessionNotFound)
	}
	maps.Copy(sess.Values, values)
	return nil
}

// Clear removes every value of a session
func (m *MemoryStore) Clear(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[id]; ok {
		clear(sess.Values)
	}
	return nil
}

// PurgeExpired deletes sessions past their expiry
func (m *MemoryStore) PurgeExpired(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	now := m.now()
	for id, sess := range m.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// Close is a no-op
func (m *MemoryStore) Close() error { return nil }

func copySession(s Session) Session {
	s.Values = maps.Clone(s.Values)
	return s
}
