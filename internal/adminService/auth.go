package admin

import (
	"context"
	"fmt"
	"maps"

	"foodexchange-admin/internal/marketerrors"
	"foodexchange-admin/internal/session"
	"foodexchange-admin/utils"
)

// Session returns the current state of a session
func (s *AdminService) Session(ctx context.Context, sessionID string) (SessionView, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return SessionView{}, fmt.Errorf("service: failed to load session: %w", err)
	}
	return sessionView(sess), nil
}

// Login checks operator credentials and issues a fresh logged-in session;
// the caller's pre-login session is cleared and must not be reused. An
// already logged-in session is returned as is.
func (s *AdminService) Login(ctx context.Context, sessionID, email, password string) (SessionView, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return SessionView{}, fmt.Errorf("service: failed to load session: %w", err)
	}
	if sess.Authenticated() {
		return sessionView(sess), nil
	}

	acc, err := s.auth.Authenticate(email, password)
	if err != nil {
		return SessionView{}, fmt.Errorf("service: login failed: %w", err)
	}

	fresh, err := s.sessions.Create(ctx, s.opts.SessionTTL)
	if err != nil {
		return SessionView{}, fmt.Errorf("service: failed to issue session: %w", err)
	}
	values := make(map[string]string, len(sess.Values)+5)
	maps.Copy(values, sess.Values)
	maps.Copy(values, session.LoginValues(acc))
	if err := s.sessions.Set(ctx, fresh.ID, values); err != nil {
		return SessionView{}, fmt.Errorf("service: failed to store login: %w", err)
	}
	fresh.Values = values

	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		utils.Warn("pre-login session not cleared", map[string]any{"error": err.Error()})
	}
	s.directory.Forget(sessionID)

	utils.Info("operator logged in", map[string]any{"email": acc.Email, "role": acc.Role})
	return sessionView(fresh), nil
}

// Logout clears the session's keys and its directory state
func (s *AdminService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("service: %w - empty session id", marketerrors.ErrInvalidRequest)
	}
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("service: failed to clear session: %w", err)
	}
	s.directory.Forget(sessionID)
	return nil
}

func sessionView(sess session.Session) SessionView {
	if !sess.Authenticated() {
		return SessionView{ID: sess.ID, ExpiresAt: sess.ExpiresAt}
	}
	return SessionView{
		ID:        sess.ID,
		ExpiresAt: sess.ExpiresAt,
		LoggedIn:  true,
		UserID:    sess.UserID(),
		Role:      sess.Values[session.KeyUserRole],
		FirstName: sess.Values[session.KeyFirstName],
		LastName:  sess.Values[session.KeyLastName],
	}
}
