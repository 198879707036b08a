package connections

import (
	"fmt"
	"sync"

	"foodexchange-admin/internal/marketerrors"
)

// ViewState is the directory tab and page a session is looking at
type ViewState struct {
	Tab  Tab `json:"tab"`
	Page int `json:"page"`
}

// DefaultView is where every session starts
var DefaultView = ViewState{Tab: TabConnected, Page: 1}

// DirectoryStore keeps per-session connection statuses and view state
type DirectoryStore interface {
	Assign(sessionID string, dealerIDs []int, src StatusSource) map[int]Status
	Apply(sessionID string, dealerID int, from Status, action Action) (Status, bool, error)
	View(sessionID string) ViewState
	SelectTab(sessionID string, tab Tab) ViewState
	SelectPage(sessionID string, page int) (ViewState, error)
	Forget(sessionID string)
}

type sessionState struct {
	statuses map[int]Status
	view     ViewState
}

// MemoryStore is a concurrency-safe in-memory implementation of DirectoryStore
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState // key: sessionID
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*sessionState)}
}

// state returns the session's state, creating it. Caller holds the write lock.
func (s *MemoryStore) state(sessionID string) *sessionState {
	st, ok := s.sessions[sessionID]
	if !ok {
		st = &sessionState{statuses: make(map[int]Status), view: DefaultView}
		s.sessions[sessionID] = st
	}
	return st
}

// Assign gives every unseen dealer an initial status from src and returns
// the statuses of all requested dealers. Dealers seen before keep theirs.
func (s *MemoryStore) Assign(sessionID string, dealerIDs []int, src StatusSource) map[int]Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(sessionID)
	out := make(map[int]Status, len(dealerIDs))
	for _, id := range dealerIDs {
		status, ok := st.statuses[id]
		if !ok {
			status = src.Initial(id)
			if !status.Valid() {
				status = StatusNone
			}
			st.statuses[id] = status
		}
		out[id] = status
	}
	return out
}

// Apply performs one click. The click names the status it was made from;
// if the stored status has already moved on, the click is a duplicate and
// nothing changes (applied=false).
func (s *MemoryStore) Apply(sessionID string, dealerID int, from Status, action Action) (Status, bool, error) {
	next, err := Next(from, action)
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(sessionID)
	current, ok := st.statuses[dealerID]
	if !ok {
		return "", false, fmt.Errorf("apply %s to dealer %d: %w - dealer not in directory", action, dealerID, marketerrors.ErrInvalidRequest)
	}
	if current != from {
		return current, false, nil
	}
	st.statuses[dealerID] = next
	return next, true, nil
}

// View returns the session's view state
func (s *MemoryStore) View(sessionID string) ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.sessions[sessionID]; ok {
		return st.view
	}
	return DefaultView
}

// SelectTab switches tab and always resets to the first page
func (s *MemoryStore) SelectTab(sessionID string, tab Tab) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(sessionID)
	st.view = ViewState{Tab: tab, Page: 1}
	return st.view
}

// SelectPage moves to a 1-based page on the current tab
func (s *MemoryStore) SelectPage(sessionID string, page int) (ViewState, error) {
	if page < 1 {
		return ViewState{}, fmt.Errorf("select page %d: %w - page must be >= 1", page, marketerrors.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(sessionID)
	st.view.Page = page
	return st.view, nil
}

// Forget drops everything held for a session
func (s *MemoryStore) Forget(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
