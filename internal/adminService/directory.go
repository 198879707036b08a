package admin

import (
	"context"
	"fmt"

	"foodexchange-admin/internal/connections"
	"foodexchange-admin/internal/marketerrors"
	"foodexchange-admin/internal/media"
	"foodexchange-admin/internal/models"
	"foodexchange-admin/utils"
)

// Directory fetches all dealers and returns the session's current tab and page
func (s *AdminService) Directory(ctx context.Context, sessionID string) (DirectoryView, error) {
	if sessionID == "" {
		return DirectoryView{}, fmt.Errorf("service: %w - empty session id", marketerrors.ErrInvalidRequest)
	}

	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return DirectoryView{}, fmt.Errorf("service: failed to list dealers: %w", err)
	}

	ids := make([]int, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	statuses := s.directory.Assign(sessionID, ids, s.opts.StatusSource)

	items := make([]DirectoryItem, 0, len(users))
	for _, u := range users {
		items = append(items, directoryItem(u, statuses[u.ID]))
	}

	statusOf := func(it DirectoryItem) connections.Status { return it.Status }
	view := s.directory.View(sessionID)
	shown := connections.Filter(items, view.Tab, statusOf)
	page, err := connections.Paginate(shown, view.Page, s.opts.PageSize)
	if err != nil {
		return DirectoryView{}, fmt.Errorf("service: failed to paginate directory: %w", err)
	}

	return DirectoryView{
		Tab:       view.Tab,
		Page:      page.Page,
		PageCount: page.PageCount,
		Total:     page.Total,
		Items:     page.Items,
		Counts:    connections.Counts(items, statusOf),
	}, nil
}

// SelectTab switches the directory tab; the page always resets to 1
func (s *AdminService) SelectTab(_ context.Context, sessionID, rawTab string) (connections.ViewState, error) {
	tab, err := connections.ParseTab(rawTab)
	if err != nil {
		return connections.ViewState{}, fmt.Errorf("service: %w", err)
	}
	return s.directory.SelectTab(sessionID, tab), nil
}

// SelectPage moves to a 1-based page of the current tab
func (s *AdminService) SelectPage(_ context.Context, sessionID string, page int) (connections.ViewState, error) {
	view, err := s.directory.SelectPage(sessionID, page)
	if err != nil {
		return connections.ViewState{}, fmt.Errorf("service: failed to select page: %w", err)
	}
	return view, nil
}

// Connect applies one connection click. A click whose From no longer
// matches the stored status is a duplicate and changes nothing.
func (s *AdminService) Connect(_ context.Context, sessionID string, req ConnectRequest) (ConnectResult, error) {
	if req.DealerID <= 0 {
		return ConnectResult{}, fmt.Errorf("service: %w - invalid dealer id %d", marketerrors.ErrInvalidRequest, req.DealerID)
	}
	if !req.From.Valid() {
		return ConnectResult{}, fmt.Errorf("service: %w - unknown status %q", marketerrors.ErrInvalidRequest, req.From)
	}

	status, applied, err := s.directory.Apply(sessionID, req.DealerID, req.From, req.Action)
	if err != nil {
		return ConnectResult{}, fmt.Errorf("service: failed to apply %s on dealer %d: %w", req.Action, req.DealerID, err)
	}
	if !applied {
		utils.Info("duplicate connection click ignored", map[string]any{
			"dealer_id": req.DealerID,
			"from":      req.From,
			"action":    req.Action,
			"status":    status,
		})
	}

	return ConnectResult{
		DealerID: req.DealerID,
		Status:   status,
		Applied:  applied,
		Actions:  connections.ValidActions(status),
	}, nil
}

func directoryItem(u models.User, status connections.Status) DirectoryItem {
	name := media.DisplayName(&u)
	u.Password = ""
	return DirectoryItem{
		User:        u,
		DisplayName: name,
		Avatar:      media.AvatarURL(name),
		Status:      status,
		Actions:     connections.ValidActions(status),
	}
}
