package connections

import (
	"fmt"

	"foodexchange-admin/internal/marketerrors"
)

// Status is the viewer's connection state with one dealer
type Status string

const (
	StatusNone      Status = "none"
	StatusPending   Status = "pending"
	StatusConnected Status = "connected"
	StatusRequested Status = "requested"
)

// AllStatuses lists every status in a stable order
var AllStatuses = []Status{StatusNone, StatusPending, StatusConnected, StatusRequested}

// Action is a user click on a dealer card
type Action string

const (
	ActionConnect    Action = "connect"
	ActionDisconnect Action = "disconnect"
	ActionCancel     Action = "cancel"
	ActionAccept     Action = "accept"
	ActionDecline    Action = "decline"
)

type transitionKey struct {
	from   Status
	action Action
}

var transitions = map[transitionKey]Status{
	{StatusNone, ActionConnect}:         StatusPending,
	{StatusConnected, ActionDisconnect}: StatusNone,
	{StatusPending, ActionCancel}:       StatusNone,
	{StatusRequested, ActionAccept}:     StatusConnected,
	{StatusRequested, ActionDecline}:    StatusNone,
}

// Valid reports whether s is one of the four statuses
func (s Status) Valid() bool {
	switch s {
	case StatusNone, StatusPending, StatusConnected, StatusRequested:
		return true
	}
	return false
}

// Next returns the status reached by applying action to current
func Next(current Status, action Action) (Status, error) {
	next, ok := transitions[transitionKey{current, action}]
	if !ok {
		return current, fmt.Errorf("%w: %q from %q", marketerrors.ErrInvalidTransition, action, current)
	}
	return next, nil
}

// ValidActions lists the actions a dealer card offers for s
func ValidActions(s Status) []Action {
	switch s {
	case StatusNone:
		return []Action{ActionConnect}
	case StatusConnected:
		return []Action{ActionDisconnect}
	case StatusPending:
		return []Action{ActionCancel}
	case StatusRequested:
		return []Action{ActionAccept, ActionDecline}
	}
	return nil
}
