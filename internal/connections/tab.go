package connections

import (
	"fmt"

	"foodexchange-admin/internal/marketerrors"
)

// Tab selects which dealers the directory shows
type Tab string

const (
	TabConnected   Tab = "connected"
	TabRequests    Tab = "requests"
	TabSuggestions Tab = "suggestions"
)

// AllTabs lists the tabs in display order
var AllTabs = []Tab{TabConnected, TabRequests, TabSuggestions}

// DefaultPageSize is the number of dealer cards per page
const DefaultPageSize = 8

// ParseTab validates a tab name
func ParseTab(raw string) (Tab, error) {
	switch t := Tab(raw); t {
	case TabConnected, TabRequests, TabSuggestions:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", marketerrors.ErrUnknownTab, raw)
}

// Shows reports whether a dealer with status s belongs on tab t
func (t Tab) Shows(s Status) bool {
	switch t {
	case TabConnected:
		return s == StatusConnected
	case TabRequests:
		return s == StatusRequested
	case TabSuggestions:
		return s == StatusNone || s == StatusPending
	}
	return false
}

// Filter keeps the items whose status belongs on tab t, in order
func Filter[T any](items []T, t Tab, statusOf func(T) Status) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if t.Shows(statusOf(it)) {
			out = append(out, it)
		}
	}
	return out
}

// Counts returns how many items each tab would show
func Counts[T any](items []T, statusOf func(T) Status) map[Tab]int {
	counts := make(map[Tab]int, len(AllTabs))
	for _, t := range AllTabs {
		counts[t] = 0
	}
	for _, it := range items {
		s := statusOf(it)
		for _, t := range AllTabs {
			if t.Shows(s) {
				counts[t]++
			}
		}
	}
	return counts
}

// Page is one page of a filtered list
type Page[T any] struct {
	Items     []T `json:"items"`
	Page      int `json:"page"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// PageCount returns ceil(n/size)
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns the 1-based page of items. A page past the end is
// empty rather than an error.
func Paginate[T any](items []T, page, size int) (Page[T], error) {
	if page < 1 {
		return Page[T]{}, fmt.Errorf("%w: page must be >= 1, got %d", marketerrors.ErrInvalidRequest, page)
	}
	if size <= 0 {
		return Page[T]{}, fmt.Errorf("%w: page size must be positive, got %d", marketerrors.ErrInvalidRequest, size)
	}

	p := Page[T]{
		Items:     []T{},
		Page:      page,
		PageCount: PageCount(len(items), size),
		Total:     len(items),
	}
	start := (page - 1) * size
	if start >= len(items) {
		return p, nil
	}
	end := min(start+size, len(items))
	p.Items = append(p.Items, items[start:end]...)
	return p, nil
}
