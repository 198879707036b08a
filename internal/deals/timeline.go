package deals

import (
	"sort"
	"time"

	"foodexchange-admin/internal/models"
)

// NoDeliveryMessage is shown when a post has no delivery record
const NoDeliveryMessage = "No delivery information available"

// TimelineEntry is one rendered status change
type TimelineEntry struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
	Display   string    `json:"display"`
}

// DeliveryView is the rendered delivery block of a post. When Available
// is false only Message is set.
type DeliveryView struct {
	Available              bool            `json:"available"`
	Message                string          `json:"message,omitempty"`
	DeliveryID             int             `json:"deliveryId,omitempty"`
	TrackingNumber         string          `json:"trackingNumber,omitempty"`
	DeliveryCompany        string          `json:"deliveryCompany,omitempty"`
	CurrentPackageLocation string          `json:"currentPackageLocation,omitempty"`
	Location               string          `json:"location,omitempty"`
	Description            string          `json:"description,omitempty"`
	CurrentStatus          string          `json:"currentStatus,omitempty"`
	Payment                *models.Payment `json:"payment,omitempty"`
	Timeline               []TimelineEntry `json:"timeline,omitempty"`
}

// Timeline returns the status history newest first. The input is not
// modified; entries with equal timestamps keep their relative order.
func Timeline(d models.Delivery) []TimelineEntry {
	history := append([]models.StatusHistoryEntry(nil), d.StatusHistory...)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].ChangedAt.After(history[j].ChangedAt.Time)
	})

	out := make([]TimelineEntry, 0, len(history))
	for _, h := range history {
		out = append(out, TimelineEntry{
			Status:    h.Status.Name,
			ChangedAt: h.ChangedAt.Time,
			Display:   FormatDeliveryDate(h.ChangedAt.Time),
		})
	}
	return out
}

// CurrentStatus is the name of the latest history entry, falling back to
// the delivery's own current status
func CurrentStatus(d models.Delivery) string {
	var latest *models.StatusHistoryEntry
	for i := range d.StatusHistory {
		h := &d.StatusHistory[i]
		if latest == nil || h.ChangedAt.After(latest.ChangedAt.Time) {
			latest = h
		}
	}
	if latest != nil {
		return latest.Status.Name
	}
	if d.CurrentStatus != nil {
		return d.CurrentStatus.Name
	}
	return ""
}

// EmptyDelivery is the explicit "nothing to show" state
func EmptyDelivery() DeliveryView {
	return DeliveryView{Available: false, Message: NoDeliveryMessage}
}

// RenderDelivery builds the delivery block; nil renders the empty state
func RenderDelivery(d *models.Delivery) DeliveryView {
	if d == nil {
		return EmptyDelivery()
	}
	return DeliveryView{
		Available:              true,
		DeliveryID:             d.ID,
		TrackingNumber:         d.TrackingNumber,
		DeliveryCompany:        d.DeliveryCompany,
		CurrentPackageLocation: d.CurrentPackageLocation,
		Location:               d.Location,
		Description:            d.Description,
		CurrentStatus:          CurrentStatus(*d),
		Payment:                d.Payment,
		Timeline:               Timeline(*d),
	}
}

// FormatDeliveryDate renders a timestamp like "Jan 2, 2006, 03:04 PM"
func FormatDeliveryDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006, 03:04 PM")
}
