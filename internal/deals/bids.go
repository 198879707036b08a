package deals

import (
	"foodexchange-admin/internal/models"
)

// Category is the listing direction of a post
type Category string

const (
	CategoryBuying  Category = "buying"
	CategorySelling Category = "selling"
)

// Category statuses as the marketplace stores them
const (
	sellingLabel = "Selling post"
	buyingLabel  = "Buying post"

	sellingCategoryID = 1
	buyingCategoryID  = 2
)

// VisibleBids returns the bids a post card shows: only the confirmed bids
// when there is at least one, otherwise every bid. Order is preserved and
// the result never mixes confirmed and unconfirmed bids.
func VisibleBids(bids []models.Bid) []models.Bid {
	confirmed := make([]models.Bid, 0, 1)
	for _, b := range bids {
		if b.Confirmed {
			confirmed = append(confirmed, b)
		}
	}
	if len(confirmed) > 0 {
		return confirmed
	}
	return append(make([]models.Bid, 0, len(bids)), bids...)
}

// BidStats counts bids on a post
type BidStats struct {
	Total       int  `json:"total"`
	Accepted    int  `json:"accepted"`
	HasAccepted bool `json:"hasAccepted"`
}

// Stats counts total and confirmed bids
func Stats(bids []models.Bid) BidStats {
	s := BidStats{Total: len(bids)}
	for _, b := range bids {
		if b.Confirmed {
			s.Accepted++
		}
	}
	s.HasAccepted = s.Accepted > 0
	return s
}

// HasConfirmed reports whether any bid on the post is confirmed
func HasConfirmed(bids []models.Bid) bool {
	for _, b := range bids {
		if b.Confirmed {
			return true
		}
	}
	return false
}

// BidSummary aggregates the visible bids of a post
type BidSummary struct {
	HighestRate          float64 `json:"highestRate"`
	TotalRequestedAmount float64 `json:"totalRequestedAmount"`
}

// Summary aggregates over VisibleBids(bids)
func Summary(bids []models.Bid) BidSummary {
	var s BidSummary
	for i, b := range VisibleBids(bids) {
		if i == 0 || b.Rate > s.HighestRate {
			s.HighestRate = b.Rate
		}
		s.TotalRequestedAmount += b.RequestedAmount
	}
	return s
}

// CategoryOf returns selling for "Selling post" and buying for anything
// else, including a missing category
func CategoryOf(post models.SharedPost) Category {
	if post.Category != nil && post.Category.Status == sellingLabel {
		return CategorySelling
	}
	return CategoryBuying
}

// NewDealRequest builds the accept-bid request, defaulting the delivery
// location to the one the bidder asked for
func NewDealRequest(bid models.Bid, postID int, deliveryDate, deliveryLocation, instructions string) models.DealRequest {
	if deliveryLocation == "" {
		deliveryLocation = bid.DeliveryLocation
	}
	return models.DealRequest{
		BidID:               bid.ID,
		PostID:              postID,
		DeliveryDate:        deliveryDate,
		DeliveryLocation:    deliveryLocation,
		SpecialInstructions: instructions,
	}
}

// FindBid looks a bid up by id
func FindBid(post models.SharedPost, bidID int) (models.Bid, bool) {
	for _, b := range post.Bids {
		if b.ID == bidID {
			return b, true
		}
	}
	return models.Bid{}, false
}
