package admin

import (
	"time"

	"foodexchange-admin/internal/connections"
	"foodexchange-admin/internal/deals"
	"foodexchange-admin/internal/models"
)

// SessionView is what the gateway reveals about the operator's session.
// ID and ExpiresAt are for the cookie and never serialized.
type SessionView struct {
	ID        string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
	LoggedIn  bool      `json:"isLoggedIn"`
	UserID    int       `json:"userId,omitempty"`
	Role      string    `json:"userRole,omitempty"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
}

// DirectoryItem is one dealer card
type DirectoryItem struct {
	User        models.User          `json:"user"`
	DisplayName string               `json:"displayName"`
	Avatar      string               `json:"avatar"`
	Status      connections.Status   `json:"status"`
	Actions     []connections.Action `json:"actions"`
}

// DirectoryView is the current tab's page of dealers
type DirectoryView struct {
	Tab       connections.Tab `json:"tab"`
	Page      int             `json:"page"`
	PageCount int             `json:"pageCount"`
	Total     int             `json:"total"`
	Items     []DirectoryItem `json:"items"`
	// Counts holds the badge count of every tab, not just the current one
	Counts map[connections.Tab]int `json:"counts"`
}

// ConnectRequest is one connection-button click. From is the status the
// operator saw when clicking.
type ConnectRequest struct {
	DealerID int
	From     connections.Status
	Action   connections.Action
}

// ConnectResult reports the dealer's status after a click
type ConnectResult struct {
	DealerID int                  `json:"dealerId"`
	Status   connections.Status   `json:"status"`
	Applied  bool                 `json:"applied"`
	Actions  []connections.Action `json:"actions"`
}

// PostView is a shared post with everything derived for display
type PostView struct {
	Post              models.SharedPost   `json:"post"`
	Category          deals.Category      `json:"category"`
	ImageURL          string              `json:"imageUrl"`
	MediaURLs         []string            `json:"mediaUrls"`
	VisibleBids       []models.Bid        `json:"visibleBids"`
	Stats             deals.BidStats      `json:"stats"`
	Summary           deals.BidSummary    `json:"summary"`
	MultipleConfirmed bool                `json:"multipleConfirmed,omitempty"`
	Delivery          *deals.DeliveryView `json:"delivery,omitempty"`
}

// ProfileView is a user with their posts. A failed posts fetch is reported
// in PostsError and does not fail the view.
type ProfileView struct {
	User        models.User `json:"user"`
	DisplayName string      `json:"displayName"`
	Avatar      string      `json:"avatar"`
	Posts       []PostView  `json:"posts"`
	PostsError  string      `json:"postsError,omitempty"`
}

// MemberPatch edits community member fields; nil leaves a field alone
type MemberPatch struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	City           *string `json:"city"`
	Address        *string `json:"address"`
	ShopOrFarmName *string `json:"shopOrFarmName"`
	NIC            *string `json:"nic"`
	MobileNumber   *string `json:"mobileNumber"`
	Description    *string `json:"description"`
}

// ProfilePatch edits a user record; nil leaves a field alone
type ProfilePatch struct {
	Name            *string      `json:"name"`
	Username        *string      `json:"username"`
	City            *string      `json:"city"`
	Address         *string      `json:"address"`
	NIC             *string      `json:"nic"`
	MobileNumber    *string      `json:"mobileNumber"`
	CommunityMember *MemberPatch `json:"communityMember"`
}

// AcceptForm is the deal form filled in when accepting a bid
type AcceptForm struct {
	PostID              int
	BidID               int
	DeliveryDate        string
	DeliveryLocation    string
	SpecialInstructions string
}

// StoryForm is a new story as received from the operator
type StoryForm struct {
	Title       string
	Description string
	FileName    string
	Image       []byte
}

// StoryView is a feed entry ready for display
type StoryView struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UploadedFile is one file received from the operator
type UploadedFile struct {
	FileName string
	Data     []byte
}

// PostForm is a new shared post as received from the operator
type PostForm struct {
	UserID      int
	Title       string
	Description string
	Quantity    float64
	Address     string
	City        string
	Latitude    *float64
	Longitude   *float64
	Category    deals.Category
	Images      []UploadedFile
}

// PaymentForm edits a delivery's payment; Receipt is optional
type PaymentForm struct {
	PaymentID     int
	Amount        float64
	Note          string
	PaymentTypeID int
	Status        bool
	Receipt       *UploadedFile
}

// DealsView is the user's deal list with per-status counts
type DealsView struct {
	Deals    []models.Deal  `json:"deals"`
	ByStatus map[string]int `json:"byStatus"`
}
