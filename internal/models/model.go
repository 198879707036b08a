package models

// Role is a named permission group assigned to a user
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CommunityMember is the optional shop/farm identity attached to a user
type CommunityMember struct {
	ID             int    `json:"id,omitempty"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	City           string `json:"city"`
	Address        string `json:"address"`
	ShopOrFarmName string `json:"shopOrFarmName"`
	NIC            string `json:"nic"`
	MobileNumber   string `json:"mobileNumber"`
	Description    string `json:"description"`
}

// User represents a marketplace participant
type User struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Username        string           `json:"username"`
	City            string           `json:"city"`
	Address         string           `json:"address"`
	Status          bool             `json:"status"`
	NIC             string           `json:"nic"`
	MobileNumber    int64            `json:"mobileNumber"`
	Password        string           `json:"password,omitempty"`
	Roles           []Role           `json:"roleList"`
	CommunityMember *CommunityMember `json:"communityMember,omitempty"`
}

// Story is a short user-authored update with an optional photo
type Story struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"discription"`
	Image       string    `json:"image"`
	CreatedAt   LocalTime `json:"createdateandtime"`
	Author      *User     `json:"username"`
}

// CategoryStatus labels a post as a buying or selling listing
type CategoryStatus struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// Review is a rating left against a shared post
type Review struct {
	ID      int    `json:"id"`
	Comment string `json:"comment"`
	Rate    string `json:"rate"`
}

// Bid represents an offer against a shared post
type Bid struct {
	ID               int     `json:"id"`
	Rate             float64 `json:"bitrate"`
	RequestedAmount  float64 `json:"needamount"`
	Contact          string  `json:"bitdetailscol"`
	DeliveryLocation string  `json:"deliverylocation"`
	Confirmed        bool    `json:"conformedstate"`
	Bidder           *User   `json:"user,omitempty"`
}

// SharedPost is a buy/sell listing that accepts bids
type SharedPost struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"discription"`
	Quantity    *string         `json:"quentity"`
	Latitude    string          `json:"latitude"`
	Longitude   string          `json:"longitude"`
	Image       string          `json:"image"`
	CreatedAt   LocalTime       `json:"createdateandtime"`
	Owner       *User           `json:"username"`
	Bids        []Bid           `json:"bitDetails"`
	Reviews     []Review        `json:"reviews"`
	Category    *CategoryStatus `json:"categoreyStatus"`
	Complete    bool            `json:"complete"`
	Confirmed   bool            `json:"conformed"`
}

// DeliveryStatus is a named delivery state such as "Dispatched"
type DeliveryStatus struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StatusHistoryEntry records one delivery status change
type StatusHistoryEntry struct {
	ID        int            `json:"id"`
	ChangedAt LocalTime      `json:"statusDateChange"`
	Status    DeliveryStatus `json:"deliveryStaus"`
}

// PaymentType names how a payment was made
type PaymentType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Payment is the payment record attached to a delivery
type Payment struct {
	ID          int          `json:"id"`
	Amount      float64      `json:"amount"`
	Note        *string      `json:"note"`
	Status      bool         `json:"status"`
	FileType    *string      `json:"filetype"`
	PaymentType *PaymentType `json:"paymentType"`
}

// Delivery tracks shipment of a confirmed deal
type Delivery struct {
	ID                     int                  `json:"id"`
	TrackingNumber         string               `json:"trackingNumber"`
	Location               string               `json:"location"`
	CurrentPackageLocation string               `json:"currentPackageLocation"`
	DeliveryCompany        string               `json:"deliveryCompany"`
	Description            string               `json:"description"`
	Payment                *Payment             `json:"payment"`
	CurrentStatus          *DeliveryStatus      `json:"currentStatus"`
	StatusHistory          []StatusHistoryEntry `json:"statusHistory"`
}

// MediaFileInfo describes one media file stored on a post
type MediaFileInfo struct {
	Index       int    `json:"index"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	MediaType   string `json:"mediaType"`
	FileSize    int64  `json:"fileSize"`
	URL         string `json:"url"`
}

// MediaInfo lists the media files of a post
type MediaInfo struct {
	TotalFiles int             `json:"totalFiles"`
	Files      []MediaFileInfo `json:"files"`
}

// DealRequest accepts a bid and turns it into a deal
type DealRequest struct {
	BidID               int    `json:"bidId"`
	PostID              int    `json:"postId"`
	DeliveryDate        string `json:"deliveryDate"`
	DeliveryLocation    string `json:"deliveryLocation"`
	SpecialInstructions string `json:"specialInstructions"`
}

// DeliveryDetails carries the editable fields of a delivery
type DeliveryDetails struct {
	TrackingNumber         string `json:"trackingNumber,omitempty"`
	Location               string `json:"location,omitempty"`
	CurrentPackageLocation string `json:"currentPackageLocation,omitempty"`
	DeliveryCompany        string `json:"deliveryCompany,omitempty"`
	Description            string `json:"description,omitempty"`
	StatusID               int    `json:"statusId,omitempty"`
}

// StoryUpload is a new story with its image bytes
type StoryUpload struct {
	Title       string
	Description string
	FileName    string
	ContentType string
	Image       []byte
}

// PaymentUpdate edits a delivery's payment. File is optional; FileType
// names its kind (pdf, png, jpg, jpeg).
type PaymentUpdate struct {
	PaymentID     int
	Amount        float64
	Note          string
	PaymentTypeID int
	Status        bool
	FileName      string
	FileType      string
	ContentType   string
	File          []byte
}

// PostFile is one image attached to a new shared post
type PostFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// PostUpload is a new shared post with its images
type PostUpload struct {
	Title       string
	Description string
	Quantity    float64
	UserID      int
	Address     string
	City        string
	Latitude    *float64
	Longitude   *float64
	Category    *CategoryStatus
	Files       []PostFile
}

// Deal is an accepted bid as the marketplace tracks it
type Deal struct {
	ID               int        `json:"id"`
	PostID           int        `json:"postId"`
	BidID            int        `json:"bidId"`
	BuyerID          int        `json:"buyerId"`
	SellerID         int        `json:"sellerId"`
	Status           string     `json:"status"`
	Amount           float64    `json:"amount"`
	Quantity         float64    `json:"quantity"`
	DeliveryLocation string     `json:"deliveryLocation"`
	AgreedDate       LocalTime  `json:"agreedDate"`
	CompletedDate    *LocalTime `json:"completedDate,omitempty"`
	Rating           *float64   `json:"rating,omitempty"`
	Review           *string    `json:"review,omitempty"`
	CreatedAt        LocalTime  `json:"createdAt"`
}

// BuyingCost is the total spent on buying posts shared on one date
type BuyingCost struct {
	PostSharedDate *string `json:"postSharedDate"`
	TotalCost      float64 `json:"totalCost"`
}

// SellingProfit is the total earned on selling posts shared on one date
type SellingProfit struct {
	PostSharedDate *string `json:"postSharedDate"`
	TotalProfit    float64 `json:"totalProfit"`
}
