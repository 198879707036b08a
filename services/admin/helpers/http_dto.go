package helpers

// Request DTOs
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SelectTabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

type SelectPageRequest struct {
	Page int `json:"page" binding:"required"`
}

type ConnectRequest struct {
	DealerID int    `json:"dealerId" binding:"required,gt=0"`
	From     string `json:"from" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type AcceptBidRequest struct {
	DeliveryDate        string `json:"deliveryDate" binding:"required"`
	DeliveryLocation    string `json:"deliveryLocation"`
	SpecialInstructions string `json:"specialInstructions"`
}

type DeliveryDetailsRequest struct {
	TrackingNumber         string `json:"trackingNumber"`
	Location               string `json:"location"`
	CurrentPackageLocation string `json:"currentPackageLocation"`
	DeliveryCompany        string `json:"deliveryCompany"`
	Description            string `json:"description"`
	StatusID               int    `json:"statusId" binding:"gte=0"`
}

// Multipart form field names of a story upload
const (
	StoryTitleField       = "title"
	StoryDescriptionField = "description"
	StoryImageField       = "image"
)

// Multipart form field names of a shared post upload. Images repeat
// under PostImagesField.
const (
	PostTitleField       = "title"
	PostDescriptionField = "description"
	PostQuantityField    = "quantity"
	PostAddressField     = "address"
	PostCityField        = "city"
	PostLatitudeField    = "latitude"
	PostLongitudeField   = "longitude"
	PostCategoryField    = "category"
	PostImagesField      = "files"
)

// Multipart form field names of a payment update
const (
	PaymentAmountField = "amount"
	PaymentNoteField   = "note"
	PaymentTypeField   = "paymentTypeId"
	PaymentStatusField = "status"
	PaymentFileField   = "file"
)

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
}
