package deals

import (
	"strings"

	"foodexchange-admin/internal/models"
)

// Messages for a rejected shared post, in check order
const (
	MsgTitleRequired    = "Title is required."
	MsgDescRequired     = "Description is required."
	MsgQuantityPositive = "Quantity must be greater than 0."
	MsgAddressRequired  = "Location address is required."
	MsgImageRequired    = "Please select at least one image."
	MsgTooManyImages    = "You can upload maximum 10 images."
	MsgImageType        = "Please select only image files (JPEG, PNG, GIF, WebP)."
	MsgImageTooLarge    = "Image size should not exceed 5MB."
)

// Shared post upload limits
const (
	MaxPostImages           = 10
	MaxPostImageBytes int64 = 5 << 20
)

var postImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Listing is a shared post as submitted. ImageTypes and ImageSizes hold
// the sniffed content type and byte size of each attached image.
type Listing struct {
	Title       string
	Description string
	Quantity    float64
	Address     string
	ImageTypes  []string
	ImageSizes  []int64
}

// CheckListing returns the message of the first failed check, or "" when
// the listing can be posted
func CheckListing(l Listing) string {
	switch {
	case strings.TrimSpace(l.Title) == "":
		return MsgTitleRequired
	case strings.TrimSpace(l.Description) == "":
		return MsgDescRequired
	case l.Quantity <= 0:
		return MsgQuantityPositive
	case strings.TrimSpace(l.Address) == "":
		return MsgAddressRequired
	case len(l.ImageTypes) == 0:
		return MsgImageRequired
	case len(l.ImageTypes) > MaxPostImages:
		return MsgTooManyImages
	}
	for _, ct := range l.ImageTypes {
		if !postImageTypes[ct] {
			return MsgImageType
		}
	}
	for _, n := range l.ImageSizes {
		if n > MaxPostImageBytes {
			return MsgImageTooLarge
		}
	}
	return ""
}

// CategoryStatus is the marketplace category record for c; an empty
// category posts without one
func CategoryStatus(c Category) *models.CategoryStatus {
	switch c {
	case CategorySelling:
		return &models.CategoryStatus{ID: sellingCategoryID, Status: sellingLabel}
	case CategoryBuying:
		return &models.CategoryStatus{ID: buyingCategoryID, Status: buyingLabel}
	}
	return nil
}
