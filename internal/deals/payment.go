package deals

import "strings"

// Messages for a rejected payment update, in check order
const (
	MsgSelectPayment     = "Please select a payment to update."
	MsgInvalidAmount     = "Please enter a valid amount."
	MsgNoteRequired      = "Please enter a note."
	MsgSelectPaymentType = "Please select a payment type."
	MsgReceiptType       = "Please upload only PDF, PNG, JPG, or JPEG files."
)

// receiptTypes maps an accepted receipt content type to the filetype the
// marketplace stores
var receiptTypes = map[string]string{
	"application/pdf": "pdf",
	"image/png":       "png",
	"image/jpeg":      "jpeg",
	"image/jpg":       "jpg",
}

// ReceiptFileType returns the stored filetype for a receipt content type
func ReceiptFileType(contentType string) (string, bool) {
	ft, ok := receiptTypes[contentType]
	return ft, ok
}

// CheckPayment returns the message of the first failed check, or ""
func CheckPayment(paymentID int, amount float64, note string, paymentTypeID int) string {
	switch {
	case paymentID <= 0:
		return MsgSelectPayment
	case amount <= 0:
		return MsgInvalidAmount
	case strings.TrimSpace(note) == "":
		return MsgNoteRequired
	case paymentTypeID <= 0:
		return MsgSelectPaymentType
	}
	return ""
}
