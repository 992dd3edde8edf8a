package printer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Receipt timestamp formats: the order's original purchase time in the
// cooperative's civil time, never the wall clock at print time, so a
// reprint shows when the sale actually happened.
const (
	dateFormat = "02-01-2006"
	timeFormat = "03:04 PM"
)

// LineItem is one purchased item on a receipt.
type LineItem struct {
	Description string
	Quantity    int
	UnitRate    decimal.Decimal
	LineTotal   decimal.Decimal
}

// ReceiptData is the normalized input to a receipt render. It is built
// fresh per print or preview request and never mutated.
type ReceiptData struct {
	Organization  string
	TokenNumber   string
	FarmerName    string
	Village       string
	AadhaarMasked string
	Items         []LineItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Timestamp     time.Time
}

// GrandTotal is always recomputed from subtotal and tax so the printed
// total cannot drift from the receipt body, whatever upstream sent.
func (d ReceiptData) GrandTotal() decimal.Decimal {
	return d.Subtotal.Add(d.Tax)
}

// DateString renders the purchase date as DD-MM-YYYY.
func (d ReceiptData) DateString() string {
	return d.Timestamp.Format(dateFormat)
}

// TimeString renders the purchase time as hh:mm AM/PM.
func (d ReceiptData) TimeString() string {
	return d.Timestamp.Format(timeFormat)
}

// MaskAadhaar hides all but the last four digits of an Aadhaar number.
// Anything shorter than five characters is returned as-is.
func MaskAadhaar(aadhaar string) string {
	if len(aadhaar) <= 4 {
		return aadhaar
	}
	return strings.Repeat("X", len(aadhaar)-4) + aadhaar[len(aadhaar)-4:]
}
