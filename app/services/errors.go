package services

import "errors"

// Domain errors returned by the service layer. The API layer maps
// these to HTTP status codes.
var (
	ErrFarmerNotFound   = errors.New("farmer not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidAadhaar   = errors.New("aadhaar must be exactly 12 digits")
	ErrDuplicateAadhaar = errors.New("farmer with this aadhaar already exists")
	ErrQuotaExceeded    = errors.New("daily bag quota exceeded for this farmer")
)
