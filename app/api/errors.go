package api

import (
	"errors"
	"net/http"

	"PacsApp/app/printer"
	"PacsApp/app/services"
)

// AppError pairs a client-facing message with an HTTP status code.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// toAppError maps domain and transport errors onto HTTP semantics.
// Misconfiguration and unreachable hardware are 503 (retry after
// fixing the printer); a job the spooler bounced is 502; everything
// unrecognized is a 500.
func toAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, services.ErrFarmerNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		return newAppError(http.StatusNotFound, err.Error(), err)

	case errors.Is(err, services.ErrInvalidAadhaar):
		return newAppError(http.StatusBadRequest, err.Error(), err)

	case errors.Is(err, services.ErrDuplicateAadhaar),
		errors.Is(err, services.ErrQuotaExceeded):
		return newAppError(http.StatusConflict, err.Error(), err)

	case errors.Is(err, printer.ErrDeviceUnavailable),
		errors.Is(err, printer.ErrPermissionDenied),
		errors.Is(err, printer.ErrSpoolerUnavailable):
		return newAppError(http.StatusServiceUnavailable, err.Error(), err)

	case errors.Is(err, printer.ErrWriteFailed),
		errors.Is(err, printer.ErrSpoolRejected):
		return newAppError(http.StatusBadGateway, err.Error(), err)

	default:
		return newAppError(http.StatusInternalServerError, "internal server error", err)
	}
}
