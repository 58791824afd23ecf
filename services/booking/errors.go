package booking

import (
	"errors"
	"fmt"
)

// Stable machine-readable failure codes surfaced by the booking engine.
const (
	CodeQuotaExceeded = "quotaExceeded"
	CodeSlotConflict  = "slotConflict"
	CodeNotFound      = "notFound"
	CodeInvalidInput  = "invalidInput"
	CodeForbidden     = "forbidden"
)

// Error is a booking failure with a stable code callers can branch on.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the booking error code, or "" for foreign errors.
func CodeOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
