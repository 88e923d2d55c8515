// internal/gateway/error.go
//
// Gateway error taxonomy.
//
// The hosted service reports failures as an envelope of {code, message}.
// The only code the views distinguish is the unique-constraint violation on
// subscriber email; everything else is surfaced with its raw message behind
// a localized prefix.  A gateway that was never configured degrades to
// ErrNotConfigured so every read and write path can show a visible
// "unavailable" banner instead of throwing.

package gateway

import "errors"

// CodeUniqueViolation is the service's unique-constraint error code
// (Postgres 23505), raised on duplicate subscriber emails.
const CodeUniqueViolation = "23505"

// ErrNotConfigured is returned by a driver constructed without credentials.
var ErrNotConfigured = errors.New("gateway: not configured")

// Error is a failure reported by the remote service.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"` // HTTP status, when the driver has one
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

// IsConflict reports whether err is a unique-constraint violation.
func IsConflict(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Code == CodeUniqueViolation
}

// IsNotConfigured reports whether err means the gateway is absent rather
// than failing.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

// Message extracts the service-facing message from err for display behind a
// localized prefix.
func Message(err error) string {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Message
	}
	return err.Error()
}
