// internal/form/submit.go
//
// Launchpad – Forms subsystem: consolidated Submit helper.
//
// Context
//   Most handlers want one call that parses the POST body, validates input,
//   and returns the clean map or a validation error.  HandleSubmit provides
//   that convenience so handler code stays terse.
//
//------------------------------------------------------------------------------

package form

import (
	"errors"
	"net/http"
)

// HandleSubmit parses r, validates against formID, and returns the
// sanitized data.  On validation failure it returns a validation error
// (check with IsValidationError, unwrap with FieldErrors).  On unexpected
// system failures it returns a generic error.
func HandleSubmit(formID string, r *http.Request) (map[string]any, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	clean, errs := ValidateForm(formID, r.PostForm)
	if len(errs) > 0 {
		return nil, validationError{Fields: errs}
	}
	return clean, nil
}

// IsValidationError reports whether err came from failed ValidateForm.
func IsValidationError(err error) bool {
	var ve validationError
	return errors.As(err, &ve)
}

// FieldErrors extracts the per-field failures from a validation error.
// Returns nil for any other error.
func FieldErrors(err error) []ErrorField {
	var ve validationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
