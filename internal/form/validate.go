// internal/form/validate.go
//
// Launchpad – Forms subsystem: server-side validation and sanitization.
//
// Context
//   Pages embed a CSRF token and render timestamp with every form.  When the
//   browser posts user input, this file verifies the submission: CSRF,
//   timing, required fields, type constraints, regex patterns, option
//   values, and length limits.  It returns a sanitized map that business
//   logic can trust.
//
// Workflow
//   •  ValidateForm retrieves the FormDef and checks CSRF + render timestamp
//      before per-field validation.
//   •  Each field is validated and sanitized by type.  Errors are captured
//      in []ErrorField so templates can highlight exact issues.
//   •  On success a map[string]any of clean values is returned.
//   •  On failure callers wrap the []ErrorField in validationError (see
//      submit.go) and treat it as a user error, not a 500.
//
// Style
//   Error messages are translation keys; the web layer resolves them for
//   the active locale.  Full sentences, two spaces after periods, Oxford
//   commas.
//
//------------------------------------------------------------------------------

package form

import (
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Error types
// -----------------------------------------------------------------------------

// ErrorField describes a single validation failure so the template can
// render a field-level message.  Key is a translation key.
type ErrorField struct {
	Name string // field name, empty for form-level failures
	Key  string // translation key for the user-facing message
}

// validationError wraps []ErrorField and satisfies the error interface.
//
// It allows callers to distinguish user input errors from system failures
// via errors.As / IsValidationError.
type validationError struct{ Fields []ErrorField }

func (ve validationError) Error() string { return "form validation failed" }

// -----------------------------------------------------------------------------
// Public API
// -----------------------------------------------------------------------------

// ValidateForm validates posted form data (already parsed into url.Values)
// for formID.  It returns sanitized values and any field errors.  A
// non-empty error slice means UI re-render is required.
func ValidateForm(formID string, posted url.Values) (map[string]any, []ErrorField) {
	fd, ok := GetFormDef(formID)
	if !ok {
		return nil, []ErrorField{{Name: "", Key: "errorOccurred"}}
	}

	var errs []ErrorField
	clean := make(map[string]any)

	// -------------------------------------------------------------------------
	// Form-level checks: CSRF + render timestamp
	// -------------------------------------------------------------------------
	if !verifyCSRF(posted.Get("csrf_token")) {
		errs = append(errs, ErrorField{"", "formSecurityError"})
		return nil, errs
	}
	if key := checkTiming(posted.Get("render_ts"), fd.BotGate); key != "" {
		errs = append(errs, ErrorField{"", key})
		return nil, errs
	}

	// -------------------------------------------------------------------------
	// Per-field validation
	// -------------------------------------------------------------------------
	for _, f := range fd.Fields {
		raw, present := extractValue(posted, &f)

		// Required
		if f.Required && (!present || strings.TrimSpace(raw) == "") {
			errs = append(errs, ErrorField{f.Name, requiredKey(&f)})
			continue
		}
		// Empty optional – checkbox absence still yields a value.
		if !present || raw == "" {
			if f.Type == "checkbox" {
				clean[f.Name] = false
			}
			continue
		}

		val, ekey := validateAndSanitize(&f, raw)
		if ekey != "" {
			errs = append(errs, ErrorField{f.Name, ekey})
			continue
		}
		clean[f.Name] = val
	}

	return clean, errs
}

// -----------------------------------------------------------------------------
// Form-level helpers
// -----------------------------------------------------------------------------

func verifyCSRF(token string) bool {
	return token != "" && VerifyToken(token)
}

// checkTiming ensures the form was not submitted suspiciously fast or too
// late.  Returns empty string on success, a translation key on failure.
// The lower bound is a cheap bot filter for forms that opt in via
// `bot_gate`; authenticated forms skip it so password-manager autofill
// is not bounced.
func checkTiming(tsRaw string, botGate bool) string {
	if tsRaw == "" {
		return "formExpired"
	}
	ts, err := strconv.ParseInt(tsRaw, 10, 64)
	if err != nil {
		return "formExpired"
	}
	delta := time.Since(time.UnixMicro(ts))
	switch {
	case botGate && delta < 2*time.Second:
		return "formTooFast"
	case delta > 30*time.Minute:
		return "formExpired"
	default:
		return ""
	}
}

// -----------------------------------------------------------------------------
// Field-level helpers
// -----------------------------------------------------------------------------

// extractValue obtains the raw submitted value for field f.
func extractValue(v url.Values, f *FieldDef) (string, bool) {
	raw, ok := v[f.Name]
	if !ok || len(raw) == 0 {
		return "", false
	}
	// For checkbox, presence = true; value often "on".
	return raw[0], true
}

func validateAndSanitize(f *FieldDef, raw string) (any, string) {
	val := strings.TrimSpace(raw)

	switch f.Type {
	case "text":
		if key := lengthCheck(f, val); key != "" {
			return nil, key
		}
		if f.Pattern != "" && !regexMatch(f.Pattern, val) {
			return nil, invalidKey(f)
		}
		// Stored verbatim.  Output escaping belongs to html/template at
		// render time; entity-encoding here would double-escape on display
		// and compound through every edit round trip.
		return val, ""

	case "textarea":
		// Raw markup fields (the icon SVG box); the icon layer owns that
		// trust decision.
		if key := lengthCheck(f, val); key != "" {
			return nil, key
		}
		return val, ""

	case "email":
		if key := lengthCheck(f, val); key != "" {
			return nil, key
		}
		if _, err := mail.ParseAddress(val); err != nil {
			return nil, invalidKey(f)
		}
		return val, ""

	case "password":
		if key := lengthCheck(f, val); key != "" {
			return nil, key
		}
		return val, ""

	case "url":
		if key := lengthCheck(f, val); key != "" {
			return nil, key
		}
		u, err := url.Parse(val)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, invalidKey(f)
		}
		return val, ""

	case "checkbox":
		// Checked = true, unchecked not present.
		return true, ""

	case "select":
		if !optionAllowed(f.Options, val) {
			return nil, invalidKey(f)
		}
		return val, ""

	default:
		return nil, "errorOccurred" // unsupported type in definition
	}
}

// lengthCheck validates minlength / maxlength rules.
func lengthCheck(f *FieldDef, s string) string {
	n := len(s)
	if f.MinLength > 0 && n < f.MinLength {
		return "fieldTooShort"
	}
	if f.MaxLength > 0 && n > f.MaxLength {
		return "fieldTooLong"
	}
	return ""
}

func regexMatch(pattern, s string) bool {
	re, _ := regexp.Compile(pattern) // pattern pre-validated at load
	return re.MatchString(s)
}

func optionAllowed(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}

// translation-key defaults, overridable per field via `error:` in YAML
func requiredKey(f *FieldDef) string {
	if f.ErrorMsg != "" {
		return f.ErrorMsg
	}
	return "fieldRequired"
}
func invalidKey(f *FieldDef) string {
	if f.ErrorMsg != "" {
		return f.ErrorMsg
	}
	return "fieldInvalid"
}
