// internal/form/renderer.go
//
// Launchpad – Forms subsystem: render-side helpers.
//
// Context
//   Templates lay fields out by hand, but every form shares the same hidden
//   plumbing: the CSRF token and the render timestamp the validator checks.
//   HiddenInputs builds that block once so no template hand-rolls it.
//
//------------------------------------------------------------------------------

package form

import (
	"fmt"
	"html/template"
	"time"
)

// HiddenInputs returns the hidden csrf_token and render_ts inputs for a
// form body.  Call once per rendered form; tokens are single-window, not
// single-use, so re-renders are cheap.
func HiddenInputs() (template.HTML, error) {
	tok, err := GenerateToken()
	if err != nil {
		return "", err
	}
	markup := fmt.Sprintf(
		`<input type="hidden" name="csrf_token" value="%s"><input type="hidden" name="render_ts" value="%d">`,
		tok, time.Now().UnixMicro(),
	)
	return template.HTML(markup), nil
}
