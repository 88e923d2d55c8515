// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after the
// merged Koanf tree lands in a `Config` instance and secrets resolve.  Any
// tag mismatch or validation error aborts startup, ensuring the binary
// never runs with partial, malformed, or missing configuration.
//
// The rules in play are `required`, `hostname_port`, and the two `oneof`
// enums (gateway mode and default locale).  Cross-section rules — hosted
// mode needing a base URL, local mode needing a DSN — live in the loader's
// checkModes because they span sibling structs.
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.

package config

import "github.com/go-playground/validator/v10"

//
// validator instance (package-level singleton)
//

var v = validator.New()

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
