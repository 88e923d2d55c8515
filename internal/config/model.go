// internal/config/model.go
//
// Typed configuration model for Launchpad.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                             – dotenv values,
//   • `conf/global.yaml`                          – primary static file,
//   • `LAUNCHPAD_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client *before* validation, so the model never stores
// Vault URIs after boot—only plain strings.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

// Gateway driver modes.
const (
	GatewayHosted = "hosted" // managed REST service
	GatewayLocal  = "local"  // self-hosted MySQL
)

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Gateway section
//

// Gateway selects and parameterizes the data-gateway driver.  BaseURL and
// AnonKey matter only in hosted mode; AnonKey is typically a `vault:` URI
// in YAML.
type Gateway struct {
	Mode    string `koanf:"mode"     validate:"required,oneof=hosted local"`
	BaseURL string `koanf:"base_url"`
	AnonKey string `koanf:"anon_key"`
}

//
// Database section
//

// Database holds the DSN for local gateway mode.
//
// The *template* (`DSN`) is kept in YAML so operators can tweak host,
// port, or flags without touching Vault.  The *secret* portion
// (`Password`) is stored in Vault and injected at runtime, keeping
// credentials out of flat files and git history.  The DSN carries one %s
// verb where the password goes.
type Database struct {
	DSN      string `koanf:"dsn"`
	Password string `koanf:"password"`
}

//
// Geo section
//

// Geo points at the optional MaxMind City database used to tag request
// logs with a country code.  Empty path disables the lookup.
type Geo struct {
	CityDB string `koanf:"city_db"`
}

//
// Site section
//

// Site holds presentation defaults.
type Site struct {
	DefaultLocale string `koanf:"default_locale" validate:"omitempty,oneof=pl en es"`
	DataDir       string `koanf:"data_dir"` // locale persistence, defaults to <root>/data
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or LAUNCHPAD_ROOT override) so later code
// can build absolute file paths.
type Paths struct {
	Root string // LAUNCHPAD_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Gateway  Gateway  `koanf:"gateway"`
	Database Database `koanf:"database"`
	Geo      Geo      `koanf:"geo"`
	Site     Site     `koanf:"site"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
