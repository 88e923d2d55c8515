// internal/config/loader.go
//
// Configuration loader and hot-reloader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `.env` file — `<root>/conf/.env`.
  2. `conf/global.yaml`.
  3. Environment variables prefixed `LAUNCHPAD_`, where `__` maps to “.”
     (e.g., `LAUNCHPAD_HTTP__LISTEN_ADDR → http.listen_addr`).

After merging, the tree is unmarshalled into strongly-typed structs,
`vault:` values are resolved, the result is validated, enriched with the
runtime root path, and cached in an `atomic.Pointer` for lock-free reads.
`Reload()` simply calls `Load()` again and swaps the pointer.

Instrumentation
---------------
  • DEBUG spans — root discovery, YAML read, env overlay.
  • ERROR spans — YAML parse, env overlay, unmarshal, validation failures.
  • INFO  span  — final “config loaded” with key highlights.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed (bootstrap console).

Notes
-----
  • `rootDir()` climbs the cwd tree until it finds `conf/global.yaml`;
    this lets `go run ./cmd/web` work from any sub-directory.
  • Mode-dependent requirements (hosted needs base_url, local needs a DSN)
    live in checkModes, not struct tags, because they cross sections.
  • Oxford commas, two spaces after periods.
*/
package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var current atomic.Pointer[Config]

// SecretResolver turns a `vault:mount/path#key` URI into its plain value.
type SecretResolver func(ctx context.Context, uri string) (string, error)

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves LAUNCHPAD_ROOT or climbs directories until
// conf/global.yaml is found.  Falls back to executable heuristic for
// production layout.
func rootDir() string {
	if r := os.Getenv("LAUNCHPAD_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "global.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, env overrides, resolves secrets, validates, and
// caches Config.  resolve may be nil when no value uses the vault: scheme.
func Load(ctx context.Context, resolve SecretResolver) (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "global.yaml")
	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
		return nil, err
	}
	zap.S().Debugw("config yaml loaded", "file", yamlPath)

	// Env overrides: LAUNCHPAD_HTTP__LISTEN_ADDR → http.listen_addr
	if err := k.Load(env.Provider("LAUNCHPAD_", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	if err := resolveSecrets(ctx, &cfg, resolve); err != nil {
		zap.S().Errorw("config secret resolution failed", "err", err)
		return nil, err
	}

	cfg.Paths.Root = root
	if cfg.Site.DataDir == "" {
		cfg.Site.DataDir = filepath.Join(root, "data")
	}

	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}
	if err := checkModes(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"force_https", cfg.HTTP.ForceHTTPS,
		"gateway_mode", cfg.Gateway.Mode,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

/*──────────────────────────── secret resolution ────────────────────────────*/

// resolveSecrets rewrites every vault:-prefixed value in place.
func resolveSecrets(ctx context.Context, cfg *Config, resolve SecretResolver) error {
	targets := []*string{
		&cfg.Gateway.AnonKey,
		&cfg.Database.Password,
	}
	for _, t := range targets {
		if !strings.HasPrefix(*t, "vault:") {
			continue
		}
		if resolve == nil {
			return errors.New("config: vault: value present but no secret resolver configured")
		}
		val, err := resolve(ctx, *t)
		if err != nil {
			return err
		}
		*t = val
	}
	return nil
}

/*──────────────────────────── mode checks ──────────────────────────────────*/

// checkModes enforces the cross-section requirements struct tags cannot.
func checkModes(cfg *Config) error {
	switch cfg.Gateway.Mode {
	case GatewayHosted:
		if cfg.Gateway.BaseURL == "" || cfg.Gateway.AnonKey == "" {
			return errors.New("config: hosted gateway mode requires gateway.base_url and gateway.anon_key")
		}
	case GatewayLocal:
		if cfg.Database.DSN == "" {
			return errors.New("config: local gateway mode requires database.dsn")
		}
	}
	return nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config { return current.Load() }

func Reload(ctx context.Context, resolve SecretResolver) error {
	_, err := Load(ctx, resolve)
	return err
}
