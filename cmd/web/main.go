// cmd/web/main.go
//
// Launchpad – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (system-wide file → .env fallback).
//
//  2. Optional Vault client when VAULT_ADDR is set; it resolves the
//     `vault:` URIs in the configuration.
//
//  3. Load and validate conf/global.yaml (+ LAUNCHPAD_ overrides).
//
//  4. Start the daily rotating logger (tees to console in a TTY).
//
//  5. Open the configured data gateway: hosted REST client, or the
//     self-hosted MySQL store in local mode.
//
//  6. Wire the services: synchronizers, locale resolver, session
//     manager, confirmation broker, forms, and the view engine.
//
//  7. Mount the route table plus /metrics, wrap it in the enrichment
//     and security middleware, and serve until SIGINT/SIGTERM.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bimpartner/launchpad/internal/config"
	"github.com/bimpartner/launchpad/internal/confirm"
	"github.com/bimpartner/launchpad/internal/database"
	"github.com/bimpartner/launchpad/internal/form"
	"github.com/bimpartner/launchpad/internal/gateway"
	"github.com/bimpartner/launchpad/internal/gateway/rest"
	"github.com/bimpartner/launchpad/internal/gateway/sqlstore"
	"github.com/bimpartner/launchpad/internal/i18n"
	"github.com/bimpartner/launchpad/internal/logger"
	"github.com/bimpartner/launchpad/internal/middleware"
	"github.com/bimpartner/launchpad/internal/program"
	"github.com/bimpartner/launchpad/internal/requestinfo"
	"github.com/bimpartner/launchpad/internal/server"
	"github.com/bimpartner/launchpad/internal/session"
	"github.com/bimpartner/launchpad/internal/subscriber"
	"github.com/bimpartner/launchpad/internal/vault"
	"github.com/bimpartner/launchpad/internal/view"
	"github.com/bimpartner/launchpad/internal/web"
)

const serverEnvPath = "/usr/local/etc/launchpad/global.env"

// loadEnv prefers the system-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	ctx := context.Background()

	//
	// ── 1.  Secrets + configuration ─────────────────────────────────────
	//
	var resolve config.SecretResolver
	if os.Getenv("VAULT_ADDR") != "" {
		vc, err := vault.New(ctx, log.Printf)
		if err != nil {
			log.Fatalf("vault client: %v", err)
		}
		resolve = vc.Resolve
	}

	cfg, err := config.Load(ctx, resolve)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	//
	// ── 2.  Logger ──────────────────────────────────────────────────────
	//
	if _, err := logger.New(cfg.Paths.Root, runningInTTY()); err != nil {
		log.Fatalf("start logger: %v", err)
	}
	sugar := zap.S()

	if err := requestinfo.InitGeo(cfg.Geo.CityDB); err != nil {
		sugar.Warnw("geo lookup disabled", "err", err)
	}

	//
	// ── 3.  Data gateway ────────────────────────────────────────────────
	//
	var gw gateway.Gateway
	switch cfg.Gateway.Mode {
	case config.GatewayLocal:
		db, err := database.Open(database.BuildDSN(cfg.Database.DSN, cfg.Database.Password))
		if err != nil {
			sugar.Fatalw("connect database", "err", err)
		}
		defer db.Close()
		gw = sqlstore.New(db)
		sugar.Infow("gateway online", "mode", config.GatewayLocal)
	default:
		gw = rest.New(cfg.Gateway.BaseURL, cfg.Gateway.AnonKey)
		sugar.Infow("gateway online", "mode", config.GatewayHosted, "base_url", cfg.Gateway.BaseURL)
	}

	//
	// ── 4.  Services ────────────────────────────────────────────────────
	//
	localeStore, err := i18n.NewFileStore(cfg.Site.DataDir)
	if err != nil {
		sugar.Fatalw("locale store", "err", err)
	}
	locales := i18n.NewResolver(localeStore, "")
	if saved, _ := localeStore.Load(); saved == "" {
		// No persisted choice yet: adopt the configured site default.
		if l := i18n.Locale(cfg.Site.DefaultLocale); l.Valid() {
			locales.Set(l)
		}
	}

	programs := program.NewSynchronizer(gw)
	subscribers := subscriber.NewSynchronizer(gw)

	sessions := session.NewManager()
	defer sessions.Attach(gw)()

	if err := form.RegisterForms(filepath.Join(cfg.Paths.Root, "conf", "forms")); err != nil {
		sugar.Fatalw("register forms", "err", err)
	}

	dev := os.Getenv("LAUNCHPAD_DEV") != ""
	views := view.NewEngine(filepath.Join(cfg.Paths.Root, "templates"), dev)

	handlers := web.New(gw, programs, subscribers, sessions, confirm.NewBroker(), locales, views)

	// Warm the program mirror so the first page view renders instantly.
	if err := programs.Load(ctx); err != nil {
		sugar.Warnw("initial program load failed", "err", err)
	}

	//
	// ── 5.  HTTP stack ──────────────────────────────────────────────────
	//
	routes := handlers.Routes()
	routes.Handle("/metrics", promhttp.Handler())

	var root http.Handler = requestinfo.Enrich(routes)
	root = middleware.Security(root)
	if cfg.HTTP.ForceHTTPS {
		root = middleware.ForceHTTPS(root)
	}

	srv := server.New(cfg.HTTP.ListenAddr, root)
	sugar.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := server.Run(srv); err != nil {
		sugar.Fatalw("http server", "err", err)
	}
}
