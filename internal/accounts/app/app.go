package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpapi "github.com/aussiebroadwan/accounts/internal/accounts/http"
	"github.com/aussiebroadwan/accounts/internal/accounts/metrics"
	"github.com/aussiebroadwan/accounts/internal/accounts/notify"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/memory"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application encapsulates the accounts service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	tokens   *jwtx.HS256
	notifier notify.Notifier
	registry *prometheus.Registry
	metrics  *metrics.Collector

	// Services
	guard             *service.Guard
	inviteService     *service.InviteService
	credentialService *service.CredentialService
	accountService    *service.AccountService
	bootstrapService  *service.BootstrapService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "accounts-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initNotifier(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("accounts service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down accounts service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("accounts service stopped")
	return nil
}

// OpenStore opens the configured driver and applies migrations.
func OpenStore(cfg Config) (store.Store, error) {
	if cfg.DatabaseDriver == DriverMemory {
		return memory.NewStore(), nil
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// initDatabase opens the store and applies migrations
func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database ready", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initNotifier(ctx context.Context) error {
	switch app.cfg.Notifier {
	case NotifierSES:
		ses, err := notify.NewSES(ctx, notify.SESConfig{
			Region:   app.cfg.SESRegion,
			From:     app.cfg.MailFrom,
			FromName: app.cfg.MailFromName,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize ses notifier: %w", err)
		}
		app.notifier = ses
	default:
		app.logger.Warn("notifications are logged, not sent")
		app.notifier = notify.Log{}
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices(ctx context.Context) error {
	tokens, err := jwtx.NewHS256(jwtx.HS256Options{
		Secret: []byte(app.cfg.JWTSecret),
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.JWTTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	app.tokens = tokens

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.NewCollector(app.registry)

	links := notify.Links{AppName: app.cfg.AppName, BaseURL: app.cfg.AppURL}

	app.guard = &service.Guard{Verifier: app.tokens}
	app.inviteService = &service.InviteService{
		Store:    app.db,
		Notifier: app.notifier,
		Links:    links,
		Metrics:  app.metrics,
	}
	app.credentialService = &service.CredentialService{
		Store:    app.db,
		Tokens:   app.tokens,
		Guard:    app.guard,
		Notifier: app.notifier,
		Links:    links,
		Metrics:  app.metrics,
	}
	app.accountService = &service.AccountService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}

	if app.bootstrapService.Enabled() {
		done, err := app.bootstrapService.IsBootstrapped(ctx)
		if err != nil {
			return fmt.Errorf("failed to check bootstrap state: %w", err)
		}
		if done {
			app.logger.Warn("BOOTSTRAP_TOKEN is set but accounts already exist, bootstrap will refuse")
		} else {
			app.logger.Info("bootstrap endpoint enabled")
		}
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.guard,
		BuildVersion,
		app.db,
		app.logger,
		app.metrics,
		app.registry,
	)

	// Wire services to router
	router.InviteService = app.inviteService
	router.CredentialService = app.credentialService
	router.AccountService = app.accountService
	router.BootstrapService = app.bootstrapService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
