package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	checklisthttp "github.com/tynanfleet/fleetcheck/internal/checklist/http"
	"github.com/tynanfleet/fleetcheck/internal/checklist/service"
	"github.com/tynanfleet/fleetcheck/internal/checklist/store"
	"github.com/tynanfleet/fleetcheck/internal/checklist/store/drivers/sqlite"
	"github.com/tynanfleet/fleetcheck/pkg/cryptox"
	"github.com/tynanfleet/fleetcheck/pkg/jwtx"
	"github.com/tynanfleet/fleetcheck/pkg/slogx"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// Application wires configuration, storage, services and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	store  store.Store
	signer *jwtx.Signer
	router *checklisthttp.Router
	server *http.Server
}

func New(cfg Config) (*Application, error) {
	a := &Application{cfg: cfg}

	a.logger = slogx.New(slogx.Config{
		Service: "fleetcheck",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	cryptox.SetPepperPath(cfg.PepperFile)

	if err := a.initDatabase(); err != nil {
		return nil, err
	}
	if err := a.initSigner(); err != nil {
		return nil, err
	}
	a.initServices()
	a.initHTTP()

	if !cfg.AdminEnabled() {
		a.logger.Warn("admin identity disabled; set FLEETCHECK_ADMIN_USERNAME and FLEETCHECK_ADMIN_PASSWORD to enable it")
	}

	return a, nil
}

// initDatabase opens the SQLite store and brings the schema fully up to date
// before any traffic is served.
func (a *Application) initDatabase() error {
	st, err := sqlite.NewStore(a.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := st.ApplyMigrations(); err != nil {
		st.Close()
		return fmt.Errorf("apply migrations: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	st.EnsureEntryColumns(ctx, a.logger)

	a.store = st
	return nil
}

func (a *Application) initSigner() error {
	secret, err := cryptox.LoadOrGenerateKey(a.cfg.SessionSecretFile)
	if err != nil {
		return fmt.Errorf("load session secret: %w", err)
	}
	a.signer = jwtx.NewSigner([]byte(secret), "fleetcheck", a.cfg.SessionTTL)
	return nil
}

func (a *Application) initServices() {
	a.router = checklisthttp.NewRouter(a.signer, Version, a.cfg.VanNumbers, a.store, a.logger)

	a.router.SessionService = &service.SessionService{
		Store:         a.store,
		AdminUsername: a.cfg.AdminUsername,
		AdminPassword: a.cfg.AdminPassword,
	}
	a.router.AccountService = &service.AccountService{
		Store:         a.store,
		AdminUsername: a.cfg.AdminUsername,
	}
	a.router.SubmissionService = &service.SubmissionService{Store: a.store}
	a.router.AuditService = &service.AuditService{Store: a.store}
}

func (a *Application) initHTTP() {
	a.router.ApplyRoutes()

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Run starts the HTTP server and blocks until shutdown or a fatal error.
func (a *Application) Run() error {
	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		a.logger.Info("shutdown signal received", "signal", sig.String())
		return a.Shutdown()
	}
}

// Shutdown drains in-flight requests and closes the database.
func (a *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.server.Close()
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	if err := a.store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	a.logger.Info("shutdown complete")
	return nil
}
