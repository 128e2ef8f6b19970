// Package app initializes and orchestrates the main components of the
// application. It wires together the GitHub client, the poll loop, desktop
// notifications, and the local control API.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"prwatch/internal/config"
	"prwatch/internal/engine"
	"prwatch/internal/github"
	"prwatch/internal/notify"
	"prwatch/internal/poller"
	"prwatch/internal/server"
	"prwatch/internal/storage"
)

// App holds the main application components.
type App struct {
	cfg        *config.Config
	server     *server.Server
	poller     *poller.Poller
	dispatcher *notify.Dispatcher
	markers    *engine.Markers
	logger     *slog.Logger
}

// NewApp sets up the application with all its dependencies. cfgPath is kept
// so the poller can reload the config at the start of every cycle.
func NewApp(ctx context.Context, cfgPath string, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg.GitHubToken == "" {
		return nil, fmt.Errorf("github_token is not set (config file or GITHUB_TOKEN)")
	}

	logger.Info("initializing prwatch",
		"repos", len(cfg.Repos),
		"poll_interval", cfg.PollInterval(),
		"snapshot", cfg.SnapshotPath)

	client := github.NewPATClient(ctx, cfg.GitHubToken, logger)
	fetcher := github.NewFetcher(client, logger)

	store := storage.NewFileStore(cfg.SnapshotPath, logger)
	markers := engine.NewMarkers()
	reconciler := engine.NewReconciler(store, markers, logger)

	notifier := notify.NewDesktop(cfg.Notify.Command, logger)
	dispatcher := notify.NewDispatcher(notifier, cfg.Notify.Sound, logger)

	loadConfig := func() (*config.Config, error) { return config.LoadFrom(cfgPath) }
	p := poller.New(loadConfig, client, fetcher, reconciler, markers, dispatcher, logger)

	httpServer := server.NewServer(cfg, p, markers, logger)

	logger.Info("prwatch initialized")
	return &App{
		cfg:        cfg,
		server:     httpServer,
		poller:     p,
		dispatcher: dispatcher,
		markers:    markers,
		logger:     logger,
	}, nil
}

// Poller exposes the poll loop for in-process frontends.
func (a *App) Poller() *poller.Poller { return a.poller }

// Markers exposes the attention markers for in-process frontends.
func (a *App) Markers() *engine.Markers { return a.markers }

// Start launches the poll loop and runs the control API. It blocks until the
// server shuts down.
func (a *App) Start(ctx context.Context) error {
	a.logger.Info("starting prwatch", "server_addr", a.cfg.Server.Addr)

	a.poller.Start(ctx)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start control API", "error", err)
		return err
	}
	return nil
}

// StartBackground launches only the poll loop, for frontends that embed the
// application without the control API.
func (a *App) StartBackground(ctx context.Context) {
	a.poller.Start(ctx)
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down prwatch")

	// Stop the control API first to prevent new incoming requests.
	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during control API shutdown", "error", serverErr)
		// Continue to stop other components even if the server failed.
	}

	a.poller.Stop()
	a.dispatcher.Stop()

	if serverErr != nil {
		return serverErr
	}

	a.logger.Info("prwatch stopped")
	return nil
}
