// Package app wires the client pieces together with an explicit lifecycle:
// built once at command start, closed on exit. Nothing here is a package
// global; pages receive the App and reach the store and session through it.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/FarahAbbdi/mission/internal/auth"
	"github.com/FarahAbbdi/mission/internal/config"
	"github.com/FarahAbbdi/mission/internal/logging"
	"github.com/FarahAbbdi/mission/internal/status"
	"github.com/FarahAbbdi/mission/internal/store"
)

// App holds the constructed client: config, store, auth, logger, clock.
type App struct {
	Config *config.Config
	Store  *store.Store
	Auth   *auth.Service
	Log    *zap.Logger

	// Today is captured per render pass so the expiry check and the
	// bucketing check agree within one pass.
	Today status.Today
}

// New loads config and opens the store and logger.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogPath)
	if err != nil {
		// The logger is ambient; a read-only filesystem should not keep
		// the app from starting.
		log = logging.Nop()
	}

	st, err := store.Open(cfg.DatabasePath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	sessions := auth.NewSessionFile(cfg.SessionPath(), cfg.SessionSecret, cfg.SessionTTL)

	return &App{
		Config: cfg,
		Store:  st,
		Auth:   auth.NewService(st, sessions),
		Log:    log,
		Today:  status.LocalToday,
	}, nil
}

// Close releases the store and flushes the logger.
func (a *App) Close() {
	if a.Store != nil {
		_ = a.Store.Close()
	}
	if a.Log != nil {
		_ = a.Log.Sync()
	}
}

// RequireUser resolves the current session or fails with a hint.
func (a *App) RequireUser() (string, error) {
	id, err := a.Auth.CurrentUser()
	if err != nil {
		return "", fmt.Errorf("not logged in, run 'mission login' first")
	}
	return id, nil
}
