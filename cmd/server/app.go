package main

import (
	"database/sql"
	"log/slog"

	"github.com/avikoski/bloglist-api/internal/config"
	"github.com/avikoski/bloglist-api/internal/platform/postgres"
	"github.com/avikoski/bloglist-api/internal/service/auth"
	"github.com/avikoski/bloglist-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	db               *sql.DB
	userStore        store.UserStore
	blogStore        store.BlogStore
	tokenService     auth.TokenService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication wires the application's services and stores on top of the
// given database connection. The JWT signing key travels from config into
// the token service here; nothing else ever sees it.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        postgres.NewPostgresUserStore(db, logger),
		blogStore:        postgres.NewPostgresBlogStore(db, logger),
		tokenService:     tokenService,
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
