package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-medlux/internal/adapter"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/models"
)

// UI is the part of the terminal front end the app drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.Session, error)
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}

// ErrUserQuit is returned by a UI when the user closes the login form.
var ErrUserQuit = errors.New("user quit")

type App struct {
	suite  adapter.SuiteAdapter
	ui     UI
	quit   error
	logger *logger.Logger
}

// NewApp wires suite and ui. quitErr is the error ui returns when the user
// closes the login form; it ends Run without an error.
func NewApp(suite adapter.SuiteAdapter, ui UI, quitErr error, log *logger.Logger) (*App, error) {
	if suite == nil || ui == nil {
		return nil, errors.New("client app needs a suite adapter and a ui")
	}
	if quitErr == nil {
		quitErr = ErrUserQuit
	}
	return &App{suite: suite, ui: ui, quit: quitErr, logger: log}, nil
}

// Run alternates between the login form and the main views until the user
// quits. Logging out goes back to the login form.
func (a *App) Run(ctx context.Context) error {
	if v, err := a.suite.Version(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("suite version unavailable")
	} else {
		a.logger.Info().Str("func", "App.Run").Str("server_version", v.Version).Msg("connected to suite")
	}

	for {
		session, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, a.quit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().
			Str("func", "App.Run").
			Str("user_id", session.Identity.UserID).
			Msg("logged out")
	}
}
