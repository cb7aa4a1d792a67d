// Package tui is the terminal front end of the suite: a PIN login form
// followed by tabbed equipment, assignment and measurement views.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-medlux/internal/adapter"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/models"
)

var ErrUserQuit = errors.New("usuário saiu do programa")

type TUI struct {
	suite     adapter.SuiteAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(suite adapter.SuiteAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{suite: suite, buildInfo: buildInfo, logger: log}
}

// LoginFlow shows the login form until a session is opened or the user quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	root := NewRootModel(NewLoginModel(ctx, t.suite), t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().
		Str("func", "TUI.LoginFlow").
		Str("user_id", result.session.Identity.UserID).
		Msg("session opened")
	return result.session, nil
}

// MainLoop runs the tabbed views for session. It reports whether the user
// logged out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainModel(ctx, t.suite, session.Identity, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
