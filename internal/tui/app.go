package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-medlux/models"
)

// RootModel wraps the login page:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window with F1
// 3) finishes the program once a session is opened
type RootModel struct {
	login *LoginModel

	quitByUser bool
	session    models.Session
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

func NewRootModel(login *LoginModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{login: login, buildInfo: buildInfo}
}

func (r RootModel) Init() tea.Cmd {
	return r.login.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "f1":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if result, ok := msg.(LoginResult); ok && result.Err == nil {
		r.session = result.Session
		return r, tea.Quit
	}

	updated, cmd := r.login.Update(msg)
	if lm, ok := updated.(*LoginModel); ok {
		r.login = lm
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.login.View()
}
