// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-medlux/internal/adapter"
	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/validators"
	"github.com/MKhiriev/go-medlux/models"
)

// LoginModel is the Bubble Tea model for the login screen: a user id and
// a masked 4-digit PIN. A successful submission produces a [LoginResult]
// that [RootModel] turns into the end of the login flow.
type LoginModel struct {
	ctx   context.Context
	suite adapter.SuiteAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, suite adapter.SuiteAdapter) *LoginModel {
	userInput := textinput.New()
	userInput.Placeholder = "usuário"
	userInput.CharLimit = 32
	userInput.Width = 32
	userInput.Focus()

	pinInput := textinput.New()
	pinInput.Placeholder = "PIN"
	pinInput.CharLimit = 4
	pinInput.Width = 8
	pinInput.EchoMode = textinput.EchoPassword
	pinInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		suite:  suite,
		inputs: []textinput.Model{userInput, pinInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears the submitting state and shows the error, if any.
//   - tab/shift+tab  move the focus between the inputs.
//   - enter          validates the inputs and dispatches the login command.
//
// Other keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			m.inputs[1].SetValue("")
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			userID := models.NormalizeID(m.inputs[0].Value())
			pin := strings.TrimSpace(m.inputs[1].Value())
			if userID == "" || pin == "" {
				m.errMsg = "Informe usuário e PIN."
				return m, nil
			}
			if !validators.ValidPIN(pin) {
				m.errMsg = app.MsgInvalidPIN
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(userID, pin)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Campo    │ Valor\n")
	b.WriteString("─────────┼──────────────────────────────────\n")
	b.WriteString("Usuário  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("PIN      │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Entrando...]\n")
	} else {
		b.WriteString("\n[Entrar]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Erro: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("MEDLUX • LOGIN", strings.TrimRight(b.String(), "\n"), "tab: próximo campo │ enter: entrar │ f1: sobre │ esc: sair")
}

func (m *LoginModel) cmdLogin(userID, pin string) tea.Cmd {
	ctx := m.ctx
	suite := m.suite

	return func() tea.Msg {
		session, err := suite.Login(ctx, models.LoginRequest{UserID: userID, PIN: pin})
		return LoginResult{Session: session, Err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
