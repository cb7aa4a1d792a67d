package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-medlux/internal/adapter"
	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/models"
)

type tab int

const (
	tabEquipment tab = iota
	tabAssignments
	tabMeasurements
	tabCount
)

var tabTitles = [tabCount]string{"Equipamentos", "Vínculos", "Medições"}

// recentLimit of zero lets the server apply its configured default.
const recentLimit = 0

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

type mainModel struct {
	ctx       context.Context
	suite     adapter.SuiteAdapter
	identity  models.Identity
	buildInfo models.AppBuildInfo

	tab          tab
	equipment    []models.Equipment
	assignments  []models.AssignmentView
	measurements []models.Measurement
	idx          [tabCount]int
	loading      [tabCount]bool
	spinner      spinner.Model

	status    string
	reportURL string

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	pendingEnd   string

	showForm bool
	form     measurementForm

	showBuildInfo bool
	logout        bool
}

func newMainModel(ctx context.Context, suite adapter.SuiteAdapter, identity models.Identity, buildInfo models.AppBuildInfo) mainModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := mainModel{
		ctx:       ctx,
		suite:     suite,
		identity:  identity,
		buildInfo: buildInfo,
		spinner:   s,
	}
	for i := range m.loading {
		m.loading[i] = true
	}
	return m
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadEquipment(), m.cmdLoadAssignments(), m.cmdLoadMeasurements())
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.showConfirm = false
				id := m.pendingEnd
				m.pendingEnd = ""
				if id == "" {
					return m, nil
				}
				return m, m.cmdEndAssignment(id)
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.showConfirm = false
				m.pendingEnd = ""
			}
			return m, nil
		}
		if m.showForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)

	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case equipmentLoadedMsg:
		m.loading[tabEquipment] = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.equipment = msg.items
		m.clampIdx(tabEquipment, len(m.equipment))
		return m, nil

	case assignmentsLoadedMsg:
		m.loading[tabAssignments] = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.assignments = msg.items
		m.clampIdx(tabAssignments, len(m.assignments))
		return m, nil

	case measurementsLoadedMsg:
		m.loading[tabMeasurements] = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.measurements = msg.items
		m.clampIdx(tabMeasurements, len(m.measurements))
		return m, nil

	case visibleLoadedMsg:
		if msg.err != nil {
			m.showForm = false
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.form.setEquipment(msg.items)
		if e, ok := m.currentEquipment(); ok {
			m.form.preselect(e.ID)
		}
		return m, nil

	case measurementSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.showForm = false
		m.tab = tabMeasurements
		m.loading[tabMeasurements] = true
		return m, tea.Batch(m.setStatus(app.MsgMeasurementSaved), m.spinner.Tick, m.cmdLoadMeasurements())

	case assignmentEndedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.loading[tabAssignments] = true
		return m, tea.Batch(m.setStatus(app.MsgAssignmentEnded), m.spinner.Tick, m.cmdLoadAssignments())

	case loggedOutMsg:
		// the adapter forgets the token even when the server call fails
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(fmt.Sprintf("Não foi possível copiar: %v", msg.err))
			return m, nil
		}
		return m, m.setStatus("Copiado: " + msg.text)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if m.showForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m mainModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(msg, keys.about):
		m.showBuildInfo = true
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.right):
		m.tab = (m.tab + 1) % tabCount
		m.reportURL = ""
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.left):
		m.tab = (m.tab - 1 + tabCount) % tabCount
		m.reportURL = ""
	case key.Matches(msg, keys.up):
		if m.idx[m.tab] > 0 {
			m.idx[m.tab]--
		}
		m.reportURL = ""
	case key.Matches(msg, keys.down):
		if m.idx[m.tab] < m.itemCount(m.tab)-1 {
			m.idx[m.tab]++
		}
		m.reportURL = ""
	case key.Matches(msg, keys.refresh):
		m.loading[m.tab] = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(m.tab))
	case key.Matches(msg, keys.newItem):
		m.showForm = true
		m.form = newMeasurementForm()
		return m, m.cmdLoadVisible()
	case key.Matches(msg, keys.copy):
		if e, ok := m.currentEquipment(); ok {
			return m, cmdCopyToClipboard(e.ID)
		}
	case key.Matches(msg, keys.report):
		if e, ok := m.currentEquipment(); ok {
			m.reportURL = m.suite.ReportURL(e.ID)
		}
	case key.Matches(msg, keys.end):
		if m.tab != tabAssignments {
			return m, nil
		}
		if !m.identity.IsAdmin() {
			m.showErrorf(app.MsgAdminOnly)
			return m, nil
		}
		a, ok := m.currentAssignment()
		if !ok {
			return m, nil
		}
		if !a.Ativo {
			m.showErrorf("Vínculo já encerrado.")
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = a.UserNome + " • " + a.EquipID
		m.pendingEnd = a.ID
	}
	return m, nil
}

func (m mainModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.showForm = false
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down) && m.form.focus == fieldEquipment:
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case m.form.focus == fieldEquipment && key.Matches(keyMsg, keys.left):
			m.form.cycle(-1)
			return m, nil
		case m.form.focus == fieldEquipment && key.Matches(keyMsg, keys.right):
			m.form.cycle(1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting || m.form.loading {
				return m, nil
			}
			if _, ok := m.form.selected(); !ok {
				m.showErrorf(app.MsgNoVisibleEquipment)
				return m, nil
			}
			req := m.form.request()
			if req.Local == "" {
				m.showErrorf(app.MsgMeasurementFieldsRequired)
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveMeasurement(req)
		}
	}

	if m.form.focus == fieldEquipment {
		return m, nil
	}
	var cmd tea.Cmd
	i := m.form.focus - 1
	m.form.inputs[i], cmd = m.form.inputs[i].Update(msg)
	return m, cmd
}

func (m mainModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%s)\n", m.identity.Nome, m.identity.Role))
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	var hotKeys string
	if m.showForm {
		b.WriteString(m.form.View())
		hotKeys = "tab: próximo campo │ ◀ ▶: equipamento │ enter: salvar │ esc: cancelar"
	} else {
		b.WriteString(m.listView())
		hotKeys = m.hotKeys()
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	body := renderPage("MEDLUX", b.String(), hotKeys)
	body += "\n  " + buildFooter(m.buildInfo)

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}
	return appStyle.Render(body)
}

func (m mainModel) tabsView() string {
	parts := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if tab(i) == m.tab {
			parts = append(parts, activeTabStyle.Render(title))
		} else {
			parts = append(parts, tabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m mainModel) listView() string {
	if m.loading[m.tab] {
		return m.spinner.View() + " Carregando..."
	}

	var lines []string
	switch m.tab {
	case tabEquipment:
		for _, e := range m.equipment {
			lines = append(lines, fmt.Sprintf("%-12s %-20s %-14s %s",
				fitText(e.ID, 12), fitText(valueOrDash(e.Modelo), 20),
				fitText(valueOrDash(e.Tipo), 14), valueOrDash(e.ResponsavelAtual)))
		}
	case tabAssignments:
		for _, a := range m.assignments {
			state := "ativo"
			if !a.Ativo {
				state = "encerrado"
			}
			lines = append(lines, fmt.Sprintf("%-20s %-12s %-10s %s",
				fitText(a.UserNome, 20), fitText(a.EquipID, 12), state, formatTime(a.DataInicio)))
		}
	case tabMeasurements:
		for _, ms := range m.measurements {
			lines = append(lines, fmt.Sprintf("%s  %-12s %-4s %-8s %s",
				formatTime(ms.DataHora), fitText(ms.EquipID, 12), ms.TipoMedicao,
				valueOrDash(ms.Payload.RL), fitText(valueOrDash(ms.Payload.Local), 30)))
		}
	}

	if len(lines) == 0 {
		return "Nenhum registro."
	}

	for i := range lines {
		cursor := "  "
		if i == m.idx[m.tab] {
			cursor = "> "
		}
		lines[i] = cursor + lines[i]
	}

	out := strings.Join(lines, "\n")
	if m.tab == tabEquipment && m.reportURL != "" {
		out += "\n\nRelatório: " + m.reportURL
	}
	return out
}

func (m mainModel) hotKeys() string {
	common := "tab: aba │ r: atualizar │ n: nova medição │ x: sair da sessão │ f1: sobre │ q: fechar"
	switch m.tab {
	case tabEquipment:
		return "c: copiar ID │ p: relatório │ " + common
	case tabAssignments:
		if m.identity.IsAdmin() {
			return "e: encerrar vínculo │ " + common
		}
	}
	return common
}

func (m *mainModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *mainModel) setStatus(s string) tea.Cmd {
	m.status = s
	return cmdClearStatus()
}

func (m mainModel) anyLoading() bool {
	for _, l := range m.loading {
		if l {
			return true
		}
	}
	return false
}

func (m mainModel) itemCount(t tab) int {
	switch t {
	case tabEquipment:
		return len(m.equipment)
	case tabAssignments:
		return len(m.assignments)
	case tabMeasurements:
		return len(m.measurements)
	}
	return 0
}

func (m *mainModel) clampIdx(t tab, n int) {
	if m.idx[t] >= n {
		m.idx[t] = n - 1
	}
	if m.idx[t] < 0 {
		m.idx[t] = 0
	}
}

func (m mainModel) currentEquipment() (models.Equipment, bool) {
	i := m.idx[tabEquipment]
	if m.tab != tabEquipment || i < 0 || i >= len(m.equipment) {
		return models.Equipment{}, false
	}
	return m.equipment[i], true
}

func (m mainModel) currentAssignment() (models.AssignmentView, bool) {
	i := m.idx[tabAssignments]
	if i < 0 || i >= len(m.assignments) {
		return models.AssignmentView{}, false
	}
	return m.assignments[i], true
}

func (m mainModel) cmdLoad(t tab) tea.Cmd {
	switch t {
	case tabAssignments:
		return m.cmdLoadAssignments()
	case tabMeasurements:
		return m.cmdLoadMeasurements()
	default:
		return m.cmdLoadEquipment()
	}
}

func (m mainModel) cmdLoadEquipment() tea.Cmd {
	ctx, suite := m.ctx, m.suite
	return func() tea.Msg {
		items, err := suite.ListEquipment(ctx)
		return equipmentLoadedMsg{items: items, err: err}
	}
}

func (m mainModel) cmdLoadAssignments() tea.Cmd {
	ctx, suite := m.ctx, m.suite
	return func() tea.Msg {
		items, err := suite.ListAssignments(ctx)
		return assignmentsLoadedMsg{items: items, err: err}
	}
}

func (m mainModel) cmdLoadMeasurements() tea.Cmd {
	ctx, suite := m.ctx, m.suite
	return func() tea.Msg {
		items, err := suite.RecentMeasurements(ctx, recentLimit)
		return measurementsLoadedMsg{items: items, err: err}
	}
}

func (m mainModel) cmdLoadVisible() tea.Cmd {
	ctx, suite := m.ctx, m.suite
	return func() tea.Msg {
		items, err := suite.VisibleEquipment(ctx)
		return visibleLoadedMsg{items: items, err: err}
	}
}

func (m mainModel) cmdSaveMeasurement(req models.SaveMeasurementRequest) tea.Cmd {
	ctx, suite := m.ctx, m.suite
	return func() tea.Msg {
		item, err := suite.SaveMeasurement(ctx, req)
		return measurementSavedMsg{item: item, err: err}
	}
}

func (m mainModel) cmdEndAssignment(id string) tea.Cmd {
	ctx, suite := m.ctx, m.suite
	return func() tea.Msg {
		item, err := suite.EndAssignment(ctx, id)
		return assignmentEndedMsg{item: item, err: err}
	}
}

func (m mainModel) cmdLogout() tea.Cmd {
	ctx, suite := m.ctx, m.suite
	return func() tea.Msg {
		return loggedOutMsg{err: suite.Logout(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: clipboardWrite(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
