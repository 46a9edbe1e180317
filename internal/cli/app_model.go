package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/ideefase/internal/cli/formatter"
	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/service"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI. The review view is always
// at the bottom of the view stack; forms are pushed on top of it.
type appModel struct {
	state     *SharedState
	viewStack []View
	help      help.Model
	quitting  bool

	toast    *service.Notification
	toastSeq int
}

type modelOption func(*modelConfig)

type modelConfig struct {
	submission *domain.Submission
	review     bool
}

// withSubmission starts the assistant with s instead of a blank submission.
func withSubmission(s domain.Submission) modelOption {
	return func(c *modelConfig) { c.submission = &s }
}

// startAtReview skips the initial form.
func startAtReview() modelOption {
	return func(c *modelConfig) { c.review = true }
}

func newAppModel(app *App, opts ...modelOption) appModel {
	var cfg modelConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	state := &SharedState{App: app, Submission: app.newSubmission()}
	if cfg.submission != nil {
		state.Submission = *cfg.submission
	}

	m := appModel{
		state: state,
		help:  help.New(),
	}
	m.viewStack = []View{newReviewView(state)}
	if !cfg.review {
		m.viewStack = append(m.viewStack, newFormView(state))
	}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) popView() {
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
}

// broadcast sends msg to every view on the stack.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	// Every view on the stack loads, so the review is ready once a form pops.
	var cmds []tea.Cmd
	for _, v := range m.viewStack {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case refreshViewMsg:
		return m, m.broadcast(msg)

	case wizardCompleteMsg:
		m.popView()
		return m, msg.nextCmd

	case submissionEditedMsg:
		m.state.Submission = msg.submission
		return m, m.broadcast(refreshViewMsg{})

	case toastMsg:
		m.toastSeq++
		note := msg.note
		m.toast = &note
		seq := m.toastSeq
		return m, tea.Tick(m.state.App.toastDuration(), func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		})

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	// Messages addressed to a specific view (evaluation results) reach
	// the bottom view even while a form is on top.
	case evaluatedMsg:
		return m, m.broadcast(msg)
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	v := m.activeView()
	if v == nil {
		return m, nil
	}
	if !viewCapturesInput(v) && msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}

	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderToast(), m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("ideefase")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	if name := m.state.Submission.Name; name != "" {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(name) + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderToast() string {
	if m.toast == nil {
		return ""
	}
	return formatter.FormatToast(*m.toast)
}

func (m *appModel) renderStatusBar() string {
	var bar string
	if v := m.activeView(); v != nil {
		bar = m.help.ShortHelpView(v.ShortHelp())
	}
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
