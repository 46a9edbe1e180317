package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView wraps the submission form as a View on the navigation stack.
// Completing the form replaces the submission under review; esc cancels.
type formView struct {
	state  *SharedState
	form   *huh.Form
	fields *submissionFields
}

func newFormView(state *SharedState) *formView {
	fields := fromSubmission(state.Submission)
	return &formView{
		state:  state,
		form:   submissionForm(fields),
		fields: fields,
	}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return wizardCompleteMsg{} }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		edited := v.fields.toSubmission()
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: func() tea.Msg {
				return submissionEditedMsg{submission: edited}
			}}
		}
	}

	return v, cmd
}

func (v *formView) View() string {
	return v.form.View()
}

func (v *formView) ID() ViewID          { return ViewForm }
func (v *formView) Title() string       { return "Formulier" }
func (v *formView) CapturesInput() bool { return true }
func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "volgende")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "vorige")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "annuleren")),
	}
}
