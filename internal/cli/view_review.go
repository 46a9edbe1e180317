package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/ideefase/internal/cli/formatter"
	"github.com/alexanderramin/ideefase/internal/contract"
	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type reviewKeyMap struct {
	Go       key.Binding
	NoGo     key.Binding
	Auto     key.Binding
	Copy     key.Binding
	Edit     key.Binding
	Next     key.Binding
	ClearAll key.Binding
	Quit     key.Binding
}

func newReviewKeyMap() reviewKeyMap {
	return reviewKeyMap{
		Go:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "GO")),
		NoGo:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "NO GO")),
		Auto:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "automatisch")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "kopieer")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "bewerk")),
		Next:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "volgende")),
		ClearAll: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "alles wissen")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "stop")),
	}
}

func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Go, k.NoGo, k.Auto, k.Copy, k.Edit, k.Next, k.ClearAll, k.Quit}
}

// evaluatedMsg carries the outcome of evaluating the current submission.
// Only the result of the latest request (seq) is shown.
type evaluatedMsg struct {
	seq  int
	resp *contract.EvaluateResponse
	err  error
}

// reviewView shows the generated feedback for the submission in SharedState
// and lets the reviewer override the verdict and copy the text.
type reviewView struct {
	state *SharedState
	keys  reviewKeyMap
	vp    viewport.Model

	resp    *contract.EvaluateResponse
	err     error
	evalSeq int
}

func newReviewView(state *SharedState) *reviewView {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return &reviewView{
		state: state,
		keys:  newReviewKeyMap(),
		vp:    vp,
	}
}

func (v *reviewView) Init() tea.Cmd {
	return v.evaluateCmd()
}

func (v *reviewView) evaluateCmd() tea.Cmd {
	v.evalSeq++
	seq := v.evalSeq
	s := v.state.Submission
	evaluate := v.state.App.Evaluate
	return func() tea.Msg {
		resp, err := evaluate.Evaluate(context.Background(), contract.NewEvaluateRequest(s))
		return evaluatedMsg{seq: seq, resp: resp, err: err}
	}
}

// copyCmd exports the current text and turns the outcome into a toast.
func (v *reviewView) copyCmd() tea.Cmd {
	if v.resp == nil {
		return nil
	}
	text := v.resp.Text
	app := v.state.App
	return func() tea.Msg {
		capture := &captureNotifier{}
		err := app.exportUseCase(capture).Export(context.Background(), text)
		if capture.last != nil {
			return toastMsg{note: *capture.last}
		}
		if err != nil {
			return toastMsg{note: service.Notification{Level: service.NotifyError, Message: service.MsgCopyFailed}}
		}
		return toastMsg{note: service.Notification{Level: service.NotifySuccess, Message: service.MsgCopied}}
	}
}

func (v *reviewView) setVerdict(verdict *domain.Verdict) tea.Cmd {
	v.state.Submission = v.state.Submission.WithVerdict(verdict)
	return v.evaluateCmd()
}

// startOver resets the submission and opens the form for the next one.
func (v *reviewView) startOver(keepDeadline bool) tea.Cmd {
	v.state.Submission.Reset(keepDeadline)
	return tea.Batch(v.evaluateCmd(), pushView(newFormView(v.state)))
}

func (v *reviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case refreshViewMsg:
		return v, v.evaluateCmd()

	case evaluatedMsg:
		if msg.seq != v.evalSeq {
			return v, nil
		}
		v.resp, v.err = msg.resp, msg.err
		v.resize()
		if v.resp != nil {
			v.vp.SetContent(v.resp.Text)
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Go):
			verdict := domain.VerdictGo
			return v, v.setVerdict(&verdict)
		case key.Matches(msg, v.keys.NoGo):
			verdict := domain.VerdictNoGo
			return v, v.setVerdict(&verdict)
		case key.Matches(msg, v.keys.Auto):
			return v, v.setVerdict(nil)
		case key.Matches(msg, v.keys.Copy):
			return v, v.copyCmd()
		case key.Matches(msg, v.keys.Edit):
			return v, pushView(newFormView(v.state))
		case key.Matches(msg, v.keys.Next):
			return v, v.startOver(true)
		case key.Matches(msg, v.keys.ClearAll):
			return v, v.startOver(false)
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// summaryLines is the height of the badge line and the blank line under it.
const summaryLines = 2

func (v *reviewView) resize() {
	v.vp.Width = v.state.Width
	v.vp.Height = max(v.state.ContentHeight()-summaryLines, 1)
}

func (v *reviewView) View() string {
	if v.err != nil {
		return formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n" +
			formatter.Dim("Druk op e om de invoer te bewerken.")
	}
	if v.resp == nil {
		return formatter.Dim("Beoordelen...")
	}

	r := v.resp.Result
	line := []string{
		formatter.VerdictBadge(r.Verdict, r.Overridden),
		formatter.StyleBlue.Render(string(v.state.Submission.Variant)),
		formatter.Dim(formatter.CharCount(v.resp.CharCount)),
	}
	if len(r.MissingEntities) > 0 {
		line = append(line, formatter.StyleYellow.Render("Nog toevoegen: "+strings.Join(r.MissingEntities, ", ")))
	}
	return strings.Join(line, "  ") + "\n\n" + v.vp.View()
}

func (v *reviewView) ID() ViewID               { return ViewReview }
func (v *reviewView) Title() string            { return "Beoordeling" }
func (v *reviewView) ShortHelp() []key.Binding { return v.keys.ShortHelp() }
