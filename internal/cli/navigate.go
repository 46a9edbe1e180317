package cli

import (
	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload from SharedState.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a form completes or is cancelled.
// The appModel handles it atomically: pop the form, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// submissionEditedMsg replaces the submission under review.
type submissionEditedMsg struct {
	submission domain.Submission
}

// toastMsg shows a transient notification below the content.
type toastMsg struct {
	note service.Notification
}

// toastExpiredMsg hides the toast with the matching sequence number.
type toastExpiredMsg struct {
	seq int
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}
