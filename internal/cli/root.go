package cli

import (
	"time"

	"github.com/alexanderramin/ideefase/internal/app"
	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/importer"
	"github.com/alexanderramin/ideefase/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the use cases and settings used by CLI commands.
type App struct {
	Evaluate app.EvaluateUseCase

	// Export copies feedback. When nil, an export service is built from
	// Clipboard for each caller so notifications reach the right surface.
	Export    app.ExportUseCase
	Clipboard service.Clipboard
	Observer  service.UseCaseObserver

	// DefaultDeadline prefills the resubmission date of new forms.
	DefaultDeadline string
	ToastDuration   time.Duration

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// RunProgram runs the interactive assistant. Defaults to a bubbletea
	// program on the alternate screen.
	RunProgram func(m tea.Model) error
}

// NewRootCmd creates the top-level "ideefase" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var file string

	root := &cobra.Command{
		Use:   "ideefase",
		Short: "Beoordeel projectideeën en stel GO / NO GO feedback op",
		Long: "Beoordeel een projectidee op rollen, entiteiten en functionaliteiten\n" +
			"en stel de feedbacktekst voor de student op.\n\n" +
			"Zonder subcommando start de interactieve assistent (alleen in een terminal).",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}

			var opts []modelOption
			if file != "" {
				s, err := importer.LoadSubmission(file)
				if err != nil {
					return err
				}
				opts = append(opts, withSubmission(*s), startAtReview())
			}
			return app.runProgram(newAppModel(app, opts...))
		},
	}

	root.Flags().StringVarP(&file, "file", "f", "", "Open a JSON or YAML submission file in the review screen")

	root.AddCommand(
		newCheckCmd(app),
	)

	return root
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (a *App) toastDuration() time.Duration {
	if a.ToastDuration > 0 {
		return a.ToastDuration
	}
	return 5 * time.Second
}

// newSubmission returns a blank submission with the configured deadline.
func (a *App) newSubmission() domain.Submission {
	s := domain.NewSubmission(domain.VariantFrontend)
	s.Deadline = a.DefaultDeadline
	return *s
}
