package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ideefase/internal/cli/formatter"
	"github.com/alexanderramin/ideefase/internal/contract"
	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/importer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// checkFlags holds the submission fields that can be given on the command line.
type checkFlags struct {
	file            string
	name            string
	variant         string
	roles           []string
	entities        []string
	functionalities []string
	apiIssues       []string
	backendIssues   []string
	explanation     string
	deadline        string

	userExplicit     bool
	userImplicit     bool
	securityExplicit bool
	securityImplicit bool

	verdict string
	copy    bool
	plain   bool
}

func newCheckCmd(app *App) *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Beoordeel een idee en print de feedbacktekst",
		Example: `  ideefase check --variant backend --name Sam --role admin --role klant \
    --entity Order --entity Product --entity Review --entity Category --deadline "1 maart"
  ideefase check --file idee.yaml --verdict GO --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.submission(app, cmd.Flags())
			if err != nil {
				return err
			}

			ctx := context.Background()
			resp, err := app.Evaluate.Evaluate(ctx, contract.NewEvaluateRequest(*s))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f.plain {
				fmt.Fprint(out, resp.Text)
			} else {
				fmt.Fprintln(out, formatter.FormatFeedback(s.Variant, resp))
			}

			if f.copy {
				notifier := newWriterNotifier(cmd.ErrOrStderr())
				if err := app.exportUseCase(notifier).Export(ctx, resp.Text); err != nil {
					return err
				}
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "JSON or YAML submission file; other flags override its fields")
	fl.StringVar(&f.name, "name", "", "Student name used in the salutation")
	fl.StringVar(&f.variant, "variant", "", "Frontend, Backend or Fullstack (default Frontend)")
	fl.StringArrayVar(&f.roles, "role", nil, "User role (repeatable)")
	fl.StringArrayVar(&f.entities, "entity", nil, "Entity / class (repeatable)")
	fl.StringArrayVar(&f.functionalities, "functionality", nil, "Functionality, Frontend only (repeatable)")
	fl.StringArrayVar(&f.apiIssues, "api-issue", nil, "Reason the API falls short, Frontend only (repeatable)")
	fl.StringArrayVar(&f.backendIssues, "backend-issue", nil, "Reason the backend falls short, Frontend only (repeatable)")
	fl.StringVar(&f.explanation, "explanation", "", "Extra explanation added verbatim")
	fl.StringVar(&f.deadline, "deadline", "", "Resubmission deadline shown with a NO GO")
	fl.BoolVar(&f.userExplicit, "user-explicit", true, "User entity is named explicitly")
	fl.BoolVar(&f.userImplicit, "user-implicit", false, "User entity is implied elsewhere")
	fl.BoolVar(&f.securityExplicit, "security-explicit", true, "Security entity is named explicitly")
	fl.BoolVar(&f.securityImplicit, "security-implicit", false, "Security entity is implied elsewhere")
	fl.StringVar(&f.verdict, "verdict", "", "Force the verdict: GO or NOGO")
	fl.BoolVar(&f.copy, "copy", false, "Copy the feedback text to the clipboard")
	fl.BoolVar(&f.plain, "plain", false, "Print only the feedback text")

	return cmd
}

// submission builds the record from the optional file and every flag the
// user set explicitly.
func (f *checkFlags) submission(app *App, fl *pflag.FlagSet) (*domain.Submission, error) {
	var s *domain.Submission
	if f.file != "" {
		loaded, err := importer.LoadSubmission(f.file)
		if err != nil {
			return nil, err
		}
		s = loaded
	} else {
		base := app.newSubmission()
		s = &base
	}

	if fl.Changed("variant") {
		v, err := domain.ParseVariant(f.variant)
		if err != nil {
			return nil, err
		}
		s.Variant = v
	}
	if fl.Changed("verdict") {
		v, err := domain.ParseVerdict(f.verdict)
		if err != nil {
			return nil, err
		}
		s.ManualVerdict = &v
	}

	setString(fl, "name", &s.Name, strings.TrimSpace(f.name))
	setString(fl, "explanation", &s.Explanation, f.explanation)
	setString(fl, "deadline", &s.Deadline, strings.TrimSpace(f.deadline))
	setString(fl, "role", &s.Roles, strings.Join(f.roles, "\n"))
	setString(fl, "entity", &s.Entities, strings.Join(f.entities, "\n"))
	setString(fl, "functionality", &s.Functionalities, strings.Join(f.functionalities, "\n"))
	setString(fl, "api-issue", &s.APIIssues, strings.Join(f.apiIssues, "\n"))
	setString(fl, "backend-issue", &s.BackendIssues, strings.Join(f.backendIssues, "\n"))

	setBool(fl, "user-explicit", &s.UserExplicit, f.userExplicit)
	setBool(fl, "user-implicit", &s.UserImplicit, f.userImplicit)
	setBool(fl, "security-explicit", &s.SecurityExplicit, f.securityExplicit)
	setBool(fl, "security-implicit", &s.SecurityImplicit, f.securityImplicit)

	return s, nil
}

func setString(fl *pflag.FlagSet, name string, dst *string, v string) {
	if fl.Changed(name) {
		*dst = v
	}
}

func setBool(fl *pflag.FlagSet, name string, dst *bool, v bool) {
	if fl.Changed(name) {
		*dst = v
	}
}
