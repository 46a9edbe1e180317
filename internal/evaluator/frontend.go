package evaluator

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ideefase/internal/domain"
)

// EvaluateFrontend judges a Frontend submission on its functionalities and
// on the API and backend issues the reviewer found. Any reported issue
// forces NO GO. The returned feedback has no header.
func EvaluateFrontend(s domain.Submission, rules domain.Rules) Result {
	feedback := Feedback{variant: domain.VariantFrontend, deadline: strings.TrimSpace(s.Deadline)}

	funcs := splitLines(s.Functionalities)
	if len(funcs) == 0 {
		feedback.Body = NoFunctionalitiesMessage
		return Result{
			Verdict:     domain.VerdictNoGo,
			AutoVerdict: domain.VerdictNoGo,
			Feedback:    feedback,
			Checks:      []Check{{Code: CheckFunctionalities}},
		}
	}

	apiIssues := splitLines(s.APIIssues)
	backendIssues := splitLines(s.BackendIssues)
	enough := len(funcs) >= rules.MinFunctionalities

	var b strings.Builder
	b.WriteString("Je bent al goed op weg met je idee!\nUit jouw idee kan ik de volgende functionaliteiten halen:\n")
	writeBullets(&b, funcs)
	b.WriteString("\n")

	if enough {
		b.WriteString("Hiermee voldoe je aan de eisen van de opdracht.\n")
	} else {
		b.WriteString("Hiermee voldoe je nog niet aan de eisen van de opdracht.\n")
		remaining := rules.MinFunctionalities - len(funcs)
		noun := "functionaliteiten"
		if remaining == 1 {
			noun = "functionaliteit"
		}
		fmt.Fprintf(&b, "Je moet nog %d %s toevoegen.\n", remaining, noun)
	}

	writeExplanation(&b, s.Explanation)

	if len(apiIssues) > 0 {
		b.WriteString("\nJe api voldoet niet aan de eisen:\n")
		writeBullets(&b, apiIssues)
	}
	if len(backendIssues) > 0 {
		b.WriteString("\nJe backend voldoet niet aan de eisen:\n")
		writeBullets(&b, backendIssues)
	}

	verdict := domain.VerdictNoGo
	if enough && len(apiIssues) == 0 && len(backendIssues) == 0 {
		verdict = domain.VerdictGo
	}

	feedback.Body = b.String()
	feedback.VerdictBlock = verdictBlock(verdict, feedback.deadline, true)

	return Result{
		Verdict:     verdict,
		AutoVerdict: verdict,
		Feedback:    feedback,
		Checks: []Check{
			{Code: CheckFunctionalities, Passed: enough, Count: len(funcs), Rendered: true},
			{Code: CheckAPIIssues, Passed: len(apiIssues) == 0, Count: len(apiIssues), Rendered: len(apiIssues) > 0},
			{Code: CheckBackendIssues, Passed: len(backendIssues) == 0, Count: len(backendIssues), Rendered: len(backendIssues) > 0},
		},
	}
}

func writeExplanation(b *strings.Builder, explanation string) {
	explanation = strings.TrimSpace(explanation)
	if explanation == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(explanation)
	b.WriteString("\n\n")
}
