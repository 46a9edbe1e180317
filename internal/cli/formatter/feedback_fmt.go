package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ideefase/internal/contract"
	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/evaluator"
)

var checkLabels = map[evaluator.CheckCode]string{
	evaluator.CheckFunctionalities: "Functionaliteiten",
	evaluator.CheckAPIIssues:       "API-problemen",
	evaluator.CheckBackendIssues:   "Backend-problemen",
	evaluator.CheckRoles:           "Rollen",
	evaluator.CheckEntities:        "Entiteiten",
}

// FormatCheck renders one rule outcome, e.g. "✔ Rollen: 2".
func FormatCheck(c evaluator.Check) string {
	label := checkLabels[c.Code]
	if label == "" {
		label = string(c.Code)
	}
	line := fmt.Sprintf("%s %s: %d", Mark(c.Passed), label, c.Count)
	if !c.Rendered {
		line += Dim(" (niet in tekst)")
	}
	return line
}

// FormatSummary renders the verdict badge, variant, rule outcomes and
// character count that accompany a feedback text.
func FormatSummary(variant domain.Variant, resp *contract.EvaluateResponse) string {
	var b strings.Builder
	r := resp.Result

	fmt.Fprintf(&b, "%s  %s  %s\n", VerdictBadge(r.Verdict, r.Overridden), StyleBlue.Render(string(variant)), Dim(CharCount(resp.CharCount)))
	if r.Overridden && r.AutoVerdict != r.Verdict {
		b.WriteString(Dim(fmt.Sprintf("automatisch: %s", r.AutoVerdict.Label())))
		b.WriteString("\n")
	}
	for _, c := range r.Checks {
		b.WriteString(FormatCheck(c))
		b.WriteString("\n")
	}
	if len(r.MissingEntities) > 0 {
		b.WriteString(StyleYellow.Render("Nog toevoegen: " + strings.Join(r.MissingEntities, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatFeedback renders the feedback text in a box followed by its summary.
func FormatFeedback(variant domain.Variant, resp *contract.EvaluateResponse) string {
	return RenderBox("Feedback", strings.TrimRight(resp.Text, "\n")) + "\n" + FormatSummary(variant, resp)
}
