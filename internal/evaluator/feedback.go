package evaluator

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ideefase/internal/domain"
)

// Markers that open the verdict section of a rendered feedback text.
const (
	GoMarker   = "Je hebt een GO!"
	NoGoMarker = "Je hebt een NO GO!"
)

// NoFunctionalitiesMessage is the complete body returned for a Frontend
// submission without any functionalities.
const NoFunctionalitiesMessage = "Je hebt geen juiste functionaliteiten opgegeven. Lees de ideefase en de eindopdracht nog eens goed door.\n"

// Feedback keeps the parts of a feedback text apart until it is serialized,
// so a manual verdict can swap the verdict block without touching the rest.
type Feedback struct {
	Header       string
	Body         string
	VerdictBlock string

	variant  domain.Variant
	deadline string
}

// String serializes the feedback in display order.
func (f Feedback) String() string {
	return f.Header + f.Body + f.VerdictBlock
}

// WithVerdict returns a copy whose verdict block is rendered for v.
func (f Feedback) WithVerdict(v domain.Verdict) Feedback {
	f.VerdictBlock = verdictBlock(v, f.deadline, !f.variant.UsesEntityRules())
	return f
}

// ComposeHeader renders the salutation that precedes every feedback body.
func ComposeHeader(name string) string {
	return fmt.Sprintf("Beste %s,\n\n", name)
}

// verdictLines renders the verdict marker and, for NO GO, the resubmission
// sentence naming the deadline verbatim.
func verdictLines(v domain.Verdict, deadline string) string {
	if v == domain.VerdictGo {
		return GoMarker + "\n"
	}
	return NoGoMarker + "\n" +
		fmt.Sprintf("Je kan je aangepaste idee inleveren tot %s. Let op: Je moet een GO hebben om aan je eindopdracht te beginnen.\n", deadline)
}

// verdictBlock renders the closing section. Frontend feedback separates the
// verdict from the body with a blank line; Backend and Fullstack feedback
// do not.
func verdictBlock(v domain.Verdict, deadline string, leadingNewline bool) string {
	if leadingNewline {
		return "\n" + verdictLines(v, deadline)
	}
	return verdictLines(v, deadline)
}

// AutoSelect returns the verdict a rendered text announces: GO when it
// contains the GO marker, NOGO otherwise.
func AutoSelect(text string) domain.Verdict {
	if strings.Contains(text, GoMarker) {
		return domain.VerdictGo
	}
	return domain.VerdictNoGo
}

// ApplyManualOverride rewrites the verdict section of an already rendered
// text. Everything from the first verdict marker to the end is replaced by a
// fresh verdict for choice; text before the marker is kept as is. A nil
// choice leaves the text unchanged.
func ApplyManualOverride(rendered string, choice *domain.Verdict, deadline string) string {
	if choice == nil {
		return rendered
	}
	cut := len(rendered)
	for _, marker := range []string{GoMarker, NoGoMarker} {
		if i := strings.Index(rendered, marker); i >= 0 && i < cut {
			cut = i
		}
	}
	return rendered[:cut] + "\n" + verdictLines(*choice, deadline)
}
