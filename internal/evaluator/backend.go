package evaluator

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ideefase/internal/domain"
)

// Names of the entities every Backend and Fullstack design needs.
const (
	EntityUser     = "user (inloggegevens)"
	EntitySecurity = "security"
)

// EvaluateBackend judges a Backend or Fullstack submission on its user roles
// and entities. Explicitly present user and security entities count towards
// the entity total; implicit presence only silences the reminder to add
// them. The returned feedback has no header.
func EvaluateBackend(s domain.Submission, rules domain.Rules) Result {
	variant := s.Variant
	if !variant.UsesEntityRules() {
		variant = domain.VariantBackend
	}
	bounds := rules.EntityBoundsFor(variant)
	feedback := Feedback{variant: variant, deadline: strings.TrimSpace(s.Deadline)}

	roles := splitLines(s.Roles)
	entities := splitLines(s.Entities)
	missing := missingEntities(s)

	total := len(entities)
	if s.UserExplicit {
		total++
	}
	if s.SecurityExplicit {
		total++
	}

	rolesOK := rules.RolesWithinBounds(len(roles))
	entitiesOK := bounds.Contains(total)

	var b strings.Builder
	if len(roles) > 0 {
		b.WriteString("\nUit jouw idee kan ik de volgende gebruikersrollen halen:\n")
		writeBullets(&b, roles)
		b.WriteString("\n")
		fmt.Fprintf(&b, "Hiermee voldoe je %saan de eis van minimaal %d en maximaal %d rollen.\n\n",
			negation(rolesOK), rules.MinRoles, rules.MaxRoles)
	}

	if len(entities) > 0 {
		b.WriteString("De volgende entiteiten (Klassen) herken ik:\n")
		writeBullets(&b, entities)
		b.WriteString("\n")
		if len(missing) > 0 {
			b.WriteString("Het is belangrijk dat je deze nog toevoegt:\n")
			writeBullets(&b, missing)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Hiermee kom je op %d entiteiten en voldoe je %saan de eisen (minimaal %d, maximaal %d).\n",
			total, negation(entitiesOK), bounds.Min, bounds.Max)
	}

	writeExplanation(&b, s.Explanation)

	verdict := domain.VerdictNoGo
	if rolesOK && entitiesOK {
		verdict = domain.VerdictGo
	}

	feedback.Body = b.String()
	feedback.VerdictBlock = verdictBlock(verdict, feedback.deadline, false)

	return Result{
		Verdict:     verdict,
		AutoVerdict: verdict,
		Feedback:    feedback,
		Checks: []Check{
			{Code: CheckRoles, Passed: rolesOK, Count: len(roles), Rendered: len(roles) > 0},
			{Code: CheckEntities, Passed: entitiesOK, Count: total, Rendered: len(entities) > 0},
		},
		MissingEntities: missing,
	}
}

// missingEntities lists the required entities with neither explicit nor
// implicit presence, in reminder order.
func missingEntities(s domain.Submission) []string {
	var missing []string
	if !s.UserExplicit && !s.UserImplicit {
		missing = append(missing, EntityUser)
	}
	if !s.SecurityExplicit && !s.SecurityImplicit {
		missing = append(missing, EntitySecurity)
	}
	return missing
}

func negation(ok bool) string {
	if ok {
		return ""
	}
	return "niet "
}
