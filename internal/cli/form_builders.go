package cli

import (
	"slices"
	"strings"

	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/charmbracelet/huh"
)

// Presence checkbox keys.
const (
	presenceUserExplicit     = "user_explicit"
	presenceUserImplicit     = "user_implicit"
	presenceSecurityExplicit = "security_explicit"
	presenceSecurityImplicit = "security_implicit"
)

// submissionFields holds the form values bound to huh fields. Presence
// checkboxes are collected in one multi-select.
type submissionFields struct {
	name            string
	variant         domain.Variant
	roles           string
	entities        string
	functionalities string
	apiIssues       string
	backendIssues   string
	explanation     string
	deadline        string
	presence        []string
}

func fromSubmission(s domain.Submission) *submissionFields {
	f := &submissionFields{
		name:            s.Name,
		variant:         s.Variant,
		roles:           s.Roles,
		entities:        s.Entities,
		functionalities: s.Functionalities,
		apiIssues:       s.APIIssues,
		backendIssues:   s.BackendIssues,
		explanation:     s.Explanation,
		deadline:        s.Deadline,
	}
	if f.variant == "" {
		f.variant = domain.VariantFrontend
	}
	for k, on := range map[string]bool{
		presenceUserExplicit:     s.UserExplicit,
		presenceUserImplicit:     s.UserImplicit,
		presenceSecurityExplicit: s.SecurityExplicit,
		presenceSecurityImplicit: s.SecurityImplicit,
	} {
		if on {
			f.presence = append(f.presence, k)
		}
	}
	slices.Sort(f.presence)
	return f
}

// toSubmission builds a fresh record from the form. An edited submission
// always starts with the computed verdict.
func (f *submissionFields) toSubmission() domain.Submission {
	return domain.Submission{
		Name:             strings.TrimSpace(f.name),
		Variant:          f.variant,
		Roles:            f.roles,
		Entities:         f.entities,
		Functionalities:  f.functionalities,
		APIIssues:        f.apiIssues,
		BackendIssues:    f.backendIssues,
		Explanation:      f.explanation,
		Deadline:         strings.TrimSpace(f.deadline),
		UserExplicit:     slices.Contains(f.presence, presenceUserExplicit),
		UserImplicit:     slices.Contains(f.presence, presenceUserImplicit),
		SecurityExplicit: slices.Contains(f.presence, presenceSecurityExplicit),
		SecurityImplicit: slices.Contains(f.presence, presenceSecurityImplicit),
	}
}

// listText returns a multi-line input for newline-delimited list fields.
func listText(title, description string, value *string) *huh.Text {
	return huh.NewText().
		Title(title).
		Description(description).
		Lines(5).
		Value(value)
}

// submissionForm builds the themed form. Groups for the entity rules and the
// functionality rules are shown only for the variants that use them.
func submissionForm(f *submissionFields) *huh.Form {
	variantOptions := make([]huh.Option[domain.Variant], 0, len(domain.Variants))
	for _, v := range domain.Variants {
		variantOptions = append(variantOptions, huh.NewOption(string(v), v))
	}

	entityRules := func() bool { return f.variant.UsesEntityRules() }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Naam student").
				Value(&f.name),
			huh.NewSelect[domain.Variant]().
				Title("Variant").
				Options(variantOptions...).
				Value(&f.variant),
		),
		huh.NewGroup(
			listText("Rollen", "Eén rol per regel", &f.roles),
			listText("Entiteiten", "Eén entiteit per regel", &f.entities),
			huh.NewMultiSelect[string]().
				Title("User en security").
				Options(
					huh.NewOption("User expliciet genoemd", presenceUserExplicit),
					huh.NewOption("User impliciet aanwezig", presenceUserImplicit),
					huh.NewOption("Security expliciet genoemd", presenceSecurityExplicit),
					huh.NewOption("Security impliciet aanwezig", presenceSecurityImplicit),
				).
				Value(&f.presence),
		).WithHideFunc(func() bool { return !entityRules() }),
		huh.NewGroup(
			listText("Functionaliteiten", "Eén functionaliteit per regel", &f.functionalities),
			listText("API-problemen", "Waarom de API niet voldoet, één per regel", &f.apiIssues),
			listText("Backend-problemen", "Waarom de backend niet voldoet, één per regel", &f.backendIssues),
		).WithHideFunc(entityRules),
		huh.NewGroup(
			huh.NewText().
				Title("Toelichting").
				Description("Wordt letterlijk in de feedback opgenomen").
				Lines(4).
				Value(&f.explanation),
			huh.NewInput().
				Title("Deadline herindiening").
				Placeholder("bijv. 1 maart").
				Value(&f.deadline),
		),
	).WithTheme(ideefaseHuhTheme()).WithShowHelp(false)
}
