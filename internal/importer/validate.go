package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ideefase/internal/domain"
)

// ValidateSubmissionSchema checks the schema before conversion.
// Returns a slice of all validation errors found.
func ValidateSubmissionSchema(schema *SubmissionSchema) []error {
	var errs []error

	if _, err := domain.ParseVariant(schema.Variant); err != nil {
		errs = append(errs, fmt.Errorf("variant: %w", err))
	}
	if schema.Verdict != "" {
		if _, err := domain.ParseVerdict(schema.Verdict); err != nil {
			errs = append(errs, fmt.Errorf("verdict: %w", err))
		}
	}

	errs = append(errs, validateTextList("roles", schema.Roles)...)
	errs = append(errs, validateTextList("entities", schema.Entities)...)
	errs = append(errs, validateTextList("functionalities", schema.Functionalities)...)
	errs = append(errs, validateTextList("api_issues", schema.APIIssues)...)
	errs = append(errs, validateTextList("backend_issues", schema.BackendIssues)...)

	return errs
}

// validateTextList rejects list entries with embedded line breaks: each
// entry must stay one bullet in the feedback.
func validateTextList(field string, items TextList) []error {
	var errs []error
	for i, item := range items {
		if strings.ContainsAny(item, "\r\n") {
			errs = append(errs, fmt.Errorf("%s[%d]: entry contains a line break", field, i))
		}
	}
	return errs
}
