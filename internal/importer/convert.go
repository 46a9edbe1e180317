package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ideefase/internal/domain"
)

// ToSubmission validates schema and converts it into a submission. All
// validation errors are reported together.
func ToSubmission(schema *SubmissionSchema) (*domain.Submission, error) {
	if errs := ValidateSubmissionSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid submission: %w", errors.Join(errs...))
	}

	variant, _ := domain.ParseVariant(schema.Variant)
	s := domain.NewSubmission(variant)
	s.Name = strings.TrimSpace(schema.Name)
	s.Roles = schema.Roles.Text()
	s.Entities = schema.Entities.Text()
	s.Functionalities = schema.Functionalities.Text()
	s.APIIssues = schema.APIIssues.Text()
	s.BackendIssues = schema.BackendIssues.Text()
	s.Explanation = schema.Explanation
	s.Deadline = strings.TrimSpace(schema.Deadline)

	s.UserExplicit, s.UserImplicit = schema.User.resolve()
	s.SecurityExplicit, s.SecurityImplicit = schema.Security.resolve()

	if schema.Verdict != "" {
		v, _ := domain.ParseVerdict(schema.Verdict)
		s.ManualVerdict = &v
	}
	return s, nil
}

// LoadSubmission reads, validates and converts a submission file.
func LoadSubmission(path string) (*domain.Submission, error) {
	schema, err := LoadSubmissionSchema(path)
	if err != nil {
		return nil, fmt.Errorf("reading submission file: %w", err)
	}
	return ToSubmission(schema)
}

func (p *PresenceImport) resolve() (explicit, implicit bool) {
	explicit = true
	if p == nil {
		return explicit, false
	}
	if p.Explicit != nil {
		explicit = *p.Explicit
	}
	if p.Implicit != nil {
		implicit = *p.Implicit
	}
	return explicit, implicit
}
