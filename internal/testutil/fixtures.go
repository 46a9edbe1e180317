package testutil

import (
	"strings"

	"github.com/alexanderramin/ideefase/internal/domain"
)

// SubmissionOption customises a test submission.
type SubmissionOption func(*domain.Submission)

func WithName(name string) SubmissionOption {
	return func(s *domain.Submission) {
		s.Name = name
	}
}

func WithRoles(roles ...string) SubmissionOption {
	return func(s *domain.Submission) {
		s.Roles = strings.Join(roles, "\n")
	}
}

func WithEntities(entities ...string) SubmissionOption {
	return func(s *domain.Submission) {
		s.Entities = strings.Join(entities, "\n")
	}
}

func WithFunctionalities(funcs ...string) SubmissionOption {
	return func(s *domain.Submission) {
		s.Functionalities = strings.Join(funcs, "\n")
	}
}

func WithAPIIssues(issues ...string) SubmissionOption {
	return func(s *domain.Submission) {
		s.APIIssues = strings.Join(issues, "\n")
	}
}

func WithBackendIssues(issues ...string) SubmissionOption {
	return func(s *domain.Submission) {
		s.BackendIssues = strings.Join(issues, "\n")
	}
}

func WithExplanation(text string) SubmissionOption {
	return func(s *domain.Submission) {
		s.Explanation = text
	}
}

func WithDeadline(deadline string) SubmissionOption {
	return func(s *domain.Submission) {
		s.Deadline = deadline
	}
}

// WithUser sets the explicit and implicit presence of the user entity.
func WithUser(explicit, implicit bool) SubmissionOption {
	return func(s *domain.Submission) {
		s.UserExplicit = explicit
		s.UserImplicit = implicit
	}
}

// WithSecurity sets the explicit and implicit presence of the security entity.
func WithSecurity(explicit, implicit bool) SubmissionOption {
	return func(s *domain.Submission) {
		s.SecurityExplicit = explicit
		s.SecurityImplicit = implicit
	}
}

func WithManualVerdict(v domain.Verdict) SubmissionOption {
	return func(s *domain.Submission) {
		s.ManualVerdict = &v
	}
}

// NewTestSubmission returns a submission for variant in the form's reset
// state, named "Sam" with deadline "1 maart", then applies opts.
func NewTestSubmission(variant domain.Variant, opts ...SubmissionOption) domain.Submission {
	s := domain.NewSubmission(variant)
	s.Name = "Sam"
	s.Deadline = "1 maart"
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Lines returns n labelled entries such as "Order A", "Order B".
func Lines(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + " " + string(rune('A'+i))
	}
	return out
}
