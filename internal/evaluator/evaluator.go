// Package evaluator judges a project-idea submission against the idea-phase
// thresholds and composes the feedback text sent back to the student.
//
// Everything here is a pure function of the submission and the rules: no
// I/O, no clock, no shared state.
package evaluator

import (
	"strings"

	"github.com/alexanderramin/ideefase/internal/domain"
)

type CheckCode string

const (
	CheckFunctionalities CheckCode = "FUNCTIONALITIES"
	CheckAPIIssues       CheckCode = "API_ISSUES"
	CheckBackendIssues   CheckCode = "BACKEND_ISSUES"
	CheckRoles           CheckCode = "ROLES"
	CheckEntities        CheckCode = "ENTITIES"
)

// Check is the outcome of a single rule.
type Check struct {
	Code   CheckCode
	Passed bool
	// Count is the number the rule was judged on: lines for functionalities
	// and roles, the computed total for entities, issue lines otherwise.
	Count int
	// Rendered is false when the rule was judged but had no itemized block
	// in the feedback (empty roles or entities field).
	Rendered bool
}

// Result is the outcome of one evaluation.
type Result struct {
	// Verdict is the verdict shown to the student: the manual choice when
	// one was given, the computed verdict otherwise.
	Verdict     domain.Verdict
	AutoVerdict domain.Verdict
	Overridden  bool
	Feedback    Feedback
	Checks      []Check
	// MissingEntities lists required entities the student has not mentioned
	// either explicitly or implicitly.
	MissingEntities []string
}

// Text returns the full feedback text.
func (r Result) Text() string {
	return r.Feedback.String()
}

// Check returns the outcome for code, if that rule was evaluated.
func (r Result) Check(code CheckCode) (Check, bool) {
	for _, c := range r.Checks {
		if c.Code == code {
			return c, true
		}
	}
	return Check{}, false
}

// Evaluate judges s with rules and renders the complete feedback, header
// included. Backend and Fullstack submissions are judged on roles and
// entities; any other variant is judged as Frontend. A manual verdict on the
// submission replaces the computed verdict block.
func Evaluate(s domain.Submission, rules domain.Rules) Result {
	var r Result
	if s.Variant.UsesEntityRules() {
		r = EvaluateBackend(s, rules)
	} else {
		r = EvaluateFrontend(s, rules)
	}
	r.Feedback.Header = ComposeHeader(strings.TrimSpace(s.Name))

	if s.ManualVerdict != nil {
		r.Feedback = r.Feedback.WithVerdict(*s.ManualVerdict)
		r.Verdict = *s.ManualVerdict
		r.Overridden = true
	}
	return r
}
