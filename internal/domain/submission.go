package domain

// Submission is the record a form reader builds from the current field
// values. List fields hold newline-delimited text exactly as typed.
type Submission struct {
	Name    string
	Variant Variant

	Roles           string
	Entities        string
	Functionalities string
	APIIssues       string
	BackendIssues   string
	Explanation     string
	Deadline        string

	UserExplicit     bool
	UserImplicit     bool
	SecurityExplicit bool
	SecurityImplicit bool

	// ManualVerdict replaces the computed verdict when set.
	ManualVerdict *Verdict
}

// NewSubmission returns a blank submission in the form's reset state:
// user and security are marked as explicitly present.
func NewSubmission(variant Variant) *Submission {
	return &Submission{
		Variant:          variant,
		UserExplicit:     true,
		SecurityExplicit: true,
	}
}

// Reset clears every field back to the form's reset state. The deadline is
// kept when keepDeadline is true so a reviewer can process a batch of
// submissions with the same resubmission date.
func (s *Submission) Reset(keepDeadline bool) {
	deadline := s.Deadline
	*s = *NewSubmission(s.Variant)
	if keepDeadline {
		s.Deadline = deadline
	}
}

// WithVerdict returns a copy with the manual verdict set; nil clears it.
func (s Submission) WithVerdict(v *Verdict) Submission {
	if v != nil {
		c := *v
		v = &c
	}
	s.ManualVerdict = v
	return s
}
