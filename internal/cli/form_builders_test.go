package cli

import (
	"testing"

	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSubmissionFields_RoundTripKeepsValues(t *testing.T) {
	s := testutil.NewTestSubmission(domain.VariantFullstack,
		testutil.WithRoles("admin", "klant"),
		testutil.WithEntities("Order"),
		testutil.WithUser(false, true),
		testutil.WithSecurity(true, false),
		testutil.WithExplanation("Mooi idee."),
	)

	got := fromSubmission(s).toSubmission()
	assert.Equal(t, s, got)
}

func TestSubmissionFields_PresenceFromCheckboxes(t *testing.T) {
	f := fromSubmission(*domain.NewSubmission(domain.VariantBackend))
	assert.Equal(t, []string{presenceSecurityExplicit, presenceUserExplicit}, f.presence)

	f.presence = []string{presenceUserImplicit}
	got := f.toSubmission()
	assert.False(t, got.UserExplicit)
	assert.True(t, got.UserImplicit)
	assert.False(t, got.SecurityExplicit)
	assert.False(t, got.SecurityImplicit)
}

func TestSubmissionFields_ClearsManualVerdictAndTrims(t *testing.T) {
	s := testutil.NewTestSubmission(domain.VariantFrontend,
		testutil.WithManualVerdict(domain.VerdictGo),
		testutil.WithName("  Sam  "),
		testutil.WithDeadline(" 1 maart "),
	)

	got := fromSubmission(s).toSubmission()
	assert.Nil(t, got.ManualVerdict)
	assert.Equal(t, "Sam", got.Name)
	assert.Equal(t, "1 maart", got.Deadline)
}

func TestSubmissionFields_EmptyVariantDefaultsToFrontend(t *testing.T) {
	f := fromSubmission(domain.Submission{})
	assert.Equal(t, domain.VariantFrontend, f.variant)
}
