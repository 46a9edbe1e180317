package importer

import (
	"testing"

	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrBool(b bool) *bool { return &b }

func TestToSubmission_Defaults(t *testing.T) {
	s, err := ToSubmission(&SubmissionSchema{Name: "  Sam  "})
	require.NoError(t, err)

	assert.Equal(t, "Sam", s.Name)
	assert.Equal(t, domain.VariantFrontend, s.Variant)
	assert.True(t, s.UserExplicit)
	assert.True(t, s.SecurityExplicit)
	assert.False(t, s.UserImplicit)
	assert.False(t, s.SecurityImplicit)
	assert.Nil(t, s.ManualVerdict)
}

func TestToSubmission_FullSchema(t *testing.T) {
	s, err := ToSubmission(&SubmissionSchema{
		Name:        "Noor",
		Variant:     "fullstack",
		Roles:       TextList{"admin", "klant"},
		Entities:    TextList{"Order", "", "Product"},
		Explanation: "Mooi idee",
		Deadline:    " 1 maart ",
		User:        &PresenceImport{Explicit: ptrBool(false), Implicit: ptrBool(true)},
		Security:    &PresenceImport{Implicit: ptrBool(true)},
		Verdict:     "no go",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.VariantFullstack, s.Variant)
	assert.Equal(t, "admin\nklant", s.Roles)
	assert.Equal(t, "Order\n\nProduct", s.Entities)
	assert.Equal(t, "1 maart", s.Deadline)
	assert.False(t, s.UserExplicit)
	assert.True(t, s.UserImplicit)
	assert.True(t, s.SecurityExplicit)
	assert.True(t, s.SecurityImplicit)
	require.NotNil(t, s.ManualVerdict)
	assert.Equal(t, domain.VerdictNoGo, *s.ManualVerdict)
}

func TestToSubmission_CollectsValidationErrors(t *testing.T) {
	_, err := ToSubmission(&SubmissionSchema{
		Variant: "mobile",
		Verdict: "misschien",
		Roles:   TextList{"admin\nklant"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variant:")
	assert.Contains(t, err.Error(), "verdict:")
	assert.Contains(t, err.Error(), "roles[0]: entry contains a line break")
}

func TestLoadSubmission_YAMLFile(t *testing.T) {
	path := writeFile(t, "idee.yaml", "name: Sam\nvariant: Backend\nroles: [admin, klant]\n")

	s, err := LoadSubmission(path)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantBackend, s.Variant)
	assert.Equal(t, "admin\nklant", s.Roles)
}

func TestLoadSubmission_WrapsReadErrors(t *testing.T) {
	path := writeFile(t, "idee.json", "{not json")

	_, err := LoadSubmission(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading submission file")
}

func TestLoadSubmission_CRLFListString(t *testing.T) {
	path := writeFile(t, "idee.json", `{"name": "Sam", "functionalities": "Inloggen\r\nZoeken"}`)

	s, err := LoadSubmission(path)
	require.NoError(t, err)
	assert.Equal(t, "Inloggen\nZoeken", s.Functionalities)
}
