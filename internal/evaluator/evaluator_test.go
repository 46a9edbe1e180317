package evaluator

import (
	"strings"
	"testing"

	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_Idempotent(t *testing.T) {
	inputs := []domain.Submission{
		testutil.NewTestSubmission(domain.VariantFrontend),
		testutil.NewTestSubmission(domain.VariantFrontend, testutil.WithFunctionalities(testutil.Lines("F", 4)...)),
		testutil.NewTestSubmission(domain.VariantBackend, testutil.WithRoles("a", "b"), testutil.WithEntities("X")),
		testutil.NewTestSubmission(domain.VariantFullstack, testutil.WithManualVerdict(domain.VerdictGo)),
	}
	for _, s := range inputs {
		first := Evaluate(s, domain.DefaultRules())
		second := Evaluate(s, domain.DefaultRules())
		assert.Equal(t, first, second)
	}
}

func TestEvaluate_UnknownVariantJudgedAsFrontend(t *testing.T) {
	s := testutil.NewTestSubmission(domain.Variant("Mobile"),
		testutil.WithFunctionalities(testutil.Lines("F", 4)...),
	)
	r := Evaluate(s, domain.DefaultRules())
	assert.Equal(t, domain.VerdictGo, r.Verdict)
	assert.Contains(t, r.Text(), "functionaliteiten halen")
}

func TestEvaluate_HeaderUsesTrimmedName(t *testing.T) {
	s := testutil.NewTestSubmission(domain.VariantFrontend, testutil.WithName("  Noor "))
	r := Evaluate(s, domain.DefaultRules())
	assert.True(t, strings.HasPrefix(r.Text(), "Beste Noor,\n\n"))
	assert.Equal(t, "Beste Noor,\n\n", ComposeHeader("Noor"))
}

func TestEvaluate_ManualVerdictReplacesBlock(t *testing.T) {
	s := testutil.NewTestSubmission(domain.VariantFrontend,
		testutil.WithFunctionalities("Inloggen"),
		testutil.WithManualVerdict(domain.VerdictGo),
	)

	r := Evaluate(s, domain.DefaultRules())

	assert.True(t, r.Overridden)
	assert.Equal(t, domain.VerdictGo, r.Verdict)
	assert.Equal(t, domain.VerdictNoGo, r.AutoVerdict)
	assert.True(t, strings.HasSuffix(r.Text(), "Je moet nog 3 functionaliteiten toevoegen.\n\nJe hebt een GO!\n"))
	assert.NotContains(t, r.Text(), NoGoMarker)
}

func TestEvaluate_ManualVerdictMatchingAutoIsStable(t *testing.T) {
	base := testutil.NewTestSubmission(domain.VariantBackend,
		testutil.WithRoles("admin", "klant"),
		testutil.WithEntities(testutil.Lines("Entiteit", 4)...),
	)
	auto := Evaluate(base, domain.DefaultRules())

	goVerdict := domain.VerdictGo
	manual := Evaluate(base.WithVerdict(&goVerdict), domain.DefaultRules())

	assert.Equal(t, auto.Text(), manual.Text())
}

func TestEvaluate_ManualNoGoOnEmptyFrontendAppendsVerdict(t *testing.T) {
	s := testutil.NewTestSubmission(domain.VariantFrontend, testutil.WithManualVerdict(domain.VerdictNoGo))

	r := Evaluate(s, domain.DefaultRules())

	assert.Equal(t, "Beste Sam,\n\n"+NoFunctionalitiesMessage+"\nJe hebt een NO GO!\n"+resubmitSentence, r.Text())
}

func TestApplyManualOverride_ReplacesOnlyVerdictSection(t *testing.T) {
	s := testutil.NewTestSubmission(domain.VariantFrontend,
		testutil.WithFunctionalities("Inloggen", "Zoeken"),
		testutil.WithAPIIssues("Geen paginering"),
	)
	rendered := Evaluate(s, domain.DefaultRules()).Text()
	idx := strings.Index(rendered, NoGoMarker)
	assert.Greater(t, idx, 0)

	choice := domain.VerdictGo
	out := ApplyManualOverride(rendered, &choice, "1 maart")

	assert.Equal(t, rendered[:idx]+"\n"+GoMarker+"\n", out)
	assert.Contains(t, out, "- Inloggen\n- Zoeken\n")
	assert.Contains(t, out, "- Geen paginering\n")
	assert.Equal(t, domain.VerdictGo, AutoSelect(out))
}

func TestApplyManualOverride_GoToNoGo(t *testing.T) {
	out := ApplyManualOverride("Beste Sam,\n\nJe hebt een GO!\n", ptr(domain.VerdictNoGo), "vrijdag")
	assert.Equal(t, "Beste Sam,\n\n\nJe hebt een NO GO!\nJe kan je aangepaste idee inleveren tot vrijdag. Let op: Je moet een GO hebben om aan je eindopdracht te beginnen.\n", out)
}

func TestApplyManualOverride_NoMarkerAppends(t *testing.T) {
	out := ApplyManualOverride("Beste Sam,\n\n"+NoFunctionalitiesMessage, ptr(domain.VerdictGo), "")
	assert.Equal(t, "Beste Sam,\n\n"+NoFunctionalitiesMessage+"\nJe hebt een GO!\n", out)
}

func TestApplyManualOverride_NilChoiceIsNoop(t *testing.T) {
	in := "Beste Sam,\n\nJe hebt een GO!\n"
	assert.Equal(t, in, ApplyManualOverride(in, nil, "vrijdag"))
}

func TestAutoSelect(t *testing.T) {
	assert.Equal(t, domain.VerdictGo, AutoSelect("...\nJe hebt een GO!\n"))
	assert.Equal(t, domain.VerdictNoGo, AutoSelect("...\nJe hebt een NO GO!\n"))
	assert.Equal(t, domain.VerdictNoGo, AutoSelect(""))
}

func ptr(v domain.Verdict) *domain.Verdict { return &v }
