package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

// testApp wires an App with the default rules and a fake clipboard.
func testApp(t *testing.T) (*App, *fakeClipboard) {
	t.Helper()
	clip := &fakeClipboard{}
	return &App{
		Evaluate:        service.NewEvaluationService(domain.DefaultRules()),
		Clipboard:       clip,
		DefaultDeadline: "1 maart",
		IsInteractive:   func() bool { return false },
	}, clip
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- Root command ---

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	app, _ := testApp(t)
	app.RunProgram = func(tea.Model) error {
		t.Fatal("assistant must not start without a terminal")
		return nil
	}

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "check")
}

func TestRootCmd_InteractiveStartsAtForm(t *testing.T) {
	app, _ := testApp(t)
	app.IsInteractive = func() bool { return true }

	var got appModel
	app.RunProgram = func(m tea.Model) error {
		got = m.(appModel)
		return nil
	}

	_, err := executeCmd(t, app)
	require.NoError(t, err)
	require.Len(t, got.viewStack, 2)
	assert.Equal(t, ViewForm, got.activeView().ID())
	assert.Equal(t, "1 maart", got.state.Submission.Deadline)
}

func TestRootCmd_FileOpensReview(t *testing.T) {
	app, _ := testApp(t)
	app.IsInteractive = func() bool { return true }
	path := writeFile(t, "idee.yaml", "name: Sam\nvariant: Backend\nroles: [admin, klant]\n")

	var got appModel
	app.RunProgram = func(m tea.Model) error {
		got = m.(appModel)
		return nil
	}

	_, err := executeCmd(t, app, "--file", path)
	require.NoError(t, err)
	require.Len(t, got.viewStack, 1)
	assert.Equal(t, ViewReview, got.activeView().ID())
	assert.Equal(t, domain.VariantBackend, got.state.Submission.Variant)
	assert.Equal(t, "admin\nklant", got.state.Submission.Roles)
}

func TestRootCmd_RunProgramError(t *testing.T) {
	app, _ := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.RunProgram = func(tea.Model) error { return errors.New("no tty") }

	_, err := executeCmd(t, app)
	assert.EqualError(t, err, "no tty")
}

// --- check ---

func TestCheckCmd_BackendPlain(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "check", "--plain",
		"--variant", "backend", "--name", " Sam ",
		"--role", "admin", "--role", "klant",
		"--entity", "Order", "--entity", "Product", "--entity", "Review", "--entity", "Category",
	)
	require.NoError(t, err)

	assert.True(t, len(out) > 0)
	assert.Contains(t, out, "Beste Sam,\n\n")
	assert.Contains(t, out, "- admin\n- klant\n")
	assert.Contains(t, out, "Hiermee kom je op 6 entiteiten en voldoe je aan de eisen (minimaal 6, maximaal 7).")
	assert.Contains(t, out, "Je hebt een GO!\n")
	assert.NotContains(t, out, "FEEDBACK", "plain output has no box")
}

func TestCheckCmd_FrontendNoGoUsesDefaultDeadline(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "check", "--plain", "--name", "Sam",
		"--functionality", "Inloggen", "--functionality", "Zoeken")
	require.NoError(t, err)

	assert.Contains(t, out, "Je moet nog 2 functionaliteiten toevoegen.")
	assert.Contains(t, out, "Je hebt een NO GO!\nJe kan je aangepaste idee inleveren tot 1 maart.")
}

func TestCheckCmd_ManualVerdict(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "check", "--plain", "--name", "Sam",
		"--functionality", "Inloggen", "--verdict", "GO")
	require.NoError(t, err)

	assert.Contains(t, out, "Je hebt een GO!")
	assert.NotContains(t, out, "NO GO")
}

func TestCheckCmd_FormattedOutput(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "check", "--name", "Sam", "--functionality", "Inloggen")
	require.NoError(t, err)

	assert.Contains(t, out, "FEEDBACK")
	assert.Contains(t, out, "NO GO")
	assert.Contains(t, out, "tekens")
}

func TestCheckCmd_FlagsOverrideFile(t *testing.T) {
	app, _ := testApp(t)
	path := writeFile(t, "idee.json", `{
  "name": "Sam",
  "variant": "Fullstack",
  "roles": "admin\nklant",
  "entities": ["Order", "Product", "Review"],
  "deadline": "3 april"
}`)

	out, err := executeCmd(t, app, "check", "--plain", "--file", path, "--name", "Noor")
	require.NoError(t, err)

	assert.Contains(t, out, "Beste Noor,")
	assert.Contains(t, out, "Hiermee kom je op 5 entiteiten en voldoe je aan de eisen (minimaal 5, maximaal 6).")
	assert.Contains(t, out, "Je hebt een GO!")
}

func TestCheckCmd_PresenceFlags(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "check", "--plain", "--variant", "backend", "--name", "Sam",
		"--role", "admin", "--role", "klant",
		"--entity", "Order",
		"--user-explicit=false", "--security-explicit=false", "--security-implicit")
	require.NoError(t, err)

	assert.Contains(t, out, "Het is belangrijk dat je deze nog toevoegt:\n- user (inloggegevens)\n")
	assert.NotContains(t, out, "- security\n")
	assert.Contains(t, out, "Hiermee kom je op 1 entiteiten")
}

func TestCheckCmd_Copy(t *testing.T) {
	app, clip := testApp(t)

	out, err := executeCmd(t, app, "check", "--plain", "--copy", "--name", "Sam", "--functionality", "Inloggen")
	require.NoError(t, err)

	assert.Contains(t, clip.text, "Beste Sam,")
	assert.Contains(t, out, service.MsgCopied)
}

func TestCheckCmd_CopyFailure(t *testing.T) {
	app, clip := testApp(t)
	clip.err = errors.New("xclip not found")

	out, err := executeCmd(t, app, "check", "--plain", "--copy", "--name", "Sam")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xclip not found")
	assert.Contains(t, out, service.MsgCopyFailed)
}

func TestCheckCmd_InvalidVariant(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "check", "--variant", "mobile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mobile")
}

func TestCheckCmd_InvalidVerdict(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "check", "--verdict", "misschien")
	require.Error(t, err)
}

func TestCheckCmd_MissingFile(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "check", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading submission file")
}
