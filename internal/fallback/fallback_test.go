package fallback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgvSubstitutesPlaceholder(t *testing.T) {
	t.Parallel()

	argv, err := Argv("code --wait {}", "/tmp/COMMIT_EDITMSG")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", "/tmp/COMMIT_EDITMSG"}, argv)
}

func TestArgvAppendsWithoutPlaceholder(t *testing.T) {
	t.Parallel()

	argv, err := Argv("vi", "/tmp/file with spaces")
	require.NoError(t, err)
	assert.Equal(t, []string{"vi", "/tmp/file with spaces"}, argv)
}

func TestArgvQuotedTemplate(t *testing.T) {
	t.Parallel()

	argv, err := Argv(`emacs --eval '(some lisp)' {}`, "/tmp/f")
	require.NoError(t, err)
	assert.Equal(t, []string{"emacs", "--eval", "(some lisp)", "/tmp/f"}, argv)
}

func TestArgvEmptyTemplate(t *testing.T) {
	t.Parallel()

	_, err := Argv("", "/tmp/f")
	assert.ErrorIs(t, err, ErrLaunch)

	_, err = Argv("   ", "/tmp/f")
	assert.ErrorIs(t, err, ErrLaunch)
}

func TestArgvUnbalancedQuote(t *testing.T) {
	t.Parallel()

	_, err := Argv("vi '", "/tmp/f")
	assert.ErrorIs(t, err, ErrLaunch)
}

func TestRunPropagatesExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	code, err := Run(`sh -c "exit 7"`, path)
	require.NoError(t, err)
	assert.Equal(t, 7, code)

	code, err = Run("true", path)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRunMissingExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target")
	require.NoError(t, os.WriteFile(path, []byte("untouched"), 0o644))

	code, err := Run("definitely-not-an-editor-3f9c", path)
	assert.ErrorIs(t, err, ErrLaunch)
	assert.NotZero(t, code)

	// the target must be left alone on launch failure
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "untouched", string(data))
}
