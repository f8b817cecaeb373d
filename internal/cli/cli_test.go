package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GriffinCanCode/AgentOS/desktop/internal/shared/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHome points AGENTOS_HOME at a fresh, symlink-free temp directory.
func setupHome(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	home := filepath.Join(dir, "home", "alice")
	require.NoError(t, os.MkdirAll(home, 0o755))

	t.Setenv("AGENTOS_HOME", home)
	t.Setenv("AGENTOS_ROOT", "")
	t.Setenv("LOG_LEVEL", "error")
	return home
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestResolve(t *testing.T) {
	home := setupHome(t)

	out, _, err := run(t, "resolve", "~", "~/docs", "/etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, []string{home, home + "/docs", "/etc/hosts"}, lines(out))
}

func TestMkdirAndExists(t *testing.T) {
	home := setupHome(t)

	out, _, err := run(t, "mkdir", "~/project", "src")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "project", "src")+"\n", out)
	assert.DirExists(t, filepath.Join(home, "project", "src"))

	out, _, err = run(t, "exists", "~/project/src", "~/nope")
	require.NoError(t, err)
	assert.Equal(t, []string{
		home + "/project/src\ttrue",
		home + "/nope\tfalse",
	}, lines(out))

	out, _, err = run(t, "exists", "--strict", "~/nope")
	require.NoError(t, err)
	assert.Equal(t, home+"/nope\tfalse\n", out)
}

func TestMkdirOverFile(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "plain"), nil, 0o644))

	_, stderr, err := run(t, "mkdir", "~/plain", "sub")
	require.Error(t, err)
	assert.True(t, paths.IsKind(err, paths.KindIOError))
	assert.Contains(t, stderr, "target-dir="+filepath.Join(home, "plain", "sub"))
}

func TestLayoutEnsure(t *testing.T) {
	home := setupHome(t)

	out, _, err := run(t, "layout")
	require.NoError(t, err)
	for _, line := range lines(out) {
		assert.True(t, strings.HasSuffix(line, "missing"), line)
	}

	out, _, err = run(t, "layout", "--ensure", "--app", "notes")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 14)
	for _, line := range got {
		assert.True(t, strings.HasSuffix(line, "ok"), line)
	}
	assert.DirExists(t, filepath.Join(home, ".agentos", "user", "documents"))
	assert.DirExists(t, filepath.Join(home, ".agentos", "apps", "notes", "config"))
}

func TestLayoutRootFromEnvironment(t *testing.T) {
	home := setupHome(t)
	t.Setenv("AGENTOS_ROOT", "~/.custom")

	_, _, err := run(t, "layout", "--ensure")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(home, ".custom", "system"))

	_, _, err = run(t, "layout", "--ensure", "--root", "~/.flag")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(home, ".flag", "tmp"))
}

func TestLayoutRejectsBadAppID(t *testing.T) {
	setupHome(t)

	_, _, err := run(t, "layout", "--ensure", "--app", "../escape")
	assert.Error(t, err)
}

func TestChdirAndCwd(t *testing.T) {
	home := setupHome(t)
	chdirForTest(t, home)

	out, _, err := run(t, "chdir", "--create", "~/work")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "work")+"\n", out)

	out, _, err = run(t, "cwd")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "work")+"\n", out)

	_, _, err = run(t, "chdir", "~/missing")
	require.Error(t, err)
	assert.True(t, paths.IsKind(err, paths.KindNotFound))
}

func TestCanonical(t *testing.T) {
	home := setupHome(t)
	target := filepath.Join(home, "real")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(home, "link")))

	out, _, err := run(t, "canonical", "~/link")
	require.NoError(t, err)
	assert.Equal(t, target+"\n", out)

	_, _, err = run(t, "canonical", "~/missing")
	require.Error(t, err)
	assert.True(t, paths.IsKind(err, paths.KindNotFound))
}

func TestMetricsFlag(t *testing.T) {
	setupHome(t)

	_, stderr, err := run(t, "--metrics", "exists", "~")
	require.NoError(t, err)
	assert.Contains(t, stderr, `desktop_path_operations_total{op="exists",status="success"} 1`)

	t.Setenv("METRICS_ENABLED", "false")
	_, stderr, err = run(t, "--metrics", "exists", "~")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "path_operations_total")
}

func TestInvalidConfiguration(t *testing.T) {
	setupHome(t)

	_, _, err := run(t, "--log-level", "loud", "resolve", "~")
	assert.Error(t, err)

	t.Setenv("AGENTOS_DIR_PERM", "999")
	_, _, err = run(t, "resolve", "~")
	assert.Error(t, err)
}
