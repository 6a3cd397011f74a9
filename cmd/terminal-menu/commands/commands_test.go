package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanodell/vscode-terminal-menu/internal/config"
	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// execute runs the root command with args in an isolated environment and
// returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	for _, key := range []string{config.EnvConfig, config.EnvEnabled, config.EnvAutoEnter, config.EnvLogLevel, config.EnvFolders} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	printLogs, logLevel, workDir, folders = false, "", "", nil
	listJSON, listEnabled = false, nil
	runIndex, runNoEnter, runDryRun, runEnabled = 0, false, false, nil
	configGlobal = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		".terminal-menu": "Say hi: echo hi\nfail: exit 3\n",
		"package.json":   `{"scripts":{"build":"tsc"}}`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestListJSON(t *testing.T) {
	dir := project(t)

	out, err := execute(t, "", "list", "--json", "-C", dir)
	require.NoError(t, err)

	var groups []types.FolderMenu
	require.NoError(t, json.Unmarshal([]byte(out), &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, dir, groups[0].Folder)

	items := groups[0].Items
	require.Len(t, items, 3)
	assert.Equal(t, "Say hi", items[0].Label)
	assert.Equal(t, "echo hi", items[0].Command)
	assert.Equal(t, ".terminal-menu", items[0].Source)
	assert.Equal(t, "npm: build", items[2].Label)
	assert.Equal(t, "npm run build", items[2].Command)
}

func TestListEmpty(t *testing.T) {
	out, err := execute(t, "", "list", "-C", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No terminal menu items found.")
}

func TestRunExecutesInFolder(t *testing.T) {
	dir := project(t)

	out, err := execute(t, "", "run", "-C", dir, "Say hi")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestRunExitStatus(t *testing.T) {
	dir := project(t)

	_, err := execute(t, "", "run", "-C", dir, "--index", "2")
	var exit ExitError
	require.True(t, AsExitError(err, &exit), "got %v", err)
	assert.Equal(t, 3, exit.Code)
}

func TestRunNoEnterPrintsCommand(t *testing.T) {
	dir := project(t)

	out, err := execute(t, "", "run", "-C", dir, "--no-enter", "build")
	require.NoError(t, err)
	assert.Equal(t, "npm run build\n", out)
}

func TestRunAutoEnterDisabledBySettings(t *testing.T) {
	dir := project(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "terminal-menu.json"), []byte(`{"autoEnter": false}`), 0644))

	out, err := execute(t, "", "run", "-C", dir, "Say hi")
	require.NoError(t, err)
	assert.Equal(t, "echo hi\n", out)
}

func TestRunPrompt(t *testing.T) {
	dir := project(t)

	out, err := execute(t, "3\n", "run", "-C", dir, "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "(cd "+dir+" && npm run build)\n", out)
}

func TestRunUsesFolderOfSelectedRecord(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	for _, dir := range []string{first, second} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".terminal-menu"), []byte("where: pwd\n"), 0644))
	}

	out, err := execute(t, "", "run", "-C", first, "--folder", second, "--index", "2")
	require.NoError(t, err)
	assert.Equal(t, second+"\n", out)

	out, err = execute(t, "", "run", "-C", first, "--folder", second, "where")
	require.NoError(t, err)
	assert.Equal(t, first+"\n", out)
}

func TestConfigSet(t *testing.T) {
	dir := project(t)

	_, err := execute(t, "", "config", "set", "-C", dir, "autoEnter", "false")
	require.NoError(t, err)
	_, err = execute(t, "", "config", "set", "-C", dir, "enabledConfigTypes", "package.json")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "terminal-menu.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"autoEnter": false, "enabledConfigTypes": ["package.json"]}`, string(data))

	out, err := execute(t, "", "run", "-C", dir, "build")
	require.NoError(t, err)
	assert.Equal(t, "npm run build\n", out)
}

func TestConfigSetRejectsUnknownValues(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "config", "set", "-C", dir, "enabledConfigTypes", "gradle")
	assert.ErrorContains(t, err, `unknown provider id "gradle"`)

	_, err = execute(t, "", "config", "set", "-C", dir, "autoEnter", "maybe")
	assert.Error(t, err)

	_, err = execute(t, "", "config", "set", "-C", dir, "color", "blue")
	assert.ErrorContains(t, err, "unknown setting")

	assert.NoFileExists(t, filepath.Join(dir, "terminal-menu.json"))
}

func TestProviders(t *testing.T) {
	out, err := execute(t, "", "providers", "-C", t.TempDir())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[1], ".terminal-menu"))
	assert.True(t, strings.HasPrefix(lines[5], "Makefile"))
}
