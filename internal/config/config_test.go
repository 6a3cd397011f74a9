package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// isolate points HOME and XDG dirs at a temp directory and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	for _, key := range []string{EnvConfig, EnvEnabled, EnvAutoEnter, EnvLogLevel, EnvFolders} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.EnabledConfigTypes)
	assert.Nil(t, cfg.AutoEnter)
	assert.True(t, cfg.AutoEnterEnabled())
}

func TestLoadGlobalJSONC(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "terminal-menu", "config.jsonc"), `{
		// only npm and make
		"enabledConfigTypes": ["package.json", "Makefile",],
		"autoEnter": false,
		"logLevel": "debug"
	}`)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{"package.json", "Makefile"}, cfg.EnabledConfigTypes)
	assert.False(t, cfg.AutoEnterEnabled())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEditorSettings(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".vscode", "settings.json"), `{
		// VS Code settings allow comments
		"editor.tabSize": 2,
		"terminalMenu.enabledConfigTypes": [".terminal-menu", "justfile"],
		"terminalMenu.autoEnter": false,
	}`)

	cfg, err := Load(project)
	require.NoError(t, err)

	assert.Equal(t, []string{".terminal-menu", "justfile"}, cfg.EnabledConfigTypes)
	assert.False(t, cfg.AutoEnterEnabled())
}

func TestLoadEditorSettingsNested(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".vscode", "settings.json"),
		`{"terminalMenu": {"enabledConfigTypes": ["mise.toml"]}}`)

	cfg, err := Load(project)
	require.NoError(t, err)
	assert.Equal(t, []string{"mise.toml"}, cfg.EnabledConfigTypes)
}

func TestLoadProjectOverridesGlobal(t *testing.T) {
	home := isolate(t)
	project := t.TempDir()
	writeFile(t, filepath.Join(home, ".config", "terminal-menu", "config.json"),
		`{"enabledConfigTypes": ["Makefile"], "folders": ["/global"]}`)
	writeFile(t, filepath.Join(project, "terminal-menu.yaml"), `
enabledConfigTypes:
  - package.json
folders:
  - ../sibling
watcher:
  debounceMs: 50
`)

	cfg, err := Load(project)
	require.NoError(t, err)

	assert.Equal(t, []string{"package.json"}, cfg.EnabledConfigTypes)
	assert.Equal(t, []string{"/global", "../sibling"}, cfg.Folders)
	require.NotNil(t, cfg.Watcher)
	assert.Equal(t, 50, cfg.Watcher.DebounceMs)
}

func TestLoadEmptyEnabledMeansAll(t *testing.T) {
	home := isolate(t)
	project := t.TempDir()
	writeFile(t, filepath.Join(home, ".config", "terminal-menu", "config.json"),
		`{"enabledConfigTypes": ["Makefile"]}`)
	writeFile(t, filepath.Join(project, "terminal-menu.json"), `{"enabledConfigTypes": []}`)

	cfg, err := Load(project)
	require.NoError(t, err)
	assert.NotNil(t, cfg.EnabledConfigTypes)
	assert.Empty(t, cfg.EnabledConfigTypes)
}

func TestLoadInvalidFileIsSkipped(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	writeFile(t, filepath.Join(project, "terminal-menu.json"), `{"autoEnter": `)
	writeFile(t, filepath.Join(project, "terminal-menu.yaml"), "autoEnter: false\n")

	cfg, err := Load(project)
	require.NoError(t, err)
	assert.False(t, cfg.AutoEnterEnabled())
}

func TestLoadExplicitConfigMustParse(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.json")
	writeFile(t, path, `not json`)
	t.Setenv(EnvConfig, path)

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadDotEnvAndEnvironment(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".env"),
		"TERMINAL_MENU_ENABLED=justfile, Makefile\nTERMINAL_MENU_AUTO_ENTER=false\nUNRELATED=1\n")

	cfg, err := Load(project)
	require.NoError(t, err)
	assert.Equal(t, []string{"justfile", "Makefile"}, cfg.EnabledConfigTypes)
	assert.False(t, cfg.AutoEnterEnabled())
	_, exported := os.LookupEnv("UNRELATED")
	assert.False(t, exported)

	t.Setenv(EnvAutoEnter, "true")
	t.Setenv(EnvLogLevel, "INFO")
	cfg, err = Load(project)
	require.NoError(t, err)
	assert.True(t, cfg.AutoEnterEnabled())
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	autoEnter := false
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	require.NoError(t, Save(&types.Config{EnabledConfigTypes: []string{"Makefile"}, AutoEnter: &autoEnter}, path))
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"Makefile"}, cfg.EnabledConfigTypes)
	assert.False(t, cfg.AutoEnterEnabled())
}

func TestUpdateKeepsOtherSettings(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "terminal-menu.json")
	writeFile(t, path, `{
  // kept
  "logLevel": "DEBUG",
  "folders": ["../api"],
}`)

	require.NoError(t, Update(path, func(c *types.Config) error {
		c.EnabledConfigTypes = []string{"justfile"}
		return nil
	}))

	t.Setenv(EnvConfig, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"justfile"}, cfg.EnabledConfigTypes)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, []string{"../api"}, cfg.Folders)
}

func TestUpdateMissingFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "new", "terminal-menu.json")

	require.NoError(t, Update(path, func(c *types.Config) error {
		off := false
		c.AutoEnter = &off
		return nil
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"autoEnter": false}`, string(data))
}

func TestResolveFolders(t *testing.T) {
	cfg := &types.Config{Folders: []string{"../api", "/srv/web", "/work/app", "../api/"}}

	assert.Equal(t,
		[]string{"/work/app", "/work/api", "/srv/web"},
		ResolveFolders("/work/app", cfg))
	assert.Equal(t, []string{"/work/app"}, ResolveFolders("/work/app", nil))
}

func TestGetPathsUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	paths := GetPaths()
	assert.Equal(t, filepath.Join("/xdg/config", "terminal-menu"), paths.Config)
	assert.Equal(t, filepath.Join("/xdg/state", "terminal-menu", "terminal-menu.log"), paths.LogPath())
}
