package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/seanodell/vscode-terminal-menu/internal/logging"
	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// Environment variables read by Load.
const (
	EnvConfig    = "TERMINAL_MENU_CONFIG"
	EnvEnabled   = "TERMINAL_MENU_ENABLED"
	EnvAutoEnter = "TERMINAL_MENU_AUTO_ENTER"
	EnvLogLevel  = "TERMINAL_MENU_LOG_LEVEL"
	EnvFolders   = "TERMINAL_MENU_FOLDERS"
)

// editorSection is the settings prefix used in .vscode/settings.json.
const editorSection = "terminalMenu"

var (
	globalFiles  = []string{"config.json", "config.jsonc", "config.yaml", "config.yml"}
	projectFiles = []string{appName + ".json", appName + ".jsonc", appName + ".yaml", appName + ".yml"}
)

// Load loads configuration from multiple sources (priority order):
// 1. Global config (~/.config/terminal-menu/)
// 2. Editor settings (.vscode/settings.json, terminalMenu.* keys)
// 3. Project config (terminal-menu.json/.jsonc/.yaml)
// 4. TERMINAL_MENU_CONFIG file
// 5. Project .env file (TERMINAL_MENU_* keys only)
// 6. Environment variables
func Load(directory string) (*types.Config, error) {
	config := &types.Config{}

	// Track loaded files to avoid duplicates
	loaded := make(map[string]bool)

	loadOnce := func(path string) {
		absPath, err := filepath.Abs(path)
		if err != nil || loaded[absPath] {
			return
		}
		err = loadConfigFile(path, config)
		switch {
		case err == nil:
			loaded[absPath] = true
		case !errors.Is(err, fs.ErrNotExist):
			logging.Warn().Err(err).Str("path", path).Msg("ignoring invalid config file")
		}
	}

	// 1. Global config
	globalPath := GetPaths().Config
	for _, name := range globalFiles {
		loadOnce(filepath.Join(globalPath, name))
	}

	// 2-3. Project config
	if directory != "" {
		if err := loadEditorSettings(filepath.Join(directory, ".vscode", "settings.json"), config); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logging.Warn().Err(err).Str("directory", directory).Msg("ignoring invalid editor settings")
		}
		for _, name := range projectFiles {
			loadOnce(filepath.Join(directory, name))
		}
	}

	// 4. Explicit config file must load
	if configPath := os.Getenv(EnvConfig); configPath != "" {
		if err := loadConfigFile(configPath, config); err != nil {
			return nil, fmt.Errorf("load %s: %w", configPath, err)
		}
	}

	// 5. Project .env
	if directory != "" {
		if values, err := godotenv.Read(filepath.Join(directory, ".env")); err == nil {
			applyEnvOverrides(config, func(key string) (string, bool) {
				v, ok := values[key]
				return v, ok
			})
		}
	}

	// 6. Environment variables (highest priority)
	applyEnvOverrides(config, os.LookupEnv)

	return config, nil
}

// loadConfigFile loads a single JSON, JSONC or YAML config file.
func loadConfigFile(path string, config *types.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fileConfig types.Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
	default:
		// Strip JSONC comments and trailing commas
		if err := json.Unmarshal(jsonc.ToJSON(data), &fileConfig); err != nil {
			return fmt.Errorf("parse json: %w", err)
		}
	}

	mergeConfig(config, &fileConfig)
	return nil
}

// loadEditorSettings reads terminalMenu.* keys from a VS Code settings file.
// Both flat ("terminalMenu.autoEnter") and nested keys are accepted.
func loadEditorSettings(path string, config *types.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("parse %s: invalid JSON", path)
	}

	setting := func(name string) gjson.Result {
		if r := gjson.GetBytes(data, editorSection+`\.`+name); r.Exists() {
			return r
		}
		return gjson.GetBytes(data, editorSection+"."+name)
	}

	var editor types.Config
	if r := setting("enabledConfigTypes"); r.IsArray() {
		editor.EnabledConfigTypes = []string{}
		for _, v := range r.Array() {
			editor.EnabledConfigTypes = append(editor.EnabledConfigTypes, v.String())
		}
	}
	if r := setting("autoEnter"); r.IsBool() {
		v := r.Bool()
		editor.AutoEnter = &v
	}

	mergeConfig(config, &editor)
	return nil
}

// mergeConfig merges source config into target.
func mergeConfig(target, source *types.Config) {
	if source.Schema != "" {
		target.Schema = source.Schema
	}
	// The enabled set is replaced, not merged, so a later source can narrow it.
	if source.EnabledConfigTypes != nil {
		target.EnabledConfigTypes = append([]string{}, source.EnabledConfigTypes...)
	}
	if source.AutoEnter != nil {
		v := *source.AutoEnter
		target.AutoEnter = &v
	}
	if len(source.Folders) > 0 {
		target.Folders = append(target.Folders, source.Folders...)
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
	}
	if source.Watcher != nil {
		w := *source.Watcher
		target.Watcher = &w
	}
}

// applyEnvOverrides applies TERMINAL_MENU_* overrides read through lookup.
func applyEnvOverrides(config *types.Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvEnabled); ok {
		config.EnabledConfigTypes = splitList(v, ",")
	}

	if v, ok := lookup(EnvAutoEnter); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			config.AutoEnter = &b
		} else {
			logging.Warn().Str("value", v).Msg(EnvAutoEnter + " is not a boolean")
		}
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		config.LogLevel = v
	}

	if v, ok := lookup(EnvFolders); ok {
		config.Folders = append(config.Folders, splitList(v, string(os.PathListSeparator))...)
	}
}

// splitList splits and trims a separated list, dropping empty entries.
func splitList(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Save saves the configuration to a file.
func Save(config *types.Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Update applies fn to the settings stored in path and saves the result as
// JSON. A missing file starts from empty settings.
func Update(path string, fn func(*types.Config) error) error {
	config := &types.Config{}
	if err := loadConfigFile(path, config); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := fn(config); err != nil {
		return err
	}
	return Save(config, path)
}

// ResolveFolders returns the working directory followed by the configured
// extra folders, made absolute relative to workDir and de-duplicated.
func ResolveFolders(workDir string, config *types.Config) []string {
	folders := []string{workDir}
	seen := map[string]bool{filepath.Clean(workDir): true}

	if config == nil {
		return folders
	}
	for _, f := range config.Folders {
		if !filepath.IsAbs(f) {
			f = filepath.Join(workDir, f)
		}
		f = filepath.Clean(f)
		if seen[f] {
			continue
		}
		seen[f] = true
		folders = append(folders, f)
	}
	return folders
}
