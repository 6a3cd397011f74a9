package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "terminal-menu"

// Paths contains the standard paths for terminal-menu data.
type Paths struct {
	Config string // ~/.config/terminal-menu
	State  string // ~/.local/state/terminal-menu
	Cache  string // ~/.cache/terminal-menu
}

// GetPaths returns the standard paths for terminal-menu data.
func GetPaths() *Paths {
	return &Paths{
		Config: filepath.Join(getEnvOrDefault("XDG_CONFIG_HOME", defaultConfigHome()), appName),
		State:  filepath.Join(getEnvOrDefault("XDG_STATE_HOME", defaultStateHome()), appName),
		Cache:  filepath.Join(getEnvOrDefault("XDG_CACHE_HOME", defaultCacheHome()), appName),
	}
}

// EnsurePaths creates all required directories.
func (p *Paths) EnsurePaths() error {
	for _, dir := range []string{p.Config, p.State, p.Cache} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// LogPath returns the path to the log file.
func (p *Paths) LogPath() string {
	return filepath.Join(p.State, appName+".log")
}

// GlobalConfigPath returns the path to the global config file.
func (p *Paths) GlobalConfigPath() string {
	return filepath.Join(p.Config, "config.json")
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultConfigHome() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("APPDATA")
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

func defaultStateHome() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("LOCALAPPDATA")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state")
}

func defaultCacheHome() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "cache")
	}
	return filepath.Join(os.Getenv("HOME"), ".cache")
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(directory string) string {
	return filepath.Join(directory, appName+".json")
}
