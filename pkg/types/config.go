package types

// Config represents the terminal menu settings.
// Field names match the terminalMenu.* editor settings.
type Config struct {
	// Schema reference (for editor support)
	Schema string `json:"$schema,omitempty" yaml:"$schema,omitempty"`

	// Provider ids to run. Empty means all registered providers.
	EnabledConfigTypes []string `json:"enabledConfigTypes,omitempty" yaml:"enabledConfigTypes,omitempty"`

	// Execute the selected command immediately instead of only printing it.
	AutoEnter *bool `json:"autoEnter,omitempty" yaml:"autoEnter,omitempty"`

	// Additional project roots scanned alongside the working directory
	Folders []string `json:"folders,omitempty" yaml:"folders,omitempty"`

	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	Watcher *WatcherConfig `json:"watcher,omitempty" yaml:"watcher,omitempty"`
}

// WatcherConfig configures file watching for the watch command.
type WatcherConfig struct {
	// DebounceMs coalesces bursts of file events. Zero uses the default.
	DebounceMs int `json:"debounceMs,omitempty" yaml:"debounceMs,omitempty"`
}

// AutoEnterEnabled reports whether selected commands should run immediately.
// Defaults to true when unset.
func (c *Config) AutoEnterEnabled() bool {
	if c == nil || c.AutoEnter == nil {
		return true
	}
	return *c.AutoEnter
}
