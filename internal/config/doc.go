// Package config loads terminal-menu settings and manages standard paths.
//
// Settings control which providers run (enabledConfigTypes), whether the
// selected command is executed immediately (autoEnter), which extra project
// folders are scanned (folders), and the log level.
//
// # Configuration Loading
//
// Load merges sources in priority order, later sources winning:
//
//  1. Global config in ~/.config/terminal-menu/ (config.json, config.jsonc, config.yaml)
//  2. Editor settings in <project>/.vscode/settings.json (terminalMenu.* keys)
//  3. Project config in <project>/ (terminal-menu.json, .jsonc, .yaml)
//  4. TERMINAL_MENU_CONFIG file
//  5. <project>/.env (TERMINAL_MENU_* keys only, not exported)
//  6. Environment variables
//
// JSON files may contain comments and trailing commas; they are normalized
// with tidwall/jsonc before decoding.
//
// The enabled set from a later source replaces the earlier one. An empty set
// means every provider runs. Folders accumulate across sources.
//
// # Environment Variable Overrides
//
//   - TERMINAL_MENU_ENABLED - comma separated provider ids
//   - TERMINAL_MENU_AUTO_ENTER - true/false
//   - TERMINAL_MENU_LOG_LEVEL - DEBUG, INFO, WARN, ERROR, OFF
//   - TERMINAL_MENU_FOLDERS - extra folders, separated like PATH
//   - TERMINAL_MENU_CONFIG - path to a specific config file
//
// # Path Management
//
// Paths follows the XDG Base Directory layout (XDG_CONFIG_HOME,
// XDG_STATE_HOME, XDG_CACHE_HOME); the log file lives in the state directory.
package config
