package commands

import (
	"path/filepath"

	"github.com/seanodell/vscode-terminal-menu/internal/config"
	"github.com/seanodell/vscode-terminal-menu/internal/logging"
	"github.com/seanodell/vscode-terminal-menu/internal/provider"
	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// session is the state shared by every command: settings, registry and the
// folders to scan.
type session struct {
	workDir  string
	config   *types.Config
	registry *provider.Registry
	folders  []string
}

func loadSession() (*session, error) {
	dir, err := GetWorkDir(workDir)
	if err != nil {
		return nil, err
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	appConfig, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	appConfig.Folders = append(appConfig.Folders, folders...)

	// The level from settings applies only when neither flag nor env set one.
	if logLevel == "" && appConfig.LogLevel != "" {
		logging.Logger = logging.Logger.Level(logging.ParseLevel(appConfig.LogLevel))
	}

	s := &session{
		workDir:  dir,
		config:   appConfig,
		registry: provider.DefaultRegistry(),
		folders:  config.ResolveFolders(dir, appConfig),
	}

	logging.Debug().
		Str("directory", dir).
		Strs("folders", s.folders).
		Strs("enabled", appConfig.EnabledConfigTypes).
		Msg("session loaded")

	return s, nil
}
