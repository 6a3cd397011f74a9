package commands

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seanodell/vscode-terminal-menu/internal/config"
	"github.com/seanodell/vscode-terminal-menu/internal/provider"
	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

var configGlobal bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting in the project or global config file",
	Long: `Store a setting in terminal-menu.json of the project directory, or in the
global config.json with --global. Other settings in the file are kept.

Keys:
  enabledConfigTypes  comma separated provider ids; empty enables all
  autoEnter           true to run the selected command, false to print it`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "Write the global config file")
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	apply, err := settingSetter(args[0], args[1])
	if err != nil {
		return err
	}

	var path string
	if configGlobal {
		path = config.GetPaths().GlobalConfigPath()
	} else {
		dir, err := GetWorkDir(workDir)
		if err != nil {
			return err
		}
		if dir, err = filepath.Abs(dir); err != nil {
			return err
		}
		path = config.ProjectConfigPath(dir)
	}

	if err := config.Update(path, apply); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s updated in %s\n", args[0], path)
	return nil
}

// settingSetter validates value for key and returns the change to apply.
func settingSetter(key, value string) (func(*types.Config) error, error) {
	switch key {
	case "enabledConfigTypes":
		known := make(map[string]bool)
		for _, id := range provider.DefaultRegistry().IDs() {
			known[id] = true
		}
		var ids []string
		for _, id := range strings.Split(value, ",") {
			if id = strings.TrimSpace(id); id == "" {
				continue
			}
			if !known[id] {
				return nil, fmt.Errorf("unknown provider id %q", id)
			}
			ids = append(ids, id)
		}
		return func(c *types.Config) error {
			c.EnabledConfigTypes = ids
			return nil
		}, nil

	case "autoEnter":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("autoEnter: %w", err)
		}
		return func(c *types.Config) error {
			c.AutoEnter = &b
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unknown setting %q (want enabledConfigTypes or autoEnter)", key)
}
