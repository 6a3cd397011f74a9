// Package commands provides the CLI commands for terminal-menu.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/seanodell/vscode-terminal-menu/internal/config"
	"github.com/seanodell/vscode-terminal-menu/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	printLogs bool
	logLevel  string
	workDir   string
	folders   []string
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "terminal-menu",
	Short: "Project command menu for the terminal",
	Long: `terminal-menu collects runnable commands from the configuration files
of a project (.terminal-menu, mise.toml, justfile, package.json, Makefile)
into a single menu.

Run 'terminal-menu list' to see the menu, or 'terminal-menu run' to pick
and run a command.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&printLogs, "print-logs", false, "Print logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG|INFO|WARN|ERROR|OFF)")
	rootCmd.PersistentFlags().StringVarP(&workDir, "directory", "C", "", "Project directory")
	rootCmd.PersistentFlags().StringSliceVar(&folders, "folder", nil, "Additional project folder (repeatable)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("terminal-menu %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(debugCmd)
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// ExitError carries the exit status of a command run through 'run'.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// AsExitError reports whether err is an ExitError and stores it in target.
func AsExitError(err error, target *ExitError) bool {
	return errors.As(err, target)
}

// GetWorkDir returns the working directory from flag or current directory.
func GetWorkDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

// setupLogging sends logs to stderr with --print-logs, otherwise to the log
// file under the state directory.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := logLevel
	if level == "" {
		level = os.Getenv(config.EnvLogLevel)
	}

	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(level)

	if printLogs {
		cfg.Pretty = true
	} else {
		paths := config.GetPaths()
		if err := paths.EnsurePaths(); err != nil {
			return err
		}
		cfg.File = paths.LogPath()
	}

	closer, err := logging.Init(cfg)
	if err != nil {
		return err
	}
	logCloser = closer
	return nil
}
