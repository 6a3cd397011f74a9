package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seanodell/vscode-terminal-menu/internal/logging"
	"github.com/seanodell/vscode-terminal-menu/internal/runner"
	"github.com/seanodell/vscode-terminal-menu/internal/selector"
)

var (
	runIndex   int
	runNoEnter bool
	runDryRun  bool
	runEnabled []string
)

var runCmd = &cobra.Command{
	Use:   "run [query]",
	Short: "Select and run a menu command",
	Long: `Select a menu command and run it in the folder it was found in.

The query matches an exact label, an exact command, a task name, or a
unique label prefix, falling back to the closest label. Without a query
or --index a numbered menu is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&runIndex, "index", "n", 0, "Select by 1-based position in the menu")
	runCmd.Flags().BoolVar(&runNoEnter, "no-enter", false, "Print the command instead of running it")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Show what would run without running it")
	runCmd.Flags().StringSliceVar(&runEnabled, "enabled", nil, "Provider ids to enable (default: from settings, or all)")
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	m := s.collect(cmd.Context(), s.enabledTypes(runEnabled))
	if len(m.items) == 0 {
		return errors.New(emptyMenuHint)
	}

	var pos int
	switch {
	case runIndex > 0:
		_, err = selector.ByIndex(m.items, runIndex)
		pos = runIndex - 1
	case len(args) == 1:
		pos, err = selector.MatchIndex(m.items, args[0])
	default:
		pos, err = selector.PromptIndex(cmd.InOrStdin(), cmd.ErrOrStderr(), m.items)
	}
	if err != nil {
		return err
	}

	selected, dir := m.items[pos], m.folders[pos]
	logging.Info().
		Str("label", selected.Label).
		Str("command", selected.Command).
		Str("dir", dir).
		Msg("selected menu command")

	if runDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "(cd %s && %s)\n", dir, selected.Command)
		return nil
	}
	if runNoEnter || !s.config.AutoEnterEnabled() {
		fmt.Fprintln(cmd.OutOrStdout(), selected.Command)
		return nil
	}

	code, err := runner.Run(cmd.Context(), selected.Command, runner.Options{
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return ExitError{Code: code}
	}
	return nil
}
