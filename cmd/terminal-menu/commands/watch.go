package commands

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/seanodell/vscode-terminal-menu/internal/event"
	"github.com/seanodell/vscode-terminal-menu/internal/logging"
	"github.com/seanodell/vscode-terminal-menu/internal/watcher"
	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

var (
	watchJSON    bool
	watchEnabled []string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the menu again whenever a provider file changes",
	Long: `Watch the project folders and re-discover the menu of a folder whenever
one of the files read by an enabled provider changes. Stop with Ctrl+C.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "Stream events as JSON lines")
	watchCmd.Flags().StringSliceVar(&watchEnabled, "enabled", nil, "Provider ids to enable (default: from settings, or all)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	enabled := s.enabledTypes(watchEnabled)
	out := cmd.OutOrStdout()

	bus := event.NewBus()
	defer bus.Close()

	var debounce time.Duration
	if s.config.Watcher != nil {
		debounce = time.Duration(s.config.Watcher.DebounceMs) * time.Millisecond
	}

	w, err := watcher.New(s.registry, bus, s.folders, enabled, debounce)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Stop()

	if watchJSON {
		if err := streamJSON(cmd, bus); err != nil {
			return err
		}
	} else {
		var mu sync.Mutex
		unsubUpdated := bus.Subscribe(event.MenuUpdated, func(e event.Event) {
			data, ok := e.Data.(event.MenuUpdatedData)
			if !ok {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(out, "\n%s changed: %v\n", data.Folder, data.Files)
			printMenu(out, data.Items)
		})
		defer unsubUpdated()

		unsubErr := bus.Subscribe(event.WatchError, func(e event.Event) {
			if data, ok := e.Data.(event.WatchErrorData); ok {
				logging.Warn().Str("error", data.Message).Msg("watch error")
			}
		})
		defer unsubErr()

		for _, d := range s.registry.DiscoverFolders(ctx, s.folders, enabled) {
			fmt.Fprintf(out, "%s\n", d.Folder)
			printMenu(out, d.Items)
		}
	}

	w.Start()
	<-ctx.Done()
	return nil
}

// streamJSON forwards the watermill messages of both event topics to stdout.
func streamJSON(cmd *cobra.Command, bus *event.Bus) error {
	out := cmd.OutOrStdout()
	var mu sync.Mutex

	for _, t := range []event.EventType{event.MenuUpdated, event.WatchError} {
		msgs, err := bus.Messages(cmd.Context(), t)
		if err != nil {
			return err
		}
		go func() {
			for msg := range msgs {
				mu.Lock()
				fmt.Fprintln(out, string(msg.Payload))
				mu.Unlock()
				msg.Ack()
			}
		}()
	}
	return nil
}

func printMenu(out io.Writer, items []types.MenuCommand) {
	if len(items) == 0 {
		fmt.Fprintln(out, "  "+emptyMenuHint)
		return
	}
	for i, item := range items {
		fmt.Fprintf(out, "  %3d) %-30s %s\n", i+1, item.Label, item.Command)
	}
}
