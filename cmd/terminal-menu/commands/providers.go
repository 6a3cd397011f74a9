package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List menu providers",
	RunE:  runProviders,
}

func runProviders(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	enabled := make(map[string]bool)
	for _, p := range s.registry.Enabled(s.config.EnabledConfigTypes) {
		enabled[p.ID()] = true
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tENABLED\tFILES\tDESCRIPTION")
	for _, p := range s.registry.List() {
		state := "no"
		if enabled[p.ID()] {
			state = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID(), state, strings.Join(p.Files(), ", "), p.Description())
	}
	return w.Flush()
}
