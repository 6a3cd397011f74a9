package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// emptyMenuHint is shown when no provider produced a record.
const emptyMenuHint = "No terminal menu items found. Create a supported configuration file or check your enabled configuration types in settings."

var (
	listJSON    bool
	listEnabled []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List menu commands",
	Long: `List the menu commands discovered in the project directory and any
additional folders, in provider order.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringSliceVar(&listEnabled, "enabled", nil, "Provider ids to enable (default: from settings, or all)")
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	m := s.collect(cmd.Context(), s.enabledTypes(listEnabled))
	out := cmd.OutOrStdout()

	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(m.groups)
	}

	if len(m.items) == 0 {
		fmt.Fprintln(out, emptyMenuHint)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tCOMMAND\tSOURCE")
	for _, item := range m.items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Label, item.Command, item.Source)
	}
	return w.Flush()
}
