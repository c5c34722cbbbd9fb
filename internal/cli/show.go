package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arr-tools/arrident"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Dump the preferred ids remembered in a state file",
	Long: `Display every (instance key, plugin, component) mapping in the state file.

A missing or corrupt state file is shown as empty; that is exactly how the
library reads it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := arrident.NewStore(statePath)
		state := store.Read()

		if jsonOutput {
			return outputJSON(state)
		}

		keys := state.InstanceKeys()
		if len(keys) == 0 {
			printSection("Preferred ids")
			fmt.Println("  (state file empty or absent)")
			return nil
		}

		printSection("Preferred ids")
		printLabelValue("State file", statePath)
		rows := make([][]string, 0, len(keys))
		for _, key := range keys {
			for _, plugin := range state.PluginNames(key) {
				rows = append(rows, []string{
					key,
					plugin,
					formatID(state, key, plugin, arrident.ComponentIndexer),
					formatID(state, key, plugin, arrident.ComponentDownloadClient),
					formatID(state, key, plugin, arrident.ComponentImportList),
				})
			}
		}
		fmt.Println()
		printTable([]string{"Instance", "Plugin", "Indexer", "Download client", "Import list"}, rows)
		return nil
	},
}

// formatID renders one component slot, "-" when absent.
func formatID(state *arrident.State, key, plugin string, componentType arrident.ComponentType) string {
	id, ok := state.PreferredID(key, plugin, componentType)
	if !ok {
		return "-"
	}
	return strconv.Itoa(id)
}

func init() {
	showCmd.Flags().StringVar(&statePath, "state", "", "path to the state file")
	_ = showCmd.MarkFlagRequired("state")
}
