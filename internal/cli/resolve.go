package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arr-tools/arrident"
)

var (
	resolveItemsPath string
	resolvePreferred int
)

// itemDoc is the JSON shape of one live component in the --items file,
// matching the relevant fields of the server's API responses.
type itemDoc struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	ImplementationName string `json:"implementationName"`
	Implementation     string `json:"implementation"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <plugin-name>",
	Short: "Replay the component selector against a JSON dump of live components",
	Long: `Run the selector the same way an e2e run would: against the components in
the --items file (a JSON array as returned by the server's API), optionally
consulting a remembered preferred id.

The command explains which resolution tier matched, or lists every candidate
when the selection is ambiguous.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pluginName := args[0]
		if pluginName == "" {
			return fmt.Errorf("plugin name must not be empty")
		}

		data, err := os.ReadFile(resolveItemsPath)
		if err != nil {
			return fmt.Errorf("read items file: %w", err)
		}
		var docs []itemDoc
		if err := json.Unmarshal(data, &docs); err != nil {
			return fmt.Errorf("parse items file: %w", err)
		}

		items := make([]arrident.Item, 0, len(docs))
		for _, d := range docs {
			items = append(items, arrident.NewComponent(d.ID, d.Name, d.ImplementationName, d.Implementation))
		}

		sel := arrident.Select(items, pluginName, resolvePreferred)

		if jsonOutput {
			out := struct {
				Resolution   arrident.Resolution `json:"resolution"`
				ComponentID  *int                `json:"componentId,omitempty"`
				CandidateIDs []int               `json:"candidateIds,omitempty"`
			}{Resolution: sel.Resolution, CandidateIDs: sel.CandidateIDs}
			if sel.Component != nil {
				id := sel.Component.ID()
				out.ComponentID = &id
			}
			return outputJSON(out)
		}

		printSection("Selector result")
		printLabelValue("Plugin", pluginName)
		printLabelValue("Resolution", string(sel.Resolution))
		switch {
		case sel.Component != nil:
			printLabelValue("Component id", strconv.Itoa(sel.Component.ID()))
			printLabelValue("Component name", sel.Component.Name())
		case len(sel.CandidateIDs) > 0:
			ids := make([]string, 0, len(sel.CandidateIDs))
			for _, id := range sel.CandidateIDs {
				ids = append(ids, strconv.Itoa(id))
			}
			printWarning(fmt.Sprintf("ambiguous: candidates %s", strings.Join(ids, ", ")))
		default:
			printWarning("no component matched")
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveItemsPath, "items", "", "path to a JSON array of live components")
	resolveCmd.Flags().IntVar(&resolvePreferred, "preferred", 0, "remembered preferred id to consult first (0 for none)")
	_ = resolveCmd.MarkFlagRequired("items")
}
