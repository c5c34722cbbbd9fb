// Package cli implements the arrident inspection tool. It is a debugging aid
// for test-harness operators: deriving instance keys, dumping the remembered
// preferred ids in a state file, and replaying the selector against a JSON
// dump of live components.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// statePath is the --state flag shared by commands that open a store.
	statePath string

	// jsonOutput switches commands from human-readable to JSON output.
	jsonOutput bool
)

// rootCmd is the root command for arrident.
var rootCmd = &cobra.Command{
	Use:     "arrident",
	Version: "dev",
	Short:   "Inspect plugin identity mappings for e2e test runs",
	Long: `arrident inspects the preferred-id cache shared by end-to-end plugin tests.

It derives instance keys, dumps the component ids remembered for each plugin,
and replays the component selector against a JSON dump of live components to
explain which resolution tier would match.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version baked into the root command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of human-readable output")
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(resolveCmd)
}
