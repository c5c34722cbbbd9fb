package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arr-tools/arrident"
)

var keySalt string

var keyCmd = &cobra.Command{
	Use:   "key <target-url> <target-identifier>",
	Short: "Derive the instance key for a target environment",
	Long: `Derive the instance key that scopes persisted preferences to one logical
target environment. The same inputs always produce the same key; the optional
salt is case-insensitive.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "" || args[1] == "" {
			return fmt.Errorf("target URL and identifier must not be empty")
		}
		key := arrident.DeriveKey(args[0], args[1], keySalt)

		if jsonOutput {
			return outputJSON(map[string]string{"instanceKey": key})
		}
		fmt.Println(key)
		return nil
	},
}

func init() {
	keyCmd.Flags().StringVar(&keySalt, "salt", "", "salt distinguishing parallel test matrices (case-insensitive)")
}
