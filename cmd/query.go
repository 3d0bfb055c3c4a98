package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <registry> <package>",
	Short: "Resolve the latest version of a package and print it as JSON",
	Example: `  versionator query npm react
  versionator query python django
  versionator query maven org.springframework:spring-core`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		rec, err := resolver.Resolve(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
