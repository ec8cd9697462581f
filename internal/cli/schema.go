package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ocrscan/internal/report"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of --json output",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := report.MarshalSchema(report.DocumentSchema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
