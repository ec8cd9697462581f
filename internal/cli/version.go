package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appver "ocrscan/internal/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print ocrscan and Tesseract versions",
	Run: func(cmd *cobra.Command, args []string) {
		// keep output simple for scripting
		fmt.Fprintln(cmd.OutOrStdout(), appver.AppVersion)
		if verbose {
			fmt.Fprintln(cmd.OutOrStdout(), "tesseract", engineVersion())
		}
	},
}
