package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"ocrscan/internal/system"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ocrscan [image]",
	Short: "ocrscan – print OCR text and page layout of an image",
	Long: "ocrscan runs an image through Tesseract and prints the recognized text,\n" +
		"its mean confidence and an indented walk over lines and words.",
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		system.SetVerbose(verbose)
	},
	RunE:          runScan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics at debug level")
}

// Execute runs the CLI.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Unexpected Error: "+err.Error())
		system.Logger.Debug("details", "error", fmt.Sprintf("%+v", err))
		stop()
		os.Exit(1)
	}
}
