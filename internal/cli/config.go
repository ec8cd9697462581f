package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfg "ocrscan/internal/config"
	"ocrscan/internal/ui"
)

func init() { rootCmd.AddCommand(configCmd) }

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialize and show the configuration file",
	Long:  "Create config.json with default settings when missing, then print its location and effective values.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.Path()
		if err != nil {
			return err
		}
		created := false
		if !fileExists(p) {
			if _, err := cfg.Save(cfg.Default()); err != nil {
				return err
			}
			created = true
		}
		c, err := cfg.Load()
		if err != nil {
			return err
		}

		status := ui.Status(true, false, "kept existing config.json")
		if created {
			status = ui.Status(true, false, "created config.json")
		}
		lines := []string{
			status,
			"",
			ui.KeyValue("path", p),
			ui.KeyValue("languages", strings.Join(c.Languages, "+")),
			ui.KeyValue("tessdata", c.Tessdata),
			ui.KeyValue("psm", strconv.Itoa(c.PageSegMode)),
			ui.KeyValue("indent", strconv.Quote(c.Indent)),
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.Box("ocrscan config", lines))
		return nil
	},
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
