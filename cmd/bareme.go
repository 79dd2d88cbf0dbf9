package cmd

import (
	"github.com/spf13/cobra"

	"devia/internal/tui"
)

var baremeCmd = &cobra.Command{
	Use:   "bareme [trade]",
	Short: "Edit catalog prices interactively",
	Long: "Opens the barème editor. Edited prices are stored as overrides in the\n" +
		"configuration; the built-in catalog is never modified.",
	Args: cobra.MaximumNArgs(1),
	RunE: runBareme,
}

func init() {
	rootCmd.AddCommand(baremeCmd)
}

func runBareme(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trade := cfg.Defaults.Trade
	if len(args) == 1 {
		trade = args[0]
	}

	_, err = tui.RunBareme(cfg, trade)
	return err
}
