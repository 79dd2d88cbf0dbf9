package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devia/internal/catalog"
	"devia/internal/cli"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [trade]",
	Short: "List a trade's price catalog (barème)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trade := cfg.Defaults.Trade
	if len(args) == 1 {
		trade = args[0]
	}

	cat, ok := catalog.ForTrade(trade)
	if !ok {
		return fmt.Errorf("unknown trade %q (known: %s)", trade, strings.Join(catalog.Trades(), ", "))
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BARÈME — " + trade))
	fmt.Println()

	entries := cat.Entries()
	if len(entries) == 0 {
		fmt.Println("  Aucune opération pour ce corps de métier.")
		return nil
	}

	overrides := cfg.PriceOverrides()
	for _, e := range entries {
		price := e.UnitPrice
		marker := " "
		if p, ok := overrides[e.Key]; ok {
			price = p
			marker = "*"
		}
		fmt.Printf("  %-24s %-40s %12s / %s %s\n",
			e.Key, e.Label, cli.FormatEUR(price), e.Unit.Display(), marker)
	}
	if len(overrides) > 0 {
		fmt.Println("\n  * prix modifié par configuration")
	}
	return nil
}
