package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"devia/internal/cli"
	"devia/internal/config"
	"devia/internal/devis"
	"devia/internal/pipeline"
	"devia/internal/tui"
)

var devisCmd = &cobra.Command{
	Use:   "devis",
	Short: "Interactive devis form (default command)",
	RunE:  runDevisForm,
}

func init() {
	rootCmd.AddCommand(devisCmd)
}

// runDevisForm drives the interactive flow: form, extraction preview,
// confirmation, document.
func runDevisForm(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := tui.RunQuoteForm(&cfg)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(res.Request)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("APERÇU DU DEVIS"))
	fmt.Println()
	if len(result.Lines) == 0 {
		fmt.Println("  Rien à générer : aucune ligne détectée dans la demande.")
		return nil
	}
	fmt.Println(cli.RenderLines(result.Lines))
	fmt.Println()
	fmt.Println(cli.RenderTotals(result.Totals, res.Request.VATRate))
	fmt.Println()

	number, err := nextDevisNumber(time.Now())
	if err != nil {
		return err
	}
	out := res.OutPath
	if out == "" {
		out = number + "." + res.Format
	}

	ok, err := tui.ConfirmGenerate(out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("  Abandonné.")
		return nil
	}

	quote := devis.Quote{
		Company: cfg.CompanyInfo(),
		Client:  res.Client,
		Number:  number,
		Date:    time.Now(),
		Lines:   result.Lines,
		VATRate: res.Request.VATRate,
		Terms:   res.Terms,
	}
	if err := writeDocument(quote, res.Format, out); err != nil {
		return err
	}

	// Persist issuer edits made in the form.
	if err := config.Save(cfg); err != nil {
		fmt.Printf("  Avertissement : configuration non enregistrée : %v\n", err)
	}

	fmt.Printf("  Devis généré : %s\n", out)
	return nil
}
