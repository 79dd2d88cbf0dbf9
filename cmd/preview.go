package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"devia/internal/cli"
	"devia/internal/devis"
	"devia/internal/pipeline"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Extract and price a work description without writing a document",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagText, "text", "", "Work description")
	previewCmd.Flags().StringVar(&flagTextFile, "text-file", "", "Read the work description from a file")
	previewCmd.Flags().BoolVar(&flagLargeChimney, "large-chimney", false, "Apply the large chimney removal price")
	previewCmd.Flags().BoolVar(&flagNoRidgeKit, "no-ridge-kit", false, "Do not auto-add the closoir line on dry-system ridge work")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := readDescription()
	if err != nil {
		return err
	}

	result, err := pipeline.Run(pipeline.Request{
		Text:    text,
		Trade:   cfg.Defaults.Trade,
		VATRate: cfg.Defaults.VATRate,
		Options: devis.Options{
			AutoRidgeKit: cfg.Defaults.AutoRidgeKit && !flagNoRidgeKit,
			LargeChimney: flagLargeChimney,
		},
		Overrides: cfg.PriceOverrides(),
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("APERÇU — %s", cfg.Defaults.Trade)))
	fmt.Println()
	if len(result.Lines) == 0 {
		fmt.Println("  Aucune ligne détectée.")
		return nil
	}
	fmt.Println(cli.RenderLines(result.Lines))
	fmt.Println()
	fmt.Println(cli.RenderTotals(result.Totals, cfg.Defaults.VATRate))
	fmt.Println()
	return nil
}
