package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"devia/internal/cli"
	"devia/internal/devis"
	"devia/internal/pipeline"
)

var (
	flagText         string
	flagTextFile     string
	flagClient       string
	flagClientAddr   string
	flagNumber       string
	flagOut          string
	flagFormat       string
	flagLargeChimney bool
	flagNoRidgeKit   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a devis document from a work description",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagText, "text", "", "Work description")
	generateCmd.Flags().StringVar(&flagTextFile, "text-file", "", "Read the work description from a file")
	generateCmd.Flags().StringVarP(&flagClient, "client", "c", "", "Client name")
	generateCmd.Flags().StringVar(&flagClientAddr, "client-addr", "", "Client address")
	generateCmd.Flags().StringVar(&flagNumber, "number", "", "Devis number (default: next in sequence)")
	generateCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default: <number>.<format>)")
	generateCmd.Flags().StringVarP(&flagFormat, "format", "f", "pdf", "Output format: pdf or xlsx")
	generateCmd.Flags().BoolVar(&flagLargeChimney, "large-chimney", false, "Apply the large chimney removal price")
	generateCmd.Flags().BoolVar(&flagNoRidgeKit, "no-ridge-kit", false, "Do not auto-add the closoir line on dry-system ridge work")
	rootCmd.AddCommand(generateCmd)
}

// readDescription resolves --text / --text-file.
func readDescription() (string, error) {
	if flagTextFile != "" {
		data, err := os.ReadFile(flagTextFile)
		if err != nil {
			return "", fmt.Errorf("reading description: %w", err)
		}
		return string(data), nil
	}
	return flagText, nil
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := readDescription()
	if err != nil {
		return err
	}

	req := pipeline.Request{
		Text:    text,
		Trade:   cfg.Defaults.Trade,
		VATRate: cfg.Defaults.VATRate,
		Options: devis.Options{
			AutoRidgeKit: cfg.Defaults.AutoRidgeKit && !flagNoRidgeKit,
			LargeChimney: flagLargeChimney,
		},
		Overrides: cfg.PriceOverrides(),
	}

	result, err := pipeline.Run(req)
	if err != nil {
		return err
	}

	number := flagNumber
	if number == "" {
		if number, err = nextDevisNumber(time.Now()); err != nil {
			return err
		}
	}

	quote := devis.Quote{
		Company: cfg.CompanyInfo(),
		Client:  devis.Client{Name: flagClient, Address: flagClientAddr},
		Number:  number,
		Date:    time.Now(),
		Lines:   result.Lines,
		VATRate: req.VATRate,
		Terms:   cfg.Defaults.Terms,
	}

	out := flagOut
	if out == "" {
		out = number + "." + flagFormat
	}

	if err := writeDocument(quote, flagFormat, out); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEVIS " + number))
	fmt.Println()
	fmt.Println(cli.RenderLines(result.Lines))
	fmt.Println()
	fmt.Println(cli.RenderTotals(result.Totals, req.VATRate))
	fmt.Println()
	fmt.Printf("  Document écrit : %s\n", out)
	if zeroQtyCount(result.Lines) > 0 {
		fmt.Println("  Attention : certaines quantités n'ont pas pu être déterminées (0).")
	}
	return nil
}

func zeroQtyCount(lines []devis.LineItem) int {
	n := 0
	for _, l := range lines {
		if l.Qty.IsZero() && l.Unit != devis.UnitForfait {
			n++
		}
	}
	return n
}
