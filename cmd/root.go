// Package cmd implements the devia command line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"devia/internal/config"
	"devia/internal/devis"
	"devia/internal/render"
	"devia/internal/store"
)

var (
	flagTrade   string
	flagVAT     int
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "devia",
	Short: "Devis generator for construction trades",
	Long: "devia turns a free-form French work description into a priced devis:\n" +
		"extracted line items, VAT totals, and a printable PDF or XLSX document.",
	RunE: runDevisForm,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagTrade, "trade", "t", "", "Trade identifier (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagVAT, "vat", -1, "VAT rate in percent (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Override the devis numbering database location")
}

// loadConfig reads the configuration, applying the --trade and --vat
// flags over the configured defaults.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagTrade != "" {
		cfg.Defaults.Trade = flagTrade
	}
	if flagVAT >= 0 {
		cfg.Defaults.VATRate = flagVAT
	}
	return cfg, nil
}

// nextDevisNumber allocates a number from the sequence store.
func nextDevisNumber(day time.Time) (string, error) {
	path := store.DefaultPath()
	if flagDataDir != "" {
		path = flagDataDir
	}
	st, err := store.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening numbering store: %w", err)
	}
	defer func() { _ = st.Close() }()

	return st.NextNumber(day)
}

// writeDocument renders the quote in the requested format and writes it
// to path. The ErrNoLines case is reported as a user-facing message
// rather than a bare error chain.
func writeDocument(q devis.Quote, format, path string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "pdf":
		data, err = render.PDF(q)
	case "xlsx":
		data, err = render.Excel(q)
	default:
		return fmt.Errorf("unknown format %q (expected pdf or xlsx)", format)
	}
	if errors.Is(err, devis.ErrNoLines) {
		return fmt.Errorf("rien à générer : aucune ligne détectée dans la demande")
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
