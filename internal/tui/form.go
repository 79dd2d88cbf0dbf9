package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"devia/internal/catalog"
	"devia/internal/config"
	"devia/internal/devis"
	"devia/internal/pipeline"
)

// FormResult carries everything the quote form collected.
type FormResult struct {
	Request pipeline.Request
	Client  devis.Client
	Terms   string
	OutPath string
	Format  string
}

// RunQuoteForm walks the user through a devis: issuer defaults come from
// the config, the work description is free text, and the analysis toggles
// mirror the pipeline options. It returns the filled request, ready for
// pipeline.Run.
func RunQuoteForm(cfg *config.Config) (FormResult, error) {
	res := FormResult{
		Client: devis.Client{},
		Terms:  cfg.Defaults.Terms,
		Format: "pdf",
	}

	trade := cfg.Defaults.Trade
	vat := strconv.Itoa(cfg.Defaults.VATRate)
	autoKit := cfg.Defaults.AutoRidgeKit
	largeChimney := false
	text := ""

	tradeOptions := make([]huh.Option[string], 0, len(catalog.Trades()))
	for _, t := range catalog.Trades() {
		tradeOptions = append(tradeOptions, huh.NewOption(t, t))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nom entreprise").
				Value(&cfg.Company.Name),
			huh.NewInput().
				Title("Adresse entreprise").
				Value(&cfg.Company.Address),
			huh.NewInput().
				Title("SIRET").
				Value(&cfg.Company.SIRET),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Nom du client").
				Value(&res.Client.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("le nom du client est requis")
					}
					return nil
				}),
			huh.NewInput().
				Title("Adresse client").
				Value(&res.Client.Address),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Décris les travaux").
				Placeholder("15 ml de faîtage à refaire à sec et changer une quinzaine de tuiles").
				Value(&text),
			huh.NewSelect[string]().
				Title("Corps de métier").
				Options(tradeOptions...).
				Value(&trade),
			huh.NewInput().
				Title("TVA (%)").
				Value(&vat).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 0 || n > 100 {
						return fmt.Errorf("taux entre 0 et 100")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Ajouter closoir + faîtières si faîtage à sec détecté ?").
				Value(&autoKit),
			huh.NewConfirm().
				Title("Grosse cheminée (forfait dépose majoré) ?").
				Value(&largeChimney),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Format du document").
				Options(
					huh.NewOption("PDF", "pdf"),
					huh.NewOption("Excel (xlsx)", "xlsx"),
				).
				Value(&res.Format),
			huh.NewInput().
				Title("Fichier de sortie (vide = numéro du devis)").
				Value(&res.OutPath),
		),
	)

	if err := form.Run(); err != nil {
		return FormResult{}, err
	}

	rate, _ := strconv.Atoi(strings.TrimSpace(vat))
	res.Request = pipeline.Request{
		Text:    text,
		Trade:   trade,
		VATRate: rate,
		Options: devis.Options{
			AutoRidgeKit: autoKit,
			LargeChimney: largeChimney,
		},
		Overrides: cfg.PriceOverrides(),
	}
	return res, nil
}

// ConfirmGenerate asks for the final go-ahead after the preview.
func ConfirmGenerate(path string) (bool, error) {
	ok := true
	err := huh.NewConfirm().
		Title("Générer " + path + " ?").
		Value(&ok).
		Run()
	return ok, err
}
