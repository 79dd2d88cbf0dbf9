// Package config loads and saves the devia TOML configuration: issuer
// identity, quote defaults, and user-edited catalog prices layered over
// the canonical barème.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"devia/internal/catalog"
	"devia/internal/devis"
)

// Config holds all devia configuration.
type Config struct {
	Company  CompanyConfig    `toml:"company"`
	Defaults DefaultsConfig   `toml:"defaults"`
	Pricing  PricingOverrides `toml:"pricing"`
}

// CompanyConfig is the issuer block printed on every devis.
type CompanyConfig struct {
	Name    string `toml:"name"`
	Address string `toml:"address"`
	SIRET   string `toml:"siret"`
	Phone   string `toml:"phone,omitempty"`
}

// DefaultsConfig holds the quote defaults.
type DefaultsConfig struct {
	Trade        string `toml:"trade"`
	VATRate      int    `toml:"vat_rate"`
	Terms        string `toml:"devis_terms"`
	AutoRidgeKit bool   `toml:"auto_ridge_kit"`
}

// PricingOverrides holds user-edited unit prices, keyed by catalog key.
// They shadow the canonical catalog without ever mutating it.
type PricingOverrides struct {
	Overrides map[string]float64 `toml:"overrides,omitempty"`
}

// DefaultTerms is the conditions block of a fresh configuration.
const DefaultTerms = "Prix indicatifs basés sur constat sur place. TVA et barème ajustables selon nature du chantier. " +
	"Validité du devis: 30 jours. Paiement: 30% à la commande, solde à la réception. " +
	"Assurance décennale. Délais selon météo et approvisionnement."

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Company: CompanyConfig{
			Name:    "DEV'IA – Couvreur",
			Address: "12 Rue des Toits, 69000 Lyon",
			SIRET:   "123 456 789 00012",
		},
		Defaults: DefaultsConfig{
			Trade:        catalog.TradeCouvreur,
			VATRate:      10,
			Terms:        DefaultTerms,
			AutoRidgeKit: true,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "devia")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "devia")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, falling back to defaults when it does not
// exist yet.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("opening config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// PriceOverrides converts the configured overrides into the decimal map
// consumed by the pipeline.
func (c Config) PriceOverrides() map[string]decimal.Decimal {
	if len(c.Pricing.Overrides) == 0 {
		return nil
	}
	out := make(map[string]decimal.Decimal, len(c.Pricing.Overrides))
	for key, price := range c.Pricing.Overrides {
		out[key] = decimal.NewFromFloat(price).Round(2)
	}
	return out
}

// SetPriceOverride records a user-edited unit price, dropping the entry
// when the price matches the canonical catalog again.
func (c *Config) SetPriceOverride(trade, key string, price decimal.Decimal) {
	cat, ok := catalog.ForTrade(trade)
	if !ok {
		return
	}
	entry, ok := cat.Lookup(key)
	if !ok {
		return
	}

	if entry.UnitPrice.Equal(price) {
		delete(c.Pricing.Overrides, key)
		return
	}
	if c.Pricing.Overrides == nil {
		c.Pricing.Overrides = make(map[string]float64)
	}
	c.Pricing.Overrides[key] = price.InexactFloat64()
}

// CompanyInfo returns the issuer block as the devis model type.
func (c Config) CompanyInfo() devis.Company {
	return devis.Company{
		Name:    c.Company.Name,
		Address: c.Company.Address,
		SIRET:   c.Company.SIRET,
		Phone:   c.Company.Phone,
	}
}
