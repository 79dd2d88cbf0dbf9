// Package pipeline wires extraction, pricing rules and totals into the
// single synchronous pass behind every devis: text in, priced lines and
// totals out. Each run works on a catalog snapshot (canonical catalog
// plus per-invocation price overrides) and has no side effects, so
// identical inputs always produce identical output.
package pipeline

import (
	"fmt"

	"github.com/shopspring/decimal"

	"devia/internal/catalog"
	"devia/internal/devis"
	"devia/internal/extract"
	"devia/internal/pricing"
)

// Request carries one extraction-and-pricing invocation.
type Request struct {
	Text      string
	Trade     string
	VATRate   int // integer percent, 0-100
	Options   devis.Options
	Overrides map[string]decimal.Decimal // catalog price overrides
	// Manual lines (catalog selections, ad hoc entries) appended after
	// the extracted lines, before the business rules run.
	Manual []devis.LineItem
}

// Result is the priced outcome of one run.
type Result struct {
	Lines  []devis.LineItem
	Totals devis.Totals
}

// Validate rejects configuration the core assumes has been checked at the
// boundary.
func (r Request) Validate() error {
	if r.VATRate < 0 || r.VATRate > 100 {
		return fmt.Errorf("vat rate %d out of range [0,100]", r.VATRate)
	}
	if _, ok := catalog.ForTrade(r.Trade); !ok {
		return fmt.Errorf("unknown trade %q", r.Trade)
	}
	for key, price := range r.Overrides {
		if price.IsNegative() {
			return fmt.Errorf("negative price override for %q", key)
		}
	}
	return nil
}

// Run executes the pipeline. The input text may match nothing: that is
// not an error, the result then carries only the trade's baseline lines.
func Run(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	cat, _ := catalog.ForTrade(req.Trade)
	cat = cat.WithOverrides(req.Overrides)

	lines := extract.Extract(req.Text, cat, req.Options)
	lines = append(lines, req.Manual...)
	lines = pricing.Apply(cat, lines, req.Options)

	return Result{
		Lines:  lines,
		Totals: devis.ComputeTotals(lines, req.VATRate),
	}, nil
}
