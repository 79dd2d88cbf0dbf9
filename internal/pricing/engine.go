// Package pricing post-processes the accumulated line list of a devis:
// it injects the mandatory pre-work verification line and applies the
// conditional price overrides of the trade. Overrides touch unit prices
// only, never quantities or labels, and each line is overridden at most
// once.
package pricing

import (
	"github.com/shopspring/decimal"

	"devia/internal/catalog"
	"devia/internal/devis"
)

// LargeChimneyPrice is the fixed flat price substituted for the chimney
// removal line when the large-chimney toggle is set.
var LargeChimneyPrice = decimal.RequireFromString("650.00")

// cleaningFamily groups the roof cleaning/treatment operations. Presence
// of any of them, whatever the quantity, makes broken-tile replacement
// free (promotional bundling).
var cleaningFamily = map[string]bool{
	catalog.KeyDemoussage: true,
	catalog.KeyHydrofuge:  true,
}

// Apply runs the trade's business rules over the final line list
// (extraction, catalog selection and manual entries, already concatenated
// in that order) and returns the adjusted list. Trades without rules pass
// through unchanged. The input slice is not modified.
func Apply(cat *catalog.Catalog, lines []devis.LineItem, opts devis.Options) []devis.LineItem {
	if cat.Trade != catalog.TradeCouvreur {
		return lines
	}

	out := make([]devis.LineItem, 0, len(lines)+1)
	if check, ok := cat.Line(catalog.KeyVerification, decimal.NewFromInt(1)); ok {
		check.UnitPrice = decimal.Zero
		out = append(out, check)
	}

	freeBrokenTiles := false
	for _, l := range lines {
		if cleaningFamily[l.Key] {
			freeBrokenTiles = true
			break
		}
	}

	for _, l := range lines {
		switch {
		case freeBrokenTiles && l.Key == catalog.KeyTuileCassee:
			l.UnitPrice = decimal.Zero
		case opts.LargeChimney && l.Key == catalog.KeyDeposeCheminee:
			l.UnitPrice = LargeChimneyPrice
		}
		out = append(out, l)
	}
	return out
}
