// Package devis holds the quote data model: line items, totals, and the
// quote envelope handed to the renderers.
package devis

import "github.com/shopspring/decimal"

// Unit is the unit of measure attached to a catalog entry or quote line.
type Unit string

const (
	UnitForfait Unit = "forfait" // flat rate, quantity pinned to 1
	UnitML      Unit = "ml"      // linear meter
	UnitM2      Unit = "m2"      // square meter
	UnitPiece   Unit = "u"       // per-piece count
)

// Display returns the unit label as printed on the devis.
func (u Unit) Display() string {
	if u == UnitM2 {
		return "m²"
	}
	return string(u)
}

// LineItem is a single priced row of a devis. Key references the catalog
// entry the line was built from; it is empty for manual free-text lines.
type LineItem struct {
	Key       string
	Label     string
	Unit      Unit
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
}

// Total returns the line total, rounded to 2 decimal places.
func (l LineItem) Total() decimal.Decimal {
	return l.Qty.Mul(l.UnitPrice).Round(2)
}

// Options are the analysis toggles a caller can set per invocation.
type Options struct {
	// AutoRidgeKit adds the ventilated closure strip line when explicit
	// dry-system ridge phrasing is detected.
	AutoRidgeKit bool
	// LargeChimney switches the chimney removal line to its fixed
	// large-flue price.
	LargeChimney bool
}
