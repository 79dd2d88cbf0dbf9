package devis

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNoLines is returned by the renderers when a quote has no line items.
// Callers use it to block document generation and prompt for input instead
// of emitting an empty devis.
var ErrNoLines = errors.New("devis: no line items to generate")

// Company identifies the issuer printed in the devis header.
type Company struct {
	Name    string
	Address string
	SIRET   string
	Phone   string
}

// Client identifies the recipient of the devis.
type Client struct {
	Name    string
	Address string
}

// Quote is a complete devis: header data, ordered line items, VAT rate and
// the free-text terms printed at the bottom of the document. Line order is
// insertion order and is preserved through rendering.
type Quote struct {
	Company Company
	Client  Client
	Number  string
	Date    time.Time
	Lines   []LineItem
	VATRate int // integer percent, 0-100
	Terms   string
}

// Totals holds the three aggregate amounts of a devis.
type Totals struct {
	Subtotal decimal.Decimal // total HT
	VAT      decimal.Decimal
	Total    decimal.Decimal // total TTC
}

// ComputeTotals reduces a line list to subtotal, VAT and VAT-inclusive
// total. Each step is rounded to 2 places before feeding the next one:
// the VAT is computed from the already-rounded subtotal, and the grand
// total from the two rounded amounts. Reproducing this intermediate
// rounding is required for totals to match the printed line totals.
func ComputeTotals(lines []LineItem, vatRate int) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}
	subtotal = subtotal.Round(2)

	vat := subtotal.Mul(decimal.NewFromInt(int64(vatRate))).
		Div(decimal.NewFromInt(100)).
		Round(2)

	return Totals{
		Subtotal: subtotal,
		VAT:      vat,
		Total:    subtotal.Add(vat).Round(2),
	}
}

// Totals computes the aggregate amounts for the quote's current line list.
func (q *Quote) Totals() Totals {
	return ComputeTotals(q.Lines, q.VATRate)
}
