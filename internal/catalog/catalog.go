// Package catalog holds the per-trade price references (barème). The
// canonical catalogs are immutable process-wide data; runtime price edits
// are applied through WithOverrides, which returns a merged copy.
package catalog

import (
	"github.com/shopspring/decimal"

	"devia/internal/devis"
)

// Trade identifiers. Only the roofer trade carries catalog entries and
// extraction rules; the others are valid empty stubs.
const (
	TradeCouvreur   = "couvreur"
	TradeMaconnerie = "maconnerie"
	TradePlatrerie  = "platrerie"
	TradeElagage    = "elagage"
	TradeCarrelage  = "carrelage"
)

// Entry is one priced operation of a trade's barème.
type Entry struct {
	Key       string
	Label     string
	Unit      devis.Unit
	UnitPrice decimal.Decimal
}

// Catalog is the ordered entry set of one trade.
type Catalog struct {
	Trade   string
	entries []Entry
	index   map[string]int
}

// New builds a catalog from an ordered entry list.
func New(trade string, entries []Entry) *Catalog {
	c := &Catalog{
		Trade:   trade,
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		c.index[e.Key] = i
	}
	return c
}

// Entries returns a copy of the ordered entry list.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup returns the entry for a key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	i, ok := c.index[key]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// WithOverrides returns a copy of the catalog with the given unit prices
// replaced. Unknown keys are ignored. The receiver is left untouched, so
// the canonical catalog can be shared across invocations.
func (c *Catalog) WithOverrides(prices map[string]decimal.Decimal) *Catalog {
	if len(prices) == 0 {
		return c
	}
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	for i := range entries {
		if p, ok := prices[entries[i].Key]; ok {
			entries[i].UnitPrice = p
		}
	}
	return New(c.Trade, entries)
}

// Line builds a LineItem for a catalog entry at the given quantity.
func (c *Catalog) Line(key string, qty decimal.Decimal) (devis.LineItem, bool) {
	e, ok := c.Lookup(key)
	if !ok {
		return devis.LineItem{}, false
	}
	return devis.LineItem{
		Key:       e.Key,
		Label:     e.Label,
		Unit:      e.Unit,
		Qty:       qty,
		UnitPrice: e.UnitPrice,
	}, true
}

var catalogs = map[string]*Catalog{
	TradeCouvreur:   New(TradeCouvreur, rooferEntries),
	TradeMaconnerie: New(TradeMaconnerie, nil),
	TradePlatrerie:  New(TradePlatrerie, nil),
	TradeElagage:    New(TradeElagage, nil),
	TradeCarrelage:  New(TradeCarrelage, nil),
}

// tradeOrder fixes the listing order of Trades.
var tradeOrder = []string{
	TradeCouvreur,
	TradeMaconnerie,
	TradePlatrerie,
	TradeElagage,
	TradeCarrelage,
}

// ForTrade returns the canonical catalog of a trade.
func ForTrade(trade string) (*Catalog, bool) {
	c, ok := catalogs[trade]
	return c, ok
}

// Trades lists the known trade identifiers.
func Trades() []string {
	out := make([]string, len(tradeOrder))
	copy(out, tradeOrder)
	return out
}
