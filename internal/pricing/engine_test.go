package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"devia/internal/catalog"
	"devia/internal/devis"
)

func rooferCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, ok := catalog.ForTrade(catalog.TradeCouvreur)
	if !ok {
		t.Fatal("roofer catalog missing")
	}
	return cat
}

func mustLine(t *testing.T, cat *catalog.Catalog, key string, qty int64) devis.LineItem {
	t.Helper()
	l, ok := cat.Line(key, decimal.NewFromInt(qty))
	if !ok {
		t.Fatalf("catalog has no entry %q", key)
	}
	return l
}

func TestApply_PrependsVerificationLine(t *testing.T) {
	cat := rooferCatalog(t)
	in := []devis.LineItem{mustLine(t, cat, catalog.KeyFaitageSec, 10)}

	out := Apply(cat, in, devis.Options{})

	if len(out) != 2 {
		t.Fatalf("got %d lines, want 2", len(out))
	}
	if out[0].Key != catalog.KeyVerification {
		t.Errorf("first line = %s, want %s", out[0].Key, catalog.KeyVerification)
	}
	if !out[0].UnitPrice.IsZero() || !out[0].Qty.Equal(decimal.NewFromInt(1)) {
		t.Errorf("verification line price/qty = %s/%s, want 0/1", out[0].UnitPrice, out[0].Qty)
	}
	if out[1].Key != catalog.KeyFaitageSec {
		t.Errorf("second line = %s, want %s", out[1].Key, catalog.KeyFaitageSec)
	}
}

func TestApply_PrependsVerificationEvenWhenEmpty(t *testing.T) {
	out := Apply(rooferCatalog(t), nil, devis.Options{})

	if len(out) != 1 || out[0].Key != catalog.KeyVerification {
		t.Fatalf("lines = %v, want the lone verification line", out)
	}
}

func TestApply_CleaningMakesBrokenTilesFree(t *testing.T) {
	cat := rooferCatalog(t)
	in := []devis.LineItem{
		mustLine(t, cat, catalog.KeyDemoussage, 40),
		mustLine(t, cat, catalog.KeyTuileCassee, 8),
	}

	out := Apply(cat, in, devis.Options{})

	var broken devis.LineItem
	for _, l := range out {
		if l.Key == catalog.KeyTuileCassee {
			broken = l
		}
	}
	if broken.Key == "" {
		t.Fatal("broken-tile line dropped")
	}
	if !broken.UnitPrice.IsZero() {
		t.Errorf("broken-tile unit price = %s, want 0", broken.UnitPrice)
	}
	if !broken.Qty.Equal(decimal.NewFromInt(8)) {
		t.Errorf("broken-tile qty = %s, want 8 (quantity must survive the override)", broken.Qty)
	}
	if broken.Label != "Remplacement tuiles cassées" {
		t.Errorf("broken-tile label changed to %q", broken.Label)
	}
}

func TestApply_HydrofugeAloneTriggersFreeBrokenTiles(t *testing.T) {
	cat := rooferCatalog(t)
	in := []devis.LineItem{
		// Order does not matter: the cleaning line may come after.
		mustLine(t, cat, catalog.KeyTuileCassee, 3),
		mustLine(t, cat, catalog.KeyHydrofuge, 25),
	}

	out := Apply(cat, in, devis.Options{})

	for _, l := range out {
		if l.Key == catalog.KeyTuileCassee && !l.UnitPrice.IsZero() {
			t.Errorf("broken-tile unit price = %s, want 0", l.UnitPrice)
		}
	}
}

func TestApply_NoCleaningKeepsBrokenTilesPriced(t *testing.T) {
	cat := rooferCatalog(t)
	in := []devis.LineItem{mustLine(t, cat, catalog.KeyTuileCassee, 5)}

	out := Apply(cat, in, devis.Options{})

	for _, l := range out {
		if l.Key == catalog.KeyTuileCassee && !l.UnitPrice.Equal(decimal.RequireFromString("12.00")) {
			t.Errorf("broken-tile unit price = %s, want 12.00", l.UnitPrice)
		}
	}
}

func TestApply_LargeChimneyOverride(t *testing.T) {
	cat := rooferCatalog(t)
	in := []devis.LineItem{mustLine(t, cat, catalog.KeyDeposeCheminee, 1)}

	out := Apply(cat, in, devis.Options{LargeChimney: true})
	for _, l := range out {
		if l.Key == catalog.KeyDeposeCheminee && !l.UnitPrice.Equal(LargeChimneyPrice) {
			t.Errorf("chimney unit price = %s, want %s", l.UnitPrice, LargeChimneyPrice)
		}
	}

	out = Apply(cat, in, devis.Options{})
	for _, l := range out {
		if l.Key == catalog.KeyDeposeCheminee && !l.UnitPrice.Equal(decimal.RequireFromString("450.00")) {
			t.Errorf("chimney unit price = %s, want 450.00 without the toggle", l.UnitPrice)
		}
	}
}

func TestApply_InputSliceUntouched(t *testing.T) {
	cat := rooferCatalog(t)
	in := []devis.LineItem{
		mustLine(t, cat, catalog.KeyDemoussage, 40),
		mustLine(t, cat, catalog.KeyTuileCassee, 8),
	}

	Apply(cat, in, devis.Options{})

	if !in[1].UnitPrice.Equal(decimal.RequireFromString("12.00")) {
		t.Errorf("input line mutated: unit price = %s", in[1].UnitPrice)
	}
}

func TestApply_OtherTradePassesThrough(t *testing.T) {
	cat, ok := catalog.ForTrade(catalog.TradeMaconnerie)
	if !ok {
		t.Fatal("maconnerie catalog missing")
	}
	in := []devis.LineItem{{Key: "x", Label: "X", Qty: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)}}

	out := Apply(cat, in, devis.Options{LargeChimney: true})

	if len(out) != 1 || out[0].Key != "x" {
		t.Fatalf("lines = %v, want the input unchanged", out)
	}
}
