package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestForTrade(t *testing.T) {
	for _, trade := range Trades() {
		cat, ok := ForTrade(trade)
		if !ok {
			t.Errorf("ForTrade(%q) not found", trade)
			continue
		}
		if cat.Trade != trade {
			t.Errorf("ForTrade(%q).Trade = %q", trade, cat.Trade)
		}
	}
	if _, ok := ForTrade("plombier"); ok {
		t.Error("ForTrade accepted an unknown trade")
	}
}

func TestTradesOrder(t *testing.T) {
	want := []string{TradeCouvreur, TradeMaconnerie, TradePlatrerie, TradeElagage, TradeCarrelage}
	got := Trades()
	if len(got) != len(want) {
		t.Fatalf("Trades() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Trades() = %v, want %v", got, want)
		}
	}
}

func TestRooferCatalogLookup(t *testing.T) {
	cat, _ := ForTrade(TradeCouvreur)

	e, ok := cat.Lookup(KeyFaitageSec)
	if !ok {
		t.Fatalf("Lookup(%q) not found", KeyFaitageSec)
	}
	if !e.UnitPrice.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("unit price = %s, want 50.00", e.UnitPrice)
	}

	if _, ok := cat.Lookup("inconnu"); ok {
		t.Error("Lookup accepted an unknown key")
	}
}

func TestStubTradesAreEmpty(t *testing.T) {
	for _, trade := range []string{TradeMaconnerie, TradePlatrerie, TradeElagage, TradeCarrelage} {
		cat, _ := ForTrade(trade)
		if cat.Len() != 0 {
			t.Errorf("%s catalog has %d entries, want 0", trade, cat.Len())
		}
	}
}

func TestWithOverrides(t *testing.T) {
	cat, _ := ForTrade(TradeCouvreur)

	over := cat.WithOverrides(map[string]decimal.Decimal{
		KeyFaitageSec: decimal.RequireFromString("55.00"),
		"inconnu":     decimal.RequireFromString("9.99"),
	})

	e, _ := over.Lookup(KeyFaitageSec)
	if !e.UnitPrice.Equal(decimal.RequireFromString("55.00")) {
		t.Errorf("overridden price = %s, want 55.00", e.UnitPrice)
	}

	// The canonical catalog stays untouched.
	orig, _ := cat.Lookup(KeyFaitageSec)
	if !orig.UnitPrice.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("canonical price mutated to %s", orig.UnitPrice)
	}

	if over.Len() != cat.Len() {
		t.Errorf("override copy has %d entries, want %d", over.Len(), cat.Len())
	}
}

func TestWithOverridesEmptyReturnsReceiver(t *testing.T) {
	cat, _ := ForTrade(TradeCouvreur)
	if cat.WithOverrides(nil) != cat {
		t.Error("empty override set should return the receiver")
	}
}

func TestLine(t *testing.T) {
	cat, _ := ForTrade(TradeCouvreur)

	l, ok := cat.Line(KeyDemoussage, decimal.NewFromInt(40))
	if !ok {
		t.Fatalf("Line(%q) not found", KeyDemoussage)
	}
	if l.Key != KeyDemoussage || l.Label == "" {
		t.Errorf("line = %+v, want key and label filled from the entry", l)
	}
	if !l.Total().Equal(decimal.RequireFromString("600.00")) {
		t.Errorf("line total = %s, want 600.00", l.Total())
	}

	if _, ok := cat.Line("inconnu", decimal.NewFromInt(1)); ok {
		t.Error("Line accepted an unknown key")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	cat, _ := ForTrade(TradeCouvreur)

	entries := cat.Entries()
	entries[0].UnitPrice = decimal.RequireFromString("999.00")

	e, _ := cat.Lookup(entries[0].Key)
	if e.UnitPrice.Equal(decimal.RequireFromString("999.00")) {
		t.Error("Entries() exposed the internal slice")
	}
}
