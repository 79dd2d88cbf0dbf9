package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"

	"devia/internal/catalog"
	"devia/internal/devis"
)

const ridgeAndTiles = "15 ml de faîtage à refaire à sec et changer une quinzaine de tuiles."

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func checkTotals(t *testing.T, got devis.Totals, subtotal, vat, total string) {
	t.Helper()
	if !got.Subtotal.Equal(d(subtotal)) {
		t.Errorf("Subtotal = %s, want %s", got.Subtotal, subtotal)
	}
	if !got.VAT.Equal(d(vat)) {
		t.Errorf("VAT = %s, want %s", got.VAT, vat)
	}
	if !got.Total.Equal(d(total)) {
		t.Errorf("Total = %s, want %s", got.Total, total)
	}
}

func TestRun_RidgeAndTiles(t *testing.T) {
	res, err := Run(Request{Text: ridgeAndTiles, Trade: catalog.TradeCouvreur, VATRate: 10})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		catalog.KeyVerification,
		catalog.KeyMiseEnPlace,
		catalog.KeyDeplacement,
		catalog.KeyFournitures,
		catalog.KeyFaitageSec,
		catalog.KeyChassisBois,
		catalog.KeyPoseFaitieres,
		catalog.KeyTuile,
	}
	if len(res.Lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(res.Lines), len(want))
	}
	for i, key := range want {
		if res.Lines[i].Key != key {
			t.Errorf("line %d = %s, want %s", i, res.Lines[i].Key, key)
		}
	}

	checkTotals(t, res.Totals, "1630.00", "163.00", "1793.00")
}

func TestRun_RidgeAndTilesWithKit(t *testing.T) {
	res, err := Run(Request{
		Text:    ridgeAndTiles,
		Trade:   catalog.TradeCouvreur,
		VATRate: 10,
		Options: devis.Options{AutoRidgeKit: true},
	})
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, l := range res.Lines {
		if l.Key == catalog.KeyPoseCloisoir {
			found = true
			if !l.Qty.Equal(d("15")) {
				t.Errorf("closoir qty = %s, want 15", l.Qty)
			}
		}
	}
	if !found {
		t.Fatal("closoir line missing with the ridge-kit option on")
	}

	checkTotals(t, res.Totals, "1900.00", "190.00", "2090.00")
}

func TestRun_EmptyTextYieldsBaselines(t *testing.T) {
	res, err := Run(Request{Trade: catalog.TradeCouvreur, VATRate: 10})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Lines) != 4 {
		t.Fatalf("got %d lines, want verification plus the 3 baselines", len(res.Lines))
	}
	checkTotals(t, res.Totals, "55.00", "5.50", "60.50")
}

func TestRun_Overrides(t *testing.T) {
	res, err := Run(Request{
		Text:    "reprendre 10 ml de faîtage",
		Trade:   catalog.TradeCouvreur,
		VATRate: 0,
		Overrides: map[string]decimal.Decimal{
			catalog.KeyFaitageSec: d("60.00"),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, l := range res.Lines {
		if l.Key == catalog.KeyFaitageSec && !l.UnitPrice.Equal(d("60.00")) {
			t.Errorf("faitage unit price = %s, want the 60.00 override", l.UnitPrice)
		}
	}
}

func TestRun_ManualLinesGoThroughBusinessRules(t *testing.T) {
	cat, _ := catalog.ForTrade(catalog.TradeCouvreur)
	manual, _ := cat.Line(catalog.KeyTuileCassee, d("6"))

	// The text carries a cleaning operation, so the manually added
	// broken-tile line must come out free.
	res, err := Run(Request{
		Text:    "démoussage complet sur 60 m2",
		Trade:   catalog.TradeCouvreur,
		VATRate: 10,
		Manual:  []devis.LineItem{manual},
	})
	if err != nil {
		t.Fatal(err)
	}

	last := res.Lines[len(res.Lines)-1]
	if last.Key != catalog.KeyTuileCassee {
		t.Fatalf("last line = %s, want the manual broken-tile line", last.Key)
	}
	if !last.UnitPrice.IsZero() {
		t.Errorf("manual broken-tile price = %s, want 0", last.UnitPrice)
	}
	if !last.Qty.Equal(d("6")) {
		t.Errorf("manual broken-tile qty = %s, want 6", last.Qty)
	}
}

func TestRun_LargeChimney(t *testing.T) {
	res, err := Run(Request{
		Text:    "déposer la cheminée en mauvais état",
		Trade:   catalog.TradeCouvreur,
		VATRate: 10,
		Options: devis.Options{LargeChimney: true},
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, l := range res.Lines {
		if l.Key == catalog.KeyDeposeCheminee && !l.UnitPrice.Equal(d("650.00")) {
			t.Errorf("chimney unit price = %s, want 650.00", l.UnitPrice)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"valid", Request{Trade: catalog.TradeCouvreur, VATRate: 10}, false},
		{"vat over 100", Request{Trade: catalog.TradeCouvreur, VATRate: 101}, true},
		{"vat negative", Request{Trade: catalog.TradeCouvreur, VATRate: -1}, true},
		{"unknown trade", Request{Trade: "plombier", VATRate: 10}, true},
		{
			"negative override",
			Request{Trade: catalog.TradeCouvreur, VATRate: 10, Overrides: map[string]decimal.Decimal{catalog.KeyTuile: d("-1")}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRun_StubTrade(t *testing.T) {
	res, err := Run(Request{Text: "monter un mur de 10 m2", Trade: catalog.TradeMaconnerie, VATRate: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Lines) != 0 {
		t.Errorf("got %d lines for a rule-less trade, want 0", len(res.Lines))
	}
	checkTotals(t, res.Totals, "0.00", "0.00", "0.00")
}
