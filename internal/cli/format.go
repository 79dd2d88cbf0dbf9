// Package cli provides French-locale formatting and terminal rendering
// for devis previews.
package cli

import (
	"strings"

	"github.com/shopspring/decimal"

	"devia/internal/devis"
)

// FormatEUR formats an amount as French currency notation: two decimals,
// comma decimal separator, narrow spaces as thousands separators,
// e.g. 1234.5 -> "1 234,50 €".
func FormatEUR(amount decimal.Decimal) string {
	return formatDecimal(amount.StringFixed(2)) + " €"
}

// FormatQty formats a quantity with its unit, trimming needless decimals:
// 15 ml, 12,5 m², 1 forfait.
func FormatQty(qty decimal.Decimal, unit devis.Unit) string {
	s := qty.String()
	if strings.Contains(s, ".") {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s + " " + unit.Display()
}

// formatDecimal converts a fixed "-1234.56" into "-1 234,56".
func formatDecimal(raw string) string {
	neg := strings.HasPrefix(raw, "-")
	if neg {
		raw = raw[1:]
	}

	intPart, decPart, _ := strings.Cut(raw, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}
