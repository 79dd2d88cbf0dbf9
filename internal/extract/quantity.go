// Package extract turns free-form French work descriptions into draft
// quote lines: a quantity parser, an ordered battery of trigger rules per
// trade, and the extractor that runs the battery over normalized text.
package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// frenchQty maps spelled-out approximate quantities to their value.
// Closed set: anything outside it parses to zero.
var frenchQty = map[string]int64{
	"quinzaine": 15,
	"douzaine":  12,
	"dizaine":   10,
	"quinze":    15,
	"douze":     12,
	"dix":       10,
	"vingt":     20,
}

// numericToken matches a leading numeric literal with an optional single
// comma-or-period decimal separator ("15", "12,5", "3.75", "15,").
var numericToken = regexp.MustCompile(`^(\d+)(?:[.,](\d*))?`)

// ParseQuantity converts a token to a non-negative quantity. Numeric
// literals win (comma accepted as decimal point), then the spelled-out
// French quantities. Unparseable input yields zero rather than an error:
// the caller keeps a visibly zero line for manual correction instead of
// failing the whole extraction.
func ParseQuantity(token string) decimal.Decimal {
	token = strings.ToLower(strings.TrimSpace(token))

	if m := numericToken.FindStringSubmatch(token); m != nil {
		s := m[1]
		if m[2] != "" {
			s += "." + m[2]
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
	}

	if n, ok := frenchQty[token]; ok {
		return decimal.NewFromInt(n)
	}
	return decimal.Zero
}
