package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"devia/internal/catalog"
	"devia/internal/devis"
)

var one = decimal.NewFromInt(1)

// Extract scans a free-text work description and produces the ordered
// draft line list for the catalog's trade. Rules fire independently: a
// single sentence naming several operations yields one line per
// recognized operation. A recognized measured operation whose quantity
// cannot be determined still yields a zero-quantity line, so the
// tradesperson can spot and correct it instead of losing the line.
func Extract(text string, cat *catalog.Catalog, opts devis.Options) []devis.LineItem {
	txt := strings.ToLower(text)

	var lines []devis.LineItem
	matched := make(map[string]bool)

	for _, r := range rulesForTrade(cat.Trade) {
		if r.Option == OptionRidgeKit && !opts.AutoRidgeKit {
			continue
		}
		if skipUnless(r, matched) {
			continue
		}

		qty := one
		if r.Trigger != nil {
			loc := r.Trigger.FindStringIndex(txt)
			if loc == nil {
				continue
			}
			qty = ruleQuantity(r, txt, loc)
		}

		line, ok := cat.Line(r.Key, qty)
		if !ok {
			continue
		}
		lines = append(lines, line)
		matched[r.Key] = true
	}

	return lines
}

func skipUnless(r Rule, matched map[string]bool) bool {
	for _, key := range r.Unless {
		if matched[key] {
			return true
		}
	}
	return false
}

// ruleQuantity pulls the quantity for a matched rule. Measured kinds
// search the clause surrounding the trigger, so a number belonging to a
// different sentence never bleeds into this operation.
func ruleQuantity(r Rule, txt string, loc []int) decimal.Decimal {
	switch r.Kind {
	case QtyFlat:
		return one
	case QtyLinear:
		return clauseQuantity(linearQty, txt, loc)
	case QtyArea:
		return clauseQuantity(areaQty, txt, loc)
	case QtyCount:
		if m := r.Qty.FindStringSubmatch(clauseAround(txt, loc)); m != nil {
			return ParseQuantity(m[1])
		}
		return decimal.Zero
	}
	return decimal.Zero
}

func clauseQuantity(pat *regexp.Regexp, txt string, loc []int) decimal.Decimal {
	if m := pat.FindStringSubmatch(clauseAround(txt, loc)); m != nil {
		return ParseQuantity(m[1])
	}
	return decimal.Zero
}

// clauseAround returns the sentence fragment containing the trigger
// match, bounded by periods, semicolons, or newlines.
func clauseAround(txt string, loc []int) string {
	start := 0
	if i := strings.LastIndexAny(txt[:loc[0]], ".;\n"); i >= 0 {
		start = i + 1
	}
	end := len(txt)
	if i := strings.IndexAny(txt[loc[1]:], ".;\n"); i >= 0 {
		end = loc[1] + i
	}
	return txt[start:end]
}
