package extract

import (
	"regexp"

	"devia/internal/catalog"
)

// QtyKind selects how a rule pulls its quantity out of the text.
type QtyKind int

const (
	QtyFlat   QtyKind = iota // quantity pinned to 1, text numbers ignored
	QtyLinear                // number followed by a meter unit token
	QtyArea                  // number followed by a square-meter unit token
	QtyCount                 // rule-specific pattern, numeric or spelled-out
)

// Toggle names a boolean option a rule can be gated on.
const OptionRidgeKit = "auto_ridge_kit"

// Rule is one trigger of the extraction battery. Rules are evaluated in
// declaration order against the lowercased text; each match adds one draft
// line and never suppresses other rules, except through Unless.
type Rule struct {
	// Key is the catalog entry the rule produces a line for.
	Key string
	// Trigger anchors the operation in the text. A nil trigger is a
	// baseline rule that always fires.
	Trigger *regexp.Regexp
	// Kind selects the quantity extraction for the matched clause.
	Kind QtyKind
	// Qty overrides the generic quantity pattern for QtyCount rules.
	// Its first capture group is fed through ParseQuantity.
	Qty *regexp.Regexp
	// Unless skips the rule when any of these keys already matched,
	// so a generic fallback stays quiet once a more specific rule of
	// the same keyword family has fired.
	Unless []string
	// Option gates the rule on a named toggle.
	Option string
}

// Generic quantity patterns, applied to the clause around the trigger.
var (
	linearQty = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:ml\b|m\b|m[eè]tres?(?:\s+lin[ée]aires?)?)`)
	areaQty   = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:m2\b|m²|m[eè]tres?\s+carr[ée]s?)`)
)

// Roofer triggers. Patterns run over lowercased text, so only lowercase
// letters appear, but accented and plain spellings are both accepted.
var (
	trigFaitageMaconne = regexp.MustCompile(`fa[iî]tages?[^.;]*(?:maçonn|maconn|mortier|scell)|(?:maçonn|maconn)[^.;]*fa[iî]tages?`)
	trigFaitage        = regexp.MustCompile(`fa[iî]tages?`)
	trigFaitageSec     = regexp.MustCompile(`fa[iî]tages?[^.;]*(?:à|a)\s+sec|closoirs?|fa[iî]ti[eè]res?[^.;]*(?:à|a)\s+sec`)
	trigDemoussage     = regexp.MustCompile(`d[ée]mouss`)
	trigHydrofuge      = regexp.MustCompile(`hydrofuge|anti[- ]?mousse`)
	trigGouttiere      = regexp.MustCompile(`goutti[eè]res?`)
	trigTuileCassee    = regexp.MustCompile(`tuiles?\s+cass[ée]es?`)
	trigTuile          = regexp.MustCompile(`(?:chang|remplac)\w*[^.;]*tuiles?`)
	trigCheminee       = regexp.MustCompile(`(?:d[ée]pos|d[ée]mol|enlev|retir|supprim)\w*[^.;]*chemin[ée]es?|chemin[ée]es?[^.;]*(?:d[ée]pos|d[ée]mol|enlev|retir|supprim)`)

	qtyTuile       = regexp.MustCompile(`(?:chang|remplac)\w*\s+(?:(?:une?|la|les|des)\s+)?(\d+(?:[.,]\d+)?|[a-zàâçéèêëîïôûùüœ]+)(?:\s+de)?\s+tuiles?\b`)
	qtyTuileCassee = regexp.MustCompile(`(\d+(?:[.,]\d+)?|[a-zàâçéèêëîïôûùüœ]+)\s+(?:de\s+)?tuiles?\s+cass[ée]es?`)
)

// rooferRules is the ordered battery for the roofer trade. The three
// baseline lines come first, then the ridge family (masonry variant ahead
// of the dry-system decomposition it suppresses), surface treatments, and
// the count/flat operations.
var rooferRules = []Rule{
	{Key: catalog.KeyMiseEnPlace, Kind: QtyFlat},
	{Key: catalog.KeyDeplacement, Kind: QtyFlat},
	{Key: catalog.KeyFournitures, Kind: QtyFlat},

	{Key: catalog.KeyFaitageMaconne, Trigger: trigFaitageMaconne, Kind: QtyLinear},
	{Key: catalog.KeyFaitageSec, Trigger: trigFaitage, Kind: QtyLinear, Unless: []string{catalog.KeyFaitageMaconne}},
	{Key: catalog.KeyChassisBois, Trigger: trigFaitage, Kind: QtyLinear, Unless: []string{catalog.KeyFaitageMaconne}},
	{Key: catalog.KeyPoseFaitieres, Trigger: trigFaitage, Kind: QtyLinear, Unless: []string{catalog.KeyFaitageMaconne}},
	{Key: catalog.KeyPoseCloisoir, Trigger: trigFaitageSec, Kind: QtyLinear, Unless: []string{catalog.KeyFaitageMaconne}, Option: OptionRidgeKit},

	{Key: catalog.KeyDemoussage, Trigger: trigDemoussage, Kind: QtyArea},
	{Key: catalog.KeyHydrofuge, Trigger: trigHydrofuge, Kind: QtyArea},
	{Key: catalog.KeyGouttiere, Trigger: trigGouttiere, Kind: QtyLinear},

	{Key: catalog.KeyTuileCassee, Trigger: trigTuileCassee, Kind: QtyCount, Qty: qtyTuileCassee},
	{Key: catalog.KeyTuile, Trigger: trigTuile, Kind: QtyCount, Qty: qtyTuile, Unless: []string{catalog.KeyTuileCassee}},

	{Key: catalog.KeyDeposeCheminee, Trigger: trigCheminee, Kind: QtyFlat},
}

// rulesForTrade returns the extraction battery of a trade. Trades without
// rules yield no extractable operations.
func rulesForTrade(trade string) []Rule {
	if trade == catalog.TradeCouvreur {
		return rooferRules
	}
	return nil
}
