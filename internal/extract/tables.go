package extract

import (
	"regexp"
	"strings"
)

// Known financial institution names. Matching is case-insensitive on whole
// word boundaries so "ING" never fires inside "leveraging".
var knownInstitutions = []string{
	"Goldman Sachs", "JPMorgan", "Citigroup", "Citi", "Morgan Stanley",
	"Bank of America", "Wells Fargo", "Deutsche Bank", "HSBC", "Barclays",
	"BNP Paribas", "Santander", "ING", "Commerzbank", "Credit Suisse",
	"UBS", "ABN AMRO", "Lloyds", "NatWest", "Standard Chartered",
	"BlackRock", "Vanguard", "Fidelity", "PIMCO", "Bridgewater",
	"ECB", "Federal Reserve", "Fed", "Bank of England", "BoE",
	"Moody's", "S&P", "Fitch", "Visa", "Mastercard", "PayPal",
	"SWIFT", "DTCC", "Euroclear", "Clearstream",
}

// metricPattern pairs a word-boundary regex with the canonical metric label
// it maps to. A label appears at most once in a result no matter how many
// times its pattern matches.
type metricPattern struct {
	pattern *regexp.Regexp
	label   string
}

var metricPatterns = []metricPattern{
	{regexp.MustCompile(`(?i)\bEPS\b`), "earnings_per_share"},
	{regexp.MustCompile(`(?i)\bEBITDA\b`), "ebitda"},
	{regexp.MustCompile(`(?i)\bEBIT\b`), "ebit"},
	{regexp.MustCompile(`(?i)\bROE\b`), "return_on_equity"},
	{regexp.MustCompile(`(?i)\bROA\b`), "return_on_assets"},
	{regexp.MustCompile(`(?i)\bNPL\b`), "non_performing_loans"},
	{regexp.MustCompile(`(?i)\bNIM\b`), "net_interest_margin"},
	{regexp.MustCompile(`(?i)\bCET1\b`), "cet1_capital_ratio"},
	{regexp.MustCompile(`(?i)\bAUM\b`), "assets_under_management"},
	{regexp.MustCompile(`(?i)\b(?:net\s+)?(?:profit|income)\b`), "profit"},
	{regexp.MustCompile(`(?i)\brevenue\b`), "revenue"},
	{regexp.MustCompile(`(?i)\boperating\s+(?:profit|income)\b`), "operating_profit"},
	{regexp.MustCompile(`(?i)\bdividend\b`), "dividend"},
	{regexp.MustCompile(`(?i)\bbuyback\b`), "share_buyback"},
	{regexp.MustCompile(`(?i)\bwrite(?:-?down|-?off)\b`), "write_down"},
	{regexp.MustCompile(`(?i)\bimpairment\b`), "impairment"},
	{regexp.MustCompile(`(?i)\bprovision\b`), "loan_loss_provision"},
	{regexp.MustCompile(`(?i)\bloan\s+loss\b`), "loan_loss"},
}

// Directional signal words. Counted as unanchored substring containment over
// the lowercased headline, not on word boundaries; the goal is simple
// lexical tilt, not precise parsing.
var bullishSignals = []string{
	"beats", "beat", "surges", "surge", "rises", "rise", "grows", "growth",
	"record", "raises", "strong", "above", "outperforms", "upgrade",
	"accretive", "expansion", "improves", "improvement", "recovery",
}

var bearishSignals = []string{
	"misses", "miss", "falls", "decline", "drops", "warning", "cut",
	"below", "write-down", "writedown", "default", "breach", "fine",
	"collapse", "downgrade", "layoffs", "loss", "surge outflows",
}

// numericPattern matches monetary and percentage-like mentions:
// $1.2bn, €500m, 15%, -3.2%, 25bps. The signed number is the only
// required part; group 1 captures it for the zero-value check.
var numericPattern = regexp.MustCompile(
	`(?i)[$€£¥]?\s*(-?\d+(?:\.\d+)?)\s*(?:bn|mn|m|k|trillion|billion|million|thousand)?\s*(?:%|percent|bps|bp)?`,
)

// institutionPattern matches any registry name on word boundaries,
// case-insensitively. Compiled once at package init and shared read-only.
var institutionPattern = compileInstitutionPattern()

func compileInstitutionPattern() *regexp.Regexp {
	quoted := make([]string, 0, len(knownInstitutions))
	for _, inst := range knownInstitutions {
		quoted = append(quoted, regexp.QuoteMeta(inst))
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// canonicalInstitutions maps the lowercased registry name back to the
// registry spelling so "GOLDMAN SACHS" and "goldman sachs" collapse to
// the same entry.
var canonicalInstitutions = buildCanonicalInstitutions()

func buildCanonicalInstitutions() map[string]string {
	canonical := make(map[string]string, len(knownInstitutions))
	for _, inst := range knownInstitutions {
		canonical[strings.ToLower(inst)] = inst
	}
	return canonical
}
