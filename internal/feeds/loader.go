// Package feeds loads financial news headlines from the bundled sample set,
// JSON files, or RSS feeds, and optionally polls feeds on a cron schedule.
package feeds

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ternarybob/sentio/internal/models"
)

// Curated sample headlines covering real financial language patterns.
// No network required; this is the default dataset for demo runs.
var builtinHeadlines = []models.Headline{
	// Positive signals
	{Text: "Goldman Sachs beats Q3 earnings expectations by 15%, raises full-year guidance", Source: "Reuters", Date: "2024-10-15"},
	{Text: "ECB signals end of rate hiking cycle as inflation approaches 2% target", Source: "FT", Date: "2024-10-14"},
	{Text: "JPMorgan reports record investment banking fees on resurgent M&A activity", Source: "Bloomberg", Date: "2024-10-13"},
	{Text: "Visa card payment volumes surge 12% YoY driven by travel and e-commerce recovery", Source: "Reuters", Date: "2024-10-12"},
	{Text: "European banks capital ratios strengthen as loan loss provisions normalize", Source: "FT", Date: "2024-10-11"},
	{Text: "BlackRock AUM hits $10 trillion milestone as investors return to equity markets", Source: "Bloomberg", Date: "2024-10-10"},
	{Text: "Santander consumer credit portfolio quality improves across all European markets", Source: "Reuters", Date: "2024-10-09"},
	// Negative signals
	{Text: "Credit Suisse faces potential $2bn writedown on leveraged loan exposure", Source: "Bloomberg", Date: "2024-10-08"},
	{Text: "Deutsche Bank warns of rising NPL ratios as commercial real estate defaults mount", Source: "FT", Date: "2024-10-07"},
	{Text: "Fed signals rates higher for longer, triggering selloff in rate-sensitive financials", Source: "Reuters", Date: "2024-10-06"},
	{Text: "Regional US banks report surge in deposit outflows amid confidence crisis", Source: "Bloomberg", Date: "2024-10-05"},
	{Text: "HSBC profit warning issued as Asia operations face headwinds from China slowdown", Source: "FT", Date: "2024-10-04"},
	{Text: "BNP Paribas trading revenues collapse 23% on adverse fixed income conditions", Source: "Reuters", Date: "2024-10-03"},
	{Text: "Moody's downgrades 10 US regional banks citing commercial real estate concentration risk", Source: "Bloomberg", Date: "2024-10-02"},
	// Neutral / mixed
	{Text: "Bank of England holds rates steady, maintains data-dependent forward guidance", Source: "Reuters", Date: "2024-10-01"},
	{Text: "Basel IV implementation timeline extended to 2026 pending final calibration", Source: "FT", Date: "2024-09-30"},
	{Text: "ING Group announces strategic review of retail banking operations in Germany", Source: "Bloomberg", Date: "2024-09-29"},
	{Text: "Citigroup restructuring enters final phase with 7,000 roles eliminated to date", Source: "Reuters", Date: "2024-09-28"},
	{Text: "SWIFT announces expansion of ISO 20022 migration deadline to March 2025", Source: "FT", Date: "2024-09-27"},
	{Text: "European Central Bank maintains asset purchase programme at current pace", Source: "Bloomberg", Date: "2024-09-26"},
}

// SampleHeadlines returns a copy of the bundled sample dataset
func SampleHeadlines() []models.Headline {
	headlines := make([]models.Headline, len(builtinHeadlines))
	copy(headlines, builtinHeadlines)
	return headlines
}

// LoadFile loads headlines from a JSON file containing an array of
// {text, source, date, label} records. Records with empty text are skipped.
func LoadFile(path string) ([]models.Headline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read headlines file %s: %w", path, err)
	}

	var raw []models.Headline
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse headlines file %s: %w", path, err)
	}

	headlines := make([]models.Headline, 0, len(raw))
	for _, h := range raw {
		if h.Text == "" {
			continue
		}
		if h.Source == "" {
			h.Source = "file"
		}
		headlines = append(headlines, h)
	}

	return headlines, nil
}
