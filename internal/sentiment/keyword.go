package sentiment

import (
	"context"
	"strings"
	"time"
)

// Keyword lists for the rule-based fallback. Lowercase because matching is
// substring containment over the lowercased headline.
var positiveKeywords = []string{
	"beats", "record", "surge", "strong", "growth", "raises guidance",
	"outperforms", "profit up", "revenue growth", "dividend increase",
	"upgrade", "buyback", "acquisition accretive", "cost reduction",
	"margin expansion", "above expectations", "recovery", "resilient",
}

var negativeKeywords = []string{
	"misses", "warning", "writedown", "write-off", "loss", "decline",
	"downgrade", "default", "breach", "violation", "lawsuit", "fine",
	"layoffs", "collapse", "below expectations", "guidance cut",
	"impairment", "npl", "non-performing", "provision", "outflows",
}

const (
	keywordModelName = "rule-based-keyword-v1"

	// Confidence assigned when neither keyword list wins
	neutralConfidence = 0.60
)

// KeywordClassifier is the deterministic fallback when the model-backed
// provider is unavailable. It cannot fail and needs no network access.
type KeywordClassifier struct{}

// NewKeywordClassifier creates the rule-based fallback classifier
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// ModelName returns the identifier recorded on results
func (c *KeywordClassifier) ModelName() string {
	return keywordModelName
}

// Classify scores each text by counting keyword hits against the positive
// and negative lists. The error return is always nil; it exists to satisfy
// the Classifier interface.
func (c *KeywordClassifier) Classify(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, 0, len(texts))
	for _, text := range texts {
		results = append(results, c.classifyOne(text))
	}
	return results, nil
}

func (c *KeywordClassifier) classifyOne(text string) Result {
	start := time.Now()
	lower := strings.ToLower(text)

	posHits := countHits(lower, positiveKeywords)
	negHits := countHits(lower, negativeKeywords)

	var label Label
	var confidence float64
	switch {
	case posHits > negHits:
		label = LabelPositive
		confidence = minFloat(0.5+0.1*float64(posHits), 0.95)
	case negHits > posHits:
		label = LabelNegative
		confidence = minFloat(0.5+0.1*float64(negHits), 0.95)
	default:
		label = LabelNeutral
		confidence = neutralConfidence
	}

	return Result{
		Text:       text,
		Label:      label,
		Confidence: confidence,
		Scores:     roundScores(syntheticScores(label, confidence)),
		Model:      keywordModelName,
		LatencyMs:  roundTo(float64(time.Since(start).Microseconds())/1000.0, 1),
	}
}

// syntheticScores builds a 3-class distribution that sums to 1 by
// construction: the winning label gets the confidence and the remainder
// is split equally across the other two labels.
func syntheticScores(label Label, confidence float64) map[Label]float64 {
	remainder := (1.0 - confidence) / 2.0
	scores := map[Label]float64{
		LabelPositive: remainder,
		LabelNegative: remainder,
		LabelNeutral:  remainder,
	}
	scores[label] = confidence
	return scores
}

func countHits(lower string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
