// Package sentiment classifies financial headline text as positive, negative
// or neutral. Two strategies satisfy the Classifier interface: a model-backed
// classifier calling the OpenAI chat completions API, and a deterministic
// keyword fallback that requires no network access.
package sentiment

import (
	"context"
	"math"
)

// Label is a sentiment class
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Result contains the classification of a single headline.
// Label is always the argmax of Scores and Confidence equals Scores[Label].
type Result struct {
	Text       string            `json:"text"`
	Label      Label             `json:"label"`
	Confidence float64           `json:"confidence"` // 0.0 - 1.0
	Scores     map[Label]float64 `json:"scores"`     // Probabilities for all 3 classes
	Model      string            `json:"model"`      // Which model produced this result
	LatencyMs  float64           `json:"latency_ms"`
}

// IsRiskSignal reports whether this headline constitutes a negative risk signal
func (r Result) IsRiskSignal() bool {
	return r.Label == LabelNegative && r.Confidence >= 0.6
}

// Classifier is the capability the pipeline requires from a sentiment
// strategy: one result per input text, same order as the input.
type Classifier interface {
	Classify(ctx context.Context, texts []string) ([]Result, error)
	ModelName() string
}

// roundTo rounds to the specified decimal places
func roundTo(value float64, places int) float64 {
	mult := math.Pow(10, float64(places))
	return math.Round(value*mult) / mult
}

// roundScores rounds a class distribution to 4 decimal places. Rounding
// before the argmax keeps Confidence equal to Scores[Label] exactly.
func roundScores(scores map[Label]float64) map[Label]float64 {
	rounded := make(map[Label]float64, len(scores))
	for k, v := range scores {
		rounded[k] = roundTo(v, 4)
	}
	return rounded
}
