// Package signals combines sentiment and entity extraction results into a
// composite, auditable risk signal. The scoring formula is fixed and fully
// decomposed: every score is reconstructable from its recorded components,
// with no learned weights and no hidden terms.
package signals

import (
	"github.com/ternarybob/sentio/internal/extract"
	"github.com/ternarybob/sentio/internal/sentiment"
)

// Signal descriptions - static explanations of what each output represents
const (
	DescriptionRiskScore  = "Composite 0-1 risk score combining model sentiment with rule-based entity context. Higher scores indicate stronger negative signals involving known institutions."
	DescriptionComponents = "Named intermediate terms that reconstruct the risk score: sentiment_direction x entity_multiplier + alignment_bonus = raw_score, clamped to [0,1]."
)

// Level is a four-bucket discretization of the continuous risk score
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelElevated Level = "elevated"
	LevelHigh     Level = "high"
)

// SentimentSummary carries the sentiment fields echoed on a risk signal
type SentimentSummary struct {
	Label      sentiment.Label `json:"label"`
	Confidence float64         `json:"confidence"`
}

// ScoreComponents is the auditable breakdown of a risk score. Each value is
// rounded to 4 decimal places; RawScore is the pre-clamp composite.
type ScoreComponents struct {
	SentimentDirection float64 `json:"sentiment_direction"`
	EntityMultiplier   float64 `json:"entity_multiplier"`
	AlignmentBonus     float64 `json:"alignment_bonus"`
	RawScore           float64 `json:"raw_score"`
}

// RiskSignal is the composite risk assessment for a single headline
type RiskSignal struct {
	Text            string              `json:"text"`
	RiskScore       float64             `json:"risk_score"` // 0.0 - 1.0
	RiskLevel       Level               `json:"risk_level"`
	Sentiment       SentimentSummary    `json:"sentiment"`
	Directional     extract.Directional `json:"directional"`
	Institutions    []string            `json:"institutions"`
	Metrics         []string            `json:"metrics"`
	ScoreComponents ScoreComponents     `json:"score_components"`
	Recommendation  string              `json:"recommendation"`
}
