package signals

import (
	"sort"

	"github.com/ternarybob/sentio/internal/sentiment"
)

// Summary contains aggregate statistics over one analysis batch
type Summary struct {
	Total                 int                     `json:"total"`
	SentimentCounts       map[sentiment.Label]int `json:"sentiment_counts"`
	RiskCounts            map[Level]int           `json:"risk_counts"`
	MeanRiskScore         float64                 `json:"mean_risk_score"`
	TopSignals            []RiskSignal            `json:"top_signals"`
	ScoreDescription      string                  `json:"score_description"`
	ComponentsDescription string                  `json:"components_description"`
}

// Summarize rolls a batch of risk signals up into summary statistics.
// TopSignals holds the topN highest-scoring signals in descending score
// order; ties keep their batch order so the rollup stays deterministic.
func Summarize(risks []RiskSignal, topN int) Summary {
	summary := Summary{
		Total: len(risks),
		SentimentCounts: map[sentiment.Label]int{
			sentiment.LabelPositive: 0,
			sentiment.LabelNegative: 0,
			sentiment.LabelNeutral:  0,
		},
		RiskCounts: map[Level]int{
			LevelLow:      0,
			LevelMedium:   0,
			LevelElevated: 0,
			LevelHigh:     0,
		},
		TopSignals:            []RiskSignal{},
		ScoreDescription:      DescriptionRiskScore,
		ComponentsDescription: DescriptionComponents,
	}

	if len(risks) == 0 {
		return summary
	}

	total := 0.0
	for _, risk := range risks {
		summary.SentimentCounts[risk.Sentiment.Label]++
		summary.RiskCounts[risk.RiskLevel]++
		total += risk.RiskScore
	}
	summary.MeanRiskScore = round(total/float64(len(risks)), 4)

	sorted := make([]RiskSignal, len(risks))
	copy(sorted, risks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RiskScore > sorted[j].RiskScore
	})

	if topN > len(sorted) {
		topN = len(sorted)
	}
	if topN > 0 {
		summary.TopSignals = sorted[:topN]
	}

	return summary
}
