package signals

import (
	"github.com/ternarybob/sentio/internal/extract"
	"github.com/ternarybob/sentio/internal/sentiment"
)

// Scoring constants. The formula is fixed so that risk scores stay auditable:
// no learned weights, every term traceable to a named input.
const (
	// Direction term assigned to neutral sentiment
	neutralDirectionTerm = 0.4

	// Entity multiplier weights and their independent saturation caps
	institutionWeight = 0.15
	institutionCap    = 0.45
	metricWeight      = 0.05
	metricCap         = 0.20

	// Alignment adjustments when the model sentiment and the rule-based
	// directional tone agree
	bearishAlignmentBonus = 0.10
	bullishAlignmentBonus = -0.05
)

// Recommendation text per risk level
var recommendations = map[Level]string{
	LevelLow:      "Monitor — positive signal, continue standard monitoring",
	LevelMedium:   "Watch — neutral or mixed signals, check next 24h",
	LevelElevated: "Review — negative signal with entity context, analyst attention required",
	LevelHigh:     "Escalate — high-confidence negative signal involving known institution",
}

const opportunityRecommendation = "Opportunity — positive signal, consider for investment committee briefing"

// Aggregator combines one sentiment result and one extraction result into a
// risk signal. It is a pure function over its inputs: no state, no errors,
// safe for concurrent use.
type Aggregator struct{}

// NewAggregator creates a risk aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate computes the composite risk signal:
//
//	raw_score   = sentiment_direction x entity_multiplier + alignment_bonus
//	risk_score  = clamp(raw_score, 0, 1)
func (a *Aggregator) Aggregate(sent sentiment.Result, entities extract.Result) RiskSignal {
	// 1. Sentiment direction term (negative = high risk)
	var direction float64
	switch sent.Label {
	case sentiment.LabelNegative:
		direction = sent.Confidence
	case sentiment.LabelPositive:
		direction = 1.0 - sent.Confidence
	default:
		direction = neutralDirectionTerm
	}

	// 2. Entity multiplier - named institutions increase signal importance.
	// Institution and metric factors saturate independently.
	instFactor := minFloat(float64(len(entities.Institutions))*institutionWeight, institutionCap)
	metricFactor := minFloat(float64(len(entities.Metrics))*metricWeight, metricCap)
	multiplier := 1.0 + instFactor + metricFactor

	// 3. Directional alignment - model and rules agreeing strengthens the signal
	bonus := 0.0
	if sent.Label == sentiment.LabelNegative && entities.Directional == extract.DirectionalBearish {
		bonus = bearishAlignmentBonus
	} else if sent.Label == sentiment.LabelPositive && entities.Directional == extract.DirectionalBullish {
		bonus = bullishAlignmentBonus
	}

	// 4. Final score
	rawScore := direction*multiplier + bonus
	finalScore := clamp(rawScore, 0.0, 1.0)

	level := LevelForScore(finalScore)

	return RiskSignal{
		Text:      sent.Text,
		RiskScore: round(finalScore, 4),
		RiskLevel: level,
		Sentiment: SentimentSummary{
			Label:      sent.Label,
			Confidence: round(sent.Confidence, 4),
		},
		Directional:  entities.Directional,
		Institutions: entities.Institutions,
		Metrics:      entities.Metrics,
		ScoreComponents: ScoreComponents{
			SentimentDirection: round(direction, 4),
			EntityMultiplier:   round(multiplier, 4),
			AlignmentBonus:     round(bonus, 4),
			RawScore:           round(rawScore, 4),
		},
		Recommendation: recommendation(level, sent.Label),
	}
}

// AggregateBatch aggregates sentiment and extraction results in lock-step
func (a *Aggregator) AggregateBatch(sentiments []sentiment.Result, entities []extract.Result) []RiskSignal {
	count := len(sentiments)
	if len(entities) < count {
		count = len(entities)
	}

	risks := make([]RiskSignal, 0, count)
	for i := 0; i < count; i++ {
		risks = append(risks, a.Aggregate(sentiments[i], entities[i]))
	}
	return risks
}

// LevelForScore buckets a risk score into a level. Buckets are left-closed
// and non-overlapping: boundary values belong to the higher bucket.
func LevelForScore(score float64) Level {
	switch {
	case score < 0.3:
		return LevelLow
	case score < 0.6:
		return LevelMedium
	case score < 0.8:
		return LevelElevated
	default:
		return LevelHigh
	}
}

// recommendation selects the triage text. Positive sentiment at low or
// medium risk overrides to an opportunity recommendation.
func recommendation(level Level, label sentiment.Label) string {
	if label == sentiment.LabelPositive && (level == LevelLow || level == LevelMedium) {
		return opportunityRecommendation
	}
	return recommendations[level]
}
