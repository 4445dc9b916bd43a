package signals

import (
	"testing"

	"github.com/ternarybob/sentio/internal/sentiment"
)

func TestSummarize(t *testing.T) {
	risks := []RiskSignal{
		{Text: "a", RiskScore: 0.9, RiskLevel: LevelHigh, Sentiment: SentimentSummary{Label: sentiment.LabelNegative}},
		{Text: "b", RiskScore: 0.1, RiskLevel: LevelLow, Sentiment: SentimentSummary{Label: sentiment.LabelPositive}},
		{Text: "c", RiskScore: 0.5, RiskLevel: LevelMedium, Sentiment: SentimentSummary{Label: sentiment.LabelNeutral}},
		{Text: "d", RiskScore: 0.7, RiskLevel: LevelElevated, Sentiment: SentimentSummary{Label: sentiment.LabelNegative}},
	}

	summary := Summarize(risks, 2)

	if summary.Total != 4 {
		t.Errorf("Total = %d, want 4", summary.Total)
	}
	if summary.SentimentCounts[sentiment.LabelNegative] != 2 {
		t.Errorf("negative count = %d, want 2", summary.SentimentCounts[sentiment.LabelNegative])
	}
	if summary.RiskCounts[LevelHigh] != 1 || summary.RiskCounts[LevelLow] != 1 {
		t.Errorf("risk counts = %v", summary.RiskCounts)
	}
	if summary.MeanRiskScore != 0.55 {
		t.Errorf("MeanRiskScore = %v, want 0.55", summary.MeanRiskScore)
	}

	if len(summary.TopSignals) != 2 {
		t.Fatalf("TopSignals len = %d, want 2", len(summary.TopSignals))
	}
	if summary.TopSignals[0].Text != "a" || summary.TopSignals[1].Text != "d" {
		t.Errorf("TopSignals order = [%s, %s], want [a, d]",
			summary.TopSignals[0].Text, summary.TopSignals[1].Text)
	}

	if summary.ScoreDescription != DescriptionRiskScore {
		t.Errorf("ScoreDescription = %q, want the static score description", summary.ScoreDescription)
	}
	if summary.ComponentsDescription != DescriptionComponents {
		t.Errorf("ComponentsDescription = %q, want the static components description", summary.ComponentsDescription)
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, 5)

	if summary.Total != 0 {
		t.Errorf("Total = %d, want 0", summary.Total)
	}
	if summary.MeanRiskScore != 0 {
		t.Errorf("MeanRiskScore = %v, want 0", summary.MeanRiskScore)
	}
	if len(summary.TopSignals) != 0 {
		t.Errorf("TopSignals = %v, want empty", summary.TopSignals)
	}
}

func TestSummarize_TopNLargerThanBatch(t *testing.T) {
	risks := []RiskSignal{
		{Text: "a", RiskScore: 0.4, RiskLevel: LevelMedium, Sentiment: SentimentSummary{Label: sentiment.LabelNeutral}},
	}

	summary := Summarize(risks, 10)
	if len(summary.TopSignals) != 1 {
		t.Errorf("TopSignals len = %d, want 1", len(summary.TopSignals))
	}
}

func TestSummarize_TiesKeepBatchOrder(t *testing.T) {
	risks := []RiskSignal{
		{Text: "first", RiskScore: 0.5, RiskLevel: LevelMedium, Sentiment: SentimentSummary{Label: sentiment.LabelNeutral}},
		{Text: "second", RiskScore: 0.5, RiskLevel: LevelMedium, Sentiment: SentimentSummary{Label: sentiment.LabelNeutral}},
	}

	summary := Summarize(risks, 2)
	if summary.TopSignals[0].Text != "first" || summary.TopSignals[1].Text != "second" {
		t.Errorf("tied signals reordered: %v", []string{summary.TopSignals[0].Text, summary.TopSignals[1].Text})
	}
}
