package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ternarybob/sentio/internal/pipeline"
	"github.com/ternarybob/sentio/internal/sentiment"
	"github.com/ternarybob/sentio/internal/signals"
)

// PrintReport writes the plain-text analysis report: summary statistics,
// the top risk signals, positive market signals and a model/latency footer.
func PrintReport(w io.Writer, results []pipeline.AnalysisResult, topRisks int) {
	divider := strings.Repeat("=", 80)
	rule := strings.Repeat("-", 80)

	fmt.Fprintf(w, "\n%s\n", divider)
	fmt.Fprintln(w, "FINANCIAL SENTIMENT & RISK ANALYSIS REPORT")
	fmt.Fprintln(w, divider)

	summary := signals.Summarize(pipeline.Risks(results), topRisks)

	fmt.Fprintf(w, "\nHeadlines analyzed: %d\n", summary.Total)
	fmt.Fprintf(w, "Sentiment: %d positive | %d neutral | %d negative\n",
		summary.SentimentCounts[sentiment.LabelPositive],
		summary.SentimentCounts[sentiment.LabelNeutral],
		summary.SentimentCounts[sentiment.LabelNegative])
	fmt.Fprintf(w, "Risk distribution: %d low | %d medium | %d elevated | %d high\n",
		summary.RiskCounts[signals.LevelLow],
		summary.RiskCounts[signals.LevelMedium],
		summary.RiskCounts[signals.LevelElevated],
		summary.RiskCounts[signals.LevelHigh])

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "TOP %d RISK SIGNALS\n", len(summary.TopSignals))
	fmt.Fprintln(w, rule)
	for i, risk := range summary.TopSignals {
		fmt.Fprintf(w, "\n%d. [%-8s] Score: %.3f\n", i+1, strings.ToUpper(string(risk.RiskLevel)), risk.RiskScore)
		fmt.Fprintf(w, "   %s\n", truncate(risk.Text, 78))
		fmt.Fprintf(w, "   Sentiment: %s (%.0f%% confidence) | Directional: %s\n",
			risk.Sentiment.Label, risk.Sentiment.Confidence*100, risk.Directional)
		if len(risk.Institutions) > 0 {
			fmt.Fprintf(w, "   Institutions: %s\n", strings.Join(limit(risk.Institutions, 3), ", "))
		}
		if len(risk.Metrics) > 0 {
			fmt.Fprintf(w, "   Metrics: %s\n", strings.Join(limit(risk.Metrics, 4), ", "))
		}
		fmt.Fprintf(w, "   -> %s\n", risk.Recommendation)
	}

	positive := []pipeline.AnalysisResult{}
	for _, r := range results {
		if r.Sentiment.Label == sentiment.LabelPositive {
			positive = append(positive, r)
		}
	}
	if len(positive) > 0 {
		fmt.Fprintf(w, "\n%s\n", rule)
		fmt.Fprintf(w, "POSITIVE MARKET SIGNALS (%d)\n", len(positive))
		fmt.Fprintln(w, rule)
		for _, r := range positive[:minInt(3, len(positive))] {
			fmt.Fprintf(w, "  + %s\n", truncate(r.Headline.Text, 75))
			fmt.Fprintf(w, "    Confidence: %.0f%% | %s\n", r.Sentiment.Confidence*100, r.Risk.Recommendation)
		}
	}

	fmt.Fprintf(w, "\n%s\n", rule)
	if len(results) > 0 {
		fmt.Fprintf(w, "Model: %s\n", results[0].Sentiment.Model)
		total := 0.0
		for _, r := range results {
			total += r.Sentiment.LatencyMs
		}
		fmt.Fprintf(w, "Avg latency: %.1fms per headline\n", total/float64(len(results)))
	} else {
		fmt.Fprintln(w, "Model: n/a")
	}
	fmt.Fprintf(w, "%s\n\n", divider)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func limit(items []string, max int) []string {
	if len(items) <= max {
		return items
	}
	return items[:max]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
