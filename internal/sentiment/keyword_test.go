package sentiment

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestKeywordClassifier_Classify(t *testing.T) {
	classifier := NewKeywordClassifier()

	tests := []struct {
		name    string
		text    string
		want    Label
		minConf float64
	}{
		{
			name:    "positive headline",
			text:    "Goldman Sachs beats estimates with record revenue growth",
			want:    LabelPositive,
			minConf: 0.7,
		},
		{
			name:    "negative headline",
			text:    "Deutsche Bank issues profit warning after writedown and layoffs",
			want:    LabelNegative,
			minConf: 0.7,
		},
		{
			name:    "neutral headline",
			text:    "ECB publishes quarterly statistics bulletin",
			want:    LabelNeutral,
			minConf: 0.6,
		},
		{
			name:    "npl matches case-insensitively",
			text:    "Bank reports rising NPL ratio",
			want:    LabelNegative,
			minConf: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := classifier.Classify(context.Background(), []string{tt.text})
			if err != nil {
				t.Fatalf("Classify error: %v", err)
			}
			if len(results) != 1 {
				t.Fatalf("got %d results, want 1", len(results))
			}

			result := results[0]
			if result.Label != tt.want {
				t.Errorf("Label = %v, want %v", result.Label, tt.want)
			}
			if result.Confidence < tt.minConf {
				t.Errorf("Confidence = %v, want >= %v", result.Confidence, tt.minConf)
			}
			if result.Model != keywordModelName {
				t.Errorf("Model = %q, want %q", result.Model, keywordModelName)
			}
		})
	}
}

func TestKeywordClassifier_ConfidenceCap(t *testing.T) {
	classifier := NewKeywordClassifier()

	// Pack enough negative keywords that 0.5 + 0.1*hits would exceed the cap
	text := "misses warning writedown loss decline downgrade default breach fine layoffs"
	results, err := classifier.Classify(context.Background(), []string{text})
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}

	if results[0].Confidence > 0.95 {
		t.Errorf("Confidence = %v, want capped at 0.95", results[0].Confidence)
	}
}

func TestKeywordClassifier_ScoresSumToOne(t *testing.T) {
	classifier := NewKeywordClassifier()

	texts := []string{
		"Goldman Sachs beats estimates",
		"Profit warning issued",
		"Markets open on schedule",
	}
	results, err := classifier.Classify(context.Background(), texts)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}

	for _, result := range results {
		sum := 0.0
		for _, score := range result.Scores {
			sum += score
		}
		if math.Abs(sum-1.0) > 0.0001 {
			t.Errorf("scores for %q sum to %v, want 1.0", result.Text, sum)
		}
		if result.Scores[result.Label] != result.Confidence {
			t.Errorf("winning score %v != confidence %v", result.Scores[result.Label], result.Confidence)
		}
	}
}

func TestKeywordClassifier_ScoresRoundedForSerialization(t *testing.T) {
	classifier := NewKeywordClassifier()

	// Two positive hits give confidence 0.7, so the losing classes each
	// get (1-0.7)/2, which must round to exactly 0.15 before marshalling
	results, err := classifier.Classify(context.Background(), []string{"Bank beats forecasts with record quarter"})
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}

	result := results[0]
	if result.Confidence != 0.7 {
		t.Fatalf("Confidence = %v, want 0.7", result.Confidence)
	}
	if result.Scores[LabelNegative] != 0.15 || result.Scores[LabelNeutral] != 0.15 {
		t.Errorf("losing scores = %v / %v, want exactly 0.15",
			result.Scores[LabelNegative], result.Scores[LabelNeutral])
	}

	data, err := json.Marshal(result.Scores)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "0.15000") {
		t.Errorf("serialized scores carry float residue: %s", data)
	}
}

func TestKeywordClassifier_BatchAlignment(t *testing.T) {
	classifier := NewKeywordClassifier()

	texts := []string{"a beats b", "", "c misses d"}
	results, err := classifier.Classify(context.Background(), texts)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}

	if len(results) != len(texts) {
		t.Fatalf("got %d results, want %d", len(results), len(texts))
	}
	for i, result := range results {
		if result.Text != texts[i] {
			t.Errorf("result %d text = %q, want %q", i, result.Text, texts[i])
		}
	}
}

func TestResult_IsRiskSignal(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   bool
	}{
		{"confident negative", Result{Label: LabelNegative, Confidence: 0.8}, true},
		{"boundary confidence", Result{Label: LabelNegative, Confidence: 0.6}, true},
		{"weak negative", Result{Label: LabelNegative, Confidence: 0.59}, false},
		{"confident positive", Result{Label: LabelPositive, Confidence: 0.9}, false},
		{"neutral", Result{Label: LabelNeutral, Confidence: 0.9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsRiskSignal(); got != tt.want {
				t.Errorf("IsRiskSignal() = %v, want %v", got, tt.want)
			}
		})
	}
}
