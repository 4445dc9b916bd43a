// Package pipeline orchestrates the three analysis stages over a headline
// batch: sentiment classification, entity extraction and risk aggregation.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/extract"
	"github.com/ternarybob/sentio/internal/models"
	"github.com/ternarybob/sentio/internal/sentiment"
	"github.com/ternarybob/sentio/internal/signals"
)

// AnalysisResult is the full analysis of a single headline. All three
// sub-results share the same source text; the record is immutable after
// the pipeline creates it.
type AnalysisResult struct {
	Headline  models.Headline    `json:"headline"`
	Sentiment sentiment.Result   `json:"sentiment"`
	Entities  extract.Result     `json:"entities"`
	Risk      signals.RiskSignal `json:"risk"`
}

// Pipeline runs sentiment -> extraction -> aggregation over batches.
// The classifier is selected once at construction and injected; the
// pipeline never re-checks strategy availability mid-batch.
type Pipeline struct {
	classifier sentiment.Classifier
	extractor  *extract.Extractor
	aggregator *signals.Aggregator
	logger     arbor.ILogger
}

// New creates a pipeline with an explicitly injected sentiment classifier
func New(classifier sentiment.Classifier, logger arbor.ILogger) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		extractor:  extract.NewExtractor(),
		aggregator: signals.NewAggregator(),
		logger:     logger,
	}
}

// ModelName returns the identifier of the active sentiment strategy
func (p *Pipeline) ModelName() string {
	return p.classifier.ModelName()
}

// Analyze runs the full pipeline on a batch of headlines. The output has
// the same length and order as the input and each result's sub-records
// share the corresponding input's text. An empty batch invokes no stage.
func (p *Pipeline) Analyze(ctx context.Context, headlines []models.Headline) ([]AnalysisResult, error) {
	if len(headlines) == 0 {
		return []AnalysisResult{}, nil
	}

	batchID := common.NewBatchID()
	start := time.Now()

	texts := make([]string, 0, len(headlines))
	for _, h := range headlines {
		texts = append(texts, h.Text)
	}

	// Stage 1: sentiment classification, one call per batch so the
	// strategy can batch internally
	sentiments, err := p.classifier.Classify(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("sentiment classification failed: %w", err)
	}
	if len(sentiments) != len(texts) {
		return nil, fmt.Errorf("classifier returned %d results for %d texts", len(sentiments), len(texts))
	}

	// Stage 2: rule-based entity extraction, order-preserving
	entities := p.extractor.ExtractBatch(texts)

	// Stage 3: deterministic risk aggregation in lock-step
	risks := p.aggregator.AggregateBatch(sentiments, entities)

	results := make([]AnalysisResult, 0, len(headlines))
	for i, headline := range headlines {
		results = append(results, AnalysisResult{
			Headline:  headline,
			Sentiment: sentiments[i],
			Entities:  entities[i],
			Risk:      risks[i],
		})
	}

	p.logger.Info().
		Str("batch_id", batchID).
		Int("headlines", len(headlines)).
		Str("model", p.classifier.ModelName()).
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Msg("Analysis batch complete")

	return results, nil
}

// AnalyzeTexts is a convenience wrapper for raw text input
func (p *Pipeline) AnalyzeTexts(ctx context.Context, texts []string) ([]AnalysisResult, error) {
	return p.Analyze(ctx, models.FromTexts(texts))
}

// Risks extracts the risk signals from a result batch, preserving order
func Risks(results []AnalysisResult) []signals.RiskSignal {
	risks := make([]signals.RiskSignal, 0, len(results))
	for _, r := range results {
		risks = append(risks, r.Risk)
	}
	return risks
}
