package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/models"
	"github.com/ternarybob/sentio/internal/sentiment"
)

func newTestPipeline() *Pipeline {
	return New(sentiment.NewKeywordClassifier(), common.GetLogger())
}

func TestPipeline_Analyze(t *testing.T) {
	p := newTestPipeline()

	headlines := []models.Headline{
		{Text: "Goldman Sachs beats Q3 earnings expectations", Source: "test"},
		{Text: "Deutsche Bank warns of rising NPL ratios", Source: "test"},
		{Text: "Bank of England holds rates steady", Source: "test"},
	}

	results, err := p.Analyze(context.Background(), headlines)
	require.NoError(t, err)
	require.Len(t, results, len(headlines))

	for i, result := range results {
		assert.Equal(t, headlines[i].Text, result.Headline.Text, "result %d misaligned", i)
		assert.Equal(t, headlines[i].Text, result.Sentiment.Text)
		assert.Equal(t, headlines[i].Text, result.Entities.Text)
		assert.Equal(t, headlines[i].Text, result.Risk.Text)
	}

	// The negative bank headline should carry more risk than the positive one
	assert.Greater(t, results[1].Risk.RiskScore, results[0].Risk.RiskScore)
	assert.Contains(t, results[1].Entities.Institutions, "Deutsche Bank")
}

func TestPipeline_AnalyzeEmptyBatch(t *testing.T) {
	p := newTestPipeline()

	results, err := p.Analyze(context.Background(), []models.Headline{})
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = p.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPipeline_AnalyzeTexts(t *testing.T) {
	p := newTestPipeline()

	results, err := p.AnalyzeTexts(context.Background(), []string{"HSBC profit warning issued"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "HSBC profit warning issued", results[0].Headline.Text)
	assert.Equal(t, "user_input", results[0].Headline.Source)
	assert.Equal(t, sentiment.LabelNegative, results[0].Sentiment.Label)
}

type failingClassifier struct{}

func (f *failingClassifier) ModelName() string { return "failing" }

func (f *failingClassifier) Classify(ctx context.Context, texts []string) ([]sentiment.Result, error) {
	return nil, errors.New("provider unavailable")
}

func TestPipeline_ClassifierErrorPropagates(t *testing.T) {
	p := New(&failingClassifier{}, common.GetLogger())

	_, err := p.Analyze(context.Background(), models.FromTexts([]string{"headline"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sentiment classification failed")
}

type misalignedClassifier struct{}

func (m *misalignedClassifier) ModelName() string { return "misaligned" }

func (m *misalignedClassifier) Classify(ctx context.Context, texts []string) ([]sentiment.Result, error) {
	return []sentiment.Result{}, nil
}

func TestPipeline_MisalignedClassifierRejected(t *testing.T) {
	p := New(&misalignedClassifier{}, common.GetLogger())

	_, err := p.Analyze(context.Background(), models.FromTexts([]string{"headline"}))
	require.Error(t, err)
}

func TestRisks(t *testing.T) {
	p := newTestPipeline()

	results, err := p.AnalyzeTexts(context.Background(), []string{"a beats b", "c misses d"})
	require.NoError(t, err)

	risks := Risks(results)
	require.Len(t, risks, 2)
	assert.Equal(t, results[0].Risk.RiskScore, risks[0].RiskScore)
	assert.Equal(t, results[1].Risk.RiskScore, risks[1].RiskScore)
}
