package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/ternarybob/sentio/internal/common"
)

// OpenAIClassifier is the model-backed sentiment strategy. It sends headline
// batches to the OpenAI chat completions API and parses the 3-class
// probability distribution the model returns per headline.
type OpenAIClassifier struct {
	client    openai.Client
	model     string
	batchSize int
	timeout   time.Duration
}

type classificationResponse struct {
	Results []classifiedText `json:"results"`
}

type classifiedText struct {
	Index    int     `json:"index"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// NewOpenAIClassifier creates the model-backed classifier. Construction fails
// when no API key is configured; callers are expected to substitute the
// keyword fallback in that case.
func NewOpenAIClassifier(cfg common.SentimentConfig) (*OpenAIClassifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("sentiment provider %q requires an API key", cfg.Provider)
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 8
	}

	timeout := 30 * time.Second
	if cfg.Timeout != "" {
		parsed, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid sentiment timeout %q: %w", cfg.Timeout, err)
		}
		timeout = parsed
	}

	return &OpenAIClassifier{
		client:    openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     model,
		batchSize: batchSize,
		timeout:   timeout,
	}, nil
}

// ModelName returns the identifier recorded on results
func (c *OpenAIClassifier) ModelName() string {
	return c.model
}

// Classify sends texts to the model in batches. Callers can pass arbitrarily
// large lists; batching happens internally. A failed batch fails the whole
// call so result alignment is never silently corrupted.
func (c *OpenAIClassifier) Classify(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, 0, len(texts))

	for i := 0; i < len(texts); i += c.batchSize {
		end := i + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		batch, err := c.classifyBatch(ctx, texts[i:end])
		if err != nil {
			return nil, fmt.Errorf("sentiment batch %d-%d failed: %w", i, end, err)
		}
		results = append(results, batch...)
	}

	return results, nil
}

func (c *OpenAIClassifier) classifyBatch(ctx context.Context, texts []string) ([]Result, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	response, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String("You are a financial sentiment classifier. Analyze headlines and return class probabilities as JSON."),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(c.buildPrompt(texts)),
					},
				},
			},
		},
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(2000),
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	var parsed classificationResponse
	content := response.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse openai response: %w", err)
	}

	if len(parsed.Results) != len(texts) {
		return nil, fmt.Errorf("openai returned %d results for %d texts", len(parsed.Results), len(texts))
	}

	batchLatencyMs := float64(time.Since(start).Microseconds()) / 1000.0
	perItemLatency := batchLatencyMs / float64(len(texts))

	// Place results by the model-returned index so batch alignment holds
	// even when the model reorders items
	results := make([]Result, len(texts))
	seen := make([]bool, len(texts))
	for _, item := range parsed.Results {
		if item.Index < 0 || item.Index >= len(texts) {
			return nil, fmt.Errorf("openai returned out-of-range index %d", item.Index)
		}
		if seen[item.Index] {
			return nil, fmt.Errorf("openai returned duplicate index %d", item.Index)
		}
		seen[item.Index] = true

		scores := roundScores(normalizeScores(map[Label]float64{
			LabelPositive: item.Positive,
			LabelNegative: item.Negative,
			LabelNeutral:  item.Neutral,
		}))
		label := argmax(scores)

		results[item.Index] = Result{
			Text:       texts[item.Index],
			Label:      label,
			Confidence: scores[label],
			Scores:     scores,
			Model:      c.model,
			LatencyMs:  roundTo(perItemLatency, 1),
		}
	}

	return results, nil
}

func (c *OpenAIClassifier) buildPrompt(texts []string) string {
	var sb strings.Builder
	sb.WriteString("Classify the sentiment of each financial news headline.\n")
	sb.WriteString("For each headline provide probabilities for positive, negative and neutral that sum to 1.\n\n")
	sb.WriteString("Respond with JSON only, no prose:\n")
	sb.WriteString(`{"results": [{"index": 0, "positive": 0.1, "negative": 0.8, "neutral": 0.1}]}`)
	sb.WriteString("\n\nHeadlines to classify:\n\n")

	for i, text := range texts {
		sb.WriteString(fmt.Sprintf("Index %d: %s\n", i, text))
	}

	return sb.String()
}

// normalizeScores rescales a distribution so it sums to 1. A degenerate
// all-zero response becomes uniform neutral-leaning rather than NaN.
func normalizeScores(scores map[Label]float64) map[Label]float64 {
	total := 0.0
	for _, v := range scores {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		return map[Label]float64{
			LabelPositive: 1.0 / 3.0,
			LabelNegative: 1.0 / 3.0,
			LabelNeutral:  1.0 / 3.0,
		}
	}

	normalized := make(map[Label]float64, len(scores))
	for k, v := range scores {
		if v < 0 {
			v = 0
		}
		normalized[k] = v / total
	}
	return normalized
}

func argmax(scores map[Label]float64) Label {
	best := LabelNeutral
	bestScore := -1.0
	// Fixed iteration order keeps ties deterministic
	for _, label := range []Label{LabelPositive, LabelNegative, LabelNeutral} {
		if scores[label] > bestScore {
			best = label
			bestScore = scores[label]
		}
	}
	return best
}
