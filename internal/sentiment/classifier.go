package sentiment

import (
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
)

// NewClassifier selects the concrete sentiment strategy from configuration.
// Selection happens exactly once; callers hold the returned Classifier for
// the life of the pipeline and never re-check availability per batch.
//
// A model-backed provider that cannot be constructed is a recoverable
// condition: the keyword fallback is substituted and the degradation is
// logged, never surfaced to the caller as an error.
func NewClassifier(cfg common.SentimentConfig, logger arbor.ILogger) Classifier {
	switch cfg.Provider {
	case "openai":
		classifier, err := NewOpenAIClassifier(cfg)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("provider", cfg.Provider).
				Msg("Model-backed sentiment unavailable, using keyword fallback")
			return NewKeywordClassifier()
		}

		logger.Info().
			Str("provider", cfg.Provider).
			Str("model", classifier.ModelName()).
			Msg("Sentiment classifier initialized")
		return classifier

	case "keyword", "":
		logger.Info().Msg("Using keyword sentiment classifier")
		return NewKeywordClassifier()

	default:
		logger.Warn().
			Str("provider", cfg.Provider).
			Msg("Unknown sentiment provider, using keyword fallback")
		return NewKeywordClassifier()
	}
}
