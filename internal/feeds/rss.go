package feeds

import (
	"context"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/models"
)

// Fetcher pulls headlines from configured RSS feeds
type Fetcher struct {
	urls       []string
	maxPerFeed int
	timeout    time.Duration
	parser     *gofeed.Parser
	logger     arbor.ILogger
}

// NewFetcher creates an RSS fetcher from feed configuration. Feed URLs
// without an http/https scheme are dropped up front.
func NewFetcher(cfg common.FeedsConfig, logger arbor.ILogger) *Fetcher {
	maxPerFeed := cfg.MaxPerFeed
	if maxPerFeed <= 0 {
		maxPerFeed = 10
	}

	timeout := 30 * time.Second
	if cfg.Timeout != "" {
		if parsed, err := time.ParseDuration(cfg.Timeout); err == nil {
			timeout = parsed
		}
	}

	urls := make([]string, 0, len(cfg.URLs))
	for _, url := range cfg.URLs {
		if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
			urls = append(urls, url)
		} else {
			logger.Warn().Str("url", url).Msg("Skipping feed URL without http(s) scheme")
		}
	}

	return &Fetcher{
		urls:       urls,
		maxPerFeed: maxPerFeed,
		timeout:    timeout,
		parser:     gofeed.NewParser(),
		logger:     logger,
	}
}

// Fetch pulls up to maxPerFeed headlines from each configured feed.
// Unreachable feeds are logged and skipped; if no feed yields any headline
// the bundled sample set is returned so callers always get a batch.
func (f *Fetcher) Fetch(ctx context.Context) []models.Headline {
	headlines := []models.Headline{}

	for _, url := range f.urls {
		items, err := f.fetchOne(ctx, url)
		if err != nil {
			f.logger.Warn().Err(err).Str("url", url).Msg("Failed to fetch feed")
			continue
		}
		headlines = append(headlines, items...)
	}

	if len(headlines) == 0 {
		f.logger.Info().Msg("No RSS headlines fetched, falling back to sample data")
		return SampleHeadlines()
	}

	return headlines
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) ([]models.Headline, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(url, fetchCtx)
	if err != nil {
		return nil, err
	}

	source := feed.Title
	if source == "" {
		source = url
	}

	headlines := []models.Headline{}
	for _, item := range feed.Items {
		if len(headlines) >= f.maxPerFeed {
			break
		}

		text := strings.TrimSpace(item.Title)
		if text == "" {
			continue
		}
		headlines = append(headlines, models.NewHeadline(text, source))
	}

	f.logger.Debug().
		Str("url", url).
		Int("headlines", len(headlines)).
		Msg("Fetched feed")

	return headlines, nil
}
