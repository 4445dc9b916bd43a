package feeds

import (
	"context"
	"testing"

	"github.com/ternarybob/sentio/internal/common"
)

func TestNewFetcher_FiltersInvalidURLs(t *testing.T) {
	fetcher := NewFetcher(common.FeedsConfig{
		URLs: []string{
			"https://example.com/feed.xml",
			"ftp://example.com/feed.xml",
			"not-a-url",
		},
	}, common.GetLogger())

	if len(fetcher.urls) != 1 {
		t.Errorf("kept %d urls, want 1 (non-http schemes dropped)", len(fetcher.urls))
	}
}

func TestNewFetcher_Defaults(t *testing.T) {
	fetcher := NewFetcher(common.FeedsConfig{}, common.GetLogger())

	if fetcher.maxPerFeed != 10 {
		t.Errorf("maxPerFeed = %d, want default 10", fetcher.maxPerFeed)
	}
	if fetcher.timeout.Seconds() != 30 {
		t.Errorf("timeout = %v, want default 30s", fetcher.timeout)
	}
}

func TestFetcher_FallsBackToSamples(t *testing.T) {
	// No configured feeds means no headlines, which falls back to samples
	fetcher := NewFetcher(common.FeedsConfig{}, common.GetLogger())

	headlines := fetcher.Fetch(context.Background())
	if len(headlines) != len(SampleHeadlines()) {
		t.Errorf("got %d headlines, want sample fallback of %d", len(headlines), len(SampleHeadlines()))
	}
}
