package feeds

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/pipeline"
	"github.com/ternarybob/sentio/internal/signals"
)

// Poller runs the analysis pipeline over freshly fetched feed headlines on a
// cron schedule. Each run is an independent batch; scores are never carried
// or updated across runs.
type Poller struct {
	fetcher  *Fetcher
	pipe     *pipeline.Pipeline
	topRisks int
	schedule string
	cron     *cron.Cron
	logger   arbor.ILogger
}

// NewPoller creates a feed poller from configuration
func NewPoller(cfg *common.Config, pipe *pipeline.Pipeline, logger arbor.ILogger) *Poller {
	return &Poller{
		fetcher:  NewFetcher(cfg.Feeds, logger),
		pipe:     pipe,
		topRisks: cfg.Analysis.TopRisks,
		schedule: cfg.Feeds.Schedule,
		logger:   logger,
	}
}

// Start schedules polling runs. The schedule uses cron format with a
// seconds field, matching the configuration default.
func (p *Poller) Start(ctx context.Context) error {
	p.cron = cron.New(cron.WithSeconds())

	_, err := p.cron.AddFunc(p.schedule, func() {
		p.runOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid feed poll schedule %q: %w", p.schedule, err)
	}

	p.cron.Start()
	p.logger.Info().Str("schedule", p.schedule).Msg("Feed poller started")
	return nil
}

// Stop halts scheduled polling and waits for a running job to finish
func (p *Poller) Stop() {
	if p.cron != nil {
		<-p.cron.Stop().Done()
		p.logger.Info().Msg("Feed poller stopped")
	}
}

func (p *Poller) runOnce(ctx context.Context) {
	headlines := p.fetcher.Fetch(ctx)

	results, err := p.pipe.Analyze(ctx, headlines)
	if err != nil {
		p.logger.Error().Err(err).Msg("Feed poll analysis failed")
		return
	}

	summary := signals.Summarize(pipeline.Risks(results), p.topRisks)

	p.logger.Info().
		Int("headlines", summary.Total).
		Int("high", summary.RiskCounts[signals.LevelHigh]).
		Int("elevated", summary.RiskCounts[signals.LevelElevated]).
		Float64("mean_risk", summary.MeanRiskScore).
		Msg("Feed poll complete")

	for _, top := range summary.TopSignals {
		p.logger.Info().
			Str("level", string(top.RiskLevel)).
			Float64("score", top.RiskScore).
			Str("headline", top.Text).
			Msg("Top risk signal")
	}
}
