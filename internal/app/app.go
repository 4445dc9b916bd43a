// Package app wires application components together: configuration, logging,
// the analysis pipeline, handlers and the optional feed poller.
package app

import (
	"context"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/feeds"
	"github.com/ternarybob/sentio/internal/handlers"
	"github.com/ternarybob/sentio/internal/pipeline"
	"github.com/ternarybob/sentio/internal/sentiment"
)

// App holds all application components and dependencies
type App struct {
	Config   *common.Config
	Logger   arbor.ILogger
	Pipeline *pipeline.Pipeline
	Poller   *feeds.Poller

	// HTTP handlers
	APIHandler     *handlers.APIHandler
	AnalyzeHandler *handlers.AnalyzeHandler

	ctx       context.Context
	cancelCtx context.CancelFunc
}

// New creates the application. The sentiment classifier is constructed
// exactly once here and injected into the pipeline; if the model-backed
// provider is unavailable the keyword fallback is substituted inside the
// classifier factory, so construction never fails on that account.
func New(config *common.Config, logger arbor.ILogger) *App {
	ctx, cancel := context.WithCancel(context.Background())

	classifier := sentiment.NewClassifier(config.Sentiment, logger)
	pipe := pipeline.New(classifier, logger)

	a := &App{
		Config:         config,
		Logger:         logger,
		Pipeline:       pipe,
		APIHandler:     handlers.NewAPIHandler(classifier.ModelName()),
		AnalyzeHandler: handlers.NewAnalyzeHandler(pipe, config),
		ctx:            ctx,
		cancelCtx:      cancel,
	}

	if config.Feeds.Enabled {
		a.Poller = feeds.NewPoller(config, pipe, logger)
	}

	return a
}

// Start launches background components (currently only the feed poller)
func (a *App) Start() error {
	if a.Poller != nil {
		if err := a.Poller.Start(a.ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close stops background components and releases resources
func (a *App) Close() {
	if a.Poller != nil {
		a.Poller.Stop()
	}
	a.cancelCtx()
}
