package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/app"
	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/feeds"
	"github.com/ternarybob/sentio/internal/server"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	serverPort   = flag.Int("port", 0, "Server port (overrides config)")
	serverPortP  = flag.Int("p", 0, "Server port (shorthand, overrides config)")
	serverHost   = flag.String("host", "", "Server host (overrides config)")
	analyzeFile  = flag.String("analyze", "", "Analyze headlines from a JSON file and print a report (no server)")
	sampleRun    = flag.Bool("sample", false, "Analyze the bundled sample headlines and print a report (no server)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Sentio version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Merge port flags (shorthand takes precedence)
	finalPort := *serverPort
	if *serverPortP != 0 {
		finalPort = *serverPortP
	}

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("sentio.toml"); err == nil {
			configFiles = append(configFiles, "sentio.toml")
		}
	}

	// 1. Load configuration (defaults -> files -> env)
	var err error
	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		os.Exit(1)
	}

	// 2. Apply command-line flag overrides (highest priority)
	common.ApplyFlagOverrides(config, finalPort, *serverHost)

	// 3. Initialize logger with final configuration
	logger = common.InitLogger(config)

	// One-shot analysis modes skip the server entirely
	if *analyzeFile != "" || *sampleRun {
		os.Exit(runOneShot(config, logger, *analyzeFile))
	}

	// 4. Print banner
	common.PrintBanner(common.GetVersion())

	logger.Info().
		Strs("config_files", configFiles).
		Int("port", config.Server.Port).
		Str("host", config.Server.Host).
		Str("sentiment_provider", config.Sentiment.Provider).
		Msg("Application configuration loaded")

	// Initialize application
	application := app.New(config, logger)
	defer application.Close()

	if err := application.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start application")
	}

	// Create HTTP server
	srv := server.New(application)

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	// Wait for interrupt signal or server failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

// runOneShot analyzes a headline batch and prints the text report.
// Returns the process exit code.
func runOneShot(config *common.Config, logger arbor.ILogger, path string) int {
	application := app.New(config, logger)
	defer application.Close()

	headlines := feeds.SampleHeadlines()
	if path != "" {
		loaded, err := feeds.LoadFile(path)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Failed to load headlines")
			return 1
		}
		headlines = loaded
	}

	results, err := application.Pipeline.Analyze(context.Background(), headlines)
	if err != nil {
		logger.Error().Err(err).Msg("Analysis failed")
		return 1
	}

	PrintReport(os.Stdout, results, config.Analysis.TopRisks)
	return 0
}
