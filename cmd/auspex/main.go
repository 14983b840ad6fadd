// -----------------------------------------------------------------------
// Last Modified: Monday, 24th August 2026 5:30:00 pm
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/auspex/internal/common"
	"github.com/ternarybob/auspex/internal/engine"
	"github.com/ternarybob/auspex/internal/news"
	"github.com/ternarybob/auspex/internal/report"
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
	symbol       = flag.String("symbol", "", "Symbol to analyze (e.g. BTCUSDT)")
	symbolS      = flag.String("s", "", "Symbol to analyze (shorthand)")
	market       = flag.String("market", "", "Market class (overrides config)")
	timeframe    = flag.String("timeframe", "", "Candle timeframe (overrides config)")
	timeframeT   = flag.String("t", "", "Candle timeframe (shorthand)")
	outputMode   = flag.String("mode", "", "Output mode: full, quick, risk, news")
	newsScope    = flag.String("scope", "", "News scope: symbol+macro or symbol-only")
	watch        = flag.String("watch", "", "Cron schedule for repeated analysis (e.g. '*/5 * * * *')")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func init() {
	// Register custom flag for multiple config files
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	// Crash protection: write a crash report before exiting on panic
	common.InstallCrashHandler("")
	defer common.RecoverWithCrashFile()

	// Parse command-line flags
	flag.Parse()

	// Handle version flag
	if *showVersion || *showVersionV {
		fmt.Printf("Auspex version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Pick up AUSPEX_* variables from a local .env before config loads
	_ = godotenv.Load()

	// Merge shorthand flags
	finalSymbol := *symbol
	if *symbolS != "" {
		finalSymbol = *symbolS
	}
	finalTimeframe := *timeframe
	if *timeframeT != "" {
		finalTimeframe = *timeframeT
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file1 -> file2 -> ... -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Resolve {KEY} references and validate
	// 5. Print banner

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("auspex.toml"); err == nil {
			configFiles = append(configFiles, "auspex.toml")
		} else if _, err := os.Stat("deployments/local/auspex.toml"); err == nil {
			// Fallback for users running from the project root
			configFiles = append(configFiles, "deployments/local/auspex.toml")
		}
	}

	// 1. Load configuration (later config files override earlier ones)
	var err error
	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		// Use temporary logger for startup errors
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		os.Exit(1)
	}

	// 2. Apply command-line flag overrides (highest priority)
	common.ApplyFlagOverrides(config, *market, finalTimeframe)

	// 3. Initialize logger with final configuration
	logger = common.InitLogger(config)

	// 4. Resolve {KEY} environment references and validate
	common.ResolveKeyReferences(config, logger)
	if err := config.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	// 5. Print banner
	common.PrintBanner(common.GetVersion())

	logger.Info().
		Strs("config_files", configFiles).
		Str("market", config.Engine.DefaultMarket).
		Str("timeframe", config.Engine.DefaultTimeframe).
		Str("log_level", config.Logging.Level).
		Msg("Application configuration loaded")

	if finalSymbol == "" {
		logger.Fatal().Msg("No symbol specified, use -symbol (e.g. -symbol BTCUSDT)")
	}

	eng := engine.New(logger, config)

	request := engine.Request{
		Symbol:    finalSymbol,
		Mode:      parseMode(*outputMode),
		NewsScope: parseScope(*newsScope),
	}

	// One-shot analysis unless a watch schedule is set
	if *watch == "" {
		fmt.Print(eng.Analyze(context.Background(), request))
		return
	}

	runAnalysis := func() {
		fmt.Print(eng.Analyze(context.Background(), request))
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(*watch, runAnalysis); err != nil {
		logger.Fatal().Err(err).Str("schedule", *watch).Msg("Invalid watch schedule")
	}

	// Run immediately without holding up the scheduler, then on the schedule
	common.SafeGo(logger, "watch-initial-run", runAnalysis)
	scheduler.Start()

	logger.Info().
		Str("schedule", *watch).
		Str("symbol", finalSymbol).
		Msg("Watch mode started - Press Ctrl+C to stop")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Interrupt signal received")
	scheduler.Stop()
	logger.Info().Msg("Watch stopped")
}

// parseMode maps CLI tokens onto output modes. Unknown values fall through
// to the full trade plan.
func parseMode(s string) report.OutputMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ""
	case "quick", "bias", string(report.ModeQuickBias):
		return report.ModeQuickBias
	case "risk", string(report.ModeRiskOnly):
		return report.ModeRiskOnly
	case "news", "briefing", string(report.ModeNewsBriefing):
		return report.ModeNewsBriefing
	default:
		return report.ModeFullTradePlan
	}
}

// parseScope maps CLI tokens onto news scopes. Empty stays empty so the
// engine default applies.
func parseScope(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ""
	case "symbol", news.ScopeSymbolOnly:
		return news.ScopeSymbolOnly
	default:
		return news.ScopeSymbolMacro
	}
}
