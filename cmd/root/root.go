// Package root contains the root command for the application
package root

import (
	"context"
	"fjacquet/receipt-scan/internal/categorizer"
	"fjacquet/receipt-scan/internal/common"
	"fjacquet/receipt-scan/internal/config"
	"fjacquet/receipt-scan/internal/extractor"
	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "receipt-scan",
		Short: "A CLI tool to extract transaction fields from scanned receipts.",
		Long: `receipt-scan extracts the amount, date, merchant and spending category
from receipt images and OCR transcripts, for import into an expense tracker.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to receipt-scan!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Set the configured logger for the shared packages
			store.SetLogger(Log)
			common.SetLogger(logging.NewLogrusAdapterFromLogger(Log))

			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific batch command flags
	InputDir  string
	OutputDir string

	// Specific categorize command flags
	Text string
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// BuildExtractor assembles the field extractor from the loaded configuration:
// taxonomy from the store, keyword matching first, Gemini as an optional
// fallback when AI is enabled.
func BuildExtractor(ctx context.Context) (*extractor.Extractor, func(), error) {
	adapter := logging.NewLogrusAdapterFromLogger(Log)

	taxonomyStore := store.NewTaxonomyStore(Cfg.Taxonomy.File)
	taxonomy, err := taxonomyStore.LoadTaxonomy()
	if err != nil {
		return nil, nil, err
	}

	strategies := []categorizer.Strategy{
		categorizer.NewKeywordStrategy(taxonomy, adapter),
	}
	cleanup := func() {}

	if Cfg.AI.Enabled {
		gemini, err := categorizer.NewGeminiStrategy(ctx, Cfg.AI.APIKey, Cfg.AI.Model, taxonomy, adapter)
		if err != nil {
			return nil, nil, err
		}
		strategies = append(strategies, gemini)
		cleanup = func() {
			if err := gemini.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close Gemini client")
			}
		}
	}

	classifier := categorizer.New(adapter, strategies...)
	return extractor.New(classifier, adapter), cleanup, nil
}
