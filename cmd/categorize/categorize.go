// Package categorize handles standalone receipt text categorization
package categorize

import (
	"fjacquet/receipt-scan/cmd/root"
	"fjacquet/receipt-scan/internal/categorizer"
	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize receipt text without full extraction",
	Long:  `Classify a snippet of receipt text into a spending category using keyword matching, with the Gemini model as an optional fallback.`,
	Run:   categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Text, "text", "t", "", "Receipt text to categorize")
	Cmd.MarkFlagRequired("text")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Categorize command called")

	if root.Text == "" {
		root.Log.Error("Receipt text is required for categorization")
		return
	}

	adapter := logging.NewLogrusAdapterFromLogger(root.Log)

	taxonomyStore := store.NewTaxonomyStore(root.Cfg.Taxonomy.File)
	taxonomy, err := taxonomyStore.LoadTaxonomy()
	if err != nil {
		root.Log.Errorf("Error loading taxonomy: %v", err)
		return
	}

	ctx := cmd.Context()
	strategies := []categorizer.Strategy{
		categorizer.NewKeywordStrategy(taxonomy, adapter),
	}
	if root.Cfg.AI.Enabled {
		gemini, err := categorizer.NewGeminiStrategy(ctx, root.Cfg.AI.APIKey, root.Cfg.AI.Model, taxonomy, adapter)
		if err != nil {
			root.Log.Errorf("Error creating Gemini strategy: %v", err)
			return
		}
		defer func() {
			if err := gemini.Close(); err != nil {
				root.Log.Warnf("Failed to close Gemini client: %v", err)
			}
		}()
		strategies = append(strategies, gemini)
	}

	category, found, err := categorizer.New(adapter, strategies...).Classify(ctx, root.Text)
	if err != nil {
		root.Log.Errorf("Error categorizing text: %v", err)
		return
	}
	if !found {
		root.Log.Info("No category matched the given text")
		return
	}

	root.Log.Infof("Category: %s", category)
}
