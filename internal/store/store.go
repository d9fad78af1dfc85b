// Package store loads the category keyword taxonomy used for classification.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/receipt-scan/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// TaxonomyStore manages loading of the category taxonomy. The taxonomy is
// loaded once at startup and treated as immutable afterwards, so extraction
// calls can share it without synchronization.
type TaxonomyStore struct {
	TaxonomyFile string
}

// NewTaxonomyStore creates a new store for taxonomy data.
func NewTaxonomyStore(taxonomyFile string) *TaxonomyStore {
	return &TaxonomyStore{
		TaxonomyFile: taxonomyFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *TaxonomyStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Check in user's home directory under .config/receipt-scan/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "receipt-scan", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadTaxonomy loads categories from the YAML file. A missing file is not an
// error: the built-in default taxonomy is used so classification always has
// a keyword table to work with.
func (s *TaxonomyStore) LoadTaxonomy() ([]models.CategoryConfig, error) {
	filename := s.TaxonomyFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) || err == os.ErrNotExist {
			log.Debugf("Taxonomy file not found: %s, using built-in taxonomy", filename)
			return DefaultTaxonomy(), nil
		}
		return nil, fmt.Errorf("error resolving taxonomy file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading taxonomy file: %w", err)
	}

	var config models.TaxonomyConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing taxonomy file: %w", err)
	}

	if len(config.Categories) == 0 {
		log.Warnf("Taxonomy file %s contains no categories, using built-in taxonomy", filePath)
		return DefaultTaxonomy(), nil
	}

	log.Debugf("Loaded %d categories from %s", len(config.Categories), filePath)
	return config.Categories, nil
}

// DefaultTaxonomy returns the built-in category keyword taxonomy. Slice order
// is the classification tie-break: "food" appears under both groceries and
// restaurants, and groceries wins because it is declared first.
func DefaultTaxonomy() []models.CategoryConfig {
	return []models.CategoryConfig{
		{
			Name: models.CategoryGroceries,
			Keywords: []string{
				"grocery", "supermarket", "food", "vegetables", "fruits", "dairy",
				"store", "general store", "milk", "bread", "noodles", "cheese",
			},
		},
		{
			Name: models.CategoryRestaurants,
			Keywords: []string{
				"restaurant", "cafe", "dining", "food", "meal", "lunch", "dinner",
			},
		},
		{
			Name: models.CategoryTransport,
			Keywords: []string{
				"fuel", "gas", "petrol", "diesel", "uber", "taxi", "transport",
			},
		},
		{
			Name: models.CategoryShopping,
			Keywords: []string{
				"clothing", "apparel", "fashion", "shoes", "accessories", "mall",
			},
		},
		{
			Name: models.CategoryUtilities,
			Keywords: []string{
				"electricity", "water", "gas", "internet", "phone", "utility",
			},
		},
		{
			Name: models.CategoryEntertainment,
			Keywords: []string{
				"movie", "cinema", "theater", "concert", "show", "entertainment",
			},
		},
		{
			Name: models.CategoryHealthcare,
			Keywords: []string{
				"pharmacy", "medical", "doctor", "hospital", "clinic", "medicine",
			},
		},
	}
}
