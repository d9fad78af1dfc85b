package models

// Category name constants for the built-in taxonomy. Classification results
// are always drawn from this closed set, never free text.
const (
	CategoryGroceries     = "groceries"
	CategoryRestaurants   = "restaurants"
	CategoryTransport     = "transportation"
	CategoryShopping      = "shopping"
	CategoryUtilities     = "utilities"
	CategoryEntertainment = "entertainment"
	CategoryHealthcare    = "healthcare"
)

// CategoryConfig represents one category in the taxonomy YAML file.
// Keyword order is significant: earlier keywords are tried first.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// TaxonomyConfig represents the structure of the taxonomy YAML file.
// Category order is significant: classification is first-match-wins in
// declaration order.
type TaxonomyConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
