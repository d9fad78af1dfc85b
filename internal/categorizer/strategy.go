package categorizer

import "context"

// Strategy defines one method of assigning a spending category to receipt
// text. Strategies report absence through the bool, not through errors.
type Strategy interface {
	// Classify attempts to categorize the given receipt text.
	//
	// Returns:
	//   - string: the category name (only valid if found is true)
	//   - bool: whether a category was assigned
	//   - error: any failure of the strategy itself (e.g. a remote call)
	Classify(ctx context.Context, text string) (string, bool, error)

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}
