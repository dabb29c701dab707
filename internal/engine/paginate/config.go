package paginate

import "fmt"

// Default budget values.
const (
	DefaultWordsPerPage          = 1000
	DefaultCharactersPerPage     = 8000
	DefaultMaxWindowPages        = 3
	DefaultRepaginationThreshold = 1.2
)

// Config holds the pagination budgets. It is an immutable value passed
// into the engine's entry points; tests exercise boundary values by
// constructing their own.
type Config struct {
	// WordsPerPage is the per-page word count target.
	WordsPerPage int

	// CharactersPerPage is the per-page byte budget.
	CharactersPerPage int

	// MaxWindowPages bounds how many pages a render window holds.
	MaxWindowPages int

	// RepaginationThreshold is the over-budget multiplier past which a
	// page needs re-splitting (1.2 = 120% of either budget).
	RepaginationThreshold float64
}

// DefaultConfig returns the standard manuscript budgets.
func DefaultConfig() Config {
	return Config{
		WordsPerPage:          DefaultWordsPerPage,
		CharactersPerPage:     DefaultCharactersPerPage,
		MaxWindowPages:        DefaultMaxWindowPages,
		RepaginationThreshold: DefaultRepaginationThreshold,
	}
}

// Validate checks that the budgets are usable.
func (c Config) Validate() error {
	if c.WordsPerPage < 1 {
		return fmt.Errorf("words per page must be positive, got %d", c.WordsPerPage)
	}
	if c.CharactersPerPage < 1 {
		return fmt.Errorf("characters per page must be positive, got %d", c.CharactersPerPage)
	}
	if c.MaxWindowPages < 1 {
		return fmt.Errorf("max window pages must be positive, got %d", c.MaxWindowPages)
	}
	if c.RepaginationThreshold < 1 {
		return fmt.Errorf("repagination threshold must be >= 1, got %g", c.RepaginationThreshold)
	}
	return nil
}
