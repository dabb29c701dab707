package engine

import (
	"log/slog"

	"github.com/quirelabs/quire/internal/engine/paginate"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial document; it is paginated by New.
// The empty string is a valid document and yields a single empty page.
func WithContent(document string) Option {
	return func(e *Engine) {
		e.initContent = document
		e.hasContent = true
	}
}

// WithConfig replaces all budgets at once.
func WithConfig(cfg paginate.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithWordsPerPage sets the per-page word count target.
func WithWordsPerPage(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cfg.WordsPerPage = n
		}
	}
}

// WithCharactersPerPage sets the per-page byte budget.
func WithCharactersPerPage(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cfg.CharactersPerPage = n
		}
	}
}

// WithMaxWindowPages sets how many pages a render window may hold.
func WithMaxWindowPages(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cfg.MaxWindowPages = n
		}
	}
}

// WithRepaginationThreshold sets the over-budget multiplier past which a
// page needs re-splitting.
func WithRepaginationThreshold(t float64) Option {
	return func(e *Engine) {
		if t >= 1 {
			e.cfg.RepaginationThreshold = t
		}
	}
}

// WithSplitRule installs a split adjustment rule consulted after the
// selector chooses each boundary.
func WithSplitRule(rule SplitRule) Option {
	return func(e *Engine) {
		e.rule = rule
	}
}

// WithLogger sets the logger for debug-level operation logging.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
