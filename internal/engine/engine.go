package engine

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/quirelabs/quire/internal/engine/page"
	"github.com/quirelabs/quire/internal/engine/paginate"
	"github.com/quirelabs/quire/internal/engine/split"
)

// Re-export commonly used types for convenience.
type (
	// Page is one bounded slice of the document plus derived counts.
	Page = page.Page

	// Sequence is an ordered page sequence covering one document.
	Sequence = page.Sequence

	// Stats holds aggregate totals for a sequence.
	Stats = page.Stats

	// Config holds the pagination budgets.
	Config = paginate.Config

	// UpdateResult reports the outcome of a page replacement.
	UpdateResult = paginate.UpdateResult

	// SplitRule adjusts proposed split offsets.
	SplitRule = paginate.SplitRule

	// SplitKind identifies which rule produced a split point.
	SplitKind = split.Kind
)

// DefaultConfig returns the standard manuscript budgets.
func DefaultConfig() Config {
	return paginate.DefaultConfig()
}

// Engine is the main facade for the pagination engine.
// It owns one document session: the budgets, the current page sequence,
// and metrics. All operations are thread-safe.
type Engine struct {
	mu sync.RWMutex

	cfg       Config
	paginator *paginate.Paginator
	metrics   *Metrics
	logger    *slog.Logger
	sessionID uuid.UUID

	pages Sequence

	// Initialization
	initContent string
	hasContent  bool
	rule        SplitRule
}

// New creates a new Engine with the given options.
// When WithContent is supplied the document is paginated immediately.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:       paginate.DefaultConfig(),
		metrics:   NewMetrics(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionID: uuid.New(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	popts := []paginate.Option{paginate.WithObserver(e.metrics.RecordSplit)}
	if e.rule != nil {
		popts = append(popts, paginate.WithSplitRule(e.rule))
	}
	e.paginator = paginate.New(e.cfg, popts...)

	if e.hasContent {
		e.pages = e.paginator.Paginate(e.initContent)
		e.metrics.RecordPagination(len(e.pages))
	}

	return e, nil
}

// SessionID returns the identifier for this document session.
func (e *Engine) SessionID() string {
	return e.sessionID.String()
}

// Config returns the engine's budgets.
func (e *Engine) Config() Config {
	return e.cfg
}

// ============================================================================
// Pagination
// ============================================================================

// Paginate splits document into pages and makes them the current
// sequence. The returned sequence is a copy; the engine keeps its own.
func (e *Engine) Paginate(document string) Sequence {
	pages := e.paginator.Paginate(document)

	e.mu.Lock()
	e.pages = pages
	e.mu.Unlock()

	e.metrics.RecordPagination(len(pages))
	e.logger.Debug("paginated document",
		"session", e.sessionID,
		"bytes", len(document),
		"pages", len(pages))

	return clone(pages)
}

// RepaginateFrom re-splits only the document suffix past the preserved
// prefix (pages strictly before fromPageNumber-1) and makes the result
// current. fullDocument is authoritative for the suffix.
func (e *Engine) RepaginateFrom(fromPageNumber int, fullDocument string) Sequence {
	e.mu.Lock()
	pages := e.paginator.RepaginateFrom(e.pages, fromPageNumber, fullDocument)
	e.pages = pages
	e.mu.Unlock()

	e.metrics.RecordIncremental(len(pages))
	e.logger.Debug("repaginated suffix",
		"session", e.sessionID,
		"from_page", fromPageNumber,
		"pages", len(pages))

	return clone(pages)
}

// ============================================================================
// Reads
// ============================================================================

// Pages returns a copy of the current sequence.
func (e *Engine) Pages() Sequence {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return clone(e.pages)
}

// PageCount returns the number of pages in the current sequence.
func (e *Engine) PageCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.pages)
}

// PageByNumber returns the page with the given 1-based number.
func (e *Engine) PageByNumber(number int) (Page, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.pages) == 0 {
		return Page{}, ErrNoDocument
	}
	p, ok := e.pages.PageByNumber(number)
	if !ok {
		return Page{}, fmt.Errorf("%w: %d", ErrPageNotFound, number)
	}
	return p, nil
}

// Window returns a bounded view of at most MaxWindowPages pages centered
// on currentPageIndex (0-based), clamped at the sequence ends.
func (e *Engine) Window(currentPageIndex int) Sequence {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return clone(e.pages.Window(currentPageIndex, e.cfg.MaxWindowPages))
}

// Stats returns aggregate totals for the current sequence.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pages.Stats()
}

// Reconstruct returns the authoritative single-string document,
// concatenating page contents in page-number order.
func (e *Engine) Reconstruct() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pages.Reconstruct()
}

// ============================================================================
// Mutation
// ============================================================================

// UpdatePage replaces the content of one page by page number and makes
// the result current. Offsets of later pages go stale until a
// repagination runs; the result flags this explicitly. Returns
// ErrNoDocument when nothing has been paginated yet. An unknown page
// number is not an error; the result reports Updated == false.
func (e *Engine) UpdatePage(pageNumber int, newContent string) (UpdateResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.pages) == 0 {
		return UpdateResult{}, ErrNoDocument
	}

	res := e.paginator.UpdatePage(e.pages, pageNumber, newContent)
	e.pages = res.Pages
	if res.Updated {
		e.metrics.RecordUpdate()
	}
	return res, nil
}

// NeedsRepagination reports whether a page exceeds the configured
// over-budget threshold on either count.
func (e *Engine) NeedsRepagination(p Page) bool {
	return e.paginator.NeedsRepagination(p)
}

// Metrics returns a snapshot of the engine's counters.
func (e *Engine) Metrics() MetricsSnapshot {
	return e.metrics.Snapshot()
}

// clone copies a sequence so callers cannot alias engine state.
func clone(s Sequence) Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}
