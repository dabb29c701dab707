// Package engine provides the document pagination engine for Quire.
//
// The engine package is the main facade. It combines the paginator,
// split selection, render windowing, and incremental repagination into a
// unified, thread-safe API suitable for building manuscript editors.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - page: the Page/Sequence data model with derived counts
//   - split: boundary selection (paragraph, sentence, word, forced)
//   - paginate: full and incremental pagination over those boundaries
//
// # Thread Safety
//
// All Engine operations are thread-safe. The engine serializes writes
// with a read-write mutex while allowing concurrent reads. The
// sub-packages themselves are pure and stateless; the engine owns the
// only mutable state (the current page sequence).
//
// # Basic Usage
//
// Load a document and work with its pages:
//
//	e, _ := engine.New(engine.WithContent(manuscript))
//
//	// Bounded view for rendering
//	window := e.Window(0)
//
//	// Status bar totals
//	st := e.Stats()
//
//	// Apply a keystroke's worth of edit to page 2
//	res, _ := e.UpdatePage(2, newContent)
//	if res.NeedsRepagination {
//	    e.RepaginateFrom(2, e.Reconstruct())
//	}
//
// # Configuration
//
// Budgets are explicit configuration, bound at construction:
//
//	e, _ := engine.New(
//	    engine.WithWordsPerPage(1000),
//	    engine.WithCharactersPerPage(8000),
//	    engine.WithMaxWindowPages(3),
//	)
//
// # Error Handling
//
// The pagination operations are total functions: any string input
// produces a well-formed sequence. Facade errors are limited to state
// queries (ErrNoDocument, ErrPageNotFound) and construction
// (ErrInvalidConfig).
package engine
