package paginate

import (
	"github.com/quirelabs/quire/internal/engine/page"
	"github.com/quirelabs/quire/internal/engine/split"
)

// SplitRule adjusts a proposed split offset before a page is cut.
// Implementations must be safe for repeated calls. A returned offset
// outside (0, len(suffix)] is ignored and the original offset kept.
type SplitRule interface {
	AdjustSplit(suffix string, offset int) (int, error)
}

// Option configures a Paginator during creation.
type Option func(*Paginator)

// WithSplitRule installs a split adjustment rule.
func WithSplitRule(rule SplitRule) Option {
	return func(p *Paginator) {
		p.rule = rule
	}
}

// WithObserver installs a callback invoked with the kind of every split
// point chosen. Used for metrics.
func WithObserver(fn func(split.Kind)) Option {
	return func(p *Paginator) {
		p.observe = fn
	}
}

// Paginator splits documents into page sequences under a fixed Config.
// It carries no per-document state; every method is a pure function of
// its arguments and the configuration.
type Paginator struct {
	cfg     Config
	sel     *split.Selector
	rule    SplitRule
	observe func(split.Kind)
}

// New creates a Paginator for the given budgets.
func New(cfg Config, opts ...Option) *Paginator {
	p := &Paginator{
		cfg: cfg,
		sel: split.NewSelector(cfg.WordsPerPage, cfg.CharactersPerPage, cfg.RepaginationThreshold),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the paginator's budgets.
func (p *Paginator) Config() Config {
	return p.cfg
}

// Paginate splits document into a non-empty, invariant-satisfying page
// sequence. An empty document yields exactly one empty page.
func (p *Paginator) Paginate(document string) page.Sequence {
	if len(document) == 0 {
		return page.Sequence{page.New(1, 0, "")}
	}

	var seq page.Sequence
	offset := 0
	for number := 1; offset < len(document); number++ {
		rest := document[offset:]
		if len(rest) <= p.cfg.CharactersPerPage {
			seq = append(seq, page.New(number, offset, rest))
			break
		}

		cut, kind := p.sel.Find(rest)
		cut = p.adjustCut(rest, cut)
		seq = append(seq, page.New(number, offset, rest[:cut]))
		offset += cut

		if p.observe != nil {
			p.observe(kind)
		}
	}
	return seq
}

// adjustCut consults the split rule, keeping the selector's offset when
// the rule errors or returns an out-of-range adjustment.
func (p *Paginator) adjustCut(rest string, cut int) int {
	if p.rule != nil {
		if adj, err := p.rule.AdjustSplit(rest, cut); err == nil && adj > 0 && adj <= len(rest) {
			cut = adj
		}
	}
	// The selector guarantees progress; guard against a misbehaving
	// rule having been bypassed above.
	if cut <= 0 || cut > len(rest) {
		cut = len(rest)
	}
	return cut
}

// RepaginateFrom re-splits only the document suffix past the preserved
// prefix. Pages strictly before fromPageNumber-1 are kept untouched;
// fullDocument is authoritative for everything after the prefix. The
// returned sequence is renumbered and re-indexed so all invariants hold
// for the full document.
func (p *Paginator) RepaginateFrom(pages page.Sequence, fromPageNumber int, fullDocument string) page.Sequence {
	preserve := fromPageNumber - 2
	if preserve < 0 {
		preserve = 0
	}
	if preserve > len(pages) {
		preserve = len(pages)
	}

	start := 0
	if preserve > 0 {
		start = pages[preserve-1].EndIndex
	}
	if start > len(fullDocument) {
		// Prefix offsets no longer fit the document; fall back to a
		// full split.
		return p.Paginate(fullDocument)
	}

	tail := p.Paginate(fullDocument[start:])

	out := make(page.Sequence, 0, preserve+len(tail))
	out = append(out, pages[:preserve]...)
	for i, tp := range tail {
		if tp.IsEmpty() && len(out) > 0 {
			// An exhausted suffix paginated to a single empty page;
			// the preserved prefix already covers the document.
			break
		}
		out = append(out, tp.Renumber(preserve+i+1, start+tp.StartIndex))
	}
	return out
}
