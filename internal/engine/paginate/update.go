package paginate

import "github.com/quirelabs/quire/internal/engine/page"

// UpdateResult reports the outcome of a page content replacement.
//
// OffsetsStale is the explicit marker for the dirty-until-resplit state:
// a content-only update changes the edited page's EndIndex without
// shifting the pages after it, so their offsets no longer abut. Callers
// should run RepaginateFrom (or a full Paginate) before trusting offsets
// again; Reconstruct remains correct throughout.
type UpdateResult struct {
	// Pages is the resulting sequence. When the page number was not
	// found it is the input sequence, unmodified.
	Pages page.Sequence

	// Page is the replacement page, valid only when Updated is true.
	Page page.Page

	// Updated reports whether a page was replaced.
	Updated bool

	// NeedsRepagination reports whether the replacement page exceeds
	// its budgets past the configured threshold.
	NeedsRepagination bool

	// OffsetsStale reports whether offsets of later pages no longer
	// match the edited page's new end.
	OffsetsStale bool
}

// UpdatePage replaces the content of the page with the given 1-based
// page number, recomputing its counts and end offset. All other pages
// are carried over unchanged. An unknown page number returns the input
// sequence as-is; it is not an error.
func (p *Paginator) UpdatePage(pages page.Sequence, pageNumber int, newContent string) UpdateResult {
	idx := -1
	for i := range pages {
		if pages[i].PageNumber == pageNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return UpdateResult{Pages: pages}
	}

	replaced := pages[idx].WithContent(newContent)

	out := make(page.Sequence, len(pages))
	copy(out, pages)
	out[idx] = replaced

	return UpdateResult{
		Pages:             out,
		Page:              replaced,
		Updated:           true,
		NeedsRepagination: p.NeedsRepagination(replaced),
		OffsetsStale:      replaced.EndIndex != pages[idx].EndIndex && idx < len(pages)-1,
	}
}

// NeedsRepagination reports whether a page exceeds 120% (the configured
// threshold) of either the word target or the character budget. This is
// the trigger an editor checks after every UpdatePage.
func (p *Paginator) NeedsRepagination(pg page.Page) bool {
	return float64(pg.WordCount) > p.cfg.RepaginationThreshold*float64(p.cfg.WordsPerPage) ||
		float64(pg.CharacterCount) > p.cfg.RepaginationThreshold*float64(p.cfg.CharactersPerPage)
}
