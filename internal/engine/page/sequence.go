package page

import (
	"fmt"
	"sort"
	"strings"
)

// Sequence is an ordered set of pages covering one document.
// A well-formed sequence is dense (page numbers 1..n), contiguous
// (adjacent EndIndex/StartIndex match), and covers the document exactly.
type Sequence []Page

// Stats holds aggregate totals for a page sequence.
type Stats struct {
	TotalPages      int
	TotalWords      int
	TotalCharacters int
}

// Reconstruct concatenates page contents in page-number order, restoring
// the single-string document. The input may arrive out of order; it is
// sorted on a copy, never mutated.
func (s Sequence) Reconstruct() string {
	ordered := make(Sequence, len(s))
	copy(ordered, s)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PageNumber < ordered[j].PageNumber
	})

	var b strings.Builder
	for _, p := range ordered {
		b.WriteString(p.Content)
	}
	return b.String()
}

// Stats aggregates the per-page counts. It never recomputes from raw
// text; pages own their counts.
func (s Sequence) Stats() Stats {
	st := Stats{TotalPages: len(s)}
	for _, p := range s {
		st.TotalWords += p.WordCount
		st.TotalCharacters += p.CharacterCount
	}
	return st
}

// Window returns a bounded view of at most maxResident pages centered on
// currentPageIndex (0-based). Near either end the window clamps to the
// first or last maxResident pages. The result aliases s; pages are never
// renumbered or copied.
func (s Sequence) Window(currentPageIndex, maxResident int) Sequence {
	if maxResident <= 0 || len(s) <= maxResident {
		return s
	}

	start := currentPageIndex - maxResident/2
	if start < 0 {
		start = 0
	}
	if start > len(s)-maxResident {
		start = len(s) - maxResident
	}
	return s[start : start+maxResident]
}

// PageByNumber returns the page with the given 1-based page number.
func (s Sequence) PageByNumber(number int) (Page, bool) {
	for _, p := range s {
		if p.PageNumber == number {
			return p, true
		}
	}
	return Page{}, false
}

// Validate checks the sequence invariants against a document of docLen
// bytes: coverage starts at 0 and ends at docLen, adjacent pages abut,
// page numbers are dense and 1-based, and per-page counts match content.
func (s Sequence) Validate(docLen int) error {
	if len(s) == 0 {
		return fmt.Errorf("sequence is empty")
	}
	if s[0].StartIndex != 0 {
		return fmt.Errorf("first page starts at %d, want 0", s[0].StartIndex)
	}
	for i, p := range s {
		if p.PageNumber != i+1 {
			return fmt.Errorf("page at index %d has number %d, want %d", i, p.PageNumber, i+1)
		}
		if p.ID != PageID(p.PageNumber) {
			return fmt.Errorf("page %d has id %q", p.PageNumber, p.ID)
		}
		if p.EndIndex-p.StartIndex != len(p.Content) {
			return fmt.Errorf("page %d range [%d:%d) does not match content length %d",
				p.PageNumber, p.StartIndex, p.EndIndex, len(p.Content))
		}
		if p.CharacterCount != len(p.Content) {
			return fmt.Errorf("page %d character count %d, want %d", p.PageNumber, p.CharacterCount, len(p.Content))
		}
		if p.WordCount != CountWords(p.Content) {
			return fmt.Errorf("page %d word count %d, want %d", p.PageNumber, p.WordCount, CountWords(p.Content))
		}
		if i > 0 && s[i-1].EndIndex != p.StartIndex {
			return fmt.Errorf("page %d starts at %d, previous ends at %d", p.PageNumber, p.StartIndex, s[i-1].EndIndex)
		}
	}
	if last := s[len(s)-1]; last.EndIndex != docLen {
		return fmt.Errorf("last page ends at %d, want %d", last.EndIndex, docLen)
	}
	return nil
}
