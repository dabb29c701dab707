package page

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// ByteOffset represents a byte position in the source document.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int

// Page is a contiguous slice of a document plus derived metadata.
// StartIndex/EndIndex form a half-open byte range into the document as it
// was at pagination time; EndIndex-StartIndex always equals len(Content).
type Page struct {
	ID             string
	Content        string
	StartIndex     ByteOffset
	EndIndex       ByteOffset
	WordCount      int
	CharacterCount int
	PageNumber     int // 1-based, dense
}

// New creates a page for content occupying [start, start+len(content))
// at the given 1-based page number. Counts are derived from content.
func New(number int, start ByteOffset, content string) Page {
	return Page{
		ID:             PageID(number),
		Content:        content,
		StartIndex:     start,
		EndIndex:       start + len(content),
		WordCount:      CountWords(content),
		CharacterCount: len(content),
		PageNumber:     number,
	}
}

// PageID returns the stable identifier for a page number.
func PageID(number int) string {
	return fmt.Sprintf("page-%d", number)
}

// WithContent returns a copy of p carrying new content, with counts and
// EndIndex recomputed. StartIndex, PageNumber, and ID are preserved, so
// offsets of any following pages become stale until repagination.
func (p Page) WithContent(content string) Page {
	p.Content = content
	p.EndIndex = p.StartIndex + len(content)
	p.WordCount = CountWords(content)
	p.CharacterCount = len(content)
	return p
}

// Renumber returns a copy of p moved to a new page number and start
// offset. Used when attaching repaginated pages after a preserved prefix.
func (p Page) Renumber(number int, start ByteOffset) Page {
	delta := start - p.StartIndex
	p.ID = PageID(number)
	p.PageNumber = number
	p.StartIndex = start
	p.EndIndex += delta
	return p
}

// IsEmpty returns true if the page has no content.
func (p Page) IsEmpty() bool {
	return len(p.Content) == 0
}

// String returns a human-readable representation of the page.
func (p Page) String() string {
	return fmt.Sprintf("%s [%d:%d) words=%d chars=%d", p.ID, p.StartIndex, p.EndIndex, p.WordCount, p.CharacterCount)
}

// CountWords returns the number of whitespace-separated words in s.
// Leading/trailing whitespace and runs of whitespace are not counted.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// Excerpt returns the first maxClusters user-perceived characters of the
// page content, appending an ellipsis when truncated. Truncation respects
// grapheme cluster boundaries so combining sequences and emoji are never
// cut in half.
func (p Page) Excerpt(maxClusters int) string {
	if maxClusters <= 0 {
		return ""
	}
	state := -1
	rest := p.Content
	var b strings.Builder
	for n := 0; n < maxClusters && len(rest) > 0; n++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		b.WriteString(cluster)
	}
	if len(rest) > 0 {
		b.WriteString("…")
	}
	return b.String()
}
