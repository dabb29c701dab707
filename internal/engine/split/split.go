package split

import (
	"unicode"
	"unicode/utf8"
)

// Boundary search window around the budget-sized candidate offset.
const (
	lookBehind = 500
	lookAhead  = 200
)

// Kind identifies which rule produced a split point.
type Kind uint8

const (
	// KindParagraph is a blank-line paragraph break.
	KindParagraph Kind = iota
	// KindSentence is sentence-ending punctuation before a new capitalized sentence.
	KindSentence
	// KindWord is a plain whitespace boundary.
	KindWord
	// KindForced is a hard truncation inside an unbroken token.
	KindForced
)

// String returns the string representation of the split kind.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindSentence:
		return "sentence"
	case KindWord:
		return "word"
	case KindForced:
		return "forced"
	default:
		return "unknown"
	}
}

// Selector chooses split points subject to word and character budgets.
// The zero value is not usable; construct with NewSelector.
type Selector struct {
	wordTarget int
	charBudget int
	maxWords   int // hard word cap: threshold * wordTarget
}

// NewSelector creates a selector for the given budgets. threshold is the
// over-budget multiplier (1.2 means a page may carry up to 120% of the
// word target before the cap applies).
func NewSelector(wordTarget, charBudget int, threshold float64) *Selector {
	if wordTarget < 1 {
		wordTarget = 1
	}
	if charBudget < 1 {
		charBudget = 1
	}
	if threshold < 1 {
		threshold = 1
	}
	return &Selector{
		wordTarget: wordTarget,
		charBudget: charBudget,
		maxWords:   int(float64(wordTarget) * threshold),
	}
}

// Find returns the byte offset in suffix at which the current page should
// end, and the kind of boundary chosen. The offset is always in
// (0, len(suffix)]. Find is called only for suffixes longer than the
// character budget; shorter remainders become the final page in full.
func (s *Selector) Find(suffix string) (int, Kind) {
	target, hiLimit := s.budgetTarget(suffix)

	if target > 0 {
		lo, hi := s.window(suffix, target, hiLimit)
		if off, ok := s.findParagraph(suffix, target, lo, hi); ok {
			return off, KindParagraph
		}
		if off, ok := s.findSentence(suffix, target, lo, hi); ok {
			return off, KindSentence
		}
	} else {
		// No whole word fits the character budget; anchor the
		// fallback scan at the budget itself.
		target = min(s.charBudget, len(suffix))
	}

	return s.fallback(suffix, target)
}

// budgetTarget accumulates whole words until the word target is met, then
// keeps filling until the character budget is reached, capped at maxWords
// so a page never exceeds the repagination threshold on creation.
//
// target is the byte offset just past the last word satisfying both
// budgets (0 when not even the first word fits the character budget).
// hiLimit is the furthest offset the boundary searches may reach: the end
// of the word at the cap when the word cap binds, otherwise the suffix
// end. Bounding the forward lookahead this way keeps every non-final
// page within the repagination threshold on both counts.
func (s *Selector) budgetTarget(suffix string) (target, hiLimit int) {
	hiLimit = len(suffix)
	var words, i int
	for i < len(suffix) {
		// Skip the whitespace run before the next word.
		for i < len(suffix) {
			r, size := utf8.DecodeRuneInString(suffix[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}
		if i >= len(suffix) {
			break
		}
		// Consume the word.
		end := i
		for end < len(suffix) {
			r, size := utf8.DecodeRuneInString(suffix[end:])
			if unicode.IsSpace(r) {
				break
			}
			end += size
		}

		if end <= s.charBudget {
			target = end
		}
		words++
		if words >= s.maxWords {
			hiLimit = end
			break
		}
		if end > s.charBudget+lookAhead {
			// Past every offset the searches can use.
			break
		}
		i = end
	}
	return target, hiLimit
}

// findParagraph searches [lo, hi) for a blank-line paragraph break, or
// sentence-ending punctuation followed by a newline and a capitalized
// sentence. The candidate nearest target wins.
func (s *Selector) findParagraph(suffix string, target, lo, hi int) (int, bool) {
	best, found := 0, false
	for i := lo; i < hi; i++ {
		var cand int
		switch {
		case suffix[i] == '\n':
			// Blank line: newline, optional horizontal space, newline.
			j := i + 1
			for j < hi && (suffix[j] == ' ' || suffix[j] == '\t' || suffix[j] == '\r') {
				j++
			}
			if j < hi && suffix[j] == '\n' {
				cand = j + 1
			}
		case isSentenceEnd(suffix[i]):
			// Sentence end running straight into a new capitalized
			// paragraph line.
			if k, ok := capitalAfterBreak(suffix, i+1, hi, true); ok {
				cand = k
			}
		}
		if cand > 0 {
			if !found || abs(cand-target) < abs(best-target) {
				best, found = cand, true
			}
		}
	}
	return best, found
}

// findSentence searches [lo, hi) for sentence-ending punctuation
// followed by whitespace and a capital letter. The candidate nearest
// target wins.
func (s *Selector) findSentence(suffix string, target, lo, hi int) (int, bool) {
	best, found := 0, false
	for i := lo; i < hi; i++ {
		if !isSentenceEnd(suffix[i]) {
			continue
		}
		k, ok := capitalAfterBreak(suffix, i+1, hi, false)
		if !ok {
			continue
		}
		if !found || abs(k-target) < abs(best-target) {
			best, found = k, true
		}
	}
	return best, found
}

// fallback scans backward from target for the nearest whitespace, then
// forward, splitting just past the whitespace found. A suffix with no
// whitespace in either direction is hard-truncated at the character
// budget, rounded down to a rune boundary, so pagination always advances.
func (s *Selector) fallback(suffix string, target int) (int, Kind) {
	if target > len(suffix) {
		target = len(suffix)
	}

	// Backward: last whitespace strictly before target.
	for i := target - 1; i >= 0; i-- {
		if isRuneStart(suffix[i]) {
			r, size := utf8.DecodeRuneInString(suffix[i:])
			if unicode.IsSpace(r) {
				return i + size, KindWord
			}
		}
	}

	// Forward: first whitespace at or after target. The page overruns
	// the budget by the length of the unbroken token.
	for i := target; i < len(suffix); {
		r, size := utf8.DecodeRuneInString(suffix[i:])
		if unicode.IsSpace(r) {
			return i + size, KindWord
		}
		i += size
	}

	// One unbroken token with no whitespace anywhere: cut at the budget.
	cut := min(s.charBudget, len(suffix))
	for cut > 0 && !isRuneStartAt(suffix, cut) {
		cut--
	}
	if cut <= 0 {
		cut = len(suffix)
	}
	return cut, KindForced
}

// window clamps the boundary search range around target, bounding the
// forward reach by hiLimit (the word-cap offset).
func (s *Selector) window(suffix string, target, hiLimit int) (lo, hi int) {
	lo = target - lookBehind
	if lo < 0 {
		lo = 0
	}
	hi = target + lookAhead
	if hi > hiLimit {
		hi = hiLimit
	}
	if hi > len(suffix) {
		hi = len(suffix)
	}
	return lo, hi
}

// capitalAfterBreak reports the offset of a capital letter following a
// run of whitespace starting at i. When requireNewline is set, the run
// must contain at least one newline.
func capitalAfterBreak(s string, i, hi int, requireNewline bool) (int, bool) {
	sawNewline := false
	j := i
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !unicode.IsSpace(r) {
			break
		}
		if r == '\n' {
			sawNewline = true
		}
		j += size
	}
	if j == i || j > hi || j >= len(s) {
		return 0, false
	}
	if requireNewline && !sawNewline {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s[j:])
	if !unicode.IsUpper(r) {
		return 0, false
	}
	return j, true
}

// isSentenceEnd reports whether b terminates a sentence.
func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// isRuneStart reports whether b is the first byte of a UTF-8 sequence.
func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// isRuneStartAt reports whether position i in s is a rune boundary.
func isRuneStartAt(s string, i int) bool {
	return i >= len(s) || isRuneStart(s[i])
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
