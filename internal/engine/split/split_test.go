package split

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

// sel returns a selector with small budgets the tests can reason about:
// 10 words, 100 bytes, 20% threshold.
func sel() *Selector {
	return NewSelector(10, 100, 1.2)
}

func TestFindPrefersParagraphBreak(t *testing.T) {
	text := strings.Repeat("word ", 11) + "\n\nNext paragraph content continues with many more trailing words"

	off, kind := sel().Find(text)
	if kind != KindParagraph {
		t.Fatalf("expected paragraph split, got %v", kind)
	}
	if off != 57 {
		t.Errorf("expected split at start of next paragraph (57), got %d", off)
	}
	if text[off] != 'N' {
		t.Errorf("split should land on the next paragraph, found %q", text[off])
	}
}

func TestFindFallsBackToSentence(t *testing.T) {
	text := strings.Repeat("word ", 9) + "ends here. Capital continues with more padding words after"

	off, kind := sel().Find(text)
	if kind != KindSentence {
		t.Fatalf("expected sentence split, got %v", kind)
	}
	if text[off] != 'C' {
		t.Errorf("split should land on the capital, found %q", text[off])
	}
	if text[off-1] != ' ' {
		t.Errorf("character before split should be whitespace, found %q", text[off-1])
	}
}

func TestFindFallsBackToWhitespace(t *testing.T) {
	text := strings.Repeat("word ", 30)

	off, kind := sel().Find(text)
	if kind != KindWord {
		t.Fatalf("expected word split, got %v", kind)
	}
	if off <= 0 || off > len(text) {
		t.Fatalf("offset %d out of range", off)
	}
	if !unicode.IsSpace(rune(text[off-1])) {
		t.Errorf("character before split should be whitespace, found %q", text[off-1])
	}
}

func TestFindForwardWhitespace(t *testing.T) {
	// An unbroken token longer than the budget, with whitespace after it:
	// the scan goes forward and the page overruns by the token length.
	text := strings.Repeat("x", 150) + " tail words follow the long token"

	off, kind := sel().Find(text)
	if kind != KindWord {
		t.Fatalf("expected word split, got %v", kind)
	}
	if off != 151 {
		t.Errorf("expected split just past the whitespace at 150, got %d", off)
	}
}

func TestFindUnbrokenRun(t *testing.T) {
	// No whitespace anywhere: hard-truncate at the character budget so
	// pagination always advances.
	text := strings.Repeat("x", 300)

	off, kind := sel().Find(text)
	if kind != KindForced {
		t.Fatalf("expected forced split, got %v", kind)
	}
	if off != 100 {
		t.Errorf("expected truncation at the 100-byte budget, got %d", off)
	}
}

func TestFindUnbrokenRunRuneBoundary(t *testing.T) {
	// 2-byte runes with a 99-byte budget: the cut must move back to a
	// rune boundary.
	s := NewSelector(10, 99, 1.2)
	text := strings.Repeat("é", 120)

	off, kind := s.Find(text)
	if kind != KindForced {
		t.Fatalf("expected forced split, got %v", kind)
	}
	if off != 98 {
		t.Errorf("expected cut at rune boundary 98, got %d", off)
	}
	if !utf8.RuneStart(text[off]) {
		t.Error("cut landed inside a multi-byte sequence")
	}
}

func TestFindNeverReturnsZero(t *testing.T) {
	inputs := []string{
		strings.Repeat("x", 101),
		strings.Repeat(" ", 150),
		" " + strings.Repeat("x", 150),
		strings.Repeat("word ", 25),
		strings.Repeat("é", 120),
	}
	for _, text := range inputs {
		off, _ := sel().Find(text)
		if off <= 0 {
			t.Errorf("Find(%q...) returned %d, pagination would stall", text[:10], off)
		}
		if off > len(text) {
			t.Errorf("Find returned %d past end %d", off, len(text))
		}
	}
}

func TestFindNearestCandidateWins(t *testing.T) {
	// Two paragraph breaks in the window; the one nearer the budget
	// target is chosen.
	words := strings.Repeat("word ", 8) // 40 bytes, 8 words
	text := words + "\n\n" + words + "\n\n" + strings.Repeat("word ", 30)

	off, kind := sel().Find(text)
	if kind != KindParagraph {
		t.Fatalf("expected paragraph split, got %v", kind)
	}
	// The word cap (12) puts the budget target at byte 61, early in the
	// second block: the break ending at 42 is nearer than the one at 84.
	if off != 42 {
		t.Errorf("expected the first paragraph break (42), got %d", off)
	}
}

func TestBudgetTargetWordCap(t *testing.T) {
	// Plenty of character budget left, but the word cap (threshold *
	// target = 12) stops accumulation.
	s := NewSelector(10, 10000, 1.2)
	text := strings.Repeat("w ", 200)

	target, hiLimit := s.budgetTarget(text)
	wordsIncluded := len(strings.Fields(text[:target]))
	if wordsIncluded != 12 {
		t.Errorf("expected 12 words at the cap, got %d", wordsIncluded)
	}
	if hiLimit != target {
		t.Errorf("word-capped search limit should equal the target, got %d != %d", hiLimit, target)
	}
}

func TestBudgetTargetCharBound(t *testing.T) {
	// The character budget binds before the word cap.
	s := NewSelector(1000, 50, 1.2)
	text := strings.Repeat("word ", 40)

	target, _ := s.budgetTarget(text)
	if target > 50 {
		t.Errorf("target %d exceeds the character budget", target)
	}
	if target == 0 {
		t.Error("target should include at least one word")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindParagraph: "paragraph",
		KindSentence:  "sentence",
		KindWord:      "word",
		KindForced:    "forced",
		Kind(99):      "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
