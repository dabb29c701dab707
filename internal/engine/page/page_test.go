package page

import "testing"

func TestNew(t *testing.T) {
	p := New(1, 0, "Hello world")

	if p.ID != "page-1" {
		t.Errorf("expected id page-1, got %q", p.ID)
	}
	if p.PageNumber != 1 {
		t.Errorf("expected page number 1, got %d", p.PageNumber)
	}
	if p.StartIndex != 0 || p.EndIndex != 11 {
		t.Errorf("expected range [0:11), got [%d:%d)", p.StartIndex, p.EndIndex)
	}
	if p.WordCount != 2 {
		t.Errorf("expected 2 words, got %d", p.WordCount)
	}
	if p.CharacterCount != 11 {
		t.Errorf("expected 11 characters, got %d", p.CharacterCount)
	}
}

func TestNewWithOffset(t *testing.T) {
	p := New(3, 100, "abc")

	if p.StartIndex != 100 || p.EndIndex != 103 {
		t.Errorf("expected range [100:103), got [%d:%d)", p.StartIndex, p.EndIndex)
	}
	if p.ID != "page-3" {
		t.Errorf("expected id page-3, got %q", p.ID)
	}
}

func TestNewEmpty(t *testing.T) {
	p := New(1, 0, "")

	if !p.IsEmpty() {
		t.Error("page should be empty")
	}
	if p.WordCount != 0 || p.CharacterCount != 0 {
		t.Errorf("expected zero counts, got words=%d chars=%d", p.WordCount, p.CharacterCount)
	}
	if p.StartIndex != 0 || p.EndIndex != 0 {
		t.Errorf("expected range [0:0), got [%d:%d)", p.StartIndex, p.EndIndex)
	}
}

func TestWithContent(t *testing.T) {
	p := New(2, 50, "old content here")
	q := p.WithContent("new")

	if p.Content != "old content here" {
		t.Error("original page should be unchanged")
	}
	if q.Content != "new" {
		t.Errorf("expected new content, got %q", q.Content)
	}
	if q.StartIndex != 50 {
		t.Errorf("start index should be preserved, got %d", q.StartIndex)
	}
	if q.EndIndex != 53 {
		t.Errorf("end index should track new content, got %d", q.EndIndex)
	}
	if q.WordCount != 1 || q.CharacterCount != 3 {
		t.Errorf("counts not recomputed: words=%d chars=%d", q.WordCount, q.CharacterCount)
	}
	if q.PageNumber != 2 || q.ID != "page-2" {
		t.Errorf("identity should be preserved: number=%d id=%q", q.PageNumber, q.ID)
	}
}

func TestRenumber(t *testing.T) {
	p := New(1, 0, "content")
	q := p.Renumber(5, 300)

	if q.PageNumber != 5 || q.ID != "page-5" {
		t.Errorf("expected page 5, got number=%d id=%q", q.PageNumber, q.ID)
	}
	if q.StartIndex != 300 || q.EndIndex != 307 {
		t.Errorf("expected range [300:307), got [%d:%d)", q.StartIndex, q.EndIndex)
	}
	if q.Content != "content" {
		t.Error("content should be unchanged")
	}
}

func TestCountWords(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"  leading and trailing  ", 3},
		{"tabs\tand\nnewlines too", 4},
	}
	for _, tc := range cases {
		if got := CountWords(tc.in); got != tc.want {
			t.Errorf("CountWords(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestExcerpt(t *testing.T) {
	p := New(1, 0, "héllo 👍🏽 world")

	got := p.Excerpt(7)
	if got != "héllo 👍🏽…" {
		t.Errorf("expected grapheme-safe excerpt, got %q", got)
	}
}

func TestExcerptShortContent(t *testing.T) {
	p := New(1, 0, "tiny")

	if got := p.Excerpt(40); got != "tiny" {
		t.Errorf("short content should not be truncated, got %q", got)
	}
}

func TestExcerptZeroWidth(t *testing.T) {
	p := New(1, 0, "content")

	if got := p.Excerpt(0); got != "" {
		t.Errorf("zero width excerpt should be empty, got %q", got)
	}
}
