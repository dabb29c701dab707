package paginate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/quirelabs/quire/internal/engine/page"
)

func TestUpdatePageReplacesContent(t *testing.T) {
	p := New(smallConfig())
	doc := strings.Repeat("alpha ", 9)
	seq := p.Paginate(doc)
	if len(seq) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(seq))
	}

	res := p.UpdatePage(seq, 1, "Updated page content")

	if !res.Updated {
		t.Fatal("expected the update to apply")
	}
	if res.Page.Content != "Updated page content" {
		t.Errorf("unexpected content %q", res.Page.Content)
	}
	if res.Page.WordCount != 3 {
		t.Errorf("expected 3 words, got %d", res.Page.WordCount)
	}
	if res.Page.CharacterCount != len("Updated page content") {
		t.Errorf("expected %d characters, got %d", len("Updated page content"), res.Page.CharacterCount)
	}
	// Identity and start offset survive the replacement.
	if res.Page.ID != "page-1" || res.Page.StartIndex != 0 {
		t.Errorf("identity changed: id=%q start=%d", res.Page.ID, res.Page.StartIndex)
	}
	// The other page is carried over untouched.
	if !reflect.DeepEqual(res.Pages[1], seq[1]) {
		t.Error("unedited page should be unchanged")
	}
	// The input sequence is not mutated.
	if seq[0].Content == res.Page.Content {
		t.Error("update mutated its input")
	}
}

func TestUpdatePageUnknownNumber(t *testing.T) {
	p := New(smallConfig())
	seq := p.Paginate(strings.Repeat("alpha ", 9))

	res := p.UpdatePage(seq, 99, "whatever")

	if res.Updated {
		t.Error("unknown page number should not update")
	}
	if !reflect.DeepEqual(res.Pages, seq) {
		t.Error("sequence should come back unchanged")
	}
	if res.NeedsRepagination || res.OffsetsStale {
		t.Error("no-op update should not raise flags")
	}
}

func TestUpdatePageOffsetsStale(t *testing.T) {
	p := New(smallConfig())
	seq := p.Paginate(strings.Repeat("alpha ", 9))

	// Shortening a non-final page leaves later offsets stale.
	res := p.UpdatePage(seq, 1, "tiny")
	if !res.OffsetsStale {
		t.Error("length change on a non-final page should mark offsets stale")
	}

	// Same-length replacement keeps offsets valid.
	res = p.UpdatePage(seq, 1, strings.Repeat("bravo ", 5))
	if res.OffsetsStale {
		t.Error("same-length replacement should not mark offsets stale")
	}

	// The final page has nothing after it to go stale.
	res = p.UpdatePage(seq, 2, "short tail")
	if res.OffsetsStale {
		t.Error("editing the last page should not mark offsets stale")
	}
}

func TestUpdatePageReconstruct(t *testing.T) {
	p := New(smallConfig())
	doc := strings.Repeat("alpha ", 9)
	seq := p.Paginate(doc)

	res := p.UpdatePage(seq, 1, "Updated page content")

	want := "Updated page content" + doc[seq[0].EndIndex:]
	if got := res.Pages.Reconstruct(); got != want {
		t.Errorf("reconstruct mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestNeedsRepagination(t *testing.T) {
	p := New(Config{
		WordsPerPage:          10,
		CharactersPerPage:     100,
		MaxWindowPages:        3,
		RepaginationThreshold: 1.2,
	})

	cases := []struct {
		name    string
		content string
		want    bool
	}{
		{"at word cap", strings.TrimSpace(strings.Repeat("w ", 12)), false},
		{"over word cap", strings.TrimSpace(strings.Repeat("w ", 13)), true},
		{"at char cap", strings.Repeat("x", 120), false},
		{"over char cap", strings.Repeat("x", 121), true},
		{"well within", "a few words", false},
	}
	for _, tc := range cases {
		pg := page.New(1, 0, tc.content)
		if got := p.NeedsRepagination(pg); got != tc.want {
			t.Errorf("%s: NeedsRepagination = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestUpdateThenRepaginateClearsFlags(t *testing.T) {
	p := New(smallConfig())
	doc := strings.Repeat("alpha ", 20) // 120 bytes, several pages
	seq := p.Paginate(doc)
	if len(seq) < 3 {
		t.Fatalf("need at least 3 pages, got %d", len(seq))
	}

	grown := seq[1].Content + strings.Repeat("bravo ", 12)
	res := p.UpdatePage(seq, 2, grown)
	if !res.NeedsRepagination {
		t.Fatal("grown page should exceed its budgets")
	}
	if !res.OffsetsStale {
		t.Fatal("grown non-final page should leave offsets stale")
	}

	edited := res.Pages.Reconstruct()
	out := p.RepaginateFrom(res.Pages, 2, edited)

	if err := out.Validate(len(edited)); err != nil {
		t.Fatalf("repagination should restore all invariants: %v", err)
	}
	for _, pg := range out[:len(out)-1] {
		if p.NeedsRepagination(pg) {
			t.Errorf("page %d still over budget after repagination", pg.PageNumber)
		}
	}
}
