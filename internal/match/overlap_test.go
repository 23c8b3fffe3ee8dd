package match

import (
	"testing"

	"github.com/kk-code-lab/docfind/internal/pagetext"
)

func TestOverlapsMatchInsideFragment(t *testing.T) {
	frag := pagetext.Span{Start: 10, End: 20}
	matches := []Span{{Start: 12, End: 15}}

	got := Overlaps(matches, frag, 10, 4)
	if len(got) != 1 {
		t.Fatalf("got %d overlaps want 1", len(got))
	}
	want := Overlap{LocalStart: 2, LocalEnd: 5, GlobalIndex: 4}
	if got[0] != want {
		t.Fatalf("got %+v want %+v", got[0], want)
	}
}

func TestOverlapsMatchSpanningTwoFragments(t *testing.T) {
	// Fragments "hello" and "world" joined as "hello world"; the match
	// covers the whole joined string.
	joined, spans := pagetext.Join([]string{"hello", "world"})
	matches := []Span{{Start: 0, End: len(joined)}}

	first := Overlaps(matches, spans[0], 5, 0)
	if len(first) != 1 {
		t.Fatalf("first fragment: %d overlaps", len(first))
	}
	if first[0].LocalStart != 0 || first[0].LocalEnd != 5 {
		t.Fatalf("first fragment overlap %+v, want clamped to [0,5)", first[0])
	}

	second := Overlaps(matches, spans[1], 5, 0)
	if len(second) != 1 {
		t.Fatalf("second fragment: %d overlaps", len(second))
	}
	if second[0].LocalStart != 0 || second[0].LocalEnd != 5 {
		t.Fatalf("second fragment overlap %+v, want clamped to [0,5)", second[0])
	}
	if first[0].GlobalIndex != second[0].GlobalIndex {
		t.Fatalf("one match produced two global indices: %d vs %d",
			first[0].GlobalIndex, second[0].GlobalIndex)
	}
}

func TestOverlapsNoIntersection(t *testing.T) {
	frag := pagetext.Span{Start: 0, End: 5}
	matches := []Span{
		{Start: 5, End: 8},  // touches the boundary, strict overlap required
		{Start: 20, End: 25},
	}
	if got := Overlaps(matches, frag, 5, 0); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestOverlapsMultipleMatchesOrdered(t *testing.T) {
	frag := pagetext.Span{Start: 0, End: 20}
	matches := []Span{{Start: 2, End: 4}, {Start: 8, End: 12}, {Start: 15, End: 18}}

	got := Overlaps(matches, frag, 20, 7)
	if len(got) != 3 {
		t.Fatalf("got %d overlaps want 3", len(got))
	}
	for i, ov := range got {
		if ov.GlobalIndex != 7+i {
			t.Fatalf("overlap %d global index %d want %d", i, ov.GlobalIndex, 7+i)
		}
		if i > 0 && got[i].LocalStart < got[i-1].LocalStart {
			t.Fatalf("overlaps not ascending: %+v", got)
		}
	}
}

func TestOverlapsZeroLengthFragment(t *testing.T) {
	frag := pagetext.Span{Start: 4, End: 4}
	matches := []Span{{Start: 0, End: 10}}
	if got := Overlaps(matches, frag, 0, 0); got != nil {
		t.Fatalf("zero-length fragment overlapped: %+v", got)
	}
}
