package viewer

import (
	"strings"
	"testing"

	"github.com/kk-code-lab/docfind/internal/match"
)

func TestSplitRunsNoOverlaps(t *testing.T) {
	runs := splitRuns("plain text", nil, 0, false)
	if len(runs) != 1 || runs[0].highlight || runs[0].text != "plain text" {
		t.Fatalf("runs = %+v", runs)
	}
	if got := splitRuns("", nil, 0, false); got != nil {
		t.Fatalf("empty text produced runs: %+v", got)
	}
}

func TestSplitRunsMarksMatchedRanges(t *testing.T) {
	text := "the cat sat on the cat"
	overlaps := []match.Overlap{
		{LocalStart: 4, LocalEnd: 7, GlobalIndex: 0},
		{LocalStart: 19, LocalEnd: 22, GlobalIndex: 1},
	}

	runs := splitRuns(text, overlaps, 1, true)

	var rebuilt strings.Builder
	highlighted := 0
	currents := 0
	for _, run := range runs {
		rebuilt.WriteString(run.text)
		if run.highlight {
			highlighted++
			if run.text != "cat" {
				t.Fatalf("highlighted run %q", run.text)
			}
		}
		if run.current {
			currents++
		}
	}
	// Splicing must not alter non-matched characters.
	if rebuilt.String() != text {
		t.Fatalf("rebuilt %q want %q", rebuilt.String(), text)
	}
	if highlighted != 2 {
		t.Fatalf("%d highlighted runs want 2", highlighted)
	}
	if currents != 1 {
		t.Fatalf("%d current runs want 1", currents)
	}
}

func TestSplitRunsClampsOutOfRangeOverlap(t *testing.T) {
	runs := splitRuns("abc", []match.Overlap{{LocalStart: 1, LocalEnd: 99, GlobalIndex: 0}}, 0, false)
	var rebuilt strings.Builder
	for _, run := range runs {
		rebuilt.WriteString(run.text)
	}
	if rebuilt.String() != "abc" {
		t.Fatalf("rebuilt %q", rebuilt.String())
	}
}

func TestSplitRunsAdjacentOverlaps(t *testing.T) {
	runs := splitRuns("aabb", []match.Overlap{
		{LocalStart: 0, LocalEnd: 2, GlobalIndex: 3},
		{LocalStart: 2, LocalEnd: 4, GlobalIndex: 4},
	}, 4, true)

	if len(runs) != 2 {
		t.Fatalf("runs = %+v", runs)
	}
	if runs[0].current || !runs[1].current {
		t.Fatalf("current flags wrong: %+v", runs)
	}
}
