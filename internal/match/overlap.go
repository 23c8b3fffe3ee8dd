package match

import "github.com/kk-code-lab/docfind/internal/pagetext"

// Overlap is the part of one match that falls inside one fragment,
// expressed relative to the fragment's own text. GlobalIndex identifies the
// match across the whole document so a renderer can mark the currently
// selected occurrence.
type Overlap struct {
	LocalStart  int
	LocalEnd    int
	GlobalIndex int
}

// Overlaps returns the sub-ranges of a fragment covered by the page's
// matches, ascending by LocalStart. pageMatches must be the fragment's
// page's full match set in scan order; before is the number of matches on
// lower-numbered pages. A match spanning several fragments contributes one
// clamped entry to each.
func Overlaps(pageMatches []Span, frag pagetext.Span, fragLen int, before int) []Overlap {
	var out []Overlap
	for i, m := range pageMatches {
		if max(m.Start, frag.Start) >= min(m.End, frag.End) {
			continue
		}
		out = append(out, Overlap{
			LocalStart:  clamp(m.Start-frag.Start, 0, fragLen),
			LocalEnd:    clamp(m.End-frag.Start, 0, fragLen),
			GlobalIndex: before + i,
		})
	}
	return out
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
