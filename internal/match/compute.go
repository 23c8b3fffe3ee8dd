package match

import (
	"regexp"

	"github.com/kk-code-lab/docfind/internal/pagetext"
)

// Span is one phrase occurrence, half-open byte offsets into a page's
// joined text.
type Span struct {
	Start int
	End   int
}

// Compute scans every page known to store for re and returns per-page match
// spans in scan order (start ascending, leftmost-first, non-overlapping).
// The result is derived wholly from the inputs; callers rerun it whenever
// the phrase or any page's text changes. Pages without matches have no
// entry.
func Compute(re *regexp.Regexp, store *pagetext.Store) map[int][]Span {
	out := make(map[int][]Span)
	if re == nil {
		return out
	}

	for _, page := range store.Pages() {
		pt, _ := store.Page(page)
		locs := re.FindAllStringIndex(pt.Joined, -1)
		if len(locs) == 0 {
			continue
		}
		spans := make([]Span, len(locs))
		for i, loc := range locs {
			spans[i] = Span{Start: loc[0], End: loc[1]}
		}
		out[page] = spans
	}
	return out
}
