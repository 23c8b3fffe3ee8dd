package find

import (
	"sort"

	"github.com/kk-code-lab/docfind/internal/match"
)

// registry aggregates per-page match sets into a single ordering: page
// ascending, then start offset ascending within a page. A match's position
// in that ordering is its global index.
type registry struct {
	matches map[int][]match.Span
	pages   []int // ascending, only pages with at least one match
	total   int
}

func newRegistry() *registry {
	return &registry{matches: make(map[int][]match.Span)}
}

// replace swaps in a freshly computed match table.
func (r *registry) replace(matches map[int][]match.Span) {
	r.matches = matches
	r.pages = r.pages[:0]
	r.total = 0
	for page, spans := range matches {
		if len(spans) == 0 {
			continue
		}
		r.pages = append(r.pages, page)
		r.total += len(spans)
	}
	sort.Ints(r.pages)
}

func (r *registry) totalMatches() int {
	return r.total
}

func (r *registry) spans(page int) []match.Span {
	return r.matches[page]
}

// countBefore sums matches on pages numbered strictly less than page.
func (r *registry) countBefore(page int) int {
	count := 0
	for _, p := range r.pages {
		if p >= page {
			break
		}
		count += len(r.matches[p])
	}
	return count
}

// pageFor walks pages in ascending order accumulating counts until idx
// falls within a page's range.
func (r *registry) pageFor(idx int) (int, bool) {
	if idx < 0 || idx >= r.total {
		return 0, false
	}
	seen := 0
	for _, p := range r.pages {
		seen += len(r.matches[p])
		if idx < seen {
			return p, true
		}
	}
	return 0, false
}
