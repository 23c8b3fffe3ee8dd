package pagetext

import "sort"

// PageText is the indexed text of one page.
type PageText struct {
	Fragments []string
	Joined    string
	Spans     []Span
}

// Store holds decoded page text keyed by 1-based page number. A page's
// record is replaced wholesale, never merged; callers provide their own
// synchronization.
type Store struct {
	pages map[int]PageText
}

func NewStore() *Store {
	return &Store{pages: make(map[int]PageText)}
}

// SetPageText replaces the stored record for page. Re-invoking with
// identical fragments is idempotent.
func (s *Store) SetPageText(page int, fragments []string) {
	joined, spans := Join(fragments)
	s.pages[page] = PageText{
		Fragments: append([]string(nil), fragments...),
		Joined:    joined,
		Spans:     spans,
	}
}

func (s *Store) Has(page int) bool {
	_, ok := s.pages[page]
	return ok
}

func (s *Store) Page(page int) (PageText, bool) {
	pt, ok := s.pages[page]
	return pt, ok
}

// Pages returns the stored page numbers in ascending order.
func (s *Store) Pages() []int {
	pages := make([]int, 0, len(s.pages))
	for page := range s.pages {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	return pages
}

func (s *Store) Len() int {
	return len(s.pages)
}
