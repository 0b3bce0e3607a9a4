package session

import (
	"github.com/pkoski/recipefinder/internal/spoonacular"
)

// Searcher is the slice of the API client the paginator needs.
// Tests substitute fakes.
type Searcher interface {
	Search(query string, count, offset int) ([]spoonacular.RecipeSummary, error)
}

// SearchSession owns the ordered, deduplicated list of recipes fetched so
// far for one query, the current page offset into it, and whether another
// page is likely available. It lives for the duration of one query and is
// reset on a new search.
//
// Invariants:
//   - Results contains no duplicate id
//   - Offset is a non-negative multiple of the page size
//   - LastPageFull is true only if the most recent fetch returned exactly
//     pageSize items
type SearchSession struct {
	// Query is the active free-text search
	Query string

	// Results in fetch order, unique by id
	Results []spoonacular.RecipeSummary

	// Offset is the zero-based index of the current page window
	Offset int

	// LastPageFull records whether the most recent fetch returned a full
	// page, which is the only signal that more results may exist
	LastPageFull bool

	// seen gives O(1) duplicate detection on append
	seen map[int]struct{}
}

// NewSearchSession returns an empty session with no active query.
func NewSearchSession() *SearchSession {
	return &SearchSession{
		seen: make(map[int]struct{}),
	}
}

// Reset clears all fetched results and starts a new query at offset 0.
func (s *SearchSession) Reset(query string) {
	s.Query = query
	s.Results = nil
	s.Offset = 0
	s.LastPageFull = false
	s.seen = make(map[int]struct{})
}

// EnsurePageLoaded fetches the page at the current offset if it is not
// already in the buffer. Repeated calls at the same offset when data is
// present perform no fetch.
//
// On fetch failure Results and Offset are left unchanged and the error is
// returned for the caller to surface as a soft failure.
func (s *SearchSession) EnsurePageLoaded(api Searcher, pageSize int) error {
	if s.Offset < len(s.Results) {
		return nil
	}

	fetched, err := api.Search(s.Query, pageSize, s.Offset)
	if err != nil {
		return err
	}

	s.LastPageFull = len(fetched) == pageSize

	// Append only unseen ids, in response order
	for _, r := range fetched {
		if _, dup := s.seen[r.ID]; dup {
			continue
		}
		s.seen[r.ID] = struct{}{}
		s.Results = append(s.Results, r)
	}

	return nil
}

// PageSlice returns the window Results[Offset : Offset+pageSize]. If that
// window is empty while Offset > 0 (a retreat past the loaded buffer, or a
// failed advance), the offset is clamped back onto the last loaded page
// and the slice recomputed.
func (s *SearchSession) PageSlice(pageSize int) []spoonacular.RecipeSummary {
	slice := s.window(pageSize)
	if len(slice) == 0 && s.Offset > 0 {
		s.Offset = clampOffset(len(s.Results)-pageSize, pageSize)
		slice = s.window(pageSize)
	}
	return slice
}

func (s *SearchSession) window(pageSize int) []spoonacular.RecipeSummary {
	if s.Offset >= len(s.Results) {
		return nil
	}
	end := s.Offset + pageSize
	if end > len(s.Results) {
		end = len(s.Results)
	}
	return s.Results[s.Offset:end]
}

// clampOffset floors n at zero and rounds it down to a pageSize multiple.
func clampOffset(n, pageSize int) int {
	if n <= 0 {
		return 0
	}
	return n - n%pageSize
}

// AdvancePage moves the window forward one page. Allowed only when the
// most recent fetch returned a full page. Reports whether it moved.
func (s *SearchSession) AdvancePage(pageSize int) bool {
	if !s.LastPageFull {
		return false
	}
	s.Offset += pageSize
	return true
}

// RetreatPage moves the window back one page. A retreat at offset 0 is a
// no-op. Reports whether it moved.
func (s *SearchSession) RetreatPage(pageSize int) bool {
	if s.Offset <= 0 {
		return false
	}
	s.Offset -= pageSize
	if s.Offset < 0 {
		s.Offset = 0
	}
	return true
}

// CanAdvance reports whether a "load more" affordance should be offered.
func (s *SearchSession) CanAdvance() bool {
	return s.LastPageFull
}

// CanRetreat reports whether a "previous page" affordance should be offered.
func (s *SearchSession) CanRetreat() bool {
	return s.Offset > 0
}

// PageNumber returns the 1-based number of the current page.
func (s *SearchSession) PageNumber(pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	return s.Offset/pageSize + 1
}
