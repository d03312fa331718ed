package paginator

import "fmt"

// Defaults and sentinels for the engine's stored fields. A zero value means
// the corresponding sizing input has not been set yet; paging stays disabled
// until both inputs are positive.
const (
	// DefaultPage is the page every State starts on and resets to.
	DefaultPage = 1
)

// State is the pagination state engine. It owns the sizing inputs
// (total items, items per page), the current and last page, and the
// derived total page count.
//
// The zero value is not usable; construct with New or NewSized.
type State struct {
	totalItems   int // 0 when unset or genuinely empty; both disable paging
	itemsPerPage int // 0 means unset
	page         int
	lastPage     int // 0 until the first accepted page change
	totalPages   int // recomputed on every sizing change

	pageSubs   []*Subscription
	sizingSubs []*Subscription
}

// New creates a State with no sizing inputs. Paging is disabled (TotalPages
// is 0 and every SetPage is rejected) until both SetTotalItems and
// SetItemsPerPage have been given positive values.
func New() *State {
	return &State{page: DefaultPage}
}

// NewSized creates a State with initial sizing inputs. Construction never
// fails: out-of-domain inputs are ignored and simply leave paging disabled,
// matching New(). No notifications fire (there are no subscribers yet).
func NewSized(totalItems, itemsPerPage int) *State {
	s := New()
	if totalItems >= 0 {
		s.totalItems = totalItems
	}
	if itemsPerPage >= 1 {
		s.itemsPerPage = itemsPerPage
	}
	s.totalPages = PageCount(s.totalItems, s.itemsPerPage)
	return s
}

// PageCount returns the number of pages needed to hold totalItems items at
// perPage items each, using ceiling division. Returns 0 when either input
// is not positive.
func PageCount(totalItems, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	pages := totalItems / perPage
	if totalItems%perPage > 0 {
		pages++
	}
	return pages
}

// SetTotalItems updates the total item count. n must be non-negative;
// otherwise ErrInvalidTotalItems is returned and nothing changes.
//
// On success the total page count is recomputed, the current page resets
// to 1 (any sizing change invalidates the current page position), and a
// sizing-change notification fires.
func (s *State) SetTotalItems(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotalItems, n)
	}
	s.totalItems = n
	s.recompute()
	return nil
}

// SetItemsPerPage updates the page size. n must be >= 1; otherwise
// ErrInvalidPageSize is returned and nothing changes.
//
// On success the total page count is recomputed, the current page resets
// to 1, and a sizing-change notification fires.
func (s *State) SetItemsPerPage(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, n)
	}
	s.itemsPerPage = n
	s.recompute()
	return nil
}

// SetPage attempts to change the current page to n and reports whether the
// change was accepted. A rejected request (n < 1, n beyond the last page,
// or paging disabled because a sizing input is unset) leaves the current
// page and the last page untouched. Rejection is routine steady-state
// behavior, e.g. clicking "next" past the last page, so it is not an error.
//
// Setting the page it is already on is an accepted no-op: the last page is
// not recorded and no notification fires.
func (s *State) SetPage(n int) bool {
	// Lower bound and enablement first, then the upper bound.
	if n < DefaultPage || s.itemsPerPage <= 0 || s.totalPages <= 0 {
		return false
	}
	if n > s.totalPages {
		return false
	}
	s.applyPage(n)
	return true
}

// NextPage advances to the following page. Equivalent to SetPage(Page()+1).
func (s *State) NextPage() bool { return s.SetPage(s.page + 1) }

// PrevPage moves to the preceding page. Equivalent to SetPage(Page()-1).
func (s *State) PrevPage() bool { return s.SetPage(s.page - 1) }

// FirstPage moves to page 1.
func (s *State) FirstPage() bool { return s.SetPage(DefaultPage) }

// LastPageJump moves to the final page.
func (s *State) LastPageJump() bool { return s.SetPage(s.totalPages) }

// TotalItems returns the total item count, 0 when unset.
func (s *State) TotalItems() int { return s.totalItems }

// ItemsPerPage returns the page size, 0 when unset.
func (s *State) ItemsPerPage() int { return s.itemsPerPage }

// Page returns the current 1-based page.
func (s *State) Page() int { return s.page }

// LastPage returns the page the engine was on immediately before the most
// recent accepted page change, or 0 if no change has been accepted yet.
func (s *State) LastPage() int { return s.lastPage }

// TotalPages returns the derived page count, 0 while paging is disabled.
func (s *State) TotalPages() int { return s.totalPages }

// ItemIndexStart returns the 0-based index of the first item on the
// current page: (page-1) * itemsPerPage.
func (s *State) ItemIndexStart() int {
	if s.itemsPerPage <= 0 {
		return 0
	}
	return (s.page - DefaultPage) * s.itemsPerPage
}

// ItemIndexEnd returns the exclusive upper item index of the current page:
// min(ItemIndexStart + itemsPerPage, totalItems). The last page's range
// never exceeds the total item count.
func (s *State) ItemIndexEnd() int {
	if s.itemsPerPage <= 0 {
		return 0
	}
	end := s.ItemIndexStart() + s.itemsPerPage
	if end > s.totalItems {
		end = s.totalItems
	}
	return end
}

// HasPrevious reports whether a page precedes the current one.
func (s *State) HasPrevious() bool { return s.totalPages > 0 && s.page > DefaultPage }

// HasNext reports whether a page follows the current one.
func (s *State) HasNext() bool { return s.page < s.totalPages }

// recompute refreshes the derived page count after a sizing change and
// resets the current page through the same path as SetPage. Page 1 is
// always within range when paging is enabled; when it is disabled the
// default is recorded directly without a page-change notification.
func (s *State) recompute() {
	s.totalPages = PageCount(s.totalItems, s.itemsPerPage)
	if s.totalPages > 0 {
		if s.page != DefaultPage {
			s.applyPage(DefaultPage)
		}
	} else {
		s.page = DefaultPage
	}
	s.notifySizing(SizingChange{
		TotalItems:   s.totalItems,
		ItemsPerPage: s.itemsPerPage,
		TotalPages:   s.totalPages,
	})
}

// applyPage performs an accepted page change: records the last page,
// mutates, then notifies. Notification happens after the mutation so
// handlers always observe consistent state, even when they immediately
// issue another change.
func (s *State) applyPage(n int) {
	if n == s.page {
		return
	}
	prev := s.page
	s.lastPage = prev
	s.page = n
	s.notifyPage(PageChange{Previous: prev, Current: n})
}
