package engine

import (
	"time"

	"github.com/grupo-salus/careflow-desk/internal/domain"
)

// DefaultPageSize used when a view state does not specify one.
const DefaultPageSize = 10

// ViewState is the explicit, serializable listing state: active filters,
// search term, sort key and page. Engines hold no state of their own; the
// presentation layer carries one of these and recomposes the listing from it
// on every change.
type ViewState struct {
	Category string  `json:"category"`
	Status   string  `json:"status"`
	Search   string  `json:"search"`
	Sort     SortKey `json:"sort"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Mobile   bool    `json:"mobile"`
}

// NewViewState returns the initial listing state.
func NewViewState() ViewState {
	return ViewState{
		Category: FilterAll,
		Status:   FilterAll,
		Sort:     DefaultSort,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// SetCategory activates a category filter and resets to the first page.
func (v *ViewState) SetCategory(category string) {
	v.Category = category
	v.Page = 1
}

// SetStatus activates a status filter and resets to the first page.
func (v *ViewState) SetStatus(status string) {
	v.Status = status
	v.Page = 1
}

// SetSearch replaces the search term and resets to the first page.
func (v *ViewState) SetSearch(term string) {
	v.Search = term
	v.Page = 1
}

// SetSort replaces the sort key and resets to the first page.
func (v *ViewState) SetSort(key SortKey) {
	v.Sort = key
	v.Page = 1
}

// SetPage moves to the requested page. Requests outside [1, totalPages] are
// ignored; boundary controls are expected to be disabled rather than erroring.
func (v *ViewState) SetPage(page, totalPages int) {
	if page < 1 || page > totalPages {
		return
	}
	v.Page = page
}

// ListResult is one recomposed render of the listing.
type ListResult struct {
	Tickets []domain.Ticket
	Page    PageView
}

// Compose runs the full derivation for a view state: filter, sort, then
// paginate. The input collection is never mutated.
func Compose(tickets []domain.Ticket, state ViewState, now time.Time) ListResult {
	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	sortKey := state.Sort
	if sortKey == "" {
		sortKey = DefaultSort
	}

	filtered := Filter(tickets, state.Category, state.Status, state.Search, now)
	sorted := Sort(filtered, sortKey)
	page := Paginate(len(sorted), pageSize, state.Page, state.Mobile)
	return ListResult{
		Tickets: sorted[page.Start:page.End],
		Page:    page,
	}
}
