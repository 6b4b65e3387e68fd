package engine

// Page-number window widths, matching the narrow and wide layouts.
const (
	MaxVisiblePagesDesktop = 5
	MaxVisiblePagesMobile  = 3
)

// PageView describes one page of a filtered listing: the visible slice bounds
// over the filtered collection and the contiguous, clamped window of page
// numbers to render.
type PageView struct {
	TotalItems  int   `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	Start       int   `json:"-"`
	End         int   `json:"-"`
	ShowingFrom int   `json:"showing_from"`
	ShowingTo   int   `json:"showing_to"`
	Pages       []int `json:"pages"`
}

// Paginate computes the visible range [Start, End) and the page-number window
// for currentPage. When every page fits in the window all pages are listed;
// otherwise a window of maxVisible pages slides with currentPage, biased to
// the first or last window near either boundary. Zero items yield an empty
// range and no page numbers.
func Paginate(totalItems, pageSize, currentPage int, mobile bool) PageView {
	if pageSize <= 0 {
		pageSize = 1
	}
	totalPages := (totalItems + pageSize - 1) / pageSize
	if currentPage < 1 {
		currentPage = 1
	}
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	start := (currentPage - 1) * pageSize
	end := currentPage * pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	view := PageView{
		TotalItems: totalItems,
		TotalPages: totalPages,
		Page:       currentPage,
		PageSize:   pageSize,
		Start:      start,
		End:        end,
		Pages:      pageWindow(totalPages, currentPage, mobile),
	}
	if totalItems > 0 {
		view.ShowingFrom = start + 1
		view.ShowingTo = end
	}
	return view
}

func pageWindow(totalPages, currentPage int, mobile bool) []int {
	maxVisible := MaxVisiblePagesDesktop
	if mobile {
		maxVisible = MaxVisiblePagesMobile
	}

	if totalPages <= maxVisible {
		pages := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	half := maxVisible / 2
	first := currentPage - half
	switch {
	case currentPage <= half+1:
		first = 1
	case currentPage >= totalPages-half:
		first = totalPages - maxVisible + 1
	}

	pages := make([]int, 0, maxVisible)
	for i := first; i < first+maxVisible; i++ {
		pages = append(pages, i)
	}
	return pages
}
