package listing

// DefaultRowsPerPage is used when no page size is configured
const DefaultRowsPerPage = 10

// TotalPages returns max(1, ceil(n/pageSize)). A non-positive page size
// means a single page.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 || n <= pageSize {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate returns items[(page-1)*pageSize : page*pageSize]. Pages outside
// [1, TotalPages] are empty; callers clamp first.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize < 1 {
		if page == 1 {
			return items
		}
		return items[:0]
	}
	if page < 1 || len(items) == 0 || page-1 > (len(items)-1)/pageSize {
		return items[:0]
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageState is the pager position of a list view
type PageState struct {
	CurrentPage int `json:"current_page"`
	RowsPerPage int `json:"rows_per_page"`
}

// NewPageState starts at page 1
func NewPageState(rowsPerPage int) PageState {
	if rowsPerPage < 1 {
		rowsPerPage = DefaultRowsPerPage
	}
	return PageState{CurrentPage: 1, RowsPerPage: rowsPerPage}
}

// SetRowsPerPage changes the page size and returns to page 1
func (p *PageState) SetRowsPerPage(n int) {
	if n < 1 {
		n = DefaultRowsPerPage
	}
	p.RowsPerPage = n
	p.CurrentPage = 1
}

// Reset returns to page 1
func (p *PageState) Reset() {
	p.CurrentPage = 1
}

// Clamp pulls CurrentPage into [1, TotalPages(total)] and reports whether
// it had to move.
func (p *PageState) Clamp(total int) bool {
	pages := TotalPages(total, p.RowsPerPage)
	switch {
	case p.CurrentPage < 1:
		p.CurrentPage = 1
		return true
	case p.CurrentPage > pages:
		p.CurrentPage = pages
		return true
	}
	return false
}

// PageMeta summarises a page for rendering under a list
type PageMeta struct {
	Total       int  `json:"total" yaml:"total"`
	Page        int  `json:"page" yaml:"page"`
	PageSize    int  `json:"page_size" yaml:"page_size"`
	TotalPages  int  `json:"total_pages" yaml:"total_pages"`
	HasNext     bool `json:"has_next" yaml:"has_next"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
}

// Meta describes page state p over a collection of total items
func Meta(total int, p PageState) PageMeta {
	pages := TotalPages(total, p.RowsPerPage)
	return PageMeta{
		Total:       total,
		Page:        p.CurrentPage,
		PageSize:    p.RowsPerPage,
		TotalPages:  pages,
		HasNext:     p.CurrentPage < pages,
		HasPrevious: p.CurrentPage > 1,
	}
}
