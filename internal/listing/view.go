package listing

import "github.com/hostkiosk/kioskctl/internal/models"

// Page is one rendered page of a View
type Page[T models.Record] struct {
	Items []T
	Meta  PageMeta
	// Clamped is set when the requested page no longer existed and the view
	// fell back to the last valid page.
	Clamped bool
}

// View binds a record collection to its search, filter, sort and pager
// state. Pipeline order is filter, then sort, then paginate.
type View[T models.Record] struct {
	items      []T
	search     string
	searchable []string
	filters    FilterState
	sort       SortSpec
	page       PageState
}

// NewView creates a view over items searching the given field keys
func NewView[T models.Record](items []T, searchable []string, rowsPerPage int) *View[T] {
	return &View[T]{
		items:      items,
		searchable: searchable,
		filters:    FilterState{},
		page:       NewPageState(rowsPerPage),
	}
}

// SetItems replaces the underlying collection, e.g. after a refetch. The
// current page is kept and clamped on the next Page call.
func (v *View[T]) SetItems(items []T) {
	v.items = items
}

// SetSearch changes the free-text query and returns to page 1
func (v *View[T]) SetSearch(q string) {
	v.search = q
	v.page.Reset()
}

// SetFilter constrains key to values and returns to page 1
func (v *View[T]) SetFilter(key string, values ...string) {
	v.filters.Set(key, values...)
	v.page.Reset()
}

// SetFilters replaces every constraint and returns to page 1
func (v *View[T]) SetFilters(state FilterState) {
	v.filters = state.Clone()
	v.page.Reset()
}

// ClearFilters drops every constraint and returns to page 1
func (v *View[T]) ClearFilters() {
	v.filters = FilterState{}
	v.page.Reset()
}

// SetSort changes the ordering
func (v *View[T]) SetSort(spec SortSpec) {
	v.sort = spec
}

// SetRowsPerPage changes the page size and returns to page 1
func (v *View[T]) SetRowsPerPage(n int) {
	v.page.SetRowsPerPage(n)
}

// GoTo requests a page; it is clamped when the page is rendered
func (v *View[T]) GoTo(page int) {
	v.page.CurrentPage = page
}

// State returns the current pager position
func (v *View[T]) State() PageState {
	return v.page
}

// Query returns the search and filter constraints of the view
func (v *View[T]) Query() Query {
	return Query{Search: v.search, Searchable: v.searchable, Filters: v.filters}
}

// Rows returns every matching record in display order
func (v *View[T]) Rows() []T {
	return Sort(Filter(v.items, v.Query()), v.sort)
}

// Page renders the current page, clamping the pager first
func (v *View[T]) Page() Page[T] {
	rows := v.Rows()
	clamped := v.page.Clamp(len(rows))
	return Page[T]{
		Items:   Paginate(rows, v.page.CurrentPage, v.page.RowsPerPage),
		Meta:    Meta(len(rows), v.page),
		Clamped: clamped,
	}
}
