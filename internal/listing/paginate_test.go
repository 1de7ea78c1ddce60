package listing

import (
	"math"
	"reflect"
	"testing"

	"github.com/hostkiosk/kioskctl/internal/models"
)

func TestTotalPages(t *testing.T) {
	cases := []struct{ n, size, want int }{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{50, 5, 10},
		{51, 5, 11},
		{7, 0, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.n, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.n, tc.size, got, tc.want)
		}
	}
}

func TestPagesPartitionCollection(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 23, 50} {
		for _, size := range []int{1, 3, 5, 10, 100} {
			items := hotels(n)
			var joined []models.Hotel
			for page := 1; page <= TotalPages(n, size); page++ {
				chunk := Paginate(items, page, size)
				if len(chunk) > size {
					t.Fatalf("n=%d size=%d page=%d: chunk of %d", n, size, page, len(chunk))
				}
				joined = append(joined, chunk...)
			}
			if !reflect.DeepEqual(ids(joined), ids(items)) {
				t.Fatalf("n=%d size=%d: pages do not partition the set", n, size)
			}
		}
	}
}

func TestPaginateOutOfRangeIsEmpty(t *testing.T) {
	items := hotels(3)
	if got := Paginate(items, 5, 5); len(got) != 0 {
		t.Fatalf("expected empty page, got %v", ids(got))
	}
	if got := Paginate(items, 0, 5); len(got) != 0 {
		t.Fatalf("expected empty page, got %v", ids(got))
	}
	if got := Paginate(items, math.MaxInt, 2); len(got) != 0 {
		t.Fatalf("expected empty page for a huge page number, got %v", ids(got))
	}
	if got := Paginate(items[:0], 1, 2); len(got) != 0 {
		t.Fatalf("expected empty page for no items, got %v", ids(got))
	}
}

func TestPageStateClamp(t *testing.T) {
	p := PageState{CurrentPage: 5, RowsPerPage: 5}
	if p.Clamp(50) {
		t.Fatalf("page 5 of 10 should not clamp")
	}
	if !p.Clamp(3) || p.CurrentPage != 1 {
		t.Fatalf("expected clamp to 1, got %d", p.CurrentPage)
	}
	p.CurrentPage = 0
	if !p.Clamp(0) || p.CurrentPage != 1 {
		t.Fatalf("expected clamp to 1, got %d", p.CurrentPage)
	}
}

func TestSetRowsPerPageResetsPage(t *testing.T) {
	p := PageState{CurrentPage: 4, RowsPerPage: 10}
	p.SetRowsPerPage(25)
	if p.CurrentPage != 1 || p.RowsPerPage != 25 {
		t.Fatalf("unexpected state %+v", p)
	}
}

func TestMeta(t *testing.T) {
	m := Meta(23, PageState{CurrentPage: 2, RowsPerPage: 10})
	want := PageMeta{Total: 23, Page: 2, PageSize: 10, TotalPages: 3, HasNext: true, HasPrevious: true}
	if m != want {
		t.Fatalf("expected %+v, got %+v", want, m)
	}
}
