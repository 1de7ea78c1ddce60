package listing

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/hostkiosk/kioskctl/internal/models"
)

func kiosks(n, matching int) []models.Kiosk {
	out := make([]models.Kiosk, n)
	for i := range out {
		status := "online"
		if i < matching {
			status = "maintenance"
		}
		out[i] = models.Kiosk{
			BaseModel:    models.BaseModel{ID: fmt.Sprintf("k%02d", i)},
			SerialNumber: fmt.Sprintf("KSK-%04d", i),
			Status:       status,
		}
	}
	return out
}

func TestViewFilterShrinksResultToFirstPage(t *testing.T) {
	v := NewView(kiosks(50, 3), []string{"serial_number"}, 5)
	v.GoTo(5)
	page := v.Page()
	if page.Meta.Page != 5 || len(page.Items) != 5 || page.Meta.TotalPages != 10 {
		t.Fatalf("unexpected page %+v", page.Meta)
	}

	v.SetFilter("status", "maintenance")
	page = v.Page()
	if page.Meta.TotalPages != 1 || page.Meta.Page != 1 || v.State().CurrentPage != 1 {
		t.Fatalf("expected a single page at page 1, got %+v", page.Meta)
	}
	if want := []string{"k00", "k01", "k02"}; !reflect.DeepEqual(ids(page.Items), want) {
		t.Fatalf("expected %v, got %v", want, ids(page.Items))
	}
}

func TestViewRefetchClampsAndFlags(t *testing.T) {
	v := NewView(kiosks(50, 0), nil, 5)
	v.GoTo(5)
	_ = v.Page()

	v.SetItems(kiosks(3, 0))
	page := v.Page()
	if !page.Clamped {
		t.Fatalf("expected clamp feedback after shrinking refetch")
	}
	if page.Meta.Page != 1 || len(page.Items) != 3 {
		t.Fatalf("expected page 1 with 3 items, got %+v (%d items)", page.Meta, len(page.Items))
	}
}

func TestViewSearchAndRowsPerPageReset(t *testing.T) {
	v := NewView(kiosks(30, 0), []string{"serial_number"}, 5)
	v.GoTo(3)
	v.SetSearch("ksk-001")
	if v.State().CurrentPage != 1 {
		t.Fatalf("search must reset to page 1")
	}
	page := v.Page()
	if page.Meta.Total != 10 {
		t.Fatalf("expected 10 matches, got %d", page.Meta.Total)
	}

	v.GoTo(2)
	v.SetRowsPerPage(20)
	if v.State().CurrentPage != 1 || v.State().RowsPerPage != 20 {
		t.Fatalf("unexpected state %+v", v.State())
	}
}

func TestViewSortsAfterFiltering(t *testing.T) {
	v := NewView(kiosks(10, 4), nil, 3)
	v.SetFilter("status", "maintenance")
	v.SetSort(SortSpec{Field: "serial_number", Direction: Desc})
	page := v.Page()
	if want := []string{"k03", "k02", "k01"}; !reflect.DeepEqual(ids(page.Items), want) {
		t.Fatalf("expected %v, got %v", want, ids(page.Items))
	}
	if !page.Meta.HasNext || page.Meta.TotalPages != 2 {
		t.Fatalf("unexpected meta %+v", page.Meta)
	}
}
