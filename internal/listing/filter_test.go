package listing

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/utils"
)

func hotels(n int) []models.Hotel {
	out := make([]models.Hotel, n)
	statuses := []string{"active", "suspended", "pending"}
	for i := range out {
		out[i] = models.Hotel{
			BaseModel: models.BaseModel{
				ID:        fmt.Sprintf("h%02d", i),
				CreatedAt: time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC),
			},
			Name:   fmt.Sprintf("Hotel %02d", i),
			City:   []string{"Lisbon", "Porto", "Faro"}[i%3],
			Status: statuses[i%3],
			Rooms:  100 - i,
		}
	}
	return out
}

func ids[T models.Record](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.RecordID()
	}
	return out
}

func TestFilterStatusScenario(t *testing.T) {
	rows := []models.Row{
		{"id": "a", "status": "active"},
		{"id": "b", "status": "suspended"},
		{"id": "c", "status": "active"},
	}
	got := Filter(rows, Query{Filters: FilterState{"status": {"active"}}})
	if want := []string{"a", "c"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestFilterEmptyConstraintsPassEverything(t *testing.T) {
	items := hotels(7)
	cases := []Query{
		{},
		{Search: "   "},
		{Filters: FilterState{"status": {}}},
		{Filters: FilterState{"status": nil}, Searchable: []string{"name"}},
	}
	for i, q := range cases {
		if got := Filter(items, q); len(got) != len(items) {
			t.Fatalf("case %d: expected %d records, got %d", i, len(items), len(got))
		}
	}
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := hotels(6)
	got := Filter(items, Query{Search: "PORTO", Searchable: []string{"name", "city"}})
	if want := []string{"h01", "h04"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}

	// Fields outside the searchable set are ignored.
	got = Filter(items, Query{Search: "porto", Searchable: []string{"name"}})
	if len(got) != 0 {
		t.Fatalf("expected no match on name, got %v", ids(got))
	}
}

func TestFilterMultiSelectOrWithinKeyAndAcrossKeys(t *testing.T) {
	items := hotels(9)
	q := Query{Filters: FilterState{
		"status": {"active", "pending"},
		"city":   {"Lisbon", "Faro"},
	}}
	got := Filter(items, q)
	// active rows sit in Lisbon, pending rows in Faro.
	if want := []string{"h00", "h02", "h03", "h05", "h06", "h08"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}

	q.Search = "hotel 0"
	q.Searchable = []string{"name"}
	q.Filters["city"] = []string{"Faro"}
	got = Filter(items, q)
	if want := []string{"h02", "h05", "h08"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	items := hotels(30)
	queries := []Query{
		{Search: "1", Searchable: []string{"name"}},
		{Filters: FilterState{"status": {"suspended"}}},
		{Search: "lis", Searchable: []string{"city"}, Filters: FilterState{"status": {"active", "pending"}}},
	}
	for _, q := range queries {
		once := Filter(items, q)
		twice := Filter(once, q)
		if !reflect.DeepEqual(ids(once), ids(twice)) {
			t.Fatalf("filter not idempotent for %+v: %v vs %v", q, ids(once), ids(twice))
		}
	}
}

func TestFilterValuesCompareCaseInsensitively(t *testing.T) {
	rows := []models.Row{
		{"id": "a", "status": "Active"},
		{"id": "b", "status": "SUSPENDED"},
		{"id": "c", "status": "active"},
		{"id": "d", "status": "actives"},
	}
	got := Filter(rows, Query{Filters: FilterState{"status": {"ACTIVE"}}})
	if want := []string{"a", "c"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestFilterUnknownKeyExcludes(t *testing.T) {
	got := Filter(hotels(3), Query{Filters: FilterState{"region": {"eu"}}})
	if len(got) != 0 {
		t.Fatalf("expected no records, got %v", ids(got))
	}
}

func TestParseFilters(t *testing.T) {
	state, err := ParseFilters([]string{"status=active,suspended", "city=Lisbon", "status=pending", "plan="})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := FilterState{"status": {"active", "suspended", "pending"}, "city": {"Lisbon"}}
	if !reflect.DeepEqual(state, want) {
		t.Fatalf("expected %v, got %v", want, state)
	}
	if got := state.Active(); !reflect.DeepEqual(got, []string{"city", "status"}) {
		t.Fatalf("unexpected active keys %v", got)
	}
	if _, err := ParseFilters([]string{"status"}); err == nil {
		t.Fatalf("expected error for missing '='")
	}
	if _, err := ParseFilters([]string{"Status Code=1"}); !utils.IsValidationError(err) {
		t.Fatalf("expected validation error for malformed key, got %v", err)
	}
}

func TestStringify(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"INV-1", "INV-1"},
		{1000, "1000"},
		{float64(1000), "1000"},
		{12.5, "12.5"},
		{true, "true"},
		{ts, "2024-03-01T12:00:00Z"},
		{time.Time{}, ""},
	}
	for _, tc := range cases {
		if got := Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
