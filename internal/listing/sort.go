package listing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hostkiosk/kioskctl/internal/models"
)

// Direction is the sort order of a SortSpec
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortSpec orders records by one field
type SortSpec struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Reversed returns the same spec in the opposite direction
func (s SortSpec) Reversed() SortSpec {
	if s.Direction == Desc {
		return SortSpec{Field: s.Field, Direction: Asc}
	}
	return SortSpec{Field: s.Field, Direction: Desc}
}

// String renders the spec as accepted by ParseSort
func (s SortSpec) String() string {
	return s.Field + ":" + string(s.Direction)
}

// ParseSort parses "field", "field:asc" or "field:desc". A leading "-" is
// shorthand for descending.
func ParseSort(expr string) (SortSpec, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return SortSpec{}, fmt.Errorf("empty sort expression")
	}
	if strings.HasPrefix(expr, "-") {
		return SortSpec{Field: expr[1:], Direction: Desc}, nil
	}
	field, dir, _ := strings.Cut(expr, ":")
	spec := SortSpec{Field: strings.TrimSpace(field), Direction: Asc}
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc":
	case "desc":
		spec.Direction = Desc
	default:
		return SortSpec{}, fmt.Errorf("invalid sort direction %q: expected asc or desc", dir)
	}
	if spec.Field == "" {
		return SortSpec{}, fmt.Errorf("invalid sort expression %q", expr)
	}
	return spec, nil
}

// Sort returns a stably sorted copy of items. Ties keep their input order
// in both directions.
func Sort[T models.Record](items []T, spec SortSpec) []T {
	out := slices.Clone(items)
	if spec.Field == "" {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		av, _ := a.Field(spec.Field)
		bv, _ := b.Field(spec.Field)
		c := Compare(av, bv)
		if spec.Direction == Desc {
			return -c
		}
		return c
	})
	return out
}
