package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/utils"
)

// FilterState maps a field key to the values selected for it. A missing key
// or an empty value set places no constraint on that key.
type FilterState map[string][]string

// Set replaces the selected values for key. Blank values are dropped.
func (f FilterState) Set(key string, values ...string) {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		delete(f, key)
		return
	}
	f[key] = kept
}

// Clear removes the constraint on key
func (f FilterState) Clear(key string) {
	delete(f, key)
}

// Active returns the keys that currently constrain the result, sorted
func (f FilterState) Active() []string {
	keys := make([]string, 0, len(f))
	for k, v := range f {
		if len(v) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the state
func (f FilterState) Clone() FilterState {
	out := make(FilterState, len(f))
	for k, v := range f {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Flatten renders the state as query parameters, multi-values comma joined
func (f FilterState) Flatten() map[string]string {
	out := make(map[string]string, len(f))
	for _, k := range f.Active() {
		out[k] = strings.Join(f[k], ",")
	}
	return out
}

// ParseFilter parses a "key=v1,v2" expression
func ParseFilter(expr string) (string, []string, error) {
	key, raw, ok := strings.Cut(expr, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid filter %q: expected key=value[,value]", expr)
	}
	if err := utils.ValidateKey(key, "filter key"); err != nil {
		return "", nil, fmt.Errorf("invalid filter %q: %w", expr, err)
	}
	return key, strings.Split(raw, ","), nil
}

// ParseFilters builds a FilterState from repeated "key=v1,v2" expressions.
// Repeating a key adds to its value set.
func ParseFilters(exprs []string) (FilterState, error) {
	state := FilterState{}
	for _, expr := range exprs {
		key, values, err := ParseFilter(expr)
		if err != nil {
			return nil, err
		}
		state.Set(key, append(state[key], values...)...)
	}
	return state, nil
}

// Query is the full set of constraints applied to a record collection
type Query struct {
	Search     string
	Searchable []string
	Filters    FilterState
}

// Matches reports whether a single record satisfies the query
func (q Query) Matches(r models.Record) bool {
	return matchesSearch(r, strings.ToLower(strings.TrimSpace(q.Search)), q.Searchable) &&
		matchesFilters(r, q.Filters)
}

func matchesSearch(r models.Record, needle string, fields []string) bool {
	if needle == "" {
		return true
	}
	for _, key := range fields {
		v, ok := r.Field(key)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(Stringify(v)), needle) {
			return true
		}
	}
	return false
}

func matchesFilters(r models.Record, filters FilterState) bool {
	for key, selected := range filters {
		if len(selected) == 0 {
			continue
		}
		v, ok := r.Field(key)
		if !ok {
			return false
		}
		actual := Stringify(v)
		hit := false
		for _, want := range selected {
			if strings.EqualFold(actual, want) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Filter returns the records matching q in their original order
func Filter[T models.Record](items []T, q Query) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if q.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}
