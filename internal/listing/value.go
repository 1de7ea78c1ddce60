package listing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Stringify renders a field value the way list filters and CSV export see
// it: no formatting beyond the plain string form of the value.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return formatTime(val)
	case *time.Time:
		if val == nil {
			return ""
		}
		return formatTime(*val)
	case fmt.Stringer:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

type valueKind int

const (
	kindMissing valueKind = iota
	kindNumber
	kindTime
	kindString
)

func classify(v interface{}) (valueKind, float64, time.Time, string) {
	switch val := v.(type) {
	case nil:
		return kindMissing, 0, time.Time{}, ""
	case time.Time:
		return kindTime, 0, val, ""
	case *time.Time:
		if val == nil {
			return kindMissing, 0, time.Time{}, ""
		}
		return kindTime, 0, *val, ""
	case int:
		return kindNumber, float64(val), time.Time{}, ""
	case int32:
		return kindNumber, float64(val), time.Time{}, ""
	case int64:
		return kindNumber, float64(val), time.Time{}, ""
	case uint:
		return kindNumber, float64(val), time.Time{}, ""
	case uint32:
		return kindNumber, float64(val), time.Time{}, ""
	case uint64:
		return kindNumber, float64(val), time.Time{}, ""
	case float32:
		return kindNumber, float64(val), time.Time{}, ""
	case float64:
		return kindNumber, val, time.Time{}, ""
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return kindNumber, f, time.Time{}, ""
		}
		return kindString, 0, time.Time{}, strings.ToLower(val.String())
	case string:
		// API rows carry timestamps as ISO-8601 strings.
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			return kindTime, 0, t, ""
		}
		return kindString, 0, time.Time{}, strings.ToLower(val)
	default:
		return kindString, 0, time.Time{}, strings.ToLower(Stringify(v))
	}
}

// Compare orders two field values: numbers numerically, timestamps
// chronologically, everything else by lower-cased string. Missing values
// come first. Values of different kinds fall back to string order.
func Compare(a, b interface{}) int {
	ka, na, ta, sa := classify(a)
	kb, nb, tb, sb := classify(b)

	if ka == kindMissing || kb == kindMissing {
		switch {
		case ka == kb:
			return 0
		case ka == kindMissing:
			return -1
		default:
			return 1
		}
	}

	if ka != kb {
		return strings.Compare(strings.ToLower(Stringify(a)), strings.ToLower(Stringify(b)))
	}

	switch ka {
	case kindNumber:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case kindTime:
		return ta.Compare(tb)
	default:
		return strings.Compare(sa, sb)
	}
}
