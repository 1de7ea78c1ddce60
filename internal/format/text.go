package format

import (
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/hostkiosk/kioskctl/internal/listing"
)

// TextFormatter handles simple text output formatting
type TextFormatter struct {
	out io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{out: w}
}

// Format formats data as simple text
func (f *TextFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Fprintln(f.out, "No data")
		return nil
	}

	switch v := data.(type) {
	case *List:
		return f.formatList(v)
	case map[string]interface{}:
		return f.formatSingleMap(v)
	case string:
		fmt.Fprintln(f.out, v)
		return nil
	default:
		return f.formatReflection(data)
	}
}

// formatList prints one block per row, fields in column order
func (f *TextFormatter) formatList(l *List) error {
	if len(l.Rows) == 0 {
		fmt.Fprintln(f.out, "No data")
		return nil
	}

	for i, row := range l.Rows {
		if i > 0 {
			fmt.Fprintln(f.out)
		}
		fmt.Fprintf(f.out, "Item %d:\n", i+1)
		for _, c := range l.Columns {
			v, _ := row.Field(c.Key)
			fmt.Fprintf(f.out, "  %s: %s\n", c.Label, f.formatValue(v))
		}
	}

	if footer := l.Footer(); footer != "" {
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, footer)
	}
	return nil
}

// formatSingleMap formats a single map as text
func (f *TextFormatter) formatSingleMap(data map[string]interface{}) error {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(f.out, "%s: %s\n", formatHeader(key), f.formatValue(data[key]))
	}
	return nil
}

// formatReflection uses reflection to format unknown types
func (f *TextFormatter) formatReflection(data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			fmt.Fprintln(f.out, "No data")
			return nil
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		fmt.Fprintf(f.out, "%v\n", data)
		return nil
	}
	for _, field := range structFields(v) {
		fmt.Fprintf(f.out, "%s: %s\n", formatHeader(field.key), f.formatValue(field.value))
	}
	return nil
}

// formatValue formats a value for display
func (f *TextFormatter) formatValue(value interface{}) string {
	s := listing.Stringify(value)
	if s == "" {
		return "N/A"
	}
	return s
}
