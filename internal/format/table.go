package format

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/hostkiosk/kioskctl/internal/listing"
)

// TableFormatter handles table output formatting
type TableFormatter struct {
	out       io.Writer
	useColors bool
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer, useColors bool) *TableFormatter {
	return &TableFormatter{
		out:       w,
		useColors: useColors,
	}
}

// Format formats data as a table
func (f *TableFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Fprintln(f.out, "No data to display")
		return nil
	}

	switch v := data.(type) {
	case *List:
		return f.formatList(v)
	case map[string]interface{}:
		return f.formatSingleMap(v)
	default:
		return f.formatReflection(data)
	}
}

// formatList renders the rows of a list in column order, then the pager line
func (f *TableFormatter) formatList(l *List) error {
	if len(l.Rows) == 0 {
		fmt.Fprintln(f.out, "No data to display")
		return nil
	}

	headers := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		headers[i] = c.Label
	}

	table := tablewriter.NewWriter(f.out)
	table.SetHeader(headers)
	f.configureTable(table, len(headers))

	for _, row := range l.Rows {
		values := make([]string, len(l.Columns))
		for i, c := range l.Columns {
			v, _ := row.Field(c.Key)
			values[i] = f.formatCell(c.Key, v)
		}
		table.Append(values)
	}

	table.Render()

	if footer := l.Footer(); footer != "" {
		fmt.Fprintln(f.out, footer)
	}
	return nil
}

// formatSingleMap formats a single map as a vertical table
func (f *TableFormatter) formatSingleMap(data map[string]interface{}) error {
	table := tablewriter.NewWriter(f.out)
	table.SetHeader([]string{"Property", "Value"})

	f.configureTable(table, 2)

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		table.Append([]string{
			formatHeader(key),
			f.formatCell(key, data[key]),
		})
	}

	table.Render()
	return nil
}

// formatReflection uses reflection to format unknown types
func (f *TableFormatter) formatReflection(data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			fmt.Fprintln(f.out, "No data to display")
			return nil
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		fmt.Fprintf(f.out, "%v\n", data)
		return nil
	}

	table := tablewriter.NewWriter(f.out)
	table.SetHeader([]string{"Field", "Value"})
	f.configureTable(table, 2)

	for _, field := range structFields(v) {
		table.Append([]string{formatHeader(field.key), f.formatCell(field.key, field.value)})
	}

	table.Render()
	return nil
}

type structField struct {
	key   string
	value interface{}
}

// structFields flattens exported fields, descending into embedded structs
// and naming fields by their json tag
func structFields(v reflect.Value) []structField {
	t := v.Type()
	var out []structField
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			out = append(out, structFields(v.Field(i))...)
			continue
		}
		key := field.Name
		if tag := strings.Split(field.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
			key = tag
		}
		out = append(out, structField{key: key, value: v.Field(i).Interface()})
	}
	return out
}

// configureTable sets up table appearance. SetHeaderColor needs one entry
// per header column.
func (f *TableFormatter) configureTable(table *tablewriter.Table, columns int) {
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	if f.useColors {
		colors := make([]tablewriter.Colors, columns)
		for i := range colors {
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiBlueColor}
		}
		table.SetHeaderColor(colors...)
	}
}

// formatHeader converts snake_case to Title Case
func formatHeader(header string) string {
	words := strings.Split(header, "_")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}

// formatCell formats a value for display; status columns are coloured
func (f *TableFormatter) formatCell(key string, value interface{}) string {
	if t, ok := value.(time.Time); ok {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	}
	if b, ok := value.(bool); ok && f.useColors {
		if b {
			return color.GreenString("true")
		}
		return color.RedString("false")
	}

	s := listing.Stringify(value)
	if key == "status" && f.useColors {
		return StatusColor(s)
	}
	return s
}

// StatusColor colours a status word by its meaning
func StatusColor(status string) string {
	switch strings.ToLower(status) {
	case "active", "online", "paid", "resolved", "closed", "healthy":
		return color.GreenString(status)
	case "suspended", "offline", "overdue", "failed", "urgent":
		return color.RedString(status)
	case "pending", "maintenance", "in_progress", "open":
		return color.YellowString(status)
	}
	return status
}
