package format

import (
	"fmt"
	"io"

	"github.com/hostkiosk/kioskctl/internal/export"
)

// CSVFormatter writes lists as RFC 4180 CSV
type CSVFormatter struct {
	out io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{out: w}
}

// Format writes a List; other values have no tabular shape
func (f *CSVFormatter) Format(data interface{}) error {
	l, ok := data.(*List)
	if !ok {
		return fmt.Errorf("csv output is only available for lists")
	}
	return export.WriteCSV(f.out, l.Rows, l.Columns)
}
