// Package export writes record collections to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hostkiosk/kioskctl/internal/listing"
	"github.com/hostkiosk/kioskctl/internal/models"
)

// Column maps a record field to a CSV header label
type Column struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// ParseColumns parses "key:Label,key2:Label 2". A bare key uses itself as label.
func ParseColumns(expr string) ([]Column, error) {
	var cols []Column
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, label, ok := strings.Cut(part, ":")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid column %q", part)
		}
		if !ok || strings.TrimSpace(label) == "" {
			label = key
		}
		cols = append(cols, Column{Key: key, Label: strings.TrimSpace(label)})
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns given")
	}
	return cols, nil
}

// WriteCSV writes a header row of labels, then one row per record in input
// order. Quoting follows RFC 4180.
func WriteCSV[T models.Record](w io.Writer, rows []T, columns []Column) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, c := range columns {
			v, _ := row.Field(c.Key)
			record[i] = listing.Stringify(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %s: %w", row.RecordID(), err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// ExportFile writes rows to dir/filename, adding a .csv extension when
// missing, and returns the path written.
func ExportFile[T models.Record](dir, filename string, rows []T, columns []Column) (string, error) {
	if filepath.Ext(filename) == "" {
		filename += ".csv"
	}
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	if err := WriteCSV(f, rows, columns); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}
	return path, nil
}
