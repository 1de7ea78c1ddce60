package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hostkiosk/kioskctl/internal/models"
)

func TestWriteCSVInvoiceScenario(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.Row{{"id": "INV-1", "amount": 1000}}
	cols := []Column{{Key: "id", Label: "Invoice"}, {Key: "amount", Label: "Amount"}}

	if err := WriteCSV(&buf, rows, cols); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "Invoice,Amount\nINV-1,1000\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWriteCSVEscapesPerRFC4180(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.Row{
		{"name": `Hotel "Lux", Lisbon`, "note": "line1\nline2"},
		{"name": "Plain"},
	}
	cols := []Column{{Key: "name", Label: "Name"}, {Key: "note", Label: "Note, extra"}}
	if err := WriteCSV(&buf, rows, cols); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(buf.String(), `Name,"Note, extra"`) {
		t.Fatalf("header not quoted: %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"Hotel ""Lux"", Lisbon"`) {
		t.Fatalf("quotes not doubled: %q", buf.String())
	}

	parsed, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	want := [][]string{
		{"Name", "Note, extra"},
		{`Hotel "Lux", Lisbon`, "line1\nline2"},
		{"Plain", ""},
	}
	if !reflect.DeepEqual(parsed, want) {
		t.Fatalf("expected %q, got %q", want, parsed)
	}
}

func TestWriteCSVKeepsInputOrderForTypedRecords(t *testing.T) {
	var buf bytes.Buffer
	invoices := []models.Invoice{
		{BaseModel: models.BaseModel{ID: "INV-2"}, Amount: 12.5, Status: "paid"},
		{BaseModel: models.BaseModel{ID: "INV-1"}, Amount: 99, Status: "overdue"},
	}
	cols := []Column{{Key: "id", Label: "Invoice"}, {Key: "amount", Label: "Amount"}, {Key: "status", Label: "Status"}}
	if err := WriteCSV(&buf, invoices, cols); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Invoice,Amount,Status\nINV-2,12.5,paid\nINV-1,99,overdue\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestExportFileAddsExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := ExportFile(dir, "audit", []models.Row{{"id": "a1"}}, []Column{{Key: "id", Label: "ID"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "audit.csv") {
		t.Fatalf("unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != "ID\na1\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestParseColumns(t *testing.T) {
	cols, err := ParseColumns("id:Invoice, amount:Amount ,status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Column{{"id", "Invoice"}, {"amount", "Amount"}, {"status", "status"}}
	if !reflect.DeepEqual(cols, want) {
		t.Fatalf("expected %v, got %v", want, cols)
	}
	if _, err := ParseColumns(" , "); err == nil {
		t.Fatalf("expected error for empty column list")
	}
}
