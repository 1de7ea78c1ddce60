package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/listing"
	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/permissions"
)

var invoiceColumns = []export.Column{{Key: "id", Label: "Invoice"}, {Key: "amount", Label: "Amount"}, {Key: "status", Label: "Status"}}

func invoices() []models.Invoice {
	return []models.Invoice{
		{BaseModel: models.BaseModel{ID: "INV-1"}, Amount: 1000, Status: "paid"},
		{BaseModel: models.BaseModel{ID: "INV-2"}, Amount: 12.5, Status: "overdue"},
	}
}

func TestNewFormatterRejectsUnknown(t *testing.T) {
	for _, name := range Formats {
		if _, err := NewFormatter(name, &bytes.Buffer{}, false); err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
	}
	if _, err := NewFormatter("xml", &bytes.Buffer{}, false); err == nil {
		t.Fatalf("expected error for xml")
	}
}

func TestTableListKeepsColumnOrderAndFooter(t *testing.T) {
	var buf bytes.Buffer
	meta := listing.PageMeta{Total: 25, Page: 2, PageSize: 10, TotalPages: 3}
	if err := NewTableFormatter(&buf, false).Format(NewList(invoiceColumns, invoices(), &meta)); err != nil {
		t.Fatalf("format: %v", err)
	}
	out := buf.String()

	header := strings.SplitN(out, "\n", 2)[0]
	if i, j := strings.Index(header, "INVOICE"), strings.Index(header, "AMOUNT"); i < 0 || j < i {
		t.Fatalf("unexpected header %q", header)
	}
	for _, want := range []string{"INV-1", "1000", "12.5", "overdue", "Page 2 of 3 (25 total)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf, false).Format(NewList(invoiceColumns, []models.Invoice{}, nil)); err != nil {
		t.Fatalf("format: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No data to display" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestTableStructUsesJSONNames(t *testing.T) {
	var buf bytes.Buffer
	hotel := models.Hotel{BaseModel: models.BaseModel{ID: "h1"}, Name: "Harbor", KioskCount: 3}
	if err := NewTableFormatter(&buf, false).Format(&hotel); err != nil {
		t.Fatalf("format: %v", err)
	}
	for _, want := range []string{"Id", "h1", "Kiosk Count", "Harbor"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestJSONListEnvelope(t *testing.T) {
	var buf bytes.Buffer
	meta := listing.PageMeta{Total: 2, Page: 1, PageSize: 10, TotalPages: 1}
	if err := NewJSONFormatter(&buf, false).Format(NewList(invoiceColumns, invoices(), &meta)); err != nil {
		t.Fatalf("format: %v", err)
	}
	var got struct {
		Data []map[string]interface{} `json:"data"`
		Meta listing.PageMeta         `json:"meta"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got.Data) != 2 || got.Data[0]["id"] != "INV-1" || got.Meta.Total != 2 {
		t.Fatalf("unexpected envelope %+v", got)
	}
	if _, ok := got.Data[0]["currency"]; ok {
		t.Fatalf("only listed columns are emitted")
	}
}

func TestYAMLList(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLFormatter(&buf).Format(NewList(invoiceColumns, invoices(), nil)); err != nil {
		t.Fatalf("format: %v", err)
	}
	var got map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if rows, ok := got["data"].([]interface{}); !ok || len(rows) != 2 {
		t.Fatalf("unexpected yaml %v", got)
	}
}

func TestTextList(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.Row{{"id": "h1", "name": nil}}
	cols := []export.Column{{Key: "id", Label: "ID"}, {Key: "name", Label: "Name"}}
	if err := NewTextFormatter(&buf).Format(NewList(cols, rows, nil)); err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "Item 1:\n  ID: h1\n  Name: N/A\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	cols := []export.Column{{Key: "id", Label: "Invoice"}, {Key: "amount", Label: "Amount"}}
	if err := NewCSVFormatter(&buf).Format(NewList(cols, []models.Row{{"id": "INV-1", "amount": 1000}}, nil)); err != nil {
		t.Fatalf("format: %v", err)
	}
	if buf.String() != "Invoice,Amount\nINV-1,1000\n" {
		t.Fatalf("unexpected csv %q", buf.String())
	}
	if err := NewCSVFormatter(&buf).Format(map[string]interface{}{"a": 1}); err == nil {
		t.Fatalf("expected error for non-list data")
	}
}

func TestPermissionGrid(t *testing.T) {
	var buf bytes.Buffer
	perms := permissions.Map{}
	perms.ApplyPreset(permissions.PresetReadOnly, []string{"hotels", "billing"})
	PermissionGrid(&buf, perms, []string{"hotels", "billing"}, false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got:\n%s", buf.String())
	}
	for _, line := range lines[1:] {
		if strings.Count(line, granted) != 1 || strings.Count(line, denied) != 4 {
			t.Fatalf("read-only row must grant only view: %q", line)
		}
	}
}
