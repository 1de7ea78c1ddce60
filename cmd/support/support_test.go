package support

import (
	"testing"

	"github.com/hostkiosk/kioskctl/internal/models"
)

func TestTicketIcon(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"hardware", "[HW]"},
		{"Billing", "[$]"},
		{"", "[?]"},
		{"plumbing", "[?]"},
	}
	for _, tt := range tests {
		row := ticket{models.Ticket{Category: tt.category}}
		got, ok := row.Field("icon")
		if !ok || got != tt.want {
			t.Errorf("icon for %q = %v, want %s", tt.category, got, tt.want)
		}
	}
}

func TestTicketFieldsPassThrough(t *testing.T) {
	row := ticket{models.Ticket{Subject: "Printer jam", Priority: "high"}}
	if v, _ := row.Field("subject"); v != "Printer jam" {
		t.Fatalf("unexpected subject %v", v)
	}
	if _, ok := row.Field("nope"); ok {
		t.Fatalf("unknown field must be missing")
	}
}
