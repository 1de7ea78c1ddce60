package models

import (
	"errors"
	"testing"

	"github.com/hostkiosk/kioskctl/internal/utils"
)

func TestParseReportTypeKnown(t *testing.T) {
	for _, rt := range ReportTypes() {
		got, err := ParseReportType(rt.String())
		if err != nil {
			t.Fatalf("parse %s: %v", rt, err)
		}
		if got != rt {
			t.Fatalf("expected %v, got %v", rt, got)
		}
		if rt.Title() == "" {
			t.Fatalf("missing title for %s", rt)
		}
	}
}

func TestParseReportTypeUnknownIsNotFound(t *testing.T) {
	_, err := ParseReportType("weather")
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTicketCategoryGlyphsAreMapped(t *testing.T) {
	for _, c := range ticketCategories {
		if c.Glyph() == "" {
			t.Fatalf("empty glyph for %s", c)
		}
		parsed, err := ParseTicketCategory(" " + c.String() + " ")
		if err != nil || parsed != c {
			t.Fatalf("round trip %s: %v %v", c, parsed, err)
		}
	}
}

func TestKioskStatusParse(t *testing.T) {
	s, err := ParseKioskStatus("Maintenance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != KioskMaintenance || s.Glyph() != "◐" {
		t.Fatalf("unexpected status %v", s)
	}
	if _, err := ParseKioskStatus("exploded"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestHotelIndexResolvesNames(t *testing.T) {
	idx := NewHotelIndex([]Hotel{{BaseModel: BaseModel{ID: "h1"}, Name: "Harbor Inn"}})
	if idx.Name("h1") != "Harbor Inn" {
		t.Fatalf("expected Harbor Inn, got %s", idx.Name("h1"))
	}
	if idx.Name("nope") != "Unassigned" {
		t.Fatalf("expected Unassigned, got %s", idx.Name("nope"))
	}
}
