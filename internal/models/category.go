package models

import (
	"fmt"
	"strings"

	"github.com/hostkiosk/kioskctl/internal/utils"
)

// TicketCategory classifies support tickets
type TicketCategory int

const (
	CategoryHardware TicketCategory = iota + 1
	CategorySoftware
	CategoryNetwork
	CategoryBilling
	CategoryAccount
	CategoryOther
)

var ticketCategories = []TicketCategory{
	CategoryHardware, CategorySoftware, CategoryNetwork,
	CategoryBilling, CategoryAccount, CategoryOther,
}

// ParseTicketCategory resolves a category key. Unknown keys are not found.
func ParseTicketCategory(s string) (TicketCategory, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range ticketCategories {
		if c.String() == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("ticket category %q: %w", s, utils.ErrNotFound)
}

// String returns the API key of the category
func (c TicketCategory) String() string {
	switch c {
	case CategoryHardware:
		return "hardware"
	case CategorySoftware:
		return "software"
	case CategoryNetwork:
		return "network"
	case CategoryBilling:
		return "billing"
	case CategoryAccount:
		return "account"
	case CategoryOther:
		return "other"
	}
	return fmt.Sprintf("TicketCategory(%d)", int(c))
}

// Glyph returns the terminal marker shown next to a ticket of this category
func (c TicketCategory) Glyph() string {
	switch c {
	case CategoryHardware:
		return "[HW]"
	case CategorySoftware:
		return "[SW]"
	case CategoryNetwork:
		return "[NET]"
	case CategoryBilling:
		return "[$]"
	case CategoryAccount:
		return "[ACC]"
	case CategoryOther:
		return "[?]"
	}
	panic(fmt.Sprintf("models: unmapped ticket category %d", int(c)))
}

// ReportType names an analytics report
type ReportType int

const (
	ReportOccupancy ReportType = iota + 1
	ReportRevenue
	ReportKioskUsage
	ReportCheckins
	ReportUptime
)

var reportTypes = []ReportType{ReportOccupancy, ReportRevenue, ReportKioskUsage, ReportCheckins, ReportUptime}

// ReportTypes lists every known report type
func ReportTypes() []ReportType {
	out := make([]ReportType, len(reportTypes))
	copy(out, reportTypes)
	return out
}

// ParseReportType resolves a report slug such as "kiosk-usage"
func ParseReportType(s string) (ReportType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range reportTypes {
		if t.String() == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("report type %q: %w", s, utils.ErrNotFound)
}

// String returns the URL slug of the report
func (t ReportType) String() string {
	switch t {
	case ReportOccupancy:
		return "occupancy"
	case ReportRevenue:
		return "revenue"
	case ReportKioskUsage:
		return "kiosk-usage"
	case ReportCheckins:
		return "checkins"
	case ReportUptime:
		return "uptime"
	}
	return fmt.Sprintf("ReportType(%d)", int(t))
}

// Title returns the human heading of the report
func (t ReportType) Title() string {
	switch t {
	case ReportOccupancy:
		return "Occupancy"
	case ReportRevenue:
		return "Revenue"
	case ReportKioskUsage:
		return "Kiosk Usage"
	case ReportCheckins:
		return "Self Check-ins"
	case ReportUptime:
		return "Fleet Uptime"
	}
	panic(fmt.Sprintf("models: unmapped report type %d", int(t)))
}

// KioskStatus is the connectivity state of a kiosk
type KioskStatus int

const (
	KioskOnline KioskStatus = iota + 1
	KioskOffline
	KioskMaintenance
)

// ParseKioskStatus resolves a kiosk status key
func ParseKioskStatus(s string) (KioskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online":
		return KioskOnline, nil
	case "offline":
		return KioskOffline, nil
	case "maintenance":
		return KioskMaintenance, nil
	}
	return 0, fmt.Errorf("kiosk status %q: %w", s, utils.ErrNotFound)
}

// String returns the API key of the status
func (s KioskStatus) String() string {
	switch s {
	case KioskOnline:
		return "online"
	case KioskOffline:
		return "offline"
	case KioskMaintenance:
		return "maintenance"
	}
	return fmt.Sprintf("KioskStatus(%d)", int(s))
}

// Glyph returns the status dot used in fleet tables
func (s KioskStatus) Glyph() string {
	switch s {
	case KioskOnline:
		return "●"
	case KioskOffline:
		return "○"
	case KioskMaintenance:
		return "◐"
	}
	panic(fmt.Sprintf("models: unmapped kiosk status %d", int(s)))
}
