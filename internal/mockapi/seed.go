package mockapi

import (
	"fmt"
	"time"

	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/permissions"
)

// DemoEmail and DemoPassword log into a seeded store
const (
	DemoEmail    = "admin@hostkiosk.example"
	DemoPassword = "kioskctl-demo"
	DemoTenant   = "tenant-demo"
)

var seedEpoch = time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)

type seedHotel struct {
	name, city, country, status, plan string
	rooms                             int
}

var seedHotels = []seedHotel{
	{"Harbor View", "Lisbon", "PT", "active", "enterprise", 180},
	{"Alpine Lodge", "Innsbruck", "AT", "active", "standard", 64},
	{"Canal House", "Amsterdam", "NL", "active", "standard", 92},
	{"Desert Rose", "Marrakesh", "MA", "pending", "starter", 40},
	{"Nordic Light", "Oslo", "NO", "active", "enterprise", 210},
	{"Old Town Inn", "Prague", "CZ", "suspended", "starter", 28},
	{"Riverside Suites", "Porto", "PT", "active", "standard", 120},
	{"Summit Resort", "Zermatt", "CH", "active", "enterprise", 150},
}

var kioskStatuses = []string{"online", "online", "online", "offline", "maintenance"}

// Seed returns a store filled with demo fixtures. Ids are stable so the
// same commands work against every fresh mock server.
func Seed() *Store {
	s := NewStore()

	for i, h := range seedHotels {
		s.hotels = append(s.hotels, models.Hotel{
			BaseModel: models.BaseModel{ID: fmt.Sprintf("h-%03d", i+1), CreatedAt: seedEpoch.AddDate(0, -i, 0)},
			Name:      h.name,
			City:      h.city,
			Country:   h.country,
			Status:    h.status,
			Plan:      h.plan,
			Rooms:     h.rooms,
		})
	}

	for i := 0; i < 30; i++ {
		hotel := i % len(seedHotels)
		hotelID := fmt.Sprintf("h-%03d", hotel+1)
		if i >= 27 {
			hotelID = ""
		} else {
			s.hotels[hotel].KioskCount++
		}
		s.kiosks = append(s.kiosks, models.Kiosk{
			BaseModel:    models.BaseModel{ID: fmt.Sprintf("k-%03d", i+1), CreatedAt: seedEpoch.AddDate(0, 0, -i)},
			SerialNumber: fmt.Sprintf("HK-%05d", 10000+i*37),
			Name:         fmt.Sprintf("Lobby %d", i%3+1),
			HotelID:      hotelID,
			Status:       kioskStatuses[i%len(kioskStatuses)],
			Firmware:     fmt.Sprintf("2.%d.%d", 3+i%2, i%4),
			LastSeen:     seedEpoch.Add(-time.Duration(i) * 17 * time.Minute),
		})
	}

	s.roles = []models.Role{
		seedRole("r-001", "Super Admin", permissions.ScopeAdmin, permissions.PresetFullAdmin, "Full access to every console module", 1),
		seedRole("r-002", "Support Agent", permissions.ScopeAdmin, permissions.PresetReadOnly, "Reads fleet data to answer tickets", 2),
		seedRole("r-003", "Hotel Manager", permissions.ScopeHotel, permissions.PresetOperator, "Runs a single property", 3),
	}

	users := []struct{ name, email, role, hotel, status string }{
		{"Ana Costa", DemoEmail, "Super Admin", "", "active"},
		{"Jonas Berg", "jonas@hostkiosk.example", "Support Agent", "", "active"},
		{"Mia Weber", "mia@hostkiosk.example", "Support Agent", "", "suspended"},
		{"Luca Rossi", "luca@harborview.example", "Hotel Manager", "h-001", "active"},
		{"Eva Novak", "eva@oldtown.example", "Hotel Manager", "h-006", "suspended"},
		{"Tom Olsen", "tom@nordic.example", "Hotel Manager", "h-005", "active"},
	}
	for i, u := range users {
		s.users = append(s.users, models.User{
			BaseModel:   models.BaseModel{ID: fmt.Sprintf("u-%03d", i+1), CreatedAt: seedEpoch.AddDate(0, 0, -10*i)},
			Name:        u.name,
			Email:       u.email,
			Role:        u.role,
			HotelID:     u.hotel,
			Status:      u.status,
			LastLoginAt: seedEpoch.Add(-time.Duration(i) * 26 * time.Hour),
		})
		s.passwords[u.email] = DemoPassword
	}

	invoiceStatus := []string{"paid", "paid", "pending", "overdue"}
	for i := 0; i < 16; i++ {
		hotel := s.hotels[i%len(s.hotels)]
		issued := seedEpoch.AddDate(0, -(i / len(s.hotels)), 0)
		s.invoices = append(s.invoices, models.Invoice{
			BaseModel: models.BaseModel{ID: fmt.Sprintf("INV-%d", 1001+i), CreatedAt: issued},
			HotelID:   hotel.ID,
			Amount:    float64(hotel.Rooms) * 4.5,
			Currency:  "EUR",
			Status:    invoiceStatus[i%len(invoiceStatus)],
			DueAt:     issued.AddDate(0, 0, 30),
		})
	}

	tickets := []struct{ subject, hotel, category, priority, status string }{
		{"Card reader not responding", "h-001", "hardware", "high", "open"},
		{"Check-in flow stuck on passport scan", "h-003", "software", "urgent", "in_progress"},
		{"Kiosk drops Wi-Fi every night", "h-005", "network", "medium", "open"},
		{"Invoice shows wrong room count", "h-002", "billing", "low", "resolved"},
		{"Reset manager password", "h-006", "account", "medium", "closed"},
		{"Printer paper jam", "h-007", "hardware", "low", "open"},
		{"Feature request: dark mode", "h-008", "other", "low", "open"},
	}
	for i, t := range tickets {
		s.tickets = append(s.tickets, models.Ticket{
			BaseModel: models.BaseModel{ID: fmt.Sprintf("T-%d", 501+i), CreatedAt: seedEpoch.Add(-time.Duration(i) * 5 * time.Hour)},
			Subject:   t.subject,
			HotelID:   t.hotel,
			Category:  t.category,
			Priority:  t.priority,
			Status:    t.status,
		})
	}

	s.now = func() time.Time { return seedEpoch }
	s.record(DemoEmail, "create", "hotel", "h-008")
	s.record(DemoEmail, "suspend", "hotel", "h-006")
	s.record("jonas@hostkiosk.example", "close", "ticket", "T-505")
	s.now = time.Now

	return s
}

func seedRole(id, name string, scope permissions.Scope, preset permissions.Preset, desc string, users int) models.Role {
	perms := permissions.Empty(scope)
	perms.ApplyPreset(preset, scope.Modules())
	return models.Role{
		ID:          id,
		Name:        name,
		Scope:       string(scope),
		Description: desc,
		UserCount:   users,
		Permissions: perms.ToAPIShape(),
	}
}
