package mockapi

import (
	"math"

	"github.com/hostkiosk/kioskctl/internal/models"
)

// Report computes an analytics report from the current fixtures
func (s *Store) Report(t models.ReportType) models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := models.Report{Type: t.String(), Title: t.Title(), GeneratedAt: s.now().UTC()}

	switch t {
	case models.ReportOccupancy:
		rooms, active := 0, 0
		for _, h := range s.hotels {
			if h.Status == "active" {
				active++
				rooms += h.Rooms
			}
		}
		report.Metrics = []models.Metric{
			{Label: "Active hotels", Value: float64(active)},
			{Label: "Rooms under management", Value: float64(rooms)},
			{Label: "Average occupancy", Value: 78.4, Unit: "%"},
		}
	case models.ReportRevenue:
		var paid, pending, overdue float64
		for _, inv := range s.invoices {
			switch inv.Status {
			case "paid":
				paid += inv.Amount
			case "pending":
				pending += inv.Amount
			case "overdue":
				overdue += inv.Amount
			}
		}
		report.Metrics = []models.Metric{
			{Label: "Collected", Value: paid, Unit: "EUR"},
			{Label: "Outstanding", Value: pending, Unit: "EUR"},
			{Label: "Overdue", Value: overdue, Unit: "EUR"},
		}
	case models.ReportKioskUsage:
		counts := map[string]int{}
		for _, k := range s.kiosks {
			counts[k.Status]++
		}
		report.Metrics = []models.Metric{
			{Label: "Online", Value: float64(counts["online"])},
			{Label: "Offline", Value: float64(counts["offline"])},
			{Label: "Maintenance", Value: float64(counts["maintenance"])},
		}
	case models.ReportCheckins:
		report.Metrics = []models.Metric{
			{Label: "Self check-ins (30d)", Value: float64(len(s.kiosks) * 212)},
			{Label: "Median check-in time", Value: 94, Unit: "s"},
		}
	case models.ReportUptime:
		online := 0
		for _, k := range s.kiosks {
			if k.Status == "online" {
				online++
			}
		}
		uptime := 0.0
		if len(s.kiosks) > 0 {
			uptime = math.Round(float64(online)/float64(len(s.kiosks))*1000) / 10
		}
		report.Metrics = []models.Metric{
			{Label: "Fleet uptime", Value: uptime, Unit: "%"},
			{Label: "Kiosks", Value: float64(len(s.kiosks))},
		}
	}
	return report
}
