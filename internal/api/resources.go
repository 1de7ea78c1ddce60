package api

import (
	"context"
	"fmt"

	"github.com/hostkiosk/kioskctl/internal/models"
)

// GetRole fetches a role with its permission matrix
func (c *Client) GetRole(ctx context.Context, id string) (models.Role, error) {
	var role models.Role
	if err := c.Get(ctx, ResourceRoles, id, &role); err != nil {
		return models.Role{}, err
	}
	return role, nil
}

// SaveRole creates the role when it has no id and updates it otherwise
func (c *Client) SaveRole(ctx context.Context, role models.Role) (models.Role, error) {
	var saved models.Role
	var err error
	if role.ID == "" {
		err = c.Create(ctx, ResourceRoles, role, &saved)
	} else {
		err = c.Update(ctx, ResourceRoles, role.ID, role, &saved)
	}
	if err != nil {
		return models.Role{}, err
	}
	if saved.ID == "" {
		saved = role
	}
	return saved, nil
}

// Report fetches one analytics report
func (c *Client) Report(ctx context.Context, t models.ReportType) (*models.Report, error) {
	var report models.Report
	if err := c.Get(ctx, ResourceReports, t.String(), &report); err != nil {
		return nil, fmt.Errorf("failed to fetch %s report: %w", t, err)
	}
	return &report, nil
}

// AssignKiosk moves a kiosk to a hotel
func (c *Client) AssignKiosk(ctx context.Context, kioskID, hotelID string) error {
	return c.Action(ctx, ResourceKiosks, kioskID, "assign", map[string]string{"hotel_id": hotelID})
}

// HotelIndex loads every hotel and maps ids to names
func (c *Client) HotelIndex(ctx context.Context) (models.HotelIndex, error) {
	hotels, err := ListAs[models.Hotel](ctx, c, ResourceHotels, ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return models.NewHotelIndex(hotels), nil
}
