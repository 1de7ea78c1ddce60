package models

import "time"

// Hotel is a tenant property operating kiosks
type Hotel struct {
	BaseModel  `yaml:",inline"`
	Name       string `json:"name" yaml:"name"`
	City       string `json:"city" yaml:"city"`
	Country    string `json:"country" yaml:"country"`
	Status     string `json:"status" yaml:"status"` // active, suspended, pending
	Plan       string `json:"plan" yaml:"plan"`
	Rooms      int    `json:"rooms" yaml:"rooms"`
	KioskCount int    `json:"kiosk_count" yaml:"kiosk_count"`
}

// Field implements Record
func (h Hotel) Field(key string) (interface{}, bool) {
	switch key {
	case "name":
		return h.Name, true
	case "city":
		return h.City, true
	case "country":
		return h.Country, true
	case "status":
		return h.Status, true
	case "plan":
		return h.Plan, true
	case "rooms":
		return h.Rooms, true
	case "kiosk_count":
		return h.KioskCount, true
	}
	return h.field(key)
}

// Kiosk is a self-service terminal assigned to a hotel
type Kiosk struct {
	BaseModel    `yaml:",inline"`
	SerialNumber string    `json:"serial_number" yaml:"serial_number"`
	Name         string    `json:"name" yaml:"name"`
	HotelID      string    `json:"hotel_id" yaml:"hotel_id"`
	Status       string    `json:"status" yaml:"status"` // online, offline, maintenance
	Firmware     string    `json:"firmware" yaml:"firmware"`
	LastSeen     time.Time `json:"last_seen" yaml:"last_seen"`
}

// Field implements Record
func (k Kiosk) Field(key string) (interface{}, bool) {
	switch key {
	case "serial_number":
		return k.SerialNumber, true
	case "name":
		return k.Name, true
	case "hotel_id":
		return k.HotelID, true
	case "status":
		return k.Status, true
	case "firmware":
		return k.Firmware, true
	case "last_seen":
		return k.LastSeen, true
	}
	return k.field(key)
}

// HotelIndex resolves hotel ids to names. It is built from a freshly
// loaded hotel list each time it is needed.
type HotelIndex map[string]string

// NewHotelIndex indexes hotels by id
func NewHotelIndex(hotels []Hotel) HotelIndex {
	idx := make(HotelIndex, len(hotels))
	for _, h := range hotels {
		idx[h.ID] = h.Name
	}
	return idx
}

// Name returns the hotel name for id, or "Unassigned" when unknown
func (idx HotelIndex) Name(id string) string {
	if name, ok := idx[id]; ok {
		return name
	}
	return "Unassigned"
}
