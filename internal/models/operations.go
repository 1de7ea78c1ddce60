package models

import "time"

// Invoice is a billing document issued to a hotel
type Invoice struct {
	BaseModel `yaml:",inline"`
	HotelID   string    `json:"hotel_id" yaml:"hotel_id"`
	Amount    float64   `json:"amount" yaml:"amount"`
	Currency  string    `json:"currency" yaml:"currency"`
	Status    string    `json:"status" yaml:"status"` // paid, pending, overdue
	DueAt     time.Time `json:"due_at" yaml:"due_at"`
}

// Field implements Record
func (i Invoice) Field(key string) (interface{}, bool) {
	switch key {
	case "hotel_id":
		return i.HotelID, true
	case "amount":
		return i.Amount, true
	case "currency":
		return i.Currency, true
	case "status":
		return i.Status, true
	case "due_at":
		return i.DueAt, true
	case "issued_at":
		return i.CreatedAt, true
	}
	return i.field(key)
}

// AuditLogEntry records one action taken in the console
type AuditLogEntry struct {
	BaseModel  `yaml:",inline"`
	Actor      string `json:"actor" yaml:"actor"`
	Action     string `json:"action" yaml:"action"`
	Resource   string `json:"resource" yaml:"resource"`
	ResourceID string `json:"resource_id" yaml:"resource_id"`
	IP         string `json:"ip" yaml:"ip"`
}

// Field implements Record
func (a AuditLogEntry) Field(key string) (interface{}, bool) {
	switch key {
	case "actor":
		return a.Actor, true
	case "action":
		return a.Action, true
	case "resource":
		return a.Resource, true
	case "resource_id":
		return a.ResourceID, true
	case "ip":
		return a.IP, true
	}
	return a.field(key)
}

// Ticket is a support request raised by a hotel
type Ticket struct {
	BaseModel `yaml:",inline"`
	Subject   string `json:"subject" yaml:"subject"`
	HotelID   string `json:"hotel_id" yaml:"hotel_id"`
	Category  string `json:"category" yaml:"category"`
	Priority  string `json:"priority" yaml:"priority"` // low, medium, high, urgent
	Status    string `json:"status" yaml:"status"`     // open, in_progress, resolved, closed
}

// Field implements Record
func (t Ticket) Field(key string) (interface{}, bool) {
	switch key {
	case "subject":
		return t.Subject, true
	case "hotel_id":
		return t.HotelID, true
	case "category":
		return t.Category, true
	case "priority":
		return t.Priority, true
	case "status":
		return t.Status, true
	}
	return t.field(key)
}

// Metric is one figure of a report
type Metric struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Report is an analytics summary returned by the reports endpoint
type Report struct {
	Type        string    `json:"type" yaml:"type"`
	Title       string    `json:"title" yaml:"title"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Metrics     []Metric  `json:"metrics" yaml:"metrics"`
}
