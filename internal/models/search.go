package models

// Searchable records name the fields free-text search looks at
type Searchable interface {
	Record
	SearchFields() []string
}

// SearchFields implements Searchable
func (Hotel) SearchFields() []string { return []string{"name", "city", "country"} }

// SearchFields implements Searchable
func (Kiosk) SearchFields() []string { return []string{"serial_number", "name", "firmware"} }

// SearchFields implements Searchable
func (User) SearchFields() []string { return []string{"name", "email", "role"} }

// SearchFields implements Searchable
func (Role) SearchFields() []string { return []string{"name", "description"} }

// SearchFields implements Searchable
func (Invoice) SearchFields() []string { return []string{"id", "hotel_id"} }

// SearchFields implements Searchable
func (AuditLogEntry) SearchFields() []string { return []string{"actor", "action", "resource", "resource_id"} }

// SearchFields implements Searchable
func (Ticket) SearchFields() []string { return []string{"id", "subject"} }

// SearchFieldsOf returns the search fields of T's zero value
func SearchFieldsOf[T Searchable]() []string {
	var zero T
	return zero.SearchFields()
}
