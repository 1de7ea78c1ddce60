package models

import (
	"fmt"
	"time"
)

// Record is a single row of a list view. Every entity the console lists
// (hotel, kiosk, user, invoice, audit entry, ticket) implements it.
type Record interface {
	RecordID() string
	// Field returns the typed value stored under key, false when the
	// record has no such attribute.
	Field(key string) (interface{}, bool)
}

// BaseModel contains common fields for all models
type BaseModel struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// RecordID implements Record
func (b BaseModel) RecordID() string {
	return b.ID
}

func (b BaseModel) field(key string) (interface{}, bool) {
	switch key {
	case "id":
		return b.ID, true
	case "created_at":
		return b.CreatedAt, true
	}
	return nil, false
}

// Row is an untyped API row. It backs list commands for resources that
// have no dedicated model.
type Row map[string]interface{}

// RecordID implements Record
func (r Row) RecordID() string {
	if id, ok := r["id"]; ok && id != nil {
		return fmt.Sprint(id)
	}
	return ""
}

// Field implements Record
func (r Row) Field(key string) (interface{}, bool) {
	v, ok := r[key]
	return v, ok
}
