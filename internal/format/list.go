package format

import (
	"fmt"

	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/listing"
	"github.com/hostkiosk/kioskctl/internal/models"
)

// List is one page of records with the columns to show. Every formatter
// renders it in column order.
type List struct {
	Columns []export.Column
	Rows    []models.Record
	Meta    *listing.PageMeta
}

// NewList wraps typed records for formatting
func NewList[T models.Record](columns []export.Column, rows []T, meta *listing.PageMeta) *List {
	out := make([]models.Record, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return &List{Columns: columns, Rows: out, Meta: meta}
}

// FromPage wraps a listing page
func FromPage[T models.Record](columns []export.Column, page listing.Page[T]) *List {
	meta := page.Meta
	return NewList(columns, page.Items, &meta)
}

// envelope is the json/yaml shape of a List
type envelope struct {
	Data []map[string]interface{} `json:"data" yaml:"data"`
	Meta *listing.PageMeta        `json:"meta,omitempty" yaml:"meta,omitempty"`
}

func (l *List) envelope() envelope {
	data := make([]map[string]interface{}, len(l.Rows))
	for i, r := range l.Rows {
		row := make(map[string]interface{}, len(l.Columns))
		for _, c := range l.Columns {
			v, _ := r.Field(c.Key)
			row[c.Key] = v
		}
		data[i] = row
	}
	return envelope{Data: data, Meta: l.Meta}
}

// Footer is the pager line printed under tables
func (l *List) Footer() string {
	if l.Meta == nil || l.Meta.TotalPages <= 1 {
		return ""
	}
	return fmt.Sprintf("Page %d of %d (%d total)", l.Meta.Page, l.Meta.TotalPages, l.Meta.Total)
}
