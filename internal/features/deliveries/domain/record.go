package domain

import (
	"fmt"
	"time"

	"delivery-map/internal/core/table"
)

// JoinedRecord is an order with the resolved point-of-sale fields.
// Nil pointers are missing data.
type JoinedRecord struct {
	PointOfSale string     `json:"point_of_sale"`
	Name        string     `json:"name"`
	Order       string     `json:"order,omitempty"`
	Agent       string     `json:"agent"`
	Trip        string     `json:"trip,omitempty"`
	ServiceDate *time.Time `json:"service_date,omitempty"`
	Weight      *float64   `json:"weight,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the record can be placed on a map.
func (r JoinedRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// WeightOrZero returns the weight, treating missing as 0.
func (r JoinedRecord) WeightOrZero() float64 {
	if r.Weight == nil {
		return 0
	}
	return *r.Weight
}

// RecordsFromTable reads joined rows into records. Coordinates and weights
// that do not parse as numbers are left nil.
func RecordsFromTable(t *table.Table) []JoinedRecord {
	if t == nil {
		return nil
	}
	out := make([]JoinedRecord, 0, t.Len())
	for _, row := range t.Rows() {
		pos := row.Get(ColPointOfSale).String()
		rec := JoinedRecord{
			PointOfSale: pos,
			Name:        displayName(row, pos),
			Order:       row.Get(ColOrder).String(),
			Agent:       row.Get(ColAgent).String(),
			Trip:        row.Get(ColTrip).String(),
			Weight:      number(row.Get(ColWeight)),
			Latitude:    number(row.Get(ColLatitude)),
			Longitude:   number(row.Get(ColLongitude)),
		}
		if d, ok := row.Get(ColServiceDate).Time(); ok {
			rec.ServiceDate = &d
		}
		out = append(out, rec)
	}
	return out
}

func displayName(row table.Row, pos string) string {
	for _, col := range NameColumns {
		if v, ok := row.Lookup(col); ok && !v.IsNull() {
			return v.String()
		}
	}
	if pos == "" {
		pos = "unknown"
	}
	return fmt.Sprintf("Punto %s", pos)
}

func number(v table.Value) *float64 {
	f, ok := v.Float()
	if !ok {
		return nil
	}
	return &f
}
