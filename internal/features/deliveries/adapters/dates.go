package adapters

import (
	"strings"
	"time"

	"delivery-map/internal/core/table"

	"github.com/xuri/excelize/v2"
)

// Text layouts tried in order for service dates not stored as Excel serials.
// Ambiguous numeric dates are read month first, then day first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	"2006-01-02 15:04",
	time.DateOnly,
	"2006/01/02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06",
	"2/1/2006 15:04:05",
	"2/1/2006",
	"02-01-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// parseServiceDate turns a raw service-date cell into a time value. Numbers
// are Excel serial dates; text is matched against dateLayouts. Anything
// else becomes null.
func parseServiceDate(v table.Value) table.Value {
	if v.IsNull() {
		return v
	}

	if serial, ok := v.Float(); ok {
		if serial <= 0 {
			return table.Null()
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return table.Null()
		}
		return table.Time(t)
	}

	s := strings.TrimSpace(v.String())
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return table.Time(t)
		}
	}
	return table.Null()
}
