package service

import (
	"strconv"
	"strings"

	"delivery-map/internal/core/table"
	"delivery-map/internal/features/deliveries/domain"
)

// Filter returns the orders matching every criterion set in c, in their
// original order. A nil table yields nil and an empty Criteria returns the
// same rows. The input table is never modified.
func Filter(orders *table.Table, c domain.Criteria) *table.Table {
	if orders == nil {
		return nil
	}

	var preds []func(table.Row) bool

	if c.HasDate() {
		y, m, d := c.Date.Date()
		preds = append(preds, func(r table.Row) bool {
			t, ok := r.Get(domain.ColServiceDate).Time()
			if !ok {
				return false
			}
			ty, tm, td := t.Date()
			return ty == y && tm == m && td == d
		})
	}

	if agent, ok := c.AgentFilter(); ok {
		preds = append(preds, func(r table.Row) bool {
			v := r.Get(domain.ColAgent)
			return !v.IsNull() && v.String() == agent
		})
	}

	if trip, ok := c.TripFilter(); ok {
		preds = append(preds, tripMatcher(orders, trip))
	}

	if len(preds) == 0 {
		return orders
	}

	return orders.Where(func(r table.Row) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	})
}

// tripMatcher compares trips by the column kind resolved at load: text
// columns compare as text, numeric columns compare numerically when the
// filter parses as a number and fall back to text otherwise.
func tripMatcher(orders *table.Table, trip string) func(table.Row) bool {
	asText := func(r table.Row) bool {
		v := r.Get(domain.ColTrip)
		return !v.IsNull() && v.String() == trip
	}

	kind, ok := orders.Kind(domain.ColTrip)
	if !ok || !kind.Numeric() {
		return asText
	}

	want, ok := parseTrip(trip)
	if !ok {
		return asText
	}
	return func(r table.Row) bool {
		return r.Get(domain.ColTrip).Equal(want)
	}
}

// parseTrip reads a trip as a float when it has a decimal point and as an
// integer otherwise.
func parseTrip(s string) (table.Value, bool) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return table.Null(), false
		}
		v := table.Float(f)
		return v, !v.IsNull()
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return table.Null(), false
	}
	return table.Integer(i), true
}
