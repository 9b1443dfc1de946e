package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"delivery-map/internal/core/table"
	"delivery-map/internal/features/deliveries/domain"
)

// BuildOptions lists the filter choices and resolves the criteria: when no
// date is requested the most recent available date is selected.
func BuildOptions(orders *table.Table, c domain.Criteria) (domain.FilterOptions, domain.Criteria, error) {
	dates := availableDates(orders)
	if len(dates) == 0 {
		return domain.FilterOptions{}, c, domain.ErrNoDates
	}

	if !c.HasDate() {
		c.Date = dates[len(dates)-1]
	}

	opts := domain.FilterOptions{
		SelectedDate: c.Date.Format(time.DateOnly),
	}
	for _, d := range dates {
		opts.Dates = append(opts.Dates, d.Format(time.DateOnly))
	}

	byDate := Filter(orders, domain.Criteria{Date: c.Date})

	agents := distinctText(byDate, domain.ColAgent)
	sort.Strings(agents)
	opts.Agents = append([]string{domain.AllOption}, agents...)

	scope := byDate
	if agent, ok := c.AgentFilter(); ok {
		scope = Filter(byDate, domain.Criteria{Agent: agent})
	}
	opts.Trips = append([]string{domain.AllOption}, sortTrips(distinctText(scope, domain.ColTrip))...)

	return opts, c, nil
}

// availableDates returns the distinct calendar days of the service dates,
// ascending.
func availableDates(orders *table.Table) []time.Time {
	if orders == nil {
		return nil
	}
	seen := make(map[time.Time]struct{})
	var out []time.Time
	for _, r := range orders.Rows() {
		t, ok := r.Get(domain.ColServiceDate).Time()
		if !ok {
			continue
		}
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func distinctText(t *table.Table, col string) []string {
	values := t.Distinct(col)
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}

// sortTrips orders trips numerically when every one parses as a number and
// lexically otherwise.
func sortTrips(trips []string) []string {
	keys := make(map[string]float64, len(trips))
	numeric := true
	for _, tr := range trips {
		var (
			f   float64
			err error
		)
		if strings.Contains(tr, ".") {
			f, err = strconv.ParseFloat(tr, 64)
		} else {
			var i int64
			i, err = strconv.ParseInt(tr, 10, 64)
			f = float64(i)
		}
		if err != nil {
			numeric = false
			break
		}
		keys[tr] = f
	}

	out := append([]string(nil), trips...)
	if numeric {
		sort.SliceStable(out, func(i, j int) bool { return keys[out[i]] < keys[out[j]] })
	} else {
		sort.Strings(out)
	}
	return out
}
