package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrJoin is the root of every join failure.
	ErrJoin = errors.New("could not join orders with points of sale")
	// ErrNoJoinData is returned when either sheet is missing.
	ErrNoJoinData = fmt.Errorf("%w: orders or points of sale not loaded", ErrJoin)
	// ErrNoJoinColumns is returned when neither key pairing exists.
	ErrNoJoinColumns = fmt.Errorf("%w: no compatible join columns", ErrJoin)
	// ErrNoCoordinateColumns is returned when the joined table has no latitude/longitude.
	ErrNoCoordinateColumns = fmt.Errorf("%w: no coordinate columns found", ErrJoin)
	// ErrNoValidGeo is returned when no joined record has usable coordinates.
	ErrNoValidGeo = errors.New("no valid coordinates to show on the map")
	// ErrNoDates is returned when no order has a parseable service date.
	ErrNoDates = errors.New("no dates available in the data")
)

// LoadError reports a failure reading one of the source spreadsheets.
type LoadError struct {
	// Source is the file that failed.
	Source string
	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading data from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// EmptyResultError is returned when the criteria match no order.
type EmptyResultError struct {
	Criteria Criteria
}

func (e *EmptyResultError) Error() string {
	date := "any"
	if e.Criteria.HasDate() {
		date = e.Criteria.Date.Format(time.DateOnly)
	}
	agent, ok := e.Criteria.AgentFilter()
	if !ok {
		agent = AllOption
	}
	trip, ok := e.Criteria.TripFilter()
	if !ok {
		trip = AllOption
	}
	return fmt.Sprintf("no orders for the selected filters: date %s, agent %s, trip %s", date, agent, trip)
}
