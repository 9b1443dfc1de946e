package domain

import (
	"time"

	"delivery-map/internal/core/table"
)

// Column names used by the source spreadsheets.
const (
	// ColServiceDate is the order's service date.
	ColServiceDate = "fecha_servicio"
	// ColAgent is the delivery agent.
	ColAgent = "repartidor"
	// ColTrip groups orders delivered together.
	ColTrip = "viaje"
	// ColPointOfSale is the point-of-sale reference on both sheets.
	ColPointOfSale = "punto_venta"
	// ColPointOfSaleCode is the alternate point-of-sale key on the sales sheet.
	ColPointOfSaleCode = "codigo_punto_venta"
	// ColWeight is the theoretical weight in kg.
	ColWeight = "peso_teorico"
	// ColOrder is the order identifier shown in popups.
	ColOrder = "Pedido"

	ColLatitude     = "latitud"
	ColLongitude    = "longitud"
	ColLatitudeAlt  = "Latitud"
	ColLongitudeAlt = "Longitud"
)

// NameColumns lists the point-of-sale display name columns by preference.
var NameColumns = []string{"nombre", "nombre_comercial", "Nombre Comercial"}

// RequiredOrderColumns must exist on the orders sheet for a load to succeed.
var RequiredOrderColumns = []string{ColServiceDate, ColAgent, ColTrip}

// AllOption is the selector value that disables an agent or trip filter.
const AllOption = "All"

// Dataset is the pair of tables loaded for one render cycle.
type Dataset struct {
	// PointsOfSale holds one row per delivery destination.
	PointsOfSale *table.Table
	// Orders holds one row per served order.
	Orders *table.Table
}

// Criteria selects the orders to show. Zero fields do not filter.
type Criteria struct {
	// Date keeps orders served on that calendar day when non-zero.
	Date time.Time `json:"date,omitempty"`
	// Agent keeps one agent unless empty or AllOption.
	Agent string `json:"agent,omitempty"`
	// Trip keeps one trip unless empty or AllOption.
	Trip string `json:"trip,omitempty"`
}

// HasDate reports whether a date filter is set.
func (c Criteria) HasDate() bool { return !c.Date.IsZero() }

// AgentFilter returns the agent to match, if any.
func (c Criteria) AgentFilter() (string, bool) {
	return c.Agent, c.Agent != "" && c.Agent != AllOption
}

// TripFilter returns the trip to match, if any.
func (c Criteria) TripFilter() (string, bool) {
	return c.Trip, c.Trip != "" && c.Trip != AllOption
}

// Selection is one user interaction: criteria plus display toggles.
type Selection struct {
	Criteria
	// Heatmap turns on the density overlay.
	Heatmap bool `json:"heatmap"`
}
