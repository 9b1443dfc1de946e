package service

import (
	"delivery-map/internal/core/table"
	"delivery-map/internal/features/deliveries/domain"
)

// Columns both sheets may carry. The order sheet wins for orderColumns and
// the points of sale sheet for salesColumns.
var (
	orderColumns = []string{domain.ColAgent, domain.ColTrip, domain.ColWeight, domain.ColServiceDate, domain.ColOrder}
	salesColumns = append([]string{domain.ColLatitude, domain.ColLongitude, domain.ColLatitudeAlt, domain.ColLongitudeAlt}, domain.NameColumns...)
)

// Join left-joins orders with points of sale and normalizes the coordinate
// columns to latitud/longitud. Every order row is kept; orders without a
// matching point of sale get null sales-side fields. Columns present on
// both sheets keep their plain name for the side that owns them. Failures,
// including a nil input, wrap domain.ErrJoin.
func Join(orders, pointsOfSale *table.Table) (*table.Table, error) {
	if orders == nil || pointsOfSale == nil {
		return nil, domain.ErrNoJoinData
	}

	var joined *table.Table
	switch {
	case orders.Has(domain.ColPointOfSale) && pointsOfSale.Has(domain.ColPointOfSale):
		joined = orders.LeftJoin(pointsOfSale, domain.ColPointOfSale, domain.ColPointOfSale)
	case orders.Has(domain.ColPointOfSale) && pointsOfSale.Has(domain.ColPointOfSaleCode):
		joined = orders.LeftJoin(pointsOfSale, domain.ColPointOfSale, domain.ColPointOfSaleCode)
	default:
		return nil, domain.ErrNoJoinColumns
	}

	joined = unsuffix(joined, table.LeftSuffix, orderColumns)
	joined = unsuffix(joined, table.RightSuffix, salesColumns)

	switch {
	case joined.Has(domain.ColLatitude, domain.ColLongitude):
		return joined, nil
	case joined.Has(domain.ColLatitudeAlt, domain.ColLongitudeAlt):
		return joined.
			Rename(domain.ColLatitudeAlt, domain.ColLatitude).
			Rename(domain.ColLongitudeAlt, domain.ColLongitude), nil
	default:
		return nil, domain.ErrNoCoordinateColumns
	}
}

// unsuffix renames name+suffix back to name for every listed column the
// join had to disambiguate.
func unsuffix(t *table.Table, suffix string, names []string) *table.Table {
	for _, name := range names {
		if !t.Has(name) && t.Has(name+suffix) {
			t = t.Rename(name+suffix, name)
		}
	}
	return t
}
