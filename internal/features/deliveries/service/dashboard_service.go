package service

import (
	"errors"
	"fmt"
	"time"

	"delivery-map/internal/core/logger"
	"delivery-map/internal/features/deliveries/domain"
	"delivery-map/internal/features/deliveries/ports"

	"go.uber.org/zap"
)

// DefaultZoom is the initial map zoom when none is configured.
const DefaultZoom = 12

// DashboardServiceImpl implements ports.DashboardService. Every call reloads
// the spreadsheets and recomputes everything; nothing is kept between calls.
type DashboardServiceImpl struct {
	loader   ports.DatasetLoader
	exporter ports.SummaryExporter
	zoom     int
}

// NewDashboardService creates a new DashboardServiceImpl.
func NewDashboardService(loader ports.DatasetLoader, exporter ports.SummaryExporter, zoom int) *DashboardServiceImpl {
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return &DashboardServiceImpl{
		loader:   loader,
		exporter: exporter,
		zoom:     zoom,
	}
}

// Options returns the filter-control choices for the selection.
func (s *DashboardServiceImpl) Options(sel domain.Selection) (*domain.FilterOptions, error) {
	ds, err := s.loader.Load()
	if err != nil {
		return nil, err
	}

	opts, _, err := BuildOptions(ds.Orders, sel.Criteria)
	if err != nil {
		return nil, err
	}
	return &opts, nil
}

// Build runs Load, Filter, Join, then colors, map, summary and charts.
// A map that cannot be drawn is reported in Dashboard.MapError; every other
// failure aborts the cycle.
func (s *DashboardServiceImpl) Build(sel domain.Selection) (*domain.Dashboard, error) {
	start := time.Now()

	ds, err := s.loader.Load()
	if err != nil {
		return nil, err
	}

	opts, criteria, err := BuildOptions(ds.Orders, sel.Criteria)
	if err != nil {
		return nil, err
	}
	sel.Criteria = criteria

	l := logger.With(
		zap.String("date", opts.SelectedDate),
		zap.String("agent", criteria.Agent),
		zap.String("trip", criteria.Trip),
	)

	filtered := Filter(ds.Orders, criteria)
	if filtered.Len() == 0 {
		return nil, &domain.EmptyResultError{Criteria: criteria}
	}

	joined, err := Join(filtered, ds.PointsOfSale)
	if err != nil {
		return nil, err
	}

	records := domain.RecordsFromTable(joined)
	agents := make([]string, len(records))
	for i, r := range records {
		agents[i] = r.Agent
	}
	colors := domain.AssignColors(agents)

	dashboard := &domain.Dashboard{
		Selection: sel,
		Options:   opts,
		Summary:   domain.NewSummary(records, filtered.Len(), colors),
		Charts:    domain.BuildCharts(records, colors),
		Records:   records,
	}

	view, err := domain.BuildMap(records, colors, sel.Heatmap, s.zoom)
	switch {
	case errors.Is(err, domain.ErrNoValidGeo):
		l.Warn("No geolocated orders", zap.Int("records", len(records)))
		dashboard.MapError = err.Error()
	case err != nil:
		return nil, err
	default:
		dashboard.Map = view
	}

	l.Debug("Dashboard built",
		zap.Int("orders", filtered.Len()),
		zap.Int("records", len(records)),
		zap.Int("agents", colors.Len()),
		zap.Duration("duration", time.Since(start)),
	)

	return dashboard, nil
}

// ExportSummary builds the dashboard and encodes its summary table.
func (s *DashboardServiceImpl) ExportSummary(sel domain.Selection) ([]byte, error) {
	dashboard, err := s.Build(sel)
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.Export(dashboard.Summary)
	if err != nil {
		return nil, fmt.Errorf("service: failed to export summary: %w", err)
	}
	return data, nil
}
