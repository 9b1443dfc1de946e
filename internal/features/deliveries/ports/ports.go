package ports

import "delivery-map/internal/features/deliveries/domain"

// DatasetLoader reads the two source spreadsheets.
// This is a Secondary Port (Driven Port).
type DatasetLoader interface {
	// Load returns freshly read tables or a *domain.LoadError.
	Load() (*domain.Dataset, error)
}

// SummaryExporter renders a summary as a downloadable workbook.
// This is a Secondary Port (Driven Port).
type SummaryExporter interface {
	// Export returns the encoded workbook.
	Export(summary domain.Summary) ([]byte, error)
}

// DashboardService runs the filter, join and aggregate pipeline.
// This is the Primary Port used by the HTTP handler.
type DashboardService interface {
	// Options returns the filter-control choices for a selection.
	Options(sel domain.Selection) (*domain.FilterOptions, error)
	// Build runs one full render cycle.
	Build(sel domain.Selection) (*domain.Dashboard, error)
	// ExportSummary runs a render cycle and encodes its summary.
	ExportSummary(sel domain.Selection) ([]byte, error)
}
