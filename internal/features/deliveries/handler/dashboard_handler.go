package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"delivery-map/internal/core/logger"
	"delivery-map/internal/features/deliveries/domain"
	"delivery-map/internal/features/deliveries/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler handles HTTP requests for the delivery dashboard.
type DashboardHandler struct {
	service ports.DashboardService
	tileURL string
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service ports.DashboardService, tileURL string) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		tileURL: tileURL,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// PageData is what the index view renders.
type PageData struct {
	Title     string
	TileURL   string
	Selection domain.Selection
	Options   *domain.FilterOptions
	Dashboard *domain.Dashboard
	Error     string
	RayID     string
}

// Index godoc
// @Summary Dashboard page
// @Description Renders the map, summary table and charts for the selected filters
// @Tags dashboard
// @Produce html
// @Param date query string false "Service date (YYYY-MM-DD), defaults to the latest"
// @Param agent query string false "Agent name or All"
// @Param trip query string false "Trip or All"
// @Param heatmap query bool false "Show the density overlay"
// @Success 200 {string} string
// @Router / [get]
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	data := PageData{
		Title:   "Delivery map",
		TileURL: h.tileURL,
		RayID:   rayID(c),
	}

	sel, err := parseSelection(c)
	if err != nil {
		data.Error = err.Error()
		return c.Status(http.StatusBadRequest).Render("index", data)
	}
	data.Selection = sel

	dashboard, err := h.service.Build(sel)
	if err != nil {
		status, msg := h.classify(c, err)
		data.Error = msg
		// controls stay usable when only the selection is empty
		if opts, optErr := h.service.Options(sel); optErr == nil {
			data.Options = opts
		}
		return c.Status(status).Render("index", data)
	}

	data.Selection = dashboard.Selection
	data.Options = &dashboard.Options
	data.Dashboard = dashboard
	return c.Render("index", data)
}

// GetOptions godoc
// @Summary Get filter options
// @Description Lists the available dates, agents and trips for the selection
// @Tags dashboard
// @Produce json
// @Param date query string false "Service date (YYYY-MM-DD), defaults to the latest"
// @Param agent query string false "Agent name or All"
// @Success 200 {object} domain.FilterOptions
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/options [get]
func (h *DashboardHandler) GetOptions(c *fiber.Ctx) error {
	sel, err := parseSelection(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	opts, err := h.service.Options(sel)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(opts)
}

// GetDashboard godoc
// @Summary Get dashboard data
// @Description Runs the filter, join and aggregation pipeline and returns map, summary and chart data
// @Tags dashboard
// @Produce json
// @Param date query string false "Service date (YYYY-MM-DD), defaults to the latest"
// @Param agent query string false "Agent name or All"
// @Param trip query string false "Trip or All"
// @Param heatmap query bool false "Include the density overlay"
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	sel, err := parseSelection(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	dashboard, err := h.service.Build(sel)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(dashboard)
}

// ExportSummary godoc
// @Summary Download the agent summary
// @Description Returns the per-agent summary table as an xlsx workbook
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date query string false "Service date (YYYY-MM-DD), defaults to the latest"
// @Param agent query string false "Agent name or All"
// @Param trip query string false "Trip or All"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/summary.xlsx [get]
func (h *DashboardHandler) ExportSummary(c *fiber.Ctx) error {
	sel, err := parseSelection(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	data, err := h.service.ExportSummary(sel)
	if err != nil {
		return h.fail(c, err)
	}

	name := "resumen_repartidores.xlsx"
	if sel.HasDate() {
		name = fmt.Sprintf("resumen_repartidores_%s.xlsx", sel.Date.Format(time.DateOnly))
	}
	c.Attachment(name)
	return c.Send(data)
}

func (h *DashboardHandler) fail(c *fiber.Ctx, err error) error {
	status, msg := h.classify(c, err)
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

// classify maps pipeline errors to a status and a message safe to show.
func (h *DashboardHandler) classify(c *fiber.Ctx, err error) (int, string) {
	var (
		loadErr  *domain.LoadError
		emptyErr *domain.EmptyResultError
	)
	l := logger.With(zap.String("ray_id", rayID(c)))

	switch {
	case errors.As(err, &loadErr):
		l.Error("Failed to load data", zap.String("source", loadErr.Source), zap.Error(loadErr.Err))
		return http.StatusServiceUnavailable, loadErr.Error()
	case errors.As(err, &emptyErr):
		return http.StatusNotFound, emptyErr.Error()
	case errors.Is(err, domain.ErrNoDates):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrJoin):
		l.Warn("Join failed", zap.Error(err))
		return http.StatusUnprocessableEntity, err.Error()
	default:
		l.Error("Dashboard request failed", zap.Error(err))
		return http.StatusInternalServerError, "internal server error"
	}
}

func parseSelection(c *fiber.Ctx) (domain.Selection, error) {
	var sel domain.Selection
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return sel, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
		}
		sel.Date = d
	}
	sel.Agent = c.Query("agent")
	sel.Trip = c.Query("trip")
	sel.Heatmap = c.QueryBool("heatmap", false)
	return sel, nil
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
