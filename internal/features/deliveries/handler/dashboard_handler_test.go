package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"delivery-map/internal/features/deliveries/domain"
	"delivery-map/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboardService is a mock implementation of ports.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Options(sel domain.Selection) (*domain.FilterOptions, error) {
	args := m.Called(sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FilterOptions), args.Error(1)
}

func (m *MockDashboardService) Build(sel domain.Selection) (*domain.Dashboard, error) {
	args := m.Called(sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockDashboardService) ExportSummary(sel domain.Selection) ([]byte, error) {
	args := m.Called(sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func setupApp(service *MockDashboardService) *fiber.App {
	app := fiber.New(fiber.Config{Views: web.NewEngine()})
	app.Use(requestid.New(requestid.Config{Header: "X-Ray-ID"}))
	handler := NewDashboardHandler(service, "https://tile.example/{z}/{x}/{y}.png")
	app.Get("/", handler.Index)
	app.Get("/api/options", handler.GetOptions)
	app.Get("/api/dashboard", handler.GetDashboard)
	app.Get("/api/summary.xlsx", handler.ExportSummary)
	return app
}

func sampleDashboard() *domain.Dashboard {
	lat, lng, w := 40.4, -3.7, 12.5
	colors := domain.AssignColors([]string{"Ana"})
	records := []domain.JoinedRecord{{PointOfSale: "1", Name: "Bar <Sol>", Agent: "Ana", Trip: "1", Weight: &w, Latitude: &lat, Longitude: &lng}}
	view, _ := domain.BuildMap(records, colors, true, 12)
	return &domain.Dashboard{
		Selection: domain.Selection{Criteria: domain.Criteria{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}, Heatmap: true},
		Options: domain.FilterOptions{
			Dates:        []string{"2024-01-01", "2024-01-02"},
			SelectedDate: "2024-01-02",
			Agents:       []string{domain.AllOption, "Ana"},
			Trips:        []string{domain.AllOption, "1"},
		},
		Map:     view,
		Summary: domain.NewSummary(records, 1, colors),
		Charts:  domain.BuildCharts(records, colors),
		Records: records,
	}
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		want := domain.Selection{
			Criteria: domain.Criteria{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Agent: "Ana", Trip: "1"},
			Heatmap:  true,
		}
		mockService.On("Build", want).Return(sampleDashboard(), nil).Once()

		req := httptest.NewRequest("GET", "/api/dashboard?date=2024-01-02&agent=Ana&trip=1&heatmap=true", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body domain.Dashboard
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 1, body.Summary.TotalOrders)
		require.NotNil(t, body.Map)
		assert.Len(t, body.Map.Markers, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		req := httptest.NewRequest("GET", "/api/dashboard?date=02/01/2024", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Contains(t, body.Message, "YYYY-MM-DD")
		assert.NotEmpty(t, body.RayID)
		mockService.AssertNotCalled(t, "Build", mock.Anything)
	})

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "LoadError",
			err:     &domain.LoadError{Source: "pedidos_servidos.xlsx", Err: errors.New("open failed")},
			status:  http.StatusServiceUnavailable,
			message: "error loading data from pedidos_servidos.xlsx",
		},
		{
			name:    "EmptyResult",
			err:     &domain.EmptyResultError{Criteria: domain.Criteria{Agent: "Ana"}},
			status:  http.StatusNotFound,
			message: "no orders for the selected filters",
		},
		{
			name:    "NoDates",
			err:     domain.ErrNoDates,
			status:  http.StatusNotFound,
			message: "no dates available",
		},
		{
			name:    "JoinError",
			err:     domain.ErrNoJoinColumns,
			status:  http.StatusUnprocessableEntity,
			message: "no compatible join columns",
		},
		{
			name:    "Unexpected",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockDashboardService)
			app := setupApp(mockService)

			mockService.On("Build", mock.Anything).Return(nil, tt.err).Once()

			resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard", nil))

			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Contains(t, body.Message, tt.message)
			assert.Equal(t, resp.Header.Get("X-Ray-ID"), body.RayID)
			mockService.AssertExpectations(t)
		})
	}
}

func TestDashboardHandler_GetOptions(t *testing.T) {
	mockService := new(MockDashboardService)
	app := setupApp(mockService)

	opts := &domain.FilterOptions{Dates: []string{"2024-01-01"}, SelectedDate: "2024-01-01", Agents: []string{domain.AllOption}}
	mockService.On("Options", domain.Selection{Criteria: domain.Criteria{Agent: "Ana"}}).Return(opts, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/options?agent=Ana", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body domain.FilterOptions
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, *opts, body)
	mockService.AssertExpectations(t)
}

func TestDashboardHandler_ExportSummary(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		mockService.On("ExportSummary", mock.Anything).Return([]byte("PK-xlsx"), nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/summary.xlsx?date=2024-01-02", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "resumen_repartidores_2024-01-02.xlsx")
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "spreadsheetml")
		data, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "PK-xlsx", string(data))
	})

	t.Run("EmptyResult", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		mockService.On("ExportSummary", mock.Anything).Return(nil, &domain.EmptyResultError{}).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/summary.xlsx", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDashboardHandler_Index(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		mockService.On("Build", mock.Anything).Return(sampleDashboard(), nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		html, _ := io.ReadAll(resp.Body)
		page := string(html)
		assert.Contains(t, page, `<option value="2024-01-02" selected>`)
		assert.Contains(t, page, "12.50 kg")
		assert.Contains(t, page, "L.heatLayer")
		assert.NotContains(t, page, "Bar <Sol>", "record names are escaped")
		mockService.AssertExpectations(t)
	})

	t.Run("EmptyResultKeepsControls", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		sel := domain.Selection{Criteria: domain.Criteria{Agent: "Nadie"}}
		mockService.On("Build", sel).Return(nil, &domain.EmptyResultError{Criteria: sel.Criteria}).Once()
		mockService.On("Options", sel).Return(&domain.FilterOptions{
			Dates:        []string{"2024-01-01"},
			SelectedDate: "2024-01-01",
			Agents:       []string{domain.AllOption, "Ana"},
			Trips:        []string{domain.AllOption},
		}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/?agent=Nadie", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		html, _ := io.ReadAll(resp.Body)
		page := string(html)
		assert.Contains(t, page, "no orders for the selected filters")
		assert.Contains(t, page, `<option value="Ana">`)
		assert.NotContains(t, page, "L.map(")
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		resp, err := app.Test(httptest.NewRequest("GET", "/?date=yesterday", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "Build", mock.Anything)
	})
}
