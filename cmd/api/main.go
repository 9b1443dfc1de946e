package main

import (
	"log"

	"delivery-map/internal/core/config"
	"delivery-map/internal/core/logger"
	"delivery-map/internal/core/server"
	"delivery-map/internal/features/deliveries/adapters"
	"delivery-map/internal/features/deliveries/handler"
	"delivery-map/internal/features/deliveries/service"

	"go.uber.org/zap"
)

// @title Delivery Map API
// @version 1.0
// @description This API serves the delivery order map dashboard: filters, map markers, agent summary and charts.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("points_of_sale_file", cfg.Dataset.PointsOfSalePath),
		zap.String("orders_file", cfg.Dataset.OrdersPath),
	)

	// Spreadsheets are read on every request, never cached
	loader := adapters.NewExcelLoader(cfg.Dataset)
	exporter := adapters.NewExcelExporter()

	dashboardSvc := service.NewDashboardService(loader, exporter, cfg.Map.Zoom)
	dashboardHdl := handler.NewDashboardHandler(dashboardSvc, cfg.Map.TileURL)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/", dashboardHdl.Index)
	srv.App.Get("/api/options", dashboardHdl.GetOptions)
	srv.App.Get("/api/dashboard", dashboardHdl.GetDashboard)
	srv.App.Get("/api/summary.xlsx", dashboardHdl.ExportSummary)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
