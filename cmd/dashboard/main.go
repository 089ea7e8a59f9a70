// cmd/dashboard/main.go
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/adapters/seed"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/services"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/pkg/config"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Initialize structured logger
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting stock-wiz dashboard",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	// Load configuration
	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	// Initialize stores
	var (
		phones    []domain.Phone
		suppliers []domain.Supplier
		orders    []domain.PurchaseOrder
		movements []domain.StockMovement
	)
	if cfg.Seed.Enabled {
		phones = seed.Phones()
		suppliers, orders, movements = seed.Ledger()
		slogger.Info("seed data loaded",
			slog.Int("phones", len(phones)),
			slog.Int("suppliers", len(suppliers)),
			slog.Int("purchase_orders", len(orders)),
			slog.Int("stock_movements", len(movements)),
		)
	}

	inventory := services.NewInventory(phones, slogger.Logger)
	ledger := services.NewLedger(services.LedgerSeed{
		Suppliers:      suppliers,
		PurchaseOrders: orders,
		Movements:      movements,
	}, slogger.Logger)

	reports := services.NewReportService(inventory, ledger, services.ReportOptions{
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		RecentLimit:       cfg.Reports.RecentLimit,
		TopModelLimit:     cfg.Reports.TopModelLimit,
		ReorderLeadDays:   cfg.Reports.ReorderLeadDays,
	}, slogger.Logger)

	// Generate and print the reports
	dashboard := reports.Dashboard(ctx)
	valuation := reports.Valuation(ctx)
	supplyChain := reports.SupplyChain(ctx)

	out := struct {
		Dashboard   any `json:"dashboard"`
		Valuation   any `json:"valuation"`
		SupplyChain any `json:"supply_chain"`
	}{dashboard, valuation, supplyChain}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slogger.Error("failed to encode report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("dashboard report complete")
}
