// internal/core/services/reports.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/analytics"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/ports"
)

// ReportOptions tunes the derived views. Zero values fall back to the
// defaults below.
type ReportOptions struct {
	LowStockThreshold int
	RecentLimit       int
	TopModelLimit     int
	ReorderLeadDays   int
}

const (
	defaultRecentLimit     = 5
	defaultTopModelLimit   = 10
	defaultReorderLeadDays = 7
)

func (o ReportOptions) withDefaults() ReportOptions {
	if o.LowStockThreshold <= 0 {
		o.LowStockThreshold = analytics.DefaultLowStockThreshold
	}
	if o.RecentLimit <= 0 {
		o.RecentLimit = defaultRecentLimit
	}
	if o.TopModelLimit <= 0 {
		o.TopModelLimit = defaultTopModelLimit
	}
	if o.ReorderLeadDays <= 0 {
		o.ReorderLeadDays = defaultReorderLeadDays
	}
	return o
}

// ReportService assembles read-only reports from store snapshots. It holds
// no state of its own; every call recomputes from the current snapshots.
type ReportService struct {
	inventory ports.InventoryStore
	ledger    ports.SupplierLedger
	opts      ReportOptions
	logger    *slog.Logger
}

// NewReportService creates a report service over the two stores.
func NewReportService(inventory ports.InventoryStore, ledger ports.SupplierLedger, opts ReportOptions, logger *slog.Logger) *ReportService {
	return &ReportService{
		inventory: inventory,
		ledger:    ledger,
		opts:      opts.withDefaults(),
		logger:    logger.With(slog.String("service", "reports")),
	}
}

// DashboardReport is the landing-page projection.
type DashboardReport struct {
	Overview        analytics.Overview     `json:"overview"`
	Brands          []analytics.BrandShare `json:"brands"`
	LowStock        []domain.Phone         `json:"low_stock"`
	RecentAdditions []domain.Phone         `json:"recent_additions"`
	Timestamp       time.Time              `json:"timestamp"`
}

// Dashboard computes the landing-page numbers from a catalog snapshot.
func (s *ReportService) Dashboard(ctx context.Context) DashboardReport {
	records := s.inventory.List(ctx)
	return DashboardReport{
		Overview:        analytics.OverviewStats(records),
		Brands:          analytics.BrandDistribution(records),
		LowStock:        analytics.LowStock(records, s.opts.LowStockThreshold),
		RecentAdditions: analytics.RecentAdditions(records, s.opts.RecentLimit),
		Timestamp:       time.Now(),
	}
}

// StockReport is the inventory-insights projection.
type StockReport struct {
	TotalStock int                   `json:"total_stock"`
	TotalValue decimal.Decimal       `json:"total_value"`
	LowStock   []domain.Phone        `json:"low_stock"`
	OutOfStock []domain.Phone        `json:"out_of_stock"`
	FastMoving []domain.Phone        `json:"fast_moving"`
	SlowMoving []domain.Phone        `json:"slow_moving"`
	BrandStats []analytics.BrandStat `json:"brand_stats"`
}

// Stock computes the inventory-insights report.
func (s *ReportService) Stock(ctx context.Context) StockReport {
	records := s.inventory.List(ctx)
	return StockReport{
		TotalStock: analytics.TotalStock(records),
		TotalValue: analytics.TotalValue(records),
		LowStock:   analytics.LowStock(records, s.opts.LowStockThreshold),
		OutOfStock: analytics.OutOfStock(records),
		FastMoving: analytics.FastMoving(records),
		SlowMoving: analytics.SlowMoving(records),
		BrandStats: analytics.BrandStats(records),
	}
}

// ValuationReport is the stock-worth projection.
type ValuationReport struct {
	Summary   analytics.ValuationSummary `json:"summary"`
	Brands    []analytics.BrandValuation `json:"brands"`
	Bands     []analytics.BandBreakdown  `json:"bands"`
	TopModels []analytics.ModelValue     `json:"top_models"`
}

// Valuation computes the stock-worth report.
func (s *ReportService) Valuation(ctx context.Context) ValuationReport {
	records := s.inventory.List(ctx)
	return ValuationReport{
		Summary:   analytics.Valuation(records),
		Brands:    analytics.BrandValuations(records),
		Bands:     analytics.PriceBandDistribution(records, analytics.DefaultPriceBands()),
		TopModels: analytics.TopModels(records, s.opts.TopModelLimit),
	}
}

// SupplyChainReport is the supplier/order/movement projection.
type SupplyChainReport struct {
	Orders    analytics.OrderSummary          `json:"orders"`
	Suppliers []analytics.SupplierPerformance `json:"suppliers"`
	Movements analytics.MovementSummary       `json:"movements"`
}

// SupplyChain computes the supplier-and-movement report.
func (s *ReportService) SupplyChain(ctx context.Context) SupplyChainReport {
	return SupplyChainReport{
		Orders:    analytics.SummarizeOrders(s.ledger.ListPurchaseOrders(ctx)),
		Suppliers: analytics.SupplierPerformances(s.ledger.ListSuppliers(ctx), s.ledger.ListPurchaseOrders(ctx)),
		Movements: analytics.SummarizeMovements(s.ledger.ListStockMovements(ctx)),
	}
}

// Reorder computes reorder suggestions for the given demand estimates
// against current stock.
func (s *ReportService) Reorder(ctx context.Context, estimates []analytics.DemandEstimate) []analytics.ReorderSuggestion {
	return analytics.ReorderSuggestions(s.inventory.List(ctx), estimates)
}

// OrderFromSuggestion turns a positive reorder suggestion into a pending
// purchase order against the given supplier, expected in ReorderLeadDays.
// An empty supplierID picks the first supplier on file. A zero unit price
// falls back to the record's retail price.
func (s *ReportService) OrderFromSuggestion(ctx context.Context, suggestion analytics.ReorderSuggestion, supplierID string, unitPrice decimal.Decimal) (domain.PurchaseOrder, error) {
	if suggestion.Reorder <= 0 {
		return domain.PurchaseOrder{}, domain.NewValidationError("reorder", "must be greater than 0")
	}

	record, err := s.inventory.GetByID(ctx, suggestion.ProductID)
	if err != nil {
		return domain.PurchaseOrder{}, fmt.Errorf("resolve suggestion product: %w", err)
	}

	if supplierID == "" {
		suppliers := s.ledger.ListSuppliers(ctx)
		if len(suppliers) == 0 {
			return domain.PurchaseOrder{}, domain.NewValidationError("supplier_id", "is required: no suppliers on file")
		}
		supplierID = suppliers[0].ID
	}

	if unitPrice.IsZero() {
		unitPrice = record.PriceRange
	}

	order, err := s.ledger.AddPurchaseOrder(ctx, domain.PurchaseOrderInput{
		SupplierID:   supplierID,
		OrderDate:    domain.Today(),
		ExpectedDate: domain.Today().AddDate(0, 0, s.opts.ReorderLeadDays),
		Items: []domain.OrderItem{{
			Brand:     record.Brand,
			Model:     record.ModelName,
			Quantity:  suggestion.Reorder,
			UnitPrice: unitPrice,
		}},
	})
	if err != nil {
		return domain.PurchaseOrder{}, fmt.Errorf("create order from suggestion: %w", err)
	}

	s.logger.InfoContext(ctx, "created purchase order from reorder suggestion",
		slog.String("order_id", order.ID),
		slog.String("product_id", record.ID),
		slog.Int("quantity", suggestion.Reorder))

	return order, nil
}
