// internal/core/analytics/ledger.go
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
)

// MovementSummary totals the movement ledger. Net is computed from the
// ledger alone and is independent of the catalog quantities, which are
// tracked separately by design.
type MovementSummary struct {
	StockIn  int `json:"stock_in"`
	StockOut int `json:"stock_out"`
	Net      int `json:"net"`
}

// SummarizeMovements sums the in and out quantities of the ledger.
func SummarizeMovements(movements []domain.StockMovement) MovementSummary {
	var s MovementSummary
	for _, m := range movements {
		switch m.Type {
		case domain.MovementIn:
			s.StockIn += m.Quantity
		case domain.MovementOut:
			s.StockOut += m.Quantity
		}
	}
	s.Net = s.StockIn - s.StockOut
	return s
}

// NetStockByProduct computes per-product net movement (in minus out),
// keyed by the weak product reference. Dangling product ids appear in the
// result like any other key.
func NetStockByProduct(movements []domain.StockMovement) map[string]int {
	net := make(map[string]int)
	for _, m := range movements {
		switch m.Type {
		case domain.MovementIn:
			net[m.ProductID] += m.Quantity
		case domain.MovementOut:
			net[m.ProductID] -= m.Quantity
		}
	}
	return net
}

// OrderSummary counts purchase orders by status and totals their amounts.
type OrderSummary struct {
	Pending     int             `json:"pending"`
	Received    int             `json:"received"`
	Cancelled   int             `json:"cancelled"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SummarizeOrders tallies the purchase-order ledger.
func SummarizeOrders(orders []domain.PurchaseOrder) OrderSummary {
	s := OrderSummary{TotalAmount: decimal.Zero}
	for _, po := range orders {
		switch po.Status {
		case domain.OrderPending:
			s.Pending++
		case domain.OrderReceived:
			s.Received++
		case domain.OrderCancelled:
			s.Cancelled++
		}
		s.TotalAmount = s.TotalAmount.Add(po.TotalAmount)
	}
	return s
}

// SupplierPerformance is the ledger-derived view of one supplier's order
// history. Unlike the stored TotalOrders/TotalValue counters on the
// Supplier record, these numbers are recomputed from the purchase orders.
type SupplierPerformance struct {
	SupplierID   string          `json:"supplier_id"`
	Name         string          `json:"name"`
	Company      string          `json:"company"`
	Orders       int             `json:"orders"`
	TotalValue   decimal.Decimal `json:"total_value"`
	AverageValue decimal.Decimal `json:"average_value"`
	StoredOrders int             `json:"stored_orders"`
	StoredValue  decimal.Decimal `json:"stored_value"`
}

// SupplierPerformances joins suppliers with their orders. Orders whose
// supplier id resolves to no live supplier are skipped here; they still
// count in SummarizeOrders.
func SupplierPerformances(suppliers []domain.Supplier, orders []domain.PurchaseOrder) []SupplierPerformance {
	out := make([]SupplierPerformance, 0, len(suppliers))
	for _, sup := range suppliers {
		perf := SupplierPerformance{
			SupplierID:   sup.ID,
			Name:         sup.Name,
			Company:      sup.Company,
			TotalValue:   decimal.Zero,
			AverageValue: decimal.Zero,
			StoredOrders: sup.TotalOrders,
			StoredValue:  sup.TotalValue,
		}
		for _, po := range orders {
			if po.SupplierID != sup.ID {
				continue
			}
			perf.Orders++
			perf.TotalValue = perf.TotalValue.Add(po.TotalAmount)
		}
		if perf.Orders > 0 {
			perf.AverageValue = perf.TotalValue.Div(decimal.NewFromInt(int64(perf.Orders))).Round(0)
		}
		out = append(out, perf)
	}
	return out
}

// DemandEstimate is a caller-supplied demand prediction for one catalog
// record. Demand forecasting itself is out of scope; estimates arrive from
// whoever runs the numbers.
type DemandEstimate struct {
	ProductID       string `json:"product_id"`
	PredictedDemand int    `json:"predicted_demand"`
}

// ReorderSuggestion recommends a reorder quantity for a product. A zero
// Reorder means current stock already covers the predicted demand.
type ReorderSuggestion struct {
	ProductID       string `json:"product_id"`
	Product         string `json:"product"`
	CurrentStock    int    `json:"current_stock"`
	PredictedDemand int    `json:"predicted_demand"`
	Reorder         int    `json:"reorder"`
}

// ReorderSuggestions computes max(0, demand - stock) per estimate, in
// estimate order. Estimates whose product id resolves to no catalog record
// are dropped.
func ReorderSuggestions(records []domain.Phone, estimates []DemandEstimate) []ReorderSuggestion {
	byID := make(map[string]domain.Phone, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	var out []ReorderSuggestion
	for _, est := range estimates {
		r, ok := byID[est.ProductID]
		if !ok {
			continue
		}
		reorder := est.PredictedDemand - r.Quantity
		if reorder < 0 {
			reorder = 0
		}
		out = append(out, ReorderSuggestion{
			ProductID:       r.ID,
			Product:         r.Brand + " " + r.ModelName,
			CurrentStock:    r.Quantity,
			PredictedDemand: est.PredictedDemand,
			Reorder:         reorder,
		})
	}
	return out
}
