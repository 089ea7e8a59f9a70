// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
)

var benchBrands = []string{"Samsung", "Apple", "Xiaomi", "Vivo", "OnePlus", "Realme", "Motorola", "Nothing"}

// createLargeCatalog generates a catalog snapshot of the given size with a
// realistic spread of brands, prices and quantities.
func createLargeCatalog(numRecords int) []domain.Phone {
	records := make([]domain.Phone, numRecords)
	for i := 0; i < numRecords; i++ {
		brand := benchBrands[i%len(benchBrands)]
		platform := domain.PlatformAndroid
		if brand == "Apple" {
			platform = domain.PlatformIOS
		}
		records[i] = domain.Phone{
			ID:         fmt.Sprintf("bench-%d", i+1),
			Brand:      brand,
			ModelName:  fmt.Sprintf("%s Model %d", brand, i+1),
			Series:     fmt.Sprintf("Series %d", i%12),
			LaunchYear: 2020 + i%5,
			PriceRange: decimal.NewFromInt(int64(8000 + (i%40)*4000)),
			OSPlatform: platform,
			Quantity:   i % 60,
			Supplier:   brand + " India",
			AddedDate:  time.Date(2024, time.January, 1+i%28, 0, 0, 0, 0, time.UTC),
		}
	}
	return records
}

// createLargeLedger generates matching purchase orders and movements for a
// catalog of the given size.
func createLargeLedger(numOrders int) ([]domain.PurchaseOrder, []domain.StockMovement) {
	statuses := []domain.OrderStatus{domain.OrderPending, domain.OrderReceived, domain.OrderCancelled}

	orders := make([]domain.PurchaseOrder, numOrders)
	movements := make([]domain.StockMovement, 0, numOrders*2)
	for i := 0; i < numOrders; i++ {
		brand := benchBrands[i%len(benchBrands)]
		orders[i] = domain.PurchaseOrder{
			ID:          fmt.Sprintf("PO-%04d", i+1),
			SupplierID:  fmt.Sprintf("%d", 1+i%5),
			OrderDate:   time.Date(2024, time.March, 1+i%28, 0, 0, 0, 0, time.UTC),
			Status:      statuses[i%len(statuses)],
			Items:       []domain.OrderItem{{Brand: brand, Model: fmt.Sprintf("%s Model %d", brand, i+1), Quantity: 5 + i%20, UnitPrice: decimal.NewFromInt(int64(10000 + (i%30)*3000))}},
			TotalAmount: decimal.NewFromInt(int64((5 + i%20) * (10000 + (i%30)*3000))),
		}

		movements = append(movements, domain.StockMovement{
			ID:        fmt.Sprintf("%d", len(movements)+1),
			ProductID: fmt.Sprintf("bench-%d", 1+i%200),
			Type:      domain.MovementIn,
			Quantity:  5 + i%20,
			Reason:    "New stock arrival",
			Reference: orders[i].ID,
		})
		if i%3 == 0 {
			movements = append(movements, domain.StockMovement{
				ID:        fmt.Sprintf("%d", len(movements)+1),
				ProductID: fmt.Sprintf("bench-%d", 1+i%200),
				Type:      domain.MovementOut,
				Quantity:  1 + i%5,
				Reason:    "Sold",
			})
		}
	}
	return orders, movements
}
