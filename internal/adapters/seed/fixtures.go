// internal/adapters/seed/fixtures.go

// Package seed provides the fixture data sets both stores start from.
// A persistence-backed load would replace this package; keeping the data
// behind functions means every caller gets its own copy.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Phones returns the initial catalog: the shop's standing assortment
// across the major brands.
func Phones() []domain.Phone {
	return []domain.Phone{
		{ID: "1", Brand: "Samsung", ModelName: "Galaxy S24 Ultra", Series: "Galaxy S", LaunchYear: 2024, PriceRange: price(120000), OSPlatform: domain.PlatformAndroid, Notes: "Flagship model", Quantity: 15, Supplier: "Samsung India", AddedDate: date(2024, time.January, 15)},
		{ID: "2", Brand: "Samsung", ModelName: "Galaxy S23", Series: "Galaxy S", LaunchYear: 2023, PriceRange: price(80000), OSPlatform: domain.PlatformAndroid, Notes: "Premium", Quantity: 25, Supplier: "Samsung India", AddedDate: date(2024, time.January, 10)},
		{ID: "3", Brand: "Samsung", ModelName: "Galaxy A54", Series: "Galaxy A", LaunchYear: 2023, PriceRange: price(35000), OSPlatform: domain.PlatformAndroid, Notes: "Mid-range", Quantity: 40, Supplier: "Samsung India", AddedDate: date(2024, time.January, 12)},
		{ID: "4", Brand: "Samsung", ModelName: "Galaxy A14", Series: "Galaxy A", LaunchYear: 2023, PriceRange: price(15000), OSPlatform: domain.PlatformAndroid, Notes: "Budget", Quantity: 60, Supplier: "Samsung India", AddedDate: date(2024, time.January, 8)},
		{ID: "5", Brand: "Samsung", ModelName: "Galaxy Z Fold 5", Series: "Galaxy Z", LaunchYear: 2023, PriceRange: price(150000), OSPlatform: domain.PlatformAndroid, Notes: "Foldable", Quantity: 8, Supplier: "Samsung India", AddedDate: date(2024, time.January, 20)},
		{ID: "6", Brand: "Apple", ModelName: "iPhone 15 Pro Max", Series: "iPhone 15", LaunchYear: 2023, PriceRange: price(160000), OSPlatform: domain.PlatformIOS, Notes: "Flagship", Quantity: 12, Supplier: "Apple India", AddedDate: date(2024, time.January, 18)},
		{ID: "7", Brand: "Apple", ModelName: "iPhone 15", Series: "iPhone 15", LaunchYear: 2023, PriceRange: price(80000), OSPlatform: domain.PlatformIOS, Notes: "Latest generation", Quantity: 20, Supplier: "Apple India", AddedDate: date(2024, time.January, 16)},
		{ID: "8", Brand: "Apple", ModelName: "iPhone 14", Series: "iPhone 14", LaunchYear: 2022, PriceRange: price(70000), OSPlatform: domain.PlatformIOS, Notes: "Bestseller", Quantity: 35, Supplier: "Apple India", AddedDate: date(2024, time.January, 14)},
		{ID: "9", Brand: "Apple", ModelName: "iPhone 13", Series: "iPhone 13", LaunchYear: 2021, PriceRange: price(60000), OSPlatform: domain.PlatformIOS, Notes: "Still popular", Quantity: 30, Supplier: "Apple India", AddedDate: date(2024, time.January, 11)},
		{ID: "10", Brand: "Xiaomi", ModelName: "Redmi Note 12 Pro", Series: "Redmi Note", LaunchYear: 2023, PriceRange: price(25000), OSPlatform: domain.PlatformAndroid, Notes: "Popular mid-range", Quantity: 50, Supplier: "Xiaomi India", AddedDate: date(2024, time.January, 9)},
		{ID: "11", Brand: "Xiaomi", ModelName: "Redmi Note 11", Series: "Redmi Note", LaunchYear: 2022, PriceRange: price(16000), OSPlatform: domain.PlatformAndroid, Notes: "Bestseller", Quantity: 45, Supplier: "Xiaomi India", AddedDate: date(2024, time.January, 7)},
		{ID: "12", Brand: "Xiaomi", ModelName: "12 Pro", Series: "Mi Series", LaunchYear: 2022, PriceRange: price(60000), OSPlatform: domain.PlatformAndroid, Notes: "Flagship", Quantity: 18, Supplier: "Xiaomi India", AddedDate: date(2024, time.January, 13)},
		{ID: "13", Brand: "Vivo", ModelName: "Vivo X90 Pro", Series: "X Series", LaunchYear: 2023, PriceRange: price(90000), OSPlatform: domain.PlatformAndroid, Notes: "Camera flagship", Quantity: 15, Supplier: "Vivo India", AddedDate: date(2024, time.January, 17)},
		{ID: "14", Brand: "Vivo", ModelName: "Vivo V29", Series: "V Series", LaunchYear: 2023, PriceRange: price(32000), OSPlatform: domain.PlatformAndroid, Notes: "Stylish design", Quantity: 35, Supplier: "Vivo India", AddedDate: date(2024, time.January, 15)},
		{ID: "15", Brand: "OnePlus", ModelName: "OnePlus 11", Series: "OnePlus", LaunchYear: 2023, PriceRange: price(61000), OSPlatform: domain.PlatformAndroid, Notes: "Flagship", Quantity: 22, Supplier: "OnePlus India", AddedDate: date(2024, time.January, 19)},
		{ID: "16", Brand: "OnePlus", ModelName: "OnePlus Nord 3", Series: "Nord", LaunchYear: 2023, PriceRange: price(33000), OSPlatform: domain.PlatformAndroid, Notes: "Affordable premium", Quantity: 28, Supplier: "OnePlus India", AddedDate: date(2024, time.January, 12)},
	}
}

// Suppliers returns the initial supplier book.
func Suppliers() []domain.Supplier {
	return []domain.Supplier{
		{
			ID:          "1",
			Name:        "Rajesh Kumar",
			Company:     "Mobile World Distributors",
			Contact:     "+91 98765 43210",
			Email:       "rajesh@mobileworld.com",
			Address:     "123 Electronics Market, Delhi",
			AddedDate:   date(2024, time.January, 15),
			TotalOrders: 15,
			TotalValue:  price(2500000),
		},
		{
			ID:          "2",
			Name:        "Priya Sharma",
			Company:     "Tech Solutions Inc",
			Contact:     "+91 87654 32109",
			Email:       "priya@techsolutions.com",
			Address:     "456 Business Park, Mumbai",
			AddedDate:   date(2024, time.February, 20),
			TotalOrders: 8,
			TotalValue:  price(1200000),
		},
	}
}

// PurchaseOrders returns the initial order book: one pending order.
func PurchaseOrders() []domain.PurchaseOrder {
	return []domain.PurchaseOrder{
		{
			ID:           "PO-0001",
			SupplierID:   "1",
			OrderDate:    date(2024, time.March, 1),
			ExpectedDate: date(2024, time.March, 15),
			Status:       domain.OrderPending,
			Items: []domain.OrderItem{
				{Brand: "Samsung", Model: "Galaxy S24", Quantity: 10, UnitPrice: price(80000)},
				{Brand: "Apple", Model: "iPhone 15", Quantity: 5, UnitPrice: price(80000)},
			},
			TotalAmount: price(1200000),
		},
	}
}

// Movements returns the initial movement ledger: one arrival referencing
// the seeded order.
func Movements() []domain.StockMovement {
	return []domain.StockMovement{
		{
			ID:        "1",
			ProductID: "1",
			Type:      domain.MovementIn,
			Quantity:  50,
			Date:      date(2024, time.March, 1),
			Reason:    "New stock arrival",
			Reference: "PO-0001",
		},
	}
}

// Ledger bundles the three supply-chain fixture sets.
func Ledger() (suppliers []domain.Supplier, orders []domain.PurchaseOrder, movements []domain.StockMovement) {
	return Suppliers(), PurchaseOrders(), Movements()
}
