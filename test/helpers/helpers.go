// test/helpers/helpers.go
package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/pkg/config"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "stock-wiz-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Inventory: config.InventoryConfig{
			LowStockThreshold: 10,
			DefaultQuantity:   1,
		},
		Reports: config.ReportConfig{
			RecentLimit:     5,
			TopModelLimit:   10,
			ReorderLeadDays: 7,
		},
	}
}

// CreateTestPhone creates a test catalog record
func CreateTestPhone(overrides ...func(*domain.Phone)) *domain.Phone {
	phone := &domain.Phone{
		ID:         "test-phone-1",
		Brand:      "Samsung",
		ModelName:  "Galaxy S24",
		Series:     "Galaxy S",
		LaunchYear: 2024,
		PriceRange: decimal.NewFromInt(80000),
		OSPlatform: domain.PlatformAndroid,
		Notes:      "Test record",
		Quantity:   10,
		Supplier:   "Samsung India",
		AddedDate:  time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}

	for _, override := range overrides {
		override(phone)
	}

	return phone
}

// CreateTestPhones creates multiple test catalog records
func CreateTestPhones(count int) []domain.Phone {
	brands := []string{"Samsung", "Apple", "Xiaomi", "Vivo", "OnePlus"}
	platforms := []string{domain.PlatformAndroid, domain.PlatformIOS}

	phones := make([]domain.Phone, count)
	for i := 0; i < count; i++ {
		phones[i] = *CreateTestPhone(func(p *domain.Phone) {
			p.ID = fmt.Sprintf("test-phone-%d", i+1)
			p.Brand = brands[i%len(brands)]
			p.ModelName = fmt.Sprintf("Test Model %d", i+1)
			p.OSPlatform = platforms[i%len(platforms)]
			p.PriceRange = decimal.NewFromInt(int64(10000 + i*5000))
			p.Quantity = 5 + i*3
		})
	}

	return phones
}

// CreateTestSupplier creates a test supplier
func CreateTestSupplier(overrides ...func(*domain.Supplier)) *domain.Supplier {
	supplier := &domain.Supplier{
		ID:          "test-supplier-1",
		Name:        "Test Supplier",
		Company:     "Test Distributors",
		Contact:     "+91 90000 00000",
		Email:       "supplier@example.com",
		Address:     "1 Test Street",
		AddedDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		TotalOrders: 0,
		TotalValue:  decimal.Zero,
	}

	for _, override := range overrides {
		override(supplier)
	}

	return supplier
}

// CreateTestOrder creates a test purchase order
func CreateTestOrder(overrides ...func(*domain.PurchaseOrder)) *domain.PurchaseOrder {
	order := &domain.PurchaseOrder{
		ID:           "PO-0001",
		SupplierID:   "test-supplier-1",
		OrderDate:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		ExpectedDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Status:       domain.OrderPending,
		Items: []domain.OrderItem{
			{Brand: "Samsung", Model: "Galaxy S24", Quantity: 10, UnitPrice: decimal.NewFromInt(80000)},
		},
		TotalAmount: decimal.NewFromInt(800000),
	}

	for _, override := range overrides {
		override(order)
	}

	return order
}

// ComparePhones compares two catalog records for testing
func ComparePhones(t *testing.T, expected, actual *domain.Phone) {
	t.Helper()

	require.Equal(t, expected.Brand, actual.Brand)
	require.Equal(t, expected.ModelName, actual.ModelName)
	require.Equal(t, expected.Series, actual.Series)
	require.Equal(t, expected.LaunchYear, actual.LaunchYear)
	require.Equal(t, expected.OSPlatform, actual.OSPlatform)
	require.Equal(t, expected.Quantity, actual.Quantity)
	require.Equal(t, expected.Supplier, actual.Supplier)
	require.True(t, expected.PriceRange.Equal(actual.PriceRange))
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
