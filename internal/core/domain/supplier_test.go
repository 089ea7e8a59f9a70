// internal/core/domain/supplier_test.go
package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
)

func TestSupplierInput_Validate(t *testing.T) {
	tests := []struct {
		name          string
		input         domain.SupplierInput
		expectedError bool
		errorContains string
	}{
		{
			name: "valid_input",
			input: domain.SupplierInput{
				Name:    "Rajesh Kumar",
				Company: "Mobile World Distributors",
				Email:   "rajesh@mobileworld.com",
			},
		},
		{
			name:          "missing_name",
			input:         domain.SupplierInput{Company: "Mobile World Distributors"},
			expectedError: true,
			errorContains: "name",
		},
		{
			name:          "missing_company",
			input:         domain.SupplierInput{Name: "Rajesh Kumar"},
			expectedError: true,
			errorContains: "company",
		},
		{
			name: "malformed_email",
			input: domain.SupplierInput{
				Name:    "Rajesh Kumar",
				Company: "Mobile World Distributors",
				Email:   "not-an-email",
			},
			expectedError: true,
			errorContains: "email",
		},
		{
			name: "empty_email_allowed",
			input: domain.SupplierInput{
				Name:    "Rajesh Kumar",
				Company: "Mobile World Distributors",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()

			if tt.expectedError {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewSupplier(t *testing.T) {
	supplier := domain.NewSupplier(domain.SupplierInput{
		Name:    "Priya Sharma",
		Company: "Tech Solutions Inc",
	})

	assert.NotEmpty(t, supplier.ID)
	assert.Equal(t, domain.Today(), supplier.AddedDate)
	assert.Zero(t, supplier.TotalOrders)
	assert.True(t, supplier.TotalValue.IsZero())
}

func TestOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{name: "pending_to_received", from: domain.OrderPending, to: domain.OrderReceived, allowed: true},
		{name: "pending_to_cancelled", from: domain.OrderPending, to: domain.OrderCancelled, allowed: true},
		{name: "pending_to_pending", from: domain.OrderPending, to: domain.OrderPending, allowed: true},
		{name: "received_to_received", from: domain.OrderReceived, to: domain.OrderReceived, allowed: true},
		{name: "received_to_pending", from: domain.OrderReceived, to: domain.OrderPending, allowed: false},
		{name: "received_to_cancelled", from: domain.OrderReceived, to: domain.OrderCancelled, allowed: false},
		{name: "cancelled_to_received", from: domain.OrderCancelled, to: domain.OrderReceived, allowed: false},
		{name: "cancelled_to_pending", from: domain.OrderCancelled, to: domain.OrderPending, allowed: false},
		{name: "pending_to_unknown", from: domain.OrderPending, to: domain.OrderStatus("shipped"), allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, domain.OrderPending.Terminal())
	assert.True(t, domain.OrderReceived.Terminal())
	assert.True(t, domain.OrderCancelled.Terminal())
}

func TestPurchaseOrderInput_Validate(t *testing.T) {
	valid := func() domain.PurchaseOrderInput {
		return domain.PurchaseOrderInput{
			SupplierID: "1",
			Items: []domain.OrderItem{
				{Brand: "Samsung", Model: "Galaxy S24", Quantity: 10, UnitPrice: decimal.NewFromInt(80000)},
			},
		}
	}

	tests := []struct {
		name          string
		mutate        func(*domain.PurchaseOrderInput)
		expectedError bool
		errorContains string
	}{
		{
			name:   "valid_input",
			mutate: func(in *domain.PurchaseOrderInput) {},
		},
		{
			name:          "missing_supplier_id",
			mutate:        func(in *domain.PurchaseOrderInput) { in.SupplierID = "" },
			expectedError: true,
			errorContains: "supplier_id",
		},
		{
			name:          "empty_items",
			mutate:        func(in *domain.PurchaseOrderInput) { in.Items = nil },
			expectedError: true,
			errorContains: "items",
		},
		{
			name: "zero_item_quantity",
			mutate: func(in *domain.PurchaseOrderInput) {
				in.Items[0].Quantity = 0
			},
			expectedError: true,
			errorContains: "quantity",
		},
		{
			name: "negative_unit_price",
			mutate: func(in *domain.PurchaseOrderInput) {
				in.Items[0].UnitPrice = decimal.NewFromInt(-1)
			},
			expectedError: true,
			errorContains: "unit_price",
		},
		{
			name: "item_missing_brand",
			mutate: func(in *domain.PurchaseOrderInput) {
				in.Items[0].Brand = ""
			},
			expectedError: true,
			errorContains: "brand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)

			err := in.Validate()

			if tt.expectedError {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("computes_total_from_line_items", func(t *testing.T) {
		order := domain.NewPurchaseOrder("PO-0002", domain.PurchaseOrderInput{
			SupplierID: "1",
			Items: []domain.OrderItem{
				{Brand: "Samsung", Model: "Galaxy S24", Quantity: 10, UnitPrice: decimal.NewFromInt(80000)},
				{Brand: "Apple", Model: "iPhone 15", Quantity: 5, UnitPrice: decimal.NewFromInt(80000)},
			},
		})

		assert.Equal(t, "PO-0002", order.ID)
		assert.Equal(t, domain.OrderPending, order.Status)
		assert.True(t, decimal.NewFromInt(1200000).Equal(order.TotalAmount))
	})

	t.Run("defaults_order_date_to_today", func(t *testing.T) {
		order := domain.NewPurchaseOrder("PO-0003", domain.PurchaseOrderInput{
			SupplierID: "1",
			Items: []domain.OrderItem{
				{Brand: "Samsung", Model: "Galaxy S24", Quantity: 1, UnitPrice: decimal.NewFromInt(80000)},
			},
		})

		assert.Equal(t, domain.Today(), order.OrderDate)
	})

	t.Run("keeps_explicit_order_date", func(t *testing.T) {
		orderDate := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		order := domain.NewPurchaseOrder("PO-0004", domain.PurchaseOrderInput{
			SupplierID: "1",
			OrderDate:  orderDate,
			Items: []domain.OrderItem{
				{Brand: "Samsung", Model: "Galaxy S24", Quantity: 1, UnitPrice: decimal.NewFromInt(80000)},
			},
		})

		assert.Equal(t, orderDate, order.OrderDate)
	})
}

func TestPurchaseOrderUpdate_Apply(t *testing.T) {
	base := domain.NewPurchaseOrder("PO-0001", domain.PurchaseOrderInput{
		SupplierID: "1",
		Items: []domain.OrderItem{
			{Brand: "Samsung", Model: "Galaxy S24", Quantity: 10, UnitPrice: decimal.NewFromInt(80000)},
		},
	})

	t.Run("editing_items_does_not_recompute_total", func(t *testing.T) {
		update := domain.PurchaseOrderUpdate{
			Items: []domain.OrderItem{
				{Brand: "Samsung", Model: "Galaxy S24", Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
			},
		}

		updated := update.Apply(base)

		assert.Len(t, updated.Items, 1)
		assert.True(t, base.TotalAmount.Equal(updated.TotalAmount))
	})

	t.Run("status_merge", func(t *testing.T) {
		received := domain.OrderReceived
		updated := (&domain.PurchaseOrderUpdate{Status: &received}).Apply(base)

		assert.Equal(t, domain.OrderReceived, updated.Status)
	})
}

func TestMovementInput_Validate(t *testing.T) {
	valid := func() domain.MovementInput {
		return domain.MovementInput{
			ProductID: "1",
			Type:      domain.MovementIn,
			Quantity:  50,
			Reason:    "New stock arrival",
		}
	}

	tests := []struct {
		name          string
		mutate        func(*domain.MovementInput)
		expectedError bool
	}{
		{
			name:   "valid_input",
			mutate: func(in *domain.MovementInput) {},
		},
		{
			name:          "missing_product_id",
			mutate:        func(in *domain.MovementInput) { in.ProductID = "" },
			expectedError: true,
		},
		{
			name:          "unknown_type",
			mutate:        func(in *domain.MovementInput) { in.Type = "sideways" },
			expectedError: true,
		},
		{
			name:          "zero_quantity",
			mutate:        func(in *domain.MovementInput) { in.Quantity = 0 },
			expectedError: true,
		},
		{
			name:          "negative_quantity",
			mutate:        func(in *domain.MovementInput) { in.Quantity = -10 },
			expectedError: true,
		},
		{
			name:          "missing_reason",
			mutate:        func(in *domain.MovementInput) { in.Reason = "" },
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)

			err := in.Validate()

			if tt.expectedError {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewStockMovement(t *testing.T) {
	t.Run("defaults_date_to_today", func(t *testing.T) {
		movement := domain.NewStockMovement(domain.MovementInput{
			ProductID: "1",
			Type:      domain.MovementOut,
			Quantity:  5,
			Reason:    "Sold",
		})

		assert.NotEmpty(t, movement.ID)
		assert.Equal(t, domain.Today(), movement.Date)
	})

	t.Run("keeps_explicit_date_and_reference", func(t *testing.T) {
		date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		movement := domain.NewStockMovement(domain.MovementInput{
			ProductID: "1",
			Type:      domain.MovementIn,
			Quantity:  50,
			Date:      date,
			Reason:    "New stock arrival",
			Reference: "PO-0001",
		})

		assert.Equal(t, date, movement.Date)
		assert.Equal(t, "PO-0001", movement.Reference)
	})
}
