// internal/core/services/reports_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/analytics"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/services"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/test/helpers"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/test/mocks"
)

func newReportService(t *testing.T, ctrl *gomock.Controller) (*services.ReportService, *mocks.MockInventoryStore, *mocks.MockSupplierLedger) {
	t.Helper()
	inventory := mocks.NewMockInventoryStore(ctrl)
	ledger := mocks.NewMockSupplierLedger(ctrl)
	svc := services.NewReportService(inventory, ledger, services.ReportOptions{}, helpers.TestLogger())
	return svc, inventory, ledger
}

func TestReportService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, inventory, _ := newReportService(t, ctrl)

	records := []domain.Phone{
		*helpers.CreateTestPhone(func(p *domain.Phone) {
			p.ID = "a"
			p.Brand = "Samsung"
			p.Quantity = 15
			p.PriceRange = decimal.NewFromInt(120000)
		}),
		*helpers.CreateTestPhone(func(p *domain.Phone) {
			p.ID = "b"
			p.Brand = "Apple"
			p.Quantity = 5
			p.PriceRange = decimal.NewFromInt(160000)
		}),
	}

	inventory.EXPECT().List(gomock.Any()).Return(records)

	report := svc.Dashboard(context.Background())

	assert.Equal(t, 20, report.Overview.TotalStock)
	assert.Equal(t, 2, report.Overview.TotalModels)
	assert.Equal(t, 2, report.Overview.Brands)
	assert.True(t, decimal.NewFromInt(2600000).Equal(report.Overview.TotalValue))

	require.Len(t, report.Brands, 2)
	assert.Equal(t, "Samsung", report.Brands[0].Brand)
	assert.Equal(t, 75, report.Brands[0].Percentage)
	assert.Equal(t, 25, report.Brands[1].Percentage)

	// only the 5-unit record is below the default threshold of 10
	require.Len(t, report.LowStock, 1)
	assert.Equal(t, "b", report.LowStock[0].ID)

	assert.Len(t, report.RecentAdditions, 2)
	assert.False(t, report.Timestamp.IsZero())
}

func TestReportService_Dashboard_EmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, inventory, _ := newReportService(t, ctrl)
	inventory.EXPECT().List(gomock.Any()).Return(nil)

	report := svc.Dashboard(context.Background())

	assert.Zero(t, report.Overview.TotalStock)
	assert.True(t, report.Overview.TotalValue.IsZero())
	assert.Empty(t, report.Brands)
	assert.Empty(t, report.LowStock)
}

func TestReportService_Stock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, inventory, _ := newReportService(t, ctrl)

	records := []domain.Phone{
		*helpers.CreateTestPhone(func(p *domain.Phone) {
			p.ID = "premium"
			p.PriceRange = decimal.NewFromInt(120000)
			p.Quantity = 0
		}),
		*helpers.CreateTestPhone(func(p *domain.Phone) {
			p.ID = "budget"
			p.PriceRange = decimal.NewFromInt(15000)
			p.Quantity = 60
		}),
	}

	inventory.EXPECT().List(gomock.Any()).Return(records)

	report := svc.Stock(context.Background())

	assert.Equal(t, 60, report.TotalStock)
	require.Len(t, report.OutOfStock, 1)
	assert.Equal(t, "premium", report.OutOfStock[0].ID)
	require.Len(t, report.FastMoving, 1)
	assert.Equal(t, "premium", report.FastMoving[0].ID)
	require.Len(t, report.SlowMoving, 1)
	assert.Equal(t, "budget", report.SlowMoving[0].ID)
	assert.NotEmpty(t, report.BrandStats)
}

func TestReportService_SupplyChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, ledger := newReportService(t, ctrl)

	supplier := helpers.CreateTestSupplier()
	orders := []domain.PurchaseOrder{
		*helpers.CreateTestOrder(func(po *domain.PurchaseOrder) {
			po.SupplierID = supplier.ID
		}),
	}
	movements := []domain.StockMovement{
		{ID: "m1", ProductID: "1", Type: domain.MovementIn, Quantity: 50, Reason: "New stock arrival"},
		{ID: "m2", ProductID: "1", Type: domain.MovementOut, Quantity: 20, Reason: "Sold"},
	}

	ledger.EXPECT().ListPurchaseOrders(gomock.Any()).Return(orders).Times(2)
	ledger.EXPECT().ListSuppliers(gomock.Any()).Return([]domain.Supplier{*supplier})
	ledger.EXPECT().ListStockMovements(gomock.Any()).Return(movements)

	report := svc.SupplyChain(context.Background())

	assert.Equal(t, 1, report.Orders.Pending)
	assert.Equal(t, 50, report.Movements.StockIn)
	assert.Equal(t, 20, report.Movements.StockOut)
	assert.Equal(t, 30, report.Movements.Net)

	require.Len(t, report.Suppliers, 1)
	assert.Equal(t, 1, report.Suppliers[0].Orders)
	assert.True(t, orders[0].TotalAmount.Equal(report.Suppliers[0].TotalValue))
}

func TestReportService_Reorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, inventory, _ := newReportService(t, ctrl)

	records := []domain.Phone{
		*helpers.CreateTestPhone(func(p *domain.Phone) {
			p.ID = "a14"
			p.Brand = "Samsung"
			p.ModelName = "Galaxy A14"
			p.Quantity = 60
		}),
	}
	inventory.EXPECT().List(gomock.Any()).Return(records)

	suggestions := svc.Reorder(context.Background(), []analytics.DemandEstimate{
		{ProductID: "a14", PredictedDemand: 80},
		{ProductID: "missing", PredictedDemand: 10},
	})

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Samsung Galaxy A14", suggestions[0].Product)
	assert.Equal(t, 60, suggestions[0].CurrentStock)
	assert.Equal(t, 20, suggestions[0].Reorder)
}

func TestReportService_OrderFromSuggestion(t *testing.T) {
	suggestion := analytics.ReorderSuggestion{
		ProductID:       "a14",
		Product:         "Samsung Galaxy A14",
		CurrentStock:    60,
		PredictedDemand: 80,
		Reorder:         20,
	}
	record := *helpers.CreateTestPhone(func(p *domain.Phone) {
		p.ID = "a14"
		p.Brand = "Samsung"
		p.ModelName = "Galaxy A14"
		p.PriceRange = decimal.NewFromInt(15000)
	})

	t.Run("creates_pending_order_with_lead_time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, inventory, ledger := newReportService(t, ctrl)

		inventory.EXPECT().GetByID(gomock.Any(), "a14").Return(record, nil)
		ledger.EXPECT().
			AddPurchaseOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, in domain.PurchaseOrderInput) (domain.PurchaseOrder, error) {
				assert.Equal(t, "sup-1", in.SupplierID)
				assert.Equal(t, domain.Today().AddDate(0, 0, 7), in.ExpectedDate)
				require.Len(t, in.Items, 1)
				assert.Equal(t, "Galaxy A14", in.Items[0].Model)
				assert.Equal(t, 20, in.Items[0].Quantity)
				assert.True(t, record.PriceRange.Equal(in.Items[0].UnitPrice))
				return domain.NewPurchaseOrder("PO-0001", in), nil
			})

		order, err := svc.OrderFromSuggestion(context.Background(), suggestion, "sup-1", decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, domain.OrderPending, order.Status)
	})

	t.Run("falls_back_to_first_supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, inventory, ledger := newReportService(t, ctrl)

		inventory.EXPECT().GetByID(gomock.Any(), "a14").Return(record, nil)
		ledger.EXPECT().ListSuppliers(gomock.Any()).Return([]domain.Supplier{
			*helpers.CreateTestSupplier(func(s *domain.Supplier) { s.ID = "first" }),
			*helpers.CreateTestSupplier(func(s *domain.Supplier) { s.ID = "second" }),
		})
		ledger.EXPECT().
			AddPurchaseOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, in domain.PurchaseOrderInput) (domain.PurchaseOrder, error) {
				assert.Equal(t, "first", in.SupplierID)
				return domain.NewPurchaseOrder("PO-0001", in), nil
			})

		_, err := svc.OrderFromSuggestion(context.Background(), suggestion, "", decimal.Zero)

		require.NoError(t, err)
	})

	t.Run("rejects_zero_reorder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _ := newReportService(t, ctrl)

		covered := suggestion
		covered.Reorder = 0

		_, err := svc.OrderFromSuggestion(context.Background(), covered, "sup-1", decimal.Zero)

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("unknown_product_propagates_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, inventory, _ := newReportService(t, ctrl)

		inventory.EXPECT().
			GetByID(gomock.Any(), "a14").
			Return(domain.Phone{}, domain.NewNotFoundError("phone record", "a14"))

		_, err := svc.OrderFromSuggestion(context.Background(), suggestion, "sup-1", decimal.Zero)

		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("no_suppliers_on_file_is_a_validation_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, inventory, ledger := newReportService(t, ctrl)

		inventory.EXPECT().GetByID(gomock.Any(), "a14").Return(record, nil)
		ledger.EXPECT().ListSuppliers(gomock.Any()).Return(nil)

		_, err := svc.OrderFromSuggestion(context.Background(), suggestion, "", decimal.Zero)

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}
