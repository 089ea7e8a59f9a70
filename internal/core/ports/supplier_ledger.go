// internal/core/ports/supplier_ledger.go
package ports

import (
	"context"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
)

// SupplierLedger defines the supply-chain port: suppliers, purchase orders
// and the append-only stock-movement ledger. Cross-entity references
// (SupplierID on orders, ProductID on movements) are weak references and
// are never validated against the other collections.
type SupplierLedger interface {
	AddSupplier(ctx context.Context, input domain.SupplierInput) (domain.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, update domain.SupplierUpdate) (domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	GetSupplier(ctx context.Context, id string) (domain.Supplier, error)
	ListSuppliers(ctx context.Context) []domain.Supplier

	AddPurchaseOrder(ctx context.Context, input domain.PurchaseOrderInput) (domain.PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, id string, update domain.PurchaseOrderUpdate) (domain.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, id string) (domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context) []domain.PurchaseOrder

	AddStockMovement(ctx context.Context, input domain.MovementInput) (domain.StockMovement, error)
	ListStockMovements(ctx context.Context) []domain.StockMovement
}
