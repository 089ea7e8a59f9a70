// internal/core/services/ledger.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/ports"
)

// purchaseOrderPrefix makes order ids human-scannable next to the opaque
// uuids of the other entities.
const purchaseOrderPrefix = "PO-"

// Ledger is the in-memory supply-chain store: suppliers, purchase orders
// and the append-only movement ledger. Like Inventory, mutations are
// copy-on-write under a single mutex.
type Ledger struct {
	mu        sync.RWMutex
	suppliers []domain.Supplier
	orders    []domain.PurchaseOrder
	movements []domain.StockMovement
	nextOrder int
	logger    *slog.Logger
}

// Statically assert that *Ledger implements the SupplierLedger port.
var _ ports.SupplierLedger = (*Ledger)(nil)

// LedgerSeed holds the initial collections for a Ledger.
type LedgerSeed struct {
	Suppliers      []domain.Supplier
	PurchaseOrders []domain.PurchaseOrder
	Movements      []domain.StockMovement
}

// NewLedger creates a supply-chain store seeded with the given collections.
// The order-id sequence resumes after the highest numeric suffix present in
// the seeded orders.
func NewLedger(seed LedgerSeed, logger *slog.Logger) *Ledger {
	l := &Ledger{
		suppliers: append([]domain.Supplier(nil), seed.Suppliers...),
		orders:    append([]domain.PurchaseOrder(nil), seed.PurchaseOrders...),
		movements: append([]domain.StockMovement(nil), seed.Movements...),
		nextOrder: 1,
		logger:    logger.With(slog.String("service", "supplier_ledger")),
	}
	for _, po := range l.orders {
		if n, ok := parseOrderNumber(po.ID); ok && n >= l.nextOrder {
			l.nextOrder = n + 1
		}
	}
	return l
}

func parseOrderNumber(id string) (int, bool) {
	raw, found := strings.CutPrefix(id, purchaseOrderPrefix)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// AddSupplier validates the input and appends a new supplier with zeroed
// order counters.
func (l *Ledger) AddSupplier(ctx context.Context, input domain.SupplierInput) (domain.Supplier, error) {
	if err := input.Validate(); err != nil {
		return domain.Supplier{}, fmt.Errorf("add supplier: %w", err)
	}

	supplier := domain.NewSupplier(input)

	l.mu.Lock()
	next := make([]domain.Supplier, len(l.suppliers), len(l.suppliers)+1)
	copy(next, l.suppliers)
	l.suppliers = append(next, supplier)
	l.mu.Unlock()

	l.logger.InfoContext(ctx, "added supplier",
		slog.String("id", supplier.ID),
		slog.String("company", supplier.Company))

	return supplier, nil
}

// UpdateSupplier merges the populated fields into the supplier with the
// given id.
func (l *Ledger) UpdateSupplier(ctx context.Context, id string, update domain.SupplierUpdate) (domain.Supplier, error) {
	if err := update.Validate(); err != nil {
		return domain.Supplier{}, fmt.Errorf("update supplier: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.suppliers {
		if l.suppliers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Supplier{}, domain.NewNotFoundError("supplier", id)
	}

	updated := update.Apply(l.suppliers[idx])
	next := make([]domain.Supplier, len(l.suppliers))
	copy(next, l.suppliers)
	next[idx] = updated
	l.suppliers = next

	l.logger.InfoContext(ctx, "updated supplier", slog.String("id", id))
	return updated, nil
}

// DeleteSupplier removes the supplier with the given id. Purchase orders
// referencing it keep their supplier id and dangle from then on.
func (l *Ledger) DeleteSupplier(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.suppliers {
		if l.suppliers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.NewNotFoundError("supplier", id)
	}

	next := make([]domain.Supplier, 0, len(l.suppliers)-1)
	next = append(next, l.suppliers[:idx]...)
	next = append(next, l.suppliers[idx+1:]...)
	l.suppliers = next

	l.logger.InfoContext(ctx, "deleted supplier", slog.String("id", id))
	return nil
}

// GetSupplier returns the supplier with the given id.
func (l *Ledger) GetSupplier(_ context.Context, id string) (domain.Supplier, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.suppliers {
		if l.suppliers[i].ID == id {
			return l.suppliers[i], nil
		}
	}
	return domain.Supplier{}, domain.NewNotFoundError("supplier", id)
}

// ListSuppliers returns a snapshot of all suppliers in insertion order.
func (l *Ledger) ListSuppliers(_ context.Context) []domain.Supplier {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Supplier, len(l.suppliers))
	copy(out, l.suppliers)
	return out
}

// AddPurchaseOrder validates the input, mints the next PO-%04d id and
// appends a pending order. The supplier reference is not checked; dangling
// supplier ids are permitted by design.
func (l *Ledger) AddPurchaseOrder(ctx context.Context, input domain.PurchaseOrderInput) (domain.PurchaseOrder, error) {
	if err := input.Validate(); err != nil {
		return domain.PurchaseOrder{}, fmt.Errorf("add purchase order: %w", err)
	}

	l.mu.Lock()
	id := fmt.Sprintf("%s%04d", purchaseOrderPrefix, l.nextOrder)
	l.nextOrder++
	order := domain.NewPurchaseOrder(id, input)
	next := make([]domain.PurchaseOrder, len(l.orders), len(l.orders)+1)
	copy(next, l.orders)
	l.orders = append(next, order)
	l.mu.Unlock()

	l.logger.InfoContext(ctx, "added purchase order",
		slog.String("id", order.ID),
		slog.String("supplier_id", order.SupplierID),
		slog.Int("items", len(order.Items)),
		slog.String("total_amount", order.TotalAmount.String()))

	return order, nil
}

// UpdatePurchaseOrder merges the populated fields into the order with the
// given id. Received and cancelled are terminal: any status change away
// from them is rejected with a typed error.
func (l *Ledger) UpdatePurchaseOrder(ctx context.Context, id string, update domain.PurchaseOrderUpdate) (domain.PurchaseOrder, error) {
	if err := update.Validate(); err != nil {
		return domain.PurchaseOrder{}, fmt.Errorf("update purchase order: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.orders {
		if l.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.PurchaseOrder{}, domain.NewNotFoundError("purchase order", id)
	}

	current := l.orders[idx]
	if update.Status != nil && !current.Status.CanTransition(*update.Status) {
		return domain.PurchaseOrder{}, &domain.InvalidTransitionError{
			OrderID: id,
			From:    current.Status,
			To:      *update.Status,
		}
	}

	updated := update.Apply(current)
	next := make([]domain.PurchaseOrder, len(l.orders))
	copy(next, l.orders)
	next[idx] = updated
	l.orders = next

	l.logger.InfoContext(ctx, "updated purchase order",
		slog.String("id", id),
		slog.String("status", string(updated.Status)))

	return updated, nil
}

// GetPurchaseOrder returns the order with the given id.
func (l *Ledger) GetPurchaseOrder(_ context.Context, id string) (domain.PurchaseOrder, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			return l.orders[i], nil
		}
	}
	return domain.PurchaseOrder{}, domain.NewNotFoundError("purchase order", id)
}

// ListPurchaseOrders returns a snapshot of all orders in insertion order.
func (l *Ledger) ListPurchaseOrders(_ context.Context) []domain.PurchaseOrder {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.PurchaseOrder, len(l.orders))
	copy(out, l.orders)
	return out
}

// AddStockMovement validates the input and appends to the movement ledger.
// The ledger is append-only: there is no update or delete for movements,
// and recording one does not touch the catalog quantity.
func (l *Ledger) AddStockMovement(ctx context.Context, input domain.MovementInput) (domain.StockMovement, error) {
	if err := input.Validate(); err != nil {
		return domain.StockMovement{}, fmt.Errorf("add stock movement: %w", err)
	}

	movement := domain.NewStockMovement(input)

	l.mu.Lock()
	next := make([]domain.StockMovement, len(l.movements), len(l.movements)+1)
	copy(next, l.movements)
	l.movements = append(next, movement)
	l.mu.Unlock()

	l.logger.InfoContext(ctx, "recorded stock movement",
		slog.String("id", movement.ID),
		slog.String("product_id", movement.ProductID),
		slog.String("type", string(movement.Type)),
		slog.Int("quantity", movement.Quantity))

	return movement, nil
}

// ListStockMovements returns a snapshot of the movement ledger in
// recording order.
func (l *Ledger) ListStockMovements(_ context.Context) []domain.StockMovement {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.StockMovement, len(l.movements))
	copy(out, l.movements)
	return out
}
