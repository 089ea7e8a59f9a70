// internal/core/domain/supplier.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier is a distributor contact record. TotalOrders and TotalValue are
// stored counters, not derived from the purchase-order ledger; the
// SupplierPerformance aggregate recomputes the ledger view when needed.
type Supplier struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Company     string          `json:"company"`
	Contact     string          `json:"contact"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	AddedDate   time.Time       `json:"added_date"`
	TotalOrders int             `json:"total_orders"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

// SupplierInput carries the caller-supplied fields for a new supplier.
// Counters start at zero; id and AddedDate are assigned by the ledger.
type SupplierInput struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company" validate:"required"`
	Contact string `json:"contact"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

// Validate checks the supplier input shape.
func (in *SupplierInput) Validate() error {
	return checkStruct(in)
}

// NewSupplier materializes a Supplier from validated input.
func NewSupplier(in SupplierInput) Supplier {
	return Supplier{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Company:     in.Company,
		Contact:     in.Contact,
		Email:       in.Email,
		Address:     in.Address,
		AddedDate:   Today(),
		TotalOrders: 0,
		TotalValue:  decimal.Zero,
	}
}

// SupplierUpdate holds a partial supplier update; nil fields are untouched.
type SupplierUpdate struct {
	Name        *string          `json:"name,omitempty"`
	Company     *string          `json:"company,omitempty"`
	Contact     *string          `json:"contact,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Address     *string          `json:"address,omitempty"`
	TotalOrders *int             `json:"total_orders,omitempty"`
	TotalValue  *decimal.Decimal `json:"total_value,omitempty"`
}

// Validate checks the populated fields of a partial supplier update.
func (u *SupplierUpdate) Validate() error {
	if u.Name != nil && *u.Name == "" {
		return NewValidationError("name", "is required")
	}
	if u.Company != nil && *u.Company == "" {
		return NewValidationError("company", "is required")
	}
	if u.TotalOrders != nil && *u.TotalOrders < 0 {
		return NewValidationError("total_orders", "cannot be negative")
	}
	if u.TotalValue != nil && u.TotalValue.IsNegative() {
		return NewValidationError("total_value", "cannot be negative")
	}
	return nil
}

// Apply merges the populated fields into a copy of s, preserving ID and
// AddedDate.
func (u *SupplierUpdate) Apply(s Supplier) Supplier {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Company != nil {
		s.Company = *u.Company
	}
	if u.Contact != nil {
		s.Contact = *u.Contact
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Address != nil {
		s.Address = *u.Address
	}
	if u.TotalOrders != nil {
		s.TotalOrders = *u.TotalOrders
	}
	if u.TotalValue != nil {
		s.TotalValue = *u.TotalValue
	}
	return s
}

// OrderStatus is the purchase-order lifecycle state.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderReceived  OrderStatus = "received"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a recognized status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderReceived, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderReceived || s == OrderCancelled
}

// CanTransition reports whether an order in status s may move to next.
// Only pending -> received and pending -> cancelled are allowed.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	return s == OrderPending && next.Valid()
}

// OrderItem is one line of a purchase order. Brand and Model are free-text
// labels, not foreign keys into the catalog.
type OrderItem struct {
	Brand     string          `json:"brand" validate:"required"`
	Model     string          `json:"model" validate:"required"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal returns quantity x unit price for this line.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PurchaseOrder is an order placed against a supplier. SupplierID is a weak
// reference: it may dangle if the supplier was deleted. TotalAmount is fixed
// at creation and deliberately not recomputed when items are edited later.
type PurchaseOrder struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplier_id"`
	OrderDate    time.Time       `json:"order_date"`
	ExpectedDate time.Time       `json:"expected_date"`
	Status       OrderStatus     `json:"status"`
	Items        []OrderItem     `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// PurchaseOrderInput carries the caller-supplied fields for a new order.
// The ledger assigns the id, forces status to pending and computes
// TotalAmount as the sum of the line totals.
type PurchaseOrderInput struct {
	SupplierID   string      `json:"supplier_id" validate:"required"`
	OrderDate    time.Time   `json:"order_date"`
	ExpectedDate time.Time   `json:"expected_date"`
	Items        []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// Validate checks the order input shape and every line item.
func (in *PurchaseOrderInput) Validate() error {
	if err := checkStruct(in); err != nil {
		return err
	}
	for _, item := range in.Items {
		if item.UnitPrice.IsNegative() {
			return NewValidationError("unit_price", "cannot be negative")
		}
	}
	return nil
}

// NewPurchaseOrder materializes a pending order from validated input.
// The human-scannable id is minted by the ledger, not here.
func NewPurchaseOrder(id string, in PurchaseOrderInput) PurchaseOrder {
	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = Today()
	}
	total := decimal.Zero
	items := make([]OrderItem, len(in.Items))
	copy(items, in.Items)
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return PurchaseOrder{
		ID:           id,
		SupplierID:   in.SupplierID,
		OrderDate:    orderDate,
		ExpectedDate: in.ExpectedDate,
		Status:       OrderPending,
		Items:        items,
		TotalAmount:  total,
	}
}

// PurchaseOrderUpdate holds a partial order update. Editing Items does not
// recompute TotalAmount; callers that want both in sync must set both.
type PurchaseOrderUpdate struct {
	SupplierID   *string          `json:"supplier_id,omitempty"`
	OrderDate    *time.Time       `json:"order_date,omitempty"`
	ExpectedDate *time.Time       `json:"expected_date,omitempty"`
	Status       *OrderStatus     `json:"status,omitempty"`
	Items        []OrderItem      `json:"items,omitempty"`
	TotalAmount  *decimal.Decimal `json:"total_amount,omitempty"`
}

// Validate checks the populated fields of a partial order update.
func (u *PurchaseOrderUpdate) Validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return NewValidationError("status", "must be one of [pending received cancelled]")
	}
	for _, item := range u.Items {
		if item.Brand == "" || item.Model == "" {
			return NewValidationError("items", "brand and model are required")
		}
		if item.Quantity <= 0 {
			return NewValidationError("items", "quantity must be greater than 0")
		}
		if item.UnitPrice.IsNegative() {
			return NewValidationError("items", "unit price cannot be negative")
		}
	}
	if u.TotalAmount != nil && u.TotalAmount.IsNegative() {
		return NewValidationError("total_amount", "cannot be negative")
	}
	return nil
}

// Apply merges the populated fields into a copy of po. Status transitions
// are checked by the ledger before Apply is called.
func (u *PurchaseOrderUpdate) Apply(po PurchaseOrder) PurchaseOrder {
	if u.SupplierID != nil {
		po.SupplierID = *u.SupplierID
	}
	if u.OrderDate != nil {
		po.OrderDate = *u.OrderDate
	}
	if u.ExpectedDate != nil {
		po.ExpectedDate = *u.ExpectedDate
	}
	if u.Status != nil {
		po.Status = *u.Status
	}
	if u.Items != nil {
		items := make([]OrderItem, len(u.Items))
		copy(items, u.Items)
		po.Items = items
	}
	if u.TotalAmount != nil {
		po.TotalAmount = *u.TotalAmount
	}
	return po
}

// MovementType marks the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// Valid reports whether t is a recognized movement type.
func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// StockMovement is one entry in the append-only movement ledger. ProductID
// is a weak reference into the catalog and may dangle. Recording a movement
// does not adjust the referenced record's quantity; the two are tracked
// independently.
type StockMovement struct {
	ID        string       `json:"id"`
	ProductID string       `json:"product_id"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Date      time.Time    `json:"date"`
	Reason    string       `json:"reason"`
	Reference string       `json:"reference,omitempty"`
}

// MovementInput carries the caller-supplied fields for a new movement.
type MovementInput struct {
	ProductID string       `json:"product_id" validate:"required"`
	Type      MovementType `json:"type" validate:"required,oneof=in out"`
	Quantity  int          `json:"quantity" validate:"gt=0"`
	Date      time.Time    `json:"date"`
	Reason    string       `json:"reason" validate:"required"`
	Reference string       `json:"reference"`
}

// Validate checks the movement input shape.
func (in *MovementInput) Validate() error {
	return checkStruct(in)
}

// NewStockMovement materializes a movement from validated input. Date
// defaults to today when unset.
func NewStockMovement(in MovementInput) StockMovement {
	date := in.Date
	if date.IsZero() {
		date = Today()
	}
	return StockMovement{
		ID:        uuid.NewString(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Date:      date,
		Reason:    in.Reason,
		Reference: in.Reference,
	}
}
