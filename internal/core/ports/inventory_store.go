// internal/core/ports/inventory_store.go
package ports

import (
	"context"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
)

// InventoryStore defines the catalog port. It is implemented by the
// in-memory store in services and consumed by reporting collaborators.
// List and GetByID return copies; callers never share mutable state with
// the store.
type InventoryStore interface {
	Add(ctx context.Context, input domain.PhoneInput) (domain.Phone, error)
	Update(ctx context.Context, id string, update domain.PhoneUpdate) (domain.Phone, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.Phone, error)
	List(ctx context.Context) []domain.Phone
}
