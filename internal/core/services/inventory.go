// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/ports"
)

// Inventory is the in-memory catalog store. Every mutation replaces the
// collection with a fresh snapshot, so slices handed out by List are never
// observed mid-update. A single mutex serializes writers.
type Inventory struct {
	mu      sync.RWMutex
	records []domain.Phone
	logger  *slog.Logger
}

// Statically assert that *Inventory implements the InventoryStore port.
var _ ports.InventoryStore = (*Inventory)(nil)

// NewInventory creates a catalog store seeded with the given records.
// The seed slice is copied; callers keep ownership of their slice.
func NewInventory(seed []domain.Phone, logger *slog.Logger) *Inventory {
	records := make([]domain.Phone, len(seed))
	copy(records, seed)
	return &Inventory{
		records: records,
		logger:  logger.With(slog.String("service", "inventory")),
	}
}

// Add validates the input, assigns a fresh id and today's date, and appends
// the record. It returns the stored record.
func (s *Inventory) Add(ctx context.Context, input domain.PhoneInput) (domain.Phone, error) {
	if err := input.Validate(); err != nil {
		return domain.Phone{}, fmt.Errorf("add phone record: %w", err)
	}

	record := domain.NewPhone(input)

	s.mu.Lock()
	next := make([]domain.Phone, len(s.records), len(s.records)+1)
	copy(next, s.records)
	s.records = append(next, record)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "added phone record",
		slog.String("id", record.ID),
		slog.String("brand", record.Brand),
		slog.String("model", record.ModelName),
		slog.Int("quantity", record.Quantity))

	return record, nil
}

// Update merges the populated fields of update into the record with the
// given id, preserving id and AddedDate. A missing id is a typed NotFound.
func (s *Inventory) Update(ctx context.Context, id string, update domain.PhoneUpdate) (domain.Phone, error) {
	if err := update.Validate(); err != nil {
		return domain.Phone{}, fmt.Errorf("update phone record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.records {
		if s.records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Phone{}, domain.NewNotFoundError("phone record", id)
	}

	updated := update.Apply(s.records[idx])
	next := make([]domain.Phone, len(s.records))
	copy(next, s.records)
	next[idx] = updated
	s.records = next

	s.logger.InfoContext(ctx, "updated phone record", slog.String("id", id))
	return updated, nil
}

// Delete removes the record with the given id. Hard delete, no tombstone.
func (s *Inventory) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.records {
		if s.records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.NewNotFoundError("phone record", id)
	}

	next := make([]domain.Phone, 0, len(s.records)-1)
	next = append(next, s.records[:idx]...)
	next = append(next, s.records[idx+1:]...)
	s.records = next

	s.logger.InfoContext(ctx, "deleted phone record", slog.String("id", id))
	return nil
}

// GetByID returns the record with the given id.
func (s *Inventory) GetByID(_ context.Context, id string) (domain.Phone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].ID == id {
			return s.records[i], nil
		}
	}
	return domain.Phone{}, domain.NewNotFoundError("phone record", id)
}

// List returns a snapshot of the full collection in insertion order.
func (s *Inventory) List(_ context.Context) []domain.Phone {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Phone, len(s.records))
	copy(out, s.records)
	return out
}
