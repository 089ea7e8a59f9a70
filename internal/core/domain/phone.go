// internal/core/domain/phone.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OSPlatform values seen in the catalog. Free text is still accepted; these
// exist for callers that want to filter on the common platforms.
const (
	PlatformAndroid = "Android"
	PlatformIOS     = "iOS"
	PlatformKaiOS   = "KaiOS"
)

// DefaultQuantity is applied when a new record does not specify a quantity.
const DefaultQuantity = 1

// EarliestLaunchYear bounds the plausible launch-year range for a catalog
// entry. The upper bound is next calendar year.
const EarliestLaunchYear = 2010

// Phone is one catalog entry: a phone model's stock line.
type Phone struct {
	ID         string          `json:"id"`
	Brand      string          `json:"brand"`
	ModelName  string          `json:"model_name"`
	Series     string          `json:"series,omitempty"`
	LaunchYear int             `json:"launch_year"`
	PriceRange decimal.Decimal `json:"price_range"`
	OSPlatform string          `json:"os_platform"`
	Notes      string          `json:"notes,omitempty"`
	Quantity   int             `json:"quantity"`
	Supplier   string          `json:"supplier,omitempty"`
	AddedDate  time.Time       `json:"added_date"`
}

// PhoneInput carries the caller-supplied fields for creating a record.
// ID and AddedDate are assigned by the store.
type PhoneInput struct {
	Brand      string          `json:"brand" validate:"required"`
	ModelName  string          `json:"model_name" validate:"required"`
	Series     string          `json:"series"`
	LaunchYear int             `json:"launch_year"`
	PriceRange decimal.Decimal `json:"price_range"`
	OSPlatform string          `json:"os_platform"`
	Notes      string          `json:"notes"`
	Quantity   *int            `json:"quantity" validate:"omitempty,min=0"`
	Supplier   string          `json:"supplier"`
}

// Validate checks the input against the catalog invariants.
func (in *PhoneInput) Validate() error {
	if err := checkStruct(in); err != nil {
		return err
	}
	if in.PriceRange.IsNegative() {
		return NewValidationError("price_range", "cannot be negative")
	}
	if in.LaunchYear != 0 {
		if in.LaunchYear < EarliestLaunchYear || in.LaunchYear > time.Now().Year()+1 {
			return NewValidationError("launch_year", "is outside the plausible range")
		}
	}
	return nil
}

// NewPhone materializes a Phone from validated input, assigning a fresh id
// and stamping AddedDate with today's date. Quantity defaults to
// DefaultQuantity when unspecified.
func NewPhone(in PhoneInput) Phone {
	qty := DefaultQuantity
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	return Phone{
		ID:         uuid.NewString(),
		Brand:      in.Brand,
		ModelName:  in.ModelName,
		Series:     in.Series,
		LaunchYear: in.LaunchYear,
		PriceRange: in.PriceRange,
		OSPlatform: in.OSPlatform,
		Notes:      in.Notes,
		Quantity:   qty,
		Supplier:   in.Supplier,
		AddedDate:  Today(),
	}
}

// PhoneUpdate holds a partial update; nil fields are left untouched.
// ID and AddedDate are immutable and therefore absent here.
type PhoneUpdate struct {
	Brand      *string          `json:"brand,omitempty"`
	ModelName  *string          `json:"model_name,omitempty"`
	Series     *string          `json:"series,omitempty"`
	LaunchYear *int             `json:"launch_year,omitempty"`
	PriceRange *decimal.Decimal `json:"price_range,omitempty"`
	OSPlatform *string          `json:"os_platform,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	Quantity   *int             `json:"quantity,omitempty"`
	Supplier   *string          `json:"supplier,omitempty"`
}

// Validate checks the populated fields of a partial update.
func (u *PhoneUpdate) Validate() error {
	if u.Brand != nil && *u.Brand == "" {
		return NewValidationError("brand", "is required")
	}
	if u.ModelName != nil && *u.ModelName == "" {
		return NewValidationError("model_name", "is required")
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		return NewValidationError("quantity", "cannot be negative")
	}
	if u.PriceRange != nil && u.PriceRange.IsNegative() {
		return NewValidationError("price_range", "cannot be negative")
	}
	if u.LaunchYear != nil && *u.LaunchYear != 0 {
		if *u.LaunchYear < EarliestLaunchYear || *u.LaunchYear > time.Now().Year()+1 {
			return NewValidationError("launch_year", "is outside the plausible range")
		}
	}
	return nil
}

// Apply merges the populated fields into a copy of p, preserving ID and
// AddedDate.
func (u *PhoneUpdate) Apply(p Phone) Phone {
	if u.Brand != nil {
		p.Brand = *u.Brand
	}
	if u.ModelName != nil {
		p.ModelName = *u.ModelName
	}
	if u.Series != nil {
		p.Series = *u.Series
	}
	if u.LaunchYear != nil {
		p.LaunchYear = *u.LaunchYear
	}
	if u.PriceRange != nil {
		p.PriceRange = *u.PriceRange
	}
	if u.OSPlatform != nil {
		p.OSPlatform = *u.OSPlatform
	}
	if u.Notes != nil {
		p.Notes = *u.Notes
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.Supplier != nil {
		p.Supplier = *u.Supplier
	}
	return p
}

// StockValue returns quantity x unit price for this record.
func (p Phone) StockValue() decimal.Decimal {
	return p.PriceRange.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Today returns the current date truncated to midnight UTC. Catalog and
// ledger dates are day-granular.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
