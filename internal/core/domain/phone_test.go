// internal/core/domain/phone_test.go
package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
)

func intPtr(v int) *int { return &v }

func TestPhoneInput_Validate(t *testing.T) {
	valid := func() domain.PhoneInput {
		return domain.PhoneInput{
			Brand:      "Samsung",
			ModelName:  "Galaxy S24",
			LaunchYear: 2024,
			PriceRange: decimal.NewFromInt(80000),
			OSPlatform: domain.PlatformAndroid,
		}
	}

	tests := []struct {
		name          string
		mutate        func(*domain.PhoneInput)
		expectedError bool
		errorContains string
	}{
		{
			name:   "valid_input",
			mutate: func(in *domain.PhoneInput) {},
		},
		{
			name:          "missing_brand",
			mutate:        func(in *domain.PhoneInput) { in.Brand = "" },
			expectedError: true,
			errorContains: "brand",
		},
		{
			name:          "missing_model_name",
			mutate:        func(in *domain.PhoneInput) { in.ModelName = "" },
			expectedError: true,
			errorContains: "model_name",
		},
		{
			name:          "negative_price",
			mutate:        func(in *domain.PhoneInput) { in.PriceRange = decimal.NewFromInt(-1) },
			expectedError: true,
			errorContains: "price_range",
		},
		{
			name:          "negative_quantity",
			mutate:        func(in *domain.PhoneInput) { in.Quantity = intPtr(-5) },
			expectedError: true,
			errorContains: "quantity",
		},
		{
			name:   "zero_quantity_allowed",
			mutate: func(in *domain.PhoneInput) { in.Quantity = intPtr(0) },
		},
		{
			name:          "launch_year_too_early",
			mutate:        func(in *domain.PhoneInput) { in.LaunchYear = 2005 },
			expectedError: true,
			errorContains: "launch_year",
		},
		{
			name:          "launch_year_too_late",
			mutate:        func(in *domain.PhoneInput) { in.LaunchYear = time.Now().Year() + 2 },
			expectedError: true,
			errorContains: "launch_year",
		},
		{
			name:   "zero_launch_year_allowed",
			mutate: func(in *domain.PhoneInput) { in.LaunchYear = 0 },
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

func TestNewPhone(t *testing.T) {
	t.Run("assigns_id_and_added_date", func(t *testing.T) {
		in := domain.PhoneInput{
			Brand:      "Apple",
			ModelName:  "iPhone 15",
			PriceRange: decimal.NewFromInt(80000),
			Quantity:   intPtr(20),
		}

		phone := domain.NewPhone(in)

		assert.NotEmpty(t, phone.ID)
		assert.Equal(t, domain.Today(), phone.AddedDate)
		assert.Equal(t, 20, phone.Quantity)
	})

	t.Run("defaults_quantity_when_unspecified", func(t *testing.T) {
		phone := domain.NewPhone(domain.PhoneInput{
			Brand:     "Apple",
			ModelName: "iPhone 15",
		})

		assert.Equal(t, domain.DefaultQuantity, phone.Quantity)
	})

	t.Run("assigns_distinct_ids", func(t *testing.T) {
		in := domain.PhoneInput{Brand: "Apple", ModelName: "iPhone 15"}

		first := domain.NewPhone(in)
		second := domain.NewPhone(in)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestPhoneUpdate_Apply(t *testing.T) {
	base := domain.Phone{
		ID:         "fixed-id",
		Brand:      "Samsung",
		ModelName:  "Galaxy S23",
		Series:     "Galaxy S",
		LaunchYear: 2023,
		PriceRange: decimal.NewFromInt(80000),
		OSPlatform: domain.PlatformAndroid,
		Quantity:   25,
		AddedDate:  time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("merges_only_populated_fields", func(t *testing.T) {
		qty := 5
		price := decimal.NewFromInt(70000)
		update := domain.PhoneUpdate{
			Quantity:   &qty,
			PriceRange: &price,
		}

		updated := update.Apply(base)

		assert.Equal(t, 5, updated.Quantity)
		assert.True(t, price.Equal(updated.PriceRange))
		assert.Equal(t, base.Brand, updated.Brand)
		assert.Equal(t, base.ModelName, updated.ModelName)
	})

	t.Run("preserves_id_and_added_date", func(t *testing.T) {
		brand := "Apple"
		update := domain.PhoneUpdate{Brand: &brand}

		updated := update.Apply(base)

		assert.Equal(t, base.ID, updated.ID)
		assert.Equal(t, base.AddedDate, updated.AddedDate)
	})

	t.Run("empty_update_is_a_noop", func(t *testing.T) {
		updated := (&domain.PhoneUpdate{}).Apply(base)

		assert.Equal(t, base, updated)
	})
}

func TestPhoneUpdate_Validate(t *testing.T) {
	tests := []struct {
		name          string
		update        domain.PhoneUpdate
		expectedError bool
	}{
		{
			name:   "empty_update_is_valid",
			update: domain.PhoneUpdate{},
		},
		{
			name: "empty_brand_rejected",
			update: func() domain.PhoneUpdate {
				empty := ""
				return domain.PhoneUpdate{Brand: &empty}
			}(),
			expectedError: true,
		},
		{
			name: "empty_model_name_rejected",
			update: func() domain.PhoneUpdate {
				empty := ""
				return domain.PhoneUpdate{ModelName: &empty}
			}(),
			expectedError: true,
		},
		{
			name:          "negative_quantity_rejected",
			update:        domain.PhoneUpdate{Quantity: intPtr(-1)},
			expectedError: true,
		},
		{
			name: "negative_price_rejected",
			update: func() domain.PhoneUpdate {
				neg := decimal.NewFromInt(-100)
				return domain.PhoneUpdate{PriceRange: &neg}
			}(),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()

			if tt.expectedError {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPhone_StockValue(t *testing.T) {
	phone := domain.Phone{
		PriceRange: decimal.NewFromInt(35000),
		Quantity:   4,
	}

	assert.True(t, decimal.NewFromInt(140000).Equal(phone.StockValue()))
}
