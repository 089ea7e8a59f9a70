// internal/core/analytics/aggregates.go

// Package analytics computes derived, read-only projections over catalog
// and ledger snapshots. Every function is pure and recomputes from scratch
// on each call; nothing here caches or mutates its input.
package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
)

// DefaultLowStockThreshold is the quantity below which a record counts as
// low stock.
const DefaultLowStockThreshold = 10

// TotalStock returns the sum of quantities across all records.
func TotalStock(records []domain.Phone) int {
	total := 0
	for _, r := range records {
		total += r.Quantity
	}
	return total
}

// TotalValue returns the sum of quantity x price across all records.
func TotalValue(records []domain.Phone) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.StockValue())
	}
	return total
}

// BrandShare is one brand's slice of the total stock.
type BrandShare struct {
	Brand      string `json:"brand"`
	Quantity   int    `json:"quantity"`
	Percentage int    `json:"percentage"`
}

// BrandDistribution sums quantities per brand and computes each brand's
// rounded percentage of the grand total. Brands appear in order of first
// occurrence. Because each percentage is rounded independently, the
// percentages may not sum to exactly 100; that is an accepted property of
// the report, not a defect.
func BrandDistribution(records []domain.Phone) []BrandShare {
	total := TotalStock(records)

	var order []string
	counts := make(map[string]int)
	for _, r := range records {
		if _, seen := counts[r.Brand]; !seen {
			order = append(order, r.Brand)
		}
		counts[r.Brand] += r.Quantity
	}

	shares := make([]BrandShare, 0, len(order))
	for _, brand := range order {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(counts[brand]) / float64(total) * 100))
		}
		shares = append(shares, BrandShare{
			Brand:      brand,
			Quantity:   counts[brand],
			Percentage: pct,
		})
	}
	return shares
}

// LowStock returns the records with quantity below threshold, in input
// order.
func LowStock(records []domain.Phone, threshold int) []domain.Phone {
	var out []domain.Phone
	for _, r := range records {
		if r.Quantity < threshold {
			out = append(out, r)
		}
	}
	return out
}

// OutOfStock returns the records with zero quantity, in input order.
func OutOfStock(records []domain.Phone) []domain.Phone {
	var out []domain.Phone
	for _, r := range records {
		if r.Quantity == 0 {
			out = append(out, r)
		}
	}
	return out
}

// StockLevel classifies a quantity for display.
type StockLevel string

const (
	LevelOutOfStock StockLevel = "Out of Stock"
	LevelLowStock   StockLevel = "Low Stock"
	LevelMedium     StockLevel = "Medium Stock"
	LevelInStock    StockLevel = "In Stock"
)

// StockStatus maps a quantity to its level: 0 is out of stock, 1-9 low,
// 10-19 medium, 20 and above in stock.
func StockStatus(quantity int) StockLevel {
	switch {
	case quantity <= 0:
		return LevelOutOfStock
	case quantity < 10:
		return LevelLowStock
	case quantity < 20:
		return LevelMedium
	default:
		return LevelInStock
	}
}

// Overview is the dashboard headline block.
type Overview struct {
	TotalStock  int             `json:"total_stock"`
	TotalValue  decimal.Decimal `json:"total_value"`
	TotalModels int             `json:"total_models"`
	Brands      int             `json:"brands"`
}

// OverviewStats computes the dashboard headline numbers in one pass.
func OverviewStats(records []domain.Phone) Overview {
	brands := make(map[string]struct{})
	totalStock := 0
	totalValue := decimal.Zero
	for _, r := range records {
		brands[r.Brand] = struct{}{}
		totalStock += r.Quantity
		totalValue = totalValue.Add(r.StockValue())
	}
	return Overview{
		TotalStock:  totalStock,
		TotalValue:  totalValue,
		TotalModels: len(records),
		Brands:      len(brands),
	}
}

// RecentAdditions returns up to limit records ordered by AddedDate
// descending. Ties keep input order.
func RecentAdditions(records []domain.Phone, limit int) []domain.Phone {
	out := make([]domain.Phone, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AddedDate.After(out[j].AddedDate)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Sortable catalog fields.
const (
	SortByBrand      = "brand"
	SortByModelName  = "model_name"
	SortBySeries     = "series"
	SortByLaunchYear = "launch_year"
	SortByPriceRange = "price_range"
	SortByQuantity   = "quantity"
)

// FilterAll disables a brand or OS filter.
const FilterAll = "all"

// Filter selects and orders catalog records for listing views.
type Filter struct {
	Search    string `json:"search,omitempty"`
	Brand     string `json:"brand,omitempty"`
	OS        string `json:"os,omitempty"`
	SortField string `json:"sort_field,omitempty"`
	SortOrder string `json:"sort_order,omitempty"` // asc or desc; asc by default
}

// SortAndFilter applies the filter to a snapshot: search matches
// case-insensitive substrings of brand, model name or series (any of the
// three); brand and OS filters are exact matches unless set to "all" or
// empty; the result is stably sorted on the chosen field, brand by default.
func SortAndFilter(records []domain.Phone, f Filter) []domain.Phone {
	search := strings.ToLower(f.Search)

	var out []domain.Phone
	for _, r := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Brand), search) &&
			!strings.Contains(strings.ToLower(r.ModelName), search) &&
			!strings.Contains(strings.ToLower(r.Series), search) {
			continue
		}
		if f.Brand != "" && f.Brand != FilterAll && r.Brand != f.Brand {
			continue
		}
		if f.OS != "" && f.OS != FilterAll && r.OSPlatform != f.OS {
			continue
		}
		out = append(out, r)
	}

	field := f.SortField
	if field == "" {
		field = SortByBrand
	}
	desc := f.SortOrder == "desc"

	sort.SliceStable(out, func(i, j int) bool {
		less := compareField(out[i], out[j], field)
		if desc {
			return compareField(out[j], out[i], field)
		}
		return less
	})

	return out
}

func compareField(a, b domain.Phone, field string) bool {
	switch field {
	case SortByModelName:
		return a.ModelName < b.ModelName
	case SortBySeries:
		return a.Series < b.Series
	case SortByLaunchYear:
		return a.LaunchYear < b.LaunchYear
	case SortByPriceRange:
		return a.PriceRange.LessThan(b.PriceRange)
	case SortByQuantity:
		return a.Quantity < b.Quantity
	default:
		return a.Brand < b.Brand
	}
}
