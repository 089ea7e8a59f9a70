// internal/core/analytics/valuation.go
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tecmaceducation-Projects/varsha-mobiles-stock-wiz/internal/core/domain"
)

// costRatio approximates acquisition cost as a share of retail value. The
// business runs on a 30% gross margin assumption for valuation reports.
var costRatio = decimal.NewFromFloat(0.7)

// Movement-speed price cutoffs for the stock report: premium handsets turn
// over fast, budget handsets sit.
var (
	FastMovingPriceFloor   = decimal.NewFromInt(50000)
	SlowMovingPriceCeiling = decimal.NewFromInt(20000)
)

// BrandValuation aggregates one brand's stock worth.
type BrandValuation struct {
	Brand     string          `json:"brand"`
	Models    int             `json:"models"`
	Quantity  int             `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
	CostValue decimal.Decimal `json:"cost_value"`
	Profit    decimal.Decimal `json:"profit"`
}

// BrandValuations computes per-brand stock value, estimated cost and
// projected profit. Brands appear in order of first occurrence.
func BrandValuations(records []domain.Phone) []BrandValuation {
	var order []string
	byBrand := make(map[string]*BrandValuation)

	for _, r := range records {
		bv, ok := byBrand[r.Brand]
		if !ok {
			bv = &BrandValuation{
				Brand:     r.Brand,
				Value:     decimal.Zero,
				CostValue: decimal.Zero,
				Profit:    decimal.Zero,
			}
			byBrand[r.Brand] = bv
			order = append(order, r.Brand)
		}
		value := r.StockValue()
		bv.Models++
		bv.Quantity += r.Quantity
		bv.Value = bv.Value.Add(value)
		bv.CostValue = bv.CostValue.Add(value.Mul(costRatio))
		bv.Profit = bv.Profit.Add(value.Sub(value.Mul(costRatio)))
	}

	out := make([]BrandValuation, 0, len(order))
	for _, brand := range order {
		out = append(out, *byBrand[brand])
	}
	return out
}

// PriceBand is a half-open retail price interval [Min, Max). A nil Max
// means unbounded.
type PriceBand struct {
	Name string           `json:"name"`
	Min  decimal.Decimal  `json:"min"`
	Max  *decimal.Decimal `json:"max,omitempty"`
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultPriceBands returns the retail segmentation used by the valuation
// report.
func DefaultPriceBands() []PriceBand {
	return []PriceBand{
		{Name: "Budget", Min: decimal.Zero, Max: bound(20000)},
		{Name: "Mid-range", Min: decimal.NewFromInt(20000), Max: bound(50000)},
		{Name: "Premium", Min: decimal.NewFromInt(50000), Max: bound(100000)},
		{Name: "Flagship", Min: decimal.NewFromInt(100000), Max: nil},
	}
}

// contains reports whether price falls inside the band.
func (b PriceBand) contains(price decimal.Decimal) bool {
	if price.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || price.LessThan(*b.Max)
}

// BandBreakdown is the aggregate for one price band.
type BandBreakdown struct {
	Band       PriceBand       `json:"band"`
	Quantity   int             `json:"quantity"`
	Value      decimal.Decimal `json:"value"`
	Percentage float64         `json:"percentage"`
}

// PriceBandDistribution buckets records into bands by retail price and
// reports each band's share of the total stock value.
func PriceBandDistribution(records []domain.Phone, bands []PriceBand) []BandBreakdown {
	total := TotalValue(records)

	out := make([]BandBreakdown, len(bands))
	for i, band := range bands {
		value := decimal.Zero
		quantity := 0
		for _, r := range records {
			if band.contains(r.PriceRange) {
				value = value.Add(r.StockValue())
				quantity += r.Quantity
			}
		}
		pct := 0.0
		if total.IsPositive() {
			pct, _ = value.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		out[i] = BandBreakdown{Band: band, Quantity: quantity, Value: value, Percentage: pct}
	}
	return out
}

// ModelValue pairs a record with its total stock value and projected
// profit for ranking.
type ModelValue struct {
	Record domain.Phone    `json:"record"`
	Value  decimal.Decimal `json:"value"`
	Profit decimal.Decimal `json:"profit"`
}

// TopModels returns up to limit records ranked by stock value descending.
// Ties keep input order.
func TopModels(records []domain.Phone, limit int) []ModelValue {
	out := make([]ModelValue, 0, len(records))
	for _, r := range records {
		value := r.StockValue()
		out = append(out, ModelValue{
			Record: r,
			Value:  value,
			Profit: value.Sub(value.Mul(costRatio)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ValuationSummary is the headline block of the valuation report.
type ValuationSummary struct {
	TotalValue       decimal.Decimal `json:"total_value"`
	TotalItems       int             `json:"total_items"`
	AverageItemValue decimal.Decimal `json:"average_item_value"`
	CostValue        decimal.Decimal `json:"cost_value"`
	PotentialProfit  decimal.Decimal `json:"potential_profit"`
	ProfitMarginPct  decimal.Decimal `json:"profit_margin_pct"`
}

// Valuation computes the headline valuation numbers. Average item value
// and margin are zero on an empty catalog rather than dividing by zero.
func Valuation(records []domain.Phone) ValuationSummary {
	totalValue := TotalValue(records)
	totalItems := TotalStock(records)

	avg := decimal.Zero
	if totalItems > 0 {
		avg = totalValue.Div(decimal.NewFromInt(int64(totalItems))).Round(2)
	}

	cost := totalValue.Mul(costRatio)
	profit := totalValue.Sub(cost)

	margin := decimal.Zero
	if totalValue.IsPositive() {
		margin = profit.Div(totalValue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return ValuationSummary{
		TotalValue:       totalValue,
		TotalItems:       totalItems,
		AverageItemValue: avg,
		CostValue:        cost,
		PotentialProfit:  profit,
		ProfitMarginPct:  margin,
	}
}

// FastMoving returns records priced above the fast-moving floor, in input
// order.
func FastMoving(records []domain.Phone) []domain.Phone {
	var out []domain.Phone
	for _, r := range records {
		if r.PriceRange.GreaterThan(FastMovingPriceFloor) {
			out = append(out, r)
		}
	}
	return out
}

// SlowMoving returns records priced below the slow-moving ceiling, in
// input order.
func SlowMoving(records []domain.Phone) []domain.Phone {
	var out []domain.Phone
	for _, r := range records {
		if r.PriceRange.LessThan(SlowMovingPriceCeiling) {
			out = append(out, r)
		}
	}
	return out
}

// BrandStat is the per-brand row of the stock report.
type BrandStat struct {
	Brand        string          `json:"brand"`
	Models       int             `json:"models"`
	Quantity     int             `json:"quantity"`
	Value        decimal.Decimal `json:"value"`
	AveragePrice decimal.Decimal `json:"average_price"`
}

// BrandStats computes per-brand model counts, quantities, values and the
// average per-unit price. Brands appear in order of first occurrence.
func BrandStats(records []domain.Phone) []BrandStat {
	var order []string
	byBrand := make(map[string]*BrandStat)

	for _, r := range records {
		st, ok := byBrand[r.Brand]
		if !ok {
			st = &BrandStat{Brand: r.Brand, Value: decimal.Zero}
			byBrand[r.Brand] = st
			order = append(order, r.Brand)
		}
		st.Models++
		st.Quantity += r.Quantity
		st.Value = st.Value.Add(r.StockValue())
	}

	out := make([]BrandStat, 0, len(order))
	for _, brand := range order {
		st := *byBrand[brand]
		if st.Quantity > 0 {
			st.AveragePrice = st.Value.Div(decimal.NewFromInt(int64(st.Quantity))).Round(0)
		} else {
			st.AveragePrice = decimal.Zero
		}
		out = append(out, st)
	}
	return out
}
