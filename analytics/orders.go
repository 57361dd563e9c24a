package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultTopProducts = 5
	DefaultTopCities   = 6

	OtherCategory = "Other"
	UnknownCity   = "Unknown City"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// money rounds a running decimal sum to paise for the JSON output
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// amount converts a stored money value; NaN and ±Inf contribute nothing
func amount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func lineTotal(item models.CartItem) decimal.Decimal {
	return amount(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// ExcludeCancelled drops cancelled orders. Revenue, category, product, geo
// and trend aggregates go through it; listings and raw counts do not.
func ExcludeCancelled(orders []models.Order) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !o.IsCancelled() {
			out = append(out, o)
		}
	}
	return out
}

// ComputeTotals derives the headline numbers. TotalOrders counts every
// order given, revenue only the non-cancelled ones.
func ComputeTotals(orders []models.Order) models.OrderTotals {
	var totals models.OrderTotals
	if len(orders) == 0 {
		return totals
	}

	revenue := decimal.Zero
	phones := make(map[string]struct{})
	delivered := 0

	for _, o := range orders {
		if !o.IsCancelled() {
			revenue = revenue.Add(amount(o.GrandTotal))
		}
		if o.Status == models.OrderStatusDelivered {
			delivered++
		}
		if p := strings.TrimSpace(o.AddressInfo.PhoneNumber); p != "" {
			phones[p] = struct{}{}
		}
	}

	n := decimal.NewFromInt(int64(len(orders)))
	totals.TotalRevenue = money(revenue)
	totals.TotalOrders = len(orders)
	totals.AvgOrderValue = money(revenue.Div(n))
	totals.UniqueCustomers = len(phones)
	totals.CompletionRate = decimal.NewFromInt(int64(delivered)).Div(n).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	return totals
}

// ComputeCategoryBreakdown sums price x quantity per category over
// non-cancelled orders. A blank category lands in "Other".
func ComputeCategoryBreakdown(orders []models.Order) map[string]float64 {
	sums := make(map[string]decimal.Decimal)
	for _, o := range orders {
		if o.IsCancelled() {
			continue
		}
		for _, item := range o.CartItems {
			category := strings.TrimSpace(item.Category)
			if category == "" {
				category = OtherCategory
			}
			sums[category] = sums[category].Add(lineTotal(item))
		}
	}

	out := make(map[string]float64, len(sums))
	for category, sum := range sums {
		out[category] = money(sum)
	}
	return out
}

// CategoryRevenueList is the breakdown as a list sorted by revenue, for exports
func CategoryRevenueList(breakdown map[string]float64) []models.CategoryRevenue {
	out := make([]models.CategoryRevenue, 0, len(breakdown))
	for category, revenue := range breakdown {
		out = append(out, models.CategoryRevenue{Category: category, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ComputeDailyTrend buckets non-cancelled orders by calendar day in loc.
// Orders without a parseable date are left out.
func ComputeDailyTrend(orders []models.Order, loc *time.Location) []models.DailyTrendPoint {
	if loc == nil {
		loc = time.Local
	}

	type bucket struct {
		revenue decimal.Decimal
		count   int
	}
	days := make(map[string]*bucket)

	for _, o := range orders {
		if o.IsCancelled() {
			continue
		}
		t, ok := EffectiveDate(o, loc)
		if !ok {
			continue
		}
		key := t.In(loc).Format("2006-01-02")
		b, exists := days[key]
		if !exists {
			b = &bucket{}
			days[key] = b
		}
		b.revenue = b.revenue.Add(amount(o.GrandTotal))
		b.count++
	}

	trend := make([]models.DailyTrendPoint, 0, len(days))
	for date, b := range days {
		trend = append(trend, models.DailyTrendPoint{
			Date:       date,
			Revenue:    money(b.revenue),
			OrderCount: b.count,
		})
	}
	// ISO dates sort lexically
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

// ComputeTopProducts ranks product titles by units sold across
// non-cancelled orders. Ties keep first-encountered order.
func ComputeTopProducts(orders []models.Order, n int) []models.TopProduct {
	if n <= 0 {
		n = DefaultTopProducts
	}

	index := make(map[string]int)
	var ranked []models.TopProduct

	for _, o := range orders {
		if o.IsCancelled() {
			continue
		}
		for _, item := range o.CartItems {
			name := item.ProductName()
			if name == "" {
				continue
			}
			i, seen := index[name]
			if !seen {
				i = len(ranked)
				index[name] = i
				ranked = append(ranked, models.TopProduct{ProductName: name})
			}
			ranked[i].UnitsSold += item.Quantity
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].UnitsSold > ranked[j].UnitsSold })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = []models.TopProduct{}
	}
	return ranked
}

// ComputeGeoBreakdown ranks cities by grand total across non-cancelled
// orders. Orders without a city count towards "Unknown City".
func ComputeGeoBreakdown(orders []models.Order, n int) []models.CityRevenue {
	if n <= 0 {
		n = DefaultTopCities
	}

	index := make(map[string]int)
	var sums []decimal.Decimal
	var cities []models.CityRevenue

	for _, o := range orders {
		if o.IsCancelled() {
			continue
		}
		city := strings.TrimSpace(o.AddressInfo.City)
		defaulted := city == ""
		if defaulted {
			city = UnknownCity
		}
		i, seen := index[city]
		if !seen {
			i = len(cities)
			index[city] = i
			cities = append(cities, models.CityRevenue{City: city, CityDefaulted: defaulted})
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(amount(o.GrandTotal))
	}

	for i := range cities {
		cities[i].Revenue = money(sums[i])
	}
	sort.SliceStable(cities, func(i, j int) bool { return cities[i].Revenue > cities[j].Revenue })
	if len(cities) > n {
		cities = cities[:n]
	}
	if cities == nil {
		cities = []models.CityRevenue{}
	}
	return cities
}

// ComputeMonthlyRevenue returns the trailing 12 calendar months ending with
// the month of now, zero-filled, oldest first.
func ComputeMonthlyRevenue(orders []models.Order, now time.Time, loc *time.Location) []models.MonthlyRevenueData {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -11, 0)

	sums := make([]decimal.Decimal, 12)
	for _, o := range orders {
		if o.IsCancelled() {
			continue
		}
		t, ok := EffectiveDate(o, loc)
		if !ok {
			continue
		}
		t = t.In(loc)
		idx := (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
		if idx < 0 || idx >= 12 {
			continue
		}
		sums[idx] = sums[idx].Add(amount(o.GrandTotal))
	}

	out := make([]models.MonthlyRevenueData, 0, 12)
	for i := 0; i < 12; i++ {
		m := start.AddDate(0, i, 0)
		out = append(out, models.MonthlyRevenueData{
			Month:       monthNames[int(m.Month())-1],
			MonthNumber: int(m.Month()),
			Year:        m.Year(),
			Revenue:     money(sums[i]),
		})
	}
	return out
}

// ComputeStatusBreakdown counts every order per status, cancelled included
func ComputeStatusBreakdown(orders []models.Order) models.OrderStatsResponse {
	counts := make(map[models.OrderStatus]int, len(models.OrderStatuses))
	for _, o := range orders {
		counts[o.Status]++
	}

	totals := ComputeTotals(orders)
	return models.OrderStatsResponse{
		TotalOrders:    len(orders),
		CompletionRate: totals.CompletionRate,
		Placed:         models.OrderStatsBreakdown{Count: counts[models.OrderStatusPlaced], Description: "Awaiting harvest"},
		Harvested:      models.OrderStatsBreakdown{Count: counts[models.OrderStatusHarvested], Description: "Picked and packed"},
		OutForDelivery: models.OrderStatsBreakdown{Count: counts[models.OrderStatusOutForDelivery], Description: "On the way"},
		Delivered:      models.OrderStatsBreakdown{Count: counts[models.OrderStatusDelivered], Description: "Successfully delivered"},
		Cancelled:      models.OrderStatsBreakdown{Count: counts[models.OrderStatusCancelled], Description: "Cancelled orders"},
	}
}

// SnapshotOptions select the window and ranking sizes for BuildSnapshot
type SnapshotOptions struct {
	Range       *DateRange // nil means every order, dated or not
	Location    *time.Location
	TopProducts int
	TopCities   int
}

// BuildSnapshot runs every order aggregate over one window
func BuildSnapshot(orders []models.Order, opts SnapshotOptions) models.AnalyticsSnapshot {
	var snap models.AnalyticsSnapshot

	inWindow := orders
	if opts.Range != nil {
		inWindow, snap.SkippedOrders = FilterByDateRange(orders, *opts.Range, opts.Location)
		start, end := opts.Range.Start, opts.Range.End
		snap.RangeStart, snap.RangeEnd = &start, &end
	}

	snap.Totals = ComputeTotals(inWindow)
	snap.CategoryBreakdown = ComputeCategoryBreakdown(inWindow)
	snap.DailyTrend = ComputeDailyTrend(inWindow, opts.Location)
	snap.TopProducts = ComputeTopProducts(inWindow, opts.TopProducts)
	snap.GeoBreakdown = ComputeGeoBreakdown(inWindow, opts.TopCities)
	return snap
}
