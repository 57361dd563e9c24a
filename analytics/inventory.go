package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/shopspring/decimal"
)

// DefaultProductCategory is assumed for line items that carry no category
const DefaultProductCategory = "vegetables"

// ProductDateFilter selects the orders rolled into product statistics
type ProductDateFilter struct {
	Kind  string // today, yesterday, all, custom
	Start time.Time
	End   time.Time
}

const (
	FilterToday     = "today"
	FilterYesterday = "yesterday"
	FilterAll       = "all"
	FilterCustom    = "custom"
)

// Range resolves the filter to a window; ok is false for "all"
func (f ProductDateFilter) Range(now time.Time, loc *time.Location) (DateRange, bool, error) {
	if loc == nil {
		loc = time.Local
	}
	switch f.Kind {
	case FilterAll, "":
		return DateRange{}, false, nil
	case FilterToday:
		return ExplicitRange(now, now, loc), true, nil
	case FilterYesterday:
		y := now.In(loc).AddDate(0, 0, -1)
		return ExplicitRange(y, y, loc), true, nil
	case FilterCustom:
		if f.Start.IsZero() || f.End.IsZero() {
			return DateRange{}, false, fmt.Errorf("custom filter needs both start and end")
		}
		return ExplicitRange(f.Start, f.End, loc), true, nil
	}
	return DateRange{}, false, fmt.Errorf("unknown date filter %q", f.Kind)
}

type productKey struct {
	name     string
	category string
}

// AggregateProductStats rolls non-cancelled line items into per-product
// totals keyed by (title, category), so identically named products in
// different categories stay apart. Result is ordered by quantity, ties in
// first-seen order.
func AggregateProductStats(orders []models.Order, filter ProductDateFilter, now time.Time, loc *time.Location) ([]models.ProductStat, error) {
	r, bounded, err := filter.Range(now, loc)
	if err != nil {
		return nil, err
	}

	index := make(map[productKey]int)
	var stats []models.ProductStat
	var revenue []decimal.Decimal

	for _, o := range ExcludeCancelled(orders) {
		at, dated := EffectiveDate(o, loc)
		if bounded && (!dated || !r.Contains(at)) {
			continue
		}

		// an order listing the same product twice still counts once
		counted := make(map[int]bool, len(o.CartItems))
		for _, item := range o.CartItems {
			name := item.ProductName()
			if name == "" {
				continue
			}
			category := strings.TrimSpace(item.Category)
			defaulted := category == ""
			if defaulted {
				category = DefaultProductCategory
			}

			key := productKey{name: name, category: category}
			i, seen := index[key]
			if !seen {
				i = len(stats)
				index[key] = i
				stats = append(stats, models.ProductStat{
					ProductName:       name,
					Category:          category,
					CategoryDefaulted: defaulted,
				})
				revenue = append(revenue, decimal.Zero)
			}

			stats[i].TotalQuantity += item.Quantity
			revenue[i] = revenue[i].Add(lineTotal(item))
			if !counted[i] {
				stats[i].TotalOrders++
				counted[i] = true
			}
			if dated && (stats[i].LastOrderedAt == nil || at.After(*stats[i].LastOrderedAt)) {
				t := at
				stats[i].LastOrderedAt = &t
			}
		}
	}

	for i := range stats {
		stats[i].TotalRevenue = money(revenue[i])
		if stats[i].LastOrderedAt != nil {
			stats[i].LastOrderedAtText = stats[i].LastOrderedAt.Format(time.RFC3339)
		}
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].TotalQuantity > stats[j].TotalQuantity })
	if stats == nil {
		stats = []models.ProductStat{}
	}
	return stats, nil
}
