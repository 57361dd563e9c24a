package models

import "time"

// OrderTotals is the headline block of the analytics dashboard
type OrderTotals struct {
	TotalRevenue    float64 `json:"total_revenue"`    // Sum of grand totals, cancelled excluded
	TotalOrders     int     `json:"total_orders"`     // Every order in the window, cancelled included
	AvgOrderValue   float64 `json:"avg_order_value"`  // TotalRevenue / TotalOrders, 0 when empty
	UniqueCustomers int     `json:"unique_customers"` // Distinct non-empty phone numbers
	CompletionRate  float64 `json:"completion_rate"`  // % of orders delivered
}

type DailyTrendPoint struct {
	Date       string  `json:"date" csv:"date"` // YYYY-MM-DD in the report location
	Revenue    float64 `json:"revenue" csv:"revenue"`
	OrderCount int     `json:"order_count" csv:"order_count"`
}

type CategoryRevenue struct {
	Category string  `json:"category" csv:"category"`
	Revenue  float64 `json:"revenue" csv:"revenue"`
}

// TopProduct is a product ranked by units sold
type TopProduct struct {
	ProductName string `json:"product_name" csv:"product_name"`
	UnitsSold   int    `json:"units_sold" csv:"units_sold"`
}

// CityRevenue is a city ranked by revenue
type CityRevenue struct {
	City          string  `json:"city" csv:"city"`
	Revenue       float64 `json:"revenue" csv:"revenue"`
	CityDefaulted bool    `json:"city_defaulted" csv:"-"` // true when the orders carried no city
}

type MonthlyRevenueData struct {
	Month       string  `json:"month" csv:"month"`               // Month abbreviation (Jan, Feb, etc.)
	MonthNumber int     `json:"month_number" csv:"month_number"` // Month number (1-12)
	Year        int     `json:"year" csv:"year"`
	Revenue     float64 `json:"revenue" csv:"revenue"`
}

// ProductStat is the per-(product, category) inventory usage roll-up
type ProductStat struct {
	ProductName       string     `json:"product_name" csv:"product_name"`
	Category          string     `json:"category" csv:"category"`
	CategoryDefaulted bool       `json:"category_defaulted" csv:"-"`
	TotalQuantity     int        `json:"total_quantity" csv:"total_quantity"`
	TotalOrders       int        `json:"total_orders" csv:"total_orders"`
	TotalRevenue      float64    `json:"total_revenue" csv:"total_revenue"`
	LastOrderedAt     *time.Time `json:"last_ordered_at,omitempty" csv:"-"`
	LastOrderedAtText string     `json:"-" csv:"last_ordered_at"` // RFC 3339, empty for undated products
}

// AnalyticsSnapshot is every order aggregate for one window, recomputed per request
type AnalyticsSnapshot struct {
	RangeStart        *time.Time         `json:"range_start,omitempty"`
	RangeEnd          *time.Time         `json:"range_end,omitempty"`
	Totals            OrderTotals        `json:"totals"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	DailyTrend        []DailyTrendPoint  `json:"daily_trend"`
	TopProducts       []TopProduct       `json:"top_products"`
	GeoBreakdown      []CityRevenue      `json:"geo_breakdown"`
	SkippedOrders     int                `json:"skipped_orders"` // dropped for lacking a parseable date
}

// SummaryMetric is one line of the flattened summary report
type SummaryMetric struct {
	Metric string `json:"metric" csv:"metric"`
	Value  string `json:"value" csv:"value"`
}
