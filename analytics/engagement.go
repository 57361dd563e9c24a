package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// Lifecycle stages, checked in this priority order
const (
	StageNewCustomer         = "new_customer"
	StageDevelopingCustomer  = "developing_customer"
	StageEstablishedCustomer = "established_customer"
	StageVIPCustomer         = "vip_customer"
	StageLoyalCustomer       = "loyal_customer"
	StageRegularCustomer     = "regular_customer"
)

// Spending frequency buckets
const (
	FrequencyInactive = "inactive"
	FrequencyNew      = "new"
	FrequencyVeryHigh = "very_high"
	FrequencyHigh     = "high"
	FrequencyMedium   = "medium"
	FrequencyLow      = "low"
	FrequencyVeryLow  = "very_low"
)

func daysSince(t *time.Time, now time.Time) (float64, bool) {
	if t == nil || t.IsZero() {
		return 0, false
	}
	d := now.Sub(*t).Hours() / 24
	if d < 0 {
		d = 0
	}
	return d, true
}

func clampScore(score float64) int {
	s := int(math.Floor(score))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

func recencyPoints(c models.CustomerActivity, now time.Time) float64 {
	days, ok := daysSince(c.LastVisit, now)
	if !ok {
		return 0
	}
	switch {
	case days <= 1:
		return 20
	case days <= 7:
		return 15
	case days <= 30:
		return 10
	case days <= 90:
		return 5
	}
	return 0
}

// EngagementScore weighs visits, orders, spend and visit recency into [0, 100]
func EngagementScore(c models.CustomerActivity, now time.Time) int {
	visits := math.Min(nonNegative(float64(c.PageVisits))*2, 25)
	orders := math.Min(nonNegative(float64(c.TotalOrders))*5, 30)
	spend := math.Min(nonNegative(c.TotalSpent)/100, 25)
	recency := math.Min(recencyPoints(c, now), 20)
	return clampScore(visits + orders + spend + recency)
}

// withPending folds an order being placed into the cumulative counters
func withPending(c models.CustomerActivity, pending *models.PendingOrder) (orders int, spent float64) {
	orders, spent = c.TotalOrders, c.TotalSpent
	if pending != nil {
		orders++
		spent += pending.Amount
	}
	return orders, spent
}

// LoyaltyScore weighs order frequency, spend, engagement events and site
// activity, counting the pending order if there is one
func LoyaltyScore(c models.CustomerActivity, pending *models.PendingOrder) int {
	orders, spent := withPending(c, pending)
	frequency := math.Min(nonNegative(float64(orders))*2, 30)
	spend := math.Min(nonNegative(spent)/200, 25)
	events := math.Min(nonNegative(float64(c.EngagementEvents))*5, 25)
	activity := math.Min(nonNegative(float64(c.PageVisits))*0.5, 20)
	return clampScore(frequency + spend + events + activity)
}

// LifecycleStage classifies the customer; the first matching rule wins
func LifecycleStage(c models.CustomerActivity, pending *models.PendingOrder, now time.Time) string {
	orders, spent := withPending(c, pending)

	firstOrder := c.FirstOrderAt
	if firstOrder == nil && pending != nil {
		at := pending.At
		firstOrder = &at
	}
	daysSinceFirst, _ := daysSince(firstOrder, now)

	switch {
	case orders == 1:
		return StageNewCustomer
	case orders <= 3:
		return StageDevelopingCustomer
	case orders <= 10 && spent >= 1000:
		return StageEstablishedCustomer
	case orders > 10 && spent >= 5000:
		return StageVIPCustomer
	case daysSinceFirst > 365 && orders > 5:
		return StageLoyalCustomer
	}
	return StageRegularCustomer
}

// SpendingFrequencyBucket classifies orders per 30 days since the join date
func SpendingFrequencyBucket(c models.CustomerActivity, now time.Time) string {
	if c.TotalOrders <= 0 {
		return FrequencyInactive
	}
	days, ok := daysSince(c.JoinedAt, now)
	if !ok {
		return FrequencyInactive
	}
	if days < 1 {
		return FrequencyNew
	}

	perMonth := float64(c.TotalOrders) / (days / 30)
	switch {
	case perMonth >= 4:
		return FrequencyVeryHigh
	case perMonth >= 2:
		return FrequencyHigh
	case perMonth >= 1:
		return FrequencyMedium
	case perMonth >= 0.5:
		return FrequencyLow
	}
	return FrequencyVeryLow
}

// Rescore recomputes every derived field of the record in place
func Rescore(c *models.CustomerActivity, pending *models.PendingOrder, now time.Time) {
	c.EngagementScore = EngagementScore(*c, now)
	c.LoyaltyScore = LoyaltyScore(*c, pending)
	c.LifecycleStage = LifecycleStage(*c, pending, now)
	c.SpendingFrequency = SpendingFrequencyBucket(*c, now)
}

// EngagementRow derives the admin listing row for a customer
func EngagementRow(c models.CustomerActivity, now time.Time) models.CustomerEngagementRow {
	Rescore(&c, nil, now)
	return models.CustomerEngagementRow{
		ID:                c.ID,
		Name:              c.Name,
		TotalOrders:       c.TotalOrders,
		TotalSpent:        c.TotalSpent,
		PageVisits:        c.PageVisits,
		LastVisit:         c.LastVisit,
		EngagementScore:   c.EngagementScore,
		LoyaltyScore:      c.LoyaltyScore,
		LifecycleStage:    c.LifecycleStage,
		SpendingFrequency: c.SpendingFrequency,
	}
}

// EngagementRows scores every customer and orders them by engagement,
// highest first, ties by id
func EngagementRows(customers []models.CustomerActivity, now time.Time) []models.CustomerEngagementRow {
	rows := make([]models.CustomerEngagementRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, EngagementRow(c, now))
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].EngagementScore != rows[j].EngagementScore {
			return rows[i].EngagementScore > rows[j].EngagementScore
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}
