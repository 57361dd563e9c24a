package models

import "time"

// History caps, oldest entries are evicted first
const (
	MaxOrderHistory  = 50
	MaxViewHistory   = 100
	MaxSearchHistory = 30
)

// OrderRef is one entry of a customer's order history
type OrderRef struct {
	OrderID string    `json:"order_id" bson:"orderId"`
	Amount  float64   `json:"amount" bson:"amount"`
	At      time.Time `json:"at" bson:"at"`
}

// ProductView is one entry of a customer's view history
type ProductView struct {
	Product string    `json:"product" bson:"product"`
	At      time.Time `json:"at" bson:"at"`
}

// SearchEntry is one entry of a customer's search history
type SearchEntry struct {
	Query string    `json:"query" bson:"query"`
	At    time.Time `json:"at" bson:"at"`
}

// CustomerActivity is the per-customer tracking record.
// Counters and histories are the source of truth; the score fields are
// recomputed on every update and never read back as input.
type CustomerActivity struct {
	ID               string     `json:"id" bson:"_id"`
	Name             string     `json:"name,omitempty" bson:"name,omitempty"`
	PhoneNumber      string     `json:"phone_number,omitempty" bson:"phoneNumber,omitempty"`
	PageVisits       int        `json:"page_visits" bson:"pageVisits"`
	TotalOrders      int        `json:"total_orders" bson:"totalOrders"`
	TotalSpent       float64    `json:"total_spent" bson:"totalSpent"`
	SearchQueries    int        `json:"search_queries" bson:"searchQueries"`
	CartActions      int        `json:"cart_actions" bson:"cartActions"`
	EngagementEvents int        `json:"engagement_events" bson:"engagementEvents"`
	LastVisit        *time.Time `json:"last_visit,omitempty" bson:"lastVisit,omitempty"`
	JoinedAt         *time.Time `json:"joined_at,omitempty" bson:"createdAt,omitempty"`
	FirstOrderAt     *time.Time `json:"first_order_at,omitempty" bson:"firstOrderAt,omitempty"`

	OrderHistory  []OrderRef    `json:"order_history" bson:"orderHistory"`
	ViewHistory   []ProductView `json:"view_history" bson:"viewHistory"`
	SearchHistory []SearchEntry `json:"search_history" bson:"searchHistory"`

	EngagementScore   int    `json:"engagement_score" bson:"engagementScore"`
	LoyaltyScore      int    `json:"loyalty_score" bson:"loyaltyScore"`
	LifecycleStage    string `json:"lifecycle_stage,omitempty" bson:"lifecycleStage,omitempty"`
	SpendingFrequency string `json:"spending_frequency,omitempty" bson:"spendingFrequency,omitempty"`
}

// PendingOrder is an order being placed that is not yet in the cumulative counters
type PendingOrder struct {
	OrderID string
	Amount  float64
	At      time.Time
}

// CustomerEngagementRow is the admin listing view of a customer's derived scores
type CustomerEngagementRow struct {
	ID                string     `json:"id" csv:"id"`
	Name              string     `json:"name" csv:"name"`
	TotalOrders       int        `json:"total_orders" csv:"total_orders"`
	TotalSpent        float64    `json:"total_spent" csv:"total_spent"`
	PageVisits        int        `json:"page_visits" csv:"page_visits"`
	LastVisit         *time.Time `json:"last_visit,omitempty" csv:"-"`
	EngagementScore   int        `json:"engagement_score" csv:"engagement_score"`
	LoyaltyScore      int        `json:"loyalty_score" csv:"loyalty_score"`
	LifecycleStage    string     `json:"lifecycle_stage" csv:"lifecycle_stage"`
	SpendingFrequency string     `json:"spending_frequency" csv:"spending_frequency"`
}
