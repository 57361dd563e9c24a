package analytics

import (
	"testing"
	"time"

	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

var scoringNow = time.Date(2026, 10, 15, 10, 0, 0, 0, ist)

func daysAgo(d int) *time.Time {
	t := scoringNow.Add(-time.Duration(d) * 24 * time.Hour)
	return &t
}

func TestEngagementScore(t *testing.T) {
	tests := []struct {
		name     string
		customer models.CustomerActivity
		want     int
	}{
		{
			name:     "visited today",
			customer: models.CustomerActivity{PageVisits: 10, TotalOrders: 2, TotalSpent: 300, LastVisit: &scoringNow},
			want:     53,
		},
		{
			name:     "empty record",
			customer: models.CustomerActivity{},
			want:     0,
		},
		{
			name:     "every component capped",
			customer: models.CustomerActivity{PageVisits: 500, TotalOrders: 90, TotalSpent: 100000, LastVisit: daysAgo(0)},
			want:     100,
		},
		{
			name:     "visited five days ago",
			customer: models.CustomerActivity{PageVisits: 1, LastVisit: daysAgo(5)},
			want:     17,
		},
		{
			name:     "visited sixty days ago",
			customer: models.CustomerActivity{TotalSpent: 250, LastVisit: daysAgo(60)},
			want:     7,
		},
		{
			name:     "dormant for a year",
			customer: models.CustomerActivity{TotalOrders: 1, LastVisit: daysAgo(365)},
			want:     5,
		},
		{
			name:     "negative counters treated as zero",
			customer: models.CustomerActivity{PageVisits: -4, TotalSpent: -100},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EngagementScore(tt.customer, scoringNow); got != tt.want {
				t.Fatalf("EngagementScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoyaltyScore(t *testing.T) {
	c := models.CustomerActivity{PageVisits: 10, TotalOrders: 2, TotalSpent: 300, EngagementEvents: 3}

	if got := LoyaltyScore(c, nil); got != 25 {
		t.Errorf("LoyaltyScore(no pending) = %d, want 25", got)
	}
	pending := &models.PendingOrder{OrderID: "p1", Amount: 200, At: scoringNow}
	if got := LoyaltyScore(c, pending); got != 28 {
		t.Errorf("LoyaltyScore(pending) = %d, want 28", got)
	}

	maxed := models.CustomerActivity{PageVisits: 1000, TotalOrders: 100, TotalSpent: 1e6, EngagementEvents: 100}
	if got := LoyaltyScore(maxed, nil); got != 100 {
		t.Errorf("LoyaltyScore(maxed) = %d, want 100", got)
	}
}

func TestLifecycleStage(t *testing.T) {
	tests := []struct {
		name     string
		customer models.CustomerActivity
		pending  *models.PendingOrder
		want     string
	}{
		{"first order pending", models.CustomerActivity{}, &models.PendingOrder{Amount: 80, At: scoringNow}, StageNewCustomer},
		{"one order", models.CustomerActivity{TotalOrders: 1}, nil, StageNewCustomer},
		{"three orders", models.CustomerActivity{TotalOrders: 2}, &models.PendingOrder{Amount: 10}, StageDevelopingCustomer},
		{"established", models.CustomerActivity{TotalOrders: 8, TotalSpent: 1200}, nil, StageEstablishedCustomer},
		{"vip", models.CustomerActivity{TotalOrders: 11, TotalSpent: 5000}, nil, StageVIPCustomer},
		{"loyal", models.CustomerActivity{TotalOrders: 12, TotalSpent: 900, FirstOrderAt: daysAgo(400)}, nil, StageLoyalCustomer},
		{"established wins over loyal", models.CustomerActivity{TotalOrders: 6, TotalSpent: 1500, FirstOrderAt: daysAgo(400)}, nil, StageEstablishedCustomer},
		{"regular", models.CustomerActivity{TotalOrders: 7, TotalSpent: 400, FirstOrderAt: daysAgo(100)}, nil, StageRegularCustomer},
		{"many orders low spend", models.CustomerActivity{TotalOrders: 20, TotalSpent: 900}, nil, StageRegularCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LifecycleStage(tt.customer, tt.pending, scoringNow); got != tt.want {
				t.Fatalf("LifecycleStage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpendingFrequencyBucket(t *testing.T) {
	tests := []struct {
		name     string
		customer models.CustomerActivity
		want     string
	}{
		{"no orders", models.CustomerActivity{JoinedAt: daysAgo(30)}, FrequencyInactive},
		{"no join date", models.CustomerActivity{TotalOrders: 3}, FrequencyInactive},
		{"joined today", models.CustomerActivity{TotalOrders: 1, JoinedAt: &scoringNow}, FrequencyNew},
		{"very high", models.CustomerActivity{TotalOrders: 8, JoinedAt: daysAgo(60)}, FrequencyVeryHigh},
		{"high", models.CustomerActivity{TotalOrders: 6, JoinedAt: daysAgo(60)}, FrequencyHigh},
		{"medium", models.CustomerActivity{TotalOrders: 2, JoinedAt: daysAgo(60)}, FrequencyMedium},
		{"low", models.CustomerActivity{TotalOrders: 1, JoinedAt: daysAgo(60)}, FrequencyLow},
		{"very low", models.CustomerActivity{TotalOrders: 1, JoinedAt: daysAgo(90)}, FrequencyVeryLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpendingFrequencyBucket(tt.customer, scoringNow); got != tt.want {
				t.Fatalf("SpendingFrequencyBucket() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRescoreIsIdempotent(t *testing.T) {
	c := models.CustomerActivity{ID: "c1", PageVisits: 4, TotalOrders: 3, TotalSpent: 640, JoinedAt: daysAgo(45), LastVisit: daysAgo(2)}
	Rescore(&c, nil, scoringNow)
	first := c
	Rescore(&c, nil, scoringNow)
	if first.EngagementScore != c.EngagementScore || first.LoyaltyScore != c.LoyaltyScore ||
		first.LifecycleStage != c.LifecycleStage || first.SpendingFrequency != c.SpendingFrequency {
		t.Fatalf("rescoring changed derived fields: %+v -> %+v", first, c)
	}

	row := EngagementRow(c, scoringNow)
	if row.EngagementScore != c.EngagementScore || row.LifecycleStage != StageDevelopingCustomer {
		t.Fatalf("row = %+v", row)
	}
}

func TestEngagementRowsOrdering(t *testing.T) {
	customers := []models.CustomerActivity{
		{ID: "b", PageVisits: 1},
		{ID: "c", PageVisits: 10, TotalOrders: 2, TotalSpent: 300, LastVisit: &scoringNow},
		{ID: "a", PageVisits: 1},
	}
	rows := EngagementRows(customers, scoringNow)
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].ID != "c" || rows[0].EngagementScore != 53 {
		t.Errorf("first row = %+v, want c with 53", rows[0])
	}
	if rows[1].ID != "a" || rows[2].ID != "b" {
		t.Errorf("ties should be ordered by id, got %s then %s", rows[1].ID, rows[2].ID)
	}

	if empty := EngagementRows(nil, scoringNow); empty == nil || len(empty) != 0 {
		t.Errorf("EngagementRows(nil) = %#v, want empty slice", empty)
	}
}
