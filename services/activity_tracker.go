package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// ErrInvalidEvent wraps events rejected before any record is touched
var ErrInvalidEvent = errors.New("invalid activity event")

// ActivityTracker applies storefront events to customer records and keeps
// their derived scores current
type ActivityTracker struct {
	store CustomerStore
	now   func() time.Time

	// serialises the load, apply and save cycle
	mu sync.Mutex
}

func NewActivityTracker(store CustomerStore, now func() time.Time) *ActivityTracker {
	if now == nil {
		now = time.Now
	}
	return &ActivityTracker{store: store, now: now}
}

// Track applies one event and persists the updated record. Unknown customers
// get a fresh record joined now. A repeated order_placed for an order already
// in the history is a no-op.
func (t *ActivityTracker) Track(ctx context.Context, customerID string, event models.ActivityEvent) (*models.CustomerActivity, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidEvent)
	}
	if err := models.ValidateActivityEvent(event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	c, err := t.store.GetCustomer(ctx, customerID)
	if errors.Is(err, ErrCustomerNotFound) {
		joined := now
		c = &models.CustomerActivity{ID: customerID, JoinedAt: &joined}
		log.Printf("[activity.track] new customer id=%s", customerID)
	} else if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}

	if !apply(c, event, now) {
		log.Printf("[activity.track] duplicate order ignored id=%s order=%s", customerID, event.OrderID)
		return c, nil
	}

	if err := t.store.SaveCustomer(ctx, c); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	log.Printf("[activity.track] id=%s type=%s engagement=%d loyalty=%d stage=%s",
		customerID, event.Type, c.EngagementScore, c.LoyaltyScore, c.LifecycleStage)
	return c, nil
}

// apply mutates c for the event and rescores it. It reports false when the
// event changed nothing.
func apply(c *models.CustomerActivity, e models.ActivityEvent, now time.Time) bool {
	switch e.Type {
	case models.EventPageVisit:
		c.PageVisits++
		c.LastVisit = &now

	case models.EventProductView:
		views := analytics.BoundedQueueFrom(models.MaxViewHistory, c.ViewHistory)
		views.Push(models.ProductView{Product: strings.TrimSpace(e.Product), At: now})
		c.ViewHistory = views.Items()
		c.EngagementEvents++
		c.LastVisit = &now

	case models.EventSearch:
		searches := analytics.BoundedQueueFrom(models.MaxSearchHistory, c.SearchHistory)
		searches.Push(models.SearchEntry{Query: strings.TrimSpace(e.Query), At: now})
		c.SearchHistory = searches.Items()
		c.SearchQueries++
		c.EngagementEvents++

	case models.EventCartAction:
		c.CartActions++
		c.EngagementEvents++

	case models.EventOrderPlaced:
		for _, ref := range c.OrderHistory {
			if ref.OrderID == e.OrderID {
				return false
			}
		}
		pending := &models.PendingOrder{OrderID: e.OrderID, Amount: e.Amount, At: now}
		// loyalty and stage see the order before it reaches the counters
		loyalty := analytics.LoyaltyScore(*c, pending)
		stage := analytics.LifecycleStage(*c, pending, now)

		c.TotalOrders++
		c.TotalSpent += e.Amount
		if c.FirstOrderAt == nil {
			c.FirstOrderAt = &now
		}
		orders := analytics.BoundedQueueFrom(models.MaxOrderHistory, c.OrderHistory)
		orders.Push(models.OrderRef{OrderID: e.OrderID, Amount: e.Amount, At: now})
		c.OrderHistory = orders.Items()

		c.EngagementScore = analytics.EngagementScore(*c, now)
		c.SpendingFrequency = analytics.SpendingFrequencyBucket(*c, now)
		c.LoyaltyScore = loyalty
		c.LifecycleStage = stage
		return true
	}

	analytics.Rescore(c, nil, now)
	return true
}

var (
	trackerMu sync.RWMutex
	tracker   *ActivityTracker
)

func SetActivityTracker(t *ActivityTracker) {
	trackerMu.Lock()
	defer trackerMu.Unlock()
	tracker = t
}

func GetActivityTracker() *ActivityTracker {
	trackerMu.RLock()
	defer trackerMu.RUnlock()
	return tracker
}
