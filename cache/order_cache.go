package order_cache

import (
	"context"
	"sync"
	"time"

	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
)

// Store serves ListOrders from memory for ttl so one dashboard load, which
// fans out into several analytics calls, reads the orders collection once.
// Customer reads and writes pass straight through.
type Store struct {
	services.Store
	ttl time.Duration
	now func() time.Time

	mu        sync.RWMutex
	orders    []models.Order
	fetchedAt time.Time
}

// Wrap returns inner unchanged when ttl is not positive
func Wrap(inner services.Store, ttl time.Duration) services.Store {
	if ttl <= 0 {
		return inner
	}
	return &Store{Store: inner, ttl: ttl, now: time.Now}
}

func (s *Store) cached() ([]models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.orders != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.orders, true
	}
	return nil, false
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	if orders, ok := s.cached(); ok {
		return append([]models.Order(nil), orders...), nil
	}

	orders, err := s.Store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.orders = orders
	s.fetchedAt = s.now()
	s.mu.Unlock()

	return append([]models.Order(nil), orders...), nil
}

// Invalidate drops the cached orders
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
}
