package services

import (
	"context"

	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

type memStore struct {
	orders    []models.Order
	customers map[string]models.CustomerActivity
	saves     int
	err       error
}

func newMemStore() *memStore {
	return &memStore{customers: map[string]models.CustomerActivity{}}
}

func (m *memStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.orders, nil
}

func (m *memStore) ListCustomers(ctx context.Context) ([]models.CustomerActivity, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.CustomerActivity, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	return out, nil
}

func (m *memStore) GetCustomer(ctx context.Context, id string) (*models.CustomerActivity, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return &c, nil
}

func (m *memStore) SaveCustomer(ctx context.Context, c *models.CustomerActivity) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.customers[c.ID] = *c
	return nil
}
