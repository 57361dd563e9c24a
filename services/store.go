package services

import (
	"context"
	"errors"
	"sync"

	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

var (
	// ErrNoData means the upstream read failed; callers render an empty state
	ErrNoData = errors.New("no data available")

	ErrCustomerNotFound = errors.New("customer not found")
)

// OrderReader loads order snapshots for aggregation. Implementations skip
// malformed documents and return ErrNoData only when the read itself fails.
type OrderReader interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// OrderWriter bulk-inserts orders; only the seeder writes orders
type OrderWriter interface {
	InsertOrders(ctx context.Context, orders []models.Order) error
}

// CustomerStore loads and saves customer activity records
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]models.CustomerActivity, error)
	GetCustomer(ctx context.Context, id string) (*models.CustomerActivity, error)
	SaveCustomer(ctx context.Context, c *models.CustomerActivity) error
}

// Store is the full storefront data source
type Store interface {
	OrderReader
	CustomerStore
}

var (
	storeMu sync.RWMutex
	store   Store
)

// SetStore installs the data source used by the controllers
func SetStore(s Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	store = s
}

// GetStore returns the installed data source
func GetStore() Store {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store
}
