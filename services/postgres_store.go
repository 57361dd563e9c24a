package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRow is the relational mirror of an order; cart and address stay jsonb
type orderRow struct {
	ID             string                                `gorm:"primaryKey;type:text"`
	Timestamp      *time.Time                            `gorm:"index"`
	Date           string                                `gorm:"type:text"`
	Status         string                                `gorm:"type:text;index"`
	CartItems      datatypes.JSONSlice[models.CartItem]  `gorm:"type:jsonb"`
	AddressInfo    datatypes.JSONType[models.AddressInfo] `gorm:"type:jsonb"`
	Subtotal       float64
	DeliveryCharge float64
	DiscountAmount float64
	GrandTotal     float64
}

func (orderRow) TableName() string { return "orders" }

func (r orderRow) toOrder() models.Order {
	return models.Order{
		ID:             r.ID,
		Timestamp:      r.Timestamp,
		Date:           r.Date,
		Status:         models.OrderStatus(r.Status),
		CartItems:      []models.CartItem(r.CartItems),
		AddressInfo:    r.AddressInfo.Data(),
		Subtotal:       r.Subtotal,
		DeliveryCharge: r.DeliveryCharge,
		DiscountAmount: r.DiscountAmount,
		GrandTotal:     r.GrandTotal,
	}
}

func orderRowFrom(o models.Order) orderRow {
	return orderRow{
		ID:             o.ID,
		Timestamp:      o.Timestamp,
		Date:           o.Date,
		Status:         string(o.Status),
		CartItems:      datatypes.NewJSONSlice(o.CartItems),
		AddressInfo:    datatypes.NewJSONType(o.AddressInfo),
		Subtotal:       o.Subtotal,
		DeliveryCharge: o.DeliveryCharge,
		DiscountAmount: o.DiscountAmount,
		GrandTotal:     o.GrandTotal,
	}
}

type customerRow struct {
	ID                string `gorm:"primaryKey;type:text"`
	Name              string
	PhoneNumber       string
	PageVisits        int
	TotalOrders       int
	TotalSpent        float64
	SearchQueries     int
	CartActions       int
	EngagementEvents  int
	LastVisit         *time.Time
	JoinedAt          *time.Time `gorm:"column:created_at"`
	FirstOrderAt      *time.Time
	OrderHistory      datatypes.JSONSlice[models.OrderRef]    `gorm:"type:jsonb"`
	ViewHistory       datatypes.JSONSlice[models.ProductView] `gorm:"type:jsonb"`
	SearchHistory     datatypes.JSONSlice[models.SearchEntry] `gorm:"type:jsonb"`
	EngagementScore   int
	LoyaltyScore      int
	LifecycleStage    string
	SpendingFrequency string
}

func (customerRow) TableName() string { return "customers" }

func (r customerRow) toCustomer() models.CustomerActivity {
	return models.CustomerActivity{
		ID:                r.ID,
		Name:              r.Name,
		PhoneNumber:       r.PhoneNumber,
		PageVisits:        r.PageVisits,
		TotalOrders:       r.TotalOrders,
		TotalSpent:        r.TotalSpent,
		SearchQueries:     r.SearchQueries,
		CartActions:       r.CartActions,
		EngagementEvents:  r.EngagementEvents,
		LastVisit:         r.LastVisit,
		JoinedAt:          r.JoinedAt,
		FirstOrderAt:      r.FirstOrderAt,
		OrderHistory:      []models.OrderRef(r.OrderHistory),
		ViewHistory:       []models.ProductView(r.ViewHistory),
		SearchHistory:     []models.SearchEntry(r.SearchHistory),
		EngagementScore:   r.EngagementScore,
		LoyaltyScore:      r.LoyaltyScore,
		LifecycleStage:    r.LifecycleStage,
		SpendingFrequency: r.SpendingFrequency,
	}
}

func customerRowFrom(c models.CustomerActivity) customerRow {
	return customerRow{
		ID:                c.ID,
		Name:              c.Name,
		PhoneNumber:       c.PhoneNumber,
		PageVisits:        c.PageVisits,
		TotalOrders:       c.TotalOrders,
		TotalSpent:        c.TotalSpent,
		SearchQueries:     c.SearchQueries,
		CartActions:       c.CartActions,
		EngagementEvents:  c.EngagementEvents,
		LastVisit:         c.LastVisit,
		JoinedAt:          c.JoinedAt,
		FirstOrderAt:      c.FirstOrderAt,
		OrderHistory:      datatypes.NewJSONSlice(c.OrderHistory),
		ViewHistory:       datatypes.NewJSONSlice(c.ViewHistory),
		SearchHistory:     datatypes.NewJSONSlice(c.SearchHistory),
		EngagementScore:   c.EngagementScore,
		LoyaltyScore:      c.LoyaltyScore,
		LifecycleStage:    c.LifecycleStage,
		SpendingFrequency: c.SpendingFrequency,
	}
}

// PostgresStore reads orders and customers from the relational store via GORM
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the orders and customers tables if missing
func (s *PostgresStore) Migrate() error {
	return s.db.AutoMigrate(&orderRow{}, &customerRow{})
}

func (s *PostgresStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.WithContext(ctx).Model(&orderRow{}).Rows()
	if err != nil {
		log.Printf("[store.postgres] ERROR query orders err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	skipped := 0
	for rows.Next() {
		var r orderRow
		// scanning row by row keeps one bad jsonb cell from failing the whole read
		if err := s.db.ScanRows(rows, &r); err != nil {
			log.Printf("[store.postgres] WARN unscannable order skipped err=%v", err)
			skipped++
			continue
		}
		o := r.toOrder()
		if err := models.NormalizeOrder(&o); err != nil {
			log.Printf("[store.postgres] WARN order skipped err=%v", err)
			skipped++
			continue
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}

	log.Printf("[store.postgres] orders loaded=%d skipped=%d", len(orders), skipped)
	return orders, nil
}

func (s *PostgresStore) InsertOrders(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRowFrom(o))
	}
	return s.db.WithContext(ctx).CreateInBatches(rows, 100).Error
}

func (s *PostgresStore) ListCustomers(ctx context.Context) ([]models.CustomerActivity, error) {
	var rows []customerRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		log.Printf("[store.postgres] ERROR query customers err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	customers := make([]models.CustomerActivity, 0, len(rows))
	for _, r := range rows {
		customers = append(customers, r.toCustomer())
	}
	return customers, nil
}

func (s *PostgresStore) GetCustomer(ctx context.Context, id string) (*models.CustomerActivity, error) {
	var r customerRow
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find customer %s: %w", id, err)
	}
	c := r.toCustomer()
	return &c, nil
}

func (s *PostgresStore) SaveCustomer(ctx context.Context, c *models.CustomerActivity) error {
	row := customerRowFrom(*c)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("save customer %s: %w", c.ID, err)
	}
	return nil
}
