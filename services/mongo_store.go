package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore reads the storefront's orders and users collections
type MongoStore struct {
	orders    *mongo.Collection
	customers *mongo.Collection
	loc       *time.Location
}

func NewMongoStore(db *mongo.Database, loc *time.Location) *MongoStore {
	return &MongoStore{
		orders:    db.Collection("orders"),
		customers: db.Collection("users"),
		loc:       loc,
	}
}

// orderDocument mirrors an order as the checkout flow writes it. The
// timestamp is kept raw because older documents store it as a string,
// epoch millis or a {seconds, nanoseconds} object.
type orderDocument struct {
	ID             string             `bson:"_id"`
	Timestamp      bson.RawValue      `bson:"timestamp"`
	Date           string             `bson:"date"`
	Status         string             `bson:"status"`
	CartItems      []models.CartItem  `bson:"cartItems"`
	AddressInfo    models.AddressInfo `bson:"addressInfo"`
	Subtotal       float64            `bson:"subtotal"`
	DeliveryCharge float64            `bson:"deliveryCharge"`
	DiscountAmount float64            `bson:"discountAmount"`
	GrandTotal     float64            `bson:"grandTotal"`
}

// rawTime interprets the timestamp encodings found in the collections
func rawTime(v bson.RawValue, loc *time.Location) (*time.Time, string) {
	if v.Type == 0 {
		return nil, ""
	}
	if t, ok := v.TimeOK(); ok {
		return &t, ""
	}
	if s, ok := v.StringValueOK(); ok {
		return nil, s
	}
	if doc, ok := v.DocumentOK(); ok {
		secs, err := doc.LookupErr("seconds")
		if err != nil {
			return nil, ""
		}
		s, ok := secs.AsInt64OK()
		if !ok {
			return nil, ""
		}
		var nanos int64
		if n, err := doc.LookupErr("nanoseconds"); err == nil {
			nanos, _ = n.AsInt64OK()
		}
		t := time.Unix(s, nanos).In(loc)
		return &t, ""
	}
	if ms, ok := v.AsInt64OK(); ok {
		t := time.UnixMilli(ms).In(loc)
		return &t, ""
	}
	return nil, ""
}

func (d orderDocument) toOrder(loc *time.Location) models.Order {
	o := models.Order{
		ID:             d.ID,
		Date:           d.Date,
		Status:         models.OrderStatus(d.Status),
		CartItems:      d.CartItems,
		AddressInfo:    d.AddressInfo,
		Subtotal:       d.Subtotal,
		DeliveryCharge: d.DeliveryCharge,
		DiscountAmount: d.DiscountAmount,
		GrandTotal:     d.GrandTotal,
	}
	ts, text := rawTime(d.Timestamp, loc)
	o.Timestamp = ts
	if o.Date == "" {
		o.Date = text
	}
	return o
}

func (s *MongoStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	cursor, err := s.orders.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("[store.mongo] ERROR find orders err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	skipped := 0
	for cursor.Next(ctx) {
		var doc orderDocument
		if err := cursor.Decode(&doc); err != nil {
			log.Printf("[store.mongo] WARN undecodable order skipped err=%v", err)
			skipped++
			continue
		}
		o := doc.toOrder(s.loc)
		if err := models.NormalizeOrder(&o); err != nil {
			log.Printf("[store.mongo] WARN order skipped err=%v", err)
			skipped++
			continue
		}
		orders = append(orders, o)
	}
	if err := cursor.Err(); err != nil {
		log.Printf("[store.mongo] ERROR cursor orders err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}

	log.Printf("[store.mongo] orders loaded=%d skipped=%d", len(orders), skipped)
	return orders, nil
}

// InsertOrders writes orders as the checkout flow would, used by the seeder
func (s *MongoStore) InsertOrders(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(orders))
	for _, o := range orders {
		docs = append(docs, o)
	}
	if _, err := s.orders.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert orders: %w", err)
	}
	return nil
}

// decodeCustomer fills JoinedAt from the legacy "date" field when createdAt is absent
func (s *MongoStore) decodeCustomer(raw bson.Raw) (models.CustomerActivity, error) {
	var c models.CustomerActivity
	if err := bson.Unmarshal(raw, &c); err != nil {
		return c, err
	}
	if c.JoinedAt == nil {
		if v, err := raw.LookupErr("date"); err == nil {
			ts, text := rawTime(v, s.loc)
			if ts == nil && text != "" {
				if t, ok := analytics.ParseOrderDate(text, s.loc); ok {
					ts = &t
				}
			}
			c.JoinedAt = ts
		}
	}
	return c, nil
}

func (s *MongoStore) ListCustomers(ctx context.Context) ([]models.CustomerActivity, error) {
	cursor, err := s.customers.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("[store.mongo] ERROR find customers err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	defer cursor.Close(ctx)

	customers := make([]models.CustomerActivity, 0)
	for cursor.Next(ctx) {
		c, err := s.decodeCustomer(cursor.Current)
		if err != nil {
			log.Printf("[store.mongo] WARN undecodable customer skipped err=%v", err)
			continue
		}
		customers = append(customers, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	return customers, nil
}

func (s *MongoStore) GetCustomer(ctx context.Context, id string) (*models.CustomerActivity, error) {
	raw, err := s.customers.FindOne(ctx, bson.M{"_id": id}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer %s: %w", id, err)
	}
	c, err := s.decodeCustomer(raw)
	if err != nil {
		return nil, fmt.Errorf("decode customer %s: %w", id, err)
	}
	return &c, nil
}

func (s *MongoStore) SaveCustomer(ctx context.Context, c *models.CustomerActivity) error {
	_, err := s.customers.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save customer %s: %w", c.ID, err)
	}
	return nil
}
